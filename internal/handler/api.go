package handler

import (
	"time"

	"github.com/lovedays/internal/service"
	"gorm.io/gorm"
)

// API bundles shared dependencies for HTTP handlers.
type API struct {
	db        *gorm.DB
	couples   *service.CoupleService
	memories  *service.MemoryService
	dates     *service.ImportantDateService
	uploadDir string
	uploadURL string
	now       func() time.Time
}

// NewAPI constructs a handler set with shared services.
func NewAPI(gdb *gorm.DB, uploadDir, uploadURL string) *API {
	return &API{
		db:        gdb,
		couples:   service.NewCoupleService(gdb),
		memories:  service.NewMemoryService(gdb),
		dates:     service.NewImportantDateService(gdb),
		uploadDir: uploadDir,
		uploadURL: uploadURL,
		now:       time.Now,
	}
}

// WithClock overrides the wall clock, used by tests that pin "now".
func (a *API) WithClock(now func() time.Time) *API {
	a.now = now
	return a
}
