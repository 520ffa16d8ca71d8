package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Important date types. The stored year is the year of original entry;
// recurrence treats the date as annual.
const (
	DateTypeBirthday    = "birthday"
	DateTypeAnniversary = "anniversary"
	DateTypeSpecial     = "special"
	DateTypeOther       = "other"
)

// ImportantDate is a recurring annual date (birthday, anniversary, ...)
// distinct from milestones, which count from the relationship start.
type ImportantDate struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CoupleID  string    `gorm:"not null;index" json:"coupleId"`
	Title     string    `gorm:"not null" json:"title"`
	Date      string    `gorm:"not null" json:"date"` // YYYY-MM-DD, month/day meaningful
	Type      string    `gorm:"not null" json:"type"`
	CreatedAt time.Time `json:"createdAt"`
}

func (d *ImportantDate) BeforeCreate(*gorm.DB) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	return nil
}
