package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Memory is a saved moment: title, optional markdown content, the calendar
// date it happened, an optional mood label and an optional photo URI.
// Memories are only ever created and deleted.
type Memory struct {
	ID        string    `gorm:"primaryKey" json:"id"`
	CoupleID  string    `gorm:"not null;index" json:"coupleId"`
	Title     string    `gorm:"not null" json:"title"`
	Content   string    `json:"content"`
	Date      string    `gorm:"not null" json:"date"` // YYYY-MM-DD
	Mood      string    `json:"mood"`
	PhotoURI  string    `json:"photoUri"`
	CreatedAt time.Time `json:"createdAt"`
}

func (m *Memory) BeforeCreate(*gorm.DB) error {
	if m.ID == "" {
		m.ID = uuid.NewString()
	}
	return nil
}
