package db

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Couple is the single tracked relationship: two partner names and the start
// date of the relationship. Exactly one row exists per deployment; it is
// created once through setup, edited later, never deleted.
type Couple struct {
	ID           string    `gorm:"primaryKey" json:"id"`
	Partner1Name string    `gorm:"not null" json:"partner1Name"`
	Partner2Name string    `gorm:"not null" json:"partner2Name"`
	StartDate    string    `gorm:"not null" json:"startDate"` // YYYY-MM-DD, local-date semantics
	CreatedAt    time.Time `json:"createdAt"`
}

// BeforeCreate assigns a server-generated opaque identifier. IDs are
// immutable once assigned.
func (c *Couple) BeforeCreate(*gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	return nil
}
