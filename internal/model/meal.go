package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Meal records what a user ate and its macros. All quantities are
// non-negative integers.
type Meal struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Calories  int       `json:"calories" gorm:"not null"`
	Protein   int       `json:"protein" gorm:"not null"`
	Fat       int       `json:"fat" gorm:"not null"`
	Carbs     int       `json:"carbs" gorm:"not null"`
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerID returns the owning user's id.
func (m *Meal) OwnerID() uuid.UUID { return m.UserID }

// SetOwnerID assigns the owning user.
func (m *Meal) SetOwnerID(id uuid.UUID) { m.UserID = id }

// BeforeCreate sets the UUID before creating the record.
func (m *Meal) BeforeCreate(tx *gorm.DB) error {
	if m.ID == uuid.Nil {
		m.ID = uuid.New()
	}
	return nil
}
