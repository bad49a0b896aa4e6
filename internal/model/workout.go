package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Workout is a single exercise session owned by one user.
type Workout struct {
	ID        uuid.UUID `json:"id" gorm:"type:char(36);primaryKey"`
	Name      string    `json:"name" gorm:"size:255;not null"`
	Type      string    `json:"type" gorm:"size:255;not null"`
	Duration  int       `json:"duration" gorm:"not null"` // minutes
	UserID    uuid.UUID `json:"userId" gorm:"type:char(36);not null;index"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// OwnerID returns the owning user's id.
func (w *Workout) OwnerID() uuid.UUID { return w.UserID }

// SetOwnerID assigns the owning user.
func (w *Workout) SetOwnerID(id uuid.UUID) { w.UserID = id }

// BeforeCreate sets the UUID before creating the record.
func (w *Workout) BeforeCreate(tx *gorm.DB) error {
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	return nil
}
