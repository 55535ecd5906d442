// GORM model + request DTOs used by handlers and services.

package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// User represents a user record in the database.
// ID and CreatedAt are set once at insert time and never change afterwards.
// The unique index on email is defense in depth; the service layer checks
// uniqueness before every insert/update.
type User struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	Name      string    `gorm:"size:120;not null" json:"name"`
	Email     string    `gorm:"size:180;uniqueIndex;not null" json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// BeforeCreate fills the UUID primary key when the caller did not set one.
func (u *User) BeforeCreate(_ *gorm.DB) error {
	if u.ID == uuid.Nil {
		u.ID = uuid.New()
	}
	return nil
}

// CreateUserRequest is the expected payload for POST /api/users. The
// handler rejects bodies with missing keys; present-but-empty values
// still reach the service so the validation order (email format,
// uniqueness, name) stays observable.
type CreateUserRequest struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

// UpdateUserRequest allows partial updates by making fields pointers;
// nil means "keep the existing value".
type UpdateUserRequest struct {
	Name  *string `json:"name,omitempty"`
	Email *string `json:"email,omitempty"`
}
