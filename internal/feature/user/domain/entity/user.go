// Package entity defines the domain entities for the user feature.
package entity

import "time"

// User represents a registered user in the system.
// It contains authentication credentials and metadata for user management.
type User struct {
	// ID is the unique identifier for the user.
	ID uint `gorm:"primaryKey" json:"id"`

	// Name is the user's display name.
	Name string `gorm:"size:255;not null" json:"name"`

	// Email is the user's email address used for authentication.
	// It must be unique across all users and is stored lowercase.
	Email string `gorm:"uniqueIndex;size:255;not null" json:"email"`

	// Password is the hashed password for the user.
	// This should never store plaintext passwords and is never serialized.
	Password string `gorm:"size:255;not null" json:"-"`

	// ProfileImage is the stored path of the user's profile picture, if any.
	ProfileImage string `gorm:"size:512" json:"profileImage,omitempty"`

	// IsAdmin marks administrative accounts.
	IsAdmin bool `gorm:"default:false" json:"isAdmin"`

	// IsBanned blocks the user from logging in when set.
	IsBanned bool `gorm:"default:false" json:"isBanned"`

	// CreatedAt is the timestamp when the user was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the user was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
