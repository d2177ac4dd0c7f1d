// Package entity defines the domain entities for the post feature.
package entity

import "time"

// Post represents a single blog post.
type Post struct {
	// ID is the unique identifier for the post.
	ID uint `gorm:"primaryKey" json:"id"`

	// Title is the post headline. Required, at least 3 characters.
	Title string `gorm:"size:255;not null" json:"postTitle"`

	// Body is the post text. Required, at least 3 characters.
	Body string `gorm:"type:text;not null" json:"postBody"`

	// Image is the stored path of the attached image, if any.
	Image string `gorm:"size:512" json:"postImage,omitempty"`

	// UserID references the user who created the post.
	UserID uint `gorm:"index" json:"userId"`

	// CreatedAt is the timestamp when the post was created.
	CreatedAt time.Time `json:"createdAt"`

	// UpdatedAt is the timestamp when the post was last updated.
	UpdatedAt time.Time `json:"updatedAt"`
}
