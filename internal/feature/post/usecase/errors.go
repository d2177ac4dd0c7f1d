// Package usecase implements the business logic for the post feature.
package usecase

import "errors"

var (
	// ErrPostNotFound is returned when a post cannot be found by ID.
	ErrPostNotFound = errors.New("post not found")

	// ErrTitleTooShort is returned when a post title is missing or under the minimum length.
	ErrTitleTooShort = errors.New("title should be at least 3 characters long")

	// ErrBodyTooShort is returned when a post body is missing or under the minimum length.
	ErrBodyTooShort = errors.New("post body should be at least 3 characters long")
)
