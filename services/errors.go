package services

import "errors"

// Shared errors used across services and the HTTP error mapping.
var (
	// Generic not-found. Lookup misses are representable results, never
	// panics: every caller branches on them.
	ErrNotFound = errors.New("requested resource not found")

	// Validation and business-rule errors.
	ErrValidationFailed = errors.New("validation failed")
	ErrInvalidRole      = errors.New("unknown user role")
	ErrPhoneTooShort    = errors.New("phone number must have at least 10 digits")
	ErrInvalidOTPCode   = errors.New("invalid verification code")
	ErrOTPNotSent       = errors.New("no verification code has been sent")
	ErrPhoneNotVerified = errors.New("phone number must be verified before submitting")
	ErrInvalidAmount    = errors.New("order amount must be positive")

	// Entity-specific not-founds for more useful responses.
	ErrHeroSlideNotFound       = errors.New("hero slide not found")
	ErrEventNotFound           = errors.New("event not found")
	ErrGalleryAlbumNotFound    = errors.New("gallery album not found")
	ErrBlogPostNotFound        = errors.New("blog post not found")
	ErrRegistrationNotFound    = errors.New("registration session not found")
	ErrMediaUploadsUnavailable = errors.New("media uploads are not configured")
)
