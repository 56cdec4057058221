package domain

import "errors"

var (
	// ErrMissingFields is raised when registration lacks a required field.
	ErrMissingFields = errors.New("name, email and company are required")
	// ErrMissingContactFields is raised when a contact request lacks a required field.
	ErrMissingContactFields = errors.New("name, email, company and phone are required")
	// ErrEmailTaken is raised when the registration email is already in use.
	ErrEmailTaken = errors.New("a user with this email already exists")

	ErrUserNotFound       = errors.New("user not found")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrInvalidToken       = errors.New("invalid verification token")

	// ErrEmailNotVerified exists for the login verification gate, which is
	// currently disabled; see AuthService.Login.
	ErrEmailNotVerified = errors.New("email address not verified")
)
