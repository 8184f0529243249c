package services

import "errors"

// Request-level failures surfaced by the auth and directory services.
// Handlers map these onto HTTP statuses with errors.Is; everything else is
// treated as an internal error.
var (
	// ErrEmailTaken is returned when registering with an email that already
	// has an account.
	ErrEmailTaken = errors.New("email already registered")

	// ErrUsernameTaken is returned when a username is still in use after the
	// collision retry budget is exhausted.
	ErrUsernameTaken = errors.New("username already taken")

	// ErrInvalidCredentials covers unknown email, wrong password and
	// invalid or expired tokens. Deliberately a single error so callers
	// cannot enumerate accounts.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrInvalidUserID is returned for a malformed user identifier.
	ErrInvalidUserID = errors.New("invalid user ID")

	// ErrUserNotFound is returned when no user matches the identifier.
	ErrUserNotFound = errors.New("user not found")

	// ErrForbidden is returned when a user tries to edit someone else's
	// profile.
	ErrForbidden = errors.New("not authorized to update this profile")

	// ErrEmptyUpdate is returned for a profile update carrying no fields.
	ErrEmptyUpdate = errors.New("no data to update")
)
