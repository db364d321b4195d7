// Package stores holds the in-memory collections of the application. Every
// store serializes its mutations behind a mutex so that check-then-insert
// sequences and id assignment stay atomic under concurrent requests. All
// state is volatile and lost on restart.
package stores

import "errors"

// Sentinel errors returned by the stores. Handlers map these to the error
// catalog in the schemas package.
var (
	ErrNotFound        = errors.New("card not found")
	ErrForbidden       = errors.New("requester does not own the card")
	ErrEmailTaken      = errors.New("email already registered")
	ErrUsernameTaken   = errors.New("username already taken")
	ErrSlugTaken       = errors.New("card slug already exists")
	ErrUnknownTemplate = errors.New("template id does not reference a known template")
)
