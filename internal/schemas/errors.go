// Package schemas defines the data structures exchanged over the API.
package schemas

// CustomError is a struct that represents an error with a stable code
// Code is the machine-readable error code
// Message is the human-readable error message
type CustomError struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ErrorDTO is a struct that represents an error response
// Error is the custom error, see CustomError
type ErrorDTO struct {
	Error CustomError `json:"error"`
}

// The error catalog. Every failure surfaced by the API maps to exactly one
// of these, so clients can switch on the code instead of the message.
var (
	BadRequest          = &CustomError{"ERR-001", "The request body is invalid. Please check the request body and try again."}
	UsernameTaken       = &CustomError{"ERR-002", "The username is already taken. Please try another username."}
	EmailTaken          = &CustomError{"ERR-003", "The email is already registered. Please try another email."}
	InvalidCredentials  = &CustomError{"ERR-004", "Invalid email or password."}
	Unauthorized        = &CustomError{"ERR-005", "The request is unauthorized. Please login to your account."}
	AccessForbidden     = &CustomError{"ERR-006", "Access forbidden. You do not own this card."}
	CardNotFound        = &CustomError{"ERR-007", "Card not found or not active."}
	SlugTaken           = &CustomError{"ERR-008", "The card slug already exists. Please try another slug."}
	InvalidTemplate     = &CustomError{"ERR-009", "The template id does not reference a known template."}
	EmailUnreachable    = &CustomError{"ERR-010", "The email address appears to be unreachable."}
	InternalServerError = &CustomError{"ERR-011", "An internal server error occurred. Please try again later."}
)
