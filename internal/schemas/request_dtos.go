// Package schemas defines the request structures for the various operations of the API.
package schemas

// RegistrationRequest is a struct that represents a registration request
// Username is required and must be less than 20 characters
// Email is required and must be a valid email
// Password is required and must be at least 8 characters
type RegistrationRequest struct {
	Username string `json:"username" validate:"required,max=20,username_validation"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// LoginRequest is a struct that represents a login request
// Email is required and must be a valid email
// Password is required
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// CreateCardRequest is a struct that represents a create card request
// TemplateID, CardSlug and FullName are required; everything else is optional
// display data. IsActive defaults to true when omitted.
type CreateCardRequest struct {
	TemplateID          int64             `json:"template_id" validate:"required"`
	CardSlug            string            `json:"card_slug" validate:"required,max=50,slug_validation"`
	FullName            string            `json:"full_name" validate:"required,max=100"`
	CompanyName         string            `json:"company_name" validate:"max=100"`
	JobTitle            string            `json:"job_title" validate:"max=100"`
	PhoneNumber         string            `json:"phone_number" validate:"max=30"`
	Email               string            `json:"email" validate:"omitempty,email"`
	WebsiteURL          string            `json:"website_url" validate:"omitempty,url"`
	Address             string            `json:"address" validate:"max=200"`
	SocialMediaLinks    map[string]string `json:"social_media_links"`
	BusinessDescription string            `json:"business_description" validate:"max=1000"`
	CustomCSS           string            `json:"custom_css"`
	IsActive            *bool             `json:"is_active"`
}

// UpdateCardRequest is a struct that represents a partial card update.
// Every field is a pointer: an absent key means "no change", not "clear".
type UpdateCardRequest struct {
	TemplateID          *int64             `json:"template_id"`
	CardSlug            *string            `json:"card_slug" validate:"omitempty,max=50,slug_validation"`
	FullName            *string            `json:"full_name" validate:"omitempty,max=100"`
	CompanyName         *string            `json:"company_name" validate:"omitempty,max=100"`
	JobTitle            *string            `json:"job_title" validate:"omitempty,max=100"`
	PhoneNumber         *string            `json:"phone_number" validate:"omitempty,max=30"`
	Email               *string            `json:"email" validate:"omitempty,email"`
	WebsiteURL          *string            `json:"website_url" validate:"omitempty,url"`
	Address             *string            `json:"address" validate:"omitempty,max=200"`
	SocialMediaLinks    *map[string]string `json:"social_media_links"`
	BusinessDescription *string            `json:"business_description" validate:"omitempty,max=1000"`
	CustomCSS           *string            `json:"custom_css"`
	IsActive            *bool              `json:"is_active"`
}

// MessageRequest is a struct that represents a visitor message
// MessageContent is required; sender name and email are optional
type MessageRequest struct {
	SenderName     string `json:"sender_name" validate:"max=100"`
	SenderEmail    string `json:"sender_email" validate:"omitempty,email"`
	MessageContent string `json:"message_content" validate:"required,max=2000"`
}

// AppointmentRequest is a struct that represents an appointment request
// All three fields are required
type AppointmentRequest struct {
	RequesterName  string `json:"requester_name" validate:"required,max=100"`
	RequesterEmail string `json:"requester_email" validate:"required,email"`
	ProposedTime   string `json:"proposed_time" validate:"required,max=100"`
}

// LinkClickRequest is a struct that represents a link click event
// LinkType and LinkURL are required
type LinkClickRequest struct {
	LinkType string `json:"link_type" validate:"required,max=50"`
	LinkURL  string `json:"link_url" validate:"required,max=500"`
}
