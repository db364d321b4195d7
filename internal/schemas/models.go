package schemas

import "time"

// User represents the data model for a registered account.
type User struct {
	ID        int64     `json:"id"`         // Unique identifier for the user.
	Username  string    `json:"username"`   // Username of the user.
	Email     string    `json:"email"`      // Email address of the user.
	Password  string    `json:"-"`          // Password hash of the user, never serialized.
	CreatedAt time.Time `json:"created_at"` // Timestamp when the user was created.
}

// Card represents a digital business card owned by a user. The slug is
// globally unique and addresses the card on all public endpoints.
type Card struct {
	ID                  int64             `json:"id"`
	UserID              int64             `json:"user_id"`
	TemplateID          int64             `json:"template_id"`
	CardSlug            string            `json:"card_slug"`
	FullName            string            `json:"full_name"`
	CompanyName         string            `json:"company_name"`
	JobTitle            string            `json:"job_title"`
	PhoneNumber         string            `json:"phone_number"`
	Email               string            `json:"email"`
	WebsiteURL          string            `json:"website_url"`
	Address             string            `json:"address"`
	SocialMediaLinks    map[string]string `json:"social_media_links"`
	BusinessDescription string            `json:"business_description"`
	CustomCSS           string            `json:"custom_css"`
	IsActive            bool              `json:"is_active"`
	CreatedAt           time.Time         `json:"created_at"`
	UpdatedAt           time.Time         `json:"updated_at"`
}

// Template represents a card layout skeleton. Templates are seeded at
// startup and immutable afterwards.
type Template struct {
	ID                  int64  `json:"id"`
	Name                string `json:"name"`
	StructureDefinition string `json:"structure_definition"`
	PreviewImageURL     string `json:"preview_image_url"`
}

// Visit is an engagement event recorded when a card is viewed. Only a
// one-way hash of the visitor address is retained, never the address itself.
type Visit struct {
	CardID        int64     `json:"card_id"`
	VisitDate     string    `json:"visit_date"` // Calendar day bucket, YYYY-MM-DD.
	VisitorIPHash string    `json:"visitor_ip_hash"`
	Timestamp     time.Time `json:"timestamp"`
}

// Message is an engagement event recorded when a visitor sends a message
// through a card.
type Message struct {
	CardID         int64     `json:"card_id"`
	SenderName     string    `json:"sender_name"`
	SenderEmail    string    `json:"sender_email"`
	MessageContent string    `json:"message_content"`
	ReceivedAt     time.Time `json:"received_at"`
}

// Appointment is an engagement event recorded when a visitor requests an
// appointment through a card.
type Appointment struct {
	CardID         int64     `json:"card_id"`
	RequesterName  string    `json:"requester_name"`
	RequesterEmail string    `json:"requester_email"`
	ProposedTime   string    `json:"proposed_time"`
	CreatedAt      time.Time `json:"created_at"`
}

// LinkClick is an engagement event recorded when a visitor follows one of
// the links on a card.
type LinkClick struct {
	CardID    int64     `json:"card_id"`
	LinkType  string    `json:"link_type"`
	LinkURL   string    `json:"link_url"`
	ClickedAt time.Time `json:"clicked_at"`
}
