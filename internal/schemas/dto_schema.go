package schemas

// UserDTO is a struct that represents a user response
// Username is the username of the user
// Email is the email of the user
type UserDTO struct {
	ID       int64  `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
}

// TokenDTO is a struct that represents a token response
// Token is the JWT token
type TokenDTO struct {
	Token string `json:"token"`
}

// MessageDTO is a struct that represents a plain confirmation response
type MessageDTO struct {
	Message string `json:"message"`
}

// PublicCardDTO is the slug-addressed public projection of a card.
// The owner id and custom CSS are deliberately absent.
type PublicCardDTO struct {
	ID                  int64             `json:"id"`
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
}

// VisitorStatsDTO is one entry of the visitor summary
// Date is the calendar day, UniqueVisitors the count of distinct address
// hashes seen that day
type VisitorStatsDTO struct {
	Date           string `json:"date"`
	UniqueVisitors int    `json:"unique_visitors"`
}

// MetadataDTO is a struct that represents the version response of the root route
type MetadataDTO struct {
	ApiVersion string `json:"apiVersion"`
	ApiName    string `json:"apiName"`
}
