package stores

import "cardlet-server/internal/schemas"

// TemplateStore holds the card templates. Templates are seeded once at
// startup and read-only afterwards, so no locking is needed.
type TemplateStore struct {
	templates []schemas.Template
}

// NewTemplateStore creates a template store seeded with the built-in card
// layouts.
func NewTemplateStore() *TemplateStore {
	return &TemplateStore{templates: seededTemplates}
}

// All returns the seeded templates in id order.
func (s *TemplateStore) All() []schemas.Template {
	out := make([]schemas.Template, len(s.templates))
	copy(out, s.templates)
	return out
}

// Exists reports whether a template with the given id is seeded.
func (s *TemplateStore) Exists(id int64) bool {
	for _, t := range s.templates {
		if t.ID == id {
			return true
		}
	}
	return false
}

var seededTemplates = []schemas.Template{
	{
		ID:   1,
		Name: "Classic Professional",
		StructureDefinition: `
<div style="border: 1px solid #ccc; padding: 20px; width: 400px; height: 220px; font-family: Arial, sans-serif; background-color: #f8f9fa; display: flex; flex-direction: column; justify-content: space-between;">
  <div style="display: flex; align-items: center; margin-bottom: 10px;">
    <img src="{{logo_url}}" alt="Logo" style="max-width: 60px; max-height: 60px; margin-right: 15px; border-radius: 5px; object-fit: contain;" />
    <div>
      <h2 style="margin: 0 0 5px 0; font-size: 1.4em; color: #333;">{{full_name}}</h2>
      <p style="margin: 0 0 3px 0; font-size: 1em; color: #555;">{{job_title}}</p>
      <p style="margin: 0; font-size: 0.9em; color: #555;">{{company_name}}</p>
    </div>
  </div>
  <div style="font-size: 0.85em; color: #444;">
    <p style="margin: 3px 0;"><strong>Email:</strong> <a href="mailto:{{email}}" style="color: #007bff; text-decoration: none;">{{email}}</a></p>
    <p style="margin: 3px 0;"><strong>Phone:</strong> {{phone_number}}</p>
    <p style="margin: 3px 0;"><strong>Website:</strong> <a href="{{website_url}}" target="_blank" style="color: #007bff; text-decoration: none;">{{website_url}}</a></p>
    <p style="margin: 3px 0;"><strong>Address:</strong> {{address}}</p>
  </div>
  <div style="margin-top: 10px; font-size: 0.8em;">
    <a href="{{linkedin_url}}" target="_blank" style="margin-right: 8px; color: #0077b5; text-decoration: none;">LinkedIn</a>
    <a href="{{twitter_url}}" target="_blank" style="margin-right: 8px; color: #1da1f2; text-decoration: none;">Twitter</a>
    <a href="{{github_url}}" target="_blank" style="color: #333; text-decoration: none;">GitHub</a>
  </div>
</div>
`,
		PreviewImageURL: "http://example.com/preview_template_1.png",
	},
	{
		ID:   2,
		Name: "Modern Minimalist",
		StructureDefinition: `
<div style="border: 1px solid #e0e0e0; padding: 25px; width: 400px; height: 220px; font-family: 'Helvetica Neue', Helvetica, Arial, sans-serif; background-color: #ffffff; display: flex; flex-direction: column; justify-content: center;">
  <div style="text-align: center; margin-bottom: 15px;">
    <img src="{{logo_url}}" alt="Logo" style="max-width: 50px; max-height: 50px; margin-bottom: 10px; border-radius: 50%; object-fit: contain;" />
    <h1 style="margin: 0 0 5px 0; font-size: 1.6em; color: #2c3e50; font-weight: 300;">{{full_name}}</h1>
    <p style="margin: 0 0 10px 0; font-size: 1em; color: #7f8c8d; font-weight: 300;">{{job_title}}</p>
    <p style="margin: 0; font-size: 0.9em; color: #95a5a6; font-weight: 300;">{{company_name}}</p>
  </div>
  <hr style="border: 0; border-top: 1px solid #ecf0f1; margin: 15px 0;" />
  <div style="font-size: 0.8em; color: #7f8c8d; text-align: center;">
    <p style="margin: 4px 0;">{{email}} | {{phone_number}}</p>
    <p style="margin: 4px 0;"><a href="{{website_url}}" target="_blank" style="color: #3498db; text-decoration: none;">{{website_url}}</a></p>
    <div style="margin-top: 8px;">
      <a href="{{linkedin_url}}" target="_blank" style="margin: 0 5px; color: #3498db; text-decoration: none;">L</a>
      <a href="{{twitter_url}}" target="_blank" style="margin: 0 5px; color: #3498db; text-decoration: none;">T</a>
      <a href="{{github_url}}" target="_blank" style="margin: 0 5px; color: #3498db; text-decoration: none;">G</a>
    </div>
  </div>
</div>
`,
		PreviewImageURL: "http://example.com/preview_template_2.png",
	},
	{
		ID:   3,
		Name: "Creative Portfolio",
		StructureDefinition: `
<div style="border: none; padding: 20px; width: 400px; height: 220px; font-family: 'Georgia', serif; background: linear-gradient(135deg, #6dd5ed 0%, #2193b0 100%); color: #ffffff; border-radius: 8px; box-shadow: 0 4px 15px rgba(0,0,0,0.2);">
  <div style="display: flex; justify-content: space-between; align-items: flex-start;">
    <div>
      <h2 style="margin: 0 0 5px 0; font-size: 1.5em; font-weight: bold;">{{full_name}}</h2>
      <p style="margin: 0 0 10px 0; font-size: 0.95em; font-style: italic;">{{job_title}}</p>
      <p style="margin: 0; font-size: 0.9em;">{{company_name}}</p>
    </div>
    <img src="{{logo_url}}" alt="Logo" style="max-width: 55px; max-height: 55px; border-radius: 3px; object-fit: contain; border: 2px solid white;" />
  </div>
  <div style="margin-top: 15px; font-size: 0.85em;">
    <p style="margin: 5px 0;"><strong>E:</strong> <a href="mailto:{{email}}" style="color: #ffffff; text-decoration: none;">{{email}}</a></p>
    <p style="margin: 5px 0;"><strong>P:</strong> {{phone_number}}</p>
    <p style="margin: 5px 0;"><strong>W:</strong> <a href="{{website_url}}" target="_blank" style="color: #ffffff; text-decoration: none;">{{website_url}}</a></p>
  </div>
  <div style="margin-top:10px; text-align: right;">
    <a href="{{linkedin_url}}" target="_blank" style="margin-left: 10px; color: #f0f0f0; text-decoration: none; font-size:0.9em;">LinkedIn</a>
    <a href="{{twitter_url}}" target="_blank" style="margin-left: 10px; color: #f0f0f0; text-decoration: none; font-size:0.9em;">Twitter</a>
  </div>
  <p style="font-size: 0.75em; margin-top: 10px; max-height: 40px; overflow: hidden;">{{business_description}}</p>
</div>
`,
		PreviewImageURL: "http://example.com/preview_template_3.png",
	},
}
