package stores

import (
	"sync"
	"time"

	"cardlet-server/internal/schemas"
)

// CardPatch carries a partial card update. A nil field means "leave
// unchanged", never "clear".
type CardPatch struct {
	TemplateID          *int64
	CardSlug            *string
	FullName            *string
	CompanyName         *string
	JobTitle            *string
	PhoneNumber         *string
	Email               *string
	WebsiteURL          *string
	Address             *string
	SocialMediaLinks    *map[string]string
	BusinessDescription *string
	CustomCSS           *string
	IsActive            *bool
}

// CardStore holds the live card collection, keyed by id and by slug. Slug
// uniqueness is enforced across the whole collection under the store lock.
type CardStore struct {
	mu        sync.RWMutex
	cards     map[int64]*schemas.Card
	bySlug    map[string]int64
	order     []int64
	templates *TemplateStore
	nextID    int64
}

func NewCardStore(templates *TemplateStore) *CardStore {
	return &CardStore{
		cards:     make(map[int64]*schemas.Card),
		bySlug:    make(map[string]int64),
		templates: templates,
		nextID:    1,
	}
}

// Create inserts a new card for the given owner. The template must be
// seeded and the slug must be free across all live cards; id assignment and
// the slug check-and-insert happen under one lock.
func (s *CardStore) Create(card schemas.Card) (schemas.Card, error) {
	if !s.templates.Exists(card.TemplateID) {
		return schemas.Card{}, ErrUnknownTemplate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, taken := s.bySlug[card.CardSlug]; taken {
		return schemas.Card{}, ErrSlugTaken
	}

	now := time.Now().UTC()
	card.ID = s.nextID
	card.CreatedAt = now
	card.UpdatedAt = now
	if card.SocialMediaLinks == nil {
		card.SocialMediaLinks = make(map[string]string)
	}

	stored := card
	s.cards[stored.ID] = &stored
	s.bySlug[stored.CardSlug] = stored.ID
	s.order = append(s.order, stored.ID)
	s.nextID++

	return card, nil
}

// GetOwned returns the card only when the requester owns it. ErrNotFound
// takes precedence over ErrForbidden. This is the ownership gate shared by
// single-card reads, updates, deletes and analytics queries.
func (s *CardStore) GetOwned(cardID, requesterID int64) (schemas.Card, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	card, ok := s.cards[cardID]
	if !ok {
		return schemas.Card{}, ErrNotFound
	}
	if card.UserID != requesterID {
		return schemas.Card{}, ErrForbidden
	}
	return *card, nil
}

// ListByUser returns the cards owned by the given user in creation order.
func (s *CardStore) ListByUser(userID int64) []schemas.Card {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schemas.Card, 0)
	for _, id := range s.order {
		if card, ok := s.cards[id]; ok && card.UserID == userID {
			out = append(out, *card)
		}
	}
	return out
}

// Update applies a partial update after passing the ownership gate. Slug
// changes are revalidated against every other live card, template changes
// against the seeded templates. UpdatedAt is refreshed on success.
func (s *CardStore) Update(cardID, requesterID int64, patch CardPatch) (schemas.Card, error) {
	if patch.TemplateID != nil && !s.templates.Exists(*patch.TemplateID) {
		return schemas.Card{}, ErrUnknownTemplate
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[cardID]
	if !ok {
		return schemas.Card{}, ErrNotFound
	}
	if card.UserID != requesterID {
		return schemas.Card{}, ErrForbidden
	}

	if patch.CardSlug != nil && *patch.CardSlug != card.CardSlug {
		if _, taken := s.bySlug[*patch.CardSlug]; taken {
			return schemas.Card{}, ErrSlugTaken
		}
		delete(s.bySlug, card.CardSlug)
		card.CardSlug = *patch.CardSlug
		s.bySlug[card.CardSlug] = card.ID
	}

	if patch.TemplateID != nil {
		card.TemplateID = *patch.TemplateID
	}
	if patch.FullName != nil {
		card.FullName = *patch.FullName
	}
	if patch.CompanyName != nil {
		card.CompanyName = *patch.CompanyName
	}
	if patch.JobTitle != nil {
		card.JobTitle = *patch.JobTitle
	}
	if patch.PhoneNumber != nil {
		card.PhoneNumber = *patch.PhoneNumber
	}
	if patch.Email != nil {
		card.Email = *patch.Email
	}
	if patch.WebsiteURL != nil {
		card.WebsiteURL = *patch.WebsiteURL
	}
	if patch.Address != nil {
		card.Address = *patch.Address
	}
	if patch.SocialMediaLinks != nil {
		card.SocialMediaLinks = *patch.SocialMediaLinks
	}
	if patch.BusinessDescription != nil {
		card.BusinessDescription = *patch.BusinessDescription
	}
	if patch.CustomCSS != nil {
		card.CustomCSS = *patch.CustomCSS
	}
	if patch.IsActive != nil {
		card.IsActive = *patch.IsActive
	}
	card.UpdatedAt = time.Now().UTC()

	return *card, nil
}

// Delete removes the card permanently after passing the ownership gate.
func (s *CardStore) Delete(cardID, requesterID int64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	card, ok := s.cards[cardID]
	if !ok {
		return ErrNotFound
	}
	if card.UserID != requesterID {
		return ErrForbidden
	}

	delete(s.cards, cardID)
	delete(s.bySlug, card.CardSlug)
	for i, id := range s.order {
		if id == cardID {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
	return nil
}

// GetPublicBySlug returns the card addressed by the slug only when it is
// active. Unknown and inactive slugs are indistinguishable to the caller.
func (s *CardStore) GetPublicBySlug(slug string) (schemas.Card, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	id, ok := s.bySlug[slug]
	if !ok {
		return schemas.Card{}, false
	}
	card := s.cards[id]
	if !card.IsActive {
		return schemas.Card{}, false
	}
	return *card, true
}
