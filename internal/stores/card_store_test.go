package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"cardlet-server/internal/schemas"
)

func newTestCardStore() *CardStore {
	return NewCardStore(NewTemplateStore())
}

func testCard(userID int64, slug string) schemas.Card {
	return schemas.Card{
		UserID:     userID,
		TemplateID: 1,
		CardSlug:   slug,
		FullName:   "Test Person",
		IsActive:   true,
	}
}

func TestCreateCard(t *testing.T) {
	store := newTestCardStore()

	card, err := store.Create(testCard(1, "test-person"))
	require.NoError(t, err)

	assert.Equal(t, int64(1), card.ID)
	assert.Equal(t, "test-person", card.CardSlug)
	assert.Equal(t, card.CreatedAt, card.UpdatedAt)
	assert.NotNil(t, card.SocialMediaLinks)
}

func TestCreateCardRejectsUnknownTemplate(t *testing.T) {
	store := newTestCardStore()

	card := testCard(1, "test-person")
	card.TemplateID = 99

	_, err := store.Create(card)
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestCreateCardRejectsTakenSlug(t *testing.T) {
	store := newTestCardStore()

	_, err := store.Create(testCard(1, "shared-slug"))
	require.NoError(t, err)

	// Slug uniqueness holds across owners, not per owner.
	_, err = store.Create(testCard(2, "shared-slug"))
	assert.ErrorIs(t, err, ErrSlugTaken)
}

func TestGetOwnedGate(t *testing.T) {
	store := newTestCardStore()

	created, err := store.Create(testCard(1, "test-person"))
	require.NoError(t, err)

	card, err := store.GetOwned(created.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, created.ID, card.ID)

	_, err = store.GetOwned(created.ID, 2)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = store.GetOwned(99, 2)
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestListByUserKeepsCreationOrder(t *testing.T) {
	store := newTestCardStore()

	first, err := store.Create(testCard(1, "first"))
	require.NoError(t, err)
	_, err = store.Create(testCard(2, "other-owner"))
	require.NoError(t, err)
	second, err := store.Create(testCard(1, "second"))
	require.NoError(t, err)

	cards := store.ListByUser(1)
	require.Len(t, cards, 2)
	assert.Equal(t, first.ID, cards[0].ID)
	assert.Equal(t, second.ID, cards[1].ID)

	assert.Empty(t, store.ListByUser(3))
}

func TestUpdateCardPartial(t *testing.T) {
	store := newTestCardStore()

	created, err := store.Create(testCard(1, "test-person"))
	require.NoError(t, err)

	newName := "Renamed Person"
	updated, err := store.Update(created.ID, 1, CardPatch{FullName: &newName})
	require.NoError(t, err)

	assert.Equal(t, "Renamed Person", updated.FullName)
	// Untouched fields survive a partial update.
	assert.Equal(t, created.CardSlug, updated.CardSlug)
	assert.Equal(t, created.TemplateID, updated.TemplateID)
	assert.True(t, updated.IsActive)
}

func TestUpdateCardSlugReindex(t *testing.T) {
	store := newTestCardStore()

	created, err := store.Create(testCard(1, "old-slug"))
	require.NoError(t, err)
	_, err = store.Create(testCard(1, "taken-slug"))
	require.NoError(t, err)

	taken := "taken-slug"
	_, err = store.Update(created.ID, 1, CardPatch{CardSlug: &taken})
	assert.ErrorIs(t, err, ErrSlugTaken)

	// Re-submitting the current slug is not a conflict.
	same := "old-slug"
	_, err = store.Update(created.ID, 1, CardPatch{CardSlug: &same})
	assert.NoError(t, err)

	fresh := "new-slug"
	_, err = store.Update(created.ID, 1, CardPatch{CardSlug: &fresh})
	require.NoError(t, err)

	// The old slug is released for reuse.
	_, err = store.Create(testCard(2, "old-slug"))
	assert.NoError(t, err)
}

func TestUpdateCardOwnershipAndTemplate(t *testing.T) {
	store := newTestCardStore()

	created, err := store.Create(testCard(1, "test-person"))
	require.NoError(t, err)

	name := "Intruder"
	_, err = store.Update(created.ID, 2, CardPatch{FullName: &name})
	assert.ErrorIs(t, err, ErrForbidden)

	badTemplate := int64(99)
	_, err = store.Update(created.ID, 1, CardPatch{TemplateID: &badTemplate})
	assert.ErrorIs(t, err, ErrUnknownTemplate)
}

func TestDeleteCardReleasesSlug(t *testing.T) {
	store := newTestCardStore()

	created, err := store.Create(testCard(1, "test-person"))
	require.NoError(t, err)

	assert.ErrorIs(t, store.Delete(created.ID, 2), ErrForbidden)
	require.NoError(t, store.Delete(created.ID, 1))

	_, err = store.GetOwned(created.ID, 1)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.ErrorIs(t, store.Delete(created.ID, 1), ErrNotFound)

	_, err = store.Create(testCard(2, "test-person"))
	assert.NoError(t, err)
}

func TestGetPublicBySlugOnlyActive(t *testing.T) {
	store := newTestCardStore()

	created, err := store.Create(testCard(1, "test-person"))
	require.NoError(t, err)

	card, found := store.GetPublicBySlug("test-person")
	require.True(t, found)
	assert.Equal(t, created.ID, card.ID)

	inactive := false
	_, err = store.Update(created.ID, 1, CardPatch{IsActive: &inactive})
	require.NoError(t, err)

	// Inactive and unknown slugs look the same from outside.
	_, found = store.GetPublicBySlug("test-person")
	assert.False(t, found)
	_, found = store.GetPublicBySlug("never-existed")
	assert.False(t, found)
}
