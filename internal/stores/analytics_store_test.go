package stores

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisitorStatsDeduplicatesPerDay(t *testing.T) {
	store := NewAnalyticsStore()

	store.RecordVisit(1, "2026-08-30", "hash-a")
	store.RecordVisit(1, "2026-08-30", "hash-a")
	store.RecordVisit(1, "2026-08-30", "hash-b")
	store.RecordVisit(1, "2026-08-31", "hash-a")
	store.RecordVisit(2, "2026-08-30", "hash-c")

	stats := store.VisitorStats(1)
	require.Len(t, stats, 2)

	// Ascending by date, repeat views from the same hash collapse.
	assert.Equal(t, "2026-08-30", stats[0].Date)
	assert.Equal(t, 2, stats[0].UniqueVisitors)
	assert.Equal(t, "2026-08-31", stats[1].Date)
	assert.Equal(t, 1, stats[1].UniqueVisitors)
}

func TestVisitorStatsEmptyWithoutViews(t *testing.T) {
	store := NewAnalyticsStore()

	assert.Empty(t, store.VisitorStats(1))
}

func TestMessagesForNewestFirst(t *testing.T) {
	store := NewAnalyticsStore()

	store.RecordMessage(1, "Alice", "alice@example.com", "first message")
	store.RecordMessage(2, "Carol", "carol@example.com", "other card")
	store.RecordMessage(1, "Bob", "bob@example.com", "second message")

	messages := store.MessagesFor(1)
	require.Len(t, messages, 2)
	assert.Equal(t, "second message", messages[0].MessageContent)
	assert.Equal(t, "first message", messages[1].MessageContent)
}

func TestAppointmentsForNewestFirst(t *testing.T) {
	store := NewAnalyticsStore()

	store.RecordAppointment(1, "Alice", "alice@example.com", "2026-09-01 10:00")
	store.RecordAppointment(1, "Bob", "bob@example.com", "2026-09-02 15:00")

	appointments := store.AppointmentsFor(1)
	require.Len(t, appointments, 2)
	assert.Equal(t, "Bob", appointments[0].RequesterName)
	assert.Equal(t, "Alice", appointments[1].RequesterName)

	assert.Empty(t, store.AppointmentsFor(2))
}

func TestLinkClicksForNewestFirst(t *testing.T) {
	store := NewAnalyticsStore()

	store.RecordLinkClick(1, "website", "https://example.com")
	store.RecordLinkClick(1, "linkedin", "https://linkedin.com/in/example")

	clicks := store.LinkClicksFor(1)
	require.Len(t, clicks, 2)
	assert.Equal(t, "linkedin", clicks[0].LinkType)
	assert.Equal(t, "website", clicks[1].LinkType)
}
