package stores

import (
	"sort"
	"sync"
	"time"

	"cardlet-server/internal/schemas"
)

// AnalyticsStore holds the append-only engagement event logs. Events are
// never mutated or deleted once recorded.
type AnalyticsStore struct {
	mu           sync.RWMutex
	visits       []schemas.Visit
	messages     []schemas.Message
	appointments []schemas.Appointment
	linkClicks   []schemas.LinkClick
}

func NewAnalyticsStore() *AnalyticsStore {
	return &AnalyticsStore{}
}

// RecordVisit appends a view event. The visitor hash must already be the
// one-way hash of the client address; the raw address never reaches the store.
func (s *AnalyticsStore) RecordVisit(cardID int64, visitDate, visitorHash string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.visits = append(s.visits, schemas.Visit{
		CardID:        cardID,
		VisitDate:     visitDate,
		VisitorIPHash: visitorHash,
		Timestamp:     time.Now().UTC(),
	})
}

// RecordMessage appends a message event.
func (s *AnalyticsStore) RecordMessage(cardID int64, senderName, senderEmail, content string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.messages = append(s.messages, schemas.Message{
		CardID:         cardID,
		SenderName:     senderName,
		SenderEmail:    senderEmail,
		MessageContent: content,
		ReceivedAt:     time.Now().UTC(),
	})
}

// RecordAppointment appends an appointment request event.
func (s *AnalyticsStore) RecordAppointment(cardID int64, requesterName, requesterEmail, proposedTime string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.appointments = append(s.appointments, schemas.Appointment{
		CardID:         cardID,
		RequesterName:  requesterName,
		RequesterEmail: requesterEmail,
		ProposedTime:   proposedTime,
		CreatedAt:      time.Now().UTC(),
	})
}

// RecordLinkClick appends a link click event.
func (s *AnalyticsStore) RecordLinkClick(cardID int64, linkType, linkURL string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.linkClicks = append(s.linkClicks, schemas.LinkClick{
		CardID:    cardID,
		LinkType:  linkType,
		LinkURL:   linkURL,
		ClickedAt: time.Now().UTC(),
	})
}

// VisitorStats groups the card's view events by visit day and counts the
// distinct visitor hashes per day. One entry per day with at least one view,
// ascending by date. Repeat views from the same hashed address on the same
// day collapse into one visitor.
func (s *AnalyticsStore) VisitorStats(cardID int64) []schemas.VisitorStatsDTO {
	s.mu.RLock()
	defer s.mu.RUnlock()

	perDay := make(map[string]map[string]struct{})
	for _, visit := range s.visits {
		if visit.CardID != cardID {
			continue
		}
		hashes, ok := perDay[visit.VisitDate]
		if !ok {
			hashes = make(map[string]struct{})
			perDay[visit.VisitDate] = hashes
		}
		hashes[visit.VisitorIPHash] = struct{}{}
	}

	stats := make([]schemas.VisitorStatsDTO, 0, len(perDay))
	for date, hashes := range perDay {
		stats = append(stats, schemas.VisitorStatsDTO{Date: date, UniqueVisitors: len(hashes)})
	}
	sort.Slice(stats, func(i, j int) bool { return stats[i].Date < stats[j].Date })

	return stats
}

// MessagesFor returns the card's message events, newest first. The log is
// appended in arrival order, so walking it backwards gives the ordering.
func (s *AnalyticsStore) MessagesFor(cardID int64) []schemas.Message {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schemas.Message, 0)
	for i := len(s.messages) - 1; i >= 0; i-- {
		if s.messages[i].CardID == cardID {
			out = append(out, s.messages[i])
		}
	}
	return out
}

// AppointmentsFor returns the card's appointment events, newest first.
func (s *AnalyticsStore) AppointmentsFor(cardID int64) []schemas.Appointment {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schemas.Appointment, 0)
	for i := len(s.appointments) - 1; i >= 0; i-- {
		if s.appointments[i].CardID == cardID {
			out = append(out, s.appointments[i])
		}
	}
	return out
}

// LinkClicksFor returns the card's link click events, newest first.
func (s *AnalyticsStore) LinkClicksFor(cardID int64) []schemas.LinkClick {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]schemas.LinkClick, 0)
	for i := len(s.linkClicks) - 1; i >= 0; i-- {
		if s.linkClicks[i].CardID == cardID {
			out = append(out, s.linkClicks[i])
		}
	}
	return out
}
