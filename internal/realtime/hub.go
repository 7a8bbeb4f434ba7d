package realtime

import (
	"sync"
	"time"
)

// Event types pushed over the change feed.
const (
	EventIntakeSubmitted  = "intake.submitted"
	EventDocumentReviewed = "document.reviewed"
	EventPaymentUpdated   = "payment.updated"
	EventTicketMessage    = "ticket.message"
)

// Event is one change notification. UserID scopes delivery: subscribers only
// receive events for their own user unless they are admins.
type Event struct {
	Type    string      `json:"type"`
	UserID  uint        `json:"user_id"`
	Payload interface{} `json:"payload"`
	At      time.Time   `json:"at"`
}

// Subscriber drains events from its channel until Close.
type Subscriber struct {
	UserID  uint
	IsAdmin bool
	C       chan Event

	hub  *Hub
	once sync.Once
}

// Close detaches the subscriber from the hub.
func (s *Subscriber) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s)
		close(s.C)
	})
}

// Hub fans change events out to websocket subscribers. Slow subscribers drop
// events instead of blocking the publisher.
type Hub struct {
	mu   sync.RWMutex
	subs map[*Subscriber]struct{}
}

func NewHub() *Hub {
	return &Hub{subs: make(map[*Subscriber]struct{})}
}

func (h *Hub) Subscribe(userID uint, isAdmin bool) *Subscriber {
	sub := &Subscriber{
		UserID:  userID,
		IsAdmin: isAdmin,
		C:       make(chan Event, 64),
		hub:     h,
	}
	h.mu.Lock()
	h.subs[sub] = struct{}{}
	h.mu.Unlock()
	return sub
}

func (h *Hub) unsubscribe(sub *Subscriber) {
	h.mu.Lock()
	delete(h.subs, sub)
	h.mu.Unlock()
}

// Publish delivers the event to every matching subscriber.
func (h *Hub) Publish(ev Event) {
	if ev.At.IsZero() {
		ev.At = time.Now()
	}
	h.mu.RLock()
	defer h.mu.RUnlock()
	for sub := range h.subs {
		if !sub.IsAdmin && sub.UserID != ev.UserID {
			continue
		}
		select {
		case sub.C <- ev:
		default:
			// subscriber is not keeping up, drop
		}
	}
}

// Publisher is the capability the services depend on.
type Publisher interface {
	Publish(ev Event)
}
