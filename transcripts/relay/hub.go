package relay

import (
	"context"
	"sync"

	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/transcripts"
)

const (
	backlogRooms     = 256
	backlogPerRoom   = 50
	subscriberBuffer = 16
)

// Subscription is one subscriber's view of a room's transcript feed.
// Slow subscribers lose events rather than stall the publisher.
type Subscription struct {
	ID string
	C  <-chan transcripts.Event

	room string
	ch   chan transcripts.Event
	hub  *Hub
	once sync.Once
}

func (s *Subscription) Close() {
	s.once.Do(func() {
		s.hub.unsubscribe(s.room, s.ID)
	})
}

// Hub fans transcript events out to in-process subscribers and keeps a
// short per-room backlog so late joiners see recent lines.
type Hub struct {
	mu      sync.RWMutex
	rooms   map[string]map[string]*Subscription
	backlog *lru.Cache[string, []transcripts.Event]
	logger  *log.Logger
}

func NewHub(logger *log.Logger) *Hub {
	backlog, err := lru.New[string, []transcripts.Event](backlogRooms)
	if err != nil {
		panic(err)
	}
	return &Hub{
		rooms:   make(map[string]map[string]*Subscription),
		backlog: backlog,
		logger:  logger,
	}
}

func (h *Hub) Publish(ctx context.Context, ev transcripts.Event) {
	h.appendBacklog(ev)
	eventsPublished.Add(ctx, 1)

	h.mu.RLock()
	subs := make([]*Subscription, 0, len(h.rooms[ev.Room]))
	for _, sub := range h.rooms[ev.Room] {
		subs = append(subs, sub)
	}
	h.mu.RUnlock()

	for _, sub := range subs {
		select {
		case sub.ch <- ev:
		default:
			eventsDropped.Add(ctx, 1)
			h.logger.Debug("slow transcript subscriber, event dropped",
				log.String("room", ev.Room),
				log.String("subscriber", sub.ID))
		}
	}
}

func (h *Hub) Subscribe(room string) *Subscription {
	sub := &Subscription{
		ID:   uuid.NewString(),
		room: room,
		ch:   make(chan transcripts.Event, subscriberBuffer),
		hub:  h,
	}
	sub.C = sub.ch

	h.mu.Lock()
	if h.rooms[room] == nil {
		h.rooms[room] = make(map[string]*Subscription)
	}
	h.rooms[room][sub.ID] = sub
	h.mu.Unlock()

	subscribersConnected.Add(context.Background(), 1)
	return sub
}

func (h *Hub) unsubscribe(room, id string) {
	h.mu.Lock()
	if subs, ok := h.rooms[room]; ok {
		delete(subs, id)
		if len(subs) == 0 {
			delete(h.rooms, room)
		}
	}
	h.mu.Unlock()

	subscribersConnected.Add(context.Background(), -1)
}

// Backlog returns a copy of the recent events for the room.
func (h *Hub) Backlog(room string) []transcripts.Event {
	events, ok := h.backlog.Get(room)
	if !ok {
		return nil
	}
	out := make([]transcripts.Event, len(events))
	copy(out, events)
	return out
}

func (h *Hub) appendBacklog(ev transcripts.Event) {
	h.mu.Lock()
	defer h.mu.Unlock()

	events, _ := h.backlog.Get(ev.Room)
	events = append(events, ev)
	if len(events) > backlogPerRoom {
		events = events[len(events)-backlogPerRoom:]
	}
	h.backlog.Add(ev.Room, events)
}

// SubscriberCount reports the live subscribers for a room.
func (h *Hub) SubscriberCount(room string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.rooms[room])
}
