package transcripts

import (
	"context"

	"github.com/tutorlink/session-gateway/internal/errors"
)

// Event is one transcript fragment for a room.
type Event struct {
	Room        string `json:"room"`
	Participant string `json:"participant,omitempty"`
	Text        string `json:"text"`
	Final       bool   `json:"final,omitempty"`
	Timestamp   int64  `json:"timestamp"`
}

// Stream delivers transcript events from an open provider connection.
// The Events channel is closed when the connection ends, for any reason.
type Stream interface {
	Events() <-chan Event
	Close() error
}

// Source opens transcript streams against the speech provider.
type Source interface {
	Open(ctx context.Context, roomName string) (Stream, error)
}

// Publisher fans a transcript event out to subscribers. Implemented by the
// relay hub and its redis bridge.
type Publisher interface {
	Publish(ctx context.Context, ev Event)
}

// Manager owns at most one transcription session per room.
type Manager interface {
	StartSession(ctx context.Context, roomName string) error
	StopSession(roomName string) error
	ActiveSessions() []string
	Close()
}

const (
	ErrSessionExists     errors.Code = "transcription already running"
	ErrNoSession         errors.Code = "no transcription running"
	ErrSessionLimit      errors.Code = "transcription session limit reached"
	ErrSourceUnavailable errors.Code = "transcript provider unavailable"
)
