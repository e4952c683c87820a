package broker

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tutorlink/session-gateway/internal/livekit"
	"github.com/tutorlink/session-gateway/internal/log"
)

func TestResolveCapacity(t *testing.T) {
	tests := []struct {
		name string
		room *livekit.Room

		canJoin bool
		current int
		max     int
	}{
		{
			name:    "nil room is joinable at default limit",
			room:    nil,
			canJoin: true, current: 0, max: 2,
		},
		{
			name:    "below registry limit",
			room:    &livekit.Room{NumParticipants: 1, MaxParticipants: 4},
			canJoin: true, current: 1, max: 4,
		},
		{
			name:    "at registry limit",
			room:    &livekit.Room{NumParticipants: 4, MaxParticipants: 4},
			canJoin: false, current: 4, max: 4,
		},
		{
			name:    "zero limit means unlimited",
			room:    &livekit.Room{NumParticipants: 250, MaxParticipants: 0},
			canJoin: true, current: 250, max: 0,
		},
		{
			name: "metadata override wins over registry limit",
			room: &livekit.Room{
				NumParticipants: 4,
				MaxParticipants: 4,
				Metadata:        `{"max_participants": 6}`,
			},
			canJoin: true, current: 4, max: 6,
		},
		{
			name: "metadata override can shrink the limit",
			room: &livekit.Room{
				NumParticipants: 2,
				MaxParticipants: 10,
				Metadata:        `{"max_participants": 2}`,
			},
			canJoin: false, current: 2, max: 2,
		},
		{
			name: "string-typed metadata value is accepted",
			room: &livekit.Room{
				NumParticipants: 1,
				MaxParticipants: 2,
				Metadata:        `{"max_participants": "5"}`,
			},
			canJoin: true, current: 1, max: 5,
		},
		{
			name: "malformed metadata falls back to registry limit",
			room: &livekit.Room{
				NumParticipants: 2,
				MaxParticipants: 2,
				Metadata:        `not json at all`,
			},
			canJoin: false, current: 2, max: 2,
		},
		{
			name: "unrelated metadata keys are ignored",
			room: &livekit.Room{
				NumParticipants: 0,
				MaxParticipants: 3,
				Metadata:        `{"topic": "algebra"}`,
			},
			canJoin: true, current: 0, max: 3,
		},
		{
			name: "negative metadata value is ignored",
			room: &livekit.Room{
				NumParticipants: 1,
				MaxParticipants: 2,
				Metadata:        `{"max_participants": -1}`,
			},
			canJoin: true, current: 1, max: 2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			decision := ResolveCapacity(tt.room, log.NewNop())
			assert.Equal(t, tt.canJoin, decision.CanJoin)
			assert.Equal(t, tt.current, decision.CurrentParticipants)
			assert.Equal(t, tt.max, decision.MaxParticipants)
		})
	}
}
