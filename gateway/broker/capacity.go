package broker

import (
	"encoding/json"
	"strconv"

	"github.com/tutorlink/session-gateway/gateway"
	"github.com/tutorlink/session-gateway/internal/livekit"
	"github.com/tutorlink/session-gateway/internal/log"
)

// ResolveCapacity decides whether one more participant fits in the room.
//
// Precedence for the limit: a max_participants key in the room metadata
// wins over the registry's own limit, which wins over the default of 2.
// A resolved limit of 0 means unlimited. A nil room (not yet created) is
// always joinable at the default limit.
func ResolveCapacity(room *livekit.Room, logger *log.Logger) *gateway.CapacityDecision {
	if room == nil {
		return &gateway.CapacityDecision{
			CanJoin:             true,
			CurrentParticipants: 0,
			MaxParticipants:     DefaultMaxParticipants,
		}
	}

	max := int(room.MaxParticipants)
	if override, ok := metadataMaxParticipants(room.Metadata, logger); ok {
		max = override
	}

	current := int(room.NumParticipants)
	return &gateway.CapacityDecision{
		CanJoin:             max == 0 || current < max,
		CurrentParticipants: current,
		MaxParticipants:     max,
	}
}

// metadataMaxParticipants extracts a max_participants override from room
// metadata. Metadata is free-form, so anything unparseable is ignored
// rather than treated as an error.
func metadataMaxParticipants(metadata string, logger *log.Logger) (int, bool) {
	if metadata == "" {
		return 0, false
	}

	var fields map[string]any
	if err := json.Unmarshal([]byte(metadata), &fields); err != nil {
		logger.Debug("unparseable room metadata ignored", log.Error(err))
		return 0, false
	}

	raw, ok := fields["max_participants"]
	if !ok {
		return 0, false
	}

	switch v := raw.(type) {
	case float64:
		if v < 0 {
			return 0, false
		}
		return int(v), true
	case string:
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			logger.Debug("non-numeric max_participants in metadata ignored",
				log.String("value", v))
			return 0, false
		}
		return n, true
	default:
		return 0, false
	}
}
