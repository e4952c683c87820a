package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Issuer mints signed credentials for the room provider. It holds no state
// beyond the API key pair and is safe for concurrent use.
type Issuer interface {
	// ParticipantToken returns a join credential scoped to exactly one room.
	// When signing credentials are absent or signing fails it returns a
	// placeholder token instead of an error so callers can degrade
	// gracefully; use IsPlaceholder to detect that case.
	ParticipantToken(identity, room, displayName string, maxParticipants uint32) string

	// AdminToken returns a short-lived credential carrying room management
	// grants, used to authenticate server-to-registry calls.
	AdminToken(ttl time.Duration) (string, error)
}

// VideoGrant is the room access grant embedded in issued tokens.
type VideoGrant struct {
	RoomJoin   bool   `json:"roomJoin,omitempty"`
	Room       string `json:"room,omitempty"`
	RoomCreate bool   `json:"roomCreate,omitempty"`
	RoomList   bool   `json:"roomList,omitempty"`
	RoomAdmin  bool   `json:"roomAdmin,omitempty"`

	// MaxParticipants is informational only; admission is enforced against
	// live registry state, not by the token.
	MaxParticipants uint32 `json:"maxParticipants,omitempty"`
}

// Claims is the JWT payload understood by the room provider.
type Claims struct {
	jwt.RegisteredClaims
	Name  string      `json:"name,omitempty"`
	Video *VideoGrant `json:"video,omitempty"`
}
