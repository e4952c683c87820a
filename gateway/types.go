package gateway

import (
	"context"
	"fmt"

	"github.com/tutorlink/session-gateway/internal/livekit"
)

// SessionBroker defines the session and capacity operations exposed over
// HTTP. All room state lives in the registry; the broker itself keeps none.
type SessionBroker interface {
	// StartSession creates a fresh randomly named room and issues a join
	// credential for the caller. Room creation and token issuance are two
	// steps with no rollback: if issuance degrades after the room exists,
	// the room is left behind for the registry's empty timeout to reap.
	StartSession(ctx context.Context, identity, displayName string, maxParticipants uint32) (*StartSessionResponse, error)

	// JoinSession issues a credential for an existing room. It does not
	// consult capacity; clients are expected to call CheckCapacity first.
	JoinSession(ctx context.Context, roomName, identity, displayName string) (*JoinSessionResponse, error)

	// CheckCapacity reports whether one more participant fits. A missing
	// room is joinable (it will be created on first join); a registry
	// failure is not.
	CheckCapacity(ctx context.Context, roomName string) (*CapacityDecision, error)

	CreateRoom(ctx context.Context, req *CreateRoomRequest) (*livekit.Room, error)
	ListRooms(ctx context.Context) ([]string, error)

	// DeleteRoom is idempotent: deleting an absent room reports
	// alreadyGone instead of failing.
	DeleteRoom(ctx context.Context, roomName string) (alreadyGone bool, err error)

	Health(ctx context.Context) *HealthReport
}

type CreateRoomRequest struct {
	Name            string
	EmptyTimeout    uint32
	MaxParticipants uint32
	Metadata        string
}

type StartSessionResponse struct {
	RoomName string `json:"room"`
	Token    string `json:"token"`
}

type JoinSessionResponse struct {
	Token string `json:"token"`
}

// CapacityDecision is the broker's admission verdict for one prospective
// participant. MaxParticipants of 0 means unlimited.
type CapacityDecision struct {
	CanJoin             bool `json:"can_join"`
	CurrentParticipants int  `json:"current_participants"`
	MaxParticipants     int  `json:"max_participants"`
}

type HealthReport struct {
	Healthy     bool
	ServiceKind livekit.ServiceKind
	RoomsCount  int
}

// Custom error types
type RoomCreationFailedError struct {
	RoomName string
	Err      error
}

func (e *RoomCreationFailedError) Error() string {
	return fmt.Sprintf("failed to create room %s: %v", e.RoomName, e.Err)
}

func (e *RoomCreationFailedError) Unwrap() error {
	return e.Err
}

type MissingArgumentError struct {
	Argument string
}

func (e *MissingArgumentError) Error() string {
	return fmt.Sprintf("%s is required", e.Argument)
}
