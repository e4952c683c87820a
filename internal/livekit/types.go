package livekit

import "context"

// ServiceKind tells which backend serves registry calls.
type ServiceKind string

const (
	ServiceKindLive  ServiceKind = "live"
	ServiceKindDummy ServiceKind = "dummy"
)

// Room is the registry's view of a room.
type Room struct {
	SID             string `json:"sid,omitempty"`
	Name            string `json:"name"`
	EmptyTimeout    uint32 `json:"empty_timeout,omitempty"`
	MaxParticipants uint32 `json:"max_participants,omitempty"`
	NumParticipants uint32 `json:"num_participants,omitempty"`
	Metadata        string `json:"metadata,omitempty"`
	CreationTime    int64  `json:"creation_time,string,omitempty"`

	// Status is set locally, not by the registry. The dummy backend marks
	// rooms it pretends to create so responses stay distinguishable.
	Status string `json:"status,omitempty"`
}

type CreateRoomRequest struct {
	Name            string `json:"name"`
	EmptyTimeout    uint32 `json:"empty_timeout,omitempty"`
	MaxParticipants uint32 `json:"max_participants,omitempty"`
	Metadata        string `json:"metadata,omitempty"`
}

// Client talks to the room registry. Implementations hold no room state;
// the registry is the single source of truth.
type Client interface {
	Kind() ServiceKind
	CreateRoom(ctx context.Context, req *CreateRoomRequest) (*Room, error)
	ListRooms(ctx context.Context) ([]*Room, error)
	// DescribeRoom returns ErrRoomNotFound when the room does not exist.
	DescribeRoom(ctx context.Context, name string) (*Room, error)
	DeleteRoom(ctx context.Context, name string) error
}
