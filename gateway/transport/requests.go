package transport

// CreateRoomRequest creates a room with an explicit name.
type CreateRoomRequest struct {
	Room            string `json:"room" binding:"required,roomname"`
	MaxParticipants uint32 `json:"max_participants" binding:"omitempty,lte=1000"`
	EmptyTimeout    uint32 `json:"empty_timeout" binding:"omitempty,lte=86400"`
	Metadata        string `json:"metadata" binding:"omitempty,max=4096"`
}

// TokenRequest asks for a join credential for an existing room.
type TokenRequest struct {
	Identity string `json:"identity" binding:"required,identity"`
	Room     string `json:"room" binding:"required,roomname"`
	Name     string `json:"name" binding:"omitempty,max=128"`
}

// StartSessionRequest creates a fresh room plus a credential in one call.
type StartSessionRequest struct {
	Identity        string `json:"identity" binding:"required,identity"`
	Name            string `json:"name" binding:"omitempty,max=128"`
	MaxParticipants uint32 `json:"max_participants" binding:"omitempty,lte=1000"`
}

type RoomURIRequest struct {
	RoomID string `uri:"roomId" binding:"required,roomname"`
}

type TranscriptionRequest struct {
	RoomName string `json:"room_name" binding:"required,roomname"`
}
