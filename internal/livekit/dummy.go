package livekit

import (
	"context"
	"time"

	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
)

// StatusDummyCreated marks rooms "created" by the dummy backend.
const StatusDummyCreated = "dummy_created"

// dummyClient serves registry calls when no real registry is configured.
// It keeps no state at all: creates succeed without effect, the room list
// is always empty and lookups always miss. This keeps local development
// and CI working without media infrastructure.
type dummyClient struct {
	logger *log.Logger
}

func newDummyClient(logger *log.Logger) Client {
	return &dummyClient{logger: logger}
}

func (d *dummyClient) Kind() ServiceKind {
	return ServiceKindDummy
}

func (d *dummyClient) CreateRoom(_ context.Context, req *CreateRoomRequest) (*Room, error) {
	d.logger.Debug("dummy create room", log.String("room", req.Name))
	return &Room{
		Name:            req.Name,
		EmptyTimeout:    req.EmptyTimeout,
		MaxParticipants: req.MaxParticipants,
		Metadata:        req.Metadata,
		CreationTime:    time.Now().Unix(),
		Status:          StatusDummyCreated,
	}, nil
}

func (d *dummyClient) ListRooms(_ context.Context) ([]*Room, error) {
	return []*Room{}, nil
}

func (d *dummyClient) DescribeRoom(_ context.Context, name string) (*Room, error) {
	return nil, errors.Newf(ErrRoomNotFound, "room %q does not exist", name)
}

func (d *dummyClient) DeleteRoom(_ context.Context, name string) error {
	d.logger.Debug("dummy delete room", log.String("room", name))
	return nil
}
