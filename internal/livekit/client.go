package livekit

import (
	"context"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/token"
)

const (
	pathCreateRoom = "/twirp/livekit.RoomService/CreateRoom"
	pathListRooms  = "/twirp/livekit.RoomService/ListRooms"
	pathDeleteRoom = "/twirp/livekit.RoomService/DeleteRoom"

	registryAPITimeout = 10 * time.Second
	adminTokenTTL      = 10 * time.Minute
)

var (
	client = resty.New().
		SetHeader("Content-Type", "application/json").
		SetTimeout(registryAPITimeout)
)

type listRoomsRequest struct {
	Names []string `json:"names,omitempty"`
}

type listRoomsResponse struct {
	Rooms []*Room `json:"rooms"`
}

type deleteRoomRequest struct {
	Room string `json:"room"`
}

type twirpError struct {
	Code string `json:"code"`
	Msg  string `json:"msg"`
}

type clientImpl struct {
	baseURL string
	issuer  token.Issuer
	logger  *log.Logger
}

// newClient creates a registry client backed by go-resty. Each call mints a
// fresh short-lived admin token, so nothing long-lived is held here.
func newClient(host string, issuer token.Issuer, logger *log.Logger) Client {
	if logger == nil {
		panic("logger is required")
	}
	return &clientImpl{
		baseURL: normalizeHost(host),
		issuer:  issuer,
		logger:  logger,
	}
}

// normalizeHost maps signalling URLs (ws/wss) onto the HTTP API base.
func normalizeHost(host string) string {
	host = strings.TrimRight(host, "/")
	switch {
	case strings.HasPrefix(host, "ws://"):
		return "http://" + strings.TrimPrefix(host, "ws://")
	case strings.HasPrefix(host, "wss://"):
		return "https://" + strings.TrimPrefix(host, "wss://")
	}
	return host
}

func (c *clientImpl) Kind() ServiceKind {
	return ServiceKindLive
}

func (c *clientImpl) CreateRoom(ctx context.Context, req *CreateRoomRequest) (*Room, error) {
	var room Room
	if err := c.post(ctx, pathCreateRoom, req, &room); err != nil {
		return nil, err
	}
	if room.Name == "" {
		return nil, errors.New(ErrInvalidResponse, "create room response missing name")
	}
	room.Status = "created"
	return &room, nil
}

func (c *clientImpl) ListRooms(ctx context.Context) ([]*Room, error) {
	var resp listRoomsResponse
	if err := c.post(ctx, pathListRooms, &listRoomsRequest{}, &resp); err != nil {
		return nil, err
	}
	return resp.Rooms, nil
}

func (c *clientImpl) DescribeRoom(ctx context.Context, name string) (*Room, error) {
	var resp listRoomsResponse
	if err := c.post(ctx, pathListRooms, &listRoomsRequest{Names: []string{name}}, &resp); err != nil {
		return nil, err
	}
	for _, room := range resp.Rooms {
		if room.Name == name {
			return room, nil
		}
	}
	return nil, errors.Newf(ErrRoomNotFound, "room %q does not exist", name)
}

func (c *clientImpl) DeleteRoom(ctx context.Context, name string) error {
	return c.post(ctx, pathDeleteRoom, &deleteRoomRequest{Room: name}, &struct{}{})
}

func (c *clientImpl) post(ctx context.Context, path string, payload any, result any) error {
	adminToken, err := c.issuer.AdminToken(adminTokenTTL)
	if err != nil {
		return errors.Wrap(ErrAuthFailed, err, "cannot mint admin token")
	}
	c.logger.Debug("registry req", log.String("path", path), log.Any("body", payload))

	var twErr twirpError
	resp, err := client.R().
		SetContext(ctx).
		SetAuthToken(adminToken).
		SetBody(payload).
		SetResult(result).
		SetError(&twErr).
		Post(c.baseURL + path)
	if err != nil {
		return errors.Wrapf(ErrFailedRequest, err, "registry request %s failed", path)
	}

	if resp.IsError() {
		if twErr.Code == "not_found" {
			return errors.Newf(ErrRoomNotFound, "registry: %s", twErr.Msg)
		}
		return errors.Newf(ErrNoneSuccessResponse,
			"registry http error: (code: %d, twirp: %s, msg: %s)",
			resp.StatusCode(), twErr.Code, twErr.Msg)
	}
	c.logger.Debug("registry resp", log.Int("status", resp.StatusCode()))
	return nil
}
