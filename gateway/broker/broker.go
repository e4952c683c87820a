package broker

import (
	"context"
	"crypto/rand"
	"strings"

	"github.com/tutorlink/session-gateway/gateway"
	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/livekit"
	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/token"
)

const (
	// DefaultMaxParticipants applies when a room carries no explicit limit.
	DefaultMaxParticipants = 2

	// roomEmptyTimeout lets the registry reap rooms nobody joined,
	// including rooms orphaned by a degraded token issuance.
	roomEmptyTimeout = 300

	roomNameLength   = 8
	roomNameAlphabet = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

const ErrNameGeneration errors.Code = "room name generation failed"

type brokerImpl struct {
	registry livekit.Client
	issuer   token.Issuer
	logger   *log.Logger
}

func New(
	registry livekit.Client,
	issuer token.Issuer,
	logger *log.Logger,
) gateway.SessionBroker {
	return &brokerImpl{
		registry: registry,
		issuer:   issuer,
		logger:   logger,
	}
}

func (b *brokerImpl) StartSession(ctx context.Context, identity, displayName string, maxParticipants uint32) (*gateway.StartSessionResponse, error) {
	if identity == "" {
		return nil, &gateway.MissingArgumentError{Argument: "identity"}
	}

	roomName, err := randomRoomName()
	if err != nil {
		return nil, err
	}

	room, err := b.registry.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:            roomName,
		EmptyTimeout:    roomEmptyTimeout,
		MaxParticipants: maxParticipants,
	})
	if err != nil {
		roomCreationFailed.Add(ctx, 1)
		return nil, &gateway.RoomCreationFailedError{RoomName: roomName, Err: err}
	}

	tok := b.issuer.ParticipantToken(identity, room.Name, displayName, maxParticipants)
	if token.IsPlaceholder(tok) {
		// no rollback here; the empty timeout cleans the room up
		placeholderTokens.Add(ctx, 1)
		b.logger.Warn("room created but token issuance degraded",
			log.String("room", room.Name),
			log.String("identity", identity))
	}

	sessionsStarted.Add(ctx, 1)
	b.logger.Info("session started",
		log.String("room", room.Name),
		log.String("identity", identity),
		log.Int("maxParticipants", int(maxParticipants)))

	return &gateway.StartSessionResponse{
		RoomName: room.Name,
		Token:    tok,
	}, nil
}

func (b *brokerImpl) JoinSession(ctx context.Context, roomName, identity, displayName string) (*gateway.JoinSessionResponse, error) {
	if roomName == "" {
		return nil, &gateway.MissingArgumentError{Argument: "room"}
	}
	if identity == "" {
		return nil, &gateway.MissingArgumentError{Argument: "identity"}
	}

	tok := b.issuer.ParticipantToken(identity, roomName, displayName, 0)
	if token.IsPlaceholder(tok) {
		placeholderTokens.Add(ctx, 1)
	}

	joinsIssued.Add(ctx, 1)
	b.logger.Debug("join credential issued",
		log.String("room", roomName),
		log.String("identity", identity))

	return &gateway.JoinSessionResponse{Token: tok}, nil
}

func (b *brokerImpl) CheckCapacity(ctx context.Context, roomName string) (*gateway.CapacityDecision, error) {
	capacityChecks.Add(ctx, 1)

	room, err := b.registry.DescribeRoom(ctx, roomName)
	if err != nil && !errors.Is(err, livekit.ErrRoomNotFound) {
		// fail closed on registry trouble
		capacityDenied.Add(ctx, 1)
		return &gateway.CapacityDecision{CanJoin: false}, err
	}

	decision := ResolveCapacity(room, b.logger)
	if !decision.CanJoin {
		capacityDenied.Add(ctx, 1)
	}
	return decision, nil
}

func (b *brokerImpl) CreateRoom(ctx context.Context, req *gateway.CreateRoomRequest) (*livekit.Room, error) {
	if req.Name == "" {
		return nil, &gateway.MissingArgumentError{Argument: "room"}
	}

	maxParticipants := req.MaxParticipants
	if maxParticipants == 0 {
		maxParticipants = DefaultMaxParticipants
	}
	emptyTimeout := req.EmptyTimeout
	if emptyTimeout == 0 {
		emptyTimeout = roomEmptyTimeout
	}

	room, err := b.registry.CreateRoom(ctx, &livekit.CreateRoomRequest{
		Name:            req.Name,
		EmptyTimeout:    emptyTimeout,
		MaxParticipants: maxParticipants,
		Metadata:        req.Metadata,
	})
	if err != nil {
		roomCreationFailed.Add(ctx, 1)
		return nil, &gateway.RoomCreationFailedError{RoomName: req.Name, Err: err}
	}

	b.logger.Info("room created",
		log.String("room", room.Name),
		log.Int("maxParticipants", int(maxParticipants)))
	return room, nil
}

func (b *brokerImpl) ListRooms(ctx context.Context) ([]string, error) {
	rooms, err := b.registry.ListRooms(ctx)
	if err != nil {
		return nil, err
	}

	names := make([]string, 0, len(rooms))
	for _, room := range rooms {
		names = append(names, room.Name)
	}
	return names, nil
}

func (b *brokerImpl) DeleteRoom(ctx context.Context, roomName string) (bool, error) {
	if roomName == "" {
		return false, &gateway.MissingArgumentError{Argument: "room"}
	}

	err := b.registry.DeleteRoom(ctx, roomName)
	switch {
	case err == nil:
		roomsDeleted.Add(ctx, 1)
		b.logger.Info("room deleted", log.String("room", roomName))
		return false, nil
	case isAlreadyGone(err):
		deletesAlreadyGone.Add(ctx, 1)
		b.logger.Debug("room already gone", log.String("room", roomName))
		return true, nil
	default:
		return false, err
	}
}

func (b *brokerImpl) Health(ctx context.Context) *gateway.HealthReport {
	rooms, err := b.registry.ListRooms(ctx)
	if err != nil {
		b.logger.Warn("health check failed to list rooms", log.Error(err))
		return &gateway.HealthReport{
			Healthy:     false,
			ServiceKind: b.registry.Kind(),
		}
	}

	return &gateway.HealthReport{
		Healthy:     true,
		ServiceKind: b.registry.Kind(),
		RoomsCount:  len(rooms),
	}
}

// isAlreadyGone matches both the structured not-found error and the
// message-only shapes some registry versions return.
func isAlreadyGone(err error) bool {
	if errors.Is(err, livekit.ErrRoomNotFound) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "not found") || strings.Contains(msg, "does not exist")
}

func randomRoomName() (string, error) {
	buf := make([]byte, roomNameLength)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(ErrNameGeneration, err, "failed to read random bytes")
	}
	for i, b := range buf {
		buf[i] = roomNameAlphabet[int(b)%len(roomNameAlphabet)]
	}
	return string(buf), nil
}
