package token

import (
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
)

const (
	// Placeholder tokens returned when no real credential can be signed.
	// They are valid strings but never valid JWTs, so downstream media
	// servers reject them while local flows keep working.
	PlaceholderNoCredentials = "placeholder-token.no-credentials"
	PlaceholderSignFailed    = "placeholder-token.sign-failed"

	placeholderPrefix = "placeholder-token."

	defaultParticipantTTL = 6 * time.Hour
)

const (
	ErrNoCredentials errors.Code = "signing credentials not configured"
	ErrSignFailed    errors.Code = "token signing failed"
)

// IsPlaceholder reports whether tok is a degraded-mode placeholder rather
// than a signed credential.
func IsPlaceholder(tok string) bool {
	return strings.HasPrefix(tok, placeholderPrefix)
}

type issuerImpl struct {
	apiKey    string
	apiSecret string
	logger    *log.Logger
}

// New returns an Issuer signing with the given API key pair. Empty
// credentials are allowed; the issuer then serves placeholders only.
func New(apiKey, apiSecret string, logger *log.Logger) Issuer {
	if apiKey == "" || apiSecret == "" {
		logger.Warn("no signing credentials, issuing placeholder tokens only")
	}
	return &issuerImpl{
		apiKey:    apiKey,
		apiSecret: apiSecret,
		logger:    logger,
	}
}

func (i *issuerImpl) ParticipantToken(identity, room, displayName string, maxParticipants uint32) string {
	if i.apiKey == "" || i.apiSecret == "" {
		return PlaceholderNoCredentials
	}

	tok, err := i.sign(identity, displayName, defaultParticipantTTL, &VideoGrant{
		RoomJoin:        true,
		Room:            room,
		MaxParticipants: maxParticipants,
	})
	if err != nil {
		i.logger.Error("failed to sign participant token",
			log.String("identity", identity),
			log.String("room", room),
			log.Error(err))
		return PlaceholderSignFailed
	}
	return tok
}

func (i *issuerImpl) AdminToken(ttl time.Duration) (string, error) {
	if i.apiKey == "" || i.apiSecret == "" {
		return "", errors.New(ErrNoCredentials, "issuer has no API key pair")
	}

	tok, err := i.sign(i.apiKey, "", ttl, &VideoGrant{
		RoomCreate: true,
		RoomList:   true,
		RoomAdmin:  true,
	})
	if err != nil {
		return "", errors.Wrap(ErrSignFailed, err, "failed to sign admin token")
	}
	return tok, nil
}

func (i *issuerImpl) sign(identity, displayName string, ttl time.Duration, grant *VideoGrant) (string, error) {
	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    i.apiKey,
			Subject:   identity,
			ID:        identity,
			NotBefore: jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
		Name:  displayName,
		Video: grant,
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(i.apiSecret))
}
