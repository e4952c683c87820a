package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/suite"

	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
)

const (
	testAPIKey    = "APItest"
	testAPISecret = "0123456789abcdef0123456789abcdef"
)

type IssuerTestSuite struct {
	suite.Suite
	issuer Issuer
}

func (s *IssuerTestSuite) SetupTest() {
	s.issuer = New(testAPIKey, testAPISecret, log.NewNop())
}

func (s *IssuerTestSuite) parse(tok string) *Claims {
	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(tok, claims, func(t *jwt.Token) (any, error) {
		return []byte(testAPISecret), nil
	})
	s.Require().NoError(err)
	s.Require().True(parsed.Valid)
	return claims
}

func (s *IssuerTestSuite) TestParticipantToken() {
	tok := s.issuer.ParticipantToken("user-1", "room-abc", "Alice", 4)
	s.False(IsPlaceholder(tok))

	claims := s.parse(tok)
	s.Equal(testAPIKey, claims.Issuer)
	s.Equal("user-1", claims.Subject)
	s.Equal("Alice", claims.Name)

	s.Require().NotNil(claims.Video)
	s.True(claims.Video.RoomJoin)
	s.Equal("room-abc", claims.Video.Room)
	s.Equal(uint32(4), claims.Video.MaxParticipants)
	s.False(claims.Video.RoomAdmin)

	s.True(claims.ExpiresAt.After(time.Now()))
}

func (s *IssuerTestSuite) TestParticipantTokenWithoutCredentials() {
	issuer := New("", "", log.NewNop())

	tok := issuer.ParticipantToken("user-1", "room-abc", "", 0)
	s.Equal(PlaceholderNoCredentials, tok)
	s.True(IsPlaceholder(tok))
}

func (s *IssuerTestSuite) TestAdminToken() {
	tok, err := s.issuer.AdminToken(10 * time.Minute)
	s.Require().NoError(err)

	claims := s.parse(tok)
	s.Equal(testAPIKey, claims.Issuer)
	s.Require().NotNil(claims.Video)
	s.True(claims.Video.RoomCreate)
	s.True(claims.Video.RoomList)
	s.True(claims.Video.RoomAdmin)
	s.False(claims.Video.RoomJoin)
}

func (s *IssuerTestSuite) TestAdminTokenWithoutCredentials() {
	issuer := New(testAPIKey, "", log.NewNop())

	_, err := issuer.AdminToken(time.Minute)
	s.Require().Error(err)
	s.True(errors.Is(err, ErrNoCredentials))
}

func (s *IssuerTestSuite) TestIsPlaceholder() {
	s.True(IsPlaceholder(PlaceholderNoCredentials))
	s.True(IsPlaceholder(PlaceholderSignFailed))
	s.False(IsPlaceholder(""))
	s.False(IsPlaceholder(s.issuer.ParticipantToken("u", "r", "", 0)))
}

func TestIssuerTestSuite(t *testing.T) {
	suite.Run(t, new(IssuerTestSuite))
}
