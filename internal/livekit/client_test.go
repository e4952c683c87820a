package livekit

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/suite"

	"github.com/tutorlink/session-gateway/internal/errors"
	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/internal/token"
)

type ClientTestSuite struct {
	suite.Suite

	server  *httptest.Server
	handler http.HandlerFunc
	client  Client

	lastPath string
	lastAuth string
	lastBody map[string]any
}

func (s *ClientTestSuite) SetupTest() {
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.lastPath = r.URL.Path
		s.lastAuth = r.Header.Get("Authorization")
		s.lastBody = map[string]any{}
		_ = json.NewDecoder(r.Body).Decode(&s.lastBody)
		s.handler(w, r)
	}))

	issuer := token.New("APItest", "0123456789abcdef", log.NewNop())
	s.client = newClient(s.server.URL, issuer, log.NewNop())
}

func (s *ClientTestSuite) TearDownTest() {
	s.server.Close()
}

func (s *ClientTestSuite) respond(status int, body string) {
	s.handler = func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		_, _ = w.Write([]byte(body))
	}
}

func (s *ClientTestSuite) TestCreateRoom() {
	s.respond(http.StatusOK, `{"sid":"RM_1","name":"lesson-1","max_participants":4,"num_participants":0}`)

	room, err := s.client.CreateRoom(context.Background(), &CreateRoomRequest{
		Name:            "lesson-1",
		EmptyTimeout:    300,
		MaxParticipants: 4,
	})
	s.Require().NoError(err)

	s.Equal("/twirp/livekit.RoomService/CreateRoom", s.lastPath)
	s.True(strings.HasPrefix(s.lastAuth, "Bearer "))
	s.Equal("lesson-1", s.lastBody["name"])
	s.Equal(float64(300), s.lastBody["empty_timeout"])

	s.Equal("lesson-1", room.Name)
	s.Equal(uint32(4), room.MaxParticipants)
	s.Equal("created", room.Status)
}

func (s *ClientTestSuite) TestListRooms() {
	s.respond(http.StatusOK, `{"rooms":[{"name":"a","num_participants":1},{"name":"b"}]}`)

	rooms, err := s.client.ListRooms(context.Background())
	s.Require().NoError(err)

	s.Equal("/twirp/livekit.RoomService/ListRooms", s.lastPath)
	s.Require().Len(rooms, 2)
	s.Equal("a", rooms[0].Name)
	s.Equal(uint32(1), rooms[0].NumParticipants)
}

func (s *ClientTestSuite) TestDescribeRoom() {
	s.respond(http.StatusOK, `{"rooms":[{"name":"target","metadata":"{\"max_participants\": 6}"}]}`)

	room, err := s.client.DescribeRoom(context.Background(), "target")
	s.Require().NoError(err)

	s.Equal([]any{"target"}, s.lastBody["names"])
	s.Equal("target", room.Name)
	s.Contains(room.Metadata, "max_participants")
}

func (s *ClientTestSuite) TestDescribeRoomNotFound() {
	s.respond(http.StatusOK, `{"rooms":[]}`)

	_, err := s.client.DescribeRoom(context.Background(), "missing")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrRoomNotFound))
}

func (s *ClientTestSuite) TestDeleteRoom() {
	s.respond(http.StatusOK, `{}`)

	err := s.client.DeleteRoom(context.Background(), "lesson-1")
	s.Require().NoError(err)

	s.Equal("/twirp/livekit.RoomService/DeleteRoom", s.lastPath)
	s.Equal("lesson-1", s.lastBody["room"])
}

func (s *ClientTestSuite) TestDeleteRoomNotFound() {
	s.respond(http.StatusNotFound, `{"code":"not_found","msg":"requested room does not exist"}`)

	err := s.client.DeleteRoom(context.Background(), "missing")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrRoomNotFound))
}

func (s *ClientTestSuite) TestServerError() {
	s.respond(http.StatusInternalServerError, `{"code":"internal","msg":"boom"}`)

	_, err := s.client.ListRooms(context.Background())
	s.Require().Error(err)
	s.True(errors.Is(err, ErrNoneSuccessResponse))
	s.False(errors.Is(err, ErrRoomNotFound))
}

func (s *ClientTestSuite) TestNormalizeHost() {
	s.Equal("http://localhost:7880", normalizeHost("ws://localhost:7880/"))
	s.Equal("https://lk.example.com", normalizeHost("wss://lk.example.com"))
	s.Equal("https://lk.example.com", normalizeHost("https://lk.example.com"))
}

func TestClientTestSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func TestDummyClient(t *testing.T) {
	suite.Run(t, new(DummyClientTestSuite))
}

type DummyClientTestSuite struct {
	suite.Suite
	client Client
}

func (s *DummyClientTestSuite) SetupTest() {
	s.client = newDummyClient(log.NewNop())
}

func (s *DummyClientTestSuite) TestKind() {
	s.Equal(ServiceKindDummy, s.client.Kind())
}

func (s *DummyClientTestSuite) TestCreateRoom() {
	room, err := s.client.CreateRoom(context.Background(), &CreateRoomRequest{
		Name:            "lesson-1",
		MaxParticipants: 2,
	})
	s.Require().NoError(err)
	s.Equal("lesson-1", room.Name)
	s.Equal(StatusDummyCreated, room.Status)
}

func (s *DummyClientTestSuite) TestListRoomsAlwaysEmpty() {
	_, err := s.client.CreateRoom(context.Background(), &CreateRoomRequest{Name: "lesson-1"})
	s.Require().NoError(err)

	rooms, err := s.client.ListRooms(context.Background())
	s.Require().NoError(err)
	s.Empty(rooms)
}

func (s *DummyClientTestSuite) TestDescribeRoomAlwaysMisses() {
	_, err := s.client.DescribeRoom(context.Background(), "anything")
	s.Require().Error(err)
	s.True(errors.Is(err, ErrRoomNotFound))
}

func (s *DummyClientTestSuite) TestDeleteRoomNoop() {
	s.NoError(s.client.DeleteRoom(context.Background(), "anything"))
}
