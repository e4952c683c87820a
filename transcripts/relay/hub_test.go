package relay

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/coder/websocket"
	"github.com/coder/websocket/wsjson"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/transcripts"
)

func testEvent(room, text string) transcripts.Event {
	return transcripts.Event{Room: room, Text: text, Timestamp: time.Now().Unix()}
}

func TestHubPublishSubscribe(t *testing.T) {
	hub := NewHub(log.NewTest(t))
	ctx := context.Background()

	sub := hub.Subscribe("lesson-ab")
	defer sub.Close()
	other := hub.Subscribe("other-room")
	defer other.Close()

	hub.Publish(ctx, testEvent("lesson-ab", "hello"))

	select {
	case ev := <-sub.C:
		assert.Equal(t, "hello", ev.Text)
	case <-time.After(time.Second):
		t.Fatal("subscriber did not receive event")
	}

	select {
	case <-other.C:
		t.Fatal("event leaked to another room")
	default:
	}
}

func TestHubUnsubscribe(t *testing.T) {
	hub := NewHub(log.NewTest(t))

	sub := hub.Subscribe("lesson-ab")
	require.Equal(t, 1, hub.SubscriberCount("lesson-ab"))

	sub.Close()
	sub.Close() // idempotent
	assert.Equal(t, 0, hub.SubscriberCount("lesson-ab"))
}

func TestHubBacklog(t *testing.T) {
	hub := NewHub(log.NewTest(t))
	ctx := context.Background()

	for i := 0; i < backlogPerRoom+10; i++ {
		hub.Publish(ctx, testEvent("lesson-ab", strings.Repeat("x", i+1)))
	}

	backlog := hub.Backlog("lesson-ab")
	require.Len(t, backlog, backlogPerRoom)
	// oldest entries were trimmed
	assert.Len(t, backlog[0].Text, 11)

	assert.Nil(t, hub.Backlog("unknown-room"))
}

func TestHubSlowSubscriberDoesNotBlock(t *testing.T) {
	hub := NewHub(log.NewTest(t))
	ctx := context.Background()

	sub := hub.Subscribe("lesson-ab")
	defer sub.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; i < subscriberBuffer*2; i++ {
			hub.Publish(ctx, testEvent("lesson-ab", "flood"))
		}
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("publish blocked on a slow subscriber")
	}
}

func TestServeRoom(t *testing.T) {
	hub := NewHub(log.NewTest(t))
	ctx := context.Background()

	// a line published before the client connects lands in the backlog
	hub.Publish(ctx, testEvent("lesson-ab", "from backlog"))

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hub.ServeRoom(w, r, "lesson-ab")
	}))
	defer server.Close()

	dialCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	conn, _, err := websocket.Dial(dialCtx, "ws"+strings.TrimPrefix(server.URL, "http"), nil)
	require.NoError(t, err)
	defer conn.Close(websocket.StatusNormalClosure, "")

	var ev transcripts.Event
	require.NoError(t, wsjson.Read(dialCtx, conn, &ev))
	assert.Equal(t, "from backlog", ev.Text)

	// wait for the subscription before publishing the live line
	require.Eventually(t, func() bool {
		return hub.SubscriberCount("lesson-ab") == 1
	}, 2*time.Second, 10*time.Millisecond)

	hub.Publish(ctx, testEvent("lesson-ab", "live line"))
	require.NoError(t, wsjson.Read(dialCtx, conn, &ev))
	assert.Equal(t, "live line", ev.Text)
}
