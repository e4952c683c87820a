package relay

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tutorlink/session-gateway/internal/log"
)

func TestBridgeRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	hub := NewHub(log.NewTest(t))
	bridge := NewBridge(rdb, hub, "transcripts", log.NewTest(t))

	ctx := context.Background()
	bridge.Start(ctx)
	defer bridge.Stop()

	sub := hub.Subscribe("lesson-ab")
	defer sub.Close()

	bridge.Publish(ctx, testEvent("lesson-ab", "via redis"))

	select {
	case ev := <-sub.C:
		assert.Equal(t, "via redis", ev.Text)
		assert.Equal(t, "lesson-ab", ev.Room)
	case <-time.After(2 * time.Second):
		t.Fatal("event did not come back through the bridge")
	}
}

func TestBridgeFallsBackWhenRedisDown(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	hub := NewHub(log.NewTest(t))
	bridge := NewBridge(rdb, hub, "transcripts", log.NewTest(t))

	ctx := context.Background()
	bridge.Start(ctx)
	defer bridge.Stop()

	sub := hub.Subscribe("lesson-ab")
	defer sub.Close()

	mr.Close()
	bridge.Publish(ctx, testEvent("lesson-ab", "local only"))

	select {
	case ev := <-sub.C:
		assert.Equal(t, "local only", ev.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("event was not delivered locally after redis failure")
	}
}

func TestBridgeIgnoresMalformedPayload(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	defer rdb.Close()

	hub := NewHub(log.NewTest(t))
	bridge := NewBridge(rdb, hub, "transcripts", log.NewTest(t))

	ctx := context.Background()
	bridge.Start(ctx)
	defer bridge.Stop()

	sub := hub.Subscribe("lesson-ab")
	defer sub.Close()

	require.NoError(t, rdb.Publish(ctx, "transcripts", "not json").Err())
	bridge.Publish(ctx, testEvent("lesson-ab", "good one"))

	select {
	case ev := <-sub.C:
		assert.Equal(t, "good one", ev.Text)
	case <-time.After(2 * time.Second):
		t.Fatal("valid event after malformed payload was not delivered")
	}
}
