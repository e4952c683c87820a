package relay

import (
	"context"
	"encoding/json"

	"github.com/redis/go-redis/v9"

	"github.com/tutorlink/session-gateway/internal/log"
	"github.com/tutorlink/session-gateway/transcripts"
)

// Bridge routes transcript events through a redis channel so every gateway
// instance sees them, whichever instance runs the transcription session.
// Events published here come back via the subscription and reach the local
// hub like everyone else's.
type Bridge struct {
	rdb     *redis.Client
	hub     *Hub
	channel string
	logger  *log.Logger

	pubsub *redis.PubSub
	done   chan struct{}
}

func NewBridge(rdb *redis.Client, hub *Hub, channel string, logger *log.Logger) *Bridge {
	return &Bridge{
		rdb:     rdb,
		hub:     hub,
		channel: channel,
		logger:  logger,
		done:    make(chan struct{}),
	}
}

func (b *Bridge) Start(ctx context.Context) {
	b.pubsub = b.rdb.Subscribe(ctx, b.channel)
	go b.receiveLoop(ctx)
}

func (b *Bridge) Stop() {
	if b.pubsub == nil {
		return
	}
	_ = b.pubsub.Close()
	<-b.done
}

// Publish sends the event through redis. If redis is unreachable the event
// is delivered locally anyway, so single-instance deployments keep working
// through redis outages.
func (b *Bridge) Publish(ctx context.Context, ev transcripts.Event) {
	payload, err := json.Marshal(ev)
	if err != nil {
		b.logger.Error("failed to encode transcript event", log.Error(err))
		return
	}

	if err := b.rdb.Publish(ctx, b.channel, payload).Err(); err != nil {
		bridgePublishFailed.Add(ctx, 1)
		b.logger.Warn("redis publish failed, delivering locally only",
			log.String("room", ev.Room),
			log.Error(err))
		b.hub.Publish(ctx, ev)
	}
}

func (b *Bridge) receiveLoop(ctx context.Context) {
	defer close(b.done)

	for msg := range b.pubsub.Channel() {
		var ev transcripts.Event
		if err := json.Unmarshal([]byte(msg.Payload), &ev); err != nil {
			b.logger.Warn("malformed transcript event on bridge", log.Error(err))
			continue
		}
		b.hub.Publish(ctx, ev)
	}
}
