package relay

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/tutorlink/session-gateway/internal/otel"
)

var (
	eventsPublished      metric.Int64Counter
	eventsDropped        metric.Int64Counter
	subscribersConnected metric.Int64UpDownCounter
	bridgePublishFailed  metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("transcripts.relay", intotel.PrefixRelay)

	f.Int64Counter(&eventsPublished, "events.published",
		metric.WithDescription("Total transcript events fanned out"))

	f.Int64Counter(&eventsDropped, "events.dropped",
		metric.WithDescription("Events dropped due to slow subscribers"))

	f.Int64UpDownCounter(&subscribersConnected, "subscribers.connected",
		metric.WithDescription("Currently connected transcript subscribers"))

	f.Int64Counter(&bridgePublishFailed, "bridge.publish.failed",
		metric.WithDescription("Redis publishes that failed and fell back to local delivery"))
}
