package broker

import (
	"go.opentelemetry.io/otel/metric"

	intotel "github.com/tutorlink/session-gateway/internal/otel"
)

var (
	// Session lifecycle metrics
	sessionsStarted    metric.Int64Counter
	joinsIssued        metric.Int64Counter
	roomCreationFailed metric.Int64Counter
	placeholderTokens  metric.Int64Counter

	// Capacity metrics
	capacityChecks metric.Int64Counter
	capacityDenied metric.Int64Counter

	// Room lifecycle metrics
	roomsDeleted       metric.Int64Counter
	deletesAlreadyGone metric.Int64Counter
)

func init() {
	f := intotel.NewFactory("gateway.broker", intotel.PrefixBroker)

	// Session lifecycle
	f.Int64Counter(&sessionsStarted, "sessions.started",
		metric.WithDescription("Total sessions started with a fresh room"))

	f.Int64Counter(&joinsIssued, "joins.issued",
		metric.WithDescription("Total join credentials issued for existing rooms"))

	f.Int64Counter(&roomCreationFailed, "rooms.create.failed",
		metric.WithDescription("Total room creation failures"))

	f.Int64Counter(&placeholderTokens, "tokens.placeholder",
		metric.WithDescription("Total placeholder tokens handed out in degraded mode"))

	// Capacity
	f.Int64Counter(&capacityChecks, "capacity.checks",
		metric.WithDescription("Total capacity checks performed"))

	f.Int64Counter(&capacityDenied, "capacity.denied",
		metric.WithDescription("Capacity checks that denied admission"))

	// Room lifecycle
	f.Int64Counter(&roomsDeleted, "rooms.deleted",
		metric.WithDescription("Total rooms deleted"))

	f.Int64Counter(&deletesAlreadyGone, "rooms.delete.already_gone",
		metric.WithDescription("Delete requests for rooms that were already gone"))
}
