package ports

import (
	"context"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

// Tracker is the fire-and-forget analytics interface a widget emits to.
// Implementations must not block and never report failure to the caller.
type Tracker interface {
	Track(name string, properties map[string]string)
}

// AnalyticsSink delivers events to a backing store (log, Mongo, ...).
type AnalyticsSink interface {
	Record(ctx context.Context, event domain.AnalyticsEvent) error
	Name() string
}

// AnalyticsQueue accepts events for asynchronous delivery.
type AnalyticsQueue interface {
	Enqueue(event domain.AnalyticsEvent)
}
