// Package metrics defines and registers all custom Prometheus metrics for the
// dispatch widget service. It is the single source of truth for metric
// names, labels, and help strings.
//
// Metrics are registered with the default registry on package init through
// promauto; HTTP request metrics come from echoprometheus in the router.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "dispatch"

// ── Widget metrics ────────────────────────────────────────────────────────────

// SessionsStartedTotal counts mounted widgets.
var SessionsStartedTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "sessions_started_total",
		Help:      "Total number of dispatch widget sessions started.",
	},
)

// DispatchRequestsTotal counts accepted dispatch requests.
var DispatchRequestsTotal = promauto.NewCounter(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "dispatch_requests_total",
		Help:      "Total number of dispatch requests that passed the stage guards.",
	},
)

// HandoffsTotal counts messaging handoffs.
// Label:
//   - outcome: "opened" or "blocked"
var HandoffsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "handoffs_total",
		Help:      "Total number of external messaging handoffs, by outcome.",
	},
	[]string{"outcome"},
)

// StageTransitionsTotal counts stage changes.
// Labels:
//   - from, to: stage names ("details", "dispatch", "track")
var StageTransitionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "stage_transitions_total",
		Help:      "Total number of widget stage transitions.",
	},
	[]string{"from", "to"},
)

// GuardRejectionsTotal counts transition requests rejected as no-ops.
// Label:
//   - action: "advance_to_dispatch", "jump_to_stage", "advance_to_track"
var GuardRejectionsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "guard_rejections_total",
		Help:      "Total number of stage transition requests ignored by a guard.",
	},
	[]string{"action"},
)

// EstimatesTotal counts stateless quotes.
// Label:
//   - zone: matched destination keyword, or "other"
var EstimatesTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "estimates_total",
		Help:      "Total number of quotes computed through the estimate endpoint.",
	},
	[]string{"zone"},
)

// ── Analytics pipeline metrics ────────────────────────────────────────────────

// AnalyticsEventsTotal counts events delivered to every sink.
var AnalyticsEventsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_events_total",
		Help:      "Total number of analytics events delivered, by event name.",
	},
	[]string{"event"},
)

// AnalyticsErrorsTotal counts failed or dropped deliveries.
// Label:
//   - sink: sink name, or "queue" when the event was dropped before delivery
var AnalyticsErrorsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "analytics_errors_total",
		Help:      "Total number of analytics events that failed delivery or were dropped.",
	},
	[]string{"sink"},
)

// AnalyticsQueueDepth tracks the events waiting in each worker channel.
var AnalyticsQueueDepth = promauto.NewGaugeVec(
	prometheus.GaugeOpts{
		Namespace: namespace,
		Name:      "analytics_queue_depth",
		Help:      "Current number of events pending in each analytics worker channel.",
	},
	[]string{"worker_id"},
)

// AnalyticsDeliveryDuration measures dequeue-to-delivered time per event.
var AnalyticsDeliveryDuration = promauto.NewHistogramVec(
	prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "analytics_delivery_duration_seconds",
		Help:      "Duration of analytics event delivery across all sinks.",
		Buckets:   prometheus.DefBuckets,
	},
	[]string{"event"},
)
