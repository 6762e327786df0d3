// Package analytics holds the sinks the analytics dispatcher delivers to.
package analytics

import (
	"context"
	"sort"

	"github.com/rs/zerolog"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

// LogSink writes each event as one structured log entry at info level.
type LogSink struct {
	log zerolog.Logger
}

var _ ports.AnalyticsSink = (*LogSink)(nil)

func NewLogSink(log zerolog.Logger) *LogSink {
	return &LogSink{log: log}
}

func (s *LogSink) Name() string { return "log" }

func (s *LogSink) Record(_ context.Context, event domain.AnalyticsEvent) error {
	props := zerolog.Dict()
	keys := make([]string, 0, len(event.Properties))
	for k := range event.Properties {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		props = props.Str(k, event.Properties[k])
	}

	s.log.Info().
		Str("event", event.Name).
		Str("session_id", event.SessionID).
		Time("occurred_at", event.OccurredAt).
		Dict("properties", props).
		Msg("analytics event")
	return nil
}
