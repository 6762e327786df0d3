package analytics

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

func TestLogSink_Record(t *testing.T) {
	var buf bytes.Buffer
	sink := NewLogSink(zerolog.New(&buf))

	err := sink.Record(context.Background(), domain.AnalyticsEvent{
		SessionID:  "sess-1",
		Name:       domain.EventDispatchRequest,
		Properties: map[string]string{"pickup": "apapa", "when": domain.NotSet},
		OccurredAt: time.Date(2026, 10, 19, 9, 0, 0, 0, time.UTC),
	})
	if err != nil {
		t.Fatalf("record: %v", err)
	}

	var entry map[string]any
	if err := json.Unmarshal(buf.Bytes(), &entry); err != nil {
		t.Fatalf("invalid json: %v (%s)", err, buf.String())
	}
	if entry["level"] != "info" || entry["event"] != domain.EventDispatchRequest || entry["session_id"] != "sess-1" {
		t.Fatalf("unexpected entry: %v", entry)
	}
	props, ok := entry["properties"].(map[string]any)
	if !ok || props["pickup"] != "apapa" || props["when"] != domain.NotSet {
		t.Fatalf("unexpected properties: %v", entry["properties"])
	}
	if sink.Name() != "log" {
		t.Errorf("unexpected sink name %q", sink.Name())
	}
}
