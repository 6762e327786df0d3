package domain

import "time"

// Analytics event names emitted by the dispatch widget.
const (
	EventDispatchRequest = "dispatch_request"
	EventCTAClick        = "cta_click"
	EventTrackingOpen    = "tracking_open"
	EventDispatchReset   = "dispatch_reset"
)

// NotSet replaces empty property values.
const NotSet = "not_set"

// Sources and CTA names used in event properties.
const (
	SourceDispatchCard  = "dispatch_card"
	SectionHeroDispatch = "hero_dispatch"

	CTARequestDispatch = "request-dispatch-whatsapp"
	CTASeeTracking     = "see-tracking"
	CTAOpenWatchTower  = "open-watchtower"
)

// AnalyticsEvent is one fire-and-forget observability event.
type AnalyticsEvent struct {
	SessionID  string
	Name       string
	Properties map[string]string
	OccurredAt time.Time
}

// OrNotSet returns v, or the NotSet sentinel when v is empty.
func OrNotSet(v string) string {
	if v == "" {
		return NotSet
	}
	return v
}

// DispatchRequestProperties builds the dispatch_request payload. Values are
// the wire values of each choice, not their labels.
func DispatchRequestProperties(in BookingInput) map[string]string {
	return map[string]string{
		"pickup":      OrNotSet(string(in.Pickup)),
		"destination": OrNotSet(in.Destination),
		"container":   OrNotSet(string(in.ContainerType)),
		"when":        OrNotSet(string(in.Timing)),
	}
}
