package service

import (
	"net/url"
	"strings"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
	"github.com/vpclogistics/dispatch-widget/pkg/metrics"
)

// HandoffConfig names the messaging endpoint and the in-page fallback.
type HandoffConfig struct {
	Host           string // e.g. "wa.me"
	Recipient      string
	FallbackAnchor string
}

// ExternalHandoff deep-links a composed request into the messaging channel.
// Delivery is never confirmed; the only signal is whether the open was
// blocked.
type ExternalHandoff struct {
	cfg     HandoffConfig
	opener  ports.LinkOpener
	tracker ports.Tracker
}

func NewExternalHandoff(cfg HandoffConfig, opener ports.LinkOpener, tracker ports.Tracker) *ExternalHandoff {
	if cfg.FallbackAnchor == "" {
		cfg.FallbackAnchor = "contact"
	}
	return &ExternalHandoff{cfg: cfg, opener: opener, tracker: tracker}
}

// Link builds https://<host>/<recipient>?text=<message>.
func (h *ExternalHandoff) Link(message string) string {
	return "https://" + h.cfg.Host + "/" + h.cfg.Recipient + "?text=" + encodeURIComponent(message)
}

// RequestHandoff opens the deep link for message. When the opener reports
// OpenBlocked, fallback is called exactly once. A cta_click event is always
// emitted after the open attempt.
func (h *ExternalHandoff) RequestHandoff(message string, fallback func(domain.Fallback)) domain.HandoffResult {
	link := h.Link(message)
	outcome := h.opener.Open(link)

	h.tracker.Track(domain.EventCTAClick, map[string]string{
		"cta_name": domain.CTARequestDispatch,
		"section":  domain.SourceDispatchCard,
	})
	metrics.HandoffsTotal.WithLabelValues(outcome.String()).Inc()

	result := domain.HandoffResult{Link: link, Outcome: outcome}
	if outcome == domain.OpenBlocked {
		fb := domain.Fallback{Anchor: h.cfg.FallbackAnchor, Behavior: "smooth"}
		result.Fallback = &fb
		if fallback != nil {
			fallback(fb)
		}
	}
	return result
}

// encodeURIComponent matches the browser function of the same name: spaces
// become %20 and !'()* are left as is.
func encodeURIComponent(s string) string {
	escaped := url.QueryEscape(s)
	return uriComponentFixups.Replace(escaped)
}

var uriComponentFixups = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// clientOpener reflects the open result the client reported for its own
// environment.
type clientOpener struct {
	allowed bool
}

func (o clientOpener) Open(string) domain.OpenResult {
	if o.allowed {
		return domain.OpenSucceeded
	}
	return domain.OpenBlocked
}
