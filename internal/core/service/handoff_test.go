package service

import (
	"net/url"
	"strings"
	"testing"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

var testHandoffConfig = HandoffConfig{Host: "wa.me", Recipient: "2349096673176"}

func TestExternalHandoff_Link(t *testing.T) {
	h := NewExternalHandoff(testHandoffConfig, &stubOpener{}, &recordingTracker{})
	msg := domain.MessageGreeting + "\n\nPickup: Apapa Port"

	link := h.Link(msg)

	if !strings.HasPrefix(link, "https://wa.me/2349096673176?text=") {
		t.Fatalf("unexpected link prefix: %s", link)
	}
	if strings.Contains(link, "+") || strings.Contains(link, " ") {
		t.Errorf("spaces must be encoded as %%20: %s", link)
	}
	if !strings.Contains(link, "%0A%0A") {
		t.Errorf("newlines must be encoded: %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parse link: %v", err)
	}
	if got := u.Query().Get("text"); got != msg {
		t.Errorf("round trip mismatch:\n got %q\nwant %q", got, msg)
	}
}

func TestEncodeURIComponent(t *testing.T) {
	tests := map[string]string{
		"a b":       "a%20b",
		"it's (ok)": "it's%20(ok)",
		"x*y!":      "x*y!",
		"a&b=c":     "a%26b%3Dc",
		"₦":         "%E2%82%A6",
		"a-b_c.d~e": "a-b_c.d~e",
	}
	for in, want := range tests {
		if got := encodeURIComponent(in); got != want {
			t.Errorf("encodeURIComponent(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestExternalHandoff_Opened(t *testing.T) {
	opener := &stubOpener{result: domain.OpenSucceeded}
	tracker := &recordingTracker{}
	h := NewExternalHandoff(testHandoffConfig, opener, tracker)

	fallbackCalls := 0
	res := h.RequestHandoff("hello", func(domain.Fallback) { fallbackCalls++ })

	if res.Outcome != domain.OpenSucceeded || res.Fallback != nil {
		t.Fatalf("unexpected result: %+v", res)
	}
	if fallbackCalls != 0 {
		t.Errorf("fallback must not run when opened")
	}
	if len(opener.opened) != 1 || opener.opened[0] != res.Link {
		t.Errorf("expected one open of %s, got %v", res.Link, opener.opened)
	}
	if len(tracker.events) != 1 || tracker.events[0].name != domain.EventCTAClick {
		t.Fatalf("expected one cta_click, got %v", tracker.names())
	}
	props := tracker.events[0].props
	if props["cta_name"] != domain.CTARequestDispatch || props["section"] != domain.SourceDispatchCard {
		t.Errorf("unexpected cta_click props: %v", props)
	}
}

func TestExternalHandoff_BlockedFallsBackOnce(t *testing.T) {
	tracker := &recordingTracker{}
	h := NewExternalHandoff(testHandoffConfig, &stubOpener{result: domain.OpenBlocked}, tracker)

	var got []domain.Fallback
	res := h.RequestHandoff("hello", func(fb domain.Fallback) { got = append(got, fb) })

	if res.Outcome != domain.OpenBlocked {
		t.Fatalf("expected blocked, got %s", res.Outcome)
	}
	if len(got) != 1 {
		t.Fatalf("expected fallback once, got %d", len(got))
	}
	if got[0].Anchor != "contact" || got[0].Behavior != "smooth" {
		t.Errorf("unexpected fallback: %+v", got[0])
	}
	if res.Fallback == nil || *res.Fallback != got[0] {
		t.Errorf("result fallback mismatch: %+v", res.Fallback)
	}
	if len(tracker.events) != 1 {
		t.Errorf("cta_click must still be emitted once, got %v", tracker.names())
	}
}
