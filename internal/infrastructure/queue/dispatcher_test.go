package queue

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

type recordingSink struct {
	name string
	err  error

	mu     sync.Mutex
	events []domain.AnalyticsEvent
}

func (s *recordingSink) Name() string { return s.name }

func (s *recordingSink) Record(_ context.Context, e domain.AnalyticsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, e)
	return s.err
}

func (s *recordingSink) namesFor(sessionID string) []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []string
	for _, e := range s.events {
		if e.SessionID == sessionID {
			out = append(out, e.Name)
		}
	}
	return out
}

func (s *recordingSink) count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.events)
}

func TestDispatcher_PreservesPerSessionOrder(t *testing.T) {
	sink := &recordingSink{name: "rec"}
	d := NewDispatcher(4, zerolog.Nop(), sink)
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	order := []string{
		domain.EventDispatchRequest,
		domain.EventCTAClick,
		domain.EventTrackingOpen,
		domain.EventDispatchReset,
	}
	for i := 0; i < 10; i++ {
		for _, name := range order {
			d.Enqueue(domain.AnalyticsEvent{SessionID: fmt.Sprintf("sess-%d", i), Name: name})
		}
	}

	cancel()
	d.Wait()

	if sink.count() != 40 {
		t.Fatalf("expected 40 events delivered, got %d", sink.count())
	}
	for i := 0; i < 10; i++ {
		id := fmt.Sprintf("sess-%d", i)
		if got := sink.namesFor(id); !slices.Equal(got, order) {
			t.Errorf("%s: expected %v, got %v", id, order, got)
		}
	}
}

func TestDispatcher_SinkFailureDoesNotStopOthers(t *testing.T) {
	failing := &recordingSink{name: "mongo", err: errors.New("insert failed")}
	ok := &recordingSink{name: "log"}
	d := NewDispatcher(1, zerolog.Nop(), failing, ok)
	ctx, cancel := context.WithCancel(context.Background())
	d.Start(ctx)

	d.Enqueue(domain.AnalyticsEvent{SessionID: "s", Name: domain.EventCTAClick})
	d.Enqueue(domain.AnalyticsEvent{SessionID: "s", Name: domain.EventDispatchReset})

	cancel()
	d.Wait()

	if ok.count() != 2 || failing.count() != 2 {
		t.Fatalf("expected both sinks to see 2 events, got ok=%d failing=%d", ok.count(), failing.count())
	}
}

func TestDispatcher_EnqueueNeverBlocks(t *testing.T) {
	// Not started: nothing drains the channel.
	d := NewDispatcher(1, zerolog.Nop())

	done := make(chan struct{})
	go func() {
		for i := 0; i < channelBuffer+10; i++ {
			d.Enqueue(domain.AnalyticsEvent{SessionID: "s", Name: domain.EventCTAClick})
		}
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Enqueue blocked on a full worker")
	}
	if n := len(d.workers[0]); n != channelBuffer {
		t.Fatalf("expected full buffer of %d, got %d", channelBuffer, n)
	}
}

func TestDispatcher_ShardIndexIsStable(t *testing.T) {
	d := NewDispatcher(8, zerolog.Nop())
	first := d.shardIndex("sess-abc")
	for i := 0; i < 5; i++ {
		if got := d.shardIndex("sess-abc"); got != first {
			t.Fatalf("shard changed: %d != %d", got, first)
		}
	}
	if first < 0 || first >= 8 {
		t.Fatalf("shard out of range: %d", first)
	}
}

func TestNewDispatcher_DefaultWorkers(t *testing.T) {
	if got := len(NewDispatcher(0, zerolog.Nop()).workers); got != defaultWorkers {
		t.Fatalf("expected %d workers, got %d", defaultWorkers, got)
	}
}
