package service

import (
	"context"
	"sync"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

// ---------------------------------------------------------------------------
// Stubs
// ---------------------------------------------------------------------------

type trackedEvent struct {
	name  string
	props map[string]string
}

type recordingTracker struct {
	events []trackedEvent
}

func (r *recordingTracker) Track(name string, props map[string]string) {
	r.events = append(r.events, trackedEvent{name: name, props: props})
}

func (r *recordingTracker) names() []string {
	out := make([]string, 0, len(r.events))
	for _, e := range r.events {
		out = append(out, e.name)
	}
	return out
}

type stubOpener struct {
	result domain.OpenResult
	opened []string
}

func (o *stubOpener) Open(link string) domain.OpenResult {
	o.opened = append(o.opened, link)
	return o.result
}

type stubSessionRepo struct {
	mu       sync.Mutex
	sessions map[string]domain.WidgetSession
	saves    int
	getErr   error
	saveErr  error
}

func newStubSessionRepo() *stubSessionRepo {
	return &stubSessionRepo{sessions: make(map[string]domain.WidgetSession)}
}

func (r *stubSessionRepo) Create(_ context.Context, s *domain.WidgetSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.sessions[s.ID] = *s
	return nil
}

func (r *stubSessionRepo) Get(_ context.Context, id string) (*domain.WidgetSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.getErr != nil {
		return nil, r.getErr
	}
	s, ok := r.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return &s, nil
}

func (r *stubSessionRepo) Save(_ context.Context, s *domain.WidgetSession) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.saveErr != nil {
		return r.saveErr
	}
	r.saves++
	r.sessions[s.ID] = *s
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.sessions, id)
	return nil
}

type recordingQueue struct {
	mu     sync.Mutex
	events []domain.AnalyticsEvent
}

func (q *recordingQueue) Enqueue(e domain.AnalyticsEvent) {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.events = append(q.events, e)
}

func (q *recordingQueue) names() []string {
	q.mu.Lock()
	defer q.mu.Unlock()
	out := make([]string, 0, len(q.events))
	for _, e := range q.events {
		out = append(out, e.Name)
	}
	return out
}

type stubTokens struct{}

func (stubTokens) Issue(sessionID string) (string, error) { return "token-" + sessionID, nil }

func (stubTokens) Verify(token string) (string, error) { return token, nil }
