package service

import (
	"context"
	"fmt"
	"hash/fnv"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
	"github.com/vpclogistics/dispatch-widget/pkg/metrics"
)

const lockShards = 64

var _ ports.WidgetService = (*WidgetService)(nil)

// WidgetService hosts one DispatchWidget per session. Calls on the same
// session are serialised so each widget sees single-threaded transitions.
type WidgetService struct {
	repo    ports.SessionRepository
	tokens  ports.SessionTokenIssuer
	queue   ports.AnalyticsQueue
	handoff HandoffConfig
	log     zerolog.Logger

	locks [lockShards]sync.Mutex
	now   func() time.Time
	newID func() string
}

func NewWidgetService(
	repo ports.SessionRepository,
	tokens ports.SessionTokenIssuer,
	queue ports.AnalyticsQueue,
	handoff HandoffConfig,
	log zerolog.Logger,
) *WidgetService {
	return &WidgetService{
		repo:    repo,
		tokens:  tokens,
		queue:   queue,
		handoff: handoff,
		log:     log,
		now:     func() time.Time { return time.Now().UTC() },
		newID:   uuid.NewString,
	}
}

// StartSession mounts a new widget and issues its bearer token.
func (s *WidgetService) StartSession(ctx context.Context) (*ports.SessionResult, error) {
	sess := domain.NewWidgetSession(s.newID(), s.now())
	if err := s.repo.Create(ctx, sess); err != nil {
		s.log.Error().Err(err).Msg("failed to create session")
		return nil, fmt.Errorf("start session: %w", err)
	}

	token, err := s.tokens.Issue(sess.ID)
	if err != nil {
		return nil, fmt.Errorf("start session: issue token: %w", err)
	}

	metrics.SessionsStartedTotal.Inc()
	s.log.Info().Str("session_id", sess.ID).Msg("widget mounted")

	return &ports.SessionResult{
		SessionID: sess.ID,
		Token:     token,
		View:      domain.BuildView(sess.Input, sess.Stage),
	}, nil
}

// EndSession discards the widget. Unknown sessions are not an error.
func (s *WidgetService) EndSession(ctx context.Context, sessionID string) error {
	unlock := s.lock(sessionID)
	defer unlock()

	if err := s.repo.Delete(ctx, sessionID); err != nil {
		return fmt.Errorf("end session: %w", err)
	}
	s.log.Info().Str("session_id", sessionID).Msg("widget unmounted")
	return nil
}

func (s *WidgetService) View(ctx context.Context, sessionID string) (*domain.WidgetView, error) {
	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("view: %w", err)
	}
	v := domain.BuildView(sess.Input, sess.Stage)
	return &v, nil
}

// UpdateInput applies a partial draft update. The stage never changes.
func (s *WidgetService) UpdateInput(ctx context.Context, sessionID string, patch ports.InputPatch) (*domain.WidgetView, error) {
	w, err := s.withWidget(ctx, sessionID, nil, func(w *DispatchWidget) error {
		return w.Apply(patch)
	})
	if err != nil {
		return nil, fmt.Errorf("update input: %w", err)
	}
	v := w.View()
	return &v, nil
}

// RequestDispatch runs the primary action. PopupAllowed is the client's
// report of whether it could open the deep link.
func (s *WidgetService) RequestDispatch(ctx context.Context, in ports.RequestDispatchInput) (*ports.DispatchResult, error) {
	var handoff *domain.HandoffResult
	opener := clientOpener{allowed: in.PopupAllowed}

	w, err := s.withWidget(ctx, in.SessionID, opener, func(w *DispatchWidget) error {
		handoff = w.RequestDispatch(func(fb domain.Fallback) {
			s.log.Info().
				Str("session_id", in.SessionID).
				Str("anchor", fb.Anchor).
				Msg("handoff blocked, falling back to in-page anchor")
		})
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("request dispatch: %w", err)
	}

	if handoff != nil {
		s.log.Info().
			Str("session_id", in.SessionID).
			Str("outcome", handoff.Outcome.String()).
			Msg("dispatch requested")
	}

	return &ports.DispatchResult{View: w.View(), Handoff: handoff}, nil
}

func (s *WidgetService) JumpToStage(ctx context.Context, sessionID string, target domain.Stage) (*domain.WidgetView, error) {
	w, err := s.withWidget(ctx, sessionID, nil, func(w *DispatchWidget) error {
		w.JumpToStage(target)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("jump to stage: %w", err)
	}
	v := w.View()
	return &v, nil
}

func (s *WidgetService) StartTracking(ctx context.Context, sessionID string) (*domain.WidgetView, error) {
	w, err := s.withWidget(ctx, sessionID, nil, func(w *DispatchWidget) error {
		w.StartTracking()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("start tracking: %w", err)
	}
	v := w.View()
	return &v, nil
}

func (s *WidgetService) Reset(ctx context.Context, sessionID string) (*domain.WidgetView, error) {
	w, err := s.withWidget(ctx, sessionID, nil, func(w *DispatchWidget) error {
		w.Reset()
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("reset: %w", err)
	}
	v := w.View()
	return &v, nil
}

func (s *WidgetService) ClickCTA(ctx context.Context, sessionID, cta string) (*domain.WidgetView, error) {
	w, err := s.withWidget(ctx, sessionID, nil, func(w *DispatchWidget) error {
		return w.ClickCTA(cta)
	})
	if err != nil {
		return nil, fmt.Errorf("click cta: %w", err)
	}
	v := w.View()
	return &v, nil
}

// Quote is the stateless estimate preview. It emits no analytics.
func (s *WidgetService) Quote(in domain.BookingInput) ports.QuoteResult {
	in.Destination = domain.NormalizeDestination(in.Destination)
	est := domain.EstimateForInput(in)
	if est != nil {
		metrics.EstimatesTotal.WithLabelValues(est.Zone).Inc()
	}
	return ports.QuoteResult{
		Estimate: est,
		Summary:  in.Summary(),
		Message:  domain.ComposeMessage(in, est),
	}
}

// withWidget loads the session, runs fn against a restored widget and
// saves the result. The save also refreshes the session expiry.
func (s *WidgetService) withWidget(ctx context.Context, sessionID string, opener ports.LinkOpener, fn func(*DispatchWidget) error) (*DispatchWidget, error) {
	unlock := s.lock(sessionID)
	defer unlock()

	sess, err := s.repo.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if opener == nil {
		opener = clientOpener{allowed: true}
	}
	tracker := &sessionTracker{sessionID: sessionID, now: s.now}
	w := RestoreDispatchWidget(sess.Input, sess.Stage, tracker, NewExternalHandoff(s.handoff, opener, tracker))

	if err := fn(w); err != nil {
		return nil, err
	}

	sess.Input = w.Input()
	sess.Stage = w.Stage()
	sess.UpdatedAt = s.now()
	if err := s.repo.Save(ctx, sess); err != nil {
		s.log.Error().Err(err).Str("session_id", sessionID).Msg("failed to save session")
		return nil, fmt.Errorf("save session: %w", err)
	}

	// Events leave only once the transition that produced them is stored.
	for _, e := range tracker.pending {
		s.queue.Enqueue(e)
	}
	return w, nil
}

func (s *WidgetService) lock(sessionID string) func() {
	h := fnv.New32a()
	_, _ = h.Write([]byte(sessionID))
	m := &s.locks[h.Sum32()%lockShards]
	m.Lock()
	return m.Unlock
}

// sessionTracker buffers the events of one call, stamped with their session.
type sessionTracker struct {
	sessionID string
	now       func() time.Time
	pending   []domain.AnalyticsEvent
}

func (t *sessionTracker) Track(name string, properties map[string]string) {
	t.pending = append(t.pending, domain.AnalyticsEvent{
		SessionID:  t.sessionID,
		Name:       name,
		Properties: properties,
		OccurredAt: t.now(),
	})
}
