package ports

import (
	"context"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

// InputPatch is a partial BookingInput update. A nil field is left as is;
// a pointer to the empty value clears the field.
type InputPatch struct {
	Pickup      *domain.PickupPoint
	Destination *string
	Container   *domain.ContainerType
	Timing      *domain.Timing
}

// RequestDispatchInput carries the client's report on whether a new
// browsing context may be opened.
type RequestDispatchInput struct {
	SessionID    string
	PopupAllowed bool
}

// SessionResult is returned when a widget is mounted.
type SessionResult struct {
	SessionID string
	Token     string
	View      domain.WidgetView
}

// DispatchResult is the view after a dispatch request. Handoff is nil when
// the request was rejected by the stage guards.
type DispatchResult struct {
	View    domain.WidgetView
	Handoff *domain.HandoffResult
}

// QuoteResult is a stateless estimate preview.
type QuoteResult struct {
	Estimate *domain.Estimate
	Summary  string
	Message  string
}

// WidgetService runs dispatch widgets on behalf of remote clients.
type WidgetService interface {
	StartSession(ctx context.Context) (*SessionResult, error)
	EndSession(ctx context.Context, sessionID string) error
	View(ctx context.Context, sessionID string) (*domain.WidgetView, error)
	UpdateInput(ctx context.Context, sessionID string, patch InputPatch) (*domain.WidgetView, error)
	RequestDispatch(ctx context.Context, input RequestDispatchInput) (*DispatchResult, error)
	JumpToStage(ctx context.Context, sessionID string, target domain.Stage) (*domain.WidgetView, error)
	StartTracking(ctx context.Context, sessionID string) (*domain.WidgetView, error)
	Reset(ctx context.Context, sessionID string) (*domain.WidgetView, error)
	ClickCTA(ctx context.Context, sessionID, cta string) (*domain.WidgetView, error)
	Quote(input domain.BookingInput) QuoteResult
}
