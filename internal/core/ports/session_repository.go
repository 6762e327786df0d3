package ports

import (
	"context"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
)

// SessionRepository stores mounted widget sessions for their lifetime.
type SessionRepository interface {
	Create(ctx context.Context, s *domain.WidgetSession) error
	// Get returns domain.ErrSessionNotFound for unknown or expired ids.
	Get(ctx context.Context, id string) (*domain.WidgetSession, error)
	// Save overwrites the stored session and refreshes its expiry.
	Save(ctx context.Context, s *domain.WidgetSession) error
	Delete(ctx context.Context, id string) error
}
