package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/vpclogistics/dispatch-widget/internal/core/domain"
	"github.com/vpclogistics/dispatch-widget/internal/core/ports"
)

const analyticsCollection = "analytics_events"

// AnalyticsRepository implements ports.AnalyticsSink by appending events to
// the analytics_events collection.
type AnalyticsRepository struct {
	db  *mongo.Database
	now func() time.Time
}

var _ ports.AnalyticsSink = (*AnalyticsRepository)(nil)

// NewAnalyticsRepository creates a new AnalyticsRepository.
func NewAnalyticsRepository(db *mongo.Database) *AnalyticsRepository {
	return &AnalyticsRepository{db: db, now: time.Now}
}

func (r *AnalyticsRepository) Name() string { return "mongo" }

// EnsureIndexes creates the lookup indexes used by reporting queries.
func (r *AnalyticsRepository) EnsureIndexes(ctx context.Context) error {
	_, err := r.db.Collection(analyticsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "session_id", Value: 1}, {Key: "occurred_at", Value: 1}}},
		{Keys: bson.D{{Key: "name", Value: 1}, {Key: "occurred_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure analytics indexes: %w", err)
	}
	return nil
}

// Record persists one event.
func (r *AnalyticsRepository) Record(ctx context.Context, event domain.AnalyticsEvent) error {
	props := bson.M{}
	for k, v := range event.Properties {
		props[k] = v
	}

	doc := bson.M{
		"session_id":  event.SessionID,
		"name":        event.Name,
		"properties":  props,
		"occurred_at": event.OccurredAt.UTC(),
		"recorded_at": r.now().UTC(),
	}

	if _, err := r.db.Collection(analyticsCollection).InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert analytics event: %w", err)
	}
	return nil
}
