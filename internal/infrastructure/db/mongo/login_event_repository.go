package mongo

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/buildservice/build-service/internal/core/domain"
)

const collectionLoginEvents = "login_events"

// LoginEventRepository implements ports.LoginEventRepository using MongoDB.
type LoginEventRepository struct {
	col *mongo.Collection
}

func NewLoginEventRepository(db *mongo.Database) *LoginEventRepository {
	return &LoginEventRepository{col: db.Collection(collectionLoginEvents)}
}

type loginEventDoc struct {
	ID         string    `bson:"_id"`
	Email      string    `bson:"email"`
	Role       string    `bson:"role,omitempty"`
	AccountID  int64     `bson:"account_id,omitempty"`
	Success    bool      `bson:"success"`
	Reason     string    `bson:"reason,omitempty"`
	RemoteIP   string    `bson:"remote_ip,omitempty"`
	OccurredAt time.Time `bson:"occurred_at"`
}

// Insert appends an event to the login_events collection.
func (r *LoginEventRepository) Insert(ctx context.Context, e *domain.LoginEvent) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := loginEventDoc{
		ID:         e.ID,
		Email:      e.Email,
		Role:       string(e.Role),
		AccountID:  e.AccountID,
		Success:    e.Success,
		Reason:     e.Reason,
		RemoteIP:   e.RemoteIP,
		OccurredAt: e.OccurredAt.UTC(),
	}

	if _, err := r.col.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("insert login event: %w", err)
	}
	return nil
}

// ListRecent returns at most limit events, newest first.
func (r *LoginEventRepository) ListRecent(ctx context.Context, limit int) ([]*domain.LoginEvent, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	opts := options.Find().
		SetSort(bson.D{{Key: "occurred_at", Value: -1}}).
		SetLimit(int64(limit))

	cursor, err := r.col.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("find login events: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []loginEventDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("decode login events: %w", err)
	}

	events := make([]*domain.LoginEvent, 0, len(docs))
	for _, d := range docs {
		events = append(events, &domain.LoginEvent{
			ID:         d.ID,
			Email:      d.Email,
			Role:       domain.Role(d.Role),
			AccountID:  d.AccountID,
			Success:    d.Success,
			Reason:     d.Reason,
			RemoteIP:   d.RemoteIP,
			OccurredAt: d.OccurredAt,
		})
	}
	return events, nil
}

// EnsureIndexes creates the indexes used by the audit listing.
func (r *LoginEventRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	indexes := []mongo.IndexModel{
		{Keys: bson.D{{Key: "occurred_at", Value: -1}}},
		{Keys: bson.D{{Key: "email", Value: 1}, {Key: "occurred_at", Value: -1}}},
	}

	_, err := r.col.Indexes().CreateMany(ctx, indexes)
	return err
}
