package sessionRepo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"letsheal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// MongoStore keeps one document per session; a TTL index on expires_at reaps
// abandoned sessions.
type MongoStore struct {
	coll *mongo.Collection
	ttl  time.Duration
	now  func() time.Time
}

type sessionDocument struct {
	ID           string    `bson:"_id"`
	AccessToken  string    `bson:"access_token"`
	RefreshToken string    `bson:"refresh_token"`
	Role         string    `bson:"user_role"`
	Profile      string    `bson:"user_data"`
	ExpiresAt    time.Time `bson:"expires_at"`
}

func NewMongoStore(coll *mongo.Collection, ttl time.Duration) *MongoStore {
	return &MongoStore{coll: coll, ttl: ttl, now: time.Now}
}

// newContext creates a context with the given timeout.
func newContext(parent context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	return context.WithTimeout(parent, timeout)
}

// EnsureIndexes creates the expiry index.
func (s *MongoStore) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := newContext(ctx, 10*time.Second)
	defer cancel()

	_, err := s.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "expires_at", Value: 1}},
		Options: options.Index().SetExpireAfterSeconds(0),
	})
	if err != nil {
		return fmt.Errorf("failed to create session indexes: %w", err)
	}
	return nil
}

func (s *MongoStore) Load(ctx context.Context, sessionID string) (*models.Session, error) {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	var doc sessionDocument
	err := s.coll.FindOne(ctx, bson.M{"_id": sessionID}).Decode(&doc)
	if errors.Is(err, mongo.ErrNoDocuments) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}
	if !doc.ExpiresAt.IsZero() && !doc.ExpiresAt.After(s.now()) {
		return nil, nil
	}
	return decodeRecord(map[string]string{
		fieldAccessToken:  doc.AccessToken,
		fieldRefreshToken: doc.RefreshToken,
		fieldRole:         doc.Role,
		fieldProfile:      doc.Profile,
	}), nil
}

func (s *MongoStore) Save(ctx context.Context, sessionID string, session models.Session) error {
	fields, err := encodeRecord(session)
	if err != nil {
		return err
	}
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	doc := sessionDocument{
		ID:           sessionID,
		AccessToken:  fields[fieldAccessToken],
		RefreshToken: fields[fieldRefreshToken],
		Role:         fields[fieldRole],
		Profile:      fields[fieldProfile],
		ExpiresAt:    s.now().Add(s.ttl),
	}
	_, err = s.coll.ReplaceOne(ctx, bson.M{"_id": sessionID}, doc, options.Replace().SetUpsert(true))
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}
	return nil
}

func (s *MongoStore) Clear(ctx context.Context, sessionID string) error {
	ctx, cancel := newContext(ctx, 5*time.Second)
	defer cancel()

	if _, err := s.coll.DeleteOne(ctx, bson.M{"_id": sessionID}); err != nil {
		return fmt.Errorf("failed to clear session: %w", err)
	}
	return nil
}
