package auth

import (
	"context"
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository handles the users and sessions collections
type Repository struct {
	users    *mongo.Collection
	sessions *mongo.Collection
}

// NewRepository initializes the repository and creates necessary indexes
func NewRepository(db *mongo.Database) *Repository {
	users := db.Collection("users")
	sessions := db.Collection("sessions")

	_, _ = users.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys:    bson.D{{Key: "email", Value: 1}},
		Options: options.Index().SetUnique(true),
	})
	_, _ = sessions.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "session_token", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
	})

	return &Repository{users: users, sessions: sessions}
}

// CreateUser inserts a new user
func (r *Repository) CreateUser(ctx context.Context, user *User) error {
	_, err := r.users.InsertOne(ctx, user)
	return err
}

// FindUserByEmail returns nil, nil when no user has that email
func (r *Repository) FindUserByEmail(ctx context.Context, email string) (*User, error) {
	var user User
	err := r.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// FindUserByID returns nil, nil when no user has that id
func (r *Repository) FindUserByID(ctx context.Context, userID string) (*User, error) {
	var user User
	err := r.users.FindOne(ctx, bson.M{"id": userID}).Decode(&user)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &user, nil
}

// TouchLastSeen refreshes last_seen_at for a returning user
func (r *Repository) TouchLastSeen(ctx context.Context, userID string) error {
	_, err := r.users.UpdateOne(ctx,
		bson.M{"id": userID},
		bson.M{"$set": bson.M{"last_seen_at": time.Now().UTC()}},
	)
	return err
}

// CreateSession persists a freshly minted session
func (r *Repository) CreateSession(ctx context.Context, session *Session) error {
	_, err := r.sessions.InsertOne(ctx, session)
	return err
}

// FindSessionByToken returns nil, nil when the token is unknown
func (r *Repository) FindSessionByToken(ctx context.Context, token string) (*Session, error) {
	var session Session
	err := r.sessions.FindOne(ctx, bson.M{"session_token": token}).Decode(&session)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, nil
		}
		return nil, err
	}
	return &session, nil
}

// DeleteSessionsForUser removes every session the user holds, across all
// devices, not just the presented token.
func (r *Repository) DeleteSessionsForUser(ctx context.Context, userID string) error {
	_, err := r.sessions.DeleteMany(ctx, bson.M{"user_id": userID})
	return err
}
