package users

import (
	"context"

	"github.com/xyz-asif/disasterdash/internal/features/auth"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{collection: db.Collection("users")}
}

// List returns every registered user
func (r *Repository) List(ctx context.Context) ([]auth.User, error) {
	cursor, err := r.collection.Find(ctx, bson.M{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []auth.User
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []auth.User{}
	}

	return result, nil
}
