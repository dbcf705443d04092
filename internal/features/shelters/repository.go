package shelters

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("shelters")

	_, _ = collection.Indexes().CreateOne(context.Background(), mongo.IndexModel{
		Keys: bson.D{{Key: "id", Value: 1}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, shelter *Shelter) error {
	_, err := r.collection.InsertOne(ctx, shelter)
	return err
}

// List returns all shelters. No ordering is guaranteed.
func (r *Repository) List(ctx context.Context) ([]Shelter, error) {
	cursor, err := r.collection.Find(ctx, bson.M{}, options.Find().SetLimit(1000))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Shelter
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []Shelter{}
	}

	return result, nil
}
