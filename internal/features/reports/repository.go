package reports

import (
	"context"
	"errors"
	"time"

	apperrors "github.com/xyz-asif/disasterdash/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	collection *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	collection := db.Collection("reports")

	_, _ = collection.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "id", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: -1}}},
		{Keys: bson.D{{Key: "city", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
	})

	return &Repository{collection: collection}
}

func (r *Repository) Create(ctx context.Context, report *Report) error {
	_, err := r.collection.InsertOne(ctx, report)
	return err
}

// List returns reports matching the exact-match filters, newest first
func (r *Repository) List(ctx context.Context, city, status string) ([]Report, error) {
	filter := bson.M{}
	if city != "" {
		filter["city"] = city
	}
	if status != "" {
		filter["status"] = status
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(1000)

	cursor, err := r.collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []Report
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []Report{}
	}

	return result, nil
}

func (r *Repository) GetByID(ctx context.Context, id string) (*Report, error) {
	var report Report
	err := r.collection.FindOne(ctx, bson.M{"id": id}).Decode(&report)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, apperrors.ErrNotFound
		}
		return nil, err
	}
	return &report, nil
}

// Update applies a partial $set and always refreshes updated_at
func (r *Repository) Update(ctx context.Context, id string, updates bson.M) error {
	updates["updated_at"] = time.Now().UTC()

	result, err := r.collection.UpdateOne(ctx, bson.M{"id": id}, bson.M{"$set": updates})
	if err != nil {
		return err
	}

	if result.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}

	return nil
}
