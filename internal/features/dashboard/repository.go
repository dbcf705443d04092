package dashboard

import (
	"context"

	"github.com/xyz-asif/disasterdash/internal/features/analysis"
	"github.com/xyz-asif/disasterdash/internal/features/reports"
	"github.com/xyz-asif/disasterdash/internal/features/shelters"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Repository reads across the reports, shelters and ai_updates collections;
// the dashboard owns no data of its own.
type Repository struct {
	reportsColl  *mongo.Collection
	sheltersColl *mongo.Collection
	updatesColl  *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	return &Repository{
		reportsColl:  db.Collection("reports"),
		sheltersColl: db.Collection("shelters"),
		updatesColl:  db.Collection("ai_updates"),
	}
}

// RecentReports returns up to limit reports, newest first
func (r *Repository) RecentReports(ctx context.Context, limit int64) ([]reports.Report, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.reportsColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []reports.Report
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []reports.Report{}
	}

	return result, nil
}

// Shelters returns up to limit shelters
func (r *Repository) Shelters(ctx context.Context, limit int64) ([]shelters.Shelter, error) {
	cursor, err := r.sheltersColl.Find(ctx, bson.M{}, options.Find().SetLimit(limit))
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []shelters.Shelter
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []shelters.Shelter{}
	}

	return result, nil
}

// RecentUpdates returns up to limit AI updates, newest first
func (r *Repository) RecentUpdates(ctx context.Context, limit int64) ([]analysis.AIUpdate, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "last_run_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.updatesColl.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []analysis.AIUpdate
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []analysis.AIUpdate{}
	}

	return result, nil
}
