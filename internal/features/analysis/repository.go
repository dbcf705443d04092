package analysis

import (
	"context"
	"time"

	"github.com/xyz-asif/disasterdash/internal/features/reports"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type Repository struct {
	updates     *mongo.Collection
	reportsColl *mongo.Collection
}

func NewRepository(db *mongo.Database) *Repository {
	updates := db.Collection("ai_updates")

	_, _ = updates.Indexes().CreateMany(context.Background(), []mongo.IndexModel{
		{Keys: bson.D{{Key: "last_run_at", Value: -1}}},
		{Keys: bson.D{{Key: "region", Value: 1}}},
	})

	return &Repository{
		updates:     updates,
		reportsColl: db.Collection("reports"),
	}
}

// FindRecentReports returns reports created at or after the cutoff
func (r *Repository) FindRecentReports(ctx context.Context, since time.Time) ([]reports.Report, error) {
	opts := options.Find().SetLimit(100)

	cursor, err := r.reportsColl.Find(ctx, bson.M{
		"created_at": bson.M{"$gte": since},
	}, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []reports.Report
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	return result, nil
}

// InsertUpdate appends one AIUpdate record
func (r *Repository) InsertUpdate(ctx context.Context, update *AIUpdate) error {
	_, err := r.updates.InsertOne(ctx, update)
	return err
}

// PatchReportScore writes the derived score and flag back onto a report
func (r *Repository) PatchReportScore(ctx context.Context, reportID string, score float64, autoFlag bool) error {
	_, err := r.reportsColl.UpdateOne(ctx,
		bson.M{"id": reportID},
		bson.M{"$set": bson.M{
			"ai_severity_score": score,
			"ai_auto_flag":      autoFlag,
			"updated_at":        time.Now().UTC(),
		}},
	)
	return err
}

// ListUpdates returns updates newest first, optionally filtered by region
func (r *Repository) ListUpdates(ctx context.Context, region string, limit int64) ([]AIUpdate, error) {
	filter := bson.M{}
	if region != "" {
		filter["region"] = region
	}

	opts := options.Find().
		SetSort(bson.D{{Key: "last_run_at", Value: -1}}).
		SetLimit(limit)

	cursor, err := r.updates.Find(ctx, filter, opts)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	var result []AIUpdate
	if err := cursor.All(ctx, &result); err != nil {
		return nil, err
	}

	if result == nil {
		result = []AIUpdate{}
	}

	return result, nil
}
