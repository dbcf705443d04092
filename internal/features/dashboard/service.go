package dashboard

import (
	"context"
	"fmt"

	"github.com/xyz-asif/disasterdash/internal/features/reports"
)

const (
	reportLimit  = 100
	shelterLimit = 100
	updateLimit  = 20
	bucketSize   = 5
)

type Service struct {
	repo *Repository
}

func NewService(repo *Repository) *Service {
	return &Service{repo: repo}
}

// BucketBySeverity projects reports into compact items and buckets them by
// severity. Anything that is not critical or moderate counts as low. Buckets
// are capped at bucketSize entries; input order is preserved, so feeding
// newest-first reports yields newest-first buckets.
func BucketBySeverity(list []reports.Report) SeverityBuckets {
	buckets := SeverityBuckets{
		Critical: []CompactReport{},
		Moderate: []CompactReport{},
		Low:      []CompactReport{},
	}

	for _, report := range list {
		item := CompactReport{
			ID:        report.ID,
			Title:     report.Title,
			City:      "Unknown",
			Country:   "Unknown",
			Severity:  report.Severity,
			CreatedAt: report.CreatedAt,
			Location:  report.Location,
		}
		if report.City != nil && *report.City != "" {
			item.City = *report.City
		}
		if report.Country != nil && *report.Country != "" {
			item.Country = *report.Country
		}

		switch report.Severity {
		case "critical":
			if len(buckets.Critical) < bucketSize {
				buckets.Critical = append(buckets.Critical, item)
			}
		case "moderate":
			if len(buckets.Moderate) < bucketSize {
				buckets.Moderate = append(buckets.Moderate, item)
			}
		default:
			if len(buckets.Low) < bucketSize {
				buckets.Low = append(buckets.Low, item)
			}
		}
	}

	return buckets
}

// Build assembles the combined dashboard payload. The city and world scopes
// are both derived from the same unfiltered report list; the dashboard makes
// no geographic distinction yet, and this is kept for parity with the
// deployed frontend. Scoping city_data to the caller's preferred city would
// mean filtering the slice passed to BucketBySeverity.
func (s *Service) Build(ctx context.Context) (*Payload, error) {
	recentReports, err := s.repo.RecentReports(ctx, reportLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch reports: %w", err)
	}

	shelterList, err := s.repo.Shelters(ctx, shelterLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch shelters: %w", err)
	}

	updates, err := s.repo.RecentUpdates(ctx, updateLimit)
	if err != nil {
		return nil, fmt.Errorf("fetch ai updates: %w", err)
	}

	payload := &Payload{
		Reports:   recentReports,
		Shelters:  shelterList,
		AIUpdates: updates,
		CityData:  BucketBySeverity(recentReports),
		WorldData: BucketBySeverity(recentReports),
	}

	if len(updates) > 0 {
		payload.LastAIUpdate = &updates[0].LastRunAt
	}

	return payload, nil
}
