package analysis

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/xyz-asif/disasterdash/internal/features/reports"
)

const autoFlagThreshold = 0.7

// Service runs the group-score-persist-patch pipeline over recent reports.
// There is no isolation across city groups: a failure mid-run leaves earlier
// groups' updates and patched reports in place.
type Service struct {
	repo   *Repository
	scorer Scorer
}

func NewService(repo *Repository, scorer Scorer) *Service {
	return &Service{repo: repo, scorer: scorer}
}

// cityGroup keeps grouped reports in first-seen order so runs process cities
// deterministically.
type cityGroup struct {
	city    string
	reports []reports.Report
}

// GroupByCity buckets reports by their city field. Reports without a city
// land in the "Unknown" bucket.
func GroupByCity(recent []reports.Report) []cityGroup {
	index := make(map[string]int)
	var groups []cityGroup

	for _, report := range recent {
		city := "Unknown"
		if report.City != nil && *report.City != "" {
			city = *report.City
		}

		i, ok := index[city]
		if !ok {
			i = len(groups)
			index[city] = i
			groups = append(groups, cityGroup{city: city})
		}
		groups[i].reports = append(groups[i].reports, report)
	}

	return groups
}

// Run analyzes reports from the last 24 hours, one AIUpdate per city
func (s *Service) Run(ctx context.Context) (*Result, error) {
	since := time.Now().UTC().Add(-24 * time.Hour)

	recent, err := s.repo.FindRecentReports(ctx, since)
	if err != nil {
		return nil, fmt.Errorf("fetch recent reports: %w", err)
	}

	if len(recent) == 0 {
		return &Result{Message: "No recent reports to analyze"}, nil
	}

	groups := GroupByCity(recent)

	created := 0
	for _, group := range groups {
		assessment, err := s.scorer.Analyze(ctx, group.city, group.reports)
		if err != nil {
			return nil, fmt.Errorf("score %s: %w", group.city, err)
		}

		update := &AIUpdate{
			ID:           uuid.NewString(),
			Region:       "city",
			RegionName:   group.city,
			Summary:      assessment.Summary,
			SeverityData: assessment.CriticalIncidents,
			LastRunAt:    time.Now().UTC(),
		}
		if err := s.repo.InsertUpdate(ctx, update); err != nil {
			return nil, fmt.Errorf("persist update for %s: %w", group.city, err)
		}
		created++

		autoFlag := assessment.SeverityScore > autoFlagThreshold
		for _, report := range group.reports {
			if err := s.repo.PatchReportScore(ctx, report.ID, assessment.SeverityScore, autoFlag); err != nil {
				return nil, fmt.Errorf("patch report %s: %w", report.ID, err)
			}
		}
	}

	return &Result{
		Message:        "AI analysis completed",
		CitiesAnalyzed: len(groups),
		UpdatesCreated: created,
	}, nil
}
