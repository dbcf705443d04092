package analysis

import (
	"context"
	"fmt"

	"github.com/xyz-asif/disasterdash/internal/features/reports"
)

// Scorer assesses one city's recent reports. Implementations must return an
// overall severity, a score in [0,1], up to 3 incidents ranked from priority
// 1, and a free-text summary. A real inference client plugs in here.
type Scorer interface {
	Analyze(ctx context.Context, city string, group []reports.Report) (*Assessment, error)
}

// staticScorer produces a fixed-shape assessment without calling any model.
// It stands in for the inference provider until one is wired up.
type staticScorer struct{}

func NewStaticScorer() Scorer {
	return &staticScorer{}
}

func (s *staticScorer) Analyze(ctx context.Context, city string, group []reports.Report) (*Assessment, error) {
	return &Assessment{
		OverallSeverity: "moderate",
		SeverityScore:   0.6,
		CriticalIncidents: []Incident{
			{Title: group[0].Title, Severity: "moderate", Priority: 1},
		},
		Summary: fmt.Sprintf("Monitoring %d incidents in %s. Situation under control.", len(group), city),
	}, nil
}
