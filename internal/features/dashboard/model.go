package dashboard

import (
	"time"

	"github.com/xyz-asif/disasterdash/internal/features/analysis"
	"github.com/xyz-asif/disasterdash/internal/features/reports"
	"github.com/xyz-asif/disasterdash/internal/features/shelters"
)

// CompactReport is the projection of a report shown in dashboard buckets
type CompactReport struct {
	ID        string           `json:"id"`
	Title     string           `json:"title"`
	City      string           `json:"city"`
	Country   string           `json:"country"`
	Severity  string           `json:"severity"`
	CreatedAt time.Time        `json:"created_at"`
	Location  reports.Location `json:"location"`
}

// SeverityBuckets holds the top slices per severity level
type SeverityBuckets struct {
	Critical []CompactReport `json:"critical"`
	Moderate []CompactReport `json:"moderate"`
	Low      []CompactReport `json:"low"`
}

// Payload is the combined dashboard response
type Payload struct {
	Reports      []reports.Report    `json:"reports"`
	Shelters     []shelters.Shelter  `json:"shelters"`
	AIUpdates    []analysis.AIUpdate `json:"ai_updates"`
	CityData     SeverityBuckets     `json:"city_data"`
	WorldData    SeverityBuckets     `json:"world_data"`
	LastAIUpdate *time.Time          `json:"last_ai_update"`
}
