package analysis

import "time"

// Incident is one entry in an update's severity data, ranked by priority
// starting at 1.
type Incident struct {
	Title    string `bson:"title" json:"title"`
	Severity string `bson:"severity" json:"severity"` // critical|moderate|low
	Priority int    `bson:"priority" json:"priority"`
}

// AIUpdate is a generated per-region summary record. Append-only; nothing
// updates or deletes these.
type AIUpdate struct {
	ID           string     `bson:"id" json:"id"`
	Region       string     `bson:"region" json:"region"` // city|country|world
	RegionName   string     `bson:"region_name" json:"region_name"`
	Summary      string     `bson:"summary" json:"summary"`
	SeverityData []Incident `bson:"severity_data" json:"severity_data"`
	LastRunAt    time.Time  `bson:"last_run_at" json:"last_run_at"`
}

// Assessment is what a scorer produces for one city's worth of reports
type Assessment struct {
	OverallSeverity   string     `json:"overall_severity"`
	SeverityScore     float64    `json:"severity_score"` // 0.0-1.0
	CriticalIncidents []Incident `json:"critical_incidents"`
	Summary           string     `json:"summary"`
}

// Result summarizes one analysis run
type Result struct {
	Message        string `json:"message"`
	CitiesAnalyzed int    `json:"cities_analyzed,omitempty"`
	UpdatesCreated int    `json:"updates_created,omitempty"`
}
