package reports

import "time"

// Location is a lat/lng pair
type Location struct {
	Lat float64 `bson:"lat" json:"lat"`
	Lng float64 `bson:"lng" json:"lng"`
}

// Report is a single user-submitted incident record
type Report struct {
	ID              string    `bson:"id" json:"id"`
	ReporterID      string    `bson:"reporter_id" json:"reporter_id"`
	Title           string    `bson:"title" json:"title"`
	Description     string    `bson:"description" json:"description"`
	Location        Location  `bson:"location" json:"location"`
	Address         *string   `bson:"address" json:"address"`
	City            *string   `bson:"city" json:"city"`
	Country         *string   `bson:"country" json:"country"`
	ImageURL        *string   `bson:"image_url" json:"image_url"`
	Severity        string    `bson:"severity" json:"severity"` // critical|moderate|low
	AISeverityScore *float64  `bson:"ai_severity_score" json:"ai_severity_score"`
	Status          string    `bson:"status" json:"status"` // pending|validated|rejected|resolved
	CreatedAt       time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time `bson:"updated_at" json:"updated_at"`
	AIAutoFlag      bool      `bson:"ai_auto_flag" json:"ai_auto_flag"`
}

// CreateReportRequest carries the caller-settable fields. Status, reporter
// and the AI fields are server-assigned and ignored if supplied.
type CreateReportRequest struct {
	Title       string   `json:"title" binding:"required"`
	Description string   `json:"description" binding:"required"`
	Location    Location `json:"location" binding:"required"`
	Address     *string  `json:"address"`
	City        *string  `json:"city"`
	Country     *string  `json:"country"`
	ImageURL    *string  `json:"image_url"`
	Severity    string   `json:"severity"`
}

// UpdateReportRequest is the admin-only partial update. Status must always
// be sent; the AI fields left nil are not touched, and a JSON null decodes
// to nil and is therefore dropped rather than nulling the stored field.
type UpdateReportRequest struct {
	Status          *string  `json:"status" binding:"required"`
	AISeverityScore *float64 `json:"ai_severity_score"`
	AIAutoFlag      *bool    `json:"ai_auto_flag"`
}
