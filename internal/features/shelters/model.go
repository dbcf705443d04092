package shelters

import (
	"time"

	"github.com/xyz-asif/disasterdash/internal/features/reports"
)

// Shelter is a fixed emergency-housing resource record. Admin-created and
// immutable afterwards.
type Shelter struct {
	ID        string           `bson:"id" json:"id"`
	Name      string           `bson:"name" json:"name"`
	Location  reports.Location `bson:"location" json:"location"`
	Capacity  int              `bson:"capacity" json:"capacity"`
	Contact   string           `bson:"contact" json:"contact"`
	Type      string           `bson:"type" json:"type"` // flood|fire|earthquake|general
	CreatedAt time.Time        `bson:"created_at" json:"created_at"`
}

type CreateShelterRequest struct {
	Name     string           `json:"name" binding:"required"`
	Location reports.Location `json:"location" binding:"required"`
	Capacity int              `json:"capacity" binding:"required,gt=0"`
	Contact  string           `json:"contact" binding:"required"`
	Type     string           `json:"type" binding:"required,oneof=flood fire earthquake general"`
}
