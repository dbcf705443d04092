package reports

import (
	"errors"
	"fmt"

	"github.com/xyz-asif/disasterdash/internal/pkg/validator"
)

var validSeverities = map[string]bool{
	"critical": true,
	"moderate": true,
	"low":      true,
}

// ValidateCreateReport normalizes and checks a create request. An empty
// severity defaults to moderate.
func ValidateCreateReport(req *CreateReportRequest) error {
	if req.Severity == "" {
		req.Severity = "moderate"
	}
	if !validSeverities[req.Severity] {
		return fmt.Errorf("invalid severity %q: must be critical, moderate or low", req.Severity)
	}
	if req.Location.Lat < -90 || req.Location.Lat > 90 {
		return errors.New("latitude must be between -90 and 90")
	}
	if req.Location.Lng < -180 || req.Location.Lng > 180 {
		return errors.New("longitude must be between -180 and 180")
	}
	if req.ImageURL != nil && *req.ImageURL != "" && !validator.IsValidURL(*req.ImageURL) {
		return errors.New("image_url must be a valid http(s) URL")
	}
	return nil
}
