package reports

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func validRequest() CreateReportRequest {
	return CreateReportRequest{
		Title:       "Flooded underpass",
		Description: "Water level rising near the station",
		Location:    Location{Lat: 48.8566, Lng: 2.3522},
	}
}

func TestValidateCreateReportDefaultsSeverity(t *testing.T) {
	req := validRequest()
	require.NoError(t, ValidateCreateReport(&req))
	require.Equal(t, "moderate", req.Severity)
}

func TestValidateCreateReportRejectsUnknownSeverity(t *testing.T) {
	req := validRequest()
	req.Severity = "apocalyptic"
	require.Error(t, ValidateCreateReport(&req))
}

func TestValidateCreateReportAcceptsAllSeverities(t *testing.T) {
	for _, severity := range []string{"critical", "moderate", "low"} {
		req := validRequest()
		req.Severity = severity
		require.NoError(t, ValidateCreateReport(&req), severity)
	}
}

func TestValidateCreateReportCoordinateBounds(t *testing.T) {
	req := validRequest()
	req.Location.Lat = 91
	require.Error(t, ValidateCreateReport(&req))

	req = validRequest()
	req.Location.Lng = -181
	require.Error(t, ValidateCreateReport(&req))
}

func TestValidateCreateReportImageURL(t *testing.T) {
	url := "https://cdn.example.com/photo.jpg"
	req := validRequest()
	req.ImageURL = &url
	require.NoError(t, ValidateCreateReport(&req))

	bad := "ftp://nope"
	req = validRequest()
	req.ImageURL = &bad
	require.Error(t, ValidateCreateReport(&req))
}
