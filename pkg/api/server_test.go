package api

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/travigo/formation/pkg/opendata"
	"github.com/travigo/formation/pkg/trainformation"
)

type staticSource struct {
	response *opendata.FormationResponse
	err      error
}

func (s *staticSource) GetFormation(ctx context.Context, query opendata.FormationQuery) (*opendata.FormationResponse, error) {
	return s.response, s.err
}

func sampleResponse() *opendata.FormationResponse {
	return &opendata.FormationResponse{
		LastUpdate: time.Date(2025, time.March, 14, 8, 0, 0, 0, time.UTC),
		FormationsAtScheduledStops: []opendata.FormationAtScheduledStop{
			{
				ScheduledStop: opendata.ScheduledStop{
					StopPoint: opendata.StopPoint{UIC: 8503000, Name: "Zürich HB"},
					Track:     "32",
				},
				FormationShort: opendata.FormationShort{FormationShortString: "@A[(LK,1:1,1:2)]@B[(2:3,2:4)]"},
			},
		},
		Formations: []opendata.Formation{
			{
				FormationVehicles: []opendata.FormationVehicle{
					{
						Position: 1,
						FormationVehicleAtScheduledStops: []opendata.FormationVehicleAtScheduledStop{
							{StopPoint: opendata.StopPoint{UIC: 8503000}, Sectors: "A"},
						},
					},
				},
			},
		},
	}
}

func doRequest(t *testing.T, source trainformation.FormationSource, target string) (int, map[string]any) {
	app := NewApp(&trainformation.Service{Source: source})

	resp, err := app.Test(httptest.NewRequest("GET", target, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(body, &decoded))

	return resp.StatusCode, decoded
}

func TestVersion(t *testing.T) {
	status, body := doRequest(t, &staticSource{}, "/core/version")

	assert.Equal(t, 200, status)
	assert.Equal(t, "v1.0", body["version"])
}

func TestDecodeFormation(t *testing.T) {
	status, body := doRequest(t, &staticSource{}, "/core/formation/decode?formation=%40A%5B1%3A1%2CWR%3A2%5D")

	require.Equal(t, 200, status)
	assert.Equal(t, "@A[1:1,WR:2]", body["formation"])

	sections := body["sections"].([]any)
	require.Len(t, sections, 1)

	section := sections[0].(map[string]any)
	assert.Equal(t, "A", section["Sector"])

	wagons := section["Wagons"].([]any)
	require.Len(t, wagons, 2)

	restaurant := wagons[1].(map[string]any)
	assert.Equal(t, "restaurant", restaurant["Type"])
	assert.NotContains(t, restaurant, "TypeCode")
}

func TestDecodeFormationDetailed(t *testing.T) {
	status, body := doRequest(t, &staticSource{}, "/core/formation/decode?detail=true&formation=%40A%5BWR%3A2%5D")

	require.Equal(t, 200, status)

	section := body["sections"].([]any)[0].(map[string]any)
	restaurant := section["Wagons"].([]any)[0].(map[string]any)
	assert.Equal(t, "WR", restaurant["TypeCode"])
}

func TestDecodeFormationMissingParameter(t *testing.T) {
	status, body := doRequest(t, &staticSource{}, "/core/formation/decode")

	assert.Equal(t, 400, status)
	assert.Contains(t, body, "error")
}

func TestResolveDirection(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		status   int
		expected string
	}{
		{name: "left", target: "/core/formation/direction?formation=%40A%5B1%5D%40B%5B2%5D&sectors=A", status: 200, expected: "left"},
		{name: "right", target: "/core/formation/direction?formation=%40A%5B1%5D%40B%5B2%5D&sectors=B", status: 200, expected: "right"},
		{name: "missing sectors", target: "/core/formation/direction?formation=%40A%5B1%5D", status: 400},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, &staticSource{}, tt.target)

			assert.Equal(t, tt.status, status)
			if tt.expected != "" {
				assert.Equal(t, tt.expected, body["direction"])
			}
		})
	}
}

func TestGetTrainFormation(t *testing.T) {
	status, body := doRequest(t, &staticSource{response: sampleResponse()}, "/core/trains/SBBP/2025-03-14/1")

	require.Equal(t, 200, status)
	assert.Equal(t, "SBBP", body["EVU"])
	assert.Equal(t, "2025-03-14", body["OperationDate"])

	stops := body["Stops"].([]any)
	require.Len(t, stops, 1)

	stop := stops[0].(map[string]any)
	assert.Equal(t, "Zürich HB", stop["Name"])
	assert.Equal(t, "left", stop["Direction"])
	assert.NotContains(t, stop, "FormationString")
}

func TestGetTrainFormationErrors(t *testing.T) {
	tests := []struct {
		name   string
		source *staticSource
		target string
		status int
	}{
		{name: "bad date", source: &staticSource{}, target: "/core/trains/SBBP/14-03-2025/1", status: 400},
		{name: "bad number", source: &staticSource{}, target: "/core/trains/SBBP/2025-03-14/ICE", status: 400},
		{name: "not found", source: &staticSource{err: opendata.ErrNotFound}, target: "/core/trains/SBBP/2025-03-14/1", status: 404},
		{name: "upstream failure", source: &staticSource{err: &opendata.StatusError{StatusCode: 503}}, target: "/core/trains/SBBP/2025-03-14/1", status: 502},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			status, body := doRequest(t, tt.source, tt.target)

			assert.Equal(t, tt.status, status)
			assert.Contains(t, body, "error")
		})
	}
}
