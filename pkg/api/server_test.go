package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/vitalsim/vitalsim/pkg/history"
	"github.com/vitalsim/vitalsim/pkg/models"
	"github.com/vitalsim/vitalsim/pkg/simulator"
)

func testStatus(now time.Time) models.SimulatorStatus {
	return models.SimulatorStatus{
		PatientID: "demo-patient",
		StartTime: now.Add(-90 * time.Second),
		LastTick:  now,
		TickCount: 45,
		Vitals: map[string]models.VitalReading{
			"heart_rate": {Name: "heart_rate", Value: 72, Unit: "bpm", LastUpdate: now},
			"spo2":       {Name: "spo2", Value: 91, Unit: "%", Abnormal: true, LastUpdate: now},
		},
	}
}

func setupServer(t *testing.T) (*httptest.Server, *history.Manager) {
	t.Helper()

	ctrl := gomock.NewController(t)

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	collector := simulator.NewMockCollector(ctrl)
	collector.EXPECT().Status().Return(testStatus(now)).AnyTimes()

	hist := history.NewManager(history.DefaultCapacity)

	// More samples than the cap so the history endpoint must trim.
	for i := 0; i < 30; i++ {
		hist.Append(models.VitalSample{
			Name:      "heart_rate",
			Value:     float64(60 + i),
			Unit:      "bpm",
			Timestamp: now.Add(time.Duration(i) * 2 * time.Second),
		})
	}

	srv := NewServer(":0", collector, hist, nil, nil)

	ts := httptest.NewServer(srv.Router())
	t.Cleanup(ts.Close)

	return ts, hist
}

func getJSON(t *testing.T, url string, dst interface{}) *http.Response {
	t.Helper()

	resp, err := http.Get(url)
	require.NoError(t, err)

	t.Cleanup(func() { _ = resp.Body.Close() })

	if dst != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(dst))
	}

	return resp
}

func TestGetVitals(t *testing.T) {
	ts, _ := setupServer(t)

	var got VitalsResponse

	resp := getJSON(t, ts.URL+"/api/vitals", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	assert.Equal(t, "demo-patient", got.PatientID)
	require.Len(t, got.Vitals, 2)

	// Sorted by name for stable readout ordering.
	assert.Equal(t, "heart_rate", got.Vitals[0].Name)
	assert.Equal(t, "spo2", got.Vitals[1].Name)
	assert.True(t, got.Vitals[1].Abnormal)
}

func TestGetVital(t *testing.T) {
	ts, _ := setupServer(t)

	t.Run("known vital", func(t *testing.T) {
		var got models.VitalReading

		resp := getJSON(t, ts.URL+"/api/vitals/heart_rate", &got)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, 72.0, got.Value)
		assert.Equal(t, "bpm", got.Unit)
	})

	t.Run("unknown vital", func(t *testing.T) {
		resp := getJSON(t, ts.URL+"/api/vitals/respiration", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetVitalHistory(t *testing.T) {
	ts, _ := setupServer(t)

	t.Run("capped chronological samples", func(t *testing.T) {
		var got HistoryResponse

		resp := getJSON(t, ts.URL+"/api/vitals/heart_rate/history", &got)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		assert.Equal(t, "heart_rate", got.Name)
		require.Len(t, got.Samples, history.DefaultCapacity)

		for i := 1; i < len(got.Samples); i++ {
			assert.True(t, got.Samples[i].Timestamp.After(got.Samples[i-1].Timestamp))
		}

		// Oldest 10 samples were evicted.
		assert.Equal(t, 70.0, got.Samples[0].Value)
	})

	t.Run("unknown vital", func(t *testing.T) {
		resp := getJSON(t, ts.URL+"/api/vitals/respiration/history", nil)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestGetStatus(t *testing.T) {
	ts, _ := setupServer(t)

	var got ServiceStatus

	resp := getJSON(t, ts.URL+"/api/status", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	assert.Equal(t, "demo-patient", got.PatientID)
	assert.Equal(t, int64(45), got.TickCount)
	assert.Equal(t, 2, got.VitalCount)
	assert.Equal(t, int64(0), got.StreamClients)
	assert.NotEmpty(t, got.UpTime)
}

func TestCORSHeaders(t *testing.T) {
	ts, _ := setupServer(t)

	resp := getJSON(t, ts.URL+"/api/vitals", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "*", resp.Header.Get("Access-Control-Allow-Origin"))
}
