// Package api pkg/api/types.go
package api

import (
	"time"

	"github.com/vitalsim/vitalsim/pkg/models"
)

// VitalsResponse lists the current readouts for every vital.
type VitalsResponse struct {
	PatientID string                `json:"patient_id,omitempty"`
	LastTick  time.Time             `json:"last_tick"`
	Vitals    []models.VitalReading `json:"vitals"`
}

// HistoryResponse carries the rolling chart samples for one vital.
type HistoryResponse struct {
	Name    string               `json:"name"`
	Samples []models.VitalSample `json:"samples"`
}

// ServiceStatus summarizes the running service.
type ServiceStatus struct {
	PatientID     string    `json:"patient_id,omitempty"`
	StartTime     time.Time `json:"start_time"`
	UpTime        string    `json:"uptime"`
	LastTick      time.Time `json:"last_tick"`
	TickCount     int64     `json:"tick_count"`
	VitalCount    int       `json:"vital_count"`
	StreamClients int64     `json:"stream_clients"`
}
