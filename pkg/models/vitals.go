// Package models pkg/models/vitals.go
package models

import "time"

// VitalSample is a single labeled reading emitted by the simulator.
type VitalSample struct {
	Name      string    `json:"name"`
	Value     float64   `json:"value"`
	Unit      string    `json:"unit"`
	Abnormal  bool      `json:"abnormal"`
	Timestamp time.Time `json:"timestamp"`
}

// VitalReading is the current readout for one vital.
type VitalReading struct {
	Name       string    `json:"name"`
	Value      float64   `json:"value"`
	Unit       string    `json:"unit"`
	Abnormal   bool      `json:"abnormal"`
	LastUpdate time.Time `json:"last_update"`
}

// SimulatorStatus describes the running simulation.
type SimulatorStatus struct {
	PatientID string                  `json:"patient_id,omitempty"`
	StartTime time.Time               `json:"start_time"`
	LastTick  time.Time               `json:"last_tick"`
	TickCount int64                   `json:"tick_count"`
	Vitals    map[string]VitalReading `json:"vitals"`
}
