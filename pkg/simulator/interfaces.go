// Package simulator pkg/simulator/interfaces.go

package simulator

import (
	"context"
	"time"

	"github.com/vitalsim/vitalsim/pkg/models"
)

//go:generate mockgen -destination=mock_simulator.go -package=simulator github.com/vitalsim/vitalsim/pkg/simulator Generator,Collector

// Generator produces vital sign readings.
type Generator interface {
	// Generate produces one reading per configured vital, stamped with now
	Generate(now time.Time) []models.VitalSample
}

// Collector drives the periodic simulation.
type Collector interface {
	// Start begins the periodic simulation loop
	Start(ctx context.Context) error
	// Stop halts the loop; safe to call more than once
	Stop() error
	// Results returns a channel that provides per-tick sample batches
	Results() <-chan []models.VitalSample
	// Status returns a snapshot of the running simulation
	Status() models.SimulatorStatus
}
