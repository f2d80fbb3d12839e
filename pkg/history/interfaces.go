// Package history pkg/history/interfaces.go
package history

import (
	"github.com/vitalsim/vitalsim/pkg/models"
)

//go:generate mockgen -destination=mock_history.go -package=history github.com/vitalsim/vitalsim/pkg/history SampleStore,SampleManager

// SampleStore holds the rolling history for a single vital.
type SampleStore interface {
	// Add appends a sample, evicting the oldest when the store is full
	Add(sample models.VitalSample)
	// Points returns the stored samples in chronological order
	Points() []models.VitalSample
	// Last returns the most recent sample, or nil when empty
	Last() *models.VitalSample
	// Len returns the number of stored samples
	Len() int
}

// SampleManager tracks per-vital sample stores.
type SampleManager interface {
	// Append routes a sample to the store for its vital
	Append(sample models.VitalSample)
	// History returns the chronological samples for a vital, nil if unknown
	History(name string) []models.VitalSample
	// Latest returns the most recent sample for a vital, nil if unknown
	Latest(name string) *models.VitalSample
	// Names returns the vitals that have received at least one sample
	Names() []string
}
