// Package history pkg/history/manager.go
package history

import (
	"sort"
	"sync"
	"sync/atomic"

	"github.com/vitalsim/vitalsim/pkg/models"
)

// Manager keeps one rolling buffer per vital.
type Manager struct {
	series       sync.Map // vital name -> SampleStore
	capacity     int
	activeSeries int64
}

// NewManager creates a Manager whose buffers hold capacity samples each.
func NewManager(capacity int) *Manager {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &Manager{capacity: capacity}
}

// Append routes a sample to the buffer for its vital, creating the
// buffer on first use.
func (m *Manager) Append(sample models.VitalSample) {
	store, loaded := m.series.LoadOrStore(sample.Name, NewBuffer(m.capacity))
	if !loaded {
		atomic.AddInt64(&m.activeSeries, 1)
	}

	store.(SampleStore).Add(sample)
}

// History returns the chronological samples for a vital, nil if unknown.
func (m *Manager) History(name string) []models.VitalSample {
	store, ok := m.series.Load(name)
	if !ok {
		return nil
	}

	return store.(SampleStore).Points()
}

// Latest returns the most recent sample for a vital, nil if unknown.
func (m *Manager) Latest(name string) *models.VitalSample {
	store, ok := m.series.Load(name)
	if !ok {
		return nil
	}

	return store.(SampleStore).Last()
}

// Names returns the vitals with at least one sample, sorted for stable output.
func (m *Manager) Names() []string {
	names := make([]string, 0, atomic.LoadInt64(&m.activeSeries))

	m.series.Range(func(key, _ interface{}) bool {
		names = append(names, key.(string))
		return true
	})

	sort.Strings(names)

	return names
}

// ActiveSeries returns the number of vitals being tracked.
func (m *Manager) ActiveSeries() int64 {
	return atomic.LoadInt64(&m.activeSeries)
}
