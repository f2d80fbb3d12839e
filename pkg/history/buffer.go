// Package history pkg/history/buffer.go
package history

import (
	"sync"

	"github.com/vitalsim/vitalsim/pkg/models"
)

// DefaultCapacity bounds each vital's rolling history.
const DefaultCapacity = 20

// RingBuffer is a fixed-capacity FIFO of vital samples. Appending to a
// full buffer evicts the oldest sample.
type RingBuffer struct {
	mu      sync.RWMutex
	samples []models.VitalSample
	head    int // index of the oldest sample
	count   int
}

// NewBuffer creates a new SampleStore with the given capacity.
func NewBuffer(capacity int) SampleStore {
	if capacity <= 0 {
		capacity = DefaultCapacity
	}

	return &RingBuffer{
		samples: make([]models.VitalSample, capacity),
	}
}

// Add appends a sample to the buffer.
func (b *RingBuffer) Add(sample models.VitalSample) {
	b.mu.Lock()
	defer b.mu.Unlock()

	capacity := len(b.samples)

	if b.count < capacity {
		b.samples[(b.head+b.count)%capacity] = sample
		b.count++

		return
	}

	// Full: overwrite the oldest slot and advance the head.
	b.samples[b.head] = sample
	b.head = (b.head + 1) % capacity
}

// Points returns the buffered samples, oldest first.
func (b *RingBuffer) Points() []models.VitalSample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	points := make([]models.VitalSample, b.count)
	for i := 0; i < b.count; i++ {
		points[i] = b.samples[(b.head+i)%len(b.samples)]
	}

	return points
}

// Last returns a copy of the most recent sample, or nil when empty.
func (b *RingBuffer) Last() *models.VitalSample {
	b.mu.RLock()
	defer b.mu.RUnlock()

	if b.count == 0 {
		return nil
	}

	last := b.samples[(b.head+b.count-1)%len(b.samples)]

	return &last
}

// Len returns the number of buffered samples.
func (b *RingBuffer) Len() int {
	b.mu.RLock()
	defer b.mu.RUnlock()

	return b.count
}
