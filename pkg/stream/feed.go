// Package stream pkg/stream/feed.go
package stream

import (
	"context"
	"sync"

	"github.com/vitalsim/vitalsim/pkg/models"
)

// Feed forwards collector tick batches to the hub.
type Feed struct {
	hub       *Hub
	samples   <-chan []models.VitalSample
	done      chan struct{}
	closeOnce sync.Once
}

// NewFeed creates a feed reading from the given sample channel.
func NewFeed(hub *Hub, samples <-chan []models.VitalSample) *Feed {
	return &Feed{
		hub:     hub,
		samples: samples,
		done:    make(chan struct{}),
	}
}

// Start launches the forwarding loop.
func (f *Feed) Start(ctx context.Context) error {
	go f.run(ctx)

	return nil
}

// Stop halts the forwarding loop; safe to call more than once.
func (f *Feed) Stop(_ context.Context) error {
	f.closeOnce.Do(func() {
		close(f.done)
	})

	return nil
}

func (f *Feed) run(ctx context.Context) {
	for {
		select {
		case <-ctx.Done():
			return
		case <-f.done:
			return
		case batch, ok := <-f.samples:
			if !ok {
				return
			}

			f.hub.BroadcastSamples(batch)
		}
	}
}
