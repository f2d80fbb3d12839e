// Package simulator pkg/simulator/collector.go

package simulator

import (
	"context"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/vitalsim/vitalsim/pkg/history"
	"github.com/vitalsim/vitalsim/pkg/models"
)

// resultBufferSize holds a few tick batches for slow consumers before
// the collector starts dropping.
const resultBufferSize = 8

// SampleCollector implements the Collector interface.
type SampleCollector struct {
	cfg       *Config
	gen       Generator
	history   history.SampleManager
	log       *zap.Logger
	dataChan  chan []models.VitalSample
	done      chan struct{}
	closeOnce sync.Once
	mu        sync.RWMutex
	status    models.SimulatorStatus
}

// NewCollector creates a collector that samples all vitals every tick.
func NewCollector(cfg *Config, gen Generator, hist history.SampleManager, log *zap.Logger) (Collector, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if gen == nil {
		return nil, errNilGenerator
	}

	if hist == nil {
		return nil, errNilHistory
	}

	if log == nil {
		log = zap.NewNop()
	}

	return &SampleCollector{
		cfg:      cfg,
		gen:      gen,
		history:  hist,
		log:      log,
		dataChan: make(chan []models.VitalSample, resultBufferSize),
		done:     make(chan struct{}),
		status: models.SimulatorStatus{
			PatientID: cfg.PatientID,
			Vitals:    make(map[string]models.VitalReading),
		},
	}, nil
}

// Start implements the Collector interface.
func (c *SampleCollector) Start(ctx context.Context) error {
	c.mu.Lock()
	c.status.StartTime = time.Now()
	c.mu.Unlock()

	go c.run(ctx)

	return nil
}

// Stop implements the Collector interface.
func (c *SampleCollector) Stop() error {
	c.closeOnce.Do(func() {
		close(c.done)
		c.log.Info("vital collector stopped")
	})

	return nil
}

// Results implements the Collector interface.
func (c *SampleCollector) Results() <-chan []models.VitalSample {
	return c.dataChan
}

// Status implements the Collector interface.
func (c *SampleCollector) Status() models.SimulatorStatus {
	c.mu.RLock()
	defer c.mu.RUnlock()

	status := c.status
	status.Vitals = make(map[string]models.VitalReading, len(c.status.Vitals))

	for name, reading := range c.status.Vitals {
		status.Vitals[name] = reading
	}

	return status
}

// run drives the simulation loop. The first batch is produced
// immediately so attached renderers have data before the first tick
// interval elapses.
func (c *SampleCollector) run(ctx context.Context) {
	ticker := time.NewTicker(time.Duration(c.cfg.TickInterval))
	defer ticker.Stop()

	c.collect(time.Now())

	for {
		select {
		case <-ctx.Done():
			return
		case <-c.done:
			return
		case t := <-ticker.C:
			c.collect(t)
		}
	}
}

// collect performs a single simulation tick.
func (c *SampleCollector) collect(now time.Time) {
	samples := c.gen.Generate(now)

	for _, sample := range samples {
		c.history.Append(sample)
	}

	c.updateStatus(samples, now)

	select {
	case c.dataChan <- samples:
	default:
		c.log.Debug("results channel full, dropping tick batch",
			zap.Int("samples", len(samples)))
	}
}

func (c *SampleCollector) updateStatus(samples []models.VitalSample, now time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.status.TickCount++
	c.status.LastTick = now

	for _, sample := range samples {
		c.status.Vitals[sample.Name] = models.VitalReading{
			Name:       sample.Name,
			Value:      sample.Value,
			Unit:       sample.Unit,
			Abnormal:   sample.Abnormal,
			LastUpdate: sample.Timestamp,
		}
	}
}
