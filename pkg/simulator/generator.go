// Package simulator pkg/simulator/generator.go

package simulator

import (
	"math"
	"math/rand"
	"sync"
	"time"

	"github.com/vitalsim/vitalsim/pkg/models"
)

// minPulsePressure keeps diastolic readings below systolic when the
// independently sampled values would cross.
const minPulsePressure = 20

// VitalGenerator samples vitals uniformly within their configured
// ranges, switching to the abnormal range with the configured chance.
type VitalGenerator struct {
	vitals []VitalConfig
	chance float64
	mu     sync.Mutex
	rng    *rand.Rand
}

// NewGenerator creates a Generator seeded from the wall clock.
func NewGenerator(cfg *Config) *VitalGenerator {
	return NewGeneratorWithSource(cfg, rand.NewSource(time.Now().UnixNano()))
}

// NewGeneratorWithSource creates a Generator with an explicit random
// source so callers can make runs reproducible.
func NewGeneratorWithSource(cfg *Config, src rand.Source) *VitalGenerator {
	return &VitalGenerator{
		vitals: cfg.Vitals,
		chance: cfg.AbnormalChance,
		rng:    rand.New(src),
	}
}

// Generate implements the Generator interface.
func (g *VitalGenerator) Generate(now time.Time) []models.VitalSample {
	g.mu.Lock()
	defer g.mu.Unlock()

	samples := make([]models.VitalSample, 0, len(g.vitals))

	for i := range g.vitals {
		samples = append(samples, g.sample(&g.vitals[i], now))
	}

	g.clampBloodPressure(samples)

	return samples
}

func (g *VitalGenerator) sample(vital *VitalConfig, now time.Time) models.VitalSample {
	abnormal := g.rng.Float64() < g.chance

	lo, hi := vital.Min, vital.Max
	if abnormal {
		lo, hi = vital.AbnormalMin, vital.AbnormalMax
	}

	value := roundTo(lo+g.rng.Float64()*(hi-lo), vital.Precision)
	// Rounding can nudge a value just past either bound.
	value = clampRange(value, lo, hi)

	return models.VitalSample{
		Name:      vital.Name,
		Value:     value,
		Unit:      vital.Unit,
		Abnormal:  abnormal,
		Timestamp: now,
	}
}

// clampBloodPressure keeps the diastolic reading strictly below the
// systolic one when both are present in the batch. The adjusted value
// is pulled back into the nearer of the diastolic ranges so it stays
// plausible for the configured table, unless that would put it at or
// above systolic again.
func (g *VitalGenerator) clampBloodPressure(samples []models.VitalSample) {
	var systolic, diastolic *models.VitalSample

	for i := range samples {
		switch samples[i].Name {
		case VitalBPSystolic:
			systolic = &samples[i]
		case VitalBPDiastolic:
			diastolic = &samples[i]
		}
	}

	if systolic == nil || diastolic == nil {
		return
	}

	if diastolic.Value < systolic.Value {
		return
	}

	cfg := g.vitalConfig(VitalBPDiastolic)
	if cfg == nil {
		return
	}

	target := roundTo(systolic.Value-minPulsePressure, cfg.Precision)

	value := nearestInRanges(cfg, target)
	if value >= systolic.Value {
		value = target
	}

	diastolic.Value = value
	diastolic.Abnormal = value < cfg.Min || value > cfg.Max
}

func (g *VitalGenerator) vitalConfig(name string) *VitalConfig {
	for i := range g.vitals {
		if g.vitals[i].Name == name {
			return &g.vitals[i]
		}
	}

	return nil
}

// nearestInRanges projects value onto whichever of the vital's ranges
// it lands closest to.
func nearestInRanges(vital *VitalConfig, value float64) float64 {
	normal := clampRange(value, vital.Min, vital.Max)
	abnormal := clampRange(value, vital.AbnormalMin, vital.AbnormalMax)

	if math.Abs(value-normal) <= math.Abs(value-abnormal) {
		return normal
	}

	return abnormal
}

func clampRange(value, lo, hi float64) float64 {
	return math.Min(math.Max(value, lo), hi)
}

func roundTo(value float64, precision int) float64 {
	p := math.Pow10(precision)

	return math.Round(value*p) / p
}
