// Package simulator pkg/simulator/types.go

package simulator

import (
	"fmt"
	"time"

	"github.com/vitalsim/vitalsim/pkg/config"
	"github.com/vitalsim/vitalsim/pkg/history"
)

// Well-known vital names. Blood pressure is simulated as a coupled
// systolic/diastolic pair.
const (
	VitalHeartRate   = "heart_rate"
	VitalSpO2        = "spo2"
	VitalBPSystolic  = "bp_systolic"
	VitalBPDiastolic = "bp_diastolic"
	VitalTemperature = "temperature"
)

const (
	defaultTickInterval   = 2 * time.Second
	defaultAbnormalChance = 0.1
	defaultListenAddr     = ":8090"
	defaultLogLevel       = "info"
	minTickInterval       = 10 * time.Millisecond
	maxVitalNameLength    = 64
	maxPrecision          = 3
)

// Config represents the vital sign simulator configuration.
type Config struct {
	ListenAddr     string          `json:"listen_addr"`
	PatientID      string          `json:"patient_id,omitempty"`
	LogLevel       string          `json:"log_level,omitempty"`
	TickInterval   config.Duration `json:"tick_interval"`
	AbnormalChance float64         `json:"abnormal_chance"`
	HistorySize    int             `json:"history_size"`
	Vitals         []VitalConfig   `json:"vitals"`
}

// VitalConfig describes the sampling ranges for one vital.
type VitalConfig struct {
	Name        string  `json:"name"`
	Unit        string  `json:"unit"`
	Min         float64 `json:"min"`
	Max         float64 `json:"max"`
	AbnormalMin float64 `json:"abnormal_min"`
	AbnormalMax float64 `json:"abnormal_max"`
	Precision   int     `json:"precision,omitempty"` // decimal places kept after rounding
}

// DefaultVitals returns the built-in vital table used when the config
// file does not define one.
func DefaultVitals() []VitalConfig {
	return []VitalConfig{
		{Name: VitalHeartRate, Unit: "bpm", Min: 60, Max: 100, AbnormalMin: 110, AbnormalMax: 140},
		{Name: VitalSpO2, Unit: "%", Min: 95, Max: 100, AbnormalMin: 85, AbnormalMax: 93},
		{Name: VitalBPSystolic, Unit: "mmHg", Min: 110, Max: 130, AbnormalMin: 140, AbnormalMax: 180},
		{Name: VitalBPDiastolic, Unit: "mmHg", Min: 70, Max: 85, AbnormalMin: 90, AbnormalMax: 110},
		{Name: VitalTemperature, Unit: "°C", Min: 36.4, Max: 37.4, AbnormalMin: 38.0, AbnormalMax: 40.0, Precision: 1},
	}
}

// DefaultConfig returns a runnable configuration without a config file.
func DefaultConfig() *Config {
	return &Config{
		ListenAddr:     defaultListenAddr,
		LogLevel:       defaultLogLevel,
		TickInterval:   config.Duration(defaultTickInterval),
		AbnormalChance: defaultAbnormalChance,
		HistorySize:    history.DefaultCapacity,
		Vitals:         DefaultVitals(),
	}
}

// Validate implements config.Validator interface.
func (c *Config) Validate() error {
	if c.ListenAddr == "" {
		c.ListenAddr = defaultListenAddr
	}

	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}

	if time.Duration(c.TickInterval) == 0 {
		c.TickInterval = config.Duration(defaultTickInterval)
	}

	if time.Duration(c.TickInterval) < minTickInterval {
		return errTickIntervalTooSmall
	}

	if c.AbnormalChance < 0 || c.AbnormalChance > 1 {
		return errInvalidAbnormalChance
	}

	if c.AbnormalChance == 0 {
		c.AbnormalChance = defaultAbnormalChance
	}

	if c.HistorySize < 0 {
		return errInvalidHistorySize
	}

	if c.HistorySize == 0 {
		c.HistorySize = history.DefaultCapacity
	}

	if len(c.Vitals) == 0 {
		c.Vitals = DefaultVitals()
	}

	// Track vital names to check for duplicates
	vitalNames := make(map[string]bool)

	for i := range c.Vitals {
		if err := validateVital(&c.Vitals[i], vitalNames); err != nil {
			return fmt.Errorf("vital %d: %w", i+1, err)
		}
	}

	return nil
}

func validateVital(vital *VitalConfig, vitalNames map[string]bool) error {
	if err := validateVitalName(vital.Name, vitalNames); err != nil {
		return err
	}

	if vital.Unit == "" {
		return errUnitRequired
	}

	if vital.Min > vital.Max {
		return fmt.Errorf("%w: [%g, %g]", errInvalidRange, vital.Min, vital.Max)
	}

	if vital.AbnormalMin > vital.AbnormalMax {
		return fmt.Errorf("%w: [%g, %g]", errInvalidAbnormalRange, vital.AbnormalMin, vital.AbnormalMax)
	}

	if vital.Precision < 0 || vital.Precision > maxPrecision {
		return errInvalidPrecision
	}

	return nil
}

func validateVitalName(name string, vitalNames map[string]bool) error {
	if name == "" || len(name) > maxVitalNameLength {
		return errInvalidVitalName
	}

	if vitalNames[name] {
		return fmt.Errorf("%w: %s", errDuplicateVitalName, name)
	}

	vitalNames[name] = true

	// Only allow alphanumeric, hyphens, and underscores
	for _, r := range name {
		if !isValidNameChar(r) {
			return errInvalidVitalName
		}
	}

	return nil
}

func isValidNameChar(r rune) bool {
	return (r >= 'a' && r <= 'z') ||
		(r >= 'A' && r <= 'Z') ||
		(r >= '0' && r <= '9') ||
		r == '-' || r == '_'
}
