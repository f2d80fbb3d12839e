package simulator

import "errors"

var (
	ErrNilConfig = errors.New("simulator configuration is nil")

	errNilGenerator          = errors.New("generator is nil")
	errNilHistory            = errors.New("history manager is nil")
	errTickIntervalTooSmall  = errors.New("tick interval is too small")
	errInvalidAbnormalChance = errors.New("abnormal chance must be between 0 and 1")
	errInvalidHistorySize    = errors.New("history size must be positive")
	errInvalidVitalName      = errors.New("invalid vital name")
	errDuplicateVitalName    = errors.New("duplicate vital name")
	errUnitRequired          = errors.New("vital unit is required")
	errInvalidRange          = errors.New("invalid normal range")
	errInvalidAbnormalRange  = errors.New("invalid abnormal range")
	errInvalidPrecision      = errors.New("invalid precision")
)
