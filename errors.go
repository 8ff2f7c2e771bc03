package traitgen

import (
	"errors"
	"fmt"
)

// Sentinel errors. Use errors.Is to classify a failure returned by New,
// Run or LoadLayers.
var (
	// ErrInvalidConfig marks every configuration error detected before the
	// first edition is produced.
	ErrInvalidConfig = errors.New("traitgen: invalid configuration")

	// ErrEmptyLayer is reported for a layer without elements.
	ErrEmptyLayer = errors.New("traitgen: layer has no elements")

	// ErrZeroWeight is reported for a layer whose weights sum to zero.
	ErrZeroWeight = errors.New("traitgen: layer has zero total weight")

	// ErrSearchSpaceExhausted is reported when no unique DNA could be found
	// within UniqueDNATolerance redraws.
	ErrSearchSpaceExhausted = errors.New("traitgen: unique DNA search space exhausted")

	// ErrAssetLoad marks a trait image that could not be read or decoded.
	ErrAssetLoad = errors.New("traitgen: asset load failed")

	// ErrRunning is returned when Run is called on a generator that is
	// already running.
	ErrRunning = errors.New("traitgen: generator already running")
)

// ConfigError describes an invalid Config or layer set.
type ConfigError struct {
	Field  string // e.g. "width", "layers[2]"
	Reason string
	Err    error // optional underlying cause
}

func (e *ConfigError) Error() string {
	msg := fmt.Sprintf("traitgen: invalid %s: %s", e.Field, e.Reason)
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap matches ErrInvalidConfig and the underlying cause.
func (e *ConfigError) Unwrap() []error {
	if e.Err == nil {
		return []error{ErrInvalidConfig}
	}
	return []error{ErrInvalidConfig, e.Err}
}

// ExhaustionError is the terminal error of a run that could not find a
// unique DNA for an edition.
type ExhaustionError struct {
	Edition  int
	Attempts int
}

func (e *ExhaustionError) Error() string {
	return fmt.Sprintf("traitgen: failed to generate unique DNA for edition %d after %d attempts; add more layers or elements",
		e.Edition, e.Attempts)
}

func (e *ExhaustionError) Unwrap() error { return ErrSearchSpaceExhausted }

// AssetError reports a trait image that failed to load during an edition.
type AssetError struct {
	Layer   string
	Element string
	Err     error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("traitgen: loading %s/%s: %v", e.Layer, e.Element, e.Err)
}

func (e *AssetError) Unwrap() []error {
	return []error{ErrAssetLoad, e.Err}
}
