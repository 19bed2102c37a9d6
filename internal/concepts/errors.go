package concepts

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidConfiguration is returned when sample size or batch size is unusable.
	// It is raised before any batch work begins.
	ErrInvalidConfiguration = errors.New("invalid configuration")
	// ErrParseFailure marks model output that is not a flat JSON object of strings.
	ErrParseFailure = errors.New("unparseable model output")
)

// ConfigError describes why a partitioning request was rejected.
type ConfigError struct {
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("invalid configuration: %s", e.Reason)
}

// Unwrap lets errors.Is match ErrInvalidConfiguration.
func (e *ConfigError) Unwrap() error {
	return ErrInvalidConfiguration
}

// Batch stages at which a BatchError can occur.
const (
	StageGenerate = "generate"
	StageParse    = "parse"
)

// BatchError records a non-fatal failure of a single batch.
type BatchError struct {
	Batch   int    // Batch index (starts at 0)
	Stage   string // StageGenerate or StageParse
	Content string // Offending model output, when the failure is a parse failure
	Err     error
}

func (e *BatchError) Error() string {
	return fmt.Sprintf("batch %d failed at %s: %v", e.Batch, e.Stage, e.Err)
}

func (e *BatchError) Unwrap() error {
	return e.Err
}
