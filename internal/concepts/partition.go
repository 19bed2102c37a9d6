package concepts

import "fmt"

const (
	// docsPerSample is the divisor used to derive a sample size when none is requested.
	docsPerSample = 5
	// warnBatchSize is the largest batch size that does not trigger a quality warning.
	warnBatchSize = 5
	// maxBatchSize is the largest batch size accepted at all.
	maxBatchSize = 10
)

// Plan is the outcome of partitioning chunks into batches.
type Plan struct {
	SampleSize int   // Requested or derived number of batches
	BatchSize  int   // Chunks per batch; the last batch may be shorter
	Bounds     []int // Bounds[i] is the index of the first chunk of batch i; one past the end is appended
	Warning    string
}

// Batches returns the number of batches in the plan.
func (p Plan) Batches() int {
	if len(p.Bounds) == 0 {
		return 0
	}
	return len(p.Bounds) - 1
}

// Range returns the half-open chunk range [start, end) of batch i.
func (p Plan) Range(i int) (start, end int) {
	return p.Bounds[i], p.Bounds[i+1]
}

// Partition computes batch boundaries for n chunks and a desired sample size.
//
// A sample size of 0 derives n/5, clamped to at least 1. The batch size is
// ceil(n/sampleSize); batches larger than 10 chunks are rejected and batches
// larger than 5 carry a warning.
func Partition(n, sampleSize int) (Plan, error) {
	if sampleSize < 0 {
		return Plan{}, &ConfigError{Reason: fmt.Sprintf("sample size %d must not be negative", sampleSize)}
	}
	if sampleSize > n {
		return Plan{}, &ConfigError{Reason: fmt.Sprintf("sample size larger than document count (%d > %d)", sampleSize, n)}
	}
	if n == 0 {
		return Plan{}, nil
	}
	if sampleSize == 0 {
		sampleSize = max(n/docsPerSample, 1)
	}

	batchSize := ceilDiv(n, sampleSize)
	if batchSize > maxBatchSize {
		return Plan{}, &ConfigError{Reason: fmt.Sprintf(
			"batch too large (%d chunks per batch, max %d), degrades output quality; increase the sample size",
			batchSize, maxBatchSize)}
	}

	plan := Plan{SampleSize: sampleSize, BatchSize: batchSize}
	if batchSize > warnBatchSize {
		plan.Warning = fmt.Sprintf("%d chunks per batch may degrade output quality", batchSize)
	}
	for start := 0; start < n; start += batchSize {
		plan.Bounds = append(plan.Bounds, start)
	}
	plan.Bounds = append(plan.Bounds, n)
	return plan, nil
}

func ceilDiv(a, b int) int {
	return (a + b - 1) / b
}
