package concepts

import "time"

// ConceptEntry is one concept and its definition as extracted by the model.
type ConceptEntry struct {
	Concept    string
	Definition string
}

// ConceptSet is the ordered concept mapping produced by one batch.
// It encodes to JSON as an object.
type ConceptSet []ConceptEntry

// Batch statuses reported in BatchReport.
const (
	BatchOK     = "ok"
	BatchEmpty  = "empty"
	BatchFailed = "failed"
)

// BatchReport describes how one batch was processed.
type BatchReport struct {
	Index       int
	Chunks      int // Number of chunks in the batch
	Status      string
	Entries     int
	InputChars  int
	OutputChars int
	InputUnits  int // Billable units of the batch text, only counted in verbose mode
	OutputUnits int // Billable units of the model output, only counted in verbose mode
	Cost        float64
	Err         *BatchError
	Duration    time.Duration
}

// Result is the aggregate outcome of a pipeline run.
type Result struct {
	// Concepts holds one mapping per batch that produced entries, in batch order.
	Concepts []ConceptSet
	// TotalCostEstimate is the summed cost of every batch whose model call returned.
	TotalCostEstimate float64
	Plan              Plan
	Batches           []BatchReport
	Warnings          []string
}

// Entries flattens all concept mappings into a single list, in batch order.
func (r *Result) Entries() []ConceptEntry {
	var out []ConceptEntry
	for _, set := range r.Concepts {
		out = append(out, set...)
	}
	return out
}

// Failed returns the diagnostics of every batch that failed.
func (r *Result) Failed() []*BatchError {
	var out []*BatchError
	for _, b := range r.Batches {
		if b.Err != nil {
			out = append(out, b.Err)
		}
	}
	return out
}

// Options control a single pipeline run.
type Options struct {
	SampleSize   int           // Desired number of batches; 0 derives one from the chunk count
	Verbose      bool          // Log per-batch progress and billable units
	Concurrency  int           // Batches processed at once; values below 1 mean sequential
	BatchTimeout time.Duration // Deadline for each model call; 0 means none beyond the caller's
}
