package concepts

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_model_gateway.go -package=mocks dynamocards/internal/concepts ModelGateway

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/sync/errgroup"

	"dynamocards/internal/contextutil"
	"dynamocards/internal/document"
)

// ModelGateway is the text-in/text-out model the pipeline talks to.
// This interface is defined from the pipeline's perspective (consumer-first).
type ModelGateway interface {
	// Generate returns the model's reply to prompt.
	Generate(ctx context.Context, prompt string) (string, error)
	// CountBillableUnits returns the provider's billable size of text.
	CountBillableUnits(ctx context.Context, text string) (int, error)
}

// Extractor runs the key-concept extraction pipeline.
type Extractor struct {
	model  ModelGateway
	rates  Rates
	logger *slog.Logger
}

// Option configures an Extractor.
type Option func(*Extractor)

// WithLogger sets the logger used when the request context carries none.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Extractor) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// WithRates overrides the default cost rates.
func WithRates(rates Rates) Option {
	return func(e *Extractor) {
		e.rates = rates
	}
}

// NewExtractor creates an Extractor backed by model.
func NewExtractor(model ModelGateway, opts ...Option) *Extractor {
	e := &Extractor{
		model:  model,
		rates:  DefaultRates(),
		logger: slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// ExtractKeyConcepts partitions chunks into batches, asks the model for the key
// concepts of each batch and aggregates the parsed mappings.
//
// Partitioning problems fail with ErrInvalidConfiguration before any model call.
// Model and parse failures only drop the affected batch; they are reported in
// Result.Batches. Cancelling ctx aborts the run and returns the context error.
func (e *Extractor) ExtractKeyConcepts(ctx context.Context, chunks []document.Chunk, opts Options) (*Result, error) {
	logger := contextutil.LoggerFromContext(ctx, e.logger)

	plan, err := Partition(len(chunks), opts.SampleSize)
	if err != nil {
		logger.WarnContext(ctx, "rejected partitioning", "chunks", len(chunks), "sample_size", opts.SampleSize, "error", err)
		return nil, err
	}

	result := &Result{Plan: plan}
	if plan.Warning != "" {
		logger.WarnContext(ctx, "large batches requested", "batch_size", plan.BatchSize, "warning", plan.Warning)
		result.Warnings = append(result.Warnings, plan.Warning)
	}

	n := plan.Batches()
	logger.InfoContext(ctx, "finding key concepts",
		"chunks", len(chunks),
		"batches", n,
		"batch_size", plan.BatchSize,
		"concurrency", max(opts.Concurrency, 1),
	)

	reports := make([]BatchReport, n)
	sets := make([]ConceptSet, n)
	meter := &costMeter{}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(opts.Concurrency, 1))
	for i := 0; i < n; i++ {
		if gctx.Err() != nil {
			break
		}
		start, end := plan.Range(i)
		batch := chunks[start:end]
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			reports[i], sets[i] = e.guardedBatch(gctx, logger, i, batch, opts)
			if reports[i].Err == nil || reports[i].Err.Stage == StageParse {
				running := meter.add(reports[i].Cost)
				if opts.Verbose {
					logger.InfoContext(gctx, "batch processed",
						"batch", i,
						"batches", n,
						"status", reports[i].Status,
						"entries", reports[i].Entries,
						"cost", reports[i].Cost,
						"running_cost", running,
						"duration", reports[i].Duration,
					)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("extract key concepts: %w", err)
	}
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("extract key concepts: %w", err)
	}

	failed := 0
	for i := range reports {
		if reports[i].Err != nil {
			failed++
		}
		if len(sets[i]) > 0 {
			result.Concepts = append(result.Concepts, sets[i])
		}
		result.TotalCostEstimate += reports[i].Cost
	}
	result.Batches = reports

	logger.InfoContext(ctx, "key concepts extracted",
		"batches", n,
		"failed_batches", failed,
		"entries", len(result.Entries()),
		"total_cost", result.TotalCostEstimate,
	)
	return result, nil
}

// guardedBatch runs a batch and turns a panic into a failed report so the
// remaining batches keep going.
func (e *Extractor) guardedBatch(ctx context.Context, logger *slog.Logger, index int, batch []document.Chunk, opts Options) (report BatchReport, set ConceptSet) {
	defer func() {
		if r := recover(); r != nil {
			logger.ErrorContext(ctx, "batch panicked, skipping batch", "batch", index, "panic", r)
			report = BatchReport{
				Index:  index,
				Chunks: len(batch),
				Status: BatchFailed,
				Err:    &BatchError{Batch: index, Stage: StageGenerate, Err: fmt.Errorf("panic: %v", r)},
			}
			set = nil
		}
	}()
	return e.runBatch(ctx, logger, index, batch, opts)
}

// runBatch processes one batch. It never fails; problems are recorded in the report.
func (e *Extractor) runBatch(ctx context.Context, logger *slog.Logger, index int, batch []document.Chunk, opts Options) (BatchReport, ConceptSet) {
	began := time.Now()
	text := strings.Join(document.Texts(batch), "\n")
	report := BatchReport{
		Index:      index,
		Chunks:     len(batch),
		InputChars: utf8.RuneCountInString(text),
	}

	callCtx := ctx
	if opts.BatchTimeout > 0 {
		var cancel context.CancelFunc
		callCtx, cancel = context.WithTimeout(ctx, opts.BatchTimeout)
		defer cancel()
	}

	output, err := e.model.Generate(callCtx, BuildPrompt(text))
	if err != nil {
		report.Status = BatchFailed
		report.Err = &BatchError{Batch: index, Stage: StageGenerate, Err: err}
		report.Duration = time.Since(began)
		logger.ErrorContext(ctx, "model call failed, skipping batch", "batch", index, "error", err)
		return report, nil
	}

	report.OutputChars = utf8.RuneCountInString(output)
	report.Cost = e.rates.Estimate(text, output)
	if opts.Verbose {
		report.InputUnits = e.countUnits(ctx, logger, index, text)
		report.OutputUnits = e.countUnits(ctx, logger, index, output)
	}

	set, err := ParseConcepts(output)
	switch {
	case err != nil:
		report.Status = BatchFailed
		report.Err = &BatchError{Batch: index, Stage: StageParse, Content: output, Err: err}
		logger.WarnContext(ctx, "could not parse model output, skipping batch", "batch", index, "output", output, "error", err)
		set = nil
	case len(set) == 0:
		report.Status = BatchEmpty
		logger.InfoContext(ctx, "model returned no concepts", "batch", index)
	default:
		report.Status = BatchOK
		report.Entries = len(set)
	}

	report.Duration = time.Since(began)
	return report, set
}

func (e *Extractor) countUnits(ctx context.Context, logger *slog.Logger, index int, text string) int {
	n, err := e.model.CountBillableUnits(ctx, text)
	if err != nil {
		logger.DebugContext(ctx, "could not count billable units", "batch", index, "error", err)
		return 0
	}
	return n
}
