package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_dependencies.go -package=mocks dynamocards/internal/service TranscriptSource,Splitter,ConceptExtractor,Summarizer
//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_analyze_service.go -package=mocks -mock_names=AnalyzeService=MockAnalyzeService dynamocards/internal/service AnalyzeService

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"dynamocards/internal/concepts"
	"dynamocards/internal/contextutil"
	"dynamocards/internal/document"
	"dynamocards/internal/transcript"
)

// TranscriptSource loads the transcript of a video.
// This interface is defined from the service layer's perspective (consumer-first).
type TranscriptSource interface {
	Fetch(ctx context.Context, videoURL string) ([]document.Segment, error)
}

// Splitter cuts transcript segments into chunks.
type Splitter interface {
	Split(segments []document.Segment) ([]document.Chunk, error)
}

// ConceptExtractor runs the key-concept extraction pipeline.
type ConceptExtractor interface {
	ExtractKeyConcepts(ctx context.Context, chunks []document.Chunk, opts concepts.Options) (*concepts.Result, error)
}

// Summarizer condenses chunks into a summary.
type Summarizer interface {
	Summarize(ctx context.Context, chunks []document.Chunk) (string, error)
}

// AnalyzeRequest represents a video analysis request in the domain layer.
type AnalyzeRequest struct {
	URL            string
	SampleSize     int // 0 uses the configured default
	IncludeSummary bool
	Verbose        bool
}

// AnalyzeResponse represents the outcome of a video analysis.
type AnalyzeResponse struct {
	AnalysisID  string
	Video       document.Metadata
	Chunks      int
	KeyConcepts []concepts.ConceptSet
	Summary     string
	TotalCost   float64
	Warnings    []string
}

// AnalyzeService extracts key concepts from videos.
type AnalyzeService interface {
	// Analyze loads, chunks and analyzes the video at req.URL.
	Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResponse, error)
}

// Settings are the server-side defaults applied to every analysis.
type Settings struct {
	SampleSize   int
	Concurrency  int
	BatchTimeout time.Duration
	Verbose      bool
}

// analyzeService implements AnalyzeService.
type analyzeService struct {
	source     TranscriptSource
	splitter   Splitter
	extractor  ConceptExtractor
	summarizer Summarizer
	settings   Settings
	logger     *slog.Logger
	newID      func() string
}

// NewAnalyzeService creates a new AnalyzeService. summarizer may be nil, in which
// case summaries are never produced.
func NewAnalyzeService(source TranscriptSource, splitter Splitter, extractor ConceptExtractor, summarizer Summarizer, settings Settings) AnalyzeService {
	return &analyzeService{
		source:     source,
		splitter:   splitter,
		extractor:  extractor,
		summarizer: summarizer,
		settings:   settings,
		logger:     slog.Default(),
		newID:      uuid.NewString,
	}
}

// Analyze processes an analysis request.
func (s *analyzeService) Analyze(ctx context.Context, req AnalyzeRequest) (AnalyzeResponse, error) {
	id := s.newID()
	logger := contextutil.LoggerFromContext(ctx, s.logger).With("analysis_id", id)
	ctx = contextutil.WithLogger(ctx, logger)

	// Business validation
	if strings.TrimSpace(req.URL) == "" {
		logger.WarnContext(ctx, "empty video link in analysis request")
		return AnalyzeResponse{}, &ValidationError{Field: "youtube_link", Message: "cannot be empty"}
	}
	if req.SampleSize < 0 {
		logger.WarnContext(ctx, "negative sample size in analysis request", "sample_size", req.SampleSize)
		return AnalyzeResponse{}, &ValidationError{Field: "sample_size", Message: "must not be negative"}
	}

	verbose := req.Verbose || s.settings.Verbose
	sampleSize := req.SampleSize
	if sampleSize == 0 {
		sampleSize = s.settings.SampleSize
	}

	segments, err := s.source.Fetch(ctx, req.URL)
	if err != nil {
		logger.ErrorContext(ctx, "failed to load transcript", "url", req.URL, "error", err)
		if errors.Is(err, transcript.ErrNoCaptions) {
			return AnalyzeResponse{}, classify(ErrNoCaptions, err, "failed to load transcript")
		}
		return AnalyzeResponse{}, classify(ErrSourceUnavailable, err, "failed to load transcript")
	}

	chunks, err := s.splitter.Split(segments)
	if err != nil {
		logger.ErrorContext(ctx, "failed to split transcript", "error", err)
		return AnalyzeResponse{}, WrapError(err, "failed to split transcript")
	}
	if len(chunks) == 0 {
		logger.WarnContext(ctx, "transcript produced no chunks", "url", req.URL)
		return AnalyzeResponse{}, WrapError(ErrNoCaptions, "transcript is empty")
	}

	resp := AnalyzeResponse{
		AnalysisID: id,
		Video:      segments[0].Metadata,
		Chunks:     len(chunks),
	}
	if verbose {
		logger.InfoContext(ctx, "loaded video",
			"author", resp.Video.Author,
			"duration_seconds", resp.Video.DurationSeconds,
			"title", resp.Video.Title,
			"chunks", len(chunks),
		)
	}

	opts := concepts.Options{
		SampleSize:   sampleSize,
		Verbose:      verbose,
		Concurrency:  s.settings.Concurrency,
		BatchTimeout: s.settings.BatchTimeout,
	}

	var result *concepts.Result
	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		r, err := s.extractor.ExtractKeyConcepts(gctx, chunks, opts)
		if err != nil {
			logger.ErrorContext(ctx, "failed to extract key concepts", "error", err)
			if errors.Is(err, concepts.ErrInvalidConfiguration) {
				return classify(ErrInvalidInput, err, "failed to extract key concepts")
			}
			return classify(ErrExternalService, err, "failed to extract key concepts")
		}
		result = r
		return nil
	})
	if req.IncludeSummary && s.summarizer != nil {
		g.Go(func() error {
			summary, err := s.summarizer.Summarize(gctx, chunks)
			if err != nil {
				logger.ErrorContext(ctx, "failed to summarize transcript", "error", err)
				return classify(ErrExternalService, err, "failed to summarize transcript")
			}
			resp.Summary = summary
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return AnalyzeResponse{}, err
	}

	resp.KeyConcepts = result.Concepts
	resp.TotalCost = result.TotalCostEstimate
	resp.Warnings = result.Warnings

	logger.InfoContext(ctx, "analysis completed successfully",
		"chunks", len(chunks),
		"concept_sets", len(resp.KeyConcepts),
		"failed_batches", len(result.Failed()),
		"total_cost", resp.TotalCost,
	)
	return resp, nil
}
