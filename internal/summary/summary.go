package summary

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/tmc/langchaingo/chains"
	"github.com/tmc/langchaingo/schema"

	"dynamocards/internal/contextutil"
	"dynamocards/internal/document"
)

// stuffLimit is the largest chunk count summarized with a single prompt.
const stuffLimit = 10

// ErrNothingToSummarize is returned when no chunk carries any text.
var ErrNothingToSummarize = errors.New("nothing to summarize")

// Model generates text from a prompt.
type Model interface {
	Generate(ctx context.Context, prompt string) (string, error)
}

// Summarizer condenses a chunked transcript into a short summary.
type Summarizer struct {
	stuff     chains.Chain
	mapReduce chains.Chain
	logger    *slog.Logger
}

// New creates a Summarizer backed by model.
func New(model Model, logger *slog.Logger) *Summarizer {
	if logger == nil {
		logger = slog.Default()
	}
	llm := &chainModel{model: model}
	return &Summarizer{
		stuff:     chains.LoadStuffSummarization(llm),
		mapReduce: chains.LoadMapReduceSummarization(llm),
		logger:    logger,
	}
}

// Summarize returns a summary of chunks. Up to ten chunks are summarized in one
// prompt; longer inputs are summarized chunk by chunk and the partial summaries
// are combined. Any model error fails the whole summary.
func (s *Summarizer) Summarize(ctx context.Context, chunks []document.Chunk) (string, error) {
	logger := contextutil.LoggerFromContext(ctx, s.logger)

	docs := make([]schema.Document, 0, len(chunks))
	for _, c := range chunks {
		if strings.TrimSpace(c.Text) == "" {
			continue
		}
		docs = append(docs, schema.Document{
			PageContent: c.Text,
			Metadata:    map[string]any{"index": c.Index, "title": c.Metadata.Title},
		})
	}
	if len(docs) == 0 {
		return "", ErrNothingToSummarize
	}

	chain, mode := s.stuff, "stuff"
	if len(docs) > stuffLimit {
		chain, mode = s.mapReduce, "map_reduce"
	}
	logger.DebugContext(ctx, "summarizing transcript", "chunks", len(docs), "mode", mode)

	out, err := chains.Call(ctx, chain, map[string]any{"input_documents": docs})
	if err != nil {
		return "", fmt.Errorf("summarize (%s): %w", mode, err)
	}
	text, ok := out["text"].(string)
	if !ok {
		return "", fmt.Errorf("summarize (%s): unexpected chain output %v", mode, out)
	}
	return strings.TrimSpace(text), nil
}
