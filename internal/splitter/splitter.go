package splitter

import (
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/tmc/langchaingo/textsplitter"

	"dynamocards/internal/document"
)

// ErrInvalidConfig is returned when chunk size and overlap are inconsistent.
var ErrInvalidConfig = errors.New("invalid splitter configuration")

// defaultSeparators are tried in order, from paragraph breaks down to single characters.
var defaultSeparators = []string{"\n\n", "\n", " ", ""}

// Splitter splits text recursively on a list of separators until every piece fits
// within the chunk size, then merges neighbouring pieces back up to that size.
// Sizes are measured in characters (runes).
type Splitter struct {
	text textsplitter.RecursiveCharacter
}

// New creates a Splitter. chunkSize must be positive and overlap must be in [0, chunkSize).
func New(chunkSize, chunkOverlap int) (*Splitter, error) {
	if chunkSize <= 0 {
		return nil, fmt.Errorf("%w: chunk size %d must be greater than 0", ErrInvalidConfig, chunkSize)
	}
	if chunkOverlap < 0 || chunkOverlap >= chunkSize {
		return nil, fmt.Errorf("%w: chunk overlap %d must be in [0, %d)", ErrInvalidConfig, chunkOverlap, chunkSize)
	}
	return &Splitter{
		text: textsplitter.NewRecursiveCharacter(
			textsplitter.WithChunkSize(chunkSize),
			textsplitter.WithChunkOverlap(chunkOverlap),
			textsplitter.WithSeparators(defaultSeparators),
			textsplitter.WithLenFunc(utf8.RuneCountInString),
		),
	}, nil
}

// Split chunks every segment and returns the chunks in order.
// Each chunk carries the metadata of the segment it came from.
func (s *Splitter) Split(segments []document.Segment) ([]document.Chunk, error) {
	var chunks []document.Chunk
	for i, seg := range segments {
		texts, err := s.SplitText(seg.Text)
		if err != nil {
			return nil, fmt.Errorf("split segment %d: %w", i, err)
		}
		for _, text := range texts {
			chunks = append(chunks, document.Chunk{
				Index:    len(chunks),
				Metadata: seg.Metadata,
				Text:     text,
			})
		}
	}
	return chunks, nil
}

// SplitText splits a single text into chunks. Blank pieces are dropped.
func (s *Splitter) SplitText(text string) ([]string, error) {
	pieces, err := s.text.SplitText(text)
	if err != nil {
		return nil, err
	}
	var out []string
	for _, p := range pieces {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out, nil
}
