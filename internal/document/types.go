package document

// Metadata describes the video a segment was loaded from.
type Metadata struct {
	Author          string `json:"author"`
	DurationSeconds int    `json:"duration_seconds"`
	Title           string `json:"title"`
}

// Segment is one unit of transcript text as returned by a transcript source.
type Segment struct {
	Metadata Metadata
	Text     string
}

// Chunk is a bounded slice of a segment's text.
type Chunk struct {
	Index    int // Position within the whole chunk sequence (starts at 0)
	Metadata Metadata
	Text     string
}

// Texts returns the text of every chunk, in order.
func Texts(chunks []Chunk) []string {
	out := make([]string, len(chunks))
	for i, c := range chunks {
		out[i] = c.Text
	}
	return out
}
