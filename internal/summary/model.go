package summary

import (
	"context"
	"strings"

	"github.com/tmc/langchaingo/llms"
)

// chainModel exposes a Model as an llms.Model so the summarization chains can drive it.
// Call options are ignored; the gateway owns temperature and limits.
type chainModel struct {
	model Model
}

var _ llms.Model = (*chainModel)(nil)

// GenerateContent flattens the text parts of messages into one prompt.
func (m *chainModel) GenerateContent(ctx context.Context, messages []llms.MessageContent, _ ...llms.CallOption) (*llms.ContentResponse, error) {
	var parts []string
	for _, msg := range messages {
		for _, part := range msg.Parts {
			if text, ok := part.(llms.TextContent); ok {
				parts = append(parts, text.Text)
			}
		}
	}

	out, err := m.model.Generate(ctx, strings.Join(parts, "\n"))
	if err != nil {
		return nil, err
	}
	return &llms.ContentResponse{
		Choices: []*llms.ContentChoice{{Content: out}},
	}, nil
}

func (m *chainModel) Call(ctx context.Context, prompt string, options ...llms.CallOption) (string, error) {
	return llms.GenerateFromSinglePrompt(ctx, m, prompt, options...)
}
