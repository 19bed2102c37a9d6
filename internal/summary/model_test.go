package summary

import (
	"context"
	"errors"
	"testing"

	"github.com/tmc/langchaingo/llms"
)

func TestChainModel_GenerateContent(t *testing.T) {
	model := &fakeModel{}
	m := &chainModel{model: model}

	resp, err := m.GenerateContent(context.Background(), []llms.MessageContent{
		llms.TextParts(llms.ChatMessageTypeSystem, "be brief"),
		llms.TextParts(llms.ChatMessageTypeHuman, "summarize this"),
	})
	if err != nil {
		t.Fatalf("GenerateContent() error = %v", err)
	}
	if len(resp.Choices) != 1 || resp.Choices[0].Content != "summary-01\n" {
		t.Errorf("GenerateContent() choices = %+v, want the model output", resp.Choices)
	}
	if got, want := model.prompts[0], "be brief\nsummarize this"; got != want {
		t.Errorf("prompt = %q, want %q", got, want)
	}
}

func TestChainModel_Call(t *testing.T) {
	tests := []struct {
		name    string
		failOn  string
		want    string
		wantErr bool
	}{
		{name: "returns the model output", want: "summary-01\n"},
		{name: "propagates model errors", failOn: "prompt", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := &chainModel{model: &fakeModel{failOn: tt.failOn}}

			got, err := m.Call(context.Background(), "prompt")
			if tt.wantErr {
				if err == nil {
					t.Fatal("Call() expected error")
				}
				if errors.Is(err, ErrNothingToSummarize) {
					t.Errorf("Call() error = %v, want the model error", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("Call() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("Call() = %q, want %q", got, tt.want)
			}
		})
	}
}
