package transcript

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/kkdai/youtube/v2"
)

type fakeVideoClient struct {
	video       *youtube.Video
	videoErr    error
	lines       youtube.VideoTranscript
	linesErr    error
	gotID       string
	gotLang     string
	hasDeadline bool
}

func (f *fakeVideoClient) GetVideoContext(ctx context.Context, url string) (*youtube.Video, error) {
	f.gotID = url
	_, f.hasDeadline = ctx.Deadline()
	return f.video, f.videoErr
}

func (f *fakeVideoClient) GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error) {
	f.gotLang = lang
	return f.lines, f.linesErr
}

func TestClient_Fetch(t *testing.T) {
	video := &youtube.Video{
		ID:       "dQw4w9WgXcQ",
		Title:    "Intro to Go",
		Author:   "Gopher",
		Duration: 754 * time.Second,
	}

	tests := []struct {
		name     string
		url      string
		fake     *fakeVideoClient
		wantErr  error
		wantText string
	}{
		{
			name: "transcript joined into one segment",
			url:  "https://www.youtube.com/watch?v=dQw4w9WgXcQ",
			fake: &fakeVideoClient{
				video: video,
				lines: youtube.VideoTranscript{
					{Text: "hello  there"},
					{Text: "\n"},
					{Text: "general\nkenobi"},
				},
			},
			wantText: "hello there general kenobi",
		},
		{
			name:    "unparseable reference",
			url:     "https://x.io/a?b=c",
			fake:    &fakeVideoClient{},
			wantErr: ErrSourceUnavailable,
		},
		{
			name: "video lookup fails",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			fake: &fakeVideoClient{
				videoErr: errors.New("network down"),
			},
			wantErr: ErrSourceUnavailable,
		},
		{
			name: "transcript disabled",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			fake: &fakeVideoClient{
				video:    video,
				linesErr: youtube.ErrTranscriptDisabled,
			},
			wantErr: ErrNoCaptions,
		},
		{
			name: "transcript request fails",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			fake: &fakeVideoClient{
				video:    video,
				linesErr: errors.New("boom"),
			},
			wantErr: ErrSourceUnavailable,
		},
		{
			name: "empty transcript",
			url:  "https://youtu.be/dQw4w9WgXcQ",
			fake: &fakeVideoClient{
				video: video,
				lines: youtube.VideoTranscript{{Text: "  "}},
			},
			wantErr: ErrNoCaptions,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := newClient(tt.fake, "de", time.Second)

			segments, err := client.Fetch(context.Background(), tt.url)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("Fetch() error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("Fetch() unexpected error: %v", err)
			}
			if len(segments) != 1 {
				t.Fatalf("Fetch() returned %d segments, want 1", len(segments))
			}

			seg := segments[0]
			if seg.Text != tt.wantText {
				t.Errorf("Fetch() text = %q, want %q", seg.Text, tt.wantText)
			}
			if seg.Metadata.Title != "Intro to Go" || seg.Metadata.Author != "Gopher" || seg.Metadata.DurationSeconds != 754 {
				t.Errorf("Fetch() metadata = %+v", seg.Metadata)
			}
			if tt.fake.gotID != "dQw4w9WgXcQ" {
				t.Errorf("Fetch() requested video %q, want dQw4w9WgXcQ", tt.fake.gotID)
			}
			if tt.fake.gotLang != "de" {
				t.Errorf("Fetch() requested language %q, want de", tt.fake.gotLang)
			}
			if !tt.fake.hasDeadline {
				t.Error("Fetch() should bound the source call with a deadline")
			}
		})
	}
}

func TestNewClient_DefaultLanguage(t *testing.T) {
	client := NewClient("", 0)
	if client.language != "en" {
		t.Errorf("NewClient() language = %q, want en", client.language)
	}
	if client.yt == nil {
		t.Error("NewClient() youtube client should not be nil")
	}
}
