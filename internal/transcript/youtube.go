package transcript

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kkdai/youtube/v2"

	"dynamocards/internal/contextutil"
	"dynamocards/internal/document"
)

var (
	// ErrSourceUnavailable is returned when the video cannot be resolved or loaded
	// (invalid reference, network failure, private or removed video).
	ErrSourceUnavailable = errors.New("transcript source unavailable")
	// ErrNoCaptions is returned when the video has no usable caption track.
	ErrNoCaptions = errors.New("no captions available")
)

// videoClient is the subset of *youtube.Client used to load transcripts.
type videoClient interface {
	GetVideoContext(ctx context.Context, url string) (*youtube.Video, error)
	GetTranscriptCtx(ctx context.Context, video *youtube.Video, lang string) (youtube.VideoTranscript, error)
}

// Client loads YouTube transcripts together with their video metadata.
type Client struct {
	yt       videoClient
	language string
	timeout  time.Duration
	logger   *slog.Logger
}

// NewClient creates a transcript client for captions in the given language.
// A zero timeout leaves the caller's deadline in charge.
func NewClient(language string, timeout time.Duration) *Client {
	return newClient(&youtube.Client{}, language, timeout)
}

func newClient(yt videoClient, language string, timeout time.Duration) *Client {
	if language == "" {
		language = "en"
	}
	return &Client{
		yt:       yt,
		language: language,
		timeout:  timeout,
		logger:   slog.Default(),
	}
}

// Fetch loads the transcript of the video referenced by videoURL.
// The whole caption track becomes a single segment carrying the video's metadata.
func (c *Client) Fetch(ctx context.Context, videoURL string) ([]document.Segment, error) {
	logger := contextutil.LoggerFromContext(ctx, c.logger)

	videoID, err := youtube.ExtractVideoID(videoURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrSourceUnavailable, err)
	}

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}

	video, err := c.yt.GetVideoContext(ctx, videoID)
	if err != nil {
		logger.WarnContext(ctx, "failed to load video", "video_id", videoID, "error", err)
		return nil, fmt.Errorf("%w: load video %s: %v", ErrSourceUnavailable, videoID, err)
	}

	lines, err := c.yt.GetTranscriptCtx(ctx, video, c.language)
	if err != nil {
		if errors.Is(err, youtube.ErrTranscriptDisabled) {
			return nil, fmt.Errorf("%w: video %s", ErrNoCaptions, videoID)
		}
		return nil, fmt.Errorf("%w: load transcript %s: %v", ErrSourceUnavailable, videoID, err)
	}

	text := joinLines(lines)
	if text == "" {
		return nil, fmt.Errorf("%w: video %s has an empty transcript", ErrNoCaptions, videoID)
	}

	logger.DebugContext(ctx, "transcript loaded",
		"video_id", videoID,
		"lines", len(lines),
		"characters", len(text),
	)

	return []document.Segment{{
		Metadata: document.Metadata{
			Author:          video.Author,
			DurationSeconds: int(video.Duration.Seconds()),
			Title:           video.Title,
		},
		Text: text,
	}}, nil
}

// joinLines flattens caption lines into running text.
func joinLines(lines youtube.VideoTranscript) string {
	parts := make([]string, 0, len(lines))
	for _, line := range lines {
		t := strings.Join(strings.Fields(line.Text), " ")
		if t != "" {
			parts = append(parts, t)
		}
	}
	return strings.Join(parts, " ")
}
