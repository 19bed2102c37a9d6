package llm

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/generative-ai-go/genai"
	"golang.org/x/time/rate"
	"google.golang.org/api/option"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
)

var (
	// ErrModelUnavailable is returned when the hosted model cannot serve a request.
	ErrModelUnavailable = errors.New("model unavailable")
	// ErrRateLimited is returned when the provider rejects a request for quota reasons.
	ErrRateLimited = errors.New("model rate limited")
)

// generativeModel is the subset of *genai.GenerativeModel the gateway uses.
type generativeModel interface {
	GenerateContent(ctx context.Context, parts ...genai.Part) (*genai.GenerateContentResponse, error)
	CountTokens(ctx context.Context, parts ...genai.Part) (*genai.CountTokensResponse, error)
}

// Gateway is a thin adapter around a hosted Gemini model.
type Gateway struct {
	client    *genai.Client
	model     generativeModel
	modelName string
	cfg       Config
	limiter   *rate.Limiter
}

// NewGateway connects to the Gemini API with the credentials in cfg.
func NewGateway(ctx context.Context, cfg Config) (*Gateway, error) {
	if cfg.APIKey == "" {
		return nil, fmt.Errorf("gemini API key is required")
	}
	if cfg.ModelName == "" {
		cfg.ModelName = "gemini-1.5-flash"
	}

	cl, err := genai.NewClient(ctx, option.WithAPIKey(cfg.APIKey))
	if err != nil {
		return nil, fmt.Errorf("create gemini client: %w", err)
	}

	m := cl.GenerativeModel(cfg.ModelName)
	if cfg.JSONMode {
		m.ResponseMIMEType = "application/json"
	}

	g := newGateway(m, cfg)
	g.client = cl
	return g, nil
}

func newGateway(m generativeModel, cfg Config) *Gateway {
	g := &Gateway{
		model:     m,
		modelName: cfg.ModelName,
		cfg:       cfg,
	}
	if cfg.RequestsPerSecond > 0 {
		g.limiter = rate.NewLimiter(rate.Limit(cfg.RequestsPerSecond), 1)
	}
	return g
}

// Close releases the underlying client.
func (g *Gateway) Close() error {
	if g.client != nil {
		return g.client.Close()
	}
	return nil
}

// ModelName returns the identity of the model behind the gateway.
func (g *Gateway) ModelName() string {
	return g.modelName
}

// Generate sends prompt to the model and returns the concatenated text of the first candidate.
// An empty candidate list yields an empty string, not an error.
func (g *Gateway) Generate(ctx context.Context, prompt string) (string, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	if err := g.wait(ctx); err != nil {
		return "", err
	}

	resp, err := g.model.GenerateContent(ctx, genai.Text(prompt))
	if err != nil {
		return "", classify("gemini generate", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", nil
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		if t, ok := p.(genai.Text); ok {
			b.WriteString(string(t))
		}
	}
	return b.String(), nil
}

// CountBillableUnits returns the number of tokens the model bills for text.
func (g *Gateway) CountBillableUnits(ctx context.Context, text string) (int, error) {
	ctx, cancel := g.callContext(ctx)
	defer cancel()

	if err := g.wait(ctx); err != nil {
		return 0, err
	}

	resp, err := g.model.CountTokens(ctx, genai.Text(text))
	if err != nil {
		return 0, classify("gemini count tokens", err)
	}
	return int(resp.TotalTokens), nil
}

func (g *Gateway) callContext(ctx context.Context) (context.Context, context.CancelFunc) {
	if g.cfg.Timeout > 0 {
		return context.WithTimeout(ctx, g.cfg.Timeout)
	}
	return context.WithCancel(ctx)
}

func (g *Gateway) wait(ctx context.Context) error {
	if g.limiter == nil {
		return nil
	}
	if err := g.limiter.Wait(ctx); err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return fmt.Errorf("gemini rate limit wait: %w", ctxErr)
		}
		// The wait would outlast the deadline.
		return fmt.Errorf("%w: %w", ErrRateLimited, err)
	}
	return nil
}

// classify maps provider errors onto the gateway's error taxonomy.
func classify(op string, err error) error {
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("%s: %w", op, err)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("%s: %w: %w", op, ErrModelUnavailable, err)
	}
	switch status.Code(err) {
	case codes.ResourceExhausted:
		return fmt.Errorf("%s: %w: %v", op, ErrRateLimited, err)
	case codes.Unavailable, codes.DeadlineExceeded, codes.Internal, codes.Unknown:
		return fmt.Errorf("%s: %w: %v", op, ErrModelUnavailable, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}
