package groq

import (
	"context"
	"errors"
	"fmt"

	"github.com/sashabaranov/go-openai"
	"groq-scribe/internal/transcriber"
)

// Client transcribes audio through Groq's OpenAI-compatible whisper API.
// A single instance is created at startup and shared read-only across all
// request handlers; it holds no mutable state.
type Client struct {
	api   *openai.Client
	model string
}

// Option configures a Client.
type Option func(*options)

type options struct {
	baseURL string
	model   string
}

// WithBaseURL points the client at a different OpenAI-compatible endpoint.
// Used to target local fakes in tests.
func WithBaseURL(url string) Option {
	return func(o *options) {
		o.baseURL = url
	}
}

// WithModel overrides the whisper model.
func WithModel(model string) Option {
	return func(o *options) {
		o.model = model
	}
}

// NewClient creates a Groq transcription client.
func NewClient(apiKey string, opts ...Option) *Client {
	o := options{
		baseURL: "https://api.groq.com/openai/v1",
		model:   "whisper-large-v3",
	}
	for _, opt := range opts {
		opt(&o)
	}

	cfg := openai.DefaultConfig(apiKey)
	cfg.BaseURL = o.baseURL

	return &Client{
		api:   openai.NewClientWithConfig(cfg),
		model: o.model,
	}
}

// Transcribe sends the audio to the whisper endpoint and returns the plain
// text transcript. A single attempt is made; failures are terminal for the
// request and resubmission is up to the caller.
func (c *Client) Transcribe(ctx context.Context, req transcriber.Request) (string, error) {
	audioReq := openai.AudioRequest{
		Model:    c.model,
		Reader:   req.Reader,
		FilePath: req.Filename,
		Format:   openai.AudioResponseFormatText,
		Language: req.Language,
	}

	resp, err := c.api.CreateTranscription(ctx, audioReq)
	if err != nil {
		return "", fmt.Errorf("createTranscription failed: %w", normalize(err))
	}

	return resp.Text, nil
}

// normalize strips the go-openai error envelope down to the upstream message
// so the relayed error reads like the service's own wording.
func normalize(err error) error {
	var apiErr *openai.APIError
	if errors.As(err, &apiErr) && apiErr.Message != "" {
		return errors.New(apiErr.Message)
	}
	return err
}
