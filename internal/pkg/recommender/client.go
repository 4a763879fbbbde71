package recommender

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"google.golang.org/genai"
)

// geminiGenerator issues single-shot completion calls against the Gemini
// API. The underlying client is built once per process on first use and
// shared by every request.
type geminiGenerator struct {
	apiKey  string
	timeout time.Duration

	once    sync.Once
	client  *genai.Client
	initErr error
}

func newGeminiGenerator(apiKey string, timeout time.Duration) *geminiGenerator {
	return &geminiGenerator{
		apiKey:  apiKey,
		timeout: timeout,
	}
}

func (g *geminiGenerator) init(ctx context.Context) error {
	g.once.Do(func() {
		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			g.initErr = fmt.Errorf("create gemini client: %w", err)
			return
		}

		g.client = client
	})

	return g.initErr
}

// GenerateText runs one completion call and returns the plain-text result.
func (g *geminiGenerator) GenerateText(ctx context.Context, model, prompt string) (string, error) {
	if err := g.init(ctx); err != nil {
		return "", err
	}

	if g.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, g.timeout)
		defer cancel()
	}

	resp, err := g.client.Models.GenerateContent(ctx, model, genai.Text(prompt), nil)
	if err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", errors.New("no content in completion response")
	}

	var text string
	for _, part := range resp.Candidates[0].Content.Parts {
		text += part.Text
	}

	if text == "" {
		return "", errors.New("empty completion response")
	}

	return text, nil
}
