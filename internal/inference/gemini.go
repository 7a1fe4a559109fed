package inference

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/cenkalti/backoff/v4"
	"google.golang.org/genai"

	"lingua-pipeline/internal/logger"
)

type implGemini struct {
	apiKeys []string
	model   string
	logger  logger.Logger

	mu         sync.Mutex
	currentKey int
}

// NewGemini creates a Client backed by the Gemini API. Keys are rotated when
// a key hits its quota; transient server errors are retried with exponential
// backoff before giving up on the current key.
func NewGemini(apiKeys []string, model string, log logger.Logger) (Client, error) {
	if len(apiKeys) == 0 {
		return nil, fmt.Errorf("at least one API key is required")
	}
	return &implGemini{
		apiKeys: apiKeys,
		model:   model,
		logger:  log,
	}, nil
}

func (g *implGemini) Complete(ctx context.Context, system, prompt string) (string, error) {
	attempts := len(g.apiKeys)
	var lastErr error

	for range attempts {
		g.mu.Lock()
		keyIndex := g.currentKey
		key := g.apiKeys[keyIndex]
		g.mu.Unlock()

		text, err := g.generate(ctx, key, system, prompt)
		if err == nil {
			return text, nil
		}
		lastErr = err

		if isQuotaError(err) {
			g.logger.Warn(ctx, "API key %d rate limited, rotating...", keyIndex+1)
			g.rotateKey()
			continue
		}
		return "", err
	}

	return "", fmt.Errorf("all API keys exhausted: %w", lastErr)
}

func (g *implGemini) generate(ctx context.Context, key, system, prompt string) (string, error) {
	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  key,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return "", fmt.Errorf("create client: %w", err)
	}

	var cfg *genai.GenerateContentConfig
	if system != "" {
		cfg = &genai.GenerateContentConfig{
			SystemInstruction: genai.NewContentFromText(system, genai.RoleUser),
		}
	}

	var text string
	op := func() error {
		result, err := client.Models.GenerateContent(ctx, g.model, genai.Text(prompt), cfg)
		if err != nil {
			if isTransientError(err) {
				return err
			}
			return backoff.Permanent(err)
		}

		if result == nil || len(result.Candidates) == 0 || result.Candidates[0].Content == nil {
			return backoff.Permanent(fmt.Errorf("empty response from model"))
		}

		var b strings.Builder
		for _, part := range result.Candidates[0].Content.Parts {
			if part.Text != "" {
				b.WriteString(part.Text)
			}
		}
		text = b.String()
		return nil
	}

	b := backoff.NewExponentialBackOff()
	b.MaxElapsedTime = 30 * time.Second
	if err := backoff.Retry(op, backoff.WithContext(b, ctx)); err != nil {
		return "", fmt.Errorf("generate content: %w", err)
	}

	return text, nil
}

func (g *implGemini) rotateKey() {
	g.mu.Lock()
	g.currentKey = (g.currentKey + 1) % len(g.apiKeys)
	g.mu.Unlock()
}

func isQuotaError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "429") ||
		strings.Contains(msg, "quota") ||
		strings.Contains(msg, "RESOURCE_EXHAUSTED")
}

func isTransientError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "500") ||
		strings.Contains(msg, "503") ||
		strings.Contains(msg, "INTERNAL") ||
		strings.Contains(msg, "UNAVAILABLE")
}
