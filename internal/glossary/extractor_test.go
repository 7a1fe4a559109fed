package glossary

import (
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"lingua-pipeline/internal/config"
	"lingua-pipeline/internal/logger"
)

// scriptedClient returns one canned response (or error) per call, in order.
type scriptedClient struct {
	responses []string
	errs      []error
	calls     int
}

func (s *scriptedClient) Complete(ctx context.Context, system, prompt string) (string, error) {
	i := s.calls
	s.calls++
	if i < len(s.errs) && s.errs[i] != nil {
		return "", s.errs[i]
	}
	if i < len(s.responses) {
		return s.responses[i], nil
	}
	return `{"terms": []}`, nil
}

func extractorWith(client *scriptedClient, chunkSize, maxTerms int) Extractor {
	cfg := &config.Config{}
	cfg.Glossary.ChunkSize = chunkSize
	cfg.Glossary.MaxTerms = maxTerms
	cfg.Glossary.OverRequestBuffer = 5
	return New(cfg, client, logger.NewWithWriter("error", io.Discard))
}

func TestExtractFanOut(t *testing.T) {
	client := &scriptedClient{
		responses: []string{
			`{"terms": [{"korean": "클라우드", "definition": "d", "domain": "IT", "confidence": 0.9}]}`,
			`{"terms": [{"korean": "마이크로서비스", "definition": "d", "domain": "IT", "confidence": 0.8}]}`,
		},
	}

	// 12 words, 6 per unit at a 29-char bound
	text := strings.Repeat("word ", 6) + strings.Repeat("term ", 6)
	ex := extractorWith(client, 29, 10)

	terms, err := ex.Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract() error = %v", err)
	}

	if client.calls != 2 {
		t.Errorf("client called %d times, want one call per unit (2)", client.calls)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2", len(terms))
	}
	if terms[0].Korean != "클라우드" {
		t.Errorf("terms[0] = %q, want highest confidence first", terms[0].Korean)
	}
}

func TestExtractIsolatesUnitFailure(t *testing.T) {
	client := &scriptedClient{
		errs: []error{nil, errors.New("service unavailable"), nil},
		responses: []string{
			`{"terms": [{"korean": "하나", "confidence": 0.9}]}`,
			"",
			`{"terms": [{"korean": "둘", "confidence": 0.8}]}`,
		},
	}

	text := strings.Repeat("alpha ", 5) + strings.Repeat("bravo ", 5) + strings.Repeat("delta ", 5)
	ex := extractorWith(client, 29, 10)

	terms, err := ex.Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract() error = %v, one failed unit must not abort the batch", err)
	}

	if client.calls != 3 {
		t.Errorf("client called %d times, want 3", client.calls)
	}
	if len(terms) != 2 {
		t.Fatalf("got %d terms, want 2 from the surviving units", len(terms))
	}
}

func TestExtractAllUnitsFailed(t *testing.T) {
	client := &scriptedClient{
		errs: []error{errors.New("down"), errors.New("down")},
	}

	text := strings.Repeat("alpha ", 5) + strings.Repeat("bravo ", 5)
	ex := extractorWith(client, 29, 10)

	terms, err := ex.Extract(context.Background(), text)
	if err != nil {
		t.Fatalf("Extract() error = %v, total unit failure is a degraded result, not an error", err)
	}
	if len(terms) != 0 {
		t.Errorf("got %d terms, want empty output", len(terms))
	}
}

func TestExtractEmptyDocument(t *testing.T) {
	ex := extractorWith(&scriptedClient{}, 100, 10)

	if _, err := ex.Extract(context.Background(), "   "); err == nil {
		t.Error("Extract() expected error for empty document")
	}
}
