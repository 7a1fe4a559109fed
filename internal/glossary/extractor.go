package glossary

import (
	"context"
	"fmt"

	"lingua-pipeline/internal/inference"
	"lingua-pipeline/internal/segment"
)

const extractionSystemPrompt = `You are a terminology extraction and multilingual translation specialist.
Extract IT, project management and business terms from the given text and translate them into Korean, English and Vietnamese.

Respond with JSON only, in this exact shape:
{
  "terms": [
    {
      "korean": "한글 용어",
      "english": "English term",
      "vietnamese": "Thuật ngữ tiếng Việt",
      "abbreviation": "abbreviation if one is defined in the text, otherwise null",
      "definition": "clear definition in one or two sentences",
      "context": "the exact sentence from the text where the term is used",
      "example_sentence": "an example sentence, quoted or generated",
      "note": "additional remarks if helpful, otherwise null",
      "domain": "IT, Project Management, Business or Development",
      "confidence": 0.95
    }
  ]
}

Rules:
- Only domain-specific terms; skip everyday words.
- Include each term once; similar terms are separate entries.
- Quote the context verbatim from the text.
- Confidence reflects how domain-specific the term is, between 0.0 and 1.0.
- Pick exactly one domain per term.`

const extractionPromptFormat = `Extract up to %d technical terms from the following text, highest confidence first.

Text:
%s`

// Extract splits the text into bounded units, runs one inference call per
// unit in order, and aggregates the unit results into the final ranked list.
// Individual unit failures are tolerated; only an entirely empty document is
// an error.
func (e *implExtractor) Extract(ctx context.Context, text string) ([]Term, error) {
	units := segment.Split(text, e.chunkSize)
	if len(units) == 0 {
		return nil, fmt.Errorf("document text is empty")
	}

	// Over-request per unit so that enough candidates survive
	// deduplication across unit boundaries.
	perUnit := (e.maxTerms+len(units)-1)/len(units) + e.buffer

	e.logger.Info(ctx, "Extracting terms: %d chars, %d units, up to %d terms per unit",
		len(text), len(units), perUnit)

	results := make([]inference.Result, 0, len(units))
	failed := 0
	for _, u := range units {
		e.logger.Info(ctx, "Processing unit %d/%d (%d chars)", u.Index+1, len(units), len(u.Content))

		res := inference.InvokeUnit(ctx, e.client, e.logger, inference.Request{
			UnitIndex:   u.Index,
			System:      extractionSystemPrompt,
			Prompt:      fmt.Sprintf(extractionPromptFormat, perUnit, u.Content),
			ListKey:     "terms",
			PayloadSize: len(u.Content),
		})
		if res.Status != inference.StatusOK {
			failed++
		}
		results = append(results, res)
	}

	terms := Aggregate(results, e.maxTerms)

	if failed > 0 {
		e.logger.Warn(ctx, "Extraction finished with %d/%d failed units", failed, len(units))
	}
	e.logger.Info(ctx, "Extraction complete: %d terms", len(terms))

	return terms, nil
}
