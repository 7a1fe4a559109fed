package glossary

import "context"

// Extractor runs the glossary term extraction pipeline over a document's text.
type Extractor interface {
	Extract(ctx context.Context, text string) ([]Term, error)
}
