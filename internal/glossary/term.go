package glossary

import "strings"

// Term is one extracted glossary entry. The Korean spelling is the canonical
// identity: at most one term per distinct Korean spelling survives
// aggregation.
type Term struct {
	Korean          string  `json:"korean"`
	English         string  `json:"english,omitempty"`
	Vietnamese      string  `json:"vietnamese,omitempty"`
	Abbreviation    string  `json:"abbreviation,omitempty"`
	Definition      string  `json:"definition"`
	Context         string  `json:"context,omitempty"`
	ExampleSentence string  `json:"example_sentence,omitempty"`
	Note            string  `json:"note,omitempty"`
	Domain          string  `json:"domain"`
	Confidence      float64 `json:"confidence"`
}

// Key returns the deduplication key for the term.
func (t Term) Key() string {
	return strings.TrimSpace(t.Korean)
}
