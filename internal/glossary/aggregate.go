package glossary

import (
	"encoding/json"
	"sort"

	"lingua-pipeline/internal/inference"
)

// Aggregate merges the per-unit inference results into the canonical output
// list: flatten the items of the successful results, deduplicate by term key
// keeping the strictly-higher-confidence instance (first seen wins a tie),
// rank by confidence descending, and truncate to max entries. Failed results
// contribute nothing; when every unit failed the output is simply empty.
func Aggregate(results []inference.Result, max int) []Term {
	var flat []Term
	for _, res := range results {
		if res.Status != inference.StatusOK {
			continue
		}
		for _, raw := range res.Items {
			var t Term
			if err := json.Unmarshal(raw, &t); err != nil {
				continue
			}
			if t.Key() == "" {
				continue
			}
			flat = append(flat, t)
		}
	}

	return rank(dedupe(flat), max)
}

func dedupe(terms []Term) []Term {
	index := make(map[string]int, len(terms))
	out := make([]Term, 0, len(terms))

	for _, t := range terms {
		k := t.Key()
		if i, ok := index[k]; ok {
			if t.Confidence > out[i].Confidence {
				out[i] = t
			}
			continue
		}
		index[k] = len(out)
		out = append(out, t)
	}

	return out
}

func rank(terms []Term, max int) []Term {
	sort.SliceStable(terms, func(i, j int) bool {
		return terms[i].Confidence > terms[j].Confidence
	})
	if max > 0 && len(terms) > max {
		terms = terms[:max]
	}
	return terms
}
