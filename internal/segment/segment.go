package segment

import (
	"strings"
	"unicode/utf8"
)

// Unit is one bounded, ordered piece of segmented input. Each unit is handed
// to exactly one inference call.
type Unit struct {
	Index   int
	Content string
}

// Split packs whitespace-separated words into units of at most maxChars
// characters, left to right. The bound counts runes, not bytes, so
// multi-byte scripts pack to the same density as ASCII. Packing is greedy: a
// unit is filled until the next word would push it past the bound, then a
// new unit starts. A single word longer than maxChars becomes its own
// oversized unit; words are never dropped or truncated. Joining the unit
// contents with single spaces reproduces the input word sequence exactly.
// Empty input yields no units.
func Split(text string, maxChars int) []Unit {
	words := strings.Fields(text)
	if len(words) == 0 {
		return nil
	}

	var units []Unit
	var b strings.Builder
	runes := 0

	flush := func() {
		if b.Len() > 0 {
			units = append(units, Unit{Index: len(units), Content: b.String()})
			b.Reset()
			runes = 0
		}
	}

	for _, w := range words {
		wlen := utf8.RuneCountInString(w)
		if runes == 0 {
			b.WriteString(w)
			runes = wlen
			continue
		}
		if runes+1+wlen > maxChars {
			flush()
			b.WriteString(w)
			runes = wlen
			continue
		}
		b.WriteString(" ")
		b.WriteString(w)
		runes += 1 + wlen
	}
	flush()

	return units
}
