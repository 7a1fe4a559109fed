package subtitle

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// ErrMalformed reports structurally invalid segment data: a broken timestamp
// pair or a sequence numbering that is not a contiguous 1-based run. Such
// input indicates an upstream defect and is never repaired by renumbering,
// since consumers may have matched segments by sequence number already.
var ErrMalformed = errors.New("malformed segment")

// Validate checks the serialization preconditions for a segment list.
func Validate(segments []Segment) error {
	if len(segments) == 0 {
		return fmt.Errorf("%w: empty segment list", ErrMalformed)
	}
	for i, s := range segments {
		if s.SequenceNumber != i+1 {
			return fmt.Errorf("%w: sequence number %d at position %d, want %d",
				ErrMalformed, s.SequenceNumber, i, i+1)
		}
		if s.StartMS < 0 {
			return fmt.Errorf("%w: segment %d starts at %dms", ErrMalformed, s.SequenceNumber, s.StartMS)
		}
		if s.EndMS <= s.StartMS {
			return fmt.Errorf("%w: segment %d ends at %dms, not after start %dms",
				ErrMalformed, s.SequenceNumber, s.EndMS, s.StartMS)
		}
	}
	return nil
}

// FormatTimestamp renders milliseconds as an SRT timestamp, e.g. "00:00:03,500".
func FormatTimestamp(ms int64) string {
	h := ms / 3600000
	ms %= 3600000
	m := ms / 60000
	ms %= 60000
	s := ms / 1000
	ms %= 1000
	return fmt.Sprintf("%02d:%02d:%02d,%03d", h, m, s, ms)
}

// ParseTimestamp is the inverse of FormatTimestamp.
func ParseTimestamp(s string) (int64, error) {
	var h, m, sec, ms int64
	if _, err := fmt.Sscanf(strings.TrimSpace(s), "%d:%d:%d,%d", &h, &m, &sec, &ms); err != nil {
		return 0, fmt.Errorf("parse timestamp %q: %w", s, err)
	}
	return h*3600000 + m*60000 + sec*1000 + ms, nil
}

// Render produces the SRT document for the segments: sequence number line,
// timestamp pair line, text, and one blank line terminating each block.
// The output is deterministic for the same segment data.
func Render(segments []Segment) (string, error) {
	if err := Validate(segments); err != nil {
		return "", err
	}

	var lines []string
	for _, seg := range segments {
		lines = append(lines, strconv.Itoa(seg.SequenceNumber))
		lines = append(lines, FormatTimestamp(seg.StartMS)+" --> "+FormatTimestamp(seg.EndMS))
		lines = append(lines, strings.TrimSpace(seg.Text))
		lines = append(lines, "")
	}

	return strings.Join(lines, "\n"), nil
}

// Parse reads SRT content back into segments. Multi-line cue text is joined
// with newlines. Parse does not renumber: the sequence numbers found in the
// input are returned as-is and checked only for being numeric.
func Parse(content string) ([]Segment, error) {
	content = strings.ReplaceAll(content, "\r\n", "\n")
	content = strings.TrimPrefix(content, "\uFEFF")

	blocks := strings.Split(content, "\n\n")
	var segments []Segment

	for _, block := range blocks {
		block = strings.TrimSpace(block)
		if block == "" {
			continue
		}

		lines := strings.Split(block, "\n")
		if len(lines) < 2 {
			return nil, fmt.Errorf("%w: cue block %q", ErrMalformed, block)
		}

		seq, err := strconv.Atoi(strings.TrimSpace(lines[0]))
		if err != nil {
			return nil, fmt.Errorf("%w: cue sequence line %q", ErrMalformed, lines[0])
		}

		startRaw, endRaw, ok := strings.Cut(lines[1], "-->")
		if !ok {
			return nil, fmt.Errorf("%w: cue %d timing line %q", ErrMalformed, seq, lines[1])
		}
		start, err := ParseTimestamp(startRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: cue %d: %v", ErrMalformed, seq, err)
		}
		end, err := ParseTimestamp(endRaw)
		if err != nil {
			return nil, fmt.Errorf("%w: cue %d: %v", ErrMalformed, seq, err)
		}

		segments = append(segments, Segment{
			SequenceNumber: seq,
			StartMS:        start,
			EndMS:          end,
			Text:           strings.TrimSpace(strings.Join(lines[2:], "\n")),
		})
	}

	return segments, nil
}
