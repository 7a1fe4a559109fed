package subtitle

import (
	"strings"
	"testing"
)

func sampleSegments() []Segment {
	return []Segment{
		{SequenceNumber: 1, StartMS: 0, EndMS: 3500, Text: "안녕하세요"},
		{SequenceNumber: 2, StartMS: 3500, EndMS: 7000, Text: "오늘은 클라우드 컴퓨팅에 대해 말씀드리겠습니다"},
		{SequenceNumber: 3, StartMS: 7000, EndMS: 12345, Text: "감사합니다"},
	}
}

func TestRenderExactFormat(t *testing.T) {
	got, err := Render(sampleSegments())
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	want := "1\n" +
		"00:00:00,000 --> 00:00:03,500\n" +
		"안녕하세요\n" +
		"\n" +
		"2\n" +
		"00:00:03,500 --> 00:00:07,000\n" +
		"오늘은 클라우드 컴퓨팅에 대해 말씀드리겠습니다\n" +
		"\n" +
		"3\n" +
		"00:00:07,000 --> 00:00:12,345\n" +
		"감사합니다\n"

	if got != want {
		t.Errorf("rendered SRT mismatch:\ngot:\n%q\nwant:\n%q", got, want)
	}
}

func TestRenderParseRoundTrip(t *testing.T) {
	in := sampleSegments()

	rendered, err := Render(in)
	if err != nil {
		t.Fatalf("Render() error = %v", err)
	}

	out, err := Parse(rendered)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}

	if len(out) != len(in) {
		t.Fatalf("got %d segments, want %d", len(out), len(in))
	}
	for i := range in {
		if out[i].SequenceNumber != in[i].SequenceNumber {
			t.Errorf("segment %d: SequenceNumber = %d, want %d", i, out[i].SequenceNumber, in[i].SequenceNumber)
		}
		if out[i].StartMS != in[i].StartMS || out[i].EndMS != in[i].EndMS {
			t.Errorf("segment %d: times = %d-%d, want %d-%d",
				i, out[i].StartMS, out[i].EndMS, in[i].StartMS, in[i].EndMS)
		}
		if out[i].Text != in[i].Text {
			t.Errorf("segment %d: Text = %q, want %q", i, out[i].Text, in[i].Text)
		}
	}
}

func TestRenderRejectsMalformed(t *testing.T) {
	tests := []struct {
		name     string
		segments []Segment
	}{
		{
			name:     "empty list",
			segments: nil,
		},
		{
			name: "gap in sequence numbers",
			segments: []Segment{
				{SequenceNumber: 1, StartMS: 0, EndMS: 1000, Text: "a"},
				{SequenceNumber: 2, StartMS: 1000, EndMS: 2000, Text: "b"},
				{SequenceNumber: 4, StartMS: 2000, EndMS: 3000, Text: "c"},
			},
		},
		{
			name: "not starting at one",
			segments: []Segment{
				{SequenceNumber: 2, StartMS: 0, EndMS: 1000, Text: "a"},
			},
		},
		{
			name: "end equals start",
			segments: []Segment{
				{SequenceNumber: 1, StartMS: 500, EndMS: 500, Text: "a"},
			},
		},
		{
			name: "end before start",
			segments: []Segment{
				{SequenceNumber: 1, StartMS: 2000, EndMS: 1000, Text: "a"},
			},
		},
		{
			name: "negative start",
			segments: []Segment{
				{SequenceNumber: 1, StartMS: -1, EndMS: 1000, Text: "a"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Render(tt.segments)
			if err == nil {
				t.Fatal("Render() expected error")
			}
			if !strings.Contains(err.Error(), "malformed segment") {
				t.Errorf("error %q is not a malformed-segment error", err)
			}
		})
	}
}

func TestRenderAllowsTimeOverlap(t *testing.T) {
	segments := []Segment{
		{SequenceNumber: 1, StartMS: 0, EndMS: 5000, Text: "a"},
		{SequenceNumber: 2, StartMS: 4000, EndMS: 8000, Text: "b"},
	}
	if _, err := Render(segments); err != nil {
		t.Errorf("Render() rejected overlapping timings: %v", err)
	}
}

func TestParseMultiLineCue(t *testing.T) {
	content := "1\n" +
		"00:00:00,000 --> 00:00:02,000\n" +
		"first line\n" +
		"second line\n" +
		"\n"

	segments, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(segments) != 1 {
		t.Fatalf("got %d segments, want 1", len(segments))
	}
	if segments[0].Text != "first line\nsecond line" {
		t.Errorf("Text = %q", segments[0].Text)
	}
}

func TestParseCRLF(t *testing.T) {
	content := "1\r\n00:00:00,000 --> 00:00:01,000\r\nhello\r\n\r\n"

	segments, err := Parse(content)
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if len(segments) != 1 || segments[0].Text != "hello" {
		t.Errorf("segments = %+v", segments)
	}
}

func TestParseRejectsBrokenTiming(t *testing.T) {
	content := "1\n00:00:00,000 -- 00:00:01,000\nhello\n\n"
	if _, err := Parse(content); err == nil {
		t.Error("Parse() expected error for broken timing line")
	}
}

func TestFormatTimestamp(t *testing.T) {
	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"zero", 0, "00:00:00,000"},
		{"sub-second", 7, "00:00:00,007"},
		{"seconds and millis", 3500, "00:00:03,500"},
		{"minutes", 65250, "00:01:05,250"},
		{"over an hour", 3723456, "01:02:03,456"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatTimestamp(tt.ms); got != tt.want {
				t.Errorf("FormatTimestamp(%d) = %q, want %q", tt.ms, got, tt.want)
			}
			back, err := ParseTimestamp(tt.want)
			if err != nil {
				t.Fatalf("ParseTimestamp(%q) error = %v", tt.want, err)
			}
			if back != tt.ms {
				t.Errorf("ParseTimestamp(%q) = %d, want %d", tt.want, back, tt.ms)
			}
		})
	}
}
