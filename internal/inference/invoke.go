package inference

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"lingua-pipeline/internal/logger"
)

// Status is the outcome of a single unit invocation.
type Status string

const (
	StatusOK     Status = "success"
	StatusFailed Status = "failed"
)

// ErrorKind categorizes why an invocation failed. The pipelines never need
// finer detail than this; the wrapped error carries the specifics for logs.
type ErrorKind string

const (
	ErrorKindTransport ErrorKind = "transport"
	ErrorKindMalformed ErrorKind = "malformed_response"
)

// Request describes one structured-output invocation over a single unit.
type Request struct {
	UnitIndex int
	System    string
	Prompt    string
	// ListKey is the JSON field of the response object holding the item array.
	ListKey string
	// PayloadSize is the unit content size in characters, for diagnostics.
	PayloadSize int
}

// Result is the per-unit outcome. A failed result carries no items; the
// UnitIndex back-reference exists only for correlation in logs.
type Result struct {
	UnitIndex int
	Items     []json.RawMessage
	Status    Status
	ErrorKind ErrorKind
	Err       error
}

// TextResult is the outcome of a single free-text invocation (one segment
// translation).
type TextResult struct {
	SequenceNumber int
	Text           string
	Status         Status
	ErrorKind      ErrorKind
	Err            error
}

// InvokeUnit performs exactly one inference call for the unit and isolates
// any failure: a transport error or a response that is not well-formed
// structured output is recorded on the result instead of aborting the batch.
func InvokeUnit(ctx context.Context, c Client, log logger.Logger, req Request) Result {
	raw, err := c.Complete(ctx, req.System, req.Prompt)
	if err != nil {
		log.Warn(ctx, "Unit %d invocation failed (%d chars): %v", req.UnitIndex, req.PayloadSize, err)
		return Result{UnitIndex: req.UnitIndex, Status: StatusFailed, ErrorKind: ErrorKindTransport, Err: err}
	}

	items, err := extractItems(raw, req.ListKey)
	if err != nil {
		log.Warn(ctx, "Unit %d returned malformed output (%d chars): %v", req.UnitIndex, req.PayloadSize, err)
		return Result{UnitIndex: req.UnitIndex, Status: StatusFailed, ErrorKind: ErrorKindMalformed, Err: err}
	}

	log.Debug(ctx, "Unit %d: %d items (%d chars in)", req.UnitIndex, len(items), req.PayloadSize)
	return Result{UnitIndex: req.UnitIndex, Items: items, Status: StatusOK}
}

// InvokeText performs exactly one inference call expecting plain text back.
// Like InvokeUnit it never propagates the failure: the caller decides what a
// failed segment means.
func InvokeText(ctx context.Context, c Client, log logger.Logger, system, prompt string, seq int) TextResult {
	raw, err := c.Complete(ctx, system, prompt)
	if err != nil {
		log.Warn(ctx, "Segment %d invocation failed: %v", seq, err)
		return TextResult{SequenceNumber: seq, Status: StatusFailed, ErrorKind: ErrorKindTransport, Err: err}
	}

	text := strings.TrimSpace(raw)
	if text == "" {
		err := fmt.Errorf("empty response text")
		log.Warn(ctx, "Segment %d returned no text", seq)
		return TextResult{SequenceNumber: seq, Status: StatusFailed, ErrorKind: ErrorKindMalformed, Err: err}
	}

	return TextResult{SequenceNumber: seq, Text: text, Status: StatusOK}
}

// extractItems pulls the item array out of the model's response. Models
// sometimes wrap the JSON in prose or code fences, so the outermost object
// is located by brace scanning before decoding.
func extractItems(raw, listKey string) ([]json.RawMessage, error) {
	start := strings.Index(raw, "{")
	end := strings.LastIndex(raw, "}")
	if start < 0 || end <= start {
		return nil, fmt.Errorf("no JSON object in response")
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal([]byte(raw[start:end+1]), &payload); err != nil {
		return nil, fmt.Errorf("decode response object: %w", err)
	}

	arr, ok := payload[listKey]
	if !ok {
		return nil, fmt.Errorf("response has no %q field", listKey)
	}

	var items []json.RawMessage
	if err := json.Unmarshal(arr, &items); err != nil {
		return nil, fmt.Errorf("decode %q array: %w", listKey, err)
	}

	return items, nil
}
