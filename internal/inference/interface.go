package inference

import "context"

// Client is the opaque inference capability consumed by the pipelines:
// submit a prompt, receive text. Implementations own their retry policy;
// callers issue exactly one Complete call per unit of work.
type Client interface {
	Complete(ctx context.Context, system, prompt string) (string, error)
}
