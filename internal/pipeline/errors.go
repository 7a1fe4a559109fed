package pipeline

import "errors"

// ErrSourceNotReady reports that a stage was requested before the stage it
// consumes has completed for the media item.
var ErrSourceNotReady = errors.New("source stage not completed")
