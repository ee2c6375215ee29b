package service

import "context"

// LineClassifier is the extension point for streaming log analysis. An
// implementation receives each line of an admitted upload, in order, starting
// from the first byte of the stream.
//
// No implementation ships yet; classification rules (what counts as an error
// or a warning, aggregation, reporting) are still open. When the gate has no
// classifier the admitted body is not read at all.
type LineClassifier interface {
	// ClassifyLine consumes one log line without its trailing newline.
	// Returning an error aborts the scan; the gate still closes the stream.
	ClassifyLine(ctx context.Context, line []byte) error
}
