package mock

import (
	"context"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.Transcriber = (*Transcriber)(nil)

// Transcriber is a mock implementation of wikilens.Transcriber.
type Transcriber struct {
	TranscribeFn func(ctx context.Context, mediaPath string) ([]wikilens.TranscriptSegment, error)
}

func (t *Transcriber) Transcribe(ctx context.Context, mediaPath string) ([]wikilens.TranscriptSegment, error) {
	return t.TranscribeFn(ctx, mediaPath)
}
