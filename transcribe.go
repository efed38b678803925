package wikilens

import (
	"context"
	"time"
)

// TranscriptSegment is one timed span of recognized speech.
type TranscriptSegment struct {
	Start time.Duration `json:"start"`
	Text  string        `json:"text"`
}

// Transcriber converts audio or video payloads into timed transcript
// segments. Speech recognition itself is an external collaborator.
type Transcriber interface {
	Transcribe(ctx context.Context, mediaPath string) ([]TranscriptSegment, error)
}
