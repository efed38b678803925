package whisper_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/whisper"
)

func TestParseOutput(t *testing.T) {
	t.Parallel()

	output := strings.Join([]string{
		"whisper_init_from_file: loading model",
		"[00:00:00.000 --> 00:00:03.480]   Welcome everyone.",
		"[00:01:15.200 --> 00:01:20.000]   Let's get started.",
		"",
		"[01:02:03.450 --> 01:02:05.000] Final words.",
	}, "\n")

	segments, err := whisper.ParseOutput(strings.NewReader(output))

	require.NoError(t, err)
	require.Len(t, segments, 3)

	assert.Equal(t, wikilens.TranscriptSegment{Start: 0, Text: "Welcome everyone."}, segments[0])
	assert.Equal(t, wikilens.TranscriptSegment{
		Start: time.Minute + 15*time.Second + 200*time.Millisecond,
		Text:  "Let's get started.",
	}, segments[1])
	assert.Equal(t, wikilens.TranscriptSegment{
		Start: time.Hour + 2*time.Minute + 3*time.Second + 450*time.Millisecond,
		Text:  "Final words.",
	}, segments[2])
}

func TestParseOutput_NoSegments(t *testing.T) {
	t.Parallel()

	segments, err := whisper.ParseOutput(strings.NewReader("no timestamps here\n"))

	require.NoError(t, err)
	assert.Empty(t, segments)
}
