// Package whisper shells out to a whisper.cpp binary to transcribe audio
// and video files.
package whisper

import (
	"bufio"
	"bytes"
	"context"
	"fmt"
	"io"
	"os/exec"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/wikilens/wikilens"
)

// Compile-time interface verification.
var _ wikilens.Transcriber = (*Transcriber)(nil)

// DefaultBinary is the whisper.cpp CLI name looked up on PATH.
const DefaultBinary = "whisper-cli"

// segmentPattern matches whisper.cpp output lines such as
// [00:00:00.000 --> 00:00:04.500]   Hello there.
var segmentPattern = regexp.MustCompile(`^\[(\d{2}):(\d{2}):(\d{2})\.(\d{3}) --> [^\]]+\]\s*(.*)$`)

// Transcriber runs a whisper.cpp binary and parses its timestamped output.
type Transcriber struct {
	binary string
	model  string
}

// Option configures a Transcriber.
type Option func(*Transcriber)

// WithBinary overrides the whisper.cpp binary path.
func WithBinary(path string) Option {
	return func(t *Transcriber) { t.binary = path }
}

// NewTranscriber creates a Transcriber using the model file at modelPath.
func NewTranscriber(modelPath string, opts ...Option) *Transcriber {
	t := &Transcriber{binary: DefaultBinary, model: modelPath}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Transcribe runs the binary against mediaPath and returns the timed
// segments it recognized.
func (t *Transcriber) Transcribe(ctx context.Context, mediaPath string) ([]wikilens.TranscriptSegment, error) {
	cmd := exec.CommandContext(ctx, t.binary, "-m", t.model, "-f", mediaPath)

	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		msg := strings.TrimSpace(stderr.String())
		if msg != "" {
			return nil, fmt.Errorf("transcribe %s: %s", mediaPath, msg)
		}
		return nil, fmt.Errorf("transcribe %s: %w", mediaPath, err)
	}

	return ParseOutput(&stdout)
}

// ParseOutput extracts timed segments from whisper.cpp stdout. Lines that
// do not carry a timestamp are skipped.
func ParseOutput(r io.Reader) ([]wikilens.TranscriptSegment, error) {
	var segments []wikilens.TranscriptSegment

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		m := segmentPattern.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}

		hours, _ := strconv.Atoi(m[1])
		minutes, _ := strconv.Atoi(m[2])
		seconds, _ := strconv.Atoi(m[3])
		millis, _ := strconv.Atoi(m[4])

		start := time.Duration(hours)*time.Hour +
			time.Duration(minutes)*time.Minute +
			time.Duration(seconds)*time.Second +
			time.Duration(millis)*time.Millisecond

		segments = append(segments, wikilens.TranscriptSegment{
			Start: start,
			Text:  strings.TrimSpace(m[5]),
		})
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("read transcriber output: %w", err)
	}
	return segments, nil
}
