package assist

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/wikilens/wikilens"
)

// VideoSummary is the result of transcribing and summarizing one video.
type VideoSummary struct {
	Title      string `json:"title"`
	Transcript string `json:"transcript"`
	Quotes     string `json:"quotes"`
	Summary    string `json:"summary"`
}

// VideoSummarizer transcribes video attachments and generates quotes and
// timestamped summaries from the transcript.
type VideoSummarizer struct {
	source      wikilens.ContentSource
	transcriber wikilens.Transcriber
	gen         wikilens.Generator

	lastQuestion string
	lastAnswer   string
}

// NewVideoSummarizer creates a VideoSummarizer.
func NewVideoSummarizer(source wikilens.ContentSource, transcriber wikilens.Transcriber, gen wikilens.Generator) *VideoSummarizer {
	return &VideoSummarizer{source: source, transcriber: transcriber, gen: gen}
}

// FormatTranscript renders segments as "[m:ss] text" lines.
func FormatTranscript(segments []wikilens.TranscriptSegment) string {
	lines := make([]string, 0, len(segments))
	for _, seg := range segments {
		total := int(seg.Start.Seconds())
		lines = append(lines, fmt.Sprintf("[%d:%02d] %s", total/60, total%60, strings.TrimSpace(seg.Text)))
	}
	return strings.Join(lines, "\n")
}

// IsVideo reports whether an attachment looks like a video file.
func IsVideo(att wikilens.Attachment) bool {
	if strings.HasPrefix(att.MediaType, "video/") {
		return true
	}
	switch strings.ToLower(filepath.Ext(att.Title)) {
	case ".mp4", ".mov", ".avi", ".mkv", ".webm":
		return true
	}
	return false
}

// Summarize transcribes the media file at mediaPath and generates quotes
// and a timestamped summary.
func (v *VideoSummarizer) Summarize(ctx context.Context, title, mediaPath string) (*VideoSummary, error) {
	segments, err := v.transcriber.Transcribe(ctx, mediaPath)
	if err != nil {
		return nil, fmt.Errorf("transcribe %s: %w", mediaPath, err)
	}
	transcript := FormatTranscript(segments)

	quotes, err := v.gen.Generate(ctx, wikilens.SanitizePrompt(fmt.Sprintf(
		"Set a title \"Quotes:\" in bold. Extract powerful or interesting quotes:\n%s", transcript,
	)))
	if err != nil {
		return nil, fmt.Errorf("generate quotes: %w", err)
	}

	summary, err := v.gen.Generate(ctx, wikilens.SanitizePrompt(fmt.Sprintf(
		"Start with title as \"Summary:\" in bold, followed by 2-3 paragraphs.\n"+
			"Then add title \"Timestamps:\" and list bullet points with [min:sec]:\n%s", transcript,
	)))
	if err != nil {
		return nil, fmt.Errorf("generate summary: %w", err)
	}

	return &VideoSummary{
		Title:      title,
		Transcript: transcript,
		Quotes:     strings.TrimSpace(quotes),
		Summary:    strings.TrimSpace(summary),
	}, nil
}

// SummarizeAttachments downloads every video attached to a page into dir
// and summarizes each. A failure on one attachment is reported through
// onError and does not stop the rest.
func (v *VideoSummarizer) SummarizeAttachments(ctx context.Context, pageID, dir string, onError func(att wikilens.Attachment, err error)) ([]*VideoSummary, error) {
	atts, err := v.source.Attachments(ctx, pageID)
	if err != nil {
		return nil, err
	}

	var summaries []*VideoSummary
	for _, att := range atts {
		if !IsVideo(att) {
			continue
		}

		summary, err := v.summarizeAttachment(ctx, att, dir)
		if err != nil {
			if onError != nil {
				onError(att, err)
			}
			continue
		}
		summaries = append(summaries, summary)
	}
	return summaries, nil
}

func (v *VideoSummarizer) summarizeAttachment(ctx context.Context, att wikilens.Attachment, dir string) (*VideoSummary, error) {
	data, err := v.source.Download(ctx, att)
	if err != nil {
		return nil, err
	}

	mediaPath := filepath.Join(dir, filepath.Base(att.Title))
	if err := os.WriteFile(mediaPath, data, 0644); err != nil {
		return nil, fmt.Errorf("write media file: %w", err)
	}

	return v.Summarize(ctx, att.Title, mediaPath)
}

// Ask answers a question about a transcript. Repeating the exact same
// question returns the cached answer without another generator call.
func (v *VideoSummarizer) Ask(ctx context.Context, transcript, question string) (string, error) {
	question = strings.TrimSpace(question)
	if question == "" {
		return "", fmt.Errorf("question must not be empty")
	}
	if question == v.lastQuestion {
		return v.lastAnswer, nil
	}

	answer, err := v.gen.Generate(ctx, wikilens.SanitizePrompt(fmt.Sprintf(
		"Answer this in detail based on the video transcription:\n%s\n\nQuestion: %s", transcript, question,
	)))
	if err != nil {
		return "", fmt.Errorf("generate answer: %w", err)
	}

	v.lastQuestion = question
	v.lastAnswer = strings.TrimSpace(answer)
	return v.lastAnswer, nil
}
