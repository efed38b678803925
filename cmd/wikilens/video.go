package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/assist"
	"github.com/wikilens/wikilens/whisper"
)

var videoFlags struct {
	page         string
	file         string
	ask          string
	exportFormat string
	outBase      string
}

var videoCmd = &cobra.Command{
	Use:   "video",
	Short: "Transcribe and summarize video attachments",
	Long: `Transcribes videos with whisper.cpp, then generates notable quotes
and a timestamped summary. Videos come from a wiki page's attachments or
from a local file.`,
	RunE: runVideo,
}

func init() {
	rootCmd.AddCommand(videoCmd)

	f := videoCmd.Flags()
	f.StringVar(&videoFlags.page, "page", "", "wiki page ID whose video attachments to process")
	f.StringVar(&videoFlags.file, "file", "", "local video file to process")
	f.StringVar(&videoFlags.ask, "ask", "", "question to answer from the transcript")
	f.StringVar(&videoFlags.exportFormat, "export", "", "export format: txt, md, html, csv, json, pdf")
	f.StringVar(&videoFlags.outBase, "out", "video_summary", "output file name without extension")
}

func runVideo(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	transcriber := whisper.NewTranscriber(viper.GetString("whisper.model"))

	var summaries []*assist.VideoSummary

	switch {
	case videoFlags.file != "":
		summarizer := assist.NewVideoSummarizer(nil, transcriber, gen)
		summary, err := summarizer.Summarize(ctx, videoFlags.file, videoFlags.file)
		if err != nil {
			return err
		}
		summaries = append(summaries, summary)
		if err := askAboutVideo(cmd, summarizer, summary); err != nil {
			return err
		}

	case videoFlags.page != "":
		source, err := newSource()
		if err != nil {
			return err
		}
		dir, err := os.MkdirTemp("", "wikilens-video-*")
		if err != nil {
			return err
		}
		defer os.RemoveAll(dir)

		summarizer := assist.NewVideoSummarizer(source, transcriber, gen)
		summaries, err = summarizer.SummarizeAttachments(ctx, videoFlags.page, dir, func(att wikilens.Attachment, err error) {
			logger.Warn("could not process attachment", zap.String("title", att.Title), zap.Error(err))
		})
		if err != nil {
			return err
		}
		if len(summaries) == 0 {
			return fmt.Errorf("no processable videos attached to page %s", videoFlags.page)
		}
		if videoFlags.ask != "" {
			if err := askAboutVideo(cmd, summarizer, summaries[0]); err != nil {
				return err
			}
		}

	default:
		return fmt.Errorf("no input: use --page or --file")
	}

	var doc string
	for _, s := range summaries {
		doc += fmt.Sprintf("%s\n\n%s\n\n%s\n\n", s.Title, s.Quotes, s.Summary)
		fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n\n%s\n\n%s\n\n", s.Title, s.Quotes, s.Summary)
	}

	if videoFlags.exportFormat != "" {
		return exportDocument(doc, videoFlags.exportFormat, videoFlags.outBase)
	}
	return nil
}

func askAboutVideo(cmd *cobra.Command, summarizer *assist.VideoSummarizer, summary *assist.VideoSummary) error {
	if videoFlags.ask == "" {
		return nil
	}
	answer, err := summarizer.Ask(cmd.Context(), summary.Transcript, videoFlags.ask)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Answer: %s\n\n", answer)
	return nil
}
