package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/bubbletea"
	"github.com/wikilens/wikilens/clipboard"
	"github.com/wikilens/wikilens/confluence"
	"github.com/wikilens/wikilens/export"
	"github.com/wikilens/wikilens/git"
	"github.com/wikilens/wikilens/gitdiff"
	"github.com/wikilens/wikilens/jsonl"
	"github.com/wikilens/wikilens/report"
)

var impactFlags struct {
	oldFile string
	newFile string

	oldPage string
	newPage string

	patchPath string

	repoPath string
	filePath string
	oldRev   string
	newRev   string

	exportFormat string
	outBase      string
	copyReport   bool
	interactive  bool
	noHistory    bool
}

var impactCmd = &cobra.Command{
	Use:   "impact",
	Short: "Build a change impact report for two versions of content",
	Long: `Builds a diff, change metrics, and AI narrative sections (impact,
recommendations, risk) for a pair of content versions. Versions can come
from local files, wiki pages, a git repository, or an existing patch.`,
	RunE: runImpact,
}

func init() {
	rootCmd.AddCommand(impactCmd)

	f := impactCmd.Flags()
	f.StringVar(&impactFlags.oldFile, "old-file", "", "path to the old version")
	f.StringVar(&impactFlags.newFile, "new-file", "", "path to the new version")
	f.StringVar(&impactFlags.oldPage, "old-page", "", "wiki page ID holding the old version")
	f.StringVar(&impactFlags.newPage, "new-page", "", "wiki page ID holding the new version")
	f.StringVar(&impactFlags.patchPath, "patch", "", "unified diff file to analyze directly")
	f.StringVar(&impactFlags.repoPath, "repo", "", "git repository path")
	f.StringVar(&impactFlags.filePath, "path", "", "file path inside the repository")
	f.StringVar(&impactFlags.oldRev, "old-rev", "", "old git revision")
	f.StringVar(&impactFlags.newRev, "new-rev", "HEAD", "new git revision")
	f.StringVar(&impactFlags.exportFormat, "export", "", "export format: txt, md, html, csv, json, pdf")
	f.StringVar(&impactFlags.outBase, "out", "impact_report", "output file name without extension")
	f.BoolVar(&impactFlags.copyReport, "copy", false, "copy the report to the clipboard")
	f.BoolVarP(&impactFlags.interactive, "interactive", "i", false, "ask follow-up questions interactively")
	f.BoolVar(&impactFlags.noHistory, "no-history", false, "skip appending the report to history")
}

func runImpact(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	assembler := report.NewAssembler(gen, report.WithLogger(logger))

	pairs, err := impactPairs(ctx)
	if err != nil {
		return err
	}

	renderer := newRenderer()
	var last *wikilens.Report

	for _, pair := range pairs {
		rep, err := assembler.Build(ctx, pair[0], pair[1])
		if err != nil {
			return err
		}
		last = rep

		fmt.Fprintln(cmd.OutOrStdout(), renderer.Report(rep))

		if err := finishReport(rep); err != nil {
			return err
		}
	}

	if impactFlags.interactive && last != nil {
		if err := bubbletea.Run(assembler, renderer.Report(last)); err != nil {
			return fmt.Errorf("interactive session: %w", err)
		}
		// Session answers land in the report's QA log; persist them too.
		if err := appendHistory(last); err != nil {
			return err
		}
	}

	return nil
}

// impactPairs resolves the input flags to one or more snapshot pairs.
func impactPairs(ctx context.Context) ([][2]wikilens.Snapshot, error) {
	switch {
	case impactFlags.patchPath != "":
		return patchPairs()

	case impactFlags.oldFile != "" && impactFlags.newFile != "":
		old, err := fileSnapshot(impactFlags.oldFile)
		if err != nil {
			return nil, err
		}
		new, err := fileSnapshot(impactFlags.newFile)
		if err != nil {
			return nil, err
		}
		return [][2]wikilens.Snapshot{{old, new}}, nil

	case impactFlags.oldPage != "" && impactFlags.newPage != "":
		source, err := newSource()
		if err != nil {
			return nil, err
		}
		old, err := pageSnapshot(ctx, source, impactFlags.oldPage)
		if err != nil {
			return nil, err
		}
		new, err := pageSnapshot(ctx, source, impactFlags.newPage)
		if err != nil {
			return nil, err
		}
		return [][2]wikilens.Snapshot{{old, new}}, nil

	case impactFlags.repoPath != "" && impactFlags.filePath != "" && impactFlags.oldRev != "":
		return repoPair(ctx)

	default:
		return nil, errors.New("no input: use --old-file/--new-file, --old-page/--new-page, --patch, or --repo with --path and --old-rev")
	}
}

func patchPairs() ([][2]wikilens.Snapshot, error) {
	f, err := os.Open(impactFlags.patchPath)
	if err != nil {
		return nil, fmt.Errorf("open patch: %w", err)
	}
	defer f.Close()

	patches, err := gitdiff.NewParser().Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parse patch: %w", err)
	}
	if len(patches) == 0 {
		return nil, errors.New("patch contains no text changes")
	}

	pairs := make([][2]wikilens.Snapshot, 0, len(patches))
	for _, p := range patches {
		old, new := p.Snapshots()
		pairs = append(pairs, [2]wikilens.Snapshot{old, new})
	}
	return pairs, nil
}

func fileSnapshot(path string) (wikilens.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return wikilens.Snapshot{}, fmt.Errorf("read %s: %w", path, err)
	}
	return wikilens.NewSnapshot(filepath.Base(path), string(data)), nil
}

func pageSnapshot(ctx context.Context, source *confluence.Client, pageID string) (wikilens.Snapshot, error) {
	body, err := source.Body(ctx, pageID)
	if err != nil {
		return wikilens.Snapshot{}, err
	}
	return wikilens.NewSnapshot("page "+pageID, confluence.ExtractCode(body)), nil
}

func repoPair(ctx context.Context) ([][2]wikilens.Snapshot, error) {
	runner := git.NewRunner()

	oldContent, err := runner.Show(ctx, impactFlags.repoPath, impactFlags.oldRev, impactFlags.filePath)
	if err != nil {
		return nil, err
	}
	newContent, err := runner.Show(ctx, impactFlags.repoPath, impactFlags.newRev, impactFlags.filePath)
	if err != nil {
		return nil, err
	}

	old := wikilens.NewSnapshot(impactFlags.filePath+"@"+impactFlags.oldRev, oldContent)
	new := wikilens.NewSnapshot(impactFlags.filePath+"@"+impactFlags.newRev, newContent)
	return [][2]wikilens.Snapshot{{old, new}}, nil
}

// finishReport handles history, export, and clipboard for one report.
func finishReport(rep *wikilens.Report) error {
	if err := appendHistory(rep); err != nil {
		return err
	}

	doc := export.MarkdownReport(rep)

	if impactFlags.exportFormat != "" {
		if err := exportDocument(doc, impactFlags.exportFormat, impactFlags.outBase); err != nil {
			return err
		}
	}

	if impactFlags.copyReport {
		cb, err := clipboard.New()
		if err != nil {
			return err
		}
		if err := cb.Copy(doc); err != nil {
			return fmt.Errorf("copy to clipboard: %w", err)
		}
	}

	return nil
}

func appendHistory(rep *wikilens.Report) error {
	if impactFlags.noHistory {
		return nil
	}
	path := viper.GetString("history.path")
	if err := jsonl.NewStore().Append(path, *rep); err != nil {
		// History is a convenience; losing it should not fail the run.
		logger.Warn("append report history", zap.String("path", path), zap.Error(err))
	}
	return nil
}

func exportDocument(doc, format, outBase string) error {
	enc, err := export.ByFormat(format)
	if err != nil {
		return err
	}
	data, err := enc.Encode(doc)
	if err != nil {
		return err
	}

	path := outBase + enc.Ext()
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	fmt.Println("Saved", path)
	return nil
}
