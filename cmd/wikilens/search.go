package main

import (
	"fmt"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/assist"
	"github.com/wikilens/wikilens/confluence"
)

var searchFlags struct {
	space        string
	titles       []string
	limit        int
	exportFormat string
	outBase      string
}

var searchCmd = &cobra.Command{
	Use:   "search <question>",
	Short: "Answer a question using wiki pages as context",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

func init() {
	rootCmd.AddCommand(searchCmd)

	f := searchCmd.Flags()
	f.StringVar(&searchFlags.space, "space", "", "space key to search in (required)")
	f.StringSliceVar(&searchFlags.titles, "title", nil, "restrict context to pages with these titles (repeatable)")
	f.IntVar(&searchFlags.limit, "limit", 100, "maximum number of pages to consider")
	f.StringVar(&searchFlags.exportFormat, "export", "", "export format: txt, md, html, csv, json, pdf")
	f.StringVar(&searchFlags.outBase, "out", "ai_response", "output file name without extension")
	searchCmd.MarkFlagRequired("space")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	question := strings.Join(args, " ")

	source, err := newSource()
	if err != nil {
		return err
	}
	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}

	pages, err := source.Pages(ctx, searchFlags.space, searchFlags.limit)
	if err != nil {
		return err
	}
	pages = filterPages(pages, searchFlags.titles)
	if len(pages) == 0 {
		return fmt.Errorf("no pages found in space %s", searchFlags.space)
	}

	searcher := assist.NewSearcher(source, gen, assist.WithCleaner(confluence.CleanHTML))
	answer, err := searcher.Answer(ctx, question, pages)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), answer)

	if searchFlags.exportFormat != "" {
		return exportDocument(answer, searchFlags.exportFormat, searchFlags.outBase)
	}
	return nil
}

func filterPages(pages []wikilens.Page, titles []string) []wikilens.Page {
	if len(titles) == 0 {
		return pages
	}
	var out []wikilens.Page
	for _, p := range pages {
		if slices.Contains(titles, p.Title) {
			out = append(out, p)
		}
	}
	return out
}
