package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikilens/wikilens/assist"
	"github.com/wikilens/wikilens/confluence"
)

var testplanFlags struct {
	page         string
	codeFile     string
	dataFile     string
	frontend     bool
	question     string
	exportFormat string
	outBase      string
}

var testplanCmd = &cobra.Command{
	Use:   "testplan",
	Short: "Generate test strategies and data sensitivity analysis",
	Long: `Generates a test strategy for the given code, optionally a
cross-platform UI test plan, and a sensitivity classification for sample
data. A follow-up question can be answered against the generated
sections.`,
	RunE: runTestplan,
}

func init() {
	rootCmd.AddCommand(testplanCmd)

	f := testplanCmd.Flags()
	f.StringVar(&testplanFlags.page, "page", "", "wiki page ID to read code from")
	f.StringVar(&testplanFlags.codeFile, "code", "", "local file holding the code under test")
	f.StringVar(&testplanFlags.dataFile, "data", "", "local file holding sample data to classify")
	f.BoolVar(&testplanFlags.frontend, "frontend", false, "also generate a cross-platform UI test plan")
	f.StringVar(&testplanFlags.question, "ask", "", "follow-up question about the generated sections")
	f.StringVar(&testplanFlags.exportFormat, "export", "", "export format: txt, md, html, csv, json, pdf")
	f.StringVar(&testplanFlags.outBase, "out", "test_plan", "output file name without extension")
}

func runTestplan(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	gen, err := newGenerator(ctx)
	if err != nil {
		return err
	}
	advisor := assist.NewTestAdvisor(gen)

	code, err := testplanCode(cmd)
	if err != nil {
		return err
	}

	var doc string
	section := func(title, body string) {
		doc += fmt.Sprintf("## %s\n\n%s\n\n", title, body)
		fmt.Fprintf(cmd.OutOrStdout(), "=== %s ===\n\n%s\n\n", title, body)
	}

	var strategy, crossPlatform, sensitivity string

	if code != "" {
		if strategy, err = advisor.Strategy(ctx, code); err != nil {
			return err
		}
		section("Test Strategy", strategy)

		if testplanFlags.frontend {
			if crossPlatform, err = advisor.CrossPlatform(ctx, code); err != nil {
				return err
			}
			section("Cross-Platform Testing", crossPlatform)
		}
	}

	if testplanFlags.dataFile != "" {
		data, err := os.ReadFile(testplanFlags.dataFile)
		if err != nil {
			return fmt.Errorf("read %s: %w", testplanFlags.dataFile, err)
		}
		if sensitivity, err = advisor.Sensitivity(ctx, string(data)); err != nil {
			return err
		}
		section("Sensitivity Analysis", sensitivity)
	}

	if doc == "" {
		return errors.New("nothing to analyze: use --page, --code, or --data")
	}

	if testplanFlags.question != "" {
		answer, err := advisor.Chat(ctx, strategy, crossPlatform, sensitivity, testplanFlags.question)
		if err != nil {
			return err
		}
		section("Q&A", answer)
	}

	if testplanFlags.exportFormat != "" {
		return exportDocument(doc, testplanFlags.exportFormat, testplanFlags.outBase)
	}
	return nil
}

func testplanCode(cmd *cobra.Command) (string, error) {
	switch {
	case testplanFlags.codeFile != "":
		data, err := os.ReadFile(testplanFlags.codeFile)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", testplanFlags.codeFile, err)
		}
		return string(data), nil

	case testplanFlags.page != "":
		source, err := newSource()
		if err != nil {
			return "", err
		}
		body, err := source.Body(cmd.Context(), testplanFlags.page)
		if err != nil {
			return "", err
		}
		return confluence.ExtractCode(body), nil

	default:
		return "", nil
	}
}
