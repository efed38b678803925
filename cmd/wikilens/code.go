package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wikilens/wikilens/assist"
	"github.com/wikilens/wikilens/chroma"
	"github.com/wikilens/wikilens/confluence"
)

var codeFlags struct {
	page         string
	file         string
	exportFormat string
	outBase      string
}

var codeCmd = &cobra.Command{
	Use:   "code",
	Short: "Summarize, modify, or convert code from a wiki page or file",
}

var codeSummarizeCmd = &cobra.Command{
	Use:   "summarize",
	Short: "Summarize page or file content",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		assistant, content, err := codeSetup(ctx)
		if err != nil {
			return err
		}

		summary, err := assistant.Summarize(ctx, content)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), summary)
		return nil
	},
}

var codeModifyCmd = &cobra.Command{
	Use:   "modify <instruction>",
	Short: "Modify code according to an instruction",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		assistant, content, err := codeSetup(ctx)
		if err != nil {
			return err
		}

		modified, err := assistant.Modify(ctx, content, args[0])
		if err != nil {
			return err
		}
		return printCode(cmd, modified, assistant.DetectLanguage(modified))
	},
}

var codeConvertCmd = &cobra.Command{
	Use:   "convert <language>",
	Short: "Convert code to another programming language",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		assistant, content, err := codeSetup(ctx)
		if err != nil {
			return err
		}

		converted, err := assistant.Convert(ctx, content, args[0])
		if err != nil {
			return err
		}
		return printCode(cmd, converted, args[0])
	},
}

func init() {
	rootCmd.AddCommand(codeCmd)
	codeCmd.AddCommand(codeSummarizeCmd, codeModifyCmd, codeConvertCmd)

	pf := codeCmd.PersistentFlags()
	pf.StringVar(&codeFlags.page, "page", "", "wiki page ID to read code from")
	pf.StringVar(&codeFlags.file, "file", "", "local file to read code from")
	pf.StringVar(&codeFlags.exportFormat, "export", "", "export format: txt, md, html, csv, json, pdf")
	pf.StringVar(&codeFlags.outBase, "out", "ai_response", "output file name without extension")
}

// codeSetup builds the assistant and loads the input content.
func codeSetup(ctx context.Context) (*assist.CodeAssistant, string, error) {
	gen, err := newGenerator(ctx)
	if err != nil {
		return nil, "", err
	}
	assistant := assist.NewCodeAssistant(gen, chroma.NewDetector())

	content, err := codeContent(ctx)
	if err != nil {
		return nil, "", err
	}
	return assistant, content, nil
}

func codeContent(ctx context.Context) (string, error) {
	switch {
	case codeFlags.file != "":
		data, err := os.ReadFile(codeFlags.file)
		if err != nil {
			return "", fmt.Errorf("read %s: %w", codeFlags.file, err)
		}
		return string(data), nil

	case codeFlags.page != "":
		source, err := newSource()
		if err != nil {
			return "", err
		}
		body, err := source.Body(ctx, codeFlags.page)
		if err != nil {
			return "", err
		}
		return confluence.ExtractCode(body), nil

	default:
		return "", errors.New("no input: use --page or --file")
	}
}

func printCode(cmd *cobra.Command, code, language string) error {
	fmt.Fprintln(cmd.OutOrStdout(), chroma.NewHighlighter().Highlight(code, language))

	if codeFlags.exportFormat != "" {
		return exportDocument(code, codeFlags.exportFormat, codeFlags.outBase)
	}
	return nil
}
