package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"delegate-rewriter/internal/diagnostic"
	"delegate-rewriter/internal/markup"
)

var (
	outputPath string
	strict     bool
)

var rewriteCmd = &cobra.Command{
	Use:   "rewrite [file]",
	Short: "Rewrite inline handlers in an HTML file (stdin if omitted)",
	Long: `Rewrites inline event-handler attributes to delegated data-* attributes.

Elements whose handler cannot be converted are left untouched and
reported on stderr. An arity mismatch between markup and the mapping
table always fails the run; use --strict to also fail on skipped
elements.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runRewrite,
}

func init() {
	rewriteCmd.Flags().StringVarP(&outputPath, "output", "o", "",
		"write rewritten markup to this file instead of stdout")
	rewriteCmd.Flags().BoolVar(&strict, "strict", false,
		"fail when any element is left unconverted")
}

func runRewrite(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	data, err := readInput(args)
	if err != nil {
		return err
	}

	rw, err := buildRewriter()
	if err != nil {
		return err
	}

	out, diags, err := markup.Rewrite(data, rw)
	if err != nil {
		return err
	}

	logDiagnostics(logger, diags)

	if diags.HasErrors() {
		return fmt.Errorf("markup disagrees with the mapping table: %w", diags.Error())
	}

	if strict && len(diags.Warnings) > 0 {
		return fmt.Errorf("%d element(s) left unconverted", len(diags.Warnings))
	}

	return writeOutput(out)
}

func readInput(args []string) ([]byte, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return nil, fmt.Errorf("reading input: %w", err)
		}

		return data, nil
	}

	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return nil, fmt.Errorf("reading stdin: %w", err)
	}

	return data, nil
}

func writeOutput(out []byte) error {
	if outputPath == "" {
		_, err := os.Stdout.Write(out)
		return err
	}

	if err := os.WriteFile(outputPath, out, 0o644); err != nil {
		return fmt.Errorf("writing output file %s: %w", outputPath, err)
	}

	return nil
}

func logDiagnostics(logger *zap.Logger, diags *diagnostic.Diagnostics) {
	for _, d := range diags.Warnings {
		fields := []zap.Field{
			zap.String("code", d.Code),
			zap.String("subject", d.Subject),
			zap.String("handler", d.Detail),
		}
		if len(d.Suggestions) > 0 {
			fields = append(fields, zap.Strings("did_you_mean", d.Suggestions))
		}

		logger.Warn(d.Message, fields...)
	}

	for _, d := range diags.Errors {
		logger.Error(d.Message,
			zap.String("code", d.Code),
			zap.String("subject", d.Subject),
			zap.String("handler", d.Detail))
	}
}
