package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"delegate-rewriter/internal/mapping"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the mapping configuration",
	Long: `Validates the builtin table plus the --mappings file, if given.

Reports duplicate legacy names, bad attribute-name syntax, and per-kind
shape violations with stable diagnostic codes. Exits non-zero when the
configuration has errors.`,
	Args: cobra.NoArgs,
	RunE: runCheck,
}

func runCheck(cmd *cobra.Command, args []string) error {
	logger := newLogger()
	defer func() { _ = logger.Sync() }()

	f, err := loadMappingFile()
	if err != nil {
		return err
	}

	// buildRewriter would also validate; run Validate directly here so
	// warnings are reported even when the table is usable.
	diags := mapping.Validate(f)

	for _, d := range diags.Warnings {
		logger.Warn(d.Message, zap.String("code", d.Code), zap.String("mapping", d.Subject))
	}

	for _, d := range diags.Errors {
		logger.Error(d.Message, zap.String("code", d.Code), zap.String("mapping", d.Subject))
	}

	if diags.HasErrors() {
		return fmt.Errorf("mapping configuration has %d error(s)", len(diags.Errors))
	}

	fmt.Printf("mapping configuration OK: %d mapping(s)\n", len(f.Mappings))

	return nil
}
