// Package main provides the CLI entrypoint for delegate-rewriter.
//
// delegate-rewriter is a migration tool that:
//   - Parses admin-page markup for inline event handlers (onclick="viewDelivery(123)")
//   - Rewrites them to event-delegation data-* attributes
//   - Lets humans pin extra handler conversions via a reviewed YAML table
//   - Reports every element it refuses to touch, with typo suggestions
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"delegate-rewriter/internal/mapping"
	"delegate-rewriter/internal/rewrite"
)

var (
	mappingsPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:          "delegate-rewriter",
	Short:        "Convert inline-handler markup to delegated data-* attributes",
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&mappingsPath, "mappings", "",
		"YAML mapping file appended to the builtin table")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"enable debug logging")

	rootCmd.AddCommand(rewriteCmd, checkCmd, tableCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// newLogger builds the CLI logger. It writes to stderr so rewritten
// markup on stdout stays clean.
func newLogger() *zap.Logger {
	cfg := zap.NewDevelopmentConfig()
	cfg.OutputPaths = []string{"stderr"}

	if !verbose {
		cfg.Level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}

	logger, err := cfg.Build()
	if err != nil {
		return zap.NewNop()
	}

	return logger
}

// loadMappingFile returns the builtin seed table with the user's
// mapping file appended. Duplicate legacy names between the two are a
// configuration error caught by validation, not a silent override.
func loadMappingFile() (*mapping.File, error) {
	f := mapping.Builtin()

	if mappingsPath == "" {
		return f, nil
	}

	user, err := mapping.LoadFile(mappingsPath)
	if err != nil {
		return nil, err
	}

	f.Mappings = append(f.Mappings, user.Mappings...)

	return f, nil
}

// buildRewriter loads, validates, and freezes the conversion table.
func buildRewriter() (*rewrite.Rewriter, error) {
	f, err := loadMappingFile()
	if err != nil {
		return nil, err
	}

	table, err := mapping.BuildTable(f)
	if err != nil {
		return nil, fmt.Errorf("invalid mapping configuration: %w", err)
	}

	return rewrite.New(table), nil
}
