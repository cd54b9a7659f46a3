package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/iishyfishyy/infragpt/internal/config"
	"github.com/iishyfishyy/infragpt/internal/history"
	"github.com/iishyfishyy/infragpt/internal/llm"
)

var (
	// version is set by goreleaser at build time
	version = "dev"
	commit  = "none"
	date    = "unknown"

	// CLI flags
	modelFlag string
	verbose   bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "infragpt [request]",
		Short:   "Convert natural language to Google Cloud commands",
		Long:    "infragpt translates natural language infrastructure requests into gcloud CLI commands using an LLM",
		Version: version,
		Args:    cobra.ArbitraryArgs,
		RunE:    run,

		SilenceUsage: true,
	}

	rootCmd.Flags().StringVarP(&modelFlag, "model", "m", "", "LLM model to use (gpt4o or claude)")
	rootCmd.Flags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cmd *cobra.Command, args []string) error {
	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] infragpt %s (%s, %s)\n", version, commit, date)
	}

	cfg, err := config.Resolve(modelFlag, verbose)
	if err != nil {
		return err
	}

	if verbose {
		fmt.Fprintf(os.Stderr, "[DEBUG] Config: model=%s provider=%s api_model=%s\n",
			cfg.Model, cfg.Provider, cfg.APIModel)
	}

	client, err := llm.New(cfg, nil)
	if err != nil {
		return err
	}

	session := NewSession(cfg, client)
	defer session.Close()

	// History is best-effort; a broken database never blocks the turn.
	if path, err := history.DefaultPath(); err == nil {
		if store, err := history.Open(path); err == nil {
			session.hist = store
		} else if verbose {
			fmt.Fprintf(os.Stderr, "[DEBUG] History: unavailable: %v\n", err)
		}
	}

	// Tokens after -- are always literal prompt text; cobra delivers them
	// unparsed in args.
	if len(args) == 0 {
		return session.RunInteractive()
	}

	return session.RunOnce(strings.Join(args, " "))
}
