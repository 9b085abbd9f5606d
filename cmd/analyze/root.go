package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/spf13/cobra"

	"github.com/user/site-analyzer/internal/adapter/httpfetch"
	"github.com/user/site-analyzer/internal/delivery/http/response"
	"github.com/user/site-analyzer/internal/usecase"
	"github.com/user/site-analyzer/pkg/config"
	"github.com/user/site-analyzer/pkg/logger"
	"github.com/user/site-analyzer/pkg/utils"
)

const defaultFetchTimeout = 10 * time.Second

type options struct {
	jsonOutput bool
	timeout    time.Duration
	userAgent  string
	logLevel   string
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	cmd := &cobra.Command{
		Use:   "analyze <url>",
		Short: "Extract marketing signals from a web page and report findings",
		Long: `Fetches a single page, extracts its title, description, images,
Open Graph / Twitter-card tags and social profile links, then prints the
pros, cons, opportunities and red flags derived from them.

Examples:
  # Print the report as tables
  analyze https://example.com

  # Emit the extraction record and findings as JSON
  analyze --json https://example.com
`,
		Args:         cobra.ExactArgs(1),
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.Context(), cmd.OutOrStdout(), opts, args[0])
		},
	}

	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Print JSON instead of tables")
	cmd.Flags().DurationVarP(&opts.timeout, "timeout", "t", defaultFetchTimeout, "Page fetch timeout")
	cmd.Flags().StringVar(&opts.userAgent, "user-agent", config.DefaultUserAgent, "User-Agent header sent with the fetch")
	cmd.Flags().StringVar(&opts.logLevel, "log-level", "warn", "Log level (debug, info, warn, error)")

	return cmd
}

// runAnalyze runs the pipeline once. A page that cannot be fetched is not a
// command failure: the report carries the red flag instead.
func runAnalyze(ctx context.Context, out io.Writer, opts *options, rawURL string) error {
	if !utils.IsHTTPURL(rawURL) {
		return fmt.Errorf("invalid URL %q: must be an absolute http or https URL", rawURL)
	}

	log, err := logger.New(opts.logLevel, "console")
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	fetcher, err := httpfetch.New(httpfetch.Options{
		Timeout:   opts.timeout,
		UserAgent: opts.userAgent,
	}, log.Named("fetcher"))
	if err != nil {
		return fmt.Errorf("failed to create fetcher: %w", err)
	}

	pipeline := usecase.NewPipeline(
		fetcher,
		usecase.NewCategorizer(log.Named("categorizer")),
		usecase.NewAnalyzer(),
		usecase.WithLogger(log.Named("pipeline")),
	)
	rec, report := pipeline.Run(ctx, rawURL)

	if opts.jsonOutput {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return enc.Encode(response.ReportResponse{Extraction: rec, Analysis: report})
	}

	renderReport(out, rec, report)
	return nil
}
