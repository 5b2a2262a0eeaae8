// ABOUTME: Command line entry point for one-off news aggregation runs
// ABOUTME: Provides fetch and sources commands built on the newsagg library

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"text/tabwriter"
	"time"

	logruslogger "newsagg-api/infrastructure/logger/logrus"
	"newsagg-api/newsagg"
	"newsagg-api/pkg/config"

	"github.com/spf13/cobra"
)

var version = "dev"

type globalOptions struct {
	apiKey      string
	sourcesFile string
	sources     []string
	timeout     time.Duration
	workers     int
	logLevel    string
	quiet       bool
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	opts := &globalOptions{}

	cmd := &cobra.Command{
		Use:          "newsagg",
		Short:        "Concurrent news aggregator",
		Long:         "Fetches several news sources in parallel and prints the merged articles, newest first.",
		SilenceUsage: true,
	}

	flags := cmd.PersistentFlags()
	flags.StringVar(&opts.apiKey, "api-key", os.Getenv("NEWS_API_KEY"), "NewsAPI key (defaults to $NEWS_API_KEY)")
	flags.StringVar(&opts.sourcesFile, "sources-file", os.Getenv("NEWS_SOURCES_FILE"), "YAML file listing the sources")
	flags.StringSliceVar(&opts.sources, "source", nil, "NewsAPI URL to fetch (repeatable)")
	flags.DurationVar(&opts.timeout, "timeout", 5*time.Second, "per-source timeout")
	flags.IntVar(&opts.workers, "workers", 5, "number of concurrent fetches")
	flags.StringVar(&opts.logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "suppress all logging")

	cmd.AddCommand(fetchCmd(opts))
	cmd.AddCommand(sourcesCmd(opts))
	cmd.AddCommand(versionCmd())
	return cmd
}

func fetchCmd(opts *globalOptions) *cobra.Command {
	var pretty bool

	cmd := &cobra.Command{
		Use:   "fetch",
		Short: "Run one aggregation and print the articles as JSON",
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()
			return runFetch(ctx, cmd.OutOrStdout(), opts, pretty)
		},
	}

	cmd.Flags().BoolVar(&pretty, "pretty", false, "indent the JSON output")
	return cmd
}

func sourcesCmd(opts *globalOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "sources",
		Short: "List the configured sources",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSources(cmd.OutOrStdout(), opts)
		},
	}
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "newsagg %s\n", version)
		},
	}
}

type fetchOutput struct {
	Articles []newsagg.Article `json:"articles"`
	Count    int               `json:"count"`
}

func runFetch(ctx context.Context, out io.Writer, opts *globalOptions, pretty bool) error {
	client, cleanup, err := newClient(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	articles, err := client.Aggregate(ctx)
	if err != nil {
		return fmt.Errorf("aggregate: %w", err)
	}

	encoder := json.NewEncoder(out)
	if pretty {
		encoder.SetIndent("", "  ")
	}
	return encoder.Encode(fetchOutput{Articles: articles, Count: len(articles)})
}

func runSources(out io.Writer, opts *globalOptions) error {
	client, cleanup, err := newClient(opts)
	if err != nil {
		return err
	}
	defer cleanup()

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tFORMAT\tURL")
	for _, source := range client.Sources() {
		fmt.Fprintf(w, "%s\t%s\t%s\n", source.Name, source.Format, source.URL)
	}
	return w.Flush()
}

func newClient(opts *globalOptions) (*newsagg.Client, func(), error) {
	options := []newsagg.Option{
		newsagg.WithAPIKey(opts.apiKey),
		newsagg.WithTimeout(opts.timeout),
		newsagg.WithWorkers(opts.workers),
	}

	closeLogger := func() {}
	if opts.quiet {
		options = append(options, newsagg.WithQuietMode())
	} else {
		// stdout carries the command output, so logs go to stderr
		appLogger, err := logruslogger.NewLoggerWithWriter(os.Stderr, config.LogConfig{
			Level:  opts.logLevel,
			Format: "text",
		})
		if err != nil {
			return nil, nil, fmt.Errorf("create logger: %w", err)
		}
		closeLogger = func() { _ = appLogger.Close() }
		options = append(options, newsagg.WithLogger(appLogger))
	}

	switch {
	case opts.sourcesFile != "":
		options = append(options, newsagg.WithSourcesFile(opts.sourcesFile))
	case len(opts.sources) > 0:
		targets := make([]newsagg.Target, 0, len(opts.sources))
		for _, url := range opts.sources {
			target, err := newsagg.NewTarget("", url, "")
			if err != nil {
				closeLogger()
				return nil, nil, fmt.Errorf("source %q: %w", url, err)
			}
			target.Credential = opts.apiKey
			targets = append(targets, target)
		}
		options = append(options, newsagg.WithTargets(targets...))
	}

	client, err := newsagg.NewClient(options...)
	if err != nil {
		closeLogger()
		return nil, nil, err
	}

	return client, func() {
		_ = client.Close()
		closeLogger()
	}, nil
}
