package cli

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/civicminder/event-scraper/internal/api"
	"github.com/civicminder/event-scraper/internal/config"
	"github.com/civicminder/event-scraper/internal/event"
	"github.com/civicminder/event-scraper/internal/filter"
	"github.com/civicminder/event-scraper/internal/logger"
	"github.com/civicminder/event-scraper/internal/pipeline"
	"github.com/civicminder/event-scraper/internal/sources"
	"github.com/civicminder/event-scraper/internal/writers"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

// epochStart is earlier than any legitimate event date. It doubles as
// the fallback date for undated events, so with the default cutoff
// nothing is filtered.
var epochStart = time.Unix(0, 0).UTC()

var (
	flagAfter    string
	flagSources  []string
	flagNoDotEnv bool
	flagVerbose  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "event-scraper OUTPUT_PATH",
		Short: "Scrape event listings into a CSV or JSON Lines file",
		Long: fmt.Sprintf(`Scrape event listings from one or more sources and append them to the
specified output file. Supported file types are %s.`,
			strings.Join(writers.Extensions(), ", ")),
		Args: cobra.ExactArgs(1),
		RunE: runScrape,
	}

	cmd.Flags().StringVar(&flagAfter, "after", "",
		"Only include events on or after this ISO-8601 date (e.g. 2001-01-31). "+
			"Without a value, today's date is used. If the flag is absent, no date filtering happens.")
	cmd.Flags().Lookup("after").NoOptDefVal = time.Now().Format("2006-01-02")
	cmd.Flags().StringSliceVar(&flagSources, "sources", nil,
		"URLs to scrape instead of the built-in source list")
	cmd.Flags().BoolVar(&flagNoDotEnv, "no-dot-env", false,
		"Do not load configuration from a .env file; assume environment variables are already set")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable debug logging")

	return cmd
}

// runScrape is the main command logic
func runScrape(cmd *cobra.Command, args []string) error {
	outputPath := args[0]

	cfg, err := config.Load(flagNoDotEnv)
	if err != nil {
		return err
	}

	level := logger.ParseLevel(cfg.LogLevel)
	if flagVerbose {
		level = logger.LevelDebug
	}
	log := logger.New(level, os.Stderr)

	cutoff, err := parseCutoff(flagAfter)
	if err != nil {
		return err
	}

	sourceURLs := sources.Default
	if len(flagSources) > 0 {
		sourceURLs = flagSources
	}
	sourceURLs, err = sources.ParseURLList(sourceURLs)
	if err != nil {
		return fmt.Errorf("validating sources: %w", err)
	}

	extractor, err := newExtractor(cfg, log)
	if err != nil {
		return err
	}

	p := pipeline.New(extractor, log)
	events := p.FetchEvents(sourceURLs)

	filtered, err := filter.ExcludeOldItems(events, cutoff, filter.WithKey(startDateOrEpoch))
	if err != nil {
		return fmt.Errorf("configuring date filter: %w", err)
	}

	if err := writers.Write(filtered, outputPath); err != nil {
		return fmt.Errorf("writing output: %w", err)
	}

	log.Info("Scrape finished", logger.Fields{
		"output":  outputPath,
		"metrics": p.Metrics().GetSnapshot(),
	})
	return nil
}

// parseCutoff turns the --after flag into a cutoff date. An absent
// flag means "include everything", expressed as the epoch cutoff.
func parseCutoff(after string) (time.Time, error) {
	if after == "" {
		return epochStart, nil
	}
	cutoff, err := time.Parse("2006-01-02", after)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --after date %q (expected YYYY-MM-DD): %w", after, err)
	}
	return cutoff, nil
}

// startDateOrEpoch maps an event to its start date for filtering.
// Events with no usable start date sort as ancient: kept under the
// default epoch cutoff, excluded once a real cutoff is given.
func startDateOrEpoch(evt *event.Event) time.Time {
	if d, ok := evt.Start.Date(); ok {
		return d
	}
	return epochStart
}

// newExtractor picks the extraction engine from the configured
// credentials, preferring OpenAI.
func newExtractor(cfg *config.Config, log *logger.Logger) (pipeline.API, error) {
	switch {
	case cfg.OpenAIAPIKey != "":
		return api.NewOpenAI(cfg.OpenAIAPIKey, cfg.OpenAIModel, log)
	case cfg.InstantAPIKey != "":
		return api.NewInstantAPI(cfg.InstantAPIKey, log), nil
	default:
		return nil, fmt.Errorf("no extraction API configured: set OPENAI_API_KEY or INSTANTAPI_KEY")
	}
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}
