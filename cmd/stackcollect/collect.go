package main

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"
	"stackcollect/pkg/auth"
	"stackcollect/pkg/collector"
	"stackcollect/pkg/config"
	"stackcollect/pkg/logger"
	"stackcollect/pkg/storage"
)

var (
	// Collect command flags
	tag        string
	minAnswers int
	minScore   int
	maxCount   int
	fromDate   string
	toDate     string
	site       string
	pageSize   int
	maxPages   int
	rateLimit  int
	outputDir  string
	useMock    bool
	mockSeed   int64
)

// collectCmd represents the collect command
var collectCmd = &cobra.Command{
	Use:   "collect",
	Short: "Collect questions and answers matching a tag",
	Long: `Collect questions carrying the given tag, fetch the answers for each,
and write the merged records to a JSON file.

Configuration is assembled from defaults, an optional YAML config file,
environment variables (a .env file is honored), and command-line flags,
in that order of precedence. An API key is optional; without one the
Stack Exchange API grants a reduced anonymous quota.`,
	Example: `  # Collect 10 recent [nlp] questions with their answers
  stackcollect collect --tag nlp --max-count 10

  # Restrict to well-received questions within a date range
  stackcollect collect --tag go --min-score 5 --from 2024-01-01 --to 2024-06-30

  # Offline run with deterministic generated data
  stackcollect collect --mock --seed 42 --max-count 25`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCollect(cmd)
	},
}

func init() {
	rootCmd.AddCommand(collectCmd)

	collectCmd.Flags().StringVarP(&tag, "tag", "t", "", "question tag to filter by")
	collectCmd.Flags().IntVar(&minAnswers, "min-answers", -1, "minimum number of answers")
	collectCmd.Flags().IntVar(&minScore, "min-score", -1, "minimum question score")
	collectCmd.Flags().IntVarP(&maxCount, "max-count", "n", 0, "maximum number of questions to collect")
	collectCmd.Flags().StringVar(&fromDate, "from", "", "earliest creation date (YYYY-MM-DD, inclusive)")
	collectCmd.Flags().StringVar(&toDate, "to", "", "latest creation date (YYYY-MM-DD, inclusive)")
	collectCmd.Flags().StringVar(&site, "site", "", "Stack Exchange site (default stackoverflow)")
	collectCmd.Flags().IntVar(&pageSize, "page-size", 0, "questions per API page")
	collectCmd.Flags().IntVar(&maxPages, "max-pages", 0, "maximum API pages per run")
	collectCmd.Flags().IntVar(&rateLimit, "rate-limit", 0, "answer requests per second")
	collectCmd.Flags().StringVarP(&outputDir, "output", "o", "", "output directory for collected data")
	collectCmd.Flags().BoolVar(&useMock, "mock", false, "use generated mock data instead of the live API")
	collectCmd.Flags().Int64Var(&mockSeed, "seed", 0, "random seed for mock data generation")
}

func runCollect(cmd *cobra.Command) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	if err := logger.Initialize(&cfg.Logging); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log := logger.GetLogger()

	// Fall back to the keychain when no key arrived via config or env
	if cfg.StackExchange.APIKey == "" && !cfg.Collection.UseMockData {
		if key, err := auth.NewManager().Resolve(); err == nil {
			cfg.StackExchange.APIKey = key
		}
	}

	req, err := buildRequest(cfg)
	if err != nil {
		return err
	}

	c, err := collector.New(cfg, log)
	if err != nil {
		return fmt.Errorf("failed to initialize collector: %w", err)
	}

	log.InfoWithFields("starting collection", map[string]interface{}{
		"site":      cfg.StackExchange.Site,
		"tag":       req.Tag,
		"max_count": req.MaxCount,
		"mock":      cfg.Collection.UseMockData,
	})

	questions, err := c.Collect(context.Background(), req)
	if err != nil {
		return fmt.Errorf("collection failed: %w", err)
	}

	if len(questions) == 0 {
		log.Error("no data collected")
		return nil
	}

	outputPath := filepath.Join(
		cfg.Output.BaseDirectory,
		fmt.Sprintf("%s_questions_with_answers.json", req.Tag),
	)
	if err := storage.Save(questions, outputPath); err != nil {
		return fmt.Errorf("failed to save results: %w", err)
	}

	log.InfoWithFields("collection complete", map[string]interface{}{
		"questions": len(questions),
		"output":    outputPath,
	})

	return nil
}

// buildConfig assembles the run configuration: defaults, then config
// file, then environment, then explicit flags.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if err := cfg.LoadFromFile(configFile); err != nil {
		return nil, err
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return nil, err
	}

	if tag != "" {
		cfg.Collection.Tag = tag
	}
	if cmd.Flags().Changed("min-answers") && minAnswers >= 0 {
		cfg.Collection.MinAnswers = minAnswers
	}
	if cmd.Flags().Changed("min-score") && minScore >= 0 {
		cfg.Collection.MinScore = minScore
	}
	if maxCount > 0 {
		cfg.Collection.MaxCount = maxCount
	}
	if site != "" {
		cfg.StackExchange.Site = site
	}
	if pageSize > 0 {
		cfg.StackExchange.PageSize = pageSize
	}
	if maxPages > 0 {
		cfg.StackExchange.MaxPages = maxPages
	}
	if rateLimit > 0 {
		cfg.RateLimit.RequestsPerSecond = rateLimit
	}
	if outputDir != "" {
		cfg.Output.BaseDirectory = outputDir
	}
	if useMock {
		cfg.Collection.UseMockData = true
	}
	if cmd.Flags().Changed("seed") {
		cfg.Collection.MockSeed = mockSeed
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}
	if logFile != "" {
		cfg.Logging.File = logFile
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return cfg, nil
}

// buildRequest converts the configuration and date flags into a
// collection request. Date bounds are inclusive; the upper bound covers
// the whole named day.
func buildRequest(cfg *config.Config) (collector.Request, error) {
	req := collector.Request{
		Tag:        cfg.Collection.Tag,
		MinAnswers: cfg.Collection.MinAnswers,
		MinScore:   cfg.Collection.MinScore,
		MaxCount:   cfg.Collection.MaxCount,
	}

	if fromDate != "" {
		t, err := time.Parse("2006-01-02", fromDate)
		if err != nil {
			return req, fmt.Errorf("invalid --from date %q: %w", fromDate, err)
		}
		req.FromDate = t.Unix()
	}
	if toDate != "" {
		t, err := time.Parse("2006-01-02", toDate)
		if err != nil {
			return req, fmt.Errorf("invalid --to date %q: %w", toDate, err)
		}
		req.ToDate = t.AddDate(0, 0, 1).Add(-time.Second).Unix()
	}

	return req, nil
}
