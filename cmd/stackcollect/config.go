package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
	"stackcollect/pkg/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage configuration files",
	Long: `Manage stackcollect configuration files.

Configuration can be loaded from:
  - Command line flags (highest priority)
  - Environment variables
  - Configuration file
  - Default values (lowest priority)`,
}

// configInitCmd represents the config init command
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example configuration file",
	Long: `Create an example configuration file with all available options.

The file is created in the current directory as '.stackcollect.yaml'
unless a different path is specified with the --config flag.`,
	RunE: runConfigInit,
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration",
	Long: `Show the configuration that a run would use, merged from all
sources. The API key is masked.`,
	RunE: runConfigShow,
}

// configValidateCmd represents the config validate command
var configValidateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Validate the configuration",
	Long: `Load the configuration from all sources and check it for syntax
errors and invalid values.`,
	RunE: runConfigValidate,
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configValidateCmd)
}

const exampleConfig = `# stackcollect configuration file
#
# Values here override the built-in defaults and are themselves
# overridden by environment variables and command-line flags.

stack_exchange:
  # API key (optional; without one the API grants a reduced anonymous quota)
  api_key: ""

  # Stack Exchange site to query
  site: "stackoverflow"

  # Questions per API page (max 100)
  page_size: 100

  # Maximum API pages per run
  max_pages: 5

  # HTTP request timeout
  timeout: 30s

rate_limit:
  # Answer requests per second
  requests_per_second: 30

collection:
  # Question tag to filter by
  tag: "nlp"

  # Minimum number of answers a question must have
  min_answers: 1

  # Minimum question score
  min_score: 0

  # Maximum number of questions to collect
  max_count: 10

  # Generate mock data instead of calling the live API
  use_mock_data: false

  # Random seed for mock data (0 seeds from the current time)
  mock_seed: 0

output:
  # Directory for collected data and checkpoints
  base_directory: "data/raw"

  # Checkpoint file name prefix
  checkpoint_prefix: "questions"

logging:
  # Log level: debug, info, warn, error
  level: "info"

  # Log file path (empty logs to stdout only)
  file: ""
`

func runConfigInit(cmd *cobra.Command, args []string) error {
	path := configFile
	if path == "" {
		path = ".stackcollect.yaml"
	}

	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("configuration file already exists: %s", path)
	}

	if err := os.WriteFile(path, []byte(exampleConfig), 0644); err != nil {
		return fmt.Errorf("failed to create configuration file: %w", err)
	}

	fmt.Printf("Configuration file created: %s\n", path)
	fmt.Println("\nNext steps:")
	fmt.Println("1. Edit the file to set your tag, site and optional API key")
	fmt.Println("2. Run 'stackcollect config validate' to check it")
	fmt.Println("3. Start collecting with 'stackcollect collect'")
	return nil
}

func runConfigShow(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if err := cfg.LoadFromFile(configFile); err != nil {
		return err
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return err
	}

	display := *cfg
	display.StackExchange.APIKey = maskKey(display.StackExchange.APIKey)

	data, err := yaml.Marshal(&display)
	if err != nil {
		return fmt.Errorf("failed to format configuration: %w", err)
	}

	fmt.Print(string(data))

	fmt.Println("\nConfiguration sources (in order of priority):")
	fmt.Println("1. Command line flags")
	fmt.Println("2. Environment variables")
	if configFile != "" {
		fmt.Printf("3. Configuration file: %s\n", configFile)
	} else {
		fmt.Println("3. Configuration file: (searched in standard locations)")
	}
	fmt.Println("4. Default values")
	return nil
}

func runConfigValidate(cmd *cobra.Command, args []string) error {
	cfg := config.DefaultConfig()
	if err := cfg.LoadFromFile(configFile); err != nil {
		return err
	}
	if err := cfg.LoadFromEnv(); err != nil {
		return err
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	if cfg.StackExchange.APIKey == "" && !cfg.Collection.UseMockData {
		fmt.Println("Warning: no API key configured; runs will use the anonymous quota")
		fmt.Println()
	}

	fmt.Println("Configuration is valid")
	fmt.Println("\nConfiguration summary:")
	fmt.Printf("  Site: %s\n", cfg.StackExchange.Site)
	fmt.Printf("  Tag: %s\n", cfg.Collection.Tag)
	fmt.Printf("  Max count: %d\n", cfg.Collection.MaxCount)
	fmt.Printf("  Page size: %d (up to %d pages)\n", cfg.StackExchange.PageSize, cfg.StackExchange.MaxPages)
	fmt.Printf("  Rate limit: %d requests/second\n", cfg.RateLimit.RequestsPerSecond)
	fmt.Printf("  Output directory: %s\n", cfg.Output.BaseDirectory)
	fmt.Printf("  Log level: %s\n", cfg.Logging.Level)
	return nil
}

// maskKey hides all but the edges of an API key for display.
func maskKey(key string) string {
	if key == "" {
		return ""
	}
	if len(key) <= 8 {
		return "***"
	}
	return key[:4] + "..." + key[len(key)-4:]
}
