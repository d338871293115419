// Package main implements the slide_agent CLI for layout resolution and content binding of redesigned slides.
package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/jonathan/slide-redesigner/internal/config"
	"github.com/jonathan/slide-redesigner/internal/logging"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:               "slide_agent",
	Short:             "Slide layout resolution, content binding and typography",
	Long:              "slide_agent turns extracted slide content and ranked layout predictions into fully parameterized slide descriptions ready for rendering.",
	SilenceUsage:      true,
	PersistentPreRunE: loadSettings,
}

var (
	configPath string
	verbose    bool
	logLevel   string
	logFormat  string

	appConfig *config.Config
	appLogger logging.Logger
)

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to config file (JSON or YAML)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Print detailed debug information")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", "", "Log format: json or console")
}

// loadSettings reads the config file and environment, then applies flags on top.
func loadSettings(cmd *cobra.Command, _ []string) error {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return err
	}
	if logLevel != "" {
		cfg.LogLevel = logLevel
	}
	if logFormat != "" {
		cfg.LogFormat = logFormat
	}
	if cmd.Flags().Changed("verbose") {
		cfg.Verbose = verbose
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	appConfig = cfg
	appLogger = logging.NewStructured(cfg.LogLevel, cfg.LogFormat)
	return nil
}

func main() {
	// Load .env file if it exists
	_ = godotenv.Load()

	err := rootCmd.Execute()
	if appLogger != nil {
		_ = appLogger.Sync()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
