package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"go.uber.org/zap"

	"github.com/wikilens/wikilens"
	"github.com/wikilens/wikilens/confluence"
	"github.com/wikilens/wikilens/fs"
	"github.com/wikilens/wikilens/gemini"
	"github.com/wikilens/wikilens/lipgloss"
	"github.com/wikilens/wikilens/openai"
)

var (
	cfgFile string
	verbose bool
	logger  = zap.NewNop()
)

var rootCmd = &cobra.Command{
	Use:     "wikilens",
	Short:   "Wiki content analysis and change impact reporting",
	Version: Version,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		if err := initConfig(); err != nil {
			return err
		}
		return initLogger()
	},
	SilenceUsage: true,
}

// Execute runs the root command and exits non-zero on failure.
func Execute(ctx context.Context) {
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "config file (default is $HOME/.wikilens.yaml)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
	rootCmd.PersistentFlags().String("provider", "", "narrative provider: gemini or openai")
	rootCmd.PersistentFlags().String("theme", "", "terminal theme: dark or light")
	viper.BindPFlag("provider", rootCmd.PersistentFlags().Lookup("provider"))
	viper.BindPFlag("theme", rootCmd.PersistentFlags().Lookup("theme"))
	rootCmd.SetVersionTemplate(`{{printf "%s\n" .Version}}`)
}

func initConfig() error {
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			viper.AddConfigPath(home)
		}
		viper.SetConfigName(".wikilens")
		viper.SetConfigType("yaml")
	}

	viper.SetEnvPrefix("WIKILENS")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetDefault("provider", "gemini")
	viper.SetDefault("theme", "dark")
	viper.SetDefault("gemini.model", gemini.DefaultModel)
	viper.SetDefault("openai.model", openai.DefaultModel)
	viper.SetDefault("cache.enabled", true)
	viper.SetDefault("cache.dir", fs.DefaultCacheDir())
	viper.SetDefault("history.path", filepath.Join(fs.DefaultCacheDir(), "history.jsonl"))
	viper.SetDefault("whisper.model", "models/ggml-small.bin")

	// Credentials come from the conventional unprefixed variables.
	viper.BindEnv("confluence.base_url", "CONFLUENCE_BASE_URL")
	viper.BindEnv("confluence.email", "CONFLUENCE_USER_EMAIL")
	viper.BindEnv("confluence.api_key", "CONFLUENCE_API_KEY")
	viper.BindEnv("gemini.api_key", "GEMINI_API_KEY")
	viper.BindEnv("openai.api_key", "OPENAI_API_KEY")

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

func initLogger() error {
	cfg := zap.NewProductionConfig()
	cfg.Level = zap.NewAtomicLevelAt(zap.WarnLevel)
	if verbose {
		cfg = zap.NewDevelopmentConfig()
	}

	log, err := cfg.Build()
	if err != nil {
		return fmt.Errorf("init logger: %w", err)
	}
	logger = log
	return nil
}

// newSource builds the Confluence client from configuration.
func newSource() (*confluence.Client, error) {
	baseURL := viper.GetString("confluence.base_url")
	if baseURL == "" {
		return nil, errors.New("confluence base URL not configured (set CONFLUENCE_BASE_URL)")
	}
	return confluence.NewClient(
		baseURL,
		viper.GetString("confluence.email"),
		viper.GetString("confluence.api_key"),
		confluence.WithLogger(logger),
	), nil
}

// newGenerator builds the configured narrative generator, wrapped in a
// file cache unless caching is disabled.
func newGenerator(ctx context.Context) (wikilens.Generator, error) {
	var gen wikilens.Generator

	switch provider := viper.GetString("provider"); provider {
	case "gemini":
		key := viper.GetString("gemini.api_key")
		if key == "" {
			return nil, errors.New("gemini API key not configured (set GEMINI_API_KEY)")
		}
		client, err := gemini.NewClient(ctx, key)
		if err != nil {
			return nil, fmt.Errorf("create gemini client: %w", err)
		}
		gen = gemini.NewGenerator(client, viper.GetString("gemini.model"))

	case "openai":
		key := viper.GetString("openai.api_key")
		if key == "" {
			return nil, errors.New("openai API key not configured (set OPENAI_API_KEY)")
		}
		gen = openai.NewGeneratorFromKey(key, viper.GetString("openai.model"))

	default:
		return nil, fmt.Errorf("unknown provider %q (want gemini or openai)", provider)
	}

	if viper.GetBool("cache.enabled") {
		gen = fs.NewGenerator(gen, filepath.Join(viper.GetString("cache.dir"), "responses"))
	}
	return gen, nil
}

func newRenderer() *lipgloss.Renderer {
	theme := lipgloss.DefaultTheme()
	if viper.GetString("theme") == "light" {
		theme = lipgloss.LightTheme()
	}
	return lipgloss.NewRenderer(theme)
}
