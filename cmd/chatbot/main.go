package main

import (
	"fmt"
	"io"
	"os"

	"github.com/hinglish-techbot-go/internal/config"
	"github.com/hinglish-techbot-go/internal/i18n"
	"github.com/hinglish-techbot-go/internal/middleware"
	"github.com/hinglish-techbot-go/internal/services/ai"
	"github.com/hinglish-techbot-go/internal/services/cache"
	"github.com/hinglish-techbot-go/internal/services/knowledge"
	"github.com/hinglish-techbot-go/internal/services/responder"
	"github.com/hinglish-techbot-go/pkg/logger"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

const defaultConfigPath = "configs/config.yaml"

var (
	configPath string
	envFile    string
)

var rootCmd = &cobra.Command{
	Use:           "chatbot",
	Short:         "Hinglish tech assistant chatbot",
	Long:          `A chat service that answers programming, web, AI/ML and career questions in Hinglish.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", defaultConfigPath, "Path to configuration file")
	rootCmd.PersistentFlags().StringVar(&envFile, "env", ".env", "Path to .env file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// app holds everything both the server and the one-off CLI need.
type app struct {
	cfg       *config.Config
	log       *logrus.Logger
	metrics   *middleware.Metrics
	localizer *i18n.Localizer
	cache     cache.Service
	responder *responder.Responder
}

// loadApp reads .env and configuration, then wires the responder.
func loadApp(cmd *cobra.Command) (*app, error) {
	// It's okay if .env doesn't exist
	_ = godotenv.Load(envFile)

	path := configPath
	if !cmd.Flags().Changed("config") {
		if _, err := os.Stat(path); err != nil {
			path = ""
		}
	}

	cfg, err := config.LoadConfig(path)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	log, err := logger.NewLogger(&cfg.Logging)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize logger: %w", err)
	}

	kb := knowledge.Default()
	if cfg.Knowledge.File != "" {
		if kb, err = knowledge.LoadFile(cfg.Knowledge.File); err != nil {
			return nil, fmt.Errorf("failed to load knowledge base: %w", err)
		}
	}
	log.WithField("topics", kb.Topics()).Info("Knowledge base loaded")

	localizer, err := i18n.NewLocalizer(&cfg.I18n)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize i18n: %w", err)
	}

	answers, err := cache.NewCache(cfg, log)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize cache: %w", err)
	}

	metrics := middleware.NewMetrics()
	adapter := ai.NewAdapter(ai.NewGenerator(&cfg.Model, log), &cfg.Model, log)

	return &app{
		cfg:       cfg,
		log:       log,
		metrics:   metrics,
		localizer: localizer,
		cache:     answers,
		responder: responder.NewResponder(cfg, adapter, kb, answers, metrics, log),
	}, nil
}

func (a *app) close() {
	if closer, ok := a.cache.(io.Closer); ok {
		if err := closer.Close(); err != nil {
			a.log.WithError(err).Warn("Failed to close cache")
		}
	}
}
