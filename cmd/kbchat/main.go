// Package main is the kbchat binary: an interactive chat client over an
// Azure OpenAI deployment with selectable knowledge context.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"kbchat/pkg/chat"
	"kbchat/pkg/config"
	"kbchat/pkg/knowledge"
	"kbchat/pkg/repl"
	"kbchat/pkg/term"
)

var (
	flagPIIFile     string
	flagMQFile      string
	flagSourcesFile string
	flagTimeout     time.Duration
	flagTypingDelay time.Duration
	flagNoColor     bool
	flagVerbose     bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "kbchat",
	Short: "Knowledge-grounded chat client for an Azure OpenAI deployment",
	Long: `kbchat is an interactive chat client that forwards your input to an
Azure-hosted OpenAI deployment. A selectable knowledge block (a PII
category taxonomy or an MQ topic catalog, loaded from JSON) is prepended
to every prompt to steer answers toward that domain.

Configuration comes from the environment (a .env file is honored):
  OPEN_AI_SERVICE_URL  Azure OpenAI resource base URL (required)
  OPEN_AI_SERVICE_KEY  API key (required)
  OPEN_AI_DEPLOYMENT   deployment name (default gpt-4)
  OPEN_AI_API_VERSION  api-version (default 2023-03-15-preview)`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zapCfg := zap.NewProductionConfig()
		if flagVerbose {
			zapCfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zapCfg.Build()
		if err != nil {
			return err
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
	RunE: run,
}

func init() {
	rootCmd.Flags().StringVar(&flagPIIFile, "pii-file", "examples/knowledge/pii.json", "PII taxonomy JSON file")
	rootCmd.Flags().StringVar(&flagMQFile, "mq-file", "examples/knowledge/mq.json", "MQ topic catalog JSON file")
	rootCmd.Flags().StringVar(&flagSourcesFile, "sources", "", "YAML knowledge source catalog (overrides --pii-file/--mq-file)")
	rootCmd.Flags().DurationVar(&flagTimeout, "timeout", config.DefaultTimeout, "Per-request timeout (0 disables)")
	rootCmd.Flags().DurationVar(&flagTypingDelay, "typing-delay", config.DefaultTypingDelay, "Delay between typed-out reply characters")
	rootCmd.Flags().BoolVar(&flagNoColor, "no-color", false, "Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging")
}

func run(cmd *cobra.Command, args []string) error {
	cfg := config.FromEnv()
	cfg.PIIFile = flagPIIFile
	cfg.MQFile = flagMQFile
	cfg.SourcesFile = flagSourcesFile
	cfg.Timeout = flagTimeout
	cfg.TypingDelay = flagTypingDelay
	cfg.NoColor = flagNoColor
	cfg.Verbose = flagVerbose
	cfg = config.Normalize(cfg)
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger.Debug("configured", zap.String("endpoint", cfg.Endpoint), zap.String("deployment", cfg.Deployment))

	catalog, err := resolveCatalog(cfg)
	if err != nil {
		return err
	}

	interrupt := repl.NewInterrupt()
	signals := make(chan os.Signal, 1)
	signal.Notify(signals, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-signals
		logger.Debug("interrupt received, exiting")
		interrupt.Trip()
	}()

	client := chat.NewAzureClient(chat.AzureClientConfig{
		Endpoint:   cfg.Endpoint,
		APIKey:     cfg.APIKey,
		Deployment: cfg.Deployment,
		APIVersion: cfg.APIVersion,
		Timeout:    cfg.Timeout,
	})
	session := chat.NewSession(client)

	terminal := term.NewTerminal(os.Stdout, term.DetectStyles(cfg.NoColor, os.Stdout), cfg.TypingDelay)
	printWelcome(terminal)

	loop := repl.New(repl.Options{
		Session:   session,
		Catalog:   catalog,
		Sink:      terminal,
		Interrupt: interrupt,
		In:        os.Stdin,
		Logger:    logger,
	})
	return loop.Run(cmd.Context())
}

// resolveCatalog picks the YAML catalog when one is configured and the
// built-in PII/MQ catalog otherwise.
func resolveCatalog(cfg config.Config) ([]knowledge.Source, error) {
	if cfg.SourcesFile != "" {
		return knowledge.LoadCatalog(cfg.SourcesFile)
	}
	return knowledge.DefaultCatalog(cfg.PIIFile, cfg.MQFile), nil
}

func printWelcome(terminal *term.Terminal) {
	terminal.Banner("=== kbchat - Interactive Mode ===")
	terminal.Banner("Type your message and press Enter. Commands:")
	terminal.Banner("  help       - Show this help message")
	terminal.Banner("  knowledge  - Select a knowledge source")
	terminal.Banner("  clear      - Clear conversation history")
	terminal.Banner("  exit       - Exit the program (an empty line also exits)")
	terminal.Banner("")
}

func main() {
	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		os.Exit(1)
	}
}
