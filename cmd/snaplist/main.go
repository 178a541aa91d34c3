package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sandeepkv93/snaplist/internal/storage"
	"github.com/sandeepkv93/snaplist/internal/store"
	"github.com/sandeepkv93/snaplist/internal/update"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var Version = "dev"

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "snaplist failed: %v\n", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "snaplist",
		Short:         "snaplist - a terminal task list with photo attachments",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Args:          cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := resolveConfig(cmd)
			if err != nil {
				return err
			}
			return run(cfg)
		},
	}

	cmd.Flags().StringP("config", "c", "", "YAML config file")
	cmd.Flags().String("backend", "", "task storage backend (memory, sqlite)")
	cmd.Flags().String("key-scheme", "", "task key scheme (counter, ulid, uuid)")
	cmd.Flags().Bool("dark", false, "start with the dark theme")
	cmd.Flags().String("log-level", "", "log level (debug, info, warn, error)")

	return cmd
}

// resolveConfig layers defaults, the config file, SNAPLIST_* variables and
// explicitly set flags, in that order.
func resolveConfig(cmd *cobra.Command) (update.RuntimeConfig, error) {
	cfg := update.DefaultRuntimeConfig()
	flags := cmd.Flags()

	if path, _ := flags.GetString("config"); path != "" {
		loaded, err := update.LoadRuntimeConfigFile(path, cfg)
		if err != nil {
			return cfg, err
		}
		cfg = loaded
	}
	cfg = update.RuntimeConfigFromEnv(cfg)

	if flags.Changed("backend") {
		cfg.Backend, _ = flags.GetString("backend")
	}
	if flags.Changed("key-scheme") {
		cfg.KeyScheme, _ = flags.GetString("key-scheme")
	}
	if flags.Changed("dark") {
		cfg.DarkMode, _ = flags.GetBool("dark")
	}
	if flags.Changed("log-level") {
		cfg.LogLevel, _ = flags.GetString("log-level")
	}
	return cfg, cfg.Validate()
}

func run(cfg update.RuntimeConfig) error {
	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	repo, closeRepo, err := openRepository(cfg.Backend)
	if err != nil {
		return err
	}
	defer closeRepo()

	keys, err := store.KeyGeneratorFor(cfg.KeyScheme)
	if err != nil {
		return err
	}
	st := store.New(repo, store.WithKeyGenerator(keys), store.WithLogger(logger.WithField("component", "store")))

	m := update.NewModel(st, cfg, logger.WithField("component", "ui"))
	defer m.Close()

	logger.WithFields(log.Fields{
		"backend":    cfg.Backend,
		"key_scheme": cfg.KeyScheme,
	}).Info("snaplist starting")

	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		return err
	}
	logger.Info("snaplist stopped")
	return nil
}

// newLogger writes to a file so log lines never land on the terminal the UI
// is drawing on.
func newLogger(cfg update.RuntimeConfig) (*log.Logger, io.Closer, error) {
	level, err := log.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, nil, fmt.Errorf("log level: %w", err)
	}
	f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}
	logger := log.New()
	logger.SetOutput(f)
	logger.SetLevel(level)
	logger.SetFormatter(&log.TextFormatter{DisableColors: true, FullTimestamp: true})
	return logger, f, nil
}

func openRepository(backend string) (storage.Repository, func(), error) {
	switch backend {
	case update.BackendSQLite:
		repo, err := storage.OpenMemorySQLite()
		if err != nil {
			return nil, nil, fmt.Errorf("open sqlite: %w", err)
		}
		return repo, func() { _ = repo.Close() }, nil
	default:
		return storage.NewMemoryRepository(), func() {}, nil
	}
}
