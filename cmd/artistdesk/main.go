package main

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"artistdesk/internal/api"
	"artistdesk/internal/app"
	"artistdesk/internal/cache"
	"artistdesk/internal/credential"
	"artistdesk/internal/model"
	"artistdesk/internal/refresh"
)

var (
	configPath string
	baseURL    string
	cachePath  string
)

func main() {
	root := &cobra.Command{
		Use:   "artistdesk",
		Short: "Terminal dashboard for the artist portal",
		Long: "artistdesk is a terminal dashboard for managing artist profiles,\n" +
			"activity timelines, follower metrics, photo galleries, and social\n" +
			"links through the artist portal API.",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard()
		},
	}
	root.PersistentFlags().StringVar(&configPath, "config", "",
		"path to the config file (default ~/.config/artistdesk/config.yaml)")
	root.Flags().StringVar(&baseURL, "base-url", "",
		"portal base URL, overrides the config file")
	root.Flags().StringVar(&cachePath, "cache", "",
		"snapshot cache file, overrides the config file")

	login := &cobra.Command{
		Use:   "login",
		Short: "Store the portal API token in the system keyring",
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin()
		},
	}

	logout := &cobra.Command{
		Use:   "logout",
		Short: "Remove the stored portal API token",
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := credential.Delete(credential.TokenKey); err != nil {
				return err
			}
			fmt.Println("Token removed.")
			return nil
		},
	}

	root.AddCommand(login, logout)

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func runDashboard() error {
	path := configPath
	if path == "" {
		path = model.DefaultConfigPath()
	}
	cfg, err := model.LoadConfig(path)
	if err != nil {
		return err
	}
	if baseURL != "" {
		cfg.Portal.BaseURL = baseURL
	}
	if cachePath != "" {
		cfg.Cache.Path = cachePath
	}

	logger, err := newFileLogger()
	if err != nil {
		return err
	}
	defer logger.Sync()

	token := loadToken()
	if token == "" {
		logger.Warn("no portal token configured, requests will be unauthenticated")
	}

	client := api.NewClient(
		cfg.Portal.BaseURL,
		token,
		time.Duration(cfg.Portal.TimeoutSec)*time.Second,
		logger,
	)

	var snapshots cache.Cache
	if !cfg.Cache.Disabled {
		dbPath := cfg.Cache.Path
		if dbPath == "" {
			dbPath = model.DefaultCachePath()
		}
		if err := os.MkdirAll(filepath.Dir(dbPath), 0o755); err != nil {
			return fmt.Errorf("creating cache directory: %w", err)
		}
		sc, err := cache.NewSQLiteCache(dbPath)
		if err != nil {
			// A broken cache should not keep the dashboard from starting.
			logger.Warn("opening snapshot cache failed", zap.Error(err))
		} else {
			pruneCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := sc.Prune(pruneCtx, 30*24*time.Hour); err != nil {
				logger.Warn("pruning snapshot cache failed", zap.Error(err))
			}
			cancel()
			snapshots = sc
			defer sc.Close()
		}
	}

	interval := time.Duration(cfg.Display.RefreshIntervalSec) * time.Second
	refresher := refresh.New(client, snapshots, interval, logger)

	m := app.New(client, snapshots, refresher, cfg, path, logger)
	p := tea.NewProgram(m, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("running dashboard: %w", err)
	}
	return nil
}

// loadToken checks the environment first so CI and scripts can bypass
// the keyring, then falls back to the stored credential.
func loadToken() string {
	if token := os.Getenv("ARTISTDESK_TOKEN"); token != "" {
		return token
	}
	token, err := credential.Get(credential.TokenKey)
	if err != nil {
		return ""
	}
	return token
}

func runLogin() error {
	fmt.Print("Portal API token: ")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil {
		return fmt.Errorf("reading token: %w", err)
	}
	token := strings.TrimSpace(line)
	if token == "" {
		return fmt.Errorf("token must not be empty")
	}
	if err := credential.Set(credential.TokenKey, token); err != nil {
		return err
	}
	fmt.Println("Token stored.")
	return nil
}

// newFileLogger writes structured logs to a file next to the config so
// log output never corrupts the alternate screen.
func newFileLogger() (*zap.Logger, error) {
	logPath := filepath.Join(filepath.Dir(model.DefaultConfigPath()), "artistdesk.log")
	if err := os.MkdirAll(filepath.Dir(logPath), 0o755); err != nil {
		return nil, fmt.Errorf("creating log directory: %w", err)
	}

	f, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}

	encCfg := zap.NewProductionEncoderConfig()
	encCfg.EncodeTime = zapcore.ISO8601TimeEncoder
	core := zapcore.NewCore(
		zapcore.NewJSONEncoder(encCfg),
		zapcore.AddSync(f),
		zap.InfoLevel,
	)
	return zap.New(core), nil
}
