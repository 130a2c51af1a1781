package cli

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/neilberkman/zenstudy/internal/core/backup"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/config"
	"github.com/neilberkman/zenstudy/internal/core/db"
	"github.com/neilberkman/zenstudy/internal/core/store"
)

// app bundles everything a command needs.
type app struct {
	cfg     *config.Config
	db      *db.DB
	clock   clock.Clock
	store   *store.Store
	backup  *backup.Service
	logger  *slog.Logger
	logFile io.Closer
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := loadConfig()
	if err != nil {
		return nil, err
	}

	logger, logFile, err := newLogger(cfg)
	if err != nil {
		return nil, err
	}

	c, err := clock.NewSystemClock(cfg.Timezone)
	if err != nil {
		closeQuietly(logFile)
		return nil, fmt.Errorf("invalid timezone: %w", err)
	}

	database, err := db.New(cfg.DBPath)
	if err != nil {
		closeQuietly(logFile)
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	st := store.New(database, c, store.WithLogger(logger), store.WithPalette(cfg.Palette))
	if err := st.Load(ctx); err != nil {
		_ = database.Close()
		closeQuietly(logFile)
		return nil, fmt.Errorf("failed to load study data: %w", err)
	}

	return &app{
		cfg:     cfg,
		db:      database,
		clock:   c,
		store:   st,
		backup:  backup.NewService(st, database, logger),
		logger:  logger,
		logFile: logFile,
	}, nil
}

func (a *app) Close() {
	_ = a.db.Close()
	closeQuietly(a.logFile)
}

func loadConfig() (*config.Config, error) {
	var (
		cfg *config.Config
		err error
	)
	if configDir != "" {
		cfg, err = config.LoadFrom(config.ExpandPath(configDir))
	} else {
		cfg, err = config.Load()
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if dbPath != "" {
		cfg.DBPath = config.ExpandPath(dbPath)
	}
	if tzOverride != "" {
		cfg.Timezone = tzOverride
	}
	if cfg.DBPath == "" {
		return nil, fmt.Errorf("no database path: pass --db or set ZENSTUDY_DB_PATH")
	}
	return cfg, nil
}

// newLogger writes text logs to the configured file so the TUI keeps the
// terminal to itself.
func newLogger(cfg *config.Config) (*slog.Logger, io.Closer, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.ToUpper(cfg.LogLevel))); err != nil {
		level = slog.LevelInfo
	}

	if cfg.LogPath == "" {
		return slog.New(slog.NewTextHandler(io.Discard, nil)), nil, nil
	}

	if err := os.MkdirAll(filepath.Dir(cfg.LogPath), 0755); err != nil {
		return nil, nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	f, err := os.OpenFile(cfg.LogPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to open log file: %w", err)
	}
	return slog.New(slog.NewTextHandler(f, &slog.HandlerOptions{Level: level})), f, nil
}

func closeQuietly(c io.Closer) {
	if c != nil {
		_ = c.Close()
	}
}
