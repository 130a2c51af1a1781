package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/neilberkman/zenstudy/internal/core/clock"
	"github.com/neilberkman/zenstudy/internal/core/models"
)

const DefaultBackupFilename = "ZenStudy_Backup_{{date}}.json"

const DefaultDaySummary = `{{date}}: {{total}} studied{{#subjects}}
- {{{name}}}{{#archived}} (archived){{/archived}}: {{duration}} ({{percent}}%){{#sessions}}
    {{time}} {{duration}}{{#memo}} - {{{memo}}}{{/memo}}{{/sessions}}{{/subjects}}{{^subjects}}
Nothing recorded.{{/subjects}}
`

const (
	DefaultActivityDays = 14
	DefaultStartYear    = 2026
)

type Config struct {
	Timezone           string
	DBPath             string
	LogPath            string
	LogLevel           string
	ExportDir          string
	BackupFilename     string // mustache template, {{date}} is the date key
	DaySummaryTemplate string // mustache template for the clipboard summary
	ActivityDays       int
	StartYear          int
	Palette            []string
}

type tomlConfig struct {
	Timezone       string   `toml:"timezone"`
	DBPath         string   `toml:"db_path"`
	LogPath        string   `toml:"log_path"`
	LogLevel       string   `toml:"log_level"`
	ExportDir      string   `toml:"export_dir"`
	BackupFilename string   `toml:"backup_filename"`
	ActivityDays   int      `toml:"activity_days"`
	StartYear      int      `toml:"start_year"`
	Palette        []string `toml:"palette"`
}

// Dir returns ~/.config/zenstudy.
func Dir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", "zenstudy"), nil
}

// Load reads config from ~/.config/zenstudy/
func Load() (*Config, error) {
	dir, err := Dir()
	if err != nil {
		return LoadFrom("")
	}
	return LoadFrom(dir)
}

// LoadFrom reads config.toml and day_summary.mustache from configDir.
// Missing files leave defaults in place; an empty dir means defaults only.
func LoadFrom(configDir string) (*Config, error) {
	cfg := Defaults(configDir)

	if configDir != "" {
		tomlPath := filepath.Join(configDir, "config.toml")
		if _, err := os.Stat(tomlPath); err == nil {
			var tc tomlConfig
			if _, err := toml.DecodeFile(tomlPath, &tc); err != nil {
				return nil, fmt.Errorf("failed to parse %s: %w", tomlPath, err)
			}
			cfg.merge(tc)
		}

		summaryPath := filepath.Join(configDir, "day_summary.mustache")
		if data, err := os.ReadFile(summaryPath); err == nil {
			cfg.DaySummaryTemplate = string(data)
		}
	}

	cfg.applyEnv()

	if _, err := clock.NewSystemClock(cfg.Timezone); err != nil {
		return nil, fmt.Errorf("invalid timezone %q: %w", cfg.Timezone, err)
	}
	return cfg, nil
}

// Defaults returns the built-in configuration rooted at configDir.
func Defaults(configDir string) *Config {
	cfg := &Config{
		Timezone:           clock.DefaultZone,
		LogLevel:           "info",
		ExportDir:          ".",
		BackupFilename:     DefaultBackupFilename,
		DaySummaryTemplate: DefaultDaySummary,
		ActivityDays:       DefaultActivityDays,
		StartYear:          DefaultStartYear,
		Palette:            append([]string(nil), models.Palette...),
	}
	if configDir != "" {
		cfg.DBPath = filepath.Join(configDir, "zenstudy.db")
		cfg.LogPath = filepath.Join(configDir, "zenstudy.log")
	}
	return cfg
}

func (c *Config) merge(tc tomlConfig) {
	if tc.Timezone != "" {
		c.Timezone = tc.Timezone
	}
	if tc.DBPath != "" {
		c.DBPath = ExpandPath(tc.DBPath)
	}
	if tc.LogPath != "" {
		c.LogPath = ExpandPath(tc.LogPath)
	}
	if tc.LogLevel != "" {
		c.LogLevel = tc.LogLevel
	}
	if tc.ExportDir != "" {
		c.ExportDir = ExpandPath(tc.ExportDir)
	}
	if tc.BackupFilename != "" {
		c.BackupFilename = tc.BackupFilename
	}
	if tc.ActivityDays > 0 {
		c.ActivityDays = tc.ActivityDays
	}
	if tc.StartYear > 0 {
		c.StartYear = tc.StartYear
	}
	if len(tc.Palette) > 0 {
		c.Palette = tc.Palette
	}
}

func (c *Config) applyEnv() {
	if v := strings.TrimSpace(os.Getenv("ZENSTUDY_TZ")); v != "" {
		c.Timezone = v
	}
	if v := strings.TrimSpace(os.Getenv("ZENSTUDY_DB_PATH")); v != "" {
		c.DBPath = ExpandPath(v)
	}
	if v := strings.TrimSpace(os.Getenv("ZENSTUDY_LOG_LEVEL")); v != "" {
		c.LogLevel = v
	}
}

// ExpandPath replaces a leading ~ with the home directory.
func ExpandPath(p string) string {
	if p == "~" || strings.HasPrefix(p, "~/") {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, strings.TrimPrefix(p, "~"))
		}
	}
	return p
}
