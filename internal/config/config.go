package config

import (
	"fmt"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"
)

// Config holds all application configuration.
type Config struct {
	Game struct {
		Seed                   int64     `yaml:"seed"`
		TickMillis             float64   `yaml:"tick_ms"`
		ReelDelayMillis        float64   `yaml:"reel_delay_ms"`
		RarityCutPoints        []float64 `yaml:"rarity_cut_points"`
		DirectionShuffleChance *float64  `yaml:"direction_shuffle_chance"`
	} `yaml:"game"`
	Save struct {
		StateFile   string `yaml:"state_file"`
		BackupDir   string `yaml:"backup_dir"`
		KeepBackups int    `yaml:"keep_backups"`
	} `yaml:"save"`
	Schedule struct {
		AutosaveCron string `yaml:"autosave_cron"`
		BackupCron   string `yaml:"backup_cron"`
	} `yaml:"schedule"`
	Database struct {
		SQLitePath string `yaml:"sqlite_path"`
	} `yaml:"database"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("FISHING_STATE_FILE"); v != "" {
		cfg.Save.StateFile = v
	}
	if v := os.Getenv("FISHING_BACKUP_DIR"); v != "" {
		cfg.Save.BackupDir = v
	}
	if v := os.Getenv("FISHING_SEED"); v != "" {
		if seed, err := strconv.ParseInt(v, 10, 64); err == nil {
			cfg.Game.Seed = seed
		}
	}
	if v := os.Getenv("SQLITE_PATH"); v != "" {
		cfg.Database.SQLitePath = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("CRON_AUTOSAVE"); v != "" {
		cfg.Schedule.AutosaveCron = v
	}
	if v := os.Getenv("CRON_BACKUP"); v != "" {
		cfg.Schedule.BackupCron = v
	}

	// Defaults
	if cfg.Game.TickMillis == 0 {
		cfg.Game.TickMillis = 16
	}
	if cfg.Game.ReelDelayMillis == 0 {
		cfg.Game.ReelDelayMillis = 1500
	}
	if len(cfg.Game.RarityCutPoints) == 0 {
		cfg.Game.RarityCutPoints = []float64{0.35, 0.65, 0.85, 0.95}
	}
	if cfg.Game.DirectionShuffleChance == nil {
		chance := 0.02
		cfg.Game.DirectionShuffleChance = &chance
	}
	if cfg.Save.StateFile == "" {
		cfg.Save.StateFile = "data/save.json"
	}
	if cfg.Save.BackupDir == "" {
		cfg.Save.BackupDir = "data/backups"
	}
	if cfg.Save.KeepBackups == 0 {
		cfg.Save.KeepBackups = 7
	}
	if cfg.Schedule.AutosaveCron == "" {
		cfg.Schedule.AutosaveCron = "@every 30s"
	}
	if cfg.Schedule.BackupCron == "" {
		cfg.Schedule.BackupCron = "0 0 4 * * *"
	}
	if cfg.Database.SQLitePath == "" {
		cfg.Database.SQLitePath = "data/fishing.db"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = "127.0.0.1:8080"
	}

	return cfg, nil
}

// Validate checks that all values are usable.
func (c *Config) Validate() error {
	if c.Game.TickMillis <= 0 || c.Game.TickMillis > 250 {
		return fmt.Errorf("game.tick_ms must be in (0, 250]")
	}
	if c.Game.ReelDelayMillis < 0 {
		return fmt.Errorf("game.reel_delay_ms must not be negative")
	}
	if len(c.Game.RarityCutPoints) != 4 {
		return fmt.Errorf("game.rarity_cut_points needs 4 values, got %d", len(c.Game.RarityCutPoints))
	}
	for i := 1; i < len(c.Game.RarityCutPoints); i++ {
		if c.Game.RarityCutPoints[i] <= c.Game.RarityCutPoints[i-1] {
			return fmt.Errorf("game.rarity_cut_points must be strictly ascending")
		}
	}
	if p := c.Game.DirectionShuffleChance; p != nil && (*p < 0 || *p > 1) {
		return fmt.Errorf("game.direction_shuffle_chance must be within [0, 1]")
	}
	if c.Save.StateFile == "" {
		return fmt.Errorf("save.state_file is required")
	}
	if c.Save.KeepBackups < 0 {
		return fmt.Errorf("save.keep_backups must not be negative")
	}
	return nil
}

// ShuffleChance returns the configured per-tick direction flip chance.
func (c *Config) ShuffleChance() float64 {
	if c.Game.DirectionShuffleChance == nil {
		return 0.02
	}
	return *c.Game.DirectionShuffleChance
}
