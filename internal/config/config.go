package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Config holds all game configuration values
type Config struct {
	Display  DisplayConfig `yaml:"display"`
	World    WorldConfig   `yaml:"world"`
	Player   PlayerConfig  `yaml:"player"`
	MobAI    MobAIConfig   `yaml:"mob_ai"`
	Powerups PowerupConfig `yaml:"powerups"`
	Logging  LoggingConfig `yaml:"logging"`
	Debug    DebugConfig   `yaml:"debug"`
	Assets   AssetsConfig  `yaml:"assets"`
}

type DisplayConfig struct {
	ScreenWidth  int    `yaml:"screen_width"`
	ScreenHeight int    `yaml:"screen_height"`
	WindowTitle  string `yaml:"window_title"`
	Resizable    bool   `yaml:"resizable"`
	TPS          int    `yaml:"tps"`
}

type WorldConfig struct {
	TileWidth  int `yaml:"tile_width"`
	TileHeight int `yaml:"tile_height"`
	// KillTarget is the kill objective size for maps without a boss.
	KillTarget int `yaml:"kill_target"`
}

type PlayerConfig struct {
	MaxHealth      int     `yaml:"max_health"`
	Speed          float64 `yaml:"speed"`
	BoxW           float64 `yaml:"box_w"`
	BoxH           float64 `yaml:"box_h"`
	AttackRange    float64 `yaml:"attack_range"`
	AttackCooldown float64 `yaml:"attack_cooldown"`
	AttackDamage   int     `yaml:"attack_damage"`
}

// MobAIConfig tunes pursuit and melee behaviour. Times are in seconds.
type MobAIConfig struct {
	PathfindingRate       float64 `yaml:"pathfinding_rate"`
	PathfindingRateOffset float64 `yaml:"pathfinding_rate_offset"`
	IterationLimit        *int    `yaml:"iteration_limit"`
	AttackDelay           float64 `yaml:"attack_delay"`
	ActivationRadius      float64 `yaml:"activation_radius"`
}

// PowerupConfig sets the drop bands. Each chance is the width of its band on [0, 1),
// laid out in the order score multiplier, invulnerable, super speed, rate of fire.
type PowerupConfig struct {
	Duration              float64 `yaml:"duration"`
	ScoreMultiplierChance float64 `yaml:"score_multiplier_chance"`
	InvulnerableChance    float64 `yaml:"invulnerable_chance"`
	SuperSpeedChance      float64 `yaml:"super_speed_chance"`
	RateOfFireChance      float64 `yaml:"rate_of_fire_chance"`
	PickupSize            float64 `yaml:"pickup_size"`
}

type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

type DebugConfig struct {
	ShowPaths      bool    `yaml:"show_paths"`
	PerfLog        bool    `yaml:"perf_log"`
	PerfLogSeconds float64 `yaml:"perf_log_seconds"`
	WatchAssets    bool    `yaml:"watch_assets"`
}

type AssetsConfig struct {
	Tiles   string `yaml:"tiles"`
	Mobs    string `yaml:"mobs"`
	Map     string `yaml:"map"`
	Sprites string `yaml:"sprites"`
}

// GlobalConfig is the configuration most recently loaded by LoadConfig.
var GlobalConfig *Config

// LoadConfig loads the configuration from config.yaml
func LoadConfig(filename string) (*Config, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file %s: %w", filename, err)
	}

	config, err := ParseConfig(data)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", filename, err)
	}

	GlobalConfig = config
	return config, nil
}

// ParseConfig decodes YAML config bytes.
func ParseConfig(data []byte) (*Config, error) {
	var config Config
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, err
	}
	return &config, nil
}

// MustLoadConfig loads the configuration and panics on error
func MustLoadConfig(filename string) *Config {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load config: " + err.Error())
	}
	return config
}

// Helper functions for easy access to commonly used values
func (c *Config) GetScreenWidth() int {
	if c.Display.ScreenWidth <= 0 {
		return 1280
	}
	return c.Display.ScreenWidth
}

func (c *Config) GetScreenHeight() int {
	if c.Display.ScreenHeight <= 0 {
		return 720
	}
	return c.Display.ScreenHeight
}

func (c *Config) GetTPS() int {
	if c.Display.TPS <= 0 {
		return 60
	}
	return c.Display.TPS
}

func (c *Config) GetTileWidth() int {
	if c.World.TileWidth <= 0 {
		return 32
	}
	return c.World.TileWidth
}

func (c *Config) GetTileHeight() int {
	if c.World.TileHeight <= 0 {
		return 32
	}
	return c.World.TileHeight
}

func (c *Config) GetKillTarget() int {
	if c.World.KillTarget <= 0 {
		return 10
	}
	return c.World.KillTarget
}

func (c *Config) GetPowerupDuration() float64 {
	if c.Powerups.Duration <= 0 {
		return 10
	}
	return c.Powerups.Duration
}

func (c *Config) GetPickupSize() float64 {
	if c.Powerups.PickupSize <= 0 {
		return 16
	}
	return c.Powerups.PickupSize
}

// GetPowerupBands returns the four drop chances, defaulting each unset band to 0.05.
func (c *Config) GetPowerupBands() [4]float64 {
	bands := [4]float64{
		c.Powerups.ScoreMultiplierChance,
		c.Powerups.InvulnerableChance,
		c.Powerups.SuperSpeedChance,
		c.Powerups.RateOfFireChance,
	}
	for i, b := range bands {
		if b <= 0 {
			bands[i] = 0.05
		}
	}
	return bands
}

func (c *Config) GetPerfLogSeconds() float64 {
	if c.Debug.PerfLogSeconds <= 0 {
		return 3
	}
	return c.Debug.PerfLogSeconds
}

func (c *Config) GetTilesPath() string {
	if c.Assets.Tiles == "" {
		return "assets/tiles.yaml"
	}
	return c.Assets.Tiles
}

func (c *Config) GetMobsPath() string {
	if c.Assets.Mobs == "" {
		return "assets/mobs.yaml"
	}
	return c.Assets.Mobs
}

func (c *Config) GetMapPath() string {
	if c.Assets.Map == "" {
		return "assets/maps/round1.map"
	}
	return c.Assets.Map
}

func (c *Config) GetSpritesPath() string {
	if c.Assets.Sprites == "" {
		return "assets/sprites"
	}
	return c.Assets.Sprites
}
