package mob

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"superduck/internal/ai"

	"gopkg.in/yaml.v3"
)

// Definition holds the configuration for a mob type from YAML
type Definition struct {
	Name        string  `yaml:"name"`
	Type        string  `yaml:"type"`
	Letter      string  `yaml:"letter"`
	AI          string  `yaml:"ai"`
	Health      int     `yaml:"health"`
	Speed       float64 `yaml:"speed"`
	Score       int     `yaml:"score"`
	AttackRange float64 `yaml:"attack_range"`
	BoxW        float64 `yaml:"box_w"`
	BoxH        float64 `yaml:"box_h"`
	LandSprite  string  `yaml:"land_sprite"`
	WaterSprite string  `yaml:"water_sprite"`
}

// YAMLConfig holds the complete mob configuration from YAML
type YAMLConfig struct {
	Mobs map[string]Definition `yaml:"mobs"`
}

// Config is the mob configuration most recently loaded by LoadConfig.
var Config *YAMLConfig

// validate checks letters are unique and that type and ai names parse.
func (c *YAMLConfig) validate() error {
	var problems []string
	letterToMobs := make(map[string][]string)

	for _, key := range c.Keys() {
		def := c.Mobs[key]
		if def.Letter != "" {
			letterToMobs[def.Letter] = append(letterToMobs[def.Letter], key)
		}
		if _, err := ParseType(def.Type); err != nil {
			problems = append(problems, fmt.Sprintf("mob %q: %v", key, err))
		}
		if _, err := ai.ParseKind(def.AI); err != nil {
			problems = append(problems, fmt.Sprintf("mob %q: %v", key, err))
		}
		if def.Health <= 0 {
			problems = append(problems, fmt.Sprintf("mob %q: health must be positive", key))
		}
	}

	letters := make([]string, 0, len(letterToMobs))
	for letter := range letterToMobs {
		letters = append(letters, letter)
	}
	sort.Strings(letters)
	for _, letter := range letters {
		if keys := letterToMobs[letter]; len(keys) > 1 {
			problems = append(problems, fmt.Sprintf("letter '%s' is used by multiple mobs: %v", letter, keys))
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("mob configuration errors:\n%s", strings.Join(problems, "\n"))
	}
	return nil
}

// LoadConfig loads mob definitions from a YAML file
func LoadConfig(filename string) (*YAMLConfig, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to read mob config file: %w", err)
	}

	var config YAMLConfig
	if err := yaml.Unmarshal(data, &config); err != nil {
		return nil, fmt.Errorf("failed to parse mob config YAML: %w", err)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	Config = &config
	return &config, nil
}

// MustLoadConfig loads mob configuration and panics on error
func MustLoadConfig(filename string) *YAMLConfig {
	config, err := LoadConfig(filename)
	if err != nil {
		panic("Failed to load mob config: " + err.Error())
	}
	return config
}

// Keys returns all mob keys in sorted order.
func (c *YAMLConfig) Keys() []string {
	keys := make([]string, 0, len(c.Mobs))
	for key := range c.Mobs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	return keys
}

// GetByKey returns a mob definition by key
func (c *YAMLConfig) GetByKey(key string) (*Definition, error) {
	def, exists := c.Mobs[key]
	if !exists {
		return nil, fmt.Errorf("mob with key '%s' not found", key)
	}
	return &def, nil
}

// GetByLetter returns a mob definition and its key by map letter
func (c *YAMLConfig) GetByLetter(letter string) (*Definition, string, error) {
	for key, def := range c.Mobs {
		if def.Letter == letter {
			return &def, key, nil
		}
	}
	return nil, "", fmt.Errorf("mob with letter '%s' not found", letter)
}

// Spawn builds a live mob from the definition under key.
func (c *YAMLConfig) Spawn(key string, x, y float64, tuning ai.Tuning, rng ai.Rand) (*Mob, error) {
	def, err := c.GetByKey(key)
	if err != nil {
		return nil, err
	}
	typ, err := ParseType(def.Type)
	if err != nil {
		return nil, err
	}
	kind, err := ai.ParseKind(def.AI)
	if err != nil {
		return nil, err
	}

	m := New(x, y, def.Health, def.Speed, def.Score, typ, ai.NewController(kind, tuning, def.AttackRange, rng))
	m.Key = key
	m.Name = def.Name
	if def.BoxW > 0 {
		m.Width = def.BoxW
	}
	if def.BoxH > 0 {
		m.Height = def.BoxH
	}
	m.LandSprite = def.LandSprite
	m.WaterSprite = def.WaterSprite
	return m, nil
}
