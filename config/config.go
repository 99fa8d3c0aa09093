package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/pelletier/go-toml/v2"

	"github.com/lixenwraith/ja-nei/audio"
	"github.com/lixenwraith/ja-nei/celebration"
	"github.com/lixenwraith/ja-nei/core"
	"github.com/lixenwraith/ja-nei/evasion"
	"github.com/lixenwraith/ja-nei/itinerary"
)

//go:embed sample_config.toml
var sampleConfig string

// DateLayout is the itinerary date format in config files
const DateLayout = "2006-01-02"

// Page holds the visible labels
type Page struct {
	Question       string `toml:"question"`
	AcceptLabel    string `toml:"accept_label"`
	RejectLabel    string `toml:"reject_label"`
	SuccessTitle   string `toml:"success_title"`
	SuccessMessage string `toml:"success_message"`
	CounterPrefix  string `toml:"counter_prefix"`
}

// Evasion tunes the dodging reject control
type Evasion struct {
	ScaleIncrement float64 `toml:"scale_increment"`
	MaxScale       float64 `toml:"max_scale"`
	Padding        float64 `toml:"padding"`
	DodgeCueMs     int     `toml:"dodge_cue_ms"`
	ResetDelayMs   int     `toml:"reset_delay_ms"`
	Seed           uint64  `toml:"seed"` // 0 picks a random seed
}

// Celebration tunes the accept animation
type Celebration struct {
	HeartCount        int      `toml:"heart_count"`
	HeartStaggerMs    int      `toml:"heart_stagger_ms"`
	HeartLifetimeMs   int      `toml:"heart_lifetime_ms"`
	HeartDrift        float64  `toml:"heart_drift"`
	SparkleCount      int      `toml:"sparkle_count"`
	SparkleStaggerMs  int      `toml:"sparkle_stagger_ms"`
	SparkleLifetimeMs int      `toml:"sparkle_lifetime_ms"`
	SparkleGlyphs     []string `toml:"sparkle_glyphs"`
}

// Song is one [[music.songs]] entry
type Song struct {
	Key   string `toml:"key"`
	Title string `toml:"title"`
	Path  string `toml:"path"`
}

// Music configures the player widget
type Music struct {
	Enabled  bool    `toml:"enabled"`
	Volume   float64 `toml:"volume"`
	Corner   string  `toml:"corner"`
	Expanded bool    `toml:"expanded"`
	Default  string  `toml:"default"`
	Songs    []Song  `toml:"songs"`
}

// Itinerary configures the plan and its exports
type Itinerary struct {
	Title  string `toml:"title"`
	Date   string `toml:"date"`
	Source string `toml:"source"` // .html or .yaml file; empty uses the built-in plan
	OutDir string `toml:"out_dir"`
}

// Config is the full set of page settings
type Config struct {
	Page        Page        `toml:"page"`
	Evasion     Evasion     `toml:"evasion"`
	Celebration Celebration `toml:"celebration"`
	Music       Music       `toml:"music"`
	Itinerary   Itinerary   `toml:"itinerary"`
}

// Load overlays the TOML file at path on the defaults and validates the result
// An empty path returns the defaults
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return &cfg, cfg.Validate()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("config %s not found: %w", path, err)
		}
		return nil, fmt.Errorf("read config: %w", err)
	}

	if err := cfg.overlay(data, filepath.Dir(path)); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Parse overlays TOML data on the defaults, resolving relative paths against baseDir
func Parse(data []byte, baseDir string) (*Config, error) {
	cfg := Default()
	if err := cfg.overlay(data, baseDir); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) overlay(data []byte, baseDir string) error {
	// Lists are replaced wholesale, never merged with the defaults
	songs, glyphs := c.Music.Songs, c.Celebration.SparkleGlyphs
	c.Music.Songs, c.Celebration.SparkleGlyphs = nil, nil

	dec := toml.NewDecoder(strings.NewReader(string(data)))
	dec.DisallowUnknownFields()
	if err := dec.Decode(c); err != nil {
		var strict *toml.StrictMissingError
		if errors.As(err, &strict) {
			return fmt.Errorf("parse config: %s", strict.String())
		}
		return fmt.Errorf("parse config: %w", err)
	}

	if c.Music.Songs == nil {
		c.Music.Songs = songs
	} else {
		for i := range c.Music.Songs {
			c.Music.Songs[i].Path = resolve(baseDir, c.Music.Songs[i].Path)
		}
	}
	if c.Celebration.SparkleGlyphs == nil {
		c.Celebration.SparkleGlyphs = glyphs
	}
	if c.Itinerary.Source != "" {
		c.Itinerary.Source = resolve(baseDir, c.Itinerary.Source)
	}
	return nil
}

func resolve(baseDir, p string) string {
	if p == "" || filepath.IsAbs(p) || baseDir == "" {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Sample returns the commented sample configuration
func Sample() string {
	return sampleConfig
}

// CreateSample writes the sample configuration to path, refusing to overwrite
func CreateSample(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create config directory: %w", err)
		}
	}
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		return fmt.Errorf("write sample config: %w", err)
	}
	if _, err := f.WriteString(sampleConfig); err != nil {
		f.Close()
		return fmt.Errorf("write sample config: %w", err)
	}
	return f.Close()
}

// EvasionParams converts the evasion section for the controller
func (c *Config) EvasionParams() evasion.Params {
	return evasion.Params{
		ScaleIncrement: c.Evasion.ScaleIncrement,
		MaxScale:       c.Evasion.MaxScale,
		Padding:        c.Evasion.Padding,
		CounterPrefix:  c.Page.CounterPrefix,
	}
}

// DodgeCue is the reject control's transient cue duration
func (c *Config) DodgeCue() time.Duration {
	return time.Duration(c.Evasion.DodgeCueMs) * time.Millisecond
}

// ResetDelay is the pause between acceptance and the state reset
func (c *Config) ResetDelay() time.Duration {
	return time.Duration(c.Evasion.ResetDelayMs) * time.Millisecond
}

// CelebrationParams converts the celebration section for the scheduler
func (c *Config) CelebrationParams() celebration.Params {
	glyphs := make([]rune, 0, len(c.Celebration.SparkleGlyphs))
	for _, g := range c.Celebration.SparkleGlyphs {
		glyphs = append(glyphs, []rune(g)[0])
	}
	return celebration.Params{
		HeartCount:      c.Celebration.HeartCount,
		HeartStagger:    ms(c.Celebration.HeartStaggerMs),
		HeartLifetime:   ms(c.Celebration.HeartLifetimeMs),
		HeartDrift:      c.Celebration.HeartDrift,
		SparkleCount:    c.Celebration.SparkleCount,
		SparkleStagger:  ms(c.Celebration.SparkleStaggerMs),
		SparkleLifetime: ms(c.Celebration.SparkleLifetimeMs),
		SparkleGlyphs:   glyphs,
	}
}

// Songs converts the music section for the player
func (c *Config) Songs() []audio.Song {
	songs := make([]audio.Song, len(c.Music.Songs))
	for i, s := range c.Music.Songs {
		songs[i] = audio.Song{Key: s.Key, Title: s.Title, Path: s.Path}
	}
	return songs
}

// PlayerCorner returns the configured dock corner
func (c *Config) PlayerCorner() core.Corner {
	corner, _ := core.ParseCorner(c.Music.Corner)
	return corner
}

// Plan assembles the itinerary from the configured source
func (c *Config) Plan() (itinerary.Plan, error) {
	date, err := time.Parse(DateLayout, c.Itinerary.Date)
	if err != nil {
		return itinerary.Plan{}, fmt.Errorf("itinerary.date: %w", err)
	}

	items := itinerary.Default()
	if c.Itinerary.Source != "" {
		items, err = itinerary.LoadFile(c.Itinerary.Source)
		if err != nil {
			return itinerary.Plan{}, fmt.Errorf("itinerary.source: %w", err)
		}
	}
	return itinerary.Plan{Title: c.Itinerary.Title, Date: date, Items: items}, nil
}

func ms(n int) time.Duration {
	return time.Duration(n) * time.Millisecond
}
