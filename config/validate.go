package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/lixenwraith/ja-nei/core"
)

// ErrInvalid marks every validation failure
var ErrInvalid = errors.New("invalid config")

// Validate ensures the configuration is usable
func (c *Config) Validate() error {
	if err := c.validatePage(); err != nil {
		return err
	}
	if err := c.validateEvasion(); err != nil {
		return err
	}
	if err := c.validateCelebration(); err != nil {
		return err
	}
	if err := c.validateMusic(); err != nil {
		return err
	}
	return c.validateItinerary()
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrInvalid, fmt.Sprintf(format, args...))
}

func (c *Config) validatePage() error {
	if strings.TrimSpace(c.Page.AcceptLabel) == "" {
		return invalid("page.accept_label must be set")
	}
	if strings.TrimSpace(c.Page.RejectLabel) == "" {
		return invalid("page.reject_label must be set")
	}
	return nil
}

func (c *Config) validateEvasion() error {
	e := c.Evasion
	if e.ScaleIncrement < 0 {
		return invalid("evasion.scale_increment must not be negative")
	}
	if e.MaxScale < 1 {
		return invalid("evasion.max_scale must be at least 1, got %v", e.MaxScale)
	}
	if e.Padding < 0 {
		return invalid("evasion.padding must not be negative")
	}
	if e.DodgeCueMs < 0 || e.ResetDelayMs < 0 {
		return invalid("evasion durations must not be negative")
	}
	return nil
}

func (c *Config) validateCelebration() error {
	cel := c.Celebration
	if cel.HeartCount < 0 || cel.SparkleCount < 0 {
		return invalid("celebration counts must not be negative")
	}
	if cel.HeartStaggerMs < 0 || cel.SparkleStaggerMs < 0 {
		return invalid("celebration staggers must not be negative")
	}
	if cel.HeartLifetimeMs <= 0 || cel.SparkleLifetimeMs <= 0 {
		return invalid("celebration lifetimes must be positive")
	}
	if cel.SparkleCount > 0 && len(cel.SparkleGlyphs) == 0 {
		return invalid("celebration.sparkle_glyphs must not be empty")
	}
	for _, g := range cel.SparkleGlyphs {
		if utf8.RuneCountInString(g) != 1 {
			return invalid("celebration.sparkle_glyphs entry %q must be a single character", g)
		}
	}
	return nil
}

func (c *Config) validateMusic() error {
	m := c.Music
	if m.Volume < 0 || m.Volume > 1 {
		return invalid("music.volume must be between 0 and 1, got %v", m.Volume)
	}
	if _, err := core.ParseCorner(m.Corner); err != nil {
		return invalid("music.corner: %v", err)
	}
	if !m.Enabled {
		return nil
	}

	seen := make(map[string]bool, len(m.Songs))
	for i, s := range m.Songs {
		if s.Key == "" || s.Path == "" {
			return invalid("music.songs[%d] needs key and path", i)
		}
		if seen[s.Key] {
			return invalid("music.songs key %q is duplicated", s.Key)
		}
		seen[s.Key] = true
	}
	if m.Default != "" && len(m.Songs) > 0 && !seen[m.Default] {
		return invalid("music.default %q names no song", m.Default)
	}
	return nil
}

func (c *Config) validateItinerary() error {
	if strings.TrimSpace(c.Itinerary.Title) == "" {
		return invalid("itinerary.title must be set")
	}
	if _, err := time.Parse(DateLayout, c.Itinerary.Date); err != nil {
		return invalid("itinerary.date must be YYYY-MM-DD, got %q", c.Itinerary.Date)
	}
	return nil
}
