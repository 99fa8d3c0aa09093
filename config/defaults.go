package config

import (
	"github.com/lixenwraith/ja-nei/constants"
)

const (
	defaultQuestion       = "Wötsch mis Valentine si?"
	defaultAcceptLabel    = "Ja"
	defaultRejectLabel    = "Nei"
	defaultSuccessTitle   = "Juhuiii!"
	defaultSuccessMessage = "Ich ha's gwüsst. Da isch euse Plan:"
	defaultPlanTitle      = "Euse Plan"
	defaultPlanDate       = "2026-02-13"
	defaultCorner         = "bottom-left"
	defaultMusicDir       = "music"
)

// Default returns the page as published
func Default() Config {
	glyphs := make([]string, len(constants.SparkleGlyphs))
	for i, g := range constants.SparkleGlyphs {
		glyphs[i] = string(g)
	}

	return Config{
		Page: Page{
			Question:       defaultQuestion,
			AcceptLabel:    defaultAcceptLabel,
			RejectLabel:    defaultRejectLabel,
			SuccessTitle:   defaultSuccessTitle,
			SuccessMessage: defaultSuccessMessage,
			CounterPrefix:  constants.CounterLabelPrefix,
		},
		Evasion: Evasion{
			ScaleIncrement: constants.ScaleIncrement,
			MaxScale:       constants.MaxScale,
			Padding:        constants.RejectPadding,
			DodgeCueMs:     constants.DodgeCueMs,
			ResetDelayMs:   constants.ResetDelayMs,
		},
		Celebration: Celebration{
			HeartCount:        constants.HeartCount,
			HeartStaggerMs:    int(constants.HeartStagger.Milliseconds()),
			HeartLifetimeMs:   int(constants.HeartLifetime.Milliseconds()),
			HeartDrift:        constants.HeartDriftRange,
			SparkleCount:      constants.SparkleCount,
			SparkleStaggerMs:  int(constants.SparkleStagger.Milliseconds()),
			SparkleLifetimeMs: int(constants.SparkleLifetime.Milliseconds()),
			SparkleGlyphs:     glyphs,
		},
		Music: Music{
			Enabled: true,
			Volume:  constants.DefaultVolume,
			Corner:  defaultCorner,
			Default: "1",
			Songs: []Song{
				{Key: "1", Title: "Jeff Buckley - Everybody Here Wants You", Path: defaultMusicDir + "/Jeff Buckley - Everybody Here Wants You (320 kbps).mp3"},
				{Key: "2", Title: "Deftones - Cherry Waves", Path: defaultMusicDir + "/Deftones - Cherry Waves (Lyrics).mp3"},
			},
		},
		Itinerary: Itinerary{
			Title:  defaultPlanTitle,
			Date:   defaultPlanDate,
			OutDir: ".",
		},
	}
}
