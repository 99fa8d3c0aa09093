// Package config loads and validates the page settings.
//
// Defaults reproduce the published page; a TOML file overlays them section by
// section. Relative song and itinerary paths resolve against the directory
// of the file that named them.
package config
