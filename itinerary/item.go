package itinerary

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Item is one itinerary record
type Item struct {
	Time     string `yaml:"time"`
	Activity string `yaml:"activity"`
}

// Empty reports an entry carrying neither a time nor an activity
func (it Item) Empty() bool {
	return it.Time == "" && it.Activity == ""
}

// Clock parses Time as HH:MM
func (it Item) Clock() (hour, minute int, err error) {
	h, m, ok := strings.Cut(it.Time, ":")
	if !ok {
		return 0, 0, fmt.Errorf("time %q: missing ':'", it.Time)
	}
	hour, err = strconv.Atoi(h)
	if err != nil || hour < 0 || hour > 23 {
		return 0, 0, fmt.Errorf("time %q: bad hour", it.Time)
	}
	minute, err = strconv.Atoi(m)
	if err != nil || len(m) != 2 || minute < 0 || minute > 59 {
		return 0, 0, fmt.Errorf("time %q: bad minute", it.Time)
	}
	return hour, minute, nil
}

// Plan is the read-only sequence every exporter consumes
type Plan struct {
	Title string
	Date  time.Time
	Items []Item
}

// Heading is the document title line, e.g. "Euse Plan 13.02.2026"
func (p Plan) Heading() string {
	return p.Title + " " + p.Date.Format("02.01.2006")
}

// Filename names an exported artifact, e.g. "plan-2026-02-13.ics"
func (p Plan) Filename(ext string) string {
	return "plan-" + p.Date.Format("2006-01-02") + "." + ext
}

// Entries returns the items in order with empty entries skipped
func (p Plan) Entries() []Item {
	out := make([]Item, 0, len(p.Items))
	for _, it := range p.Items {
		if it.Empty() {
			continue
		}
		out = append(out, it)
	}
	return out
}

func normalize(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
