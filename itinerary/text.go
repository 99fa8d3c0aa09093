package itinerary

import (
	"fmt"
	"strings"
)

// TextExporter renders the plan as plain text
type TextExporter struct{}

func (TextExporter) Format() string { return "txt" }

func (TextExporter) Export(plan Plan) (Artifact, error) {
	return Artifact{
		Filename:  plan.Filename("txt"),
		MediaType: "text/plain;charset=utf-8",
		Data:      []byte(FormatText(plan)),
	}, nil
}

// FormatText renders the heading, a blank line, then one "HH:MM — activity" line per entry
func FormatText(plan Plan) string {
	var b strings.Builder
	b.WriteString(plan.Heading())
	b.WriteString("\n\n")
	for _, it := range plan.Entries() {
		fmt.Fprintf(&b, "%s — %s\n", it.Time, it.Activity)
	}
	return b.String()
}
