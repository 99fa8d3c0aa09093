package app

import (
	"fmt"
	"strings"

	"go.uber.org/zap"

	"github.com/lixenwraith/ja-nei/itinerary"
)

func (g *Game) exportAction(a Action) {
	switch a {
	case ActionExportText:
		g.export("txt")
	case ActionExportCalendar:
		g.export("ics")
	case ActionExportDocument:
		g.export("docx")
	case ActionExportAll:
		var saved []string
		for _, format := range itinerary.Formats() {
			path, ok := g.export(format)
			if !ok {
				return
			}
			saved = append(saved, path)
		}
		g.notify("Gspeicheret: " + strings.Join(saved, ", "))
	}
}

// export generates and stores one artifact, opening the error dialog on failure
func (g *Game) export(format string) (string, bool) {
	e, err := itinerary.Lookup(format)
	if err != nil {
		g.fail("Export fehlgschlage", err)
		return "", false
	}
	a, err := itinerary.Generate(e, g.plan)
	if err != nil {
		g.fail("Export fehlgschlage", err)
		return "", false
	}
	path, err := itinerary.WriteArtifact(g.cfg.Itinerary.OutDir, a)
	if err != nil {
		g.fail("Speichere fehlgschlage", fmt.Errorf("%s: %w", a.Filename, err))
		return "", false
	}

	g.logger.Info("plan exported", zap.String("format", format), zap.String("path", path))
	g.notify("Gspeicheret: " + path)
	return path, true
}
