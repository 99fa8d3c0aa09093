package main

import (
	"io"
	"os"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/lixenwraith/ja-nei/itinerary"
)

// isTerminal reports whether w is an interactive terminal
func isTerminal(w io.Writer) bool {
	file, ok := w.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// plainColors resolves the --color flag: never, always, or auto (color only
// on a terminal and when NO_COLOR is unset)
func plainColors(mode string, w io.Writer) bool {
	switch strings.ToLower(mode) {
	case "never", "false", "off":
		return true
	case "always", "true", "on":
		return false
	}
	if os.Getenv("NO_COLOR") != "" {
		return true
	}
	return !isTerminal(w)
}

func renderPlanTable(plan itinerary.Plan) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.SetTitle(plan.Heading())
	tw.AppendHeader(table.Row{"Zyt", "Was"})
	for _, it := range plan.Entries() {
		tw.AppendRow(table.Row{it.Time, it.Activity})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignRight, AlignHeader: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}
