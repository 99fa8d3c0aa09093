package itinerary

import (
	"bytes"
	"fmt"

	"github.com/fumiama/go-docx"
)

const (
	headingSize = "32" // half-points
	bodySize    = "24"
)

// DocumentExporter renders the plan as a word-processor (.docx) document
type DocumentExporter struct{}

func (DocumentExporter) Format() string { return "docx" }

func (DocumentExporter) Export(plan Plan) (Artifact, error) {
	data, err := BuildDocument(plan)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename:  plan.Filename("docx"),
		MediaType: "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
		Data:      data,
	}, nil
}

// docLine is one paragraph of the generated document
type docLine struct {
	Lead string // bold run, the time for plan entries
	Body string
}

// documentLines lays out the heading followed by one line per entry
func documentLines(plan Plan) []docLine {
	lines := []docLine{{Lead: plan.Heading()}}
	for _, it := range plan.Entries() {
		lines = append(lines, docLine{Lead: it.Time, Body: it.Activity})
	}
	return lines
}

// BuildDocument returns the packaged .docx bytes
func BuildDocument(plan Plan) ([]byte, error) {
	doc := docx.New().WithDefaultTheme()

	for i, line := range documentLines(plan) {
		para := doc.AddParagraph()
		if i == 0 {
			para.AddText(line.Lead).Bold().Size(headingSize)
			continue
		}
		para.AddText(line.Lead).Bold().Size(bodySize).AddTab()
		para.AddText(line.Body).Size(bodySize)
	}

	var buf bytes.Buffer
	if _, err := doc.WriteTo(&buf); err != nil {
		return nil, fmt.Errorf("package docx: %w", err)
	}
	return buf.Bytes(), nil
}
