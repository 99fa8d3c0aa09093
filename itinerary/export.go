package itinerary

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
)

// Artifact is a downloadable export result
type Artifact struct {
	Filename  string
	MediaType string
	Data      []byte
}

// Exporter turns a plan into an artifact; implementations are pure
type Exporter interface {
	// Format is the short name used on the command line and as file extension
	Format() string
	Export(plan Plan) (Artifact, error)
}

var (
	// ErrUnknownFormat is returned by Lookup for unregistered formats
	ErrUnknownFormat = errors.New("unknown export format")
	// ErrGeneration wraps any failure raised while building an artifact
	ErrGeneration = errors.New("export generation failed")
)

var registry = map[string]Exporter{}

// Register makes an exporter available to Lookup, replacing any with the same format
func Register(e Exporter) {
	registry[e.Format()] = e
}

func init() {
	Register(TextExporter{})
	Register(CalendarExporter{})
	Register(DocumentExporter{})
}

// Lookup returns the exporter registered for format
func Lookup(format string) (Exporter, error) {
	e, ok := registry[format]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, format)
	}
	return e, nil
}

// Formats lists registered formats in a stable order
func Formats() []string {
	out := make([]string, 0, len(registry))
	for f := range registry {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Generate runs an exporter, converting returned errors and panics from
// third-party formatting code into ErrGeneration
// On failure no artifact is returned
func Generate(e Exporter, plan Plan) (a Artifact, err error) {
	defer func() {
		if r := recover(); r != nil {
			a = Artifact{}
			err = fmt.Errorf("%w: %s: %v", ErrGeneration, e.Format(), r)
		}
	}()

	a, err = e.Export(plan)
	if err != nil {
		return Artifact{}, fmt.Errorf("%w: %s: %w", ErrGeneration, e.Format(), err)
	}
	return a, nil
}

// WriteArtifact stores a in dir under its filename and returns the final path
// The file appears atomically: a failed write leaves no partial file behind
func WriteArtifact(dir string, a Artifact) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("create export dir: %w", err)
	}

	tmp, err := os.CreateTemp(dir, ".export-*")
	if err != nil {
		return "", fmt.Errorf("create temp file: %w", err)
	}
	tmpPath := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpPath) }

	if _, err := tmp.Write(a.Data); err != nil {
		tmp.Close()
		cleanup()
		return "", fmt.Errorf("write %s: %w", a.Filename, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", fmt.Errorf("close %s: %w", a.Filename, err)
	}
	if err := os.Chmod(tmpPath, 0o644); err != nil {
		cleanup()
		return "", fmt.Errorf("chmod %s: %w", a.Filename, err)
	}

	final := filepath.Join(dir, a.Filename)
	if err := os.Rename(tmpPath, final); err != nil {
		cleanup()
		return "", fmt.Errorf("rename %s: %w", a.Filename, err)
	}
	return final, nil
}
