package itinerary

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"golang.org/x/net/html"
	"gopkg.in/yaml.v3"
)

//go:embed plan.html
var defaultMarkup []byte

// ErrUnsupportedSource is returned for itinerary files that are neither markup nor YAML
var ErrUnsupportedSource = errors.New("unsupported itinerary source")

// Default returns the itinerary shipped with the page
func Default() []Item {
	items, err := ParseMarkup(bytes.NewReader(defaultMarkup))
	if err != nil {
		// Embedded at build time; a parse failure is a build defect
		panic(fmt.Sprintf("embedded itinerary: %v", err))
	}
	return items
}

// LoadFile reads an itinerary from an .html/.htm markup page or a .yaml/.yml list
func LoadFile(path string) ([]Item, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open itinerary: %w", err)
	}
	defer f.Close()

	switch strings.ToLower(filepath.Ext(path)) {
	case ".html", ".htm":
		return ParseMarkup(f)
	case ".yaml", ".yml":
		return ParseYAML(f)
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedSource, path)
	}
}

type yamlDocument struct {
	Items []Item `yaml:"items"`
}

// ParseYAML reads a document of the form `items: [{time, activity}, ...]`
func ParseYAML(r io.Reader) ([]Item, error) {
	var doc yamlDocument
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("parse itinerary yaml: %w", err)
	}

	items := make([]Item, 0, len(doc.Items))
	for _, it := range doc.Items {
		it = Item{Time: normalize(it.Time), Activity: normalize(it.Activity)}
		if it.Empty() {
			continue
		}
		items = append(items, it)
	}
	return items, nil
}

// ParseMarkup extracts `.plan-item` elements under `#plan-items`, reading the
// text of their `.time` and `.activity` descendants
// Without a #plan-items container the whole document is searched
func ParseMarkup(r io.Reader) ([]Item, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parse itinerary markup: %w", err)
	}

	root := findFirst(doc, func(n *html.Node) bool { return attr(n, "id") == "plan-items" })
	if root == nil {
		root = doc
	}

	var items []Item
	walk(root, func(n *html.Node) bool {
		if !hasClass(n, "plan-item") {
			return true
		}
		it := Item{
			Time:     normalize(textOf(findFirst(n, func(c *html.Node) bool { return hasClass(c, "time") }))),
			Activity: normalize(textOf(findFirst(n, func(c *html.Node) bool { return hasClass(c, "activity") }))),
		}
		if !it.Empty() {
			items = append(items, it)
		}
		// plan items do not nest
		return false
	})
	return items, nil
}

// walk visits n and its descendants depth-first, descending while visit returns true
func walk(n *html.Node, visit func(*html.Node) bool) {
	if !visit(n) {
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, visit)
	}
}

func findFirst(n *html.Node, match func(*html.Node) bool) *html.Node {
	var found *html.Node
	walk(n, func(c *html.Node) bool {
		if found != nil {
			return false
		}
		if c.Type == html.ElementNode && match(c) {
			found = c
			return false
		}
		return true
	})
	return found
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasClass(n *html.Node, class string) bool {
	if n.Type != html.ElementNode {
		return false
	}
	return slices.Contains(strings.Fields(attr(n, "class")), class)
}

func textOf(n *html.Node) string {
	if n == nil {
		return ""
	}
	var b strings.Builder
	walk(n, func(c *html.Node) bool {
		if c.Type == html.TextNode {
			b.WriteString(c.Data)
		}
		return true
	})
	return b.String()
}
