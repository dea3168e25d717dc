package sitemap

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/sgtmarmite/wtfcesko/pkg/registry"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// Options configures the diagram.
type Options struct {
	// Detailed adds the chart shape and source to chart labels.
	Detailed bool
}

// Node id prefixes keep act, chart and fixture names from colliding.
const (
	actPrefix     = "act:"
	chartPrefix   = "chart:"
	datasetPrefix = "data:"
)

// ToDOT converts the registry's acts, charts and fixtures to Graphviz DOT.
func ToDOT(reg *registry.Registry, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph sitemap {\n")
	buf.WriteString("  rankdir=LR;\n")
	fmt.Fprintf(&buf, "  bgcolor=%q;\n", style.ColorPage)
	fmt.Fprintf(&buf, "  node [shape=box, style=\"rounded,filled\", fillcolor=%q, color=%q, fontcolor=%q, fontname=\"Helvetica\", fontsize=12];\n",
		style.ColorTooltipBG, style.ColorBorder, style.ColorText)
	fmt.Fprintf(&buf, "  edge [color=%q, arrowsize=0.6];\n", style.ColorTick)
	buf.WriteString("  ranksep=0.8;\n")
	buf.WriteString("  nodesep=0.15;\n")
	buf.WriteString("\n")

	for _, a := range reg.Acts() {
		fmt.Fprintf(&buf, "  %q [label=%q, shape=folder, fillcolor=%q];\n",
			actPrefix+a.ID, fmt.Sprintf("Akt %d\n%s", a.Number, a.Title), style.ColorBorder)
	}

	buf.WriteString("\n")
	seen := make(map[string]bool)
	for _, e := range reg.Entries() {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", chartPrefix+e.Key, fmtLabel(e, opts.Detailed))
		if !seen[e.Dataset] {
			seen[e.Dataset] = true
			fmt.Fprintf(&buf, "  %q [label=%q, shape=note, fillcolor=%q];\n",
				datasetPrefix+e.Dataset, e.Dataset+".json", style.ColorPage)
		}
	}

	buf.WriteString("\n")
	for _, a := range reg.Acts() {
		for _, key := range a.Keys {
			fmt.Fprintf(&buf, "  %q -> %q;\n", actPrefix+a.ID, chartPrefix+key)
		}
	}
	for _, e := range reg.Entries() {
		fmt.Fprintf(&buf, "  %q -> %q;\n", chartPrefix+e.Key, datasetPrefix+e.Dataset)
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(e registry.Entry, detailed bool) string {
	if !detailed {
		return e.Key
	}
	parts := []string{e.Key, e.Title, "shape: " + string(e.Shape)}
	if e.Source != "" {
		parts = append(parts, "source: "+e.Source)
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

// normalizeViewBox replaces Graphviz's pt-sized root element with one that
// scales to its container.
func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	root := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)
	return svgTagRe.ReplaceAll(svg, []byte(root))
}

// Render builds the diagram for reg and renders it to SVG.
func Render(ctx context.Context, reg *registry.Registry, opts Options) ([]byte, error) {
	return RenderSVG(ctx, ToDOT(reg, opts))
}
