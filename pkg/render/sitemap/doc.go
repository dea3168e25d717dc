// Package sitemap draws an overview of the page as a Graphviz diagram.
//
// The graph has three ranks: act dividers, the charts inside each act and
// the dataset fixtures the charts are built from. Fixtures shared by
// several charts show up as a single node with several incoming edges.
//
//	dot := sitemap.ToDOT(reg, sitemap.Options{Detailed: true})
//	svg, err := sitemap.RenderSVG(ctx, dot)
//
// Rendering runs Graphviz in-process through [github.com/goccy/go-graphviz];
// no external binaries are needed.
package sitemap
