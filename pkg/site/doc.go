// Package site renders the chart page.
//
// A build produces three files: index.html, a bundled script and a
// stylesheet. The script carries every chart configuration for both device
// classes followed by the mount script, which picks the table matching the
// viewport and hands each configuration to Chart.js:
//
//	reg, _ := registry.Default()
//	a, err := site.Build(reg, site.Options{Title: "WTF Česko"})
//	if err != nil {
//	    return err
//	}
//	err = site.Write("dist", a)
//
// Asset names carry a content hash so the page can be cached aggressively.
package site
