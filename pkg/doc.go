// Package pkg provides the libraries behind the wtfcesko chart site.
//
// # Overview
//
// wtfcesko renders a single static page of Czech economic and demographic
// charts. Every chart is a Chart.js configuration built in Go from a bundled
// JSON fixture, once per device class, and embedded in a hashed script that
// the browser mounts onto the page's canvases.
//
// # Architecture
//
// The data flow of one build:
//
//	JSON fixtures (embedded)
//	         ↓
//	    [dataset] package (decode + validate colors)
//	         ↓
//	    [registry] package (22 chart factories, six acts)
//	         ↓
//	    [site] package (page template + asset bundle)
//	         ↓
//	    index.html, assets/app-<hash>.js, assets/style-<hash>.css
//
// # Quick Start
//
//	reg, _ := registry.Default()
//	artifacts, _ := site.Build(reg, site.Options{BasePath: "/wtfcesko"})
//	_ = site.Write("dist", artifacts)
//
// # Main Packages
//
// ## Chart Domain
//
// [dataset] - Embedded fixtures: multi-series (labels + datasets) and
// breakdown (doughnut) shapes, with #rrggbb color validation.
//
// [chart] - Go types mirroring the subset of the Chart.js configuration
// schema the page uses. Serialized as-is into the bundle.
//
// [style] - Shared palette, device classes (desktop, mobile), base options,
// axis and dataset helpers, cs-CZ number formatting.
//
// [registry] - One factory per chart, the page order and the act grouping.
//
// ## Output
//
// [site] - Page template, stylesheet, mount script and content-hashed
// asset names.
//
// [render/sitemap] - Graphviz overview of acts, charts and fixtures.
//
// [server] - chi-based preview server for a built site.
//
// ## Infrastructure
//
// [pipeline] - Load → render → write with caching; shared by the CLI and
// tests so output stays identical between entry points.
//
// [cache] - File, redis and null cache backends keyed by content hashes.
//
// [config] - TOML configuration file with defaults and validation.
//
// [observability] - Hooks for pipeline, cache and server events with a
// logging implementation.
//
// [errors] - Coded errors and input validators.
//
// [buildinfo] - Version information stamped in via ldflags.
//
// # Testing
//
//	go test ./...                        # All tests
//	go test ./pkg/registry/...           # Specific package
//	go test -run Example ./pkg/...       # Examples only
//
// [dataset]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/dataset
// [chart]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/chart
// [style]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/style
// [registry]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/registry
// [site]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/site
// [render/sitemap]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/render/sitemap
// [server]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/server
// [pipeline]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/cache
// [config]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/config
// [observability]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/observability
// [errors]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/errors
// [buildinfo]: https://pkg.go.dev/github.com/sgtmarmite/wtfcesko/pkg/buildinfo
package pkg
