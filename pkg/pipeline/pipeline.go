// Package pipeline builds the site: load fixtures → build chart
// configurations → render the page → write the output directory.
//
// The CLI and tests share this package so caching and output layout stay
// consistent between entry points.
//
//	runner := pipeline.NewRunner(c, nil, logger)
//	res, err := runner.Build(ctx, pipeline.Options{
//	    OutDir: "dist",
//	    Site:   cfg.SiteOptions(buildinfo.Version),
//	})
//
// Rendered artifacts are cached under a key derived from the fixture bytes,
// the generated chart tables, the embedded page assets, the page options
// and the binary version, so a cache hit always yields the same page a
// fresh render would.
package pipeline

import (
	"time"

	"github.com/charmbracelet/log"

	"github.com/sgtmarmite/wtfcesko/pkg/buildinfo"
	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/site"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// Output file names besides the site artifacts.
const (
	ManifestFile = "build.json"
	SitemapFile  = "sitemap.svg"
)

// Options contains all configuration for one build.
type Options struct {
	// OutDir is the output directory. Required.
	OutDir string

	// Site configures the rendered page.
	Site site.Options

	// Sitemap also renders SitemapFile; SitemapDetailed adds chart details.
	Sitemap         bool
	SitemapDetailed bool

	// Refresh ignores cached artifacts and re-renders.
	Refresh bool

	// TTL overrides cache.TTLSite for stored artifacts.
	TTL time.Duration

	// Logger overrides the runner's logger.
	Logger *log.Logger
}

// ValidateAndSetDefaults checks required fields and applies defaults.
func (o *Options) ValidateAndSetDefaults() error {
	if err := errors.ValidateOutputDir(o.OutDir); err != nil {
		return err
	}
	if o.Site.BasePath != "" {
		if err := errors.ValidateBasePath(o.Site.BasePath); err != nil {
			return err
		}
	}
	if o.Site.ChartJSURL != "" {
		if err := errors.ValidateURL(o.Site.ChartJSURL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "chart.js URL")
		}
	}
	if o.Site.Breakpoint == 0 {
		o.Site.Breakpoint = style.MobileBreakpoint
	}
	if o.Site.Breakpoint < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "breakpoint must be positive, got %d", o.Site.Breakpoint)
	}
	if o.Site.Version == "" {
		o.Site.Version = buildinfo.Version
	}
	if o.TTL <= 0 {
		o.TTL = cache.TTLSite
	}
	return nil
}

// siteKeyOpts are the page inputs that select a cached render; content is
// site.ContentHash of the registry being rendered.
func (o Options) siteKeyOpts(content string) cache.SiteKeyOpts {
	return cache.SiteKeyOpts{
		Content:     content,
		Version:     o.Site.Version,
		Title:       o.Site.Title,
		Description: o.Site.Description,
		SiteURL:     o.Site.SiteURL,
		BasePath:    o.Site.BasePath,
		ChartJSURL:  o.Site.ChartJSURL,
		Breakpoint:  o.Site.Breakpoint,
	}
}

// Result contains the outputs of a build.
type Result struct {
	// Artifacts are the page and its bundled assets.
	Artifacts *site.Artifacts

	// Sitemap is the rendered SVG, nil unless requested.
	Sitemap []byte

	// Manifest is the content of ManifestFile.
	Manifest Manifest

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains build statistics.
type Stats struct {
	Charts     int
	Files      int
	Bytes      int
	LoadTime   time.Duration
	RenderTime time.Duration
	WriteTime  time.Duration
}

// CacheInfo tracks cache hits for each stage.
type CacheInfo struct {
	Backend    string // cache.Describe of the runner's cache
	SiteHit    bool   // Page and assets came from cache
	SitemapHit bool   // Sitemap came from cache
}

// Manifest describes one build. It is written as ManifestFile next to
// the page.
type Manifest struct {
	BuildID      string         `json:"build_id"`
	BuiltAt      time.Time      `json:"built_at"`
	Build        buildinfo.Info `json:"build"`
	FixturesHash string         `json:"fixtures_hash"`
	Charts       []string       `json:"charts"`
	Acts         []string       `json:"acts"`
	Files        []string       `json:"files"`
	Cached       bool           `json:"cached"`
}
