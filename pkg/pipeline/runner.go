package pipeline

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/sgtmarmite/wtfcesko/pkg/buildinfo"
	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/dataset"
	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/observability"
	"github.com/sgtmarmite/wtfcesko/pkg/registry"
	"github.com/sgtmarmite/wtfcesko/pkg/render/sitemap"
	"github.com/sgtmarmite/wtfcesko/pkg/site"
)

// Cache key types reported to observability hooks.
const (
	keyTypeSite    = "site"
	keyTypeSitemap = "sitemap"
)

// Runner executes builds with caching.
//
// The Runner holds no per-build state; one Runner may serve several
// builds, though the CLI runs only one at a time.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// Store supplies the fixtures; dataset.Default when nil.
	Store *dataset.Store

	// Now stamps manifests; time.Now when nil.
	Now func() time.Time
}

// NewRunner creates a runner with the given cache and keyer.
// If keyer is nil, a DefaultKeyer is used.
// If cache is nil, a NullCache is used (caching disabled).
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if c == nil {
		c = cache.NewNullCache()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{
		Cache:  c,
		Keyer:  keyer,
		Logger: logger,
	}
}

// Build runs the complete load → render → write pipeline.
func (r *Runner) Build(ctx context.Context, opts Options) (*Result, error) {
	if err := opts.ValidateAndSetDefaults(); err != nil {
		return nil, err
	}
	logger := r.logger(opts)
	result := &Result{CacheInfo: CacheInfo{Backend: cache.Describe(r.cache())}}

	// Stage 1: Load
	loadStart := time.Now()
	reg, fixturesHash, err := r.Load(ctx)
	result.Stats.LoadTime = time.Since(loadStart)
	if err != nil {
		return nil, err
	}
	result.Stats.Charts = reg.Len()
	logger.Info("loaded charts",
		"charts", reg.Len(),
		"acts", len(reg.Acts()),
		"duration", result.Stats.LoadTime)

	// Stage 2: Render
	renderStart := time.Now()
	artifacts, siteHit, err := r.RenderWithCacheInfo(ctx, reg, fixturesHash, opts)
	if err != nil {
		return nil, err
	}
	result.Artifacts = artifacts
	result.CacheInfo.SiteHit = siteHit

	if opts.Sitemap {
		svg, hit, err := r.SitemapWithCacheInfo(ctx, reg, fixturesHash, opts)
		if err != nil {
			return nil, err
		}
		result.Sitemap = svg
		result.CacheInfo.SitemapHit = hit
	}
	result.Stats.RenderTime = time.Since(renderStart)
	logger.Info("rendered page",
		"cached", siteHit,
		"script", artifacts.Script.Name,
		"duration", result.Stats.RenderTime)

	// Stage 3: Write
	result.Manifest = r.manifest(reg, fixturesHash, result)
	writeStart := time.Now()
	files, size, err := r.Write(ctx, opts.OutDir, result)
	result.Stats.WriteTime = time.Since(writeStart)
	observability.Pipeline().OnWriteComplete(ctx, opts.OutDir, files, result.Stats.WriteTime, err)
	if err != nil {
		return nil, err
	}
	result.Stats.Files = files
	result.Stats.Bytes = size
	logger.Info("wrote site",
		"dir", opts.OutDir,
		"files", files,
		"bytes", size,
		"duration", result.Stats.WriteTime)

	return result, nil
}

// Load decodes the fixtures into a registry and hashes their raw bytes.
func (r *Runner) Load(ctx context.Context) (*registry.Registry, string, error) {
	hooks := observability.Pipeline()
	hooks.OnLoadStart(ctx)
	start := time.Now()

	store := r.store()
	reg, err := registry.New(store)
	if err != nil {
		hooks.OnLoadComplete(ctx, 0, time.Since(start), err)
		return nil, "", err
	}
	hash, err := HashFixtures(store)
	hooks.OnLoadComplete(ctx, reg.Len(), time.Since(start), err)
	if err != nil {
		return nil, "", err
	}
	return reg, hash, nil
}

// HashFixtures returns a content hash over every fixture name and its
// raw bytes.
func HashFixtures(store *dataset.Store) (string, error) {
	names, err := store.Names()
	if err != nil {
		return "", err
	}
	blobs := make(map[string][]byte, len(names))
	for _, name := range names {
		raw, err := store.Raw(name)
		if err != nil {
			return "", err
		}
		blobs[name] = raw
	}
	return cache.HashNamed(blobs), nil
}

// RenderWithCacheInfo renders the site, reusing a cached render when the
// fixtures, generated content and options match. The bool reports a
// cache hit.
func (r *Runner) RenderWithCacheInfo(ctx context.Context, reg *registry.Registry, fixturesHash string, opts Options) (*site.Artifacts, bool, error) {
	c := r.cache()
	hooks := observability.Cache()
	cacheKey, err := r.siteKey(reg, fixturesHash, opts)
	if err != nil {
		return nil, false, err
	}

	if !opts.Refresh {
		if data, hit, err := c.Get(ctx, cacheKey); err == nil && hit {
			var cached site.Artifacts
			if err := json.Unmarshal(data, &cached); err == nil && len(cached.Index) > 0 {
				hooks.OnCacheHit(ctx, keyTypeSite)
				return &cached, true, nil
			}
			// Undecodable entry: fall through and overwrite it.
		} else if err != nil {
			r.logger(opts).Warn("cache read failed", "err", err)
		}
		hooks.OnCacheMiss(ctx, keyTypeSite)
	}

	pipelineHooks := observability.Pipeline()
	pipelineHooks.OnRenderStart(ctx, reg.Len())
	start := time.Now()
	artifacts, err := site.Build(reg, opts.Site)
	if err != nil {
		pipelineHooks.OnRenderComplete(ctx, 0, time.Since(start), err)
		return nil, false, err
	}
	pipelineHooks.OnRenderComplete(ctx, len(artifacts.Index)+len(artifacts.Script.Data)+len(artifacts.Style.Data), time.Since(start), nil)

	if data, err := json.Marshal(artifacts); err == nil {
		if err := c.Set(ctx, cacheKey, data, opts.TTL); err != nil {
			r.logger(opts).Warn("cache write failed", "err", err)
		} else {
			hooks.OnCacheSet(ctx, keyTypeSite, len(data))
		}
	}
	return artifacts, false, nil
}

// SitemapWithCacheInfo renders the sitemap SVG with caching.
func (r *Runner) SitemapWithCacheInfo(ctx context.Context, reg *registry.Registry, fixturesHash string, opts Options) ([]byte, bool, error) {
	c := r.cache()
	hooks := observability.Cache()
	siteKey, err := r.siteKey(reg, fixturesHash, opts)
	if err != nil {
		return nil, false, err
	}
	siteHash := cache.Hash([]byte(siteKey))
	cacheKey := r.keyer().ArtifactKey(siteHash, cache.ArtifactKeyOpts{Format: "svg", Detailed: opts.SitemapDetailed})

	if !opts.Refresh {
		if data, hit, err := c.Get(ctx, cacheKey); err == nil && hit {
			hooks.OnCacheHit(ctx, keyTypeSitemap)
			return data, true, nil
		}
		hooks.OnCacheMiss(ctx, keyTypeSitemap)
	}

	svg, err := sitemap.Render(ctx, reg, sitemap.Options{Detailed: opts.SitemapDetailed})
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInternal, err, "render sitemap")
	}
	if err := c.Set(ctx, cacheKey, svg, cache.TTLArtifact); err == nil {
		hooks.OnCacheSet(ctx, keyTypeSitemap, len(svg))
	}
	return svg, false, nil
}

// siteKey is the cache key of the page rendered from reg with opts.
func (r *Runner) siteKey(reg *registry.Registry, fixturesHash string, opts Options) (string, error) {
	content, err := site.ContentHash(reg)
	if err != nil {
		return "", err
	}
	return r.keyer().SiteKey(fixturesHash, opts.siteKeyOpts(content)), nil
}

// Write writes the page, its assets, the optional sitemap and the manifest
// into dir. A sitemap from an earlier build is removed when res has none.
// It returns the number of files and bytes written.
func (r *Runner) Write(ctx context.Context, dir string, res *Result) (int, int, error) {
	if err := ctx.Err(); err != nil {
		return 0, 0, err
	}
	if err := site.Write(dir, res.Artifacts); err != nil {
		return 0, 0, err
	}

	files, size := 0, 0
	for _, data := range res.Artifacts.Files() {
		files++
		size += len(data)
	}

	sitemapPath := filepath.Join(dir, SitemapFile)
	if res.Sitemap != nil {
		if err := writeFile(sitemapPath, res.Sitemap); err != nil {
			return 0, 0, err
		}
		files++
		size += len(res.Sitemap)
	} else if err := os.Remove(sitemapPath); err != nil && !os.IsNotExist(err) {
		// A sitemap left by an earlier build would not match this one.
		return 0, 0, errors.Wrap(errors.ErrCodeInternal, err, "remove stale %s", sitemapPath)
	}

	manifest, err := json.MarshalIndent(res.Manifest, "", "  ")
	if err != nil {
		return 0, 0, errors.Wrap(errors.ErrCodeInternal, err, "encode manifest")
	}
	manifest = append(manifest, '\n')
	if err := writeFile(filepath.Join(dir, ManifestFile), manifest); err != nil {
		return 0, 0, err
	}
	return files + 1, size + len(manifest), nil
}

func writeFile(path string, data []byte) error {
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "write %s", path)
	}
	return nil
}

func (r *Runner) manifest(reg *registry.Registry, fixturesHash string, res *Result) Manifest {
	m := Manifest{
		BuildID:      uuid.NewString(),
		BuiltAt:      r.now().UTC(),
		Build:        buildinfo.Current(),
		FixturesHash: fixturesHash,
		Charts:       reg.Keys(),
		Cached:       res.CacheInfo.SiteHit,
	}
	for _, a := range reg.Acts() {
		m.Acts = append(m.Acts, a.ID)
	}
	for name := range res.Artifacts.Files() {
		m.Files = append(m.Files, name)
	}
	if res.Sitemap != nil {
		m.Files = append(m.Files, SitemapFile)
	}
	m.Files = append(m.Files, ManifestFile)
	sort.Strings(m.Files)
	return m
}

// Close releases resources held by the runner (primarily the cache).
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

func (r *Runner) cache() cache.Cache {
	if r.Cache == nil {
		return cache.NewNullCache()
	}
	return r.Cache
}

func (r *Runner) keyer() cache.Keyer {
	if r.Keyer == nil {
		return cache.NewDefaultKeyer()
	}
	return r.Keyer
}

func (r *Runner) store() *dataset.Store {
	if r.Store == nil {
		return dataset.Default()
	}
	return r.Store
}

func (r *Runner) now() time.Time {
	if r.Now == nil {
		return time.Now()
	}
	return r.Now()
}

func (r *Runner) logger(opts Options) *log.Logger {
	if opts.Logger != nil {
		return opts.Logger
	}
	if r.Logger != nil {
		return r.Logger
	}
	return log.Default()
}
