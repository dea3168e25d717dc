// Package config loads the optional wtfcesko.toml site configuration.
//
// Every field has a default, so a missing file is not an error:
//
//	[site]
//	title = "WTF Česko"
//	url = "https://sgtmarmite.github.io"
//	base_path = "/wtfcesko"
//
//	[build]
//	out_dir = "dist"
//
//	[cache]
//	ttl = "168h"
//
// Command-line flags override file values.
package config

import (
	"os"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/sgtmarmite/wtfcesko/pkg/cache"
	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/site"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// DefaultFile is looked up in the working directory when no path is given.
const DefaultFile = "wtfcesko.toml"

// Defaults.
const (
	DefaultDescription = "Co se v Česku děje s penězi, cenami, bydlením a demografií. V grafech."
	DefaultSiteURL     = "https://sgtmarmite.github.io"
	DefaultBasePath    = "/wtfcesko"
	DefaultOutDir      = "dist"
	DefaultAddr        = ":4321"
)

// maxBreakpoint bounds the configurable mobile breakpoint.
const maxBreakpoint = 4096

// Config is the decoded configuration file.
type Config struct {
	Site  Site  `toml:"site"`
	Build Build `toml:"build"`
	Serve Serve `toml:"serve"`
	Cache Cache `toml:"cache"`

	// Path is the file the configuration was read from, empty for defaults.
	Path string `toml:"-"`
}

// Site holds page metadata.
type Site struct {
	Title       string `toml:"title"`
	Description string `toml:"description"`
	URL         string `toml:"url"`
	BasePath    string `toml:"base_path"`
	ChartJSURL  string `toml:"chartjs_url"`
	Breakpoint  int    `toml:"breakpoint"`
}

// Build holds output settings.
type Build struct {
	OutDir  string `toml:"out_dir"`
	Sitemap bool   `toml:"sitemap"`
}

// Serve holds preview server settings.
type Serve struct {
	Addr string `toml:"addr"`
}

// Cache holds build cache settings.
type Cache struct {
	Disabled bool     `toml:"disabled"`
	TTL      Duration `toml:"ttl"`
	RedisURL string   `toml:"redis_url"`
}

// Duration is a time.Duration written as a string ("36h", "90m").
type Duration struct {
	time.Duration
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (d *Duration) UnmarshalText(text []byte) error {
	v, err := time.ParseDuration(string(text))
	if err != nil {
		return err
	}
	d.Duration = v
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (d Duration) MarshalText() ([]byte, error) {
	return []byte(d.Duration.String()), nil
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Site: Site{
			Title:       site.DefaultTitle,
			Description: DefaultDescription,
			URL:         DefaultSiteURL,
			BasePath:    DefaultBasePath,
			ChartJSURL:  site.DefaultChartJSURL,
			Breakpoint:  style.MobileBreakpoint,
		},
		Build: Build{OutDir: DefaultOutDir},
		Serve: Serve{Addr: DefaultAddr},
		Cache: Cache{TTL: Duration{cache.TTLSite}},
	}
}

// Load reads path over the defaults and validates the result. An empty
// path tries DefaultFile and falls back to defaults if it does not exist.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		path = DefaultFile
	}
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) && !explicit {
		return cfg, cfg.Validate()
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	if err := cfg.decode(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "%s", path)
	}
	cfg.Path = path
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Parse decodes a configuration document over the defaults.
func Parse(data []byte) (*Config, error) {
	cfg := Default()
	if err := cfg.decode(data); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidConfig, err, "parse config")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// decode rejects keys that do not map to a field, so typos are reported
// instead of silently ignored.
func (c *Config) decode(data []byte) error {
	md, err := toml.Decode(string(data), c)
	if err != nil {
		return err
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.New(errors.ErrCodeInvalidConfig, "unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// Validate checks every field.
func (c *Config) Validate() error {
	if strings.TrimSpace(c.Site.Title) == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "site.title must not be empty")
	}
	if c.Site.URL != "" {
		if err := errors.ValidateURL(c.Site.URL); err != nil {
			return errors.Wrap(errors.ErrCodeInvalidConfig, err, "site.url")
		}
	}
	if err := errors.ValidateBasePath(c.Site.BasePath); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "site.base_path")
	}
	if err := errors.ValidateURL(c.Site.ChartJSURL); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "site.chartjs_url")
	}
	if c.Site.Breakpoint <= 0 || c.Site.Breakpoint > maxBreakpoint {
		return errors.New(errors.ErrCodeInvalidConfig, "site.breakpoint must be between 1 and %d, got %d", maxBreakpoint, c.Site.Breakpoint)
	}
	if err := errors.ValidateOutputDir(c.Build.OutDir); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "build.out_dir")
	}
	if c.Serve.Addr == "" {
		return errors.New(errors.ErrCodeInvalidConfig, "serve.addr must not be empty")
	}
	if c.Cache.TTL.Duration < 0 {
		return errors.New(errors.ErrCodeInvalidConfig, "cache.ttl must not be negative")
	}
	return nil
}

// SiteOptions returns the page options for a build stamped with version.
func (c *Config) SiteOptions(version string) site.Options {
	return site.Options{
		Title:       c.Site.Title,
		Description: c.Site.Description,
		SiteURL:     c.Site.URL,
		BasePath:    c.Site.BasePath,
		ChartJSURL:  c.Site.ChartJSURL,
		Breakpoint:  c.Site.Breakpoint,
		Version:     version,
	}
}
