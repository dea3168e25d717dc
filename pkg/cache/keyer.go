package cache

import "fmt"

// Keyer derives cache keys for build outputs.
type Keyer interface {
	// SiteKey identifies a rendered site for the given fixture hash.
	SiteKey(fixturesHash string, opts SiteKeyOpts) string

	// ArtifactKey identifies a secondary artifact derived from a site.
	ArtifactKey(siteHash string, opts ArtifactKeyOpts) string
}

// SiteKeyOpts are the render inputs besides the fixtures.
type SiteKeyOpts struct {
	// Content digests the generated chart configurations and page assets,
	// so code changes miss the cache even when Version stays "dev".
	Content     string `json:"content"`
	Version     string `json:"version"`
	Title       string `json:"title"`
	Description string `json:"description"`
	SiteURL     string `json:"site_url"`
	BasePath    string `json:"base_path"`
	ChartJSURL  string `json:"chartjs_url"`
	Breakpoint  int    `json:"breakpoint"`
}

// ArtifactKeyOpts select one secondary artifact.
type ArtifactKeyOpts struct {
	Format   string `json:"format"`
	Detailed bool   `json:"detailed"`
}

// DefaultKeyer hashes key inputs into fixed-length keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// SiteKey returns "site:<sha256>".
func (DefaultKeyer) SiteKey(fixturesHash string, opts SiteKeyOpts) string {
	return hashKey("site", fixturesHash, opts)
}

// ArtifactKey returns "artifact:<format>:<sha256>".
func (DefaultKeyer) ArtifactKey(siteHash string, opts ArtifactKeyOpts) string {
	return hashKey(fmt.Sprintf("artifact:%s", opts.Format), siteHash, opts)
}
