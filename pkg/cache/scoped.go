package cache

// ScopedKeyer wraps a Keyer with a prefix. It keeps builds of several
// sites apart when they share one Redis instance.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "wtfcesko:")
type ScopedKeyer struct {
	inner  Keyer
	prefix string
}

// NewScopedKeyer creates a keyer with a prefix.
// The prefix is prepended to all generated keys.
func NewScopedKeyer(inner Keyer, prefix string) Keyer {
	if inner == nil {
		inner = NewDefaultKeyer()
	}
	return &ScopedKeyer{
		inner:  inner,
		prefix: prefix,
	}
}

// SiteKey generates a prefixed key for rendered sites.
func (k *ScopedKeyer) SiteKey(fixturesHash string, opts SiteKeyOpts) string {
	return k.prefix + k.inner.SiteKey(fixturesHash, opts)
}

// ArtifactKey generates a prefixed key for secondary artifacts.
func (k *ScopedKeyer) ArtifactKey(siteHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(siteHash, opts)
}
