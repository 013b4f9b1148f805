package cache

// ScopedKeyer wraps a Keyer with a prefix for multi-tenant isolation.
// This is useful when one cache backend serves several plants or
// deployments that need separate namespaces.
//
// Example usage:
//
//	// Plant-specific keys
//	plantKeyer := NewScopedKeyer(NewDefaultKeyer(), "plant:leipzig:")
//
//	// Global keys
//	globalKeyer := NewDefaultKeyer()
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

// ObservationKey generates a prefixed key for fetched observation data.
func (k *ScopedKeyer) ObservationKey(endpoint string, opts ObservationKeyOpts) string {
	return k.prefix + k.inner.ObservationKey(endpoint, opts)
}

// FigureKey generates a prefixed key for figure caching.
func (k *ScopedKeyer) FigureKey(dataHash string, opts FigureKeyOpts) string {
	return k.prefix + k.inner.FigureKey(dataHash, opts)
}

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(figureHash string, opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(figureHash, opts)
}
