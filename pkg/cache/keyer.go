package cache

// ArtifactKeyOpts lists every input that changes a rendered artifact.
type ArtifactKeyOpts struct {
	Value       string `json:"value"` // formatted, so NaN and ±Inf hash distinctly
	Max         int    `json:"max"`
	Title       string `json:"title"`
	Unit        string `json:"unit"`
	Color       string `json:"color"`
	Gradient    bool   `json:"gradient"`
	Format      string `json:"format"`
	Size        int    `json:"size"`
	Segments    int    `json:"segments"`
	Palette     string `json:"palette"`
	Theme       string `json:"theme"`
	Orientation string `json:"orientation"`
	Clamp       string `json:"clamp"`
	Renderer    string `json:"renderer"`
}

// Keyer derives cache keys.
type Keyer interface {
	ArtifactKey(opts ArtifactKeyOpts) string
}

// DefaultKeyer hashes key options into "artifact:<sha256>" keys.
type DefaultKeyer struct{}

// NewDefaultKeyer returns the default keyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey generates a key for artifact caching.
func (DefaultKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return hashKey("artifact", opts)
}

// ScopedKeyer wraps a Keyer with a prefix so several deployments can share
// one Redis without seeing each other's entries.
//
//	keyer := NewScopedKeyer(NewDefaultKeyer(), "speedo:v1:")
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

// ArtifactKey generates a prefixed key for artifact caching.
func (k *ScopedKeyer) ArtifactKey(opts ArtifactKeyOpts) string {
	return k.prefix + k.inner.ArtifactKey(opts)
}
