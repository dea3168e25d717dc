package registry

import (
	"sync"

	"github.com/sgtmarmite/wtfcesko/pkg/chart"
	"github.com/sgtmarmite/wtfcesko/pkg/dataset"
	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/style"
)

// canvasPrefix prefixes every canvas element id.
const canvasPrefix = "chart-"

// CanvasID returns the id of the canvas element a chart is drawn into.
func CanvasID(key string) string {
	return canvasPrefix + key
}

// Shape names the kind of chart an entry builds.
type Shape string

// Chart shapes.
const (
	ShapeLine          Shape = "line"
	ShapeHorizontalBar Shape = "horizontal-bar"
	ShapeGroupedBar    Shape = "grouped-bar"
	ShapeDoughnut      Shape = "doughnut"
	ShapeCombo         Shape = "bar-line-combo"
	ShapeStackedBar    Shape = "stacked-bar"
)

// Factory builds a fresh chart configuration for a device class.
// Factories are pure: they only read the fixture they close over.
type Factory func(d style.Device) chart.Config

// Entry describes one chart on the page.
type Entry struct {
	Key     string // Stable identifier; the canvas id is CanvasID(Key)
	Title   string // Heading shown above the chart
	Source  string // Data source credit shown below the chart
	Dataset string // Fixture the chart is built from
	Shape   Shape

	factory Factory
}

// Canvas returns the canvas element id for e.
func (e Entry) Canvas() string { return CanvasID(e.Key) }

// Build returns e's configuration for d.
func (e Entry) Build(d style.Device) chart.Config { return e.factory(d) }

// Mount pairs a canvas id with the configuration to draw into it.
type Mount struct {
	Canvas string       `json:"canvas"`
	Config chart.Config `json:"config"`
}

// Registry is the ordered set of charts on the page.
// It is immutable after construction and safe for concurrent use.
type Registry struct {
	entries []Entry
	index   map[string]int
	acts    []Act
}

// New decodes the fixtures every chart needs from store and builds the
// registry. It fails if a fixture is missing or malformed.
func New(store *dataset.Store) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(definitions))}
	for _, def := range definitions {
		if err := errors.ValidateChartKey(def.key); err != nil {
			return nil, err
		}
		if _, dup := r.index[def.key]; dup {
			return nil, errors.New(errors.ErrCodeInternal, "duplicate chart key %q", def.key)
		}
		factory, err := def.load(store, def.fixture)
		if err != nil {
			return nil, errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidDataset), err, "chart %q", def.key)
		}
		r.index[def.key] = len(r.entries)
		r.entries = append(r.entries, Entry{
			Key:     def.key,
			Title:   def.title,
			Source:  def.source,
			Dataset: def.fixture,
			Shape:   def.shape,
			factory: factory,
		})
	}

	r.acts = acts()
	if err := r.checkActs(); err != nil {
		return nil, err
	}
	return r, nil
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
	defaultErr  error
)

// Default returns the registry built from the embedded fixtures.
func Default() (*Registry, error) {
	defaultOnce.Do(func() {
		defaultReg, defaultErr = New(dataset.Default())
	})
	return defaultReg, defaultErr
}

// Len returns the number of charts.
func (r *Registry) Len() int { return len(r.entries) }

// Keys returns chart keys in page order.
func (r *Registry) Keys() []string {
	keys := make([]string, len(r.entries))
	for i, e := range r.entries {
		keys[i] = e.Key
	}
	return keys
}

// Entries returns a copy of all entries in page order.
func (r *Registry) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Get looks up an entry by key.
func (r *Registry) Get(key string) (Entry, bool) {
	i, ok := r.index[key]
	if !ok {
		return Entry{}, false
	}
	return r.entries[i], true
}

// Mount builds the canvas/config pair for one chart.
func (r *Registry) Mount(key string, d style.Device) (Mount, error) {
	e, ok := r.Get(key)
	if !ok {
		return Mount{}, errors.New(errors.ErrCodeChartNotFound, "unknown chart %q", key)
	}
	return Mount{Canvas: e.Canvas(), Config: e.Build(d)}, nil
}

// MountAll builds every chart for d, keyed by chart key.
func (r *Registry) MountAll(d style.Device) map[string]Mount {
	out := make(map[string]Mount, len(r.entries))
	for _, e := range r.entries {
		out[e.Key] = Mount{Canvas: e.Canvas(), Config: e.Build(d)}
	}
	return out
}

// Acts returns the narrative sections in page order.
func (r *Registry) Acts() []Act {
	out := make([]Act, len(r.acts))
	for i, a := range r.acts {
		a.Keys = append([]string(nil), a.Keys...)
		out[i] = a
	}
	return out
}

// checkActs verifies every chart belongs to exactly one act.
func (r *Registry) checkActs() error {
	seen := make(map[string]string, len(r.entries))
	for _, a := range r.acts {
		for _, k := range a.Keys {
			if _, ok := r.index[k]; !ok {
				return errors.New(errors.ErrCodeChartNotFound, "act %s references unknown chart %q", a.ID, k)
			}
			if prev, dup := seen[k]; dup {
				return errors.New(errors.ErrCodeInternal, "chart %q appears in %s and %s", k, prev, a.ID)
			}
			seen[k] = a.ID
		}
	}
	for _, e := range r.entries {
		if _, ok := seen[e.Key]; !ok {
			return errors.New(errors.ErrCodeInternal, "chart %q is not part of any act", e.Key)
		}
	}
	return nil
}
