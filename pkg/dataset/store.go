package dataset

import (
	"embed"
	"encoding/json"
	stderrors "errors"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	"github.com/sgtmarmite/wtfcesko/pkg/errors"
)

//go:embed data/*.json
var embedded embed.FS

// Fixture names (file names under data/ without the .json extension).
const (
	InflationVsWages     = "inflation-vs-wages"
	GDPVsWages           = "gdp-vs-wages"
	LaborTaxBreakdown    = "labor-tax-breakdown"
	TaxBurden            = "tax-burden"
	FoodPrices           = "food-prices"
	EnergyPrices         = "energy-prices"
	HousingAffordability = "housing-affordability"
	RentVsWages          = "rent-vs-wages"
	HousingConstruction  = "housing-construction"
	Demographics         = "demographics"
	Healthcare           = "healthcare"
	PensionsVsWages      = "pensions-vs-wages"
	PensionSpending      = "pension-spending"
	GovernmentDebt       = "government-debt"
	DebtServicing        = "debt-servicing"
	TaxBurdenTime        = "tax-burden-time"
	Productivity         = "productivity"
	EducationSpending    = "education-spending"
	RDSpending           = "rd-spending"
	CorruptionDigital    = "corruption-digital"
	WageReality          = "wage-reality"
	VotingByAge          = "voting-by-age"
)

// Store decodes fixtures from a file system and memoizes the results.
// It is safe for concurrent use.
type Store struct {
	fsys fs.FS

	mu         sync.Mutex
	datasets   map[string]Dataset
	breakdowns map[string]Breakdown
}

// NewStore creates a store reading "<name>.json" files from the root of fsys.
func NewStore(fsys fs.FS) *Store {
	return &Store{
		fsys:       fsys,
		datasets:   make(map[string]Dataset),
		breakdowns: make(map[string]Breakdown),
	}
}

var (
	defaultOnce  sync.Once
	defaultStore *Store
)

// Default returns the store backed by the fixtures embedded in the binary.
func Default() *Store {
	defaultOnce.Do(func() {
		sub, err := fs.Sub(embedded, "data")
		if err != nil {
			// data/ is embedded at compile time; Sub only fails on a bad pattern.
			panic(err)
		}
		defaultStore = NewStore(sub)
	})
	return defaultStore
}

// Names lists the available fixtures in lexical order.
func (s *Store) Names() ([]string, error) {
	matches, err := fs.Glob(s.fsys, "*.json")
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "list fixtures")
	}
	names := make([]string, len(matches))
	for i, m := range matches {
		names[i] = strings.TrimSuffix(path.Base(m), ".json")
	}
	sort.Strings(names)
	return names, nil
}

// Raw returns the undecoded bytes of a fixture.
func (s *Store) Raw(name string) ([]byte, error) {
	data, err := fs.ReadFile(s.fsys, name+".json")
	if stderrors.Is(err, fs.ErrNotExist) {
		return nil, errors.New(errors.ErrCodeDatasetNotFound, "fixture %q not found", name)
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "read fixture %q", name)
	}
	return data, nil
}

// Dataset decodes a labels+datasets fixture.
func (s *Store) Dataset(name string) (Dataset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if d, ok := s.datasets[name]; ok {
		return d, nil
	}
	var d Dataset
	if err := s.decode(name, &d); err != nil {
		return Dataset{}, err
	}
	if len(d.Datasets) == 0 {
		return Dataset{}, errors.New(errors.ErrCodeInvalidDataset, "fixture %q has no datasets", name)
	}
	s.datasets[name] = d
	return d, nil
}

// Breakdown decodes a doughnut-shaped fixture.
func (s *Store) Breakdown(name string) (Breakdown, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if b, ok := s.breakdowns[name]; ok {
		return b, nil
	}
	var b Breakdown
	if err := s.decode(name, &b); err != nil {
		return Breakdown{}, err
	}
	s.breakdowns[name] = b
	return b, nil
}

// decode must be called with s.mu held.
func (s *Store) decode(name string, v any) error {
	data, err := s.Raw(name)
	if err != nil {
		return err
	}
	if err := json.Unmarshal(data, v); err != nil {
		return errors.Wrap(errors.GetCodeOr(err, errors.ErrCodeInvalidDataset), err, "decode fixture %q", name)
	}
	return nil
}
