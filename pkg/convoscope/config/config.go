package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/cognicore/convoscope/pkg/convoscope/internalerr"
	"github.com/cognicore/convoscope/pkg/convoscope/normalize"
	"github.com/cognicore/convoscope/pkg/convoscope/taxonomy"
)

// TaxonomyFile is the YAML layout for a custom taxonomy. Entries are a list,
// not a map: classification tie-breaking follows entry order, and YAML maps
// would not preserve it.
type TaxonomyFile struct {
	Entries []TaxonomyEntry `yaml:"entries"`
}

// TaxonomyEntry is one category/subcategory/keywords triple.
type TaxonomyEntry struct {
	Category    string   `yaml:"category"`
	Subcategory string   `yaml:"subcategory"`
	Keywords    []string `yaml:"keywords"`
}

// LoadTaxonomy loads a taxonomy from a YAML file.
func LoadTaxonomy(path string) (*taxonomy.Taxonomy, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file TaxonomyFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	if len(file.Entries) == 0 {
		return nil, fmt.Errorf("%w: taxonomy file has no entries", internalerr.ErrInvalidConfig)
	}

	tax := taxonomy.New(nil)
	for i, e := range file.Entries {
		if e.Category == "" || e.Subcategory == "" {
			return nil, fmt.Errorf("%w: taxonomy entry %d is missing category or subcategory", internalerr.ErrInvalidConfig, i)
		}
		tax.Add(e.Category, e.Subcategory, e.Keywords)
	}
	return tax, nil
}

// FiltersFile is the YAML layout for the noise and greeting word lists.
type FiltersFile struct {
	NoiseWords    []string `yaml:"noise_words"`
	GreetingWords []string `yaml:"greeting_words"`
}

// LoadFilters loads noise/greeting filters from a YAML file.
func LoadFilters(path string) (*normalize.Filters, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var file FiltersFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("%w: %v", internalerr.ErrInvalidConfig, err)
	}
	return normalize.NewFilters(file.NoiseWords, file.GreetingWords), nil
}

// Loader loads all configuration files and constructs components.
type Loader struct {
	TaxonomyPath string
	FiltersPath  string
}

// Components holds the loaded configuration components.
type Components struct {
	Taxonomy *taxonomy.Taxonomy
	Filters  *normalize.Filters
}

// Load reads the configured files and returns initialized components.
// Empty paths fall back to the built-in defaults.
func (l *Loader) Load() (*Components, error) {
	comp := &Components{}

	if l.TaxonomyPath != "" {
		tax, err := LoadTaxonomy(l.TaxonomyPath)
		if err != nil {
			return nil, fmt.Errorf("load taxonomy: %w", err)
		}
		comp.Taxonomy = tax
	} else {
		comp.Taxonomy = taxonomy.Default()
	}

	if l.FiltersPath != "" {
		filters, err := LoadFilters(l.FiltersPath)
		if err != nil {
			return nil, fmt.Errorf("load filters: %w", err)
		}
		comp.Filters = filters
	} else {
		comp.Filters = normalize.DefaultFilters()
	}

	return comp, nil
}
