package repository

import (
	_ "embed"
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/aliskhannn/git-tutor/internal/domain/entities"
)

//go:embed data/quizzes.yaml
var quizzesYAML []byte

var ErrInvalidCatalog = errors.New("invalid quiz catalog")

// CatalogRepository provides read-only access to the quiz modules.
// The default table is compiled into the binary.
type CatalogRepository struct {
	modules []entities.Module
	index   map[string]int
}

// NewCatalogRepository loads the compiled-in quiz catalog.
func NewCatalogRepository() (*CatalogRepository, error) {
	return ParseCatalog(quizzesYAML)
}

// ParseCatalog builds a catalog from a YAML document with a top-level
// "modules" list.
func ParseCatalog(data []byte) (*CatalogRepository, error) {
	var doc struct {
		Modules []entities.Module `yaml:"modules"`
	}
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("failed to unmarshal quiz catalog: %w", err)
	}

	return NewCatalog(doc.Modules)
}

// NewCatalog builds a catalog from modules after validating them.
// Module order is kept as given.
func NewCatalog(modules []entities.Module) (*CatalogRepository, error) {
	if len(modules) == 0 {
		return nil, fmt.Errorf("%w: no modules", ErrInvalidCatalog)
	}

	index := make(map[string]int, len(modules))
	for i, m := range modules {
		if err := validate.Struct(m); err != nil {
			return nil, fmt.Errorf("%w: module %d (%q): %s", ErrInvalidCatalog, i, m.ID, describeValidation(err))
		}
		if _, dup := index[m.ID]; dup {
			return nil, fmt.Errorf("%w: duplicate module id %q", ErrInvalidCatalog, m.ID)
		}
		index[m.ID] = i
	}

	return &CatalogRepository{
		modules: modules,
		index:   index,
	}, nil
}

// GetModule returns the module with the given id.
// The boolean is false for unknown ids.
func (r *CatalogRepository) GetModule(id string) (entities.Module, bool) {
	i, ok := r.index[id]
	if !ok {
		return entities.Module{}, false
	}
	return r.modules[i], true
}

// Modules returns all modules in catalog order.
func (r *CatalogRepository) Modules() []entities.Module {
	out := make([]entities.Module, len(r.modules))
	copy(out, r.modules)
	return out
}

// Count returns the number of modules.
func (r *CatalogRepository) Count() int {
	return len(r.modules)
}
