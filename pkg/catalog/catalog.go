// Package catalog owns the product dataset. The built-in catalog mirrors
// the ColdLogik datasheet; deployments can override it from a YAML or JSON
// file at startup. Once constructed a catalog is read-only.
package catalog

import (
	"errors"
	"fmt"
	"sort"

	"github.com/spf13/viper"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

// ErrEmptyCatalog means no products were available at load time. This is a
// startup configuration fault, never a per-request error.
var ErrEmptyCatalog = errors.New("product catalog is empty")

// Catalog is the loaded product set.
type Catalog struct {
	products []*models.Product
	byID     map[string]*models.Product
}

// New builds a catalog from the given products. Valve options are sorted
// ascending by capacity so selection can scan in order.
func New(products []*models.Product) (*Catalog, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}

	byID := make(map[string]*models.Product, len(products))
	for _, p := range products {
		if !p.Series.Valid() {
			return nil, fmt.Errorf("product %s has unknown series %q", p.ID, p.Series)
		}
		if _, dup := byID[p.ID]; dup {
			return nil, fmt.Errorf("duplicate product id %s", p.ID)
		}
		if p.IsPassive() {
			if p.Passive == nil {
				return nil, fmt.Errorf("passive product %s has no passive specs", p.ID)
			}
		} else if p.Fan == nil {
			return nil, fmt.Errorf("product %s has no fan specs", p.ID)
		}
		sort.SliceStable(p.ValveOptions, func(i, j int) bool {
			return p.ValveOptions[i].MaxFlowRate < p.ValveOptions[j].MaxFlowRate
		})
		byID[p.ID] = p
	}

	return &Catalog{products: products, byID: byID}, nil
}

// Load reads a product catalog from the file at path, or returns the
// built-in catalog when path is empty.
func Load(path string) (*Catalog, error) {
	if path == "" {
		return New(BuiltinProducts())
	}

	v := viper.New()
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("reading product catalog: %w", err)
	}

	var products []*models.Product
	if err := v.UnmarshalKey("products", &products); err != nil {
		return nil, fmt.Errorf("parsing product catalog: %w", err)
	}

	logger.Infof("loaded %d products from %s", len(products), path)
	return New(products)
}

// Products returns all catalog entries.
func (c *Catalog) Products() []*models.Product {
	return c.products
}

// ByID returns the product with the given ID, or nil.
func (c *Catalog) ByID(id string) *models.Product {
	return c.byID[id]
}

// BySeries returns the products of one series.
func (c *Catalog) BySeries(series models.Series) []*models.Product {
	var out []*models.Product
	for _, p := range c.products {
		if p.Series == series {
			out = append(out, p)
		}
	}
	return out
}

// Len returns the number of products.
func (c *Catalog) Len() int {
	return len(c.products)
}
