// Package selection picks the door product to quote for a cooling load.
package selection

import (
	"errors"
	"fmt"

	"github.com/grit-hub-leg/thermal-calculator-2/internal/logger"
	"github.com/grit-hub-leg/thermal-calculator-2/pkg/models"
)

var (
	// ErrEmptyCatalog means the process was started without any products.
	ErrEmptyCatalog = errors.New("product catalog is empty")

	// ErrUnknownProduct means an explicitly requested product ID does not
	// exist in the catalog.
	ErrUnknownProduct = errors.New("unknown product")
)

// Criteria narrows the candidate set before capacity ranking.
type Criteria struct {
	// RackType filters by rack form factor, for example "42U600". Ignored
	// when no catalog product matches it.
	RackType string

	// PassivePreferred short-circuits to the smallest sufficient passive
	// product when one exists, even if a smaller active product would do.
	PassivePreferred bool
}

// Selector ranks a fixed catalog. The product slice is treated as
// read-only for the selector's lifetime.
type Selector struct {
	products []*models.Product
}

// NewSelector returns a selector over the given catalog. An empty catalog
// is a configuration fault surfaced at construction.
func NewSelector(products []*models.Product) (*Selector, error) {
	if len(products) == 0 {
		return nil, ErrEmptyCatalog
	}
	return &Selector{products: products}, nil
}

// ByID returns the product with the given ID.
func (s *Selector) ByID(id string) (*models.Product, error) {
	for _, p := range s.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownProduct, id)
}

// Select returns the best product for the load. A product is returned even
// when nothing in the catalog can carry the load; the caller detects the
// shortfall by comparing the load against the product's capacity.
func (s *Selector) Select(coolingKW float64, criteria Criteria) *models.Product {
	candidates := s.filterByRackType(criteria.RackType)

	if criteria.PassivePreferred {
		if p := smallestSufficientPassive(candidates, coolingKW); p != nil {
			logger.WithProduct(p.ID).Debugf("passive preference satisfied at %.1f kW", coolingKW)
			return p
		}
	}

	if p := closestSufficient(candidates, coolingKW); p != nil {
		return p
	}

	// Nothing covers the load; quote the biggest door as a best effort.
	largest := candidates[0]
	for _, p := range candidates[1:] {
		if p.MaxCoolingCapacityKW > largest.MaxCoolingCapacityKW {
			largest = p
		}
	}
	logger.WithProduct(largest.ID).Warnf(
		"no product covers %.1f kW, best effort is %.1f kW", coolingKW, largest.MaxCoolingCapacityKW)
	return largest
}

// filterByRackType keeps products matching the rack type, falling back to
// the full catalog when the filter would leave nothing.
func (s *Selector) filterByRackType(rackType string) []*models.Product {
	if rackType == "" {
		return s.products
	}
	var filtered []*models.Product
	for _, p := range s.products {
		if p.RackType == rackType {
			filtered = append(filtered, p)
		}
	}
	if len(filtered) == 0 {
		logger.Warnf("no products match rack type %q, considering full catalog", rackType)
		return s.products
	}
	return filtered
}

func smallestSufficientPassive(products []*models.Product, coolingKW float64) *models.Product {
	var best *models.Product
	for _, p := range products {
		if !p.IsPassive() || p.MaxCoolingCapacityKW < coolingKW {
			continue
		}
		if best == nil || p.MaxCoolingCapacityKW < best.MaxCoolingCapacityKW {
			best = p
		}
	}
	return best
}

func closestSufficient(products []*models.Product, coolingKW float64) *models.Product {
	var best *models.Product
	for _, p := range products {
		if p.MaxCoolingCapacityKW < coolingKW {
			continue
		}
		if best == nil || p.MaxCoolingCapacityKW < best.MaxCoolingCapacityKW {
			best = p
		}
	}
	return best
}
