package catalog

import "fmt"

// Category is the closed set of product categories the storefront sells.
type Category string

const (
	CategoryGold    Category = "gold"
	CategorySilver  Category = "silver"
	CategoryDiamond Category = "diamond"
	CategoryGems    Category = "gems"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryGold, CategorySilver, CategoryDiamond, CategoryGems:
		return true
	}
	return false
}

// Badge is a promotional tag with no behavioral effect.
type Badge string

const (
	BadgeNew     Badge = "new"
	BadgeSale    Badge = "sale"
	BadgePopular Badge = "popular"
)

type Product struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	PriceCents  int64    `json:"price_cents"`
	Image       string   `json:"image"`
	Description string   `json:"description"`
	Category    Category `json:"category"`
	Badge       Badge    `json:"badge,omitempty"`
	Featured    bool     `json:"featured,omitempty"`

	// Clarity applies to diamonds, GemType to gems. Both are free-form.
	Clarity string `json:"clarity,omitempty"`
	GemType string `json:"gem_type,omitempty"`
}

// ValidateProducts checks catalog invariants: unique ids, known categories,
// non-negative prices. Violations are boundary errors, they must never reach
// the stores.
func ValidateProducts(products []Product) error {
	seen := make(map[string]struct{}, len(products))

	for i, p := range products {
		if p.ID == "" {
			return fmt.Errorf("product %d: empty id", i)
		}
		if _, dup := seen[p.ID]; dup {
			return fmt.Errorf("product %q: duplicate id", p.ID)
		}
		seen[p.ID] = struct{}{}

		if !p.Category.Valid() {
			return fmt.Errorf("product %q: unknown category %q", p.ID, p.Category)
		}
		if p.PriceCents < 0 {
			return fmt.Errorf("product %q: negative price %d", p.ID, p.PriceCents)
		}
	}

	return nil
}
