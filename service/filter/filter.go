package filter

import (
	"net/url"
	"sort"
	"strings"

	"github.com/mitchellh/mapstructure"

	entity "storefront.GO/model/entity"
)

// SortKey selects the ordering applied after filtering.
type SortKey string

const (
	SortFeatured  SortKey = "featured"
	SortNewest    SortKey = "newest"
	SortPriceAsc  SortKey = "price-asc"
	SortPriceDesc SortKey = "price-desc"
)

// CategoryAll is the category selector value meaning "no category filter".
const CategoryAll = "all"

// State is one view's transient filter selection. Not persisted; the general
// shop rebuilds it from URL query parameters for deep links.
type State struct {
	Query    string  `mapstructure:"q"`
	Category string  `mapstructure:"category"`
	MaxPrice float64 `mapstructure:"maxPrice"`
	Sort     SortKey `mapstructure:"sort"`
}

// DefaultState is the selection a fresh view starts from.
func DefaultState() State {
	return State{Category: CategoryAll, Sort: SortFeatured}
}

// StateFromQuery rebuilds a State from URL query values (deep-linking).
// Unknown keys are ignored; maxPrice is decoded weakly so "2000" works.
func StateFromQuery(values url.Values) (State, error) {
	flat := make(map[string]interface{}, len(values))
	for k, v := range values {
		if len(v) > 0 {
			flat[k] = v[0]
		}
	}
	st := DefaultState()
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		WeaklyTypedInput: true,
		Result:           &st,
	})
	if err != nil {
		return st, err
	}
	if err := dec.Decode(flat); err != nil {
		return DefaultState(), err
	}
	if st.Category == "" {
		st.Category = CategoryAll
	}
	if st.Sort == "" {
		st.Sort = SortFeatured
	}
	return st, nil
}

// View is the per-page category rule applied before any user filter. The
// general shop excludes the reserved category entirely; the accessories view
// restricts to it.
type View struct {
	ExcludeCategory  string
	RestrictCategory string
}

// GeneralShop returns the view rule for the main shop page.
func GeneralShop(reserved string) View {
	return View{ExcludeCategory: reserved}
}

// Accessories returns the view rule for the accessory sub-catalog.
func Accessories(reserved string) View {
	return View{RestrictCategory: reserved}
}

// Derive runs the full pipeline over items and returns the displayed
// sequence. The step order is a contract: view rule, free-text match,
// category selection, price ceiling, then a stable sort. An empty result is
// a valid state; there is no fallback to "show all".
func Derive(items []entity.Product, view View, st State) []entity.Product {
	out := make([]entity.Product, 0, len(items))
	for _, p := range items {
		if !view.allows(p) {
			continue
		}
		if !matchesQuery(p, st.Query) {
			continue
		}
		if !matchesCategory(p, st.Category) {
			continue
		}
		if st.MaxPrice > 0 && p.Price > st.MaxPrice {
			continue
		}
		out = append(out, p)
	}
	sortItems(out, st.Sort)
	return out
}

func (v View) allows(p entity.Product) bool {
	if v.RestrictCategory != "" && !strings.EqualFold(p.Category, v.RestrictCategory) {
		return false
	}
	if v.ExcludeCategory != "" && strings.EqualFold(p.Category, v.ExcludeCategory) {
		return false
	}
	return true
}

// matchesQuery is a case-insensitive substring match on name OR category.
func matchesQuery(p entity.Product, query string) bool {
	if query == "" {
		return true
	}
	q := strings.ToLower(query)
	return strings.Contains(strings.ToLower(p.Name), q) ||
		strings.Contains(strings.ToLower(p.Category), q)
}

// matchesCategory is a case-insensitive equality check against the product
// category OR sub-category.
func matchesCategory(p entity.Product, selected string) bool {
	if selected == "" || strings.EqualFold(selected, CategoryAll) {
		return true
	}
	return strings.EqualFold(p.Category, selected) ||
		strings.EqualFold(p.SubCategory, selected)
}

// sortItems orders items in place. All sorts are stable: ties keep their
// relative input order.
func sortItems(items []entity.Product, key SortKey) {
	switch key {
	case SortNewest:
		sort.SliceStable(items, func(i, j int) bool {
			a, b := items[i], items[j]
			if a.CreatedAt != nil && b.CreatedAt != nil {
				return a.CreatedAt.After(*b.CreatedAt)
			}
			// Flag comparison when timestamps are unavailable for the pair:
			// new arrivals sort first, with no further tiebreak.
			return a.IsNewArrival && !b.IsNewArrival
		})
	case SortPriceAsc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price < items[j].Price
		})
	case SortPriceDesc:
		sort.SliceStable(items, func(i, j int) bool {
			return items[i].Price > items[j].Price
		})
	default:
		// featured preserves upstream order
	}
}
