package recommend

import "glassesfinder/pkg/types"

// Predicate is a secondary results-page filter applied on top of the tier
// budget window.
type Predicate func(types.CatalogItem) bool

// ByFrameStyle matches items of one frame style. An empty style matches
// everything.
func ByFrameStyle(style string) Predicate {
	if style == "" {
		return func(types.CatalogItem) bool { return true }
	}
	want := types.FrameStyle(style)
	return func(item types.CatalogItem) bool {
		return item.FrameStyle == want
	}
}

// Price brackets selectable on the results page.
var priceBrackets = map[string]types.BudgetRange{
	"under-50": {MinCents: 0, MaxCents: 49_99},
	"50-100":   {MinCents: 50_00, MaxCents: 100_00},
	"100-200":  {MinCents: 100_00, MaxCents: 200_00},
	"200-plus": {MinCents: 200_00, MaxCents: 1 << 30},
}

// ByPriceBracket matches items inside a named price bracket. Empty or
// unrecognized bracket names match everything.
func ByPriceBracket(bracket string) Predicate {
	window, ok := priceBrackets[bracket]
	if !ok {
		return func(types.CatalogItem) bool { return true }
	}
	return func(item types.CatalogItem) bool {
		return window.Contains(item.PriceCents)
	}
}

// Apply keeps the items matching every predicate, preserving order.
func Apply(items []types.CatalogItem, preds ...Predicate) []types.CatalogItem {
	out := make([]types.CatalogItem, 0, len(items))
outer:
	for _, item := range items {
		for _, pred := range preds {
			if !pred(item) {
				continue outer
			}
		}
		out = append(out, item)
	}
	return out
}
