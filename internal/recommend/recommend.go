// Package recommend filters and ranks catalog items against a tier's
// budget window.
package recommend

import (
	"sort"

	"glassesfinder/pkg/types"
)

// TopN caps how many items the results page highlights.
const TopN = 10

// Recommend returns the items whose price falls inside the budget window,
// sorted price ascending. Equal-priced items keep their catalog order. The
// caller owns the input slice ordering; it is not modified.
func Recommend(items []types.CatalogItem, budget types.BudgetRange) (*types.RecommendationResult, error) {
	if !budget.Valid() {
		return nil, types.NewServiceError("recommend", "budget range is invalid")
	}

	matched := make([]types.CatalogItem, 0, len(items))
	for _, item := range items {
		if budget.Contains(item.PriceCents) {
			matched = append(matched, item)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].PriceCents < matched[j].PriceCents
	})

	top := matched
	if len(top) > TopN {
		top = top[:TopN]
	}

	counts := make(map[types.FrameStyle]int)
	for _, item := range matched {
		counts[item.FrameStyle]++
	}

	return &types.RecommendationResult{
		BudgetRange:  budget,
		Items:        matched,
		Top:          top,
		TotalOptions: len(matched),
		CountByStyle: counts,
	}, nil
}
