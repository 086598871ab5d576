// Package catalog holds the frame inventory the recommender draws from.
// The store is immutable after construction; every item carries a stable
// derived ID and a resolved image URL.
package catalog

import (
	"strings"

	"glassesfinder/internal/images"
	"glassesfinder/pkg/types"
)

// Store is a read-only collection of catalog items.
type Store struct {
	items []types.CatalogItem
}

// NewStore builds a store from the given items, deriving missing IDs and
// image URLs. Items are copied, so the caller's slice stays untouched.
func NewStore(items []types.CatalogItem) *Store {
	owned := make([]types.CatalogItem, len(items))
	copy(owned, items)

	for i := range owned {
		if owned[i].ID == "" {
			owned[i].ID = ItemID(owned[i].Retailer, owned[i].Name)
		}
		if owned[i].ImageURL == "" {
			owned[i].ImageURL = images.URLFor(owned[i])
		}
	}

	return &Store{items: owned}
}

// NewDefaultStore builds a store over the built-in sample inventory.
func NewDefaultStore() *Store {
	return NewStore(buildDefaultItems())
}

// Items returns a copy of the inventory. Callers may sort or filter the
// result freely.
func (s *Store) Items() []types.CatalogItem {
	out := make([]types.CatalogItem, len(s.items))
	copy(out, s.items)
	return out
}

func (s *Store) Len() int {
	return len(s.items)
}

// ItemID derives a stable slug from retailer and product name, for example
// "warby-parker-griffin". Runs of non-alphanumeric characters collapse into
// a single hyphen.
func ItemID(retailer, name string) string {
	var b strings.Builder
	pendingHyphen := false

	for _, r := range strings.ToLower(retailer + " " + name) {
		isAlnum := (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9')
		if !isAlnum {
			pendingHyphen = b.Len() > 0
			continue
		}
		if pendingHyphen {
			b.WriteByte('-')
			pendingHyphen = false
		}
		b.WriteRune(r)
	}

	return b.String()
}

// Summary aggregates inventory stats for the CLI and the welcome page.
type Summary struct {
	Total         int
	MinPriceCents int
	MaxPriceCents int
	AvgPriceCents int

	// How many items fall inside each tier's budget window.
	AvailableByTier map[types.TierKey]int
}

// Summarize computes a Summary over the store against the given tier
// budget windows.
func (s *Store) Summarize(budgets map[types.TierKey]types.BudgetRange) Summary {
	sum := Summary{
		Total:           len(s.items),
		AvailableByTier: make(map[types.TierKey]int, len(budgets)),
	}
	if sum.Total == 0 {
		return sum
	}

	totalCents := 0
	sum.MinPriceCents = s.items[0].PriceCents
	sum.MaxPriceCents = s.items[0].PriceCents

	for _, item := range s.items {
		totalCents += item.PriceCents
		if item.PriceCents < sum.MinPriceCents {
			sum.MinPriceCents = item.PriceCents
		}
		if item.PriceCents > sum.MaxPriceCents {
			sum.MaxPriceCents = item.PriceCents
		}
		for tier, budget := range budgets {
			if budget.Contains(item.PriceCents) {
				sum.AvailableByTier[tier]++
			}
		}
	}

	sum.AvgPriceCents = totalCents / sum.Total
	return sum
}
