package types

// RecommendationResult holds the budget-filtered catalog, price ascending.
// Top is a display truncation of Items, not a separate ranking.
type RecommendationResult struct {
	BudgetRange  BudgetRange
	Items        []CatalogItem
	Top          []CatalogItem
	TotalOptions int
	CountByStyle map[FrameStyle]int
}
