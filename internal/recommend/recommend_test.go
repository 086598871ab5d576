package recommend

import (
	"fmt"
	"testing"

	"glassesfinder/internal/catalog"
	"glassesfinder/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testItems() []types.CatalogItem {
	prices := map[string]int{
		"Caldwell":    25_00,
		"Burke":       35_00,
		"Durand":      45_00,
		"Haskell":     65_00,
		"Welty":       85_00,
		"Griffin":     95_00,
		"Percey":      95_00,
		"Chamberlain": 145_00,
	}
	styles := map[string]types.FrameStyle{
		"Caldwell":    types.FrameStyleClassic,
		"Burke":       types.FrameStyleRound,
		"Durand":      types.FrameStyleRectangular,
		"Haskell":     types.FrameStyleCatEye,
		"Welty":       types.FrameStyleSquare,
		"Griffin":     types.FrameStyleRound,
		"Percey":      types.FrameStyleSquare,
		"Chamberlain": types.FrameStyleAviator,
	}

	order := []string{"Griffin", "Percey", "Chamberlain", "Durand", "Burke", "Caldwell", "Haskell", "Welty"}
	items := make([]types.CatalogItem, 0, len(order))
	for _, name := range order {
		items = append(items, types.CatalogItem{
			ID:         catalog.ItemID("Warby Parker", name),
			Retailer:   "Warby Parker",
			Name:       name,
			PriceCents: prices[name],
			FrameStyle: styles[name],
		})
	}
	return items
}

func names(items []types.CatalogItem) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.Name)
	}
	return out
}

func TestRecommend_BudgetWindows(t *testing.T) {
	tests := []struct {
		name      string
		budget    types.BudgetRange
		wantNames []string
	}{
		{
			name:      "medicaid window keeps the cheapest frames",
			budget:    types.BudgetRange{MinCents: 0, MaxCents: 50_00},
			wantNames: []string{"Caldwell", "Burke", "Durand"},
		},
		{
			name:      "fifty to one hundred is inclusive on both ends",
			budget:    types.BudgetRange{MinCents: 50_00, MaxCents: 100_00},
			wantNames: []string{"Haskell", "Welty", "Griffin", "Percey"},
		},
		{
			name:      "wide window returns everything price ascending",
			budget:    types.BudgetRange{MinCents: 0, MaxCents: 500_00},
			wantNames: []string{"Caldwell", "Burke", "Durand", "Haskell", "Welty", "Griffin", "Percey", "Chamberlain"},
		},
		{
			name:      "window below every price matches nothing",
			budget:    types.BudgetRange{MinCents: 0, MaxCents: 10_00},
			wantNames: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recommend(testItems(), tt.budget)
			require.NoError(t, err)

			assert.Equal(t, tt.wantNames, names(result.Items))
			assert.Equal(t, len(tt.wantNames), result.TotalOptions)
			assert.Equal(t, tt.budget, result.BudgetRange)
		})
	}
}

// Griffin and Percey both cost $95; catalog order breaks the tie.
func TestRecommend_StableTieBreak(t *testing.T) {
	result, err := Recommend(testItems(), types.BudgetRange{MinCents: 90_00, MaxCents: 100_00})
	require.NoError(t, err)

	assert.Equal(t, []string{"Griffin", "Percey"}, names(result.Items))
}

func TestRecommend_TopCap(t *testing.T) {
	items := make([]types.CatalogItem, 0, 25)
	for i := 0; i < 25; i++ {
		items = append(items, types.CatalogItem{
			Name:       fmt.Sprintf("frame-%02d", i),
			PriceCents: (25 - i) * 100,
			FrameStyle: types.FrameStyleClassic,
		})
	}

	result, err := Recommend(items, types.BudgetRange{MinCents: 0, MaxCents: 500_00})
	require.NoError(t, err)

	assert.Equal(t, 25, result.TotalOptions)
	assert.Len(t, result.Items, 25)
	require.Len(t, result.Top, TopN)

	// Top is the cheapest slice of the full ranking.
	assert.Equal(t, result.Items[:TopN], result.Top)
	assert.Equal(t, 100, result.Top[0].PriceCents)
}

func TestRecommend_InvalidBudget(t *testing.T) {
	tests := []struct {
		name   string
		budget types.BudgetRange
	}{
		{"min above max", types.BudgetRange{MinCents: 100_00, MaxCents: 50_00}},
		{"negative min", types.BudgetRange{MinCents: -1, MaxCents: 50_00}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := Recommend(testItems(), tt.budget)
			assert.Nil(t, result)

			var svcErr *types.ServiceError
			require.ErrorAs(t, err, &svcErr)
			assert.Equal(t, "recommend", svcErr.Op)
		})
	}
}

func TestRecommend_CountByStyle(t *testing.T) {
	result, err := Recommend(testItems(), types.BudgetRange{MinCents: 0, MaxCents: 500_00})
	require.NoError(t, err)

	assert.Equal(t, map[types.FrameStyle]int{
		types.FrameStyleClassic:     1,
		types.FrameStyleRound:       2,
		types.FrameStyleRectangular: 1,
		types.FrameStyleCatEye:      1,
		types.FrameStyleSquare:      2,
		types.FrameStyleAviator:     1,
	}, result.CountByStyle)
}

func TestRecommend_DoesNotMutateInput(t *testing.T) {
	items := testItems()
	original := names(items)

	_, err := Recommend(items, types.BudgetRange{MinCents: 0, MaxCents: 500_00})
	require.NoError(t, err)

	assert.Equal(t, original, names(items))
}
