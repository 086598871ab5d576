package recommend

import (
	"testing"

	"glassesfinder/pkg/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByFrameStyle(t *testing.T) {
	tests := []struct {
		name      string
		style     string
		wantNames []string
	}{
		{"round frames only", "round", []string{"Griffin", "Burke"}},
		{"square frames only", "square", []string{"Percey", "Welty"}},
		{"empty style matches everything", "", names(testItems())},
		{"unknown style matches nothing", "hexagonal", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Apply(testItems(), ByFrameStyle(tt.style))
			assert.Equal(t, tt.wantNames, names(filtered))
		})
	}
}

func TestByPriceBracket(t *testing.T) {
	tests := []struct {
		name      string
		bracket   string
		wantNames []string
	}{
		{"under fifty", "under-50", []string{"Durand", "Burke", "Caldwell"}},
		{"fifty to one hundred", "50-100", []string{"Griffin", "Percey", "Haskell", "Welty"}},
		{"one hundred to two hundred", "100-200", []string{"Chamberlain"}},
		{"two hundred plus", "200-plus", []string{}},
		{"empty bracket matches everything", "", names(testItems())},
		{"unknown bracket matches everything", "cheap", names(testItems())},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered := Apply(testItems(), ByPriceBracket(tt.bracket))
			assert.Equal(t, tt.wantNames, names(filtered))
		})
	}
}

func TestApply_Conjunction(t *testing.T) {
	filtered := Apply(
		testItems(),
		ByFrameStyle("square"),
		ByPriceBracket("50-100"),
	)

	// Percey and Welty are square and both inside $50-$100.
	require.Len(t, filtered, 2)
	assert.Equal(t, []string{"Percey", "Welty"}, names(filtered))
}

func TestApply_PreservesOrder(t *testing.T) {
	all := Apply(testItems(), ByFrameStyle(""), ByPriceBracket(""))
	assert.Equal(t, names(testItems()), names(all))
}

func TestApply_NoPredicates(t *testing.T) {
	items := []types.CatalogItem{{Name: "only"}}
	assert.Equal(t, items, Apply(items))
}
