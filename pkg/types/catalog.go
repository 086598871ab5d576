package types

type FrameStyle string

const (
	FrameStyleRound       FrameStyle = "round"
	FrameStyleSquare      FrameStyle = "square"
	FrameStyleRectangular FrameStyle = "rectangular"
	FrameStyleAviator     FrameStyle = "aviator"
	FrameStyleCatEye      FrameStyle = "cat-eye"
	FrameStyleClassic     FrameStyle = "classic"
)

// FrameStyles lists every recognized style in display order.
var FrameStyles = []FrameStyle{
	FrameStyleRound,
	FrameStyleSquare,
	FrameStyleRectangular,
	FrameStyleAviator,
	FrameStyleCatEye,
	FrameStyleClassic,
}

// NormalizeFrameStyle maps unrecognized style labels onto the classic bucket.
func NormalizeFrameStyle(s string) FrameStyle {
	for _, style := range FrameStyles {
		if string(style) == s {
			return style
		}
	}
	return FrameStyleClassic
}

type CatalogItem struct {
	ID         string
	Retailer   string
	Name       string
	PriceCents int
	FrameStyle FrameStyle
	Material   string
	Features   string
	URL        string
	ImageURL   string
}

// PriceCategory buckets a price into the affordability bands used on the
// export surface.
func (c CatalogItem) PriceCategory() string {
	switch {
	case c.PriceCents < 50_00:
		return "Very Affordable"
	case c.PriceCents < 100_00:
		return "Budget-Friendly"
	case c.PriceCents < 200_00:
		return "Moderate"
	default:
		return "Premium"
	}
}
