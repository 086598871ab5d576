// Package export renders recommendation results as CSV for download or
// offline review.
package export

import (
	"encoding/csv"
	"fmt"
	"io"

	"glassesfinder/pkg/types"
)

var csvHeader = []string{
	"Retailer",
	"Name",
	"Price",
	"Price_Category",
	"Frame_Style",
	"Material",
	"Features",
	"Image_URL",
	"URL",
	"Tier",
}

// Write streams the items as CSV. Prices render as whole-dollar strings
// ("$95"); the tier column repeats the assessed tier name on every row so
// the file stands alone.
func Write(w io.Writer, tierName string, items []types.CatalogItem) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}

	for _, item := range items {
		row := []string{
			item.Retailer,
			item.Name,
			fmt.Sprintf("$%d", item.PriceCents/100),
			item.PriceCategory(),
			string(item.FrameStyle),
			item.Material,
			item.Features,
			item.ImageURL,
			item.URL,
			tierName,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", item.ID, err)
		}
	}

	cw.Flush()
	return cw.Error()
}
