// Package images builds deterministic placeholder image URLs for catalog
// items. No network traffic happens here; rendering the URL is the caller's
// concern.
package images

import (
	"fmt"
	"hash/fnv"
	"net/url"

	"glassesfinder/pkg/types"
)

// FallbackDataURL is a transparent pixel used when an external placeholder
// fails to load.
const FallbackDataURL = "data:image/png;base64,iVBORw0KGgoAAAANSUhEUgAAAAEAAAABCAYAAAAfFcSJAAAADUlEQVR42mP8/5+hHgAHggJ/PchI7wAAAABJRU5ErkJggg=="

const placeholderFmt = "https://via.placeholder.com/300x200/%s/%s?text=%s"

type placeholder struct {
	background string
	foreground string
	label      string
}

// Candidate placeholders per frame style. The hash of the item fields picks
// one, so every item keeps the same image across renders and sessions.
var styleCandidates = map[types.FrameStyle][]placeholder{
	types.FrameStyleRound: {
		{"f0f0f0", "333333", "Round Frame"},
		{"e8e8e8", "444444", "Round"},
	},
	types.FrameStyleSquare: {
		{"e8e8e8", "444444", "Square Frame"},
		{"f2f2f2", "555555", "Square"},
	},
	types.FrameStyleRectangular: {
		{"f2f2f2", "666666", "Rectangular"},
		{"eeeeee", "555555", "Rectangular Frame"},
	},
	types.FrameStyleAviator: {
		{"f5f5f5", "555555", "Aviator Frame"},
		{"f0f0f0", "444444", "Aviator"},
	},
	types.FrameStyleCatEye: {
		{"f8f8f8", "444444", "Cat Eye"},
		{"f5f5f5", "333333", "Cat-Eye Frame"},
	},
	types.FrameStyleClassic: {
		{"eeeeee", "333333", "Classic Frame"},
		{"cccccc", "666666", "Glasses"},
		{"f0f0f0", "333333", "Classic"},
	},
}

// URLFor returns the placeholder image URL for an item. Pure function of the
// item's name, frame style, and material: identical inputs always yield the
// identical URL. Unknown styles use the classic bucket.
func URLFor(item types.CatalogItem) string {
	candidates, ok := styleCandidates[item.FrameStyle]
	if !ok {
		candidates = styleCandidates[types.FrameStyleClassic]
	}

	h := fnv.New32a()
	fmt.Fprintf(h, "%s|%s|%s", item.Name, item.FrameStyle, item.Material)

	pick := candidates[h.Sum32()%uint32(len(candidates))]

	return fmt.Sprintf(placeholderFmt, pick.background, pick.foreground, url.QueryEscape(pick.label))
}
