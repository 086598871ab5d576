package catalog

import "glassesfinder/pkg/types"

type itemDef struct {
	retailer   string
	name       string
	priceCents int
	frameStyle string
	material   string
	features   string
	url        string
}

// The built-in Warby Parker sample set.
var defaultItems = []itemDef{
	{
		retailer:   "Warby Parker",
		name:       "Griffin",
		priceCents: 95_00,
		frameStyle: "round",
		material:   "acetate",
		features:   "Acetate frame, prescription lenses available, anti-reflective coating",
		url:        "https://www.warbyparker.com/eyeglasses/griffin/whiskey-tortoise",
	},
	{
		retailer:   "Warby Parker",
		name:       "Percey",
		priceCents: 95_00,
		frameStyle: "square",
		material:   "metal",
		features:   "Metal frame, blue light filtering, adjustable nose pads",
		url:        "https://www.warbyparker.com/eyeglasses/percey/polished-gold",
	},
	{
		retailer:   "Warby Parker",
		name:       "Chamberlain",
		priceCents: 145_00,
		frameStyle: "aviator",
		material:   "titanium",
		features:   "Titanium frame, progressive lenses, lightweight design",
		url:        "https://www.warbyparker.com/eyeglasses/chamberlain/brushed-navy",
	},
	{
		retailer:   "Warby Parker",
		name:       "Durand",
		priceCents: 45_00,
		frameStyle: "rectangular",
		material:   "acetate",
		features:   "Basic acetate frame, single vision, durable construction",
		url:        "https://www.warbyparker.com/eyeglasses/durand/jet-black",
	},
	{
		retailer:   "Warby Parker",
		name:       "Burke",
		priceCents: 35_00,
		frameStyle: "round",
		material:   "plastic",
		features:   "Simple plastic frame, reading glasses, comfortable fit",
		url:        "https://www.warbyparker.com/eyeglasses/burke/matte-black",
	},
	{
		retailer:   "Warby Parker",
		name:       "Caldwell",
		priceCents: 25_00,
		frameStyle: "classic",
		material:   "plastic",
		features:   "Ultra-budget frame, basic lenses, essential eyewear",
		url:        "https://www.warbyparker.com/eyeglasses/caldwell/crystal-clear",
	},
	{
		retailer:   "Warby Parker",
		name:       "Haskell",
		priceCents: 65_00,
		frameStyle: "cat-eye",
		material:   "acetate",
		features:   "Mid-range acetate, anti-scratch coating, stylish design",
		url:        "https://www.warbyparker.com/eyeglasses/haskell/rosewater",
	},
	{
		retailer:   "Warby Parker",
		name:       "Welty",
		priceCents: 85_00,
		frameStyle: "square",
		material:   "acetate",
		features:   "Premium acetate frame, prescription ready, modern style",
		url:        "https://www.warbyparker.com/eyeglasses/welty/eastern-bluebird-fade",
	},
}

func buildDefaultItems() []types.CatalogItem {
	items := make([]types.CatalogItem, 0, len(defaultItems))
	for _, def := range defaultItems {
		items = append(items, types.CatalogItem{
			ID:         ItemID(def.retailer, def.name),
			Retailer:   def.retailer,
			Name:       def.name,
			PriceCents: def.priceCents,
			FrameStyle: types.NormalizeFrameStyle(def.frameStyle),
			Material:   def.material,
			Features:   def.features,
			URL:        def.url,
		})
	}
	return items
}
