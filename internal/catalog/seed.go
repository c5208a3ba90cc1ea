package catalog

// defaultCatalog is the built-in product list, used when no catalog file or
// database is configured. Declaration order is the catalog order.
func defaultCatalog() []Product {
	return []Product{
		// Gold
		{
			ID:          "gold-1",
			Name:        "Royal Gold Necklace",
			PriceCents:  349900,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&q=80",
			Description: "22K gold necklace with traditional design",
			Category:    CategoryGold,
			Featured:    true,
			Badge:       BadgePopular,
		},
		{
			ID:          "gold-2",
			Name:        "Classic Gold Bangles",
			PriceCents:  289900,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&q=80",
			Description: "Set of 4 elegant 18K gold bangles",
			Category:    CategoryGold,
			Badge:       BadgeNew,
		},
		{
			ID:          "gold-3",
			Name:        "Designer Gold Earrings",
			PriceCents:  189900,
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&q=80",
			Description: "Contemporary 18K gold drop earrings",
			Category:    CategoryGold,
			Featured:    true,
		},
		{
			ID:          "gold-4",
			Name:        "Heritage Gold Ring",
			PriceCents:  229900,
			Image:       "/assets/product-images/goldring.jpg",
			Description: "22K gold ring with antique finish",
			Category:    CategoryGold,
		},
		{
			ID:          "gold-5",
			Name:        "Temple Gold Pendant",
			PriceCents:  159900,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&q=80",
			Description: "Sacred temple design in 18K gold",
			Category:    CategoryGold,
		},
		{
			ID:          "gold-6",
			Name:        "Bridal Gold Set",
			PriceCents:  899900,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&q=80",
			Description: "Complete bridal set in 22K gold",
			Category:    CategoryGold,
			Featured:    true,
		},

		// Silver
		{
			ID:          "silver-1",
			Name:        "Contemporary Silver Ring",
			PriceCents:  79900,
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&q=80",
			Description: "Modern sterling silver minimalist ring",
			Category:    CategorySilver,
			Featured:    true,
		},
		{
			ID:          "silver-2",
			Name:        "Silver Chain Necklace",
			PriceCents:  109900,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&q=80",
			Description: "Elegant sterling silver cable chain",
			Category:    CategorySilver,
		},
		{
			ID:          "silver-3",
			Name:        "Oxidized Silver Bangles",
			PriceCents:  89900,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&q=80",
			Description: "Traditional oxidized silver bangles set",
			Category:    CategorySilver,
		},
		{
			ID:          "silver-4",
			Name:        "Silver Hoop Earrings",
			PriceCents:  59900,
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&q=80",
			Description: "Classic sterling silver hoops",
			Category:    CategorySilver,
			Featured:    true,
		},
		{
			ID:          "silver-5",
			Name:        "Infinity Silver Bracelet",
			PriceCents:  129900,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&q=80",
			Description: "Infinity symbol sterling silver bracelet",
			Category:    CategorySilver,
		},
		{
			ID:          "silver-6",
			Name:        "Silver Pendant Set",
			PriceCents:  149900,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&q=80",
			Description: "Geometric pendant with matching earrings",
			Category:    CategorySilver,
		},

		// Diamond
		{
			ID:          "diamond-1",
			Name:        "Solitaire Diamond Ring",
			PriceCents:  1299900,
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&q=80",
			Description: "1.5 carat VVS1 diamond in platinum",
			Category:    CategoryDiamond,
			Clarity:     "VVS1",
			Featured:    true,
			Badge:       BadgePopular,
		},
		{
			ID:          "diamond-2",
			Name:        "Diamond Tennis Bracelet",
			PriceCents:  1899900,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&q=80",
			Description: "3 carat total weight, VS2 clarity",
			Category:    CategoryDiamond,
			Clarity:     "VS2",
			Featured:    true,
		},
		{
			ID:          "diamond-3",
			Name:        "Diamond Stud Earrings",
			PriceCents:  899900,
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&q=80",
			Description: "1 carat pair, IF clarity diamonds",
			Category:    CategoryDiamond,
			Clarity:     "IF",
		},
		{
			ID:          "diamond-4",
			Name:        "Halo Diamond Pendant",
			PriceCents:  999900,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&q=80",
			Description: "0.75 carat center stone with halo",
			Category:    CategoryDiamond,
			Clarity:     "VVS2",
			Featured:    true,
		},
		{
			ID:          "diamond-5",
			Name:        "Eternity Diamond Band",
			PriceCents:  1199900,
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&q=80",
			Description: "Full eternity band, VS1 clarity",
			Category:    CategoryDiamond,
			Clarity:     "VS1",
		},
		{
			ID:          "diamond-6",
			Name:        "Three Stone Diamond Ring",
			PriceCents:  1599900,
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&q=80",
			Description: "2 carat total, VVS2 clarity trilogy",
			Category:    CategoryDiamond,
			Clarity:     "VVS2",
		},

		// Gems
		{
			ID:          "gems-1",
			Name:        "Emerald Drop Earrings",
			PriceCents:  429900,
			Image:       "https://images.unsplash.com/photo-1535632066927-ab7c9ab60908?w=800&q=80",
			Description: "Colombian emeralds in white gold",
			Category:    CategoryGems,
			GemType:     "Emerald",
			Featured:    true,
		},
		{
			ID:          "gems-2",
			Name:        "Ruby Heart Pendant",
			PriceCents:  549900,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&q=80",
			Description: "Burmese ruby with diamond halo",
			Category:    CategoryGems,
			GemType:     "Ruby",
			Featured:    true,
		},
		{
			ID:          "gems-3",
			Name:        "Sapphire Cocktail Ring",
			PriceCents:  699900,
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&q=80",
			Description: "Kashmir sapphire statement piece",
			Category:    CategoryGems,
			GemType:     "Sapphire",
		},
		{
			ID:          "gems-4",
			Name:        "Multi-Gem Bracelet",
			PriceCents:  479900,
			Image:       "https://images.unsplash.com/photo-1611591437281-460bfbe1220a?w=800&q=80",
			Description: "Rainbow gemstones in gold setting",
			Category:    CategoryGems,
			GemType:     "Mixed",
			Featured:    true,
		},
		{
			ID:          "gems-5",
			Name:        "Tanzanite Solitaire Ring",
			PriceCents:  579900,
			Image:       "https://images.unsplash.com/photo-1605100804763-247f67b3557e?w=800&q=80",
			Description: "Rare tanzanite in platinum",
			Category:    CategoryGems,
			GemType:     "Tanzanite",
		},
		{
			ID:          "gems-6",
			Name:        "Opal Pendant Necklace",
			PriceCents:  329900,
			Image:       "https://images.unsplash.com/photo-1599643478518-a784e5dc4c8f?w=800&q=80",
			Description: "Australian opal with fire",
			Category:    CategoryGems,
			GemType:     "Opal",
		},
	}
}
