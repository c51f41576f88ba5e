package domain

// SeedProducts returns the built-in demo catalog. Each call returns a fresh
// slice so that sessions never share backing storage.
func SeedProducts() []Product {
	return []Product{
		{
			ID:                 1,
			Title:              "iPhone 15 Pro",
			Description:        "The new iPhone with an advanced camera and the A17 Pro chip. The go-to choice for professionals.",
			Price:              999,
			Brand:              "Apple",
			Thumbnail:          "https://i.dummyjson.com/data/products/1/thumbnail.jpg",
			Rating:             4.8,
			DiscountPercentage: 10,
			Category:           "Smartphones",
			Stock:              50,
		},
		{
			ID:                 2,
			Title:              "Samsung Galaxy S24",
			Description:        "Flagship smartphone with on-device AI. Innovative features and a sleek design.",
			Price:              849,
			Brand:              "Samsung",
			Thumbnail:          "https://i.dummyjson.com/data/products/2/thumbnail.jpg",
			Rating:             4.6,
			DiscountPercentage: 5,
			Category:           "Smartphones",
			Stock:              75,
		},
		{
			ID:                 3,
			Title:              "MacBook Air M3",
			Description:        "Light and powerful laptop with the Apple M3 chip. Great for work and creative projects.",
			Price:              1299,
			Brand:              "Apple",
			Thumbnail:          "https://i.dummyjson.com/data/products/6/thumbnail.png",
			Rating:             4.9,
			DiscountPercentage: 15,
			Category:           "Laptops",
			Stock:              30,
		},
		{
			ID:                 4,
			Title:              "Sony WH-1000XM5",
			Description:        "Noise-cancelling headphones with premium sound. Lose yourself in the music.",
			Price:              399,
			Brand:              "Sony",
			Thumbnail:          "https://i.dummyjson.com/data/products/7/thumbnail.jpg",
			Rating:             4.7,
			DiscountPercentage: 8,
			Category:           "Audio",
			Stock:              100,
		},
		{
			ID:                 5,
			Title:              "iPad Pro M2",
			Description:        "Powerful tablet for professionals. Creativity without limits.",
			Price:              1099,
			Brand:              "Apple",
			Thumbnail:          "https://i.dummyjson.com/data/products/8/thumbnail.jpg",
			Rating:             4.8,
			DiscountPercentage: 12,
			Category:           "Tablets",
			Stock:              40,
		},
		{
			ID:                 6,
			Title:              "Samsung Galaxy Watch",
			Description:        "Smartwatch with advanced health and fitness tracking.",
			Price:              299,
			Brand:              "Samsung",
			Thumbnail:          "https://i.dummyjson.com/data/products/10/thumbnail.jpeg",
			Rating:             4.5,
			DiscountPercentage: 7,
			Category:           "Gadgets",
			Stock:              60,
		},
		{
			ID:                 7,
			Title:              "Google Pixel 8",
			Description:        "Smartphone with a best-in-class camera and clean Android.",
			Price:              799,
			Brand:              "Google",
			Thumbnail:          "https://i.dummyjson.com/data/products/11/thumbnail.jpg",
			Rating:             4.4,
			DiscountPercentage: 8,
			Category:           "Smartphones",
			Stock:              25,
		},
		{
			ID:                 8,
			Title:              "Dell XPS 13",
			Description:        "Ultrabook with an edge-to-edge display and strong performance.",
			Price:              1199,
			Brand:              "Dell",
			Thumbnail:          "https://i.dummyjson.com/data/products/12/thumbnail.jpg",
			Rating:             4.6,
			DiscountPercentage: 10,
			Category:           "Laptops",
			Stock:              20,
		},
		{
			ID:                 9,
			Title:              "Bose QuietComfort 45",
			Description:        "Headphones with active noise cancellation and premium sound.",
			Price:              329,
			Brand:              "Bose",
			Thumbnail:          "https://i.dummyjson.com/data/products/13/thumbnail.jpg",
			Rating:             4.5,
			DiscountPercentage: 6,
			Category:           "Audio",
			Stock:              80,
		},
		{
			ID:                 10,
			Title:              "Microsoft Surface Pro",
			Description:        "Versatile 2-in-1 tablet for work and creative projects.",
			Price:              999,
			Brand:              "Microsoft",
			Thumbnail:          "https://i.dummyjson.com/data/products/14/thumbnail.jpg",
			Rating:             4.3,
			DiscountPercentage: 9,
			Category:           "Tablets",
			Stock:              35,
		},
		{
			ID:                 11,
			Title:              "Apple Watch Series 9",
			Description:        "Smartwatch with advanced health tracking.",
			Price:              399,
			Brand:              "Apple",
			Thumbnail:          "https://i.dummyjson.com/data/products/15/thumbnail.jpg",
			Rating:             4.7,
			DiscountPercentage: 5,
			Category:           "Gadgets",
			Stock:              45,
		},
		{
			ID:                 12,
			Title:              "Sony PlayStation 5",
			Description:        "Next-generation gaming console with 4K graphics.",
			Price:              499,
			Brand:              "Sony",
			Thumbnail:          "https://i.dummyjson.com/data/products/16/thumbnail.jpg",
			Rating:             4.9,
			DiscountPercentage: 3,
			Category:           "Gaming",
			Stock:              15,
		},
	}
}
