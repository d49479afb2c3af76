package catalog

import "github.com/shashiranjanraj/stylestore/app/models"

// seedProducts is the stock StyleStore catalog.
var seedProducts = []models.Product{
	{
		ID:          1,
		Name:        "Premium Noise-Canceling Headphones",
		Description: "Experience crystal-clear audio with our premium noise-canceling headphones. Perfect for music enthusiasts and professionals alike.",
		Price:       299.99,
		Image:       "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Category:    "Electronics",
		InStock:     true,
		Featured:    true,
		Rating:      4.8,
		Reviews:     245,
	},
	{
		ID:          2,
		Name:        "Slim-Fit Casual T-Shirt",
		Description: "A comfortable, breathable slim-fit t-shirt made from premium cotton. Perfect for everyday casual wear.",
		Price:       29.99,
		Image:       "https://images.pexels.com/photos/2326595/pexels-photo-2326595.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Category:    "Clothing",
		InStock:     true,
		Featured:    true,
		Rating:      4.5,
		Reviews:     187,
	},
	{
		ID:          3,
		Name:        "Minimalist Ceramic Watch",
		Description: "A sleek, minimalist watch with a ceramic band and sapphire crystal glass. Water-resistant up to 50 meters.",
		Price:       159.99,
		Image:       "https://images.pexels.com/photos/1697214/pexels-photo-1697214.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Category:    "Accessories",
		InStock:     true,
		Featured:    true,
		Rating:      4.7,
		Reviews:     132,
	},
	{
		ID:          4,
		Name:        "Organic Skincare Set",
		Description: "A complete skincare set made with organic, cruelty-free ingredients. Includes cleanser, toner, moisturizer, and serum.",
		Price:       89.99,
		Image:       "https://images.pexels.com/photos/6621462/pexels-photo-6621462.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Category:    "Beauty",
		InStock:     true,
		Featured:    true,
		Rating:      4.6,
		Reviews:     98,
	},
	{
		ID:          5,
		Name:        "Smart Fitness Tracker",
		Description: "Track your fitness goals with this smart fitness tracker. Features heart rate monitoring, sleep tracking, and GPS.",
		Price:       129.99,
		Image:       "https://images.pexels.com/photos/4397840/pexels-photo-4397840.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Category:    "Electronics",
		InStock:     true,
		Featured:    true,
		Rating:      4.4,
		Reviews:     156,
	},
	{
		ID:          6,
		Name:        "Artisanal Coffee Maker",
		Description: "Brew the perfect cup of coffee with this artisanal coffee maker. Made from sustainable materials and designed for optimal extraction.",
		Price:       79.99,
		Image:       "https://images.pexels.com/photos/6312187/pexels-photo-6312187.jpeg?auto=compress&cs=tinysrgb&w=1260&h=750&dpr=2",
		Category:    "Home",
		InStock:     true,
		Featured:    true,
		Rating:      4.9,
		Reviews:     112,
	},
}
