package catalog

import "time"

func floatPtr(value float64) *float64 {
	return &value
}

// Seed returns the demo catalog the API starts with. Creation timestamps
// are staggered one day apart so the newest sort has something to order by.
func Seed() []Product {
	base := time.Date(2024, time.January, 2, 12, 0, 0, 0, time.UTC)
	day := func(n int) time.Time { return base.AddDate(0, 0, n) }

	return []Product{
		{
			ID:            "1",
			Name:          "Wireless Bluetooth Headphones",
			Price:         199.99,
			OriginalPrice: floatPtr(299.99),
			Image:         "https://images.pexels.com/photos/3394650/pexels-photo-3394650.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:        4.8,
			Reviews:       124,
			Category:      "Electronics",
			Description:   "Premium wireless headphones with active noise cancellation and 30-hour battery life.",
			InStock:       true,
			Stock:         50,
			Specifications: map[string]string{
				"brand":  "AudioTech",
				"model":  "AT-WH1000",
				"color":  "Black",
				"weight": "250g",
			},
			CreatedAt: day(0),
		},
		{
			ID:            "2",
			Name:          "Smart Fitness Watch",
			Price:         249.99,
			OriginalPrice: floatPtr(349.99),
			Image:         "https://images.pexels.com/photos/437037/pexels-photo-437037.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:        4.7,
			Reviews:       89,
			Category:      "Electronics",
			Description:   "Advanced fitness tracking with heart rate monitor, GPS, and 7-day battery life.",
			InStock:       true,
			Stock:         30,
			Specifications: map[string]string{
				"brand":   "FitTech",
				"model":   "FT-SW200",
				"color":   "Space Gray",
				"display": "1.4\" AMOLED",
			},
			CreatedAt: day(1),
		},
		{
			ID:             "3",
			Name:           "Premium Coffee Maker",
			Price:          89.99,
			OriginalPrice:  floatPtr(129.99),
			Image:          "https://images.pexels.com/photos/324028/pexels-photo-324028.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:         4.6,
			Reviews:        67,
			Category:       "Home & Garden",
			Description:    "Automatic drip coffee maker with timer and thermal carafe.",
			InStock:        true,
			Stock:          25,
			Specifications: map[string]string{},
			CreatedAt:      day(2),
		},
		{
			ID:             "4",
			Name:           "Designer Backpack",
			Price:          79.99,
			OriginalPrice:  floatPtr(119.99),
			Image:          "https://images.pexels.com/photos/2905238/pexels-photo-2905238.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:         4.9,
			Reviews:        156,
			Category:       "Fashion",
			Description:    "Stylish and durable backpack for everyday use.",
			InStock:        true,
			Stock:          40,
			Specifications: map[string]string{},
			CreatedAt:      day(3),
		},
		{
			ID:             "5",
			Name:           "Trail Running Shoes",
			Price:          129.99,
			OriginalPrice:  floatPtr(159.99),
			Image:          "https://images.pexels.com/photos/2529148/pexels-photo-2529148.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:         4.5,
			Reviews:        203,
			Category:       "Sports",
			Description:    "Lightweight running shoes with responsive cushioning and grippy outsole.",
			InStock:        true,
			Stock:          60,
			Specifications: map[string]string{},
			CreatedAt:      day(4),
		},
		{
			ID:             "6",
			Name:           "Minimalist Desk Lamp",
			Price:          45.99,
			Image:          "https://images.pexels.com/photos/1112598/pexels-photo-1112598.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:         4.3,
			Reviews:        45,
			Category:       "Home & Garden",
			Description:    "Adjustable LED desk lamp with touch dimming and USB charging port.",
			InStock:        true,
			Stock:          18,
			Specifications: map[string]string{},
			CreatedAt:      day(5),
		},
		{
			ID:             "7",
			Name:           "Leather Card Wallet",
			Price:          39.99,
			Image:          "https://images.pexels.com/photos/4452527/pexels-photo-4452527.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:         4.7,
			Reviews:        78,
			Category:       "Fashion",
			Description:    "Slim full-grain leather wallet with RFID blocking.",
			InStock:        false,
			Stock:          0,
			Specifications: map[string]string{},
			CreatedAt:      day(6),
		},
		{
			ID:             "8",
			Name:           "Non-Slip Yoga Mat",
			Price:          29.99,
			OriginalPrice:  floatPtr(44.99),
			Image:          "https://images.pexels.com/photos/4056723/pexels-photo-4056723.jpeg?auto=compress&cs=tinysrgb&w=500",
			Rating:         4.4,
			Reviews:        92,
			Category:       "Sports",
			Description:    "Non-slip yoga mat with carrying strap and alignment lines.",
			InStock:        true,
			Stock:          35,
			Specifications: map[string]string{},
			CreatedAt:      day(7),
		},
	}
}
