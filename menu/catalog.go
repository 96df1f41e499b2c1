// Package menu holds the restaurant's static catalog. The data lives in
// code until the menu moves to the database.
package menu

import (
	"strings"

	"restaurant-orders-api/models"
)

// Categories in display order.
var Categories = []models.Category{
	{ID: "veg", Name: "Veg", Image: "/images/veg.jpg", Color: "#8bc34a"},
	{ID: "non-veg", Name: "Non-Veg", Image: "/images/non-veg.jpg", Color: "#f44336"},
	{ID: "main-course", Name: "Main Course", Image: "/images/main-course.jpg", Color: "#ff9800"},
	{ID: "soup", Name: "Soup", Image: "/images/soup.jpg", Color: "#00bcd4"},
	{ID: "snacks", Name: "Snacks", Image: "/images/snacks.jpg", Color: "#e91e63"},
	{ID: "drinks", Name: "Drinks", Image: "/images/drinks.jpg", Color: "#2196f3"},
	{ID: "dessert", Name: "Dessert", Image: "/images/dessert.jpg", Color: "#9c27b0"},
}

// FoodItems grouped by category id. Item ids are stable; the frontend
// references them in orders.
var FoodItems = map[string][]models.FoodItem{
	"veg": {
		{ID: 1, Name: "Paneer Tikka", Price: 250, Image: "/images/paneer-tikka.jpg"},
		{ID: 2, Name: "Vegetable Biryani", Price: 180, Image: "/images/veg-biryani.jpg"},
		{ID: 3, Name: "Malai Kofta", Price: 220, Image: "/images/malai-kofta.jpg"},
		{ID: 4, Name: "Palak Paneer", Price: 200, Image: "/images/palak-paneer.jpg"},
		{ID: 29, Name: "Mushroom Masala", Price: 230, Image: "/images/mushroom-masala.jpg"},
		{ID: 30, Name: "Aloo Matar", Price: 170, Image: "/images/aloo-matar.jpg"},
	},
	"non-veg": {
		{ID: 5, Name: "Butter Chicken", Price: 280, Image: "/images/butter-chicken.jpg"},
		{ID: 6, Name: "Chicken Biryani", Price: 220, Image: "/images/chicken-biryani.jpg"},
		{ID: 7, Name: "Tandoori Chicken", Price: 300, Image: "/images/tandoori-chicken.jpg"},
		{ID: 8, Name: "Fish Curry", Price: 350, Image: "/images/fish-curry.jpg"},
		{ID: 31, Name: "Mutton Rogan Josh", Price: 320, Image: "/images/mutton-rogan-josh.jpg"},
		{ID: 32, Name: "Chicken Korma", Price: 270, Image: "/images/chicken-korma.jpg"},
	},
	"main-course": {
		{ID: 9, Name: "Dal Makhani", Price: 180, Image: "/images/dal-makhani.jpg"},
		{ID: 10, Name: "Rajma Chawal", Price: 160, Image: "/images/rajma-chawal.jpg"},
		{ID: 11, Name: "Chole Bhature", Price: 150, Image: "/images/chole-bhature.jpg"},
		{ID: 12, Name: "Aloo Gobi", Price: 140, Image: "/images/aloo-gobi.jpg"},
		{ID: 33, Name: "Paneer Butter Masala", Price: 240, Image: "/images/paneer-butter-masala.jpg"},
		{ID: 34, Name: "Veg Pulao", Price: 170, Image: "/images/veg-pulao.jpg"},
	},
	"soup": {
		{ID: 13, Name: "Tomato Soup", Price: 90, Image: "/images/tomato-soup.jpg"},
		{ID: 14, Name: "Hot & Sour Soup", Price: 110, Image: "/images/hot-sour-soup.jpg"},
		{ID: 15, Name: "Manchow Soup", Price: 120, Image: "/images/manchow-soup.jpg"},
		{ID: 16, Name: "Sweet Corn Soup", Price: 100, Image: "/images/corn-soup.jpg"},
		{ID: 35, Name: "Lentil Soup", Price: 95, Image: "/images/lentil-soup.jpg"},
		{ID: 36, Name: "Mushroom Soup", Price: 105, Image: "/images/mushroom-soup.jpg"},
	},
	"snacks": {
		{ID: 17, Name: "Samosa", Price: 60, Image: "/images/samosa.jpg"},
		{ID: 18, Name: "Spring Rolls", Price: 80, Image: "/images/spring-rolls.jpg"},
		{ID: 19, Name: "Paneer Pakora", Price: 100, Image: "/images/paneer-pakora.jpg"},
		{ID: 20, Name: "Chicken Tikka", Price: 150, Image: "/images/chicken-tikka.jpg"},
		{ID: 37, Name: "Aloo Tikki", Price: 70, Image: "/images/aloo-tikki.jpg"},
		{ID: 38, Name: "Veg Cutlet", Price: 85, Image: "/images/veg-cutlet.jpg"},
	},
	"drinks": {
		{ID: 21, Name: "Mango Lassi", Price: 80, Image: "/images/mango-lassi.jpg"},
		{ID: 22, Name: "Masala Chai", Price: 50, Image: "/images/masala-chai.jpg"},
		{ID: 23, Name: "Fresh Lime Soda", Price: 60, Image: "/images/lime-soda.jpg"},
		{ID: 24, Name: "Cold Coffee", Price: 90, Image: "/images/cold-coffee.jpg"},
		{ID: 39, Name: "Buttermilk", Price: 45, Image: "/images/buttermilk.jpg"},
		{ID: 40, Name: "Virgin Mojito", Price: 85, Image: "/images/virgin-mojito.jpg"},
	},
	"dessert": {
		{ID: 25, Name: "Gulab Jamun", Price: 80, Image: "/images/gulab-jamun.jpg"},
		{ID: 26, Name: "Rasmalai", Price: 90, Image: "/images/rasmalai.jpg"},
		{ID: 27, Name: "Gajar Halwa", Price: 100, Image: "/images/gajar-halwa.jpg"},
		{ID: 28, Name: "Ice Cream", Price: 70, Image: "/images/ice-cream.jpg"},
		{ID: 41, Name: "Rasgulla", Price: 75, Image: "/images/rasgulla.jpg"},
		{ID: 42, Name: "Kheer", Price: 85, Image: "/images/kheer.jpg"},
	},
}

// CategoryByID returns the category record, or nil for an unknown id.
func CategoryByID(id string) *models.Category {
	for i := range Categories {
		if Categories[i].ID == id {
			return &Categories[i]
		}
	}
	return nil
}

// ItemsByCategory returns the items of one category. Unknown categories
// yield an empty slice, not an error.
func ItemsByCategory(categoryID string) []models.FoodItem {
	items, ok := FoodItems[categoryID]
	if !ok {
		return []models.FoodItem{}
	}
	return items
}

// Search does a case-insensitive substring match over item names and
// annotates each hit with its category.
func Search(query string) []models.SearchResult {
	term := strings.ToLower(query)
	results := []models.SearchResult{}
	for _, cat := range Categories {
		for _, item := range FoodItems[cat.ID] {
			if strings.Contains(strings.ToLower(item.Name), term) {
				c := cat
				results = append(results, models.SearchResult{FoodItem: item, Category: &c})
			}
		}
	}
	return results
}
