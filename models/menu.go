package models

// Category is a top-level menu section shown on the ordering page.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image"`
	Color string `json:"color"`
}

// FoodItem is a single dish on the static menu.
type FoodItem struct {
	ID    int     `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image"`
}

// SearchResult is a food item annotated with the category it was found in.
type SearchResult struct {
	FoodItem
	Category *Category `json:"category"`
}
