// Package models defines the data types exchanged with the FoodCourt API.
package models

// Food is a single menu item as served by the catalog endpoints.
type Food struct {
	ID            string   `json:"id"`
	Name          string   `json:"name"`
	Description   string   `json:"description"`
	ImageURL      string   `json:"imageUrl"`
	Ingredients   []string `json:"ingredients"`
	Price         float64  `json:"price"`
	PriceDiscount float64  `json:"priceDiscount"`
	IsLike        bool     `json:"isLike"`
	TotalLikes    int      `json:"totalLikes"`
	Rating        float64  `json:"rating"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

// Rating is a user review attached to a food item.
type Rating struct {
	ID        string  `json:"id"`
	Rating    float64 `json:"rating"`
	Review    string  `json:"review"`
	User      User    `json:"user"`
	CreatedAt string  `json:"createdAt"`
}
