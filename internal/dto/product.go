package dto

import "time"

type ProductRequest struct {
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	RichDescription string  `json:"richDescription"`
	Image           string  `json:"image"`
	Brand           string  `json:"brand"`
	Price           float64 `json:"price"`
	Category        string  `json:"category"`
	CountInStock    int     `json:"countInStock"`
	Rating          float64 `json:"rating"`
	NumReviews      int     `json:"numReviews"`
	IsFeatured      bool    `json:"isFeatured"`
}

type ProductResponse struct {
	ID              string         `json:"id"`
	Name            string         `json:"name"`
	Description     string         `json:"description"`
	RichDescription string         `json:"richDescription,omitempty"`
	Image           string         `json:"image,omitempty"`
	Brand           string         `json:"brand,omitempty"`
	Price           float64        `json:"price"`
	Category        *OrderCategory `json:"category,omitempty"`
	CountInStock    int            `json:"countInStock"`
	Rating          float64        `json:"rating"`
	NumReviews      int            `json:"numReviews"`
	IsFeatured      bool           `json:"isFeatured"`
	DateCreated     time.Time      `json:"dateCreated"`
}

type ProductCountResponse struct {
	Count int64 `json:"count"`
}

type FeaturedProductsResponse struct {
	Products []ProductResponse `json:"products"`
}
