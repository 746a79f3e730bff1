package domain

import "time"

type Product struct {
	ID              string
	Name            string
	Description     string
	RichDescription string
	Image           string
	Brand           string
	Price           float64
	CategoryID      string
	CountInStock    int
	Rating          float64
	NumReviews      int
	IsFeatured      bool
	DateCreated     time.Time
}
