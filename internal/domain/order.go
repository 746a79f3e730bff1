package domain

import "time"

type Order struct {
	ID               string
	ShippingAddress1 string
	ShippingAddress2 string
	City             string
	Zip              string
	Country          string
	Phone            string
	Status           string
	Channel          string
	TotalPrice       float64
	UserID           string
	DateOrdered      time.Time
	Items            []OrderItem
}

const (
	OrderStatusPending    = "pending"
	OrderStatusProcessing = "processing"
	OrderStatusShipped    = "shipped"
	OrderStatusDelivered  = "delivered"
)

// OrderItem is a single product+quantity line. It is owned by its order:
// lines are created only while creating an order and deleted only when the
// order is deleted.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
}

type PricedLine struct {
	Quantity int
	Price    float64
}

// OrderTotal sums quantity times unit price over the given lines.
// An empty input yields 0.
func OrderTotal(lines []PricedLine) float64 {
	total := 0.0
	for _, line := range lines {
		total += float64(line.Quantity) * line.Price
	}
	return total
}
