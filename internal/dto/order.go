package dto

import "time"

type CreateOrderRequest struct {
	ShippingAddress1 string            `json:"shippingAddress1"`
	ShippingAddress2 string            `json:"shippingAddress2"`
	City             string            `json:"city"`
	Zip              string            `json:"zip"`
	Country          string            `json:"country"`
	Phone            string            `json:"phone"`
	Status           string            `json:"status"`
	Channel          string            `json:"channel"`
	User             string            `json:"user"`
	OrderItems       []CreateOrderItem `json:"orderItems"`
}

type CreateOrderItem struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status"`
}

// OrderResponse is the persisted order as returned by creation and status
// updates, before any read-time enrichment.
type OrderResponse struct {
	ID               string              `json:"id"`
	OrderItems       []OrderItemResponse `json:"orderItems"`
	ShippingAddress1 string              `json:"shippingAddress1"`
	ShippingAddress2 string              `json:"shippingAddress2,omitempty"`
	City             string              `json:"city"`
	Zip              string              `json:"zip"`
	Country          string              `json:"country"`
	Phone            string              `json:"phone"`
	Status           string              `json:"status"`
	Channel          string              `json:"channel,omitempty"`
	TotalPrice       float64             `json:"totalPrice"`
	User             string              `json:"user"`
	DateOrdered      time.Time           `json:"dateOrdered"`
}

type OrderItemResponse struct {
	ID       string `json:"id"`
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// EnrichedOrder joins the order with its user, lines, products and
// categories for display. Missing references are omitted, never an error.
type EnrichedOrder struct {
	ID               string              `json:"id"`
	OrderItems       []EnrichedOrderItem `json:"orderItems"`
	ShippingAddress1 string              `json:"shippingAddress1"`
	ShippingAddress2 string              `json:"shippingAddress2,omitempty"`
	City             string              `json:"city"`
	Zip              string              `json:"zip"`
	Country          string              `json:"country"`
	Phone            string              `json:"phone"`
	Status           string              `json:"status"`
	Channel          string              `json:"channel,omitempty"`
	TotalPrice       float64             `json:"totalPrice"`
	User             *OrderUser          `json:"user,omitempty"`
	DateOrdered      time.Time           `json:"dateOrdered"`
}

type OrderUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type EnrichedOrderItem struct {
	ID       string        `json:"id"`
	Quantity int           `json:"quantity"`
	Product  *OrderProduct `json:"product,omitempty"`
}

type OrderProduct struct {
	ID       string         `json:"id"`
	Name     string         `json:"name"`
	Price    float64        `json:"price"`
	Category *OrderCategory `json:"category,omitempty"`
}

type OrderCategory struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Icon  string `json:"icon,omitempty"`
	Color string `json:"color,omitempty"`
}

type TotalSalesResponse struct {
	Total float64 `json:"total"`
}

type OrderCountResponse struct {
	OrderCount int64 `json:"orderCount"`
}

type UserOrdersResponse struct {
	UserOrderList []EnrichedOrder `json:"userOrderList"`
}

type DeleteResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
