package domain

type OrderStatus string

const (
	OrderStatusProcessing OrderStatus = "Processing"
	OrderStatusDelivered  OrderStatus = "Delivered"
)

type Order struct {
	ID          string      `json:"_id"`
	OrderNumber string      `json:"orderNumber"`
	Customer    string      `json:"customer"`
	Total       int64       `json:"total"`
	Status      OrderStatus `json:"status"`
}
