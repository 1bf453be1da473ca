package commerce

import "github.com/joao-fontenele/abai-springs-mock/internal/domain"

var products = []domain.Product{
	{ID: "1", Name: "Abai Water 500ml", Brand: "Abai", Price: 50, Stock: 150},
	{ID: "2", Name: "Abai Water 1L", Brand: "Abai", Price: 80, Stock: 200},
	{ID: "3", Name: "Sprinkle Water 500ml", Brand: "Sprinkle", Price: 45, Stock: 120},
}

var outlets = []domain.Outlet{
	{ID: "1", Name: "Nairobi Central", Location: "Nairobi CBD", Phone: "+254 700 123 456", Status: "Active"},
	{ID: "2", Name: "Mombasa Branch", Location: "Mombasa City", Phone: "+254 700 789 012", Status: "Active"},
}

var orders = []domain.Order{
	{ID: "1", OrderNumber: "ORD001", Customer: "John Doe", Total: 100, Status: domain.OrderStatusDelivered},
	{ID: "2", OrderNumber: "ORD002", Customer: "Jane Smith", Total: 45, Status: domain.OrderStatusProcessing},
}

var users = []domain.User{
	{ID: "1", Name: "John Doe", Email: "john@example.com", Phone: "+254 700 123 456"},
	{ID: "2", Name: "Jane Smith", Email: "jane@example.com", Phone: "+254 700 789 012"},
}

var stockAlertStats = domain.StockAlertStats{
	ActiveAlerts:     5,
	AlertsSentToday:  12,
	MonitoringActive: true,
	TotalPredictions: 8,
}

var stockAlerts = []domain.StockAlert{}
