package domain

type Product struct {
	ID    string `json:"_id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Price int64  `json:"price"`
	Stock int    `json:"stock"`
}

type Outlet struct {
	ID       string `json:"_id"`
	Name     string `json:"name"`
	Location string `json:"location"`
	Phone    string `json:"phone"`
	Status   string `json:"status"`
}

// StockAlertStats summarises the stock alert monitor for the admin dashboard.
type StockAlertStats struct {
	ActiveAlerts     int  `json:"activeAlerts"`
	AlertsSentToday  int  `json:"alertsSentToday"`
	MonitoringActive bool `json:"monitoringActive"`
	TotalPredictions int  `json:"totalPredictions"`
}

// StockAlert is an entry of the stock alert list. The mock never produces any.
type StockAlert struct {
	ID        string `json:"_id"`
	ProductID string `json:"productId"`
	OutletID  string `json:"outletId"`
	Message   string `json:"message"`
}
