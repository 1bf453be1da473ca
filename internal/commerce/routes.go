package commerce

import (
	"net/http"

	"github.com/joao-fontenele/abai-springs-mock/internal/router"
	"github.com/joao-fontenele/abai-springs-mock/internal/static"
)

const (
	AdminPath      = "/admin-fixed"
	AdminDashboard = "/admin-dashboard-fixed.html"
)

// Register installs the commerce routes in priority order: API routes, the admin
// rewrite, then the static and not-found fallbacks.
func (h *Handler) Register(rt *router.Router, root *static.Root) {
	rt.Handle(http.MethodGet, "/api/health", h.HandleHealth)
	rt.Handle(http.MethodGet, "/api/products", h.HandleProducts)
	rt.Handle(http.MethodGet, "/api/outlets", h.HandleOutlets)
	rt.Handle(http.MethodGet, "/api/orders", h.HandleOrders)
	rt.Handle(http.MethodGet, "/api/auth/users", h.HandleUsers)
	rt.Handle(http.MethodGet, "/api/stock-alerts/statistics", h.HandleStockAlertStats)
	rt.Handle(http.MethodGet, "/api/stock-alerts", h.HandleStockAlerts)
	rt.Handle(http.MethodPost, "/api/stock-alerts/monitoring/start", h.HandleMonitoring)
	rt.Handle(http.MethodPost, "/api/stock-alerts/monitoring/stop", h.HandleMonitoring)

	rt.Handle(http.MethodGet, AdminPath, root.Rewrite(AdminDashboard))

	rt.Fallback(http.MethodGet, "static", root)
	rt.Fallback(http.MethodHead, "static", root)
	rt.Fallback(http.MethodPost, "not-found", http.HandlerFunc(h.HandleNotFound))
}
