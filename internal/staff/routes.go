package staff

import (
	"net/http"

	"github.com/joao-fontenele/abai-springs-mock/internal/router"
	"github.com/joao-fontenele/abai-springs-mock/internal/static"
)

const (
	StaffLoginPath     = "/staff-login"
	OwnerDashboardPath = "/owner-dashboard"
	HealthPath         = "/api/health"
	LoginPath          = "/api/auth/staff-login"
)

func (h *Handler) Register(rt *router.Router, root *static.Root) {
	rt.Handle(http.MethodGet, StaffLoginPath, root.Page("staff-login.html", "<h1>Staff Login Page Not Found</h1>"))
	rt.Handle(http.MethodGet, OwnerDashboardPath, root.Page("owner-dashboard.html", "<h1>Owner Dashboard Not Found</h1>"))
	rt.Handle(http.MethodGet, HealthPath, h.HandleHealth)
	rt.Handle(http.MethodPost, LoginPath, h.HandleLogin)

	rt.Fallback(http.MethodGet, "static", root)
	rt.Fallback(http.MethodHead, "static", root)
	rt.Fallback(http.MethodPost, "not-found", http.HandlerFunc(h.HandleNotFound))
}
