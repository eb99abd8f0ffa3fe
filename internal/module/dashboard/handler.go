package dashboard

import (
	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/domain"
	"github.com/simp-lee/jobtracker/internal/pkg"
)

// DashboardHandler serves the dashboard view.
type DashboardHandler struct {
	svc domain.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler with the given service.
func NewDashboardHandler(svc domain.DashboardService) *DashboardHandler {
	return &DashboardHandler{svc: svc}
}

// Get handles GET /views/dashboard.
func (h *DashboardHandler) Get(c *gin.Context) {
	o, err := h.svc.Overview(c.Request.Context())
	if err != nil {
		pkg.Error(c, err)
		return
	}

	pkg.Success(c, BuildView(*o))
}
