package company

import "github.com/gin-gonic/gin"

// CompanyModule implements the app.Module interface for companies.
type CompanyModule struct {
	handler *CompanyHandler
}

// NewModule creates a new CompanyModule with the given handler.
// Panics if h is nil.
func NewModule(h *CompanyHandler) *CompanyModule {
	if h == nil {
		panic("company.NewModule: handler must not be nil")
	}
	return &CompanyModule{handler: h}
}

// RegisterRoutes registers the company view routes.
func (m *CompanyModule) RegisterRoutes(views *gin.RouterGroup) {
	views.GET("/companies", m.handler.List)
	views.GET("/companies/options", m.handler.Options)
	views.GET("/companies/:id", m.handler.Get)
	views.POST("/companies", m.handler.Create)
	views.PUT("/companies/:id", m.handler.Update)
	views.DELETE("/companies/:id", m.handler.Delete)
}
