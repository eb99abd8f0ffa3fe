package application

import "github.com/gin-gonic/gin"

// JobApplicationModule implements the app.Module interface for job applications.
type JobApplicationModule struct {
	handler *JobApplicationHandler
}

// NewModule creates a new JobApplicationModule with the given handler.
// Panics if h is nil.
func NewModule(h *JobApplicationHandler) *JobApplicationModule {
	if h == nil {
		panic("application.NewModule: handler must not be nil")
	}
	return &JobApplicationModule{handler: h}
}

// RegisterRoutes registers the job application view routes.
func (m *JobApplicationModule) RegisterRoutes(views *gin.RouterGroup) {
	views.GET("/applications", m.handler.List)
	views.GET("/applications/:id", m.handler.Get)
	views.POST("/applications", m.handler.Create)
	views.PUT("/applications/:id", m.handler.Update)
	views.DELETE("/applications/:id", m.handler.Delete)
}
