package app

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/simp-lee/jobtracker/internal/pkg"
)

// Pinger reports whether the job-tracker backend is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

// RouteDeps holds all dependencies needed to register routes.
type RouteDeps struct {
	Modules []Module
	Backend Pinger
}

// RegisterRoutes registers all application routes on the given gin.Engine.
func RegisterRoutes(r *gin.Engine, deps *RouteDeps) error {
	if r == nil {
		return errors.New("router is nil")
	}
	if deps == nil {
		return errors.New("route dependencies are nil")
	}
	if len(deps.Modules) == 0 {
		return errors.New("at least one module is required")
	}

	r.GET("/health", healthHandler(deps.Backend))

	views := r.Group("/views")
	for i, m := range deps.Modules {
		if m == nil {
			return fmt.Errorf("module at index %d is nil", i)
		}
		m.RegisterRoutes(views)
	}

	r.HandleMethodNotAllowed = true
	r.NoRoute(notFoundHandler())
	r.NoMethod(methodNotAllowedHandler())

	return nil
}

// healthHandler pings the backend and reports status.
func healthHandler(backend Pinger) gin.HandlerFunc {
	return func(c *gin.Context) {
		apiStatus := "ok"
		status := "ok"
		code := http.StatusOK

		if backend == nil {
			apiStatus = "error"
		} else {
			ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
			defer cancel()
			if err := backend.Ping(ctx); err != nil {
				apiStatus = "error"
			}
		}
		if apiStatus != "ok" {
			status = "degraded"
			code = http.StatusServiceUnavailable
		}

		c.JSON(code, gin.H{
			"status": status,
			"components": gin.H{
				"api": apiStatus,
			},
		})
	}
}

func notFoundHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusNotFound, pkg.Response{Errors: []string{"not found"}})
	}
}

func methodNotAllowedHandler() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, pkg.Response{Errors: []string{"method not allowed"}})
	}
}
