package app

import "github.com/gin-gonic/gin"

// Module defines the contract for a self-registering view module.
// Each module registers its routes under the /views group.
type Module interface {
	RegisterRoutes(views *gin.RouterGroup)
}
