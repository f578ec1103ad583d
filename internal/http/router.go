package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/droidablebee/person-service/internal/http/handlers"
	httpMW "github.com/droidablebee/person-service/internal/http/middleware"
	"github.com/droidablebee/person-service/internal/pkg/logger"
)

const (
	PersonReadPermission  = "person-read"
	PersonWritePermission = "person-write"
)

type RouterConfig struct {
	Log *logger.Logger

	AuthHandler    *httpH.AuthHandler
	AuthMiddleware *httpMW.AuthMiddleware
	PersonHandler  *httpH.PersonHandler
	HealthHandler  *httpH.HealthHandler
}

// NewRouter builds the route table. The collection route is plural
// (/v1/persons) while the item routes stay singular (/v1/person/:id), so
// a non-numeric path segment can never be mistaken for the collection.
func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(httpMW.RequestID())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Auth (public)
	if cfg.AuthHandler != nil {
		r.POST("/login", cfg.AuthHandler.Login)
	}

	v1 := r.Group("/v1")
	{
		if cfg.AuthMiddleware != nil {
			v1.Use(cfg.AuthMiddleware.RequireAuth())
		}

		if cfg.PersonHandler != nil && cfg.AuthMiddleware != nil {
			v1.GET("/persons", cfg.AuthMiddleware.RequirePermission(PersonReadPermission), cfg.PersonHandler.List)
			v1.GET("/person/:id", cfg.AuthMiddleware.RequirePermission(PersonReadPermission), cfg.PersonHandler.Get)
			v1.POST("/person", cfg.AuthMiddleware.RequirePermission(PersonWritePermission), cfg.PersonHandler.Create)
			v1.PUT("/person/:id", cfg.AuthMiddleware.RequirePermission(PersonWritePermission), cfg.PersonHandler.Update)
		}
	}

	return r
}
