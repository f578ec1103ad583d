package app

import (
	httpapi "github.com/droidablebee/person-service/internal/http"
	"github.com/droidablebee/person-service/internal/pkg/logger"
)

func wireRouter(log *logger.Logger, handlerset Handlers, middleware Middleware) *httpapi.Server {
	return httpapi.NewServer(httpapi.RouterConfig{
		Log:            log,
		HealthHandler:  handlerset.Health,
		AuthHandler:    handlerset.Auth,
		AuthMiddleware: middleware.Auth,
		PersonHandler:  handlerset.Person,
	})
}
