package app

import (
	httpH "github.com/droidablebee/person-service/internal/http/handlers"
	"github.com/droidablebee/person-service/internal/pkg/logger"
)

type Handlers struct {
	Health *httpH.HealthHandler
	Auth   *httpH.AuthHandler
	Person *httpH.PersonHandler
}

func wireHandlers(log *logger.Logger, cfg Config, serviceset Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health: httpH.NewHealthHandler(),
		Auth:   httpH.NewAuthHandler(serviceset.Auth),
		Person: httpH.NewPersonHandler(log, serviceset.Person, cfg.DefaultPageSize, cfg.MaxPageSize),
	}
}
