package app

import (
	"gorm.io/gorm"

	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/services"
)

type Services struct {
	Auth   services.AuthService
	Person services.PersonService
}

func wireServices(db *gorm.DB, log *logger.Logger, cfg Config, reposet Repos) Services {
	log.Info("Wiring services...")
	return Services{
		Auth:   services.NewAuthService(log, reposet.UserDirectory, cfg.JWTSecretKey, cfg.AccessTokenTTL),
		Person: services.NewPersonService(db, log, reposet.Person),
	}
}
