package app

import (
	"fmt"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/repos"
	"github.com/droidablebee/person-service/internal/types"
)

type Repos struct {
	Person        repos.PersonRepo
	UserDirectory repos.UserDirectory
}

func wireRepos(db *gorm.DB, log *logger.Logger, cfg Config) (Repos, error) {
	log.Info("Wiring repos...")

	users := make([]*types.User, 0, len(cfg.Users))
	for _, seed := range cfg.Users {
		hash, err := bcrypt.GenerateFromPassword([]byte(seed.Password), bcrypt.DefaultCost)
		if err != nil {
			return Repos{}, fmt.Errorf("hash password for %q: %w", seed.Username, err)
		}
		users = append(users, &types.User{
			Username:     seed.Username,
			PasswordHash: string(hash),
			Permissions:  seed.Permissions,
		})
	}

	return Repos{
		Person:        repos.NewPersonRepo(db, log),
		UserDirectory: repos.NewMemoryUserDirectory(log, users),
	}, nil
}
