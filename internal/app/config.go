package app

import (
	"time"

	httpapi "github.com/droidablebee/person-service/internal/http"
	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/utils"
)

type UserSeed struct {
	Username    string
	Password    string
	Permissions []string
}

type Config struct {
	Port            string
	JWTSecretKey    string
	AccessTokenTTL  time.Duration
	DefaultPageSize int
	MaxPageSize     int
	Users           []UserSeed
}

// LoadConfig reads the environment. The bootstrap directory users mirror
// the upstream fixture accounts; deployments override the secret and can
// swap the directory out entirely at wiring time.
func LoadConfig(log *logger.Logger) Config {
	port := utils.GetEnv("PORT", "8080", log)
	jwtSecretKey := utils.GetEnv("JWT_SECRET_KEY", "defaultsecret", log)
	accessTokenTTLSeconds := utils.GetEnvAsInt("ACCESS_TOKEN_TTL", 3600, log)
	defaultPageSize := utils.GetEnvAsInt("DEFAULT_PAGE_SIZE", 100, log)
	maxPageSize := utils.GetEnvAsInt("MAX_PAGE_SIZE", 100, log)

	return Config{
		Port:            port,
		JWTSecretKey:    jwtSecretKey,
		AccessTokenTTL:  time.Duration(accessTokenTTLSeconds) * time.Second,
		DefaultPageSize: defaultPageSize,
		MaxPageSize:     maxPageSize,
		Users: []UserSeed{
			{Username: "user-without-roles", Password: utils.GetEnv("USER_WITHOUT_ROLES_PASSWORD", "password1", log)},
			{Username: "user-with-read-role", Password: utils.GetEnv("USER_WITH_READ_ROLE_PASSWORD", "password2", log), Permissions: []string{httpapi.PersonReadPermission}},
			{Username: "user-with-write-role", Password: utils.GetEnv("USER_WITH_WRITE_ROLE_PASSWORD", "password3", log), Permissions: []string{httpapi.PersonWritePermission}},
		},
	}
}
