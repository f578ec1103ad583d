package services

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"golang.org/x/crypto/bcrypt"

	"github.com/droidablebee/person-service/internal/pkg/apierr"
	"github.com/droidablebee/person-service/internal/pkg/ctxutil"
	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/repos"
	"github.com/droidablebee/person-service/internal/types"
)

type JWTClaims struct {
	Permissions []string `json:"permissions"`
	jwt.RegisteredClaims
}

// AuthService validates username/password logins against the user
// directory and turns the result into a stateless bearer token carrying
// the granted permission set. Token validation is pure claim parsing: no
// directory lookup happens on authenticated requests.
type AuthService interface {
	Login(username, password string) (string, *types.User, error)
	ParseToken(tokenString string) (*ctxutil.Principal, error)
	AccessTTL() time.Duration
}

type authService struct {
	log          *logger.Logger
	directory    repos.UserDirectory
	jwtSecretKey string
	accessTTL    time.Duration
}

func NewAuthService(log *logger.Logger, directory repos.UserDirectory, jwtSecretKey string, accessTTL time.Duration) AuthService {
	serviceLog := log.With("service", "AuthService")
	return &authService{
		log:          serviceLog,
		directory:    directory,
		jwtSecretKey: jwtSecretKey,
		accessTTL:    accessTTL,
	}
}

func (as *authService) Login(username, password string) (string, *types.User, error) {
	if username == "" || password == "" {
		return "", nil, apierr.New(http.StatusBadRequest, "invalid_request", errors.New("username and password are required"))
	}

	user := as.directory.FindByUsername(username)
	if user == nil {
		as.log.Warn("Login for unknown user", "username", username)
		return "", nil, apierr.New(http.StatusUnauthorized, "invalid_credentials", errors.New("invalid username or password"))
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		as.log.Warn("Login with wrong password", "username", username)
		return "", nil, apierr.New(http.StatusUnauthorized, "invalid_credentials", errors.New("invalid username or password"))
	}

	token, err := as.generateAccessToken(user)
	if err != nil {
		return "", nil, apierr.New(http.StatusInternalServerError, "token_issuance_failed", err)
	}
	return token, user, nil
}

func (as *authService) generateAccessToken(user *types.User) (string, error) {
	now := time.Now()
	claims := JWTClaims{
		Permissions: user.Permissions,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.Username,
			ExpiresAt: jwt.NewNumericDate(now.Add(as.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(as.jwtSecretKey))
}

func (as *authService) ParseToken(tokenString string) (*ctxutil.Principal, error) {
	parsedToken, err := jwt.ParseWithClaims(tokenString, &JWTClaims{}, func(token *jwt.Token) (interface{}, error) {
		return []byte(as.jwtSecretKey), nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}
	claims, ok := parsedToken.Claims.(*JWTClaims)
	if !ok || !parsedToken.Valid {
		return nil, errors.New("invalid or expired token")
	}
	return &ctxutil.Principal{
		Username:    claims.Subject,
		Permissions: claims.Permissions,
		TokenString: tokenString,
	}, nil
}

func (as *authService) AccessTTL() time.Duration {
	return as.accessTTL
}
