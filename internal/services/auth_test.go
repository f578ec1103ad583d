package services

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/droidablebee/person-service/internal/pkg/apierr"
	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/repos"
	"github.com/droidablebee/person-service/internal/types"
)

func newTestAuthService(t *testing.T, ttl time.Duration) AuthService {
	t.Helper()
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	directory := repos.NewMemoryUserDirectory(log, []*types.User{
		testUser(t, "user-without-roles", "password1"),
		testUser(t, "user-with-read-role", "password2", "person-read"),
		testUser(t, "user-with-write-role", "password3", "person-write"),
	})
	return NewAuthService(log, directory, "test-secret", ttl)
}

func testUser(t *testing.T, username, password string, permissions ...string) *types.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("bcrypt: %v", err)
	}
	return &types.User{Username: username, PasswordHash: string(hash), Permissions: permissions}
}

func TestAuthServiceLoginIssuesTokenWithPermissions(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	token, user, err := svc.Login("user-with-read-role", "password2")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if user.Username != "user-with-read-role" {
		t.Fatalf("unexpected user: %q", user.Username)
	}

	principal, err := svc.ParseToken(token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if principal.Username != "user-with-read-role" {
		t.Fatalf("principal username: got=%q", principal.Username)
	}
	if !principal.HasPermission("person-read") {
		t.Fatalf("principal missing person-read: %+v", principal.Permissions)
	}
	if principal.HasPermission("person-write") {
		t.Fatalf("principal granted person-write it should not have")
	}
}

func TestAuthServiceLoginFailures(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	cases := []struct {
		name       string
		username   string
		password   string
		wantStatus int
	}{
		{name: "missing_username", username: "", password: "password1", wantStatus: http.StatusBadRequest},
		{name: "missing_password", username: "user-without-roles", password: "", wantStatus: http.StatusBadRequest},
		{name: "missing_both", username: "", password: "", wantStatus: http.StatusBadRequest},
		{name: "unknown_user", username: "invalid", password: "invalid", wantStatus: http.StatusUnauthorized},
		{name: "wrong_password", username: "user-without-roles", password: "invalid", wantStatus: http.StatusUnauthorized},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, _, err := svc.Login(tc.username, tc.password)
			if err == nil {
				t.Fatalf("Login should fail")
			}
			var ae *apierr.Error
			if !errors.As(err, &ae) {
				t.Fatalf("error is not an apierr: %v", err)
			}
			if ae.StatusCode != tc.wantStatus {
				t.Fatalf("status: got=%d want=%d", ae.StatusCode, tc.wantStatus)
			}
		})
	}
}

func TestAuthServiceParseTokenRejectsForgedToken(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)

	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	otherDirectory := repos.NewMemoryUserDirectory(log, []*types.User{
		testUser(t, "user-with-read-role", "password2", "person-read"),
	})
	other := NewAuthService(log, otherDirectory, "other-secret", time.Hour)

	forged, _, err := other.Login("user-with-read-role", "password2")
	if err != nil {
		t.Fatalf("Login on other service: %v", err)
	}
	if _, err := svc.ParseToken(forged); err == nil {
		t.Fatalf("ParseToken accepted a token signed with another secret")
	}
}

func TestAuthServiceParseTokenRejectsExpiredToken(t *testing.T) {
	svc := newTestAuthService(t, -time.Minute)

	token, _, err := svc.Login("user-without-roles", "password1")
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if _, err := svc.ParseToken(token); err == nil {
		t.Fatalf("ParseToken accepted an expired token")
	}
}

func TestAuthServiceParseTokenRejectsGarbage(t *testing.T) {
	svc := newTestAuthService(t, time.Hour)
	if _, err := svc.ParseToken("not-a-jwt"); err == nil {
		t.Fatalf("ParseToken accepted garbage input")
	}
}
