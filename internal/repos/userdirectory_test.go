package repos

import (
	"testing"

	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/types"
)

func TestMemoryUserDirectoryFindByUsername(t *testing.T) {
	log, err := logger.New("test")
	if err != nil {
		t.Fatalf("logger.New: %v", err)
	}
	directory := NewMemoryUserDirectory(log, []*types.User{
		{Username: "user-with-read-role", PasswordHash: "x", Permissions: []string{"person-read"}},
		nil,
		{Username: "", PasswordHash: "ignored"},
	})

	user := directory.FindByUsername("user-with-read-role")
	if user == nil {
		t.Fatalf("expected known user to resolve")
	}
	if len(user.Permissions) != 1 || user.Permissions[0] != "person-read" {
		t.Fatalf("permissions: %v", user.Permissions)
	}

	if directory.FindByUsername("nobody") != nil {
		t.Fatalf("unknown user should resolve to nil")
	}
	if directory.FindByUsername("") != nil {
		t.Fatalf("empty username should resolve to nil")
	}
}
