package repos

import (
	"github.com/droidablebee/person-service/internal/pkg/logger"
	"github.com/droidablebee/person-service/internal/types"
)

// UserDirectory resolves login identities. The backing store is built once
// at startup and never mutated afterward, so lookups are safe for
// unsynchronized concurrent reads.
type UserDirectory interface {
	FindByUsername(username string) *types.User
}

type memoryUserDirectory struct {
	log   *logger.Logger
	users map[string]*types.User
}

func NewMemoryUserDirectory(baseLog *logger.Logger, users []*types.User) UserDirectory {
	dirLog := baseLog.With("repo", "UserDirectory")
	byName := make(map[string]*types.User, len(users))
	for _, u := range users {
		if u == nil || u.Username == "" {
			continue
		}
		byName[u.Username] = u
	}
	dirLog.Info("User directory loaded", "users", len(byName))
	return &memoryUserDirectory{log: dirLog, users: byName}
}

func (md *memoryUserDirectory) FindByUsername(username string) *types.User {
	return md.users[username]
}
