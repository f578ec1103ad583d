package ctxutil

import (
	"context"
)

type principalKeyType struct{}

var principalKey = principalKeyType{}

// Principal is the authenticated identity attached to a request after the
// bearer token has been validated. Permissions come from the token claims,
// not from a per-request directory lookup.
type Principal struct {
	Username    string
	Permissions []string
	TokenString string
}

func (p *Principal) HasPermission(perm string) bool {
	if p == nil {
		return false
	}
	for _, granted := range p.Permissions {
		if granted == perm {
			return true
		}
	}
	return false
}

func WithPrincipal(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, principalKey, p)
}

func GetPrincipal(ctx context.Context) *Principal {
	if p, ok := ctx.Value(principalKey).(*Principal); ok {
		return p
	}
	return nil
}
