package auth

import (
	"context"

	"github.com/Sumatoha/shaq-web/internal/model"
)

type contextKey struct{}

// AuthContext travels with every authenticated editor request.
type AuthContext struct {
	SessionID string
	Token     string
	User      model.User
}

func WithAuth(ctx context.Context, ac AuthContext) context.Context {
	return context.WithValue(ctx, contextKey{}, ac)
}

func FromContext(ctx context.Context) (AuthContext, bool) {
	ac, ok := ctx.Value(contextKey{}).(AuthContext)
	return ac, ok
}

// Token returns the persistence API bearer token, or "" when anonymous.
func Token(ctx context.Context) string {
	ac, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return ac.Token
}

// SessionID returns the login session id, or "" when anonymous.
func SessionID(ctx context.Context) string {
	ac, ok := FromContext(ctx)
	if !ok {
		return ""
	}
	return ac.SessionID
}

// IsPremium reports whether the user is on a paid plan.
func IsPremium(ctx context.Context) bool {
	ac, ok := FromContext(ctx)
	if !ok {
		return false
	}
	return ac.User.Plan == "standard" || ac.User.Plan == "premium"
}
