package auth

import (
	"context"

	"cardexcli/src/model"
)

type contextKey string

const UserKey contextKey = "user"

// WithUser returns a copy of ctx carrying the authenticated demo API user.
func WithUser(ctx context.Context, user *model.User) context.Context {
	return context.WithValue(ctx, UserKey, user)
}

func GetUserFromContext(ctx context.Context) (*model.User, bool) {
	user, ok := ctx.Value(UserKey).(*model.User)
	return user, ok
}
