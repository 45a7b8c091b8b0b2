// Package principal хранит аутентифицированного пользователя в контексте запроса.
package principal

import (
	"context"

	"restaurant-admin/internal/entities"
)

type ctxKey struct{}

func WithPrincipal(ctx context.Context, p entities.Principal) context.Context {
	return context.WithValue(ctx, ctxKey{}, p)
}

func FromContext(ctx context.Context) (entities.Principal, bool) {
	p, ok := ctx.Value(ctxKey{}).(entities.Principal)
	return p, ok
}
