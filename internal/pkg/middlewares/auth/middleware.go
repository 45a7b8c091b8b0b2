package auth

import (
	"net/http"
	"slices"
	"strings"

	"restaurant-admin/internal/entities"
	"restaurant-admin/internal/pkg/principal"
	"restaurant-admin/pkg/logger"
)

const bearerPrefix = "Bearer "

// Middleware пропускает запрос только с валидным токеном одной из ролей roles.
// Токен берется из Authorization, для websocket из query параметра token.
func Middleware(log handlerLogger, parser TokenParser, roles ...entities.UserRole) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := extractToken(r)
			if token == "" {
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			claims, err := parser.Parse(token)
			if err != nil {
				log.With(
					logger.NewField("path", r.URL.Path),
					logger.NewField("error", err),
				).Warn("rejected token")
				w.Header().Set("WWW-Authenticate", "Bearer")
				w.WriteHeader(http.StatusUnauthorized)
				return
			}

			p := entities.Principal{
				UserID:       claims.UserID,
				Role:         entities.UserRole(claims.Role),
				RestaurantID: claims.RestaurantID,
			}

			if !slices.Contains(roles, p.Role) {
				w.WriteHeader(http.StatusForbidden)
				return
			}
			if p.Role == entities.RoleBranchAdmin && p.RestaurantID <= 0 {
				w.WriteHeader(http.StatusForbidden)
				return
			}

			next.ServeHTTP(w, r.WithContext(principal.WithPrincipal(r.Context(), p)))
		})
	}
}

func extractToken(r *http.Request) string {
	header := r.Header.Get("Authorization")
	if strings.HasPrefix(header, bearerPrefix) {
		return strings.TrimSpace(strings.TrimPrefix(header, bearerPrefix))
	}
	return r.URL.Query().Get("token")
}
