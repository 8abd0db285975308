package middleware

import (
	"context"
	"net/http"
	"strings"

	"calendo/internal/common"
	"calendo/internal/common/security"
	"calendo/internal/domain/model"

	"github.com/go-chi/jwtauth/v5"
)

type contextKey string

const (
	UsernameCtxKey contextKey = "username"
	UserRoleCtxKey contextKey = "userRole"
)

// Authenticator requires a valid session token and stashes its subject and
// role claim on the request context for the route guards.
func Authenticator(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token, claims, err := jwtauth.FromContext(r.Context())

		if err != nil {
			if strings.Contains(err.Error(), "token not found") || token == nil {
				common.RespondWithError(w, http.StatusUnauthorized, "Authorization token required")
			} else {
				common.RespondWithError(w, http.StatusUnauthorized, "Invalid token: "+err.Error())
			}
			return
		}

		if token == nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token")
			return
		}

		username, err := security.GetSubjectFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}
		role, err := security.GetRoleFromClaims(claims)
		if err != nil {
			common.RespondWithError(w, http.StatusUnauthorized, "Invalid token claims: "+err.Error())
			return
		}

		ctx := context.WithValue(r.Context(), UsernameCtxKey, username)
		ctx = context.WithValue(ctx, UserRoleCtxKey, role)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireRoles admits only requests whose token carries one of the given
// role claims.
func RequireRoles(roles ...string) func(http.Handler) http.Handler {
	allowed := make(map[string]struct{}, len(roles))
	for _, r := range roles {
		allowed[r] = struct{}{}
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			role, ok := r.Context().Value(UserRoleCtxKey).(string)
			if !ok {
				common.RespondWithError(w, http.StatusForbidden, "Role claim required")
				return
			}
			if _, ok := allowed[role]; !ok {
				common.RespondWithError(w, http.StatusForbidden, "Insufficient role")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// AdminOnly is shorthand for the most common guard.
func AdminOnly(next http.Handler) http.Handler {
	return RequireRoles(model.RoleAdmin)(next)
}

// Helper to get username from context
func GetUsernameFromContext(ctx context.Context) (string, bool) {
	username, ok := ctx.Value(UsernameCtxKey).(string)
	return username, ok
}

// Helper to get user role from context
func GetUserRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(UserRoleCtxKey).(string)
	return role, ok
}
