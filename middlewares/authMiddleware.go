package middleware

import (
	"context"
	"net/http"
	"strings"

	helper "github.com/02priyeshraj/Restaurant_Management_Backend/helper"
	"github.com/02priyeshraj/Restaurant_Management_Backend/models"
	"github.com/02priyeshraj/Restaurant_Management_Backend/pkg/logger"
)

// Context keys to store request-scoped values
type contextKey string

const (
	ClaimsKey    contextKey = "claims"
	ActorKey     contextKey = "actor"
	RequestIDKey contextKey = "request_id"
)

// RevocationChecker reports whether an access token id has been revoked.
type RevocationChecker interface {
	IsRevoked(ctx context.Context, jti string) (bool, error)
}

// Authentication validates the Bearer access token and stores the claims
// and caller identity in the request context.
func Authentication(tokens *helper.TokenManager, revocations RevocationChecker, log logger.ILogger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			clientToken := r.Header.Get("Authorization")
			if clientToken == "" {
				helper.SuccessEnvelope.Fail(w, http.StatusUnauthorized, "No Authorization header provided")
				return
			}

			// Token format should be "Bearer <token>"
			tokenParts := strings.Fields(clientToken)
			if len(tokenParts) != 2 || !strings.EqualFold(tokenParts[0], "Bearer") {
				helper.SuccessEnvelope.Fail(w, http.StatusUnauthorized, "Invalid Authorization format")
				return
			}

			claims, err := tokens.ValidateToken(tokenParts[1])
			if err != nil {
				helper.SuccessEnvelope.Fail(w, http.StatusUnauthorized, err.Error())
				return
			}

			if revocations != nil {
				revoked, err := revocations.IsRevoked(r.Context(), claims.ID)
				if err != nil {
					log.Error("revocation lookup failed", logger.Error(err))
					helper.SuccessEnvelope.Fail(w, http.StatusInternalServerError, "Internal server error")
					return
				}
				if revoked {
					helper.SuccessEnvelope.Fail(w, http.StatusUnauthorized, "token has been revoked")
					return
				}
			}

			actor, err := claims.Actor()
			if err != nil {
				helper.SuccessEnvelope.Fail(w, http.StatusUnauthorized, "the token is invalid")
				return
			}

			ctx := context.WithValue(r.Context(), ClaimsKey, claims)
			ctx = context.WithValue(ctx, ActorKey, actor)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// RequireRoles lets the request through only if the authenticated caller
// holds one of roles.
func RequireRoles(roles ...models.Role) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			actor, ok := ActorFromContext(r.Context())
			if !ok {
				helper.SuccessEnvelope.Fail(w, http.StatusUnauthorized, "Authentication required")
				return
			}
			for _, role := range roles {
				if actor.Role == role {
					next.ServeHTTP(w, r)
					return
				}
			}
			helper.SuccessEnvelope.Fail(w, http.StatusForbidden, "You do not have permission to perform this action")
		})
	}
}

// GetUserFromContext retrieves the token claims from the request context
func GetUserFromContext(r *http.Request) (*helper.SignedDetails, bool) {
	claims, ok := r.Context().Value(ClaimsKey).(*helper.SignedDetails)
	return claims, ok
}

func ActorFromContext(ctx context.Context) (models.Actor, bool) {
	actor, ok := ctx.Value(ActorKey).(models.Actor)
	return actor, ok
}
