package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"inzider/pkg/authz"
	"inzider/pkg/utils"
)

const identityKey = "identity"

// JWTAuthMiddleware parses the bearer token into an authz.Identity and
// stores it on the request context. Requests without a valid token are
// rejected here; kind checks happen in RequireKind.
func JWTAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			utils.RespondError(c, http.StatusUnauthorized, "Authorization header missing or invalid")
			c.Abort()
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := utils.ValidateToken(tokenString)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		accountID, err := uuid.Parse(claims.AccountID)
		if err != nil {
			utils.RespondError(c, http.StatusUnauthorized, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set(identityKey, authz.Identity{
			AccountID:          accountID,
			Kind:               authz.AccountKind(claims.Kind),
			NeedsTypeSelection: claims.NeedsTypeSelection,
			Authenticated:      true,
		})
		c.Next()
	}
}

// RequireKind gates a route group on the account kind carried by the
// session, via the authz policy.
func RequireKind(kind authz.AccountKind) gin.HandlerFunc {
	return func(c *gin.Context) {
		decision := authz.Evaluate(IdentityFrom(c), authz.Requirement{Kind: kind})
		if decision.Allow {
			c.Next()
			return
		}

		switch decision.Reason {
		case authz.ReasonUnauthenticated:
			utils.RespondError(c, http.StatusUnauthorized, "Authentication required")
		case authz.ReasonNeedsTypeSelection:
			utils.RespondError(c, http.StatusForbidden, "Account type selection required")
		default:
			utils.RespondError(c, http.StatusForbidden, "Forbidden: insufficient permissions")
		}
		c.Abort()
	}
}

// IdentityFrom returns the identity set by JWTAuthMiddleware, or a
// zero (unauthenticated) identity when the middleware did not run.
func IdentityFrom(c *gin.Context) authz.Identity {
	if v, ok := c.Get(identityKey); ok {
		if id, ok := v.(authz.Identity); ok {
			return id
		}
	}
	return authz.Identity{}
}
