package token

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"blog_backend/internal/api"
	"blog_backend/internal/feature/user/domain/entity"
)

// ContextUser is the Gin context key under which the authenticated user is stored.
const ContextUser = "currentUser"

// ContextUserID is the Gin context key under which the authenticated user ID is stored.
const ContextUserID = "userID"

// SessionVerifier verifies a session token and returns the user ID it identifies.
// Following Go convention: interfaces are defined by the consumer (middleware), not the provider.
type SessionVerifier interface {
	VerifySession(tokenStr string) (uint, error)
}

// UserLoader loads a user by ID for attaching to the request context.
type UserLoader interface {
	FindByID(ctx context.Context, id uint) (*entity.User, error)
}

// AuthRequired returns a Gin middleware that validates a bearer session
// token, loads the referenced user and attaches it to the context. It is
// the single access guard for all protected routes: the token travels in
// the Authorization header only, and only the session secret verifies it.
func AuthRequired(verifier SessionVerifier, users UserLoader) gin.HandlerFunc {
	return func(c *gin.Context) {
		auth := c.GetHeader("Authorization")
		if !strings.HasPrefix(auth, "Bearer ") {
			api.AbortWithError(c, http.StatusUnauthorized, "not authorised, no token")
			return
		}
		tokenStr := strings.TrimPrefix(auth, "Bearer ")

		userID, err := verifier.VerifySession(tokenStr)
		if err != nil {
			api.AbortWithError(c, http.StatusUnauthorized, "not authorised, invalid token")
			return
		}

		user, err := users.FindByID(c.Request.Context(), userID)
		if err != nil {
			// トークンは有効だがユーザーが既に存在しない場合も401を返す
			api.AbortWithError(c, http.StatusUnauthorized, "not authorised, user not found")
			return
		}

		c.Set(ContextUser, user)
		c.Set(ContextUserID, user.ID)
		c.Next()
	}
}

// CurrentUser returns the authenticated user attached by AuthRequired.
func CurrentUser(c *gin.Context) (*entity.User, bool) {
	v, ok := c.Get(ContextUser)
	if !ok {
		return nil, false
	}
	user, ok := v.(*entity.User)
	return user, ok
}
