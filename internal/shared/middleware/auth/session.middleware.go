package auth

import (
	"context"
	"strings"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/shared/httpx"
)

const principalKey = "principal"

// Principal identifie l'utilisateur authentifié dans le contexte Gin
type Principal struct {
	UserID primitive.ObjectID
	Role   string
	Email  string
	Token  string
}

// SessionResolver résout un token vers sa session active
type SessionResolver interface {
	Resolve(ctx context.Context, token string) (*models.Session, error)
}

// UserSource charge l'utilisateur porteur de la session
type UserSource interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.User, error)
}

// AuthMiddleware valide le token Bearer et injecte le Principal
type AuthMiddleware struct {
	sessions SessionResolver
	users    UserSource
}

func NewAuthMiddleware(sessions SessionResolver, users UserSource) *AuthMiddleware {
	return &AuthMiddleware{sessions: sessions, users: users}
}

// Handler retourne le middleware Gin de validation de session
func (m *AuthMiddleware) Handler() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractBearerToken(c.GetHeader("Authorization"))
		if token == "" {
			abortWith(c, domainerr.New(domainerr.CodeUnauthenticated, "Authentification requise"))
			return
		}

		session, err := m.sessions.Resolve(c.Request.Context(), token)
		if err != nil {
			abortWith(c, err)
			return
		}
		if session == nil {
			abortWith(c, domainerr.New(domainerr.CodeUnauthenticated, "Session invalide ou expirée"))
			return
		}

		user, err := m.users.FindByID(c.Request.Context(), session.UserID)
		if err != nil {
			abortWith(c, err)
			return
		}
		if user == nil {
			abortWith(c, domainerr.New(domainerr.CodeUnauthenticated, "Session invalide ou expirée"))
			return
		}
		if !user.IsActive {
			abortWith(c, domainerr.New(domainerr.CodeInactiveAccount, "Ce compte est désactivé"))
			return
		}

		c.Set(principalKey, Principal{
			UserID: user.ID,
			Role:   user.Role,
			Email:  user.Email,
			Token:  token,
		})

		c.Next()
	}
}

// RequireRoles restreint l'accès aux rôles listés.
// S'applique après Handler.
func RequireRoles(roles ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			abortWith(c, domainerr.New(domainerr.CodeUnauthenticated, "Authentification requise"))
			return
		}

		for _, role := range roles {
			if principal.Role == role {
				c.Next()
				return
			}
		}

		abortWith(c, domainerr.Forbidden("Accès refusé pour ce rôle"))
	}
}

// CurrentPrincipal retourne le Principal injecté par Handler
func CurrentPrincipal(c *gin.Context) (Principal, bool) {
	value, exists := c.Get(principalKey)
	if !exists {
		return Principal{}, false
	}
	principal, ok := value.(Principal)
	return principal, ok
}

func extractBearerToken(header string) string {
	if header == "" {
		return ""
	}

	parts := strings.Split(header, " ")
	if len(parts) != 2 || strings.ToLower(parts[0]) != "bearer" {
		return ""
	}
	return parts[1]
}

func abortWith(c *gin.Context, err error) {
	httpx.RespondError(c, err)
	c.Abort()
}
