package auth

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinique-core/internal/modules/core/models"
)

type stubSessionResolver struct {
	sessions map[string]*models.Session
}

func (s *stubSessionResolver) Resolve(_ context.Context, token string) (*models.Session, error) {
	return s.sessions[token], nil
}

type stubUserSource struct {
	users map[primitive.ObjectID]*models.User
}

func (s *stubUserSource) FindByID(_ context.Context, id primitive.ObjectID) (*models.User, error) {
	return s.users[id], nil
}

func newTestRouter(middleware *AuthMiddleware, roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	handlers := []gin.HandlerFunc{middleware.Handler()}
	if len(roles) > 0 {
		handlers = append(handlers, RequireRoles(roles...))
	}
	handlers = append(handlers, func(c *gin.Context) {
		principal, ok := CurrentPrincipal(c)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "principal absent"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"email": principal.Email, "role": principal.Role})
	})

	r.GET("/protected", handlers...)
	return r
}

func request(r *gin.Engine, authorization string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func testFixtures() (*stubSessionResolver, *stubUserSource, *models.User) {
	user := &models.User{
		ID:       primitive.NewObjectID(),
		Email:    "medecin@clinique.fr",
		Role:     models.RoleMedecin,
		IsActive: true,
	}

	sessions := &stubSessionResolver{sessions: map[string]*models.Session{
		"token-valide": {
			Token:     "token-valide",
			UserID:    user.ID,
			Role:      user.Role,
			Email:     user.Email,
			ExpiresAt: time.Now().Add(time.Hour),
		},
	}}
	users := &stubUserSource{users: map[primitive.ObjectID]*models.User{user.ID: user}}

	return sessions, users, user
}

func TestHandlerMissingToken(t *testing.T) {
	sessions, users, _ := testFixtures()
	r := newTestRouter(NewAuthMiddleware(sessions, users))

	for _, header := range []string{"", "Basic abc", "Bearer", "token-valide"} {
		w := request(r, header)
		if w.Code != http.StatusUnauthorized {
			t.Errorf("header %q: attendu 401, obtenu %d", header, w.Code)
		}
	}
}

func TestHandlerUnknownSession(t *testing.T) {
	sessions, users, _ := testFixtures()
	r := newTestRouter(NewAuthMiddleware(sessions, users))

	w := request(r, "Bearer token-inconnu")
	if w.Code != http.StatusUnauthorized {
		t.Errorf("attendu 401, obtenu %d", w.Code)
	}
}

func TestHandlerInactiveUser(t *testing.T) {
	sessions, users, user := testFixtures()
	user.IsActive = false
	r := newTestRouter(NewAuthMiddleware(sessions, users))

	w := request(r, "Bearer token-valide")
	if w.Code != http.StatusForbidden {
		t.Errorf("attendu 403, obtenu %d", w.Code)
	}
}

func TestHandlerValidSession(t *testing.T) {
	sessions, users, user := testFixtures()
	r := newTestRouter(NewAuthMiddleware(sessions, users))

	w := request(r, "Bearer token-valide")
	if w.Code != http.StatusOK {
		t.Fatalf("attendu 200, obtenu %d (%s)", w.Code, w.Body.String())
	}
	if body := w.Body.String(); !strings.Contains(body, user.Email) {
		t.Errorf("le principal doit porter l'email de l'utilisateur, obtenu %s", body)
	}
}

func TestRequireRoles(t *testing.T) {
	sessions, users, _ := testFixtures()
	middleware := NewAuthMiddleware(sessions, users)

	allowed := newTestRouter(middleware, models.RoleMedecin, models.RoleAdmin)
	if w := request(allowed, "Bearer token-valide"); w.Code != http.StatusOK {
		t.Errorf("rôle autorisé: attendu 200, obtenu %d", w.Code)
	}

	denied := newTestRouter(middleware, models.RoleSecretaire)
	if w := request(denied, "Bearer token-valide"); w.Code != http.StatusForbidden {
		t.Errorf("rôle refusé: attendu 403, obtenu %d", w.Code)
	}
}

func TestExtractBearerToken(t *testing.T) {
	tests := []struct {
		header string
		want   string
	}{
		{"Bearer abc123", "abc123"},
		{"bearer abc123", "abc123"},
		{"", ""},
		{"Bearer", ""},
		{"Basic abc123", ""},
		{"Bearer a b", ""},
	}

	for _, tt := range tests {
		if got := extractBearerToken(tt.header); got != tt.want {
			t.Errorf("extractBearerToken(%q) = %q, attendu %q", tt.header, got, tt.want)
		}
	}
}
