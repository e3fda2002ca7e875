package logger

import (
	"bytes"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"clinique-core/internal/shared/httpx"
)

func TestRequestLoggerInternalError(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var journal bytes.Buffer
	lm := NewMiddleware(zerolog.New(&journal))

	router := gin.New()
	router.Use(lm.RequestLogger())
	router.GET("/boom", func(c *gin.Context) {
		httpx.RespondError(c, errors.New("connexion à la base perdue"))
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/boom", nil))

	if recorder.Code != http.StatusInternalServerError {
		t.Fatalf("statut = %d, attendu 500", recorder.Code)
	}
	if strings.Contains(recorder.Body.String(), "connexion à la base perdue") {
		t.Error("le détail de l'erreur ne doit jamais être exposé au client")
	}
	if !strings.Contains(journal.String(), "connexion à la base perdue") {
		t.Errorf("le détail de l'erreur doit être journalisé, journal: %s", journal.String())
	}
}

func TestRequestLoggerSkipsHealthEndpoints(t *testing.T) {
	gin.SetMode(gin.TestMode)

	var journal bytes.Buffer
	lm := NewMiddleware(zerolog.New(&journal))

	router := gin.New()
	router.Use(lm.RequestLogger())
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/health", nil))

	if journal.Len() != 0 {
		t.Errorf("les sondes de santé ne doivent pas être journalisées, journal: %s", journal.String())
	}
}
