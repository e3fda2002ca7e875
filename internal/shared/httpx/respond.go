package httpx

import (
	"errors"
	"net/http"

	"clinique-core/internal/modules/core/domainerr"

	"github.com/gin-gonic/gin"
)

// RespondError traduit une erreur métier en réponse JSON standardisée.
// Les erreurs non typées sont masquées derrière un 500 générique ; le
// détail est déposé dans le contexte gin pour le middleware de
// journalisation, jamais exposé au client.
func RespondError(c *gin.Context, err error) {
	var domainErr *domainerr.DomainError
	if errors.As(err, &domainErr) {
		c.JSON(domainerr.HTTPStatus(domainErr.Code), gin.H{
			"error": domainErr.Message,
			"details": gin.H{
				"code": domainErr.Code,
			},
		})
		return
	}

	_ = c.Error(err)
	c.JSON(http.StatusInternalServerError, gin.H{
		"error": "Erreur serveur",
		"details": gin.H{
			"code": domainerr.CodeInternal,
		},
	})
}

// RespondValidation répond 400 avec un message de validation
func RespondValidation(c *gin.Context, message string) {
	RespondError(c, domainerr.Validation(message))
}
