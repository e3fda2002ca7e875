package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"clinique-core/internal/modules/auth/dto"
	"clinique-core/internal/modules/auth/services"
	"clinique-core/internal/shared/httpx"
	authMiddleware "clinique-core/internal/shared/middleware/auth"
)

// AuthController endpoints d'authentification
type AuthController struct {
	auth *services.AuthService
}

func NewAuthController(auth *services.AuthService) *AuthController {
	return &AuthController{auth: auth}
}

// Login POST /api/auth/login
func (ctrl *AuthController) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Email et mot de passe requis")
		return
	}

	session, user, err := ctrl.auth.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.LoginResponse{
		Token: session.Token,
		User:  user,
	})
}

// Logout POST /api/auth/logout
func (ctrl *AuthController) Logout(c *gin.Context) {
	principal, ok := authMiddleware.CurrentPrincipal(c)
	if ok {
		if err := ctrl.auth.Logout(c.Request.Context(), principal.Token); err != nil {
			httpx.RespondError(c, err)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"message": "Déconnexion réussie"})
}

// Me GET /api/auth/me
func (ctrl *AuthController) Me(c *gin.Context) {
	principal, _ := authMiddleware.CurrentPrincipal(c)

	user, err := ctrl.auth.CurrentUser(c.Request.Context(), principal.UserID)
	if err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user})
}

// ForgotPassword POST /api/auth/forgot-password
func (ctrl *AuthController) ForgotPassword(c *gin.Context) {
	var req dto.ForgotPasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Email requis")
		return
	}

	if err := ctrl.auth.ForgotPassword(c.Request.Context(), req.Email); err != nil {
		httpx.RespondError(c, err)
		return
	}

	// Réponse identique que l'email existe ou non
	c.JSON(http.StatusOK, gin.H{
		"message": "Si un compte existe avec cet email, un nouveau mot de passe a été envoyé",
	})
}

// ChangePassword POST /api/auth/change-password
func (ctrl *AuthController) ChangePassword(c *gin.Context) {
	var req dto.ChangePasswordRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httpx.RespondValidation(c, "Mot de passe actuel et nouveau mot de passe requis")
		return
	}

	principal, _ := authMiddleware.CurrentPrincipal(c)
	if err := ctrl.auth.ChangePassword(c.Request.Context(), principal.UserID, req.CurrentPassword, req.NewPassword); err != nil {
		httpx.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Mot de passe modifié avec succès"})
}
