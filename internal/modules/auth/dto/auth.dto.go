package dto

// LoginRequest identifiants de connexion
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// ForgotPasswordRequest demande de réinitialisation
type ForgotPasswordRequest struct {
	Email string `json:"email" binding:"required,email"`
}

// ChangePasswordRequest changement de mot de passe
type ChangePasswordRequest struct {
	CurrentPassword string `json:"current_password" binding:"required"`
	NewPassword     string `json:"new_password" binding:"required"`
}

// LoginResponse session ouverte
type LoginResponse struct {
	Token string      `json:"token"`
	User  interface{} `json:"user"`
}
