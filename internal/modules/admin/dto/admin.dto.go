package dto

// CreateUserRequest création d'un compte par l'administration.
// Sans mot de passe fourni, un mot de passe temporaire est généré.
type CreateUserRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password"`
	Role        string `json:"role" binding:"required,oneof=admin medecin secretaire"`
	Nom         string `json:"nom" binding:"required"`
	Prenom      string `json:"prenom"`
	Telephone   string `json:"telephone"`
	Specialite  string `json:"specialite"`
	NumeroOrdre string `json:"numero_ordre"`
}

// UpdateUserRequest mise à jour d'un compte
type UpdateUserRequest struct {
	Nom         string `json:"nom"`
	Prenom      string `json:"prenom"`
	Telephone   string `json:"telephone"`
	IsActive    *bool  `json:"is_active"`
	Specialite  string `json:"specialite"`
	NumeroOrdre string `json:"numero_ordre"`
}

// SpecialiteRequest ajout d'une spécialité
type SpecialiteRequest struct {
	Nom string `json:"nom" binding:"required"`
}

// CliniqueRequest mise à jour de la configuration de la clinique
type CliniqueRequest struct {
	Nom         string            `json:"nom" binding:"required"`
	Description string            `json:"description"`
	Adresse     string            `json:"adresse"`
	Telephone   string            `json:"telephone"`
	Email       string            `json:"email"`
	Horaires    map[string]string `json:"horaires"`
	Services    []string          `json:"services"`
}
