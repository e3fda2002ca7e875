package dto

// InscriptionRequest auto-inscription d'un patient
type InscriptionRequest struct {
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=8"`
	Nom           string `json:"nom" binding:"required"`
	Prenom        string `json:"prenom" binding:"required"`
	Telephone     string `json:"telephone"`
	DateNaissance string `json:"date_naissance"`
	Adresse       string `json:"adresse"`
	Ville         string `json:"ville"`
	CodePostal    string `json:"code_postal"`
	Sexe          string `json:"sexe"`
}

// DemandeRendezVousRequest demande de rendez-vous par le patient
type DemandeRendezVousRequest struct {
	MedecinID string `json:"medecin_id" binding:"required"`
	DateRdv   string `json:"date_rdv" binding:"required"`
	HeureRdv  string `json:"heure_rdv" binding:"required"`
	Motif     string `json:"motif"`
}

// UpdateProfilRequest mise à jour du profil par le patient
type UpdateProfilRequest struct {
	Telephone  string `json:"telephone"`
	Adresse    string `json:"adresse"`
	Ville      string `json:"ville"`
	CodePostal string `json:"code_postal"`
}
