package dto

// PatientRequest création ou mise à jour d'une fiche patient
type PatientRequest struct {
	Nom                   string `json:"nom" binding:"required"`
	Prenom                string `json:"prenom" binding:"required"`
	Email                 string `json:"email"`
	Telephone             string `json:"telephone"`
	DateNaissance         string `json:"date_naissance"`
	Adresse               string `json:"adresse"`
	Ville                 string `json:"ville"`
	CodePostal            string `json:"code_postal"`
	Sexe                  string `json:"sexe"`
	NumeroSecuriteSociale string `json:"numero_securite_sociale"`
}

// CreateRendezVousRequest prise de rendez-vous par le secrétariat
type CreateRendezVousRequest struct {
	PatientID string `json:"patient_id" binding:"required"`
	MedecinID string `json:"medecin_id" binding:"required"`
	DateRdv   string `json:"date_rdv" binding:"required"`
	HeureRdv  string `json:"heure_rdv" binding:"required"`
	Motif     string `json:"motif"`
}

// UpdateRendezVousRequest modification d'un rendez-vous
type UpdateRendezVousRequest struct {
	DateRdv  string `json:"date_rdv"`
	HeureRdv string `json:"heure_rdv"`
	Motif    string `json:"motif"`
	Notes    string `json:"notes"`
}
