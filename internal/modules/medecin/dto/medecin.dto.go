package dto

import "clinique-core/internal/shared/utils"

// CreateDossierRequest création d'une consultation.
// Les constantes vitales tolèrent chaînes numériques, null et valeurs
// malformées, qui deviennent des champs absents.
type CreateDossierRequest struct {
	PatientID         string              `json:"patient_id" binding:"required"`
	DateConsultation  string              `json:"date_consultation"`
	Observations      string              `json:"observations"`
	Diagnostic        string              `json:"diagnostic"`
	ExamenClinique    string              `json:"examen_clinique"`
	Poids             utils.OptionalFloat `json:"poids"`
	Taille            utils.OptionalFloat `json:"taille"`
	TensionArterielle string              `json:"tension_arterielle"`
	Temperature       utils.OptionalFloat `json:"temperature"`
}

// UpdateDossierRequest mise à jour d'une consultation existante
type UpdateDossierRequest struct {
	Observations      string              `json:"observations"`
	Diagnostic        string              `json:"diagnostic"`
	ExamenClinique    string              `json:"examen_clinique"`
	Poids             utils.OptionalFloat `json:"poids"`
	Taille            utils.OptionalFloat `json:"taille"`
	TensionArterielle string              `json:"tension_arterielle"`
	Temperature       utils.OptionalFloat `json:"temperature"`
}

// TraitementRequest ligne de prescription
type TraitementRequest struct {
	Medicament string `json:"medicament" binding:"required"`
	Posologie  string `json:"posologie" binding:"required"`
	Duree      string `json:"duree"`
}

// CreateOrdonnanceRequest création d'une ordonnance
type CreateOrdonnanceRequest struct {
	PatientID    string              `json:"patient_id" binding:"required"`
	Traitements  []TraitementRequest `json:"traitements" binding:"required,min=1,dive"`
	Instructions string              `json:"instructions"`
}
