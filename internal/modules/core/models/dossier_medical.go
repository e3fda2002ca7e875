package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// DossierMedical représente une consultation (collection dossiers_medicaux).
// Les constantes vitales sont optionnelles : une valeur absente ou
// malformée côté client est enregistrée comme absente, jamais comme zéro.
type DossierMedical struct {
	ID                primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PatientID         primitive.ObjectID `bson:"patient_id" json:"patient_id"`
	MedecinID         primitive.ObjectID `bson:"medecin_id" json:"medecin_id"`
	DateConsultation  time.Time          `bson:"date_consultation" json:"date_consultation"`
	Observations      string             `bson:"observations,omitempty" json:"observations,omitempty"`
	Diagnostic        string             `bson:"diagnostic,omitempty" json:"diagnostic,omitempty"`
	ExamenClinique    string             `bson:"examen_clinique,omitempty" json:"examen_clinique,omitempty"`
	Poids             *float64           `bson:"poids,omitempty" json:"poids,omitempty"`
	Taille            *float64           `bson:"taille,omitempty" json:"taille,omitempty"`
	TensionArterielle string             `bson:"tension_arterielle,omitempty" json:"tension_arterielle,omitempty"`
	Temperature       *float64           `bson:"temperature,omitempty" json:"temperature,omitempty"`
	CreatedAt         time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt         time.Time          `bson:"updated_at" json:"updated_at"`
}
