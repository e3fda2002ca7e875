package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Statuts d'un rendez-vous
const (
	StatutDemande  = "demande"
	StatutConfirme = "confirme"
	StatutAnnule   = "annule"
	StatutTermine  = "termine"
)

// RendezVous représente un rendez-vous médical (collection rendezvous).
// DateRdv est tronquée à minuit UTC ; HeureRdv est le créneau "HH:MM".
type RendezVous struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PatientID primitive.ObjectID `bson:"patient_id" json:"patient_id"`
	MedecinID primitive.ObjectID `bson:"medecin_id" json:"medecin_id"`
	DateRdv   time.Time          `bson:"date_rdv" json:"date_rdv"`
	HeureRdv  string             `bson:"heure_rdv" json:"heure_rdv"`
	Motif     string             `bson:"motif,omitempty" json:"motif,omitempty"`
	Statut    string             `bson:"statut" json:"statut"`
	Notes     string             `bson:"notes,omitempty" json:"notes,omitempty"`
	CreatedAt time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt time.Time          `bson:"updated_at" json:"updated_at"`
}

// EstActif indique si le rendez-vous occupe encore son créneau
func (r *RendezVous) EstActif() bool {
	return r.Statut == StatutDemande || r.Statut == StatutConfirme
}
