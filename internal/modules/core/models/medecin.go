package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Medecin représente le profil médical d'un utilisateur médecin
// (collection medecins, une fiche par compte médecin).
type Medecin struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID          primitive.ObjectID `bson:"user_id" json:"user_id"`
	Specialite      string             `bson:"specialite" json:"specialite"`
	NumeroOrdre     string             `bson:"numero_ordre,omitempty" json:"numero_ordre,omitempty"`
	HorairesTravail map[string]string  `bson:"horaires_travail,omitempty" json:"horaires_travail,omitempty"`
	SignatureData   string             `bson:"signature_data,omitempty" json:"-"`
	SignatureType   string             `bson:"signature_type,omitempty" json:"signature_type,omitempty"`
	CreatedAt       time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt       time.Time          `bson:"updated_at" json:"updated_at"`
}
