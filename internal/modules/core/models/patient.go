package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Patient représente un patient de la clinique (collection patients).
// UserID est renseigné uniquement si le patient possède un compte.
type Patient struct {
	ID                    primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	Nom                   string              `bson:"nom" json:"nom"`
	Prenom                string              `bson:"prenom" json:"prenom"`
	Email                 string              `bson:"email,omitempty" json:"email,omitempty"`
	Telephone             string              `bson:"telephone,omitempty" json:"telephone,omitempty"`
	DateNaissance         string              `bson:"date_naissance,omitempty" json:"date_naissance,omitempty"`
	Adresse               string              `bson:"adresse,omitempty" json:"adresse,omitempty"`
	Ville                 string              `bson:"ville,omitempty" json:"ville,omitempty"`
	CodePostal            string              `bson:"code_postal,omitempty" json:"code_postal,omitempty"`
	Sexe                  string              `bson:"sexe,omitempty" json:"sexe,omitempty"`
	NumeroSecuriteSociale string              `bson:"numero_securite_sociale,omitempty" json:"numero_securite_sociale,omitempty"`
	UserID                *primitive.ObjectID `bson:"user_id,omitempty" json:"user_id,omitempty"`
	CreatedAt             time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt             time.Time           `bson:"updated_at" json:"updated_at"`
}

// HasAccount indique si le patient est lié à un compte utilisateur
func (p *Patient) HasAccount() bool {
	return p.UserID != nil && !p.UserID.IsZero()
}
