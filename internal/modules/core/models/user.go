package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Rôles applicatifs
const (
	RoleAdmin      = "admin"
	RoleMedecin    = "medecin"
	RoleSecretaire = "secretaire"
	RolePatient    = "patient"
)

// User représente un utilisateur du système (collection users)
type User struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         string             `bson:"role" json:"role"`
	Nom          string             `bson:"nom,omitempty" json:"nom"`
	Prenom       string             `bson:"prenom,omitempty" json:"prenom"`
	Telephone    string             `bson:"telephone,omitempty" json:"telephone"`
	IsActive     bool               `bson:"is_active" json:"is_active"`
	CreatedAt    time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updated_at"`
}

// FullName retourne "Prenom Nom" pour affichage
func (u *User) FullName() string {
	if u.Prenom == "" {
		return u.Nom
	}
	return u.Prenom + " " + u.Nom
}
