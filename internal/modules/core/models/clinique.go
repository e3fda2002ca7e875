package models

import "go.mongodb.org/mongo-driver/bson/primitive"

// CliniqueConfig est le document unique de configuration publique
// de la clinique (collection clinique_config).
type CliniqueConfig struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Nom         string             `bson:"nom" json:"nom"`
	Description string             `bson:"description,omitempty" json:"description"`
	Adresse     string             `bson:"adresse,omitempty" json:"adresse"`
	Telephone   string             `bson:"telephone,omitempty" json:"telephone"`
	Email       string             `bson:"email,omitempty" json:"email"`
	Horaires    map[string]string  `bson:"horaires,omitempty" json:"horaires"`
	Services    []string           `bson:"services,omitempty" json:"services"`
}

// DefaultCliniqueConfig retourne la configuration par défaut utilisée
// tant qu'aucun document n'existe en base.
func DefaultCliniqueConfig() CliniqueConfig {
	return CliniqueConfig{
		Nom:         "Clinique Médicale",
		Description: "Votre santé est notre priorité. Nous offrons des soins médicaux de qualité avec une équipe de professionnels expérimentés.",
		Adresse:     "123 Rue de la Santé, 75000 Paris",
		Telephone:   "+33 1 23 45 67 89",
		Email:       "contact@clinique-medicale.fr",
		Horaires: map[string]string{
			"lundi":    "08:00 - 18:00",
			"mardi":    "08:00 - 18:00",
			"mercredi": "08:00 - 18:00",
			"jeudi":    "08:00 - 18:00",
			"vendredi": "08:00 - 18:00",
			"samedi":   "09:00 - 13:00",
			"dimanche": "Fermé",
		},
		Services: []string{
			"Consultation générale",
			"Médecine spécialisée",
			"Examens médicaux",
			"Suivi médical",
			"Urgences",
		},
	}
}

// DefaultSpecialites est la liste de référence des spécialités
var DefaultSpecialites = []string{
	"Médecine générale",
	"Cardiologie",
	"Dermatologie",
	"Endocrinologie",
	"Gastro-entérologie",
	"Gynécologie",
	"Neurologie",
	"Ophtalmologie",
	"Orthopédie",
	"Pédiatrie",
	"Pneumologie",
	"Psychiatrie",
	"Radiologie",
	"Rhumatologie",
	"Urologie",
}
