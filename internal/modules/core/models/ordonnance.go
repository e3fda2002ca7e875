package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Traitement est une ligne de prescription
type Traitement struct {
	Medicament string `bson:"medicament" json:"medicament"`
	Posologie  string `bson:"posologie" json:"posologie"`
	Duree      string `bson:"duree" json:"duree"`
}

// Ordonnance représente une prescription (collection ordonnances).
// PDFData est le rendu PDF en base64, généré paresseusement puis mis en cache.
type Ordonnance struct {
	ID             primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	PatientID      primitive.ObjectID `bson:"patient_id" json:"patient_id"`
	MedecinID      primitive.ObjectID `bson:"medecin_id" json:"medecin_id"`
	DateOrdonnance time.Time          `bson:"date_ordonnance" json:"date_ordonnance"`
	Traitements    []Traitement       `bson:"traitements" json:"traitements"`
	Instructions   string             `bson:"instructions,omitempty" json:"instructions,omitempty"`
	PDFData        string             `bson:"pdf_data,omitempty" json:"-"`
	CreatedAt      time.Time          `bson:"created_at" json:"created_at"`
	UpdatedAt      time.Time          `bson:"updated_at" json:"updated_at"`
}

// EmiseParMedecin vérifie que l'ordonnance a été émise par ce médecin
func (o *Ordonnance) EmiseParMedecin(medecinID primitive.ObjectID) bool {
	return o.MedecinID == medecinID
}
