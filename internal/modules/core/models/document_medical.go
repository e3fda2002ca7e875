package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Types de documents médicaux
const (
	DocumentRadio   = "radiographie"
	DocumentAnalyse = "analyse"
	DocumentEcho    = "echographie"
	DocumentScanner = "scanner"
	DocumentIRM     = "irm"
	DocumentAutre   = "autre"
)

// DocumentMedical représente un fichier rattaché au dossier d'un patient
// (collection documents_medicaux). Le contenu est stocké en base64.
type DocumentMedical struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	PatientID    primitive.ObjectID  `bson:"patient_id" json:"patient_id"`
	DossierID    *primitive.ObjectID `bson:"dossier_id,omitempty" json:"dossier_id,omitempty"`
	MedecinID    *primitive.ObjectID `bson:"medecin_id,omitempty" json:"medecin_id,omitempty"`
	TypeDocument string              `bson:"type_document" json:"type_document"`
	NomFichier   string              `bson:"nom_fichier" json:"nom_fichier"`
	FileData     string              `bson:"file_data" json:"-"`
	FileType     string              `bson:"file_type" json:"file_type"`
	FileSize     int64               `bson:"file_size" json:"file_size"`
	Description  string              `bson:"description,omitempty" json:"description,omitempty"`
	DateExamen   *time.Time          `bson:"date_examen,omitempty" json:"date_examen,omitempty"`
	CreatedAt    time.Time           `bson:"created_at" json:"created_at"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updated_at"`
}

// DeposeParMedecin vérifie que le document a été déposé par ce médecin.
// Un document sans médecin rattaché n'appartient à personne.
func (d *DocumentMedical) DeposeParMedecin(medecinID primitive.ObjectID) bool {
	return d.MedecinID != nil && *d.MedecinID == medecinID
}
