package models

import (
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

func TestOrdonnanceEmiseParMedecin(t *testing.T) {
	auteur := primitive.NewObjectID()
	autre := primitive.NewObjectID()

	ordonnance := &Ordonnance{MedecinID: auteur}

	if !ordonnance.EmiseParMedecin(auteur) {
		t.Error("l'auteur de l'ordonnance doit être reconnu comme propriétaire")
	}
	if ordonnance.EmiseParMedecin(autre) {
		t.Error("un autre médecin ne doit pas être reconnu comme propriétaire")
	}
}

func TestDocumentDeposeParMedecin(t *testing.T) {
	auteur := primitive.NewObjectID()
	autre := primitive.NewObjectID()

	document := &DocumentMedical{MedecinID: &auteur}

	if !document.DeposeParMedecin(auteur) {
		t.Error("le médecin ayant déposé le document doit être reconnu comme propriétaire")
	}
	if document.DeposeParMedecin(autre) {
		t.Error("un autre médecin ne doit pas être reconnu comme propriétaire")
	}

	sansMedecin := &DocumentMedical{}
	if sansMedecin.DeposeParMedecin(auteur) {
		t.Error("un document sans médecin rattaché n'appartient à aucun médecin")
	}
}
