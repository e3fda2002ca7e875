package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Types de notifications
const (
	NotifRdvConfirme          = "rdv_confirme"
	NotifRdvAnnule            = "rdv_annule"
	NotifRdvRappel            = "rdv_rappel"
	NotifCompteCree           = "compte_cree"
	NotifDocumentDisponible   = "document_disponible"
	NotifOrdonnanceDisponible = "ordonnance_disponible"
	NotifDossierCree          = "dossier_cree"
	NotifAutre                = "autre"
)

// Notification représente un message adressé à un utilisateur
// (collection notifications). Seul le flag is_read est mutable.
type Notification struct {
	ID               primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	UserID           primitive.ObjectID `bson:"user_id" json:"user_id"`
	TypeNotification string             `bson:"type_notification" json:"type_notification"`
	Titre            string             `bson:"titre" json:"titre"`
	Message          string             `bson:"message" json:"message"`
	IsRead           bool               `bson:"is_read" json:"is_read"`
	Lien             string             `bson:"lien,omitempty" json:"lien,omitempty"`
	CreatedAt        time.Time          `bson:"created_at" json:"created_at"`
}
