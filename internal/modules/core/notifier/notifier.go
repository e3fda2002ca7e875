package notifier

import (
	"context"
	"fmt"

	"clinique-core/internal/infrastructure/database/redis"
	"clinique-core/internal/modules/core/models"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PatientFinder résout un patient pour retrouver son compte utilisateur
type PatientFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*models.Patient, error)
}

// NotificationStore persiste les notifications créées
type NotificationStore interface {
	Insert(ctx context.Context, notification *models.Notification) error
}

// Notifier crée les notifications internes liées aux actions métier.
// Toutes les méthodes sont best-effort : un patient sans compte est
// ignoré silencieusement et un échec d'écriture n'interrompt jamais
// l'opération appelante.
type Notifier struct {
	patients      PatientFinder
	notifications NotificationStore
	cache         *redis.Client
	logger        zerolog.Logger
}

func NewNotifier(patients PatientFinder, notifications NotificationStore, cache *redis.Client, logger zerolog.Logger) *Notifier {
	return &Notifier{
		patients:      patients,
		notifications: notifications,
		cache:         cache,
		logger:        logger.With().Str("component", "notifier").Logger(),
	}
}

// NotifyUser adresse une notification à un compte utilisateur connu
func (n *Notifier) NotifyUser(ctx context.Context, userID primitive.ObjectID, typeNotification, titre, message string) {
	notification := &models.Notification{
		UserID:           userID,
		TypeNotification: typeNotification,
		Titre:            titre,
		Message:          message,
	}

	if err := n.notifications.Insert(ctx, notification); err != nil {
		n.logger.Warn().Err(err).
			Str("type", typeNotification).
			Str("user_id", userID.Hex()).
			Msg("notification non enregistrée")
		return
	}

	n.invalidateUnread(ctx, userID)
}

// notifyPatient résout le compte lié au patient puis notifie.
// Sans compte lié, aucune notification n'est créée.
func (n *Notifier) notifyPatient(ctx context.Context, patientID primitive.ObjectID, typeNotification, titre, message string) {
	patient, err := n.patients.FindByID(ctx, patientID)
	if err != nil {
		n.logger.Warn().Err(err).Str("patient_id", patientID.Hex()).Msg("patient introuvable pour notification")
		return
	}
	if patient == nil || !patient.HasAccount() {
		return
	}

	n.NotifyUser(ctx, *patient.UserID, typeNotification, titre, message)
}

func (n *Notifier) RendezVousConfirme(ctx context.Context, patientID primitive.ObjectID, dateRdv, heureRdv, medecinNom string) {
	n.notifyPatient(ctx, patientID, models.NotifRdvConfirme,
		"Rendez-vous confirmé",
		fmt.Sprintf("Votre rendez-vous du %s à %s avec %s a été confirmé.", dateRdv, heureRdv, medecinNom))
}

func (n *Notifier) RendezVousAnnule(ctx context.Context, patientID primitive.ObjectID, dateRdv, heureRdv string) {
	n.notifyPatient(ctx, patientID, models.NotifRdvAnnule,
		"Rendez-vous annulé",
		fmt.Sprintf("Votre rendez-vous du %s à %s a été annulé.", dateRdv, heureRdv))
}

func (n *Notifier) DossierCree(ctx context.Context, patientID primitive.ObjectID, medecinNom string) {
	n.notifyPatient(ctx, patientID, models.NotifDossierCree,
		"Nouvelle consultation",
		fmt.Sprintf("%s a enregistré une nouvelle consultation dans votre dossier médical.", medecinNom))
}

func (n *Notifier) OrdonnanceDisponible(ctx context.Context, patientID primitive.ObjectID, medecinNom string) {
	n.notifyPatient(ctx, patientID, models.NotifOrdonnanceDisponible,
		"Nouvelle ordonnance",
		fmt.Sprintf("%s vous a prescrit une nouvelle ordonnance. Elle est disponible dans votre espace.", medecinNom))
}

func (n *Notifier) DocumentDisponible(ctx context.Context, patientID primitive.ObjectID, typeDocument string) {
	n.notifyPatient(ctx, patientID, models.NotifDocumentDisponible,
		"Nouveau document",
		fmt.Sprintf("Un document (%s) a été ajouté à votre dossier médical.", typeDocument))
}

func (n *Notifier) CompteCree(ctx context.Context, userID primitive.ObjectID) {
	n.NotifyUser(ctx, userID, models.NotifCompteCree,
		"Bienvenue",
		"Votre compte a été créé. Vos identifiants vous ont été transmis par email.")
}

// invalidateUnread purge le compteur de non-lus mis en cache
func (n *Notifier) invalidateUnread(ctx context.Context, userID primitive.ObjectID) {
	if n.cache == nil {
		return
	}

	key := n.cache.Keys().UnreadNotificationsKey(userID.Hex())
	if err := n.cache.Del(ctx, key); err != nil {
		n.logger.Debug().Err(err).Str("key", key).Msg("invalidation cache non-lus échouée")
	}
}
