package notifier

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"clinique-core/internal/modules/core/models"
)

type stubPatientFinder struct {
	patients map[primitive.ObjectID]*models.Patient
	err      error
}

func (s *stubPatientFinder) FindByID(_ context.Context, id primitive.ObjectID) (*models.Patient, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.patients[id], nil
}

type stubNotificationStore struct {
	inserted []*models.Notification
	err      error
}

func (s *stubNotificationStore) Insert(_ context.Context, notification *models.Notification) error {
	if s.err != nil {
		return s.err
	}
	s.inserted = append(s.inserted, notification)
	return nil
}

func newTestNotifier(patients *stubPatientFinder, store *stubNotificationStore) *Notifier {
	return NewNotifier(patients, store, nil, zerolog.Nop())
}

func TestNotifyUser(t *testing.T) {
	store := &stubNotificationStore{}
	n := newTestNotifier(&stubPatientFinder{}, store)

	userID := primitive.NewObjectID()
	n.NotifyUser(context.Background(), userID, models.NotifCompteCree, "Bienvenue", "Votre compte a été créé.")

	if len(store.inserted) != 1 {
		t.Fatalf("1 notification attendue, obtenu %d", len(store.inserted))
	}
	notif := store.inserted[0]
	if notif.UserID != userID {
		t.Errorf("user_id attendu %s, obtenu %s", userID.Hex(), notif.UserID.Hex())
	}
	if notif.TypeNotification != models.NotifCompteCree {
		t.Errorf("type attendu %s, obtenu %s", models.NotifCompteCree, notif.TypeNotification)
	}
}

func TestNotifyPatientWithAccount(t *testing.T) {
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: &userID}

	store := &stubNotificationStore{}
	patients := &stubPatientFinder{patients: map[primitive.ObjectID]*models.Patient{patient.ID: patient}}
	n := newTestNotifier(patients, store)

	n.RendezVousConfirme(context.Background(), patient.ID, "2026-09-15", "09:30", "Dr Martin")

	if len(store.inserted) != 1 {
		t.Fatalf("1 notification attendue, obtenu %d", len(store.inserted))
	}
	if store.inserted[0].UserID != userID {
		t.Error("la notification doit viser le compte lié au patient")
	}
	if store.inserted[0].TypeNotification != models.NotifRdvConfirme {
		t.Errorf("type attendu %s, obtenu %s", models.NotifRdvConfirme, store.inserted[0].TypeNotification)
	}
}

func TestNotifyPatientWithoutAccount(t *testing.T) {
	patient := &models.Patient{ID: primitive.NewObjectID()}

	store := &stubNotificationStore{}
	patients := &stubPatientFinder{patients: map[primitive.ObjectID]*models.Patient{patient.ID: patient}}
	n := newTestNotifier(patients, store)

	n.RendezVousAnnule(context.Background(), patient.ID, "2026-09-15", "09:30")

	if len(store.inserted) != 0 {
		t.Errorf("un patient sans compte ne doit pas être notifié, obtenu %d notifications", len(store.inserted))
	}
}

func TestNotifyPatientUnknown(t *testing.T) {
	store := &stubNotificationStore{}
	n := newTestNotifier(&stubPatientFinder{}, store)

	n.DossierCree(context.Background(), primitive.NewObjectID(), "Dr Martin")

	if len(store.inserted) != 0 {
		t.Errorf("un patient introuvable ne doit produire aucune notification")
	}
}

func TestNotifyBestEffort(t *testing.T) {
	userID := primitive.NewObjectID()
	patient := &models.Patient{ID: primitive.NewObjectID(), UserID: &userID}

	// ni l'échec de résolution ni celui d'insertion ne doivent paniquer
	patients := &stubPatientFinder{err: errors.New("mongo indisponible")}
	n := newTestNotifier(patients, &stubNotificationStore{})
	n.OrdonnanceDisponible(context.Background(), patient.ID, "Dr Martin")

	patients = &stubPatientFinder{patients: map[primitive.ObjectID]*models.Patient{patient.ID: patient}}
	n = newTestNotifier(patients, &stubNotificationStore{err: errors.New("écriture refusée")})
	n.DocumentDisponible(context.Background(), patient.ID, "radiographie")
}
