package services

import (
	"context"
	"time"

	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// RendezVousView rendez-vous enrichi des noms patient et médecin
type RendezVousView struct {
	models.RendezVous
	PatientNom string `json:"patient_nom"`
	MedecinNom string `json:"medecin_nom"`
}

// RendezVousAdminService vue administrative des rendez-vous
type RendezVousAdminService struct {
	rdvs     *repository.RendezVousRepository
	patients *repository.PatientRepository
	medecins *repository.MedecinRepository
	users    *repository.UserRepository
}

func NewRendezVousAdminService(
	rdvs *repository.RendezVousRepository,
	patients *repository.PatientRepository,
	medecins *repository.MedecinRepository,
	users *repository.UserRepository,
) *RendezVousAdminService {
	return &RendezVousAdminService{
		rdvs:     rdvs,
		patients: patients,
		medecins: medecins,
		users:    users,
	}
}

// List retourne les rendez-vous filtrés, enrichis des noms
func (s *RendezVousAdminService) List(ctx context.Context, statut string, date *time.Time, medecinID *primitive.ObjectID) ([]RendezVousView, error) {
	var rdvs []models.RendezVous
	var err error

	if medecinID != nil {
		rdvs, err = s.rdvs.FindByMedecin(ctx, *medecinID, statut, date, date)
	} else {
		rdvs, err = s.rdvs.FindAll(ctx, statut, date, 200)
	}
	if err != nil {
		return nil, err
	}

	return s.enrich(ctx, rdvs)
}

func (s *RendezVousAdminService) enrich(ctx context.Context, rdvs []models.RendezVous) ([]RendezVousView, error) {
	patientIDs := make([]primitive.ObjectID, 0, len(rdvs))
	for _, rdv := range rdvs {
		patientIDs = append(patientIDs, rdv.PatientID)
	}

	patients, err := s.patients.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}

	medecinNoms := map[string]string{}
	views := make([]RendezVousView, 0, len(rdvs))
	for _, rdv := range rdvs {
		view := RendezVousView{RendezVous: rdv}

		if patient, ok := patients[rdv.PatientID.Hex()]; ok {
			view.PatientNom = patient.Prenom + " " + patient.Nom
		}

		key := rdv.MedecinID.Hex()
		if nom, ok := medecinNoms[key]; ok {
			view.MedecinNom = nom
		} else {
			medecin, err := s.medecins.FindByID(ctx, rdv.MedecinID)
			if err != nil {
				return nil, err
			}
			if medecin != nil {
				user, err := s.users.FindByID(ctx, medecin.UserID)
				if err != nil {
					return nil, err
				}
				if user != nil {
					medecinNoms[key] = "Dr " + user.FullName()
					view.MedecinNom = medecinNoms[key]
				}
			}
		}

		views = append(views, view)
	}
	return views, nil
}
