package services

import (
	"context"
	"time"

	"clinique-core/internal/modules/agenda"
	"clinique-core/internal/modules/core/domainerr"
	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MedecinPublic est la vue publique d'un médecin, sans données de compte
type MedecinPublic struct {
	ID              primitive.ObjectID `json:"_id"`
	Nom             string             `json:"nom"`
	Prenom          string             `json:"prenom"`
	NomComplet      string             `json:"nom_complet"`
	Specialite      string             `json:"specialite"`
	NumeroOrdre     string             `json:"numero_ordre,omitempty"`
	HorairesTravail map[string]string  `json:"horaires_travail,omitempty"`
}

// PublicService vitrine non authentifiée de la clinique
type PublicService struct {
	clinique *repository.CliniqueRepository
	medecins *repository.MedecinRepository
	users    *repository.UserRepository
	agenda   *agenda.Service
}

func NewPublicService(
	clinique *repository.CliniqueRepository,
	medecins *repository.MedecinRepository,
	users *repository.UserRepository,
	agendaService *agenda.Service,
) *PublicService {
	return &PublicService{
		clinique: clinique,
		medecins: medecins,
		users:    users,
		agenda:   agendaService,
	}
}

// Info retourne la configuration publique de la clinique
func (s *PublicService) Info(ctx context.Context) (models.CliniqueConfig, error) {
	return s.clinique.GetConfig(ctx)
}

// ListMedecins liste les médecins dont le compte est actif
func (s *PublicService) ListMedecins(ctx context.Context, specialite string) ([]MedecinPublic, error) {
	medecins, err := s.medecins.FindAll(ctx, specialite)
	if err != nil {
		return nil, err
	}

	result := []MedecinPublic{}
	for _, m := range medecins {
		user, err := s.users.FindByID(ctx, m.UserID)
		if err != nil {
			return nil, err
		}
		if user == nil || !user.IsActive {
			continue
		}

		result = append(result, MedecinPublic{
			ID:              m.ID,
			Nom:             user.Nom,
			Prenom:          user.Prenom,
			NomComplet:      "Dr " + user.FullName(),
			Specialite:      m.Specialite,
			NumeroOrdre:     m.NumeroOrdre,
			HorairesTravail: m.HorairesTravail,
		})
	}
	return result, nil
}

// Disponibilite retourne les créneaux libres d'un médecin pour un jour
func (s *PublicService) Disponibilite(ctx context.Context, medecinID primitive.ObjectID, date time.Time) ([]string, error) {
	medecin, err := s.medecins.FindByID(ctx, medecinID)
	if err != nil {
		return nil, err
	}
	if medecin == nil {
		return nil, domainerr.NotFound("Médecin introuvable")
	}

	return s.agenda.FreeSlots(ctx, medecinID, date)
}

// Specialites liste les spécialités proposées
func (s *PublicService) Specialites(ctx context.Context) ([]string, error) {
	return s.clinique.ListSpecialites(ctx)
}
