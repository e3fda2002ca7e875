package agenda

import (
	"context"
	"time"

	"clinique-core/internal/modules/core/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SlotSource expose les créneaux occupés d'un médecin pour un jour
type SlotSource interface {
	OccupiedSlots(ctx context.Context, medecinID primitive.ObjectID, date time.Time) ([]string, error)
}

// Service calcule les disponibilités et règle les transitions de statut
// des rendez-vous.
type Service struct {
	slots SlotSource
}

func NewService(slots SlotSource) *Service {
	return &Service{slots: slots}
}

// FreeSlots retourne les créneaux libres d'un médecin pour un jour,
// dans l'ordre de la grille.
func (s *Service) FreeSlots(ctx context.Context, medecinID primitive.ObjectID, date time.Time) ([]string, error) {
	occupied, err := s.slots.OccupiedSlots(ctx, medecinID, date)
	if err != nil {
		return nil, err
	}

	taken := make(map[string]bool, len(occupied))
	for _, h := range occupied {
		taken[h] = true
	}

	free := []string{}
	for _, slot := range Grid() {
		if !taken[slot] {
			free = append(free, slot)
		}
	}
	return free, nil
}

// CheckDisponibilite indique si un créneau précis est libre.
// Une heure hors grille n'est jamais disponible.
func (s *Service) CheckDisponibilite(ctx context.Context, medecinID primitive.ObjectID, date time.Time, heure string) (bool, error) {
	if !ValidSlot(heure) {
		return false, nil
	}

	occupied, err := s.slots.OccupiedSlots(ctx, medecinID, date)
	if err != nil {
		return false, err
	}

	for _, h := range occupied {
		if h == heure {
			return false, nil
		}
	}
	return true, nil
}

// CanTransition vérifie une transition de statut de rendez-vous.
// demande -> confirme | annule ; confirme -> annule | termine.
// Les statuts annule et termine sont finaux.
func CanTransition(from, to string) bool {
	switch from {
	case models.StatutDemande:
		return to == models.StatutConfirme || to == models.StatutAnnule
	case models.StatutConfirme:
		return to == models.StatutAnnule || to == models.StatutTermine
	default:
		return false
	}
}
