package services

import (
	"context"
	"time"

	"clinique-core/internal/modules/core/models"
	"clinique-core/internal/modules/core/repository"
)

// Statistiques tableau de bord administrateur
type Statistiques struct {
	Patients           int64            `json:"patients"`
	PatientsAvecCompte int64            `json:"patients_avec_compte"`
	UsersParRole       map[string]int64 `json:"users_par_role"`
	RendezVous         RdvStats         `json:"rendezvous"`
	Consultations      ConsultStats     `json:"consultations"`
}

type RdvStats struct {
	Total      int64 `json:"total"`
	Demandes   int64 `json:"demandes"`
	Confirmes  int64 `json:"confirmes"`
	Annules    int64 `json:"annules"`
	Termines   int64 `json:"termines"`
	Aujourdhui int64 `json:"aujourdhui"`
}

type ConsultStats struct {
	Total        int64 `json:"total"`
	CetteSemaine int64 `json:"cette_semaine"`
	CeMois       int64 `json:"ce_mois"`
}

// StatsService agrège les compteurs des collections métier
type StatsService struct {
	patients *repository.PatientRepository
	users    *repository.UserRepository
	rdvs     *repository.RendezVousRepository
	dossiers *repository.DossierRepository
}

func NewStatsService(
	patients *repository.PatientRepository,
	users *repository.UserRepository,
	rdvs *repository.RendezVousRepository,
	dossiers *repository.DossierRepository,
) *StatsService {
	return &StatsService{
		patients: patients,
		users:    users,
		rdvs:     rdvs,
		dossiers: dossiers,
	}
}

// Collect calcule les statistiques globales
func (s *StatsService) Collect(ctx context.Context) (*Statistiques, error) {
	stats := &Statistiques{UsersParRole: map[string]int64{}}

	var err error
	if stats.Patients, err = s.patients.Count(ctx); err != nil {
		return nil, err
	}
	if stats.PatientsAvecCompte, err = s.patients.CountWithAccount(ctx); err != nil {
		return nil, err
	}

	for _, role := range []string{models.RoleAdmin, models.RoleMedecin, models.RoleSecretaire, models.RolePatient} {
		count, err := s.users.Count(ctx, role, false)
		if err != nil {
			return nil, err
		}
		stats.UsersParRole[role] = count
	}

	if stats.RendezVous.Total, err = s.rdvs.Count(ctx); err != nil {
		return nil, err
	}
	if stats.RendezVous.Demandes, err = s.rdvs.CountByStatut(ctx, models.StatutDemande); err != nil {
		return nil, err
	}
	if stats.RendezVous.Confirmes, err = s.rdvs.CountByStatut(ctx, models.StatutConfirme); err != nil {
		return nil, err
	}
	if stats.RendezVous.Annules, err = s.rdvs.CountByStatut(ctx, models.StatutAnnule); err != nil {
		return nil, err
	}
	if stats.RendezVous.Termines, err = s.rdvs.CountByStatut(ctx, models.StatutTermine); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	if stats.RendezVous.Aujourdhui, err = s.rdvs.CountByDate(ctx, now); err != nil {
		return nil, err
	}

	if stats.Consultations.Total, err = s.dossiers.Count(ctx); err != nil {
		return nil, err
	}

	// Semaine glissante et début du mois courant
	weekAgo := now.AddDate(0, 0, -7)
	if stats.Consultations.CetteSemaine, err = s.dossiers.CountSince(ctx, weekAgo); err != nil {
		return nil, err
	}
	monthStart := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)
	if stats.Consultations.CeMois, err = s.dossiers.CountSince(ctx, monthStart); err != nil {
		return nil, err
	}

	return stats, nil
}
