package agenda

import (
	"context"
	"testing"
	"time"

	"clinique-core/internal/modules/core/models"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type stubSlotSource struct {
	occupied []string
	err      error
}

func (s *stubSlotSource) OccupiedSlots(ctx context.Context, medecinID primitive.ObjectID, date time.Time) ([]string, error) {
	return s.occupied, s.err
}

func TestGrid(t *testing.T) {
	grid := Grid()

	if len(grid) != 20 {
		t.Fatalf("expected 20 slots, got %d", len(grid))
	}
	if grid[0] != "08:00" {
		t.Errorf("expected first slot 08:00, got %s", grid[0])
	}
	if grid[len(grid)-1] != "17:30" {
		t.Errorf("expected last slot 17:30, got %s", grid[len(grid)-1])
	}
	if grid[3] != "09:30" {
		t.Errorf("expected slot 09:30 at index 3, got %s", grid[3])
	}
}

func TestValidSlot(t *testing.T) {
	cases := []struct {
		heure string
		valid bool
	}{
		{"08:00", true},
		{"17:30", true},
		{"12:30", true},
		{"18:00", false},
		{"07:30", false},
		{"09:15", false},
		{"9:00", false},
		{"", false},
	}

	for _, c := range cases {
		if got := ValidSlot(c.heure); got != c.valid {
			t.Errorf("ValidSlot(%q) = %v, expected %v", c.heure, got, c.valid)
		}
	}
}

func TestFreeSlots(t *testing.T) {
	source := &stubSlotSource{occupied: []string{"09:00", "14:30"}}
	service := NewService(source)

	free, err := service.FreeSlots(context.Background(), primitive.NewObjectID(), time.Now())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(free) != 18 {
		t.Fatalf("expected 18 free slots, got %d", len(free))
	}
	for _, slot := range free {
		if slot == "09:00" || slot == "14:30" {
			t.Errorf("occupied slot %s returned as free", slot)
		}
	}
}

func TestCheckDisponibilite(t *testing.T) {
	source := &stubSlotSource{occupied: []string{"09:00"}}
	service := NewService(source)
	medecinID := primitive.NewObjectID()
	date := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	// Créneau occupé par un rendez-vous actif
	libre, err := service.CheckDisponibilite(context.Background(), medecinID, date, "09:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if libre {
		t.Error("expected 09:00 to be unavailable")
	}

	// Créneau voisin libre
	libre, err = service.CheckDisponibilite(context.Background(), medecinID, date, "09:30")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !libre {
		t.Error("expected 09:30 to be available")
	}

	// Heure hors grille, jamais disponible
	libre, err = service.CheckDisponibilite(context.Background(), medecinID, date, "20:00")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if libre {
		t.Error("expected out-of-grid slot to be unavailable")
	}
}

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from    string
		to      string
		allowed bool
	}{
		{models.StatutDemande, models.StatutConfirme, true},
		{models.StatutDemande, models.StatutAnnule, true},
		{models.StatutDemande, models.StatutTermine, false},
		{models.StatutConfirme, models.StatutAnnule, true},
		{models.StatutConfirme, models.StatutTermine, true},
		{models.StatutConfirme, models.StatutDemande, false},
		{models.StatutAnnule, models.StatutConfirme, false},
		{models.StatutTermine, models.StatutAnnule, false},
	}

	for _, c := range cases {
		if got := CanTransition(c.from, c.to); got != c.allowed {
			t.Errorf("CanTransition(%s, %s) = %v, expected %v", c.from, c.to, got, c.allowed)
		}
	}
}
