package agenda

import "fmt"

// Bornes de la journée de consultation, créneaux de 30 minutes
const (
	openingHour  = 8
	closingHour  = 18
	slotMinutes  = 30
	slotsPerHour = 60 / slotMinutes
)

// Grid retourne la grille complète des créneaux d'une journée,
// de "08:00" à "17:30" inclus.
func Grid() []string {
	slots := make([]string, 0, (closingHour-openingHour)*slotsPerHour)
	for h := openingHour; h < closingHour; h++ {
		for m := 0; m < 60; m += slotMinutes {
			slots = append(slots, fmt.Sprintf("%02d:%02d", h, m))
		}
	}
	return slots
}

// ValidSlot vérifie qu'une heure appartient à la grille
func ValidSlot(heure string) bool {
	for _, s := range Grid() {
		if s == heure {
			return true
		}
	}
	return false
}
