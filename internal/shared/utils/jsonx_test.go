package utils

import (
	"encoding/json"
	"testing"
)

func TestOptionalFloatUnmarshal(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  *float64
	}{
		{"nombre", `{"poids": 72.5}`, floatPtr(72.5)},
		{"entier", `{"poids": 70}`, floatPtr(70)},
		{"chaîne numérique", `{"poids": "68.2"}`, floatPtr(68.2)},
		{"chaîne avec blancs", `{"poids": " 65 "}`, floatPtr(65)},
		{"chaîne vide", `{"poids": ""}`, nil},
		{"null", `{"poids": null}`, nil},
		{"chaîne non numérique", `{"poids": "abc"}`, nil},
		{"type inattendu", `{"poids": {"v": 1}}`, nil},
		{"champ absent", `{}`, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload struct {
				Poids OptionalFloat `json:"poids"`
			}
			if err := json.Unmarshal([]byte(tt.input), &payload); err != nil {
				t.Fatalf("une valeur malformée ne doit jamais être une erreur: %v", err)
			}

			got := payload.Poids.Ptr()
			switch {
			case tt.want == nil && got != nil:
				t.Errorf("valeur attendue absente, obtenu %v", *got)
			case tt.want != nil && got == nil:
				t.Errorf("valeur attendue %v, obtenu absent", *tt.want)
			case tt.want != nil && got != nil && *got != *tt.want:
				t.Errorf("valeur attendue %v, obtenu %v", *tt.want, *got)
			}
		})
	}
}

func TestOptionalFloatMarshal(t *testing.T) {
	data, err := json.Marshal(OptionalFloat{Value: floatPtr(36.8)})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "36.8" {
		t.Errorf("sérialisation attendue 36.8, obtenu %s", data)
	}

	data, err = json.Marshal(OptionalFloat{})
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	if string(data) != "null" {
		t.Errorf("sérialisation attendue null, obtenu %s", data)
	}
}

func TestOptionalString(t *testing.T) {
	if got := OptionalString("  Dupont "); got != "Dupont" {
		t.Errorf("attendu Dupont, obtenu %q", got)
	}
	if got := OptionalString("   "); got != "" {
		t.Errorf("attendu chaîne vide, obtenu %q", got)
	}
}

func floatPtr(f float64) *float64 {
	return &f
}
