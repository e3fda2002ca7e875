package utils

import (
	"encoding/json"
	"strconv"
	"strings"
)

// OptionalFloat décode un champ numérique optionnel selon le contrat de
// l'API : un nombre JSON est conservé, une chaîne numérique est convertie,
// et null, la chaîne vide ou une valeur malformée donnent un champ absent.
// Une entrée malformée n'est jamais une erreur de validation.
type OptionalFloat struct {
	Value *float64
}

func (o *OptionalFloat) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		o.Value = &f
		return nil
	}

	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		s = strings.TrimSpace(s)
		if s == "" {
			return nil
		}
		if parsed, err := strconv.ParseFloat(s, 64); err == nil {
			o.Value = &parsed
		}
		return nil
	}

	// null ou type inattendu : champ absent
	return nil
}

func (o OptionalFloat) MarshalJSON() ([]byte, error) {
	if o.Value == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*o.Value)
}

// Ptr retourne la valeur décodée, nil si absente
func (o OptionalFloat) Ptr() *float64 {
	return o.Value
}

// OptionalString normalise une chaîne optionnelle : les blancs sont
// supprimés et la chaîne vide devient une valeur absente.
func OptionalString(s string) string {
	return strings.TrimSpace(s)
}
