package pdf

import (
	"encoding/base64"
	"fmt"
	"strings"

	"clinique-core/internal/modules/core/models"

	"github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/image"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/extension"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/props"
)

// OrdonnanceRenderer produit le PDF d'une ordonnance
type OrdonnanceRenderer struct{}

func NewOrdonnanceRenderer() *OrdonnanceRenderer {
	return &OrdonnanceRenderer{}
}

// OrdonnanceDocument regroupe les données nécessaires au rendu
type OrdonnanceDocument struct {
	CliniqueNom     string
	CliniqueAdresse string
	PatientNom      string
	PatientPrenom   string
	DateNaissance   string
	MedecinNom      string
	Specialite      string
	NumeroOrdre     string
	DateOrdonnance  string
	Traitements     []models.Traitement
	Instructions    string
	SignatureData   string
	SignatureType   string
}

// Render génère le PDF et le retourne en octets
func (r *OrdonnanceRenderer) Render(doc OrdonnanceDocument) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageNumber().
		WithLeftMargin(15).
		WithTopMargin(15).
		WithRightMargin(15).
		Build()

	m := maroto.New(cfg)

	// En-tête clinique
	m.AddRow(12, text.NewCol(12, doc.CliniqueNom, props.Text{
		Size:  16,
		Style: fontstyle.Bold,
		Align: align.Center,
	}))
	if doc.CliniqueAdresse != "" {
		m.AddRow(6, text.NewCol(12, doc.CliniqueAdresse, props.Text{
			Size:  9,
			Align: align.Center,
		}))
	}
	m.AddRow(4, line.NewCol(12))

	// Bloc médecin
	medecinLigne := doc.MedecinNom
	if doc.Specialite != "" {
		medecinLigne = fmt.Sprintf("%s - %s", medecinLigne, doc.Specialite)
	}
	m.AddRow(7, text.NewCol(12, medecinLigne, props.Text{
		Size:  11,
		Style: fontstyle.Bold,
	}))
	if doc.NumeroOrdre != "" {
		m.AddRow(5, text.NewCol(12, fmt.Sprintf("N° Ordre : %s", doc.NumeroOrdre), props.Text{Size: 9}))
	}

	// Bloc patient
	m.AddRow(8, text.NewCol(12, fmt.Sprintf("Patient : %s %s", doc.PatientPrenom, doc.PatientNom), props.Text{
		Size: 10,
		Top:  2,
	}))
	if doc.DateNaissance != "" {
		m.AddRow(5, text.NewCol(12, fmt.Sprintf("Né(e) le : %s", doc.DateNaissance), props.Text{Size: 9}))
	}
	m.AddRow(5, text.NewCol(12, fmt.Sprintf("Date : %s", doc.DateOrdonnance), props.Text{Size: 9}))
	m.AddRow(4, line.NewCol(12))

	// Tableau des traitements
	m.AddRow(8, text.NewCol(12, "ORDONNANCE", props.Text{
		Size:  13,
		Style: fontstyle.Bold,
		Align: align.Center,
		Top:   2,
	}))
	m.AddRow(7,
		text.NewCol(5, "Médicament", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(4, "Posologie", props.Text{Size: 10, Style: fontstyle.Bold}),
		text.NewCol(3, "Durée", props.Text{Size: 10, Style: fontstyle.Bold}),
	)
	for _, t := range doc.Traitements {
		m.AddRow(6,
			text.NewCol(5, t.Medicament, props.Text{Size: 9}),
			text.NewCol(4, t.Posologie, props.Text{Size: 9}),
			text.NewCol(3, t.Duree, props.Text{Size: 9}),
		)
	}

	if doc.Instructions != "" {
		m.AddRow(7, text.NewCol(12, "Instructions :", props.Text{
			Size:  10,
			Style: fontstyle.Bold,
			Top:   3,
		}))
		m.AddRow(10, text.NewCol(12, doc.Instructions, props.Text{Size: 9}))
	}

	// Signature du médecin si disponible
	if doc.SignatureData != "" {
		if signature, err := base64.StdEncoding.DecodeString(doc.SignatureData); err == nil {
			m.AddRows(row.New(25).Add(
				col.New(8),
				image.NewFromBytesCol(4, signature, signatureExtension(doc.SignatureType), props.Rect{
					Percent: 80,
					Center:  true,
				}),
			))
		}
	}

	rendered, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("failed to generate ordonnance PDF: %w", err)
	}
	return rendered.GetBytes(), nil
}

func signatureExtension(fileType string) extension.Type {
	switch strings.ToLower(fileType) {
	case "image/jpeg", "jpg", "jpeg":
		return extension.Jpg
	default:
		return extension.Png
	}
}
