// Package pdf implementa el scorecard PDF de un outlet para un periodo:
// una tabla KPI / valor / nota con encabezado, generada con Maroto v2.
package pdf

import (
	"context"
	"fmt"

	maroto "github.com/johnfercher/maroto/v2"
	"github.com/johnfercher/maroto/v2/pkg/components/col"
	"github.com/johnfercher/maroto/v2/pkg/components/line"
	"github.com/johnfercher/maroto/v2/pkg/components/row"
	"github.com/johnfercher/maroto/v2/pkg/components/text"
	"github.com/johnfercher/maroto/v2/pkg/config"
	"github.com/johnfercher/maroto/v2/pkg/consts/align"
	"github.com/johnfercher/maroto/v2/pkg/consts/fontstyle"
	"github.com/johnfercher/maroto/v2/pkg/consts/pagesize"
	"github.com/johnfercher/maroto/v2/pkg/core"
	"github.com/johnfercher/maroto/v2/pkg/props"

	"github.com/tu-usuario/performance-hub/internal/application/report"
	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

var _ report.ScorecardGenerator = (*MarotoScorecardGenerator)(nil)

var (
	colorPrimary = &props.Color{Red: 0, Green: 70, Blue: 127}
	colorGray    = &props.Color{Red: 100, Green: 100, Blue: 100}
)

// MarotoScorecardGenerator implementa report.ScorecardGenerator usando Maroto v2.
type MarotoScorecardGenerator struct{}

// NewMarotoScorecardGenerator construye el generador.
func NewMarotoScorecardGenerator() *MarotoScorecardGenerator {
	return &MarotoScorecardGenerator{}
}

// Generate genera el PDF y devuelve sus bytes.
func (g *MarotoScorecardGenerator) Generate(
	_ context.Context,
	title, outletName string,
	rows []repository.DeckRow,
) ([]byte, error) {
	cfg := config.NewBuilder().
		WithPageSize(pagesize.A4).
		WithLeftMargin(10).WithRightMargin(10).
		WithTopMargin(10).WithBottomMargin(10).
		WithDefaultFont(&props.Font{Family: "helvetica", Size: 9}).
		WithTitle(title, true).
		Build()

	m := maroto.New(cfg)

	m.AddRows(headerRow(title, outletName))
	m.AddRows(line.NewRow(1, props.Line{Color: colorPrimary, Thickness: 0.5}))
	m.AddRows(tableHeaderRow())
	for _, r := range rows {
		m.AddRows(detailRow(r))
	}
	m.AddRows(line.NewRow(1, props.Line{Color: colorGray, Thickness: 0.3}))

	doc, err := m.Generate()
	if err != nil {
		return nil, fmt.Errorf("pdf: generar documento: %w", err)
	}
	return doc.GetBytes(), nil
}

// headerRow: título del scorecard (izq) y nombre del outlet (der).
func headerRow(title, outletName string) core.Row {
	return row.New(14).Add(
		col.New(8).Add(
			text.New(title, props.Text{
				Style: fontstyle.Bold, Size: 13, Color: colorPrimary, Top: 2,
			}),
		),
		col.New(4).Add(
			text.New(outletName, props.Text{
				Size: 10, Top: 4, Align: align.Right, Color: colorGray,
			}),
		),
	)
}

func tableHeaderRow() core.Row {
	header := props.Text{Style: fontstyle.Bold, Size: 9, Top: 1}
	return row.New(7).Add(
		col.New(5).Add(text.New("KPI", header)),
		col.New(3).Add(text.New("Valor", header)),
		col.New(4).Add(text.New("Nota", header)),
	)
}

func detailRow(r repository.DeckRow) core.Row {
	cell := props.Text{Size: 9, Top: 1}
	note := ""
	if r.Note != nil {
		note = *r.Note
	}
	return row.New(6).Add(
		col.New(5).Add(text.New(r.KPIName, cell)),
		col.New(3).Add(text.New(r.Value.String(), cell)),
		col.New(4).Add(text.New(note, cell)),
	)
}
