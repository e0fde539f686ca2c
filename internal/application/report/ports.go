package report

import (
	"context"

	"github.com/tu-usuario/performance-hub/internal/domain/repository"
)

// ChartRenderer renderiza un gráfico de barras (una barra por KPI) como PNG
// en memoria. names y values van en paralelo y en el mismo orden.
type ChartRenderer interface {
	RenderBars(names []string, values []float64) ([]byte, error)
}

// DeckBuilder arma un documento de presentación de una sola diapositiva con el
// título dado y la imagen del gráfico incrustada. Devuelve los bytes del .pptx.
type DeckBuilder interface {
	Build(title string, chartPNG []byte) ([]byte, error)
}

// ScorecardGenerator genera el PDF tabular con los valores de KPI de un outlet
// en un periodo.
type ScorecardGenerator interface {
	Generate(ctx context.Context, title, outletName string, rows []repository.DeckRow) ([]byte, error)
}
