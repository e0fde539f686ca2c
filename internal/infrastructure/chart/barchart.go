// Package chart renderiza el gráfico de barras del deck con go-chart.
// El PNG se genera completamente en memoria: no hay artefactos temporales.
package chart

import (
	"bytes"
	"fmt"

	gochart "github.com/wcharczuk/go-chart/v2"
)

// Dimensiones del render. 4:3 para que la imagen incrustada a 4in de alto
// quede en ~5.33in de ancho dentro de la diapositiva.
const (
	chartWidth  = 1024
	chartHeight = 768
)

// BarRenderer implementa report.ChartRenderer con go-chart.
type BarRenderer struct{}

// NewBarRenderer construye el renderizador.
func NewBarRenderer() *BarRenderer {
	return &BarRenderer{}
}

// RenderBars dibuja una barra por KPI (altura = valor, etiqueta X = nombre
// rotado para legibilidad) y devuelve los bytes del PNG.
func (r *BarRenderer) RenderBars(names []string, values []float64) ([]byte, error) {
	if len(names) == 0 || len(names) != len(values) {
		return nil, fmt.Errorf("chart: %d nombres y %d valores", len(names), len(values))
	}

	bars := make([]gochart.Value, 0, len(names))
	maxValue := values[0]
	for i, name := range names {
		bars = append(bars, gochart.Value{Label: name, Value: values[i]})
		if values[i] > maxValue {
			maxValue = values[i]
		}
	}

	// go-chart deriva el rango Y de los datos y falla con rango cero cuando
	// todos los valores son iguales (una sola barra incluida). Rango explícito
	// desde 0, con margen si el máximo no supera el mínimo.
	yMax := maxValue
	if yMax <= 0 {
		yMax = 1
	}

	graph := gochart.BarChart{
		Width:    chartWidth,
		Height:   chartHeight,
		BarWidth: 60,
		XAxis: gochart.Style{
			TextRotationDegrees: 45,
		},
		YAxis: gochart.YAxis{
			Name: "Value",
			Range: &gochart.ContinuousRange{
				Min: 0,
				Max: yMax,
			},
		},
		Bars: bars,
	}

	var buf bytes.Buffer
	if err := graph.Render(gochart.PNG, &buf); err != nil {
		return nil, fmt.Errorf("chart: render PNG: %w", err)
	}
	return buf.Bytes(), nil
}
