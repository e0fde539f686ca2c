package chart_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/performance-hub/internal/infrastructure/chart"
)

func TestRenderBars_ProducePNGDecodificable(t *testing.T) {
	r := chart.NewBarRenderer()

	data, err := r.RenderBars([]string{"Revenue", "NPS", "Footfall"}, []float64{1000, 72, 350.5})
	require.NoError(t, err)
	require.NotEmpty(t, data)

	cfg, err := png.DecodeConfig(bytes.NewReader(data))
	require.NoError(t, err, "la salida debe ser un PNG válido")
	assert.Equal(t, 1024, cfg.Width)
	assert.Equal(t, 768, cfg.Height)
}

func TestRenderBars_UnaSolaBarra(t *testing.T) {
	r := chart.NewBarRenderer()

	data, err := r.RenderBars([]string{"Revenue"}, []float64{1000})
	require.NoError(t, err)
	_, err = png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRenderBars_ValoresUniformes(t *testing.T) {
	r := chart.NewBarRenderer()

	// Todos los valores iguales no debe romper el rango Y del render.
	data, err := r.RenderBars([]string{"A", "B"}, []float64{5, 5})
	require.NoError(t, err)
	_, err = png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRenderBars_ValorCero(t *testing.T) {
	r := chart.NewBarRenderer()

	data, err := r.RenderBars([]string{"A"}, []float64{0})
	require.NoError(t, err)
	_, err = png.DecodeConfig(bytes.NewReader(data))
	assert.NoError(t, err)
}

func TestRenderBars_EntradasDesparejas(t *testing.T) {
	r := chart.NewBarRenderer()

	_, err := r.RenderBars([]string{"a", "b"}, []float64{1})
	assert.Error(t, err)

	_, err = r.RenderBars(nil, nil)
	assert.Error(t, err, "sin barras no hay gráfico")
}
