package pptx_test

import (
	"archive/zip"
	"bytes"
	"image"
	"image/png"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tu-usuario/performance-hub/internal/infrastructure/pptx"
)

// testPNG genera un PNG de prueba de w×h píxeles.
func testPNG(t *testing.T, w, h int) []byte {
	t.Helper()
	var buf bytes.Buffer
	require.NoError(t, png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, w, h))))
	return buf.Bytes()
}

func readPart(t *testing.T, zr *zip.Reader, name string) []byte {
	t.Helper()
	for _, f := range zr.File {
		if f.Name == name {
			rc, err := f.Open()
			require.NoError(t, err)
			defer rc.Close()
			data, err := io.ReadAll(rc)
			require.NoError(t, err)
			return data
		}
	}
	t.Fatalf("parte %s no encontrada en el paquete", name)
	return nil
}

func TestBuild_PaqueteConUnaSolaDiapositivaYUnaImagen(t *testing.T) {
	g := pptx.NewGenerator()
	chartPNG := testPNG(t, 1024, 768)

	out, err := g.Build("Outlet o1 2024-06", chartPNG)
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err, "la salida debe ser un ZIP OOXML válido")

	var slides, images int
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "ppt/slides/") && strings.HasSuffix(f.Name, ".xml") {
			slides++
		}
		if strings.HasPrefix(f.Name, "ppt/media/") {
			images++
		}
	}
	assert.Equal(t, 1, slides, "exactamente una diapositiva")
	assert.Equal(t, 1, images, "exactamente una imagen incrustada")

	// La imagen del paquete es el PNG del gráfico, byte a byte.
	assert.Equal(t, chartPNG, readPart(t, zr, "ppt/media/image1.png"))
}

func TestBuild_TituloYPosicionDelGrafico(t *testing.T) {
	g := pptx.NewGenerator()

	// PNG 4:3 → a 4in de alto el ancho implícito es 5.333in.
	out, err := g.Build("Outlet o1 2024-06", testPNG(t, 400, 300))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	slide := string(readPart(t, zr, "ppt/slides/slide1.xml"))

	assert.Contains(t, slide, "Outlet o1 2024-06")
	// 1in desde la izquierda, 2in desde arriba, 4in de alto (EMU).
	assert.Contains(t, slide, `x="914400"`)
	assert.Contains(t, slide, `y="1828800"`)
	assert.Contains(t, slide, `cy="3657600"`)
	// Ancho por relación de aspecto: 3657600 * 400/300 = 4876800.
	assert.Contains(t, slide, `cx="4876800"`)
	assert.Contains(t, slide, `r:embed="rId1"`)
}

func TestBuild_TituloConCaracteresXML(t *testing.T) {
	g := pptx.NewGenerator()

	out, err := g.Build(`Outlet <A&B> 2024-06`, testPNG(t, 10, 10))
	require.NoError(t, err)

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	require.NoError(t, err)
	slide := string(readPart(t, zr, "ppt/slides/slide1.xml"))
	assert.Contains(t, slide, "&lt;A&amp;B&gt;", "el título debe ir escapado")
}

func TestBuild_ImagenInvalida(t *testing.T) {
	g := pptx.NewGenerator()

	_, err := g.Build("t", []byte("esto no es un png"))
	assert.Error(t, err)
}
