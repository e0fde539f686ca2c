// Package pptx arma el documento de presentación del deck: una sola
// diapositiva, título + gráfico, empaquetado OOXML en memoria
// (archive/zip + etree, sin archivos temporales).
package pptx

import (
	"archive/zip"
	"bytes"
	"fmt"
	"image/png"

	"github.com/beevik/etree"
)

// Namespaces PresentationML / DrawingML (ECMA-376).
const (
	nsA = "http://schemas.openxmlformats.org/drawingml/2006/main"
	nsR = "http://schemas.openxmlformats.org/officeDocument/2006/relationships"
	nsP = "http://schemas.openxmlformats.org/presentationml/2006/main"
)

// Posición y tamaño del gráfico dentro de la diapositiva, en EMU
// (1 pulgada = 914400 EMU): 1in desde la izquierda, 2in desde arriba,
// 4in de alto; el ancho sale de la relación de aspecto del PNG.
const (
	emuPerInch  = 914400
	picOffsetX  = 1 * emuPerInch
	picOffsetY  = 2 * emuPerInch
	picHeight   = 4 * emuPerInch
	titleOffX   = 457200
	titleOffY   = 274638
	titleWidth  = 8229600
	titleHeight = 1143000
)

// Generator implementa report.DeckBuilder.
type Generator struct{}

// NewGenerator construye el generador de decks.
func NewGenerator() *Generator {
	return &Generator{}
}

// Build arma el .pptx de una diapositiva con el título dado y el gráfico
// incrustado, y devuelve sus bytes.
func (g *Generator) Build(title string, chartPNG []byte) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(chartPNG))
	if err != nil {
		return nil, fmt.Errorf("pptx: el gráfico no es un PNG válido: %w", err)
	}
	if cfg.Height == 0 {
		return nil, fmt.Errorf("pptx: PNG con alto cero")
	}
	// Ancho implícito por la relación de aspecto de la imagen.
	picWidth := int64(float64(picHeight) * float64(cfg.Width) / float64(cfg.Height))

	slideXML, err := buildSlideXML(title, picWidth)
	if err != nil {
		return nil, fmt.Errorf("pptx: construir slide: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	parts := []struct {
		name string
		data []byte
	}{
		{"[Content_Types].xml", []byte(contentTypesXML)},
		{"_rels/.rels", []byte(rootRelsXML)},
		{"ppt/presentation.xml", []byte(presentationXML)},
		{"ppt/_rels/presentation.xml.rels", []byte(presentationRelsXML)},
		{"ppt/slideMasters/slideMaster1.xml", []byte(slideMasterXML)},
		{"ppt/slideMasters/_rels/slideMaster1.xml.rels", []byte(slideMasterRelsXML)},
		{"ppt/slideLayouts/slideLayout1.xml", []byte(slideLayoutXML)},
		{"ppt/slideLayouts/_rels/slideLayout1.xml.rels", []byte(slideLayoutRelsXML)},
		{"ppt/theme/theme1.xml", []byte(themeXML)},
		{"ppt/slides/slide1.xml", slideXML},
		{"ppt/slides/_rels/slide1.xml.rels", []byte(slideRelsXML)},
		{"ppt/media/image1.png", chartPNG},
	}
	for _, part := range parts {
		w, err := zw.Create(part.name)
		if err != nil {
			return nil, fmt.Errorf("pptx: crear parte %s: %w", part.name, err)
		}
		if _, err := w.Write(part.data); err != nil {
			return nil, fmt.Errorf("pptx: escribir parte %s: %w", part.name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("pptx: cerrar paquete: %w", err)
	}
	return buf.Bytes(), nil
}

// buildSlideXML genera ppt/slides/slide1.xml: un shape de título con el texto
// del deck y un pic con la imagen del gráfico en offset fijo.
func buildSlideXML(title string, picWidth int64) ([]byte, error) {
	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8" standalone="yes"`)

	sld := doc.CreateElement("p:sld")
	sld.CreateAttr("xmlns:a", nsA)
	sld.CreateAttr("xmlns:r", nsR)
	sld.CreateAttr("xmlns:p", nsP)

	spTree := sld.CreateElement("p:cSld").CreateElement("p:spTree")

	nvGrp := spTree.CreateElement("p:nvGrpSpPr")
	cNvPr := nvGrp.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "1")
	cNvPr.CreateAttr("name", "")
	nvGrp.CreateElement("p:cNvGrpSpPr")
	nvGrp.CreateElement("p:nvPr")
	spTree.CreateElement("p:grpSpPr")

	addTitleShape(spTree, title)
	addChartPic(spTree, picWidth)

	clrMapOvr := sld.CreateElement("p:clrMapOvr")
	clrMapOvr.CreateElement("a:masterClrMapping")

	return doc.WriteToBytes()
}

func addTitleShape(spTree *etree.Element, title string) {
	sp := spTree.CreateElement("p:sp")

	nvSpPr := sp.CreateElement("p:nvSpPr")
	cNvPr := nvSpPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "2")
	cNvPr.CreateAttr("name", "Title 1")
	nvSpPr.CreateElement("p:cNvSpPr").CreateElement("a:spLocks").CreateAttr("noGrp", "1")
	nvSpPr.CreateElement("p:nvPr").CreateElement("p:ph").CreateAttr("type", "title")

	spPr := sp.CreateElement("p:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	writeOffExt(xfrm, titleOffX, titleOffY, titleWidth, titleHeight)

	txBody := sp.CreateElement("p:txBody")
	txBody.CreateElement("a:bodyPr")
	txBody.CreateElement("a:lstStyle")
	para := txBody.CreateElement("a:p")
	run := para.CreateElement("a:r")
	run.CreateElement("a:rPr").CreateAttr("lang", "en-US")
	run.CreateElement("a:t").SetText(title)
}

func addChartPic(spTree *etree.Element, picWidth int64) {
	pic := spTree.CreateElement("p:pic")

	nvPicPr := pic.CreateElement("p:nvPicPr")
	cNvPr := nvPicPr.CreateElement("p:cNvPr")
	cNvPr.CreateAttr("id", "3")
	cNvPr.CreateAttr("name", "Chart 1")
	nvPicPr.CreateElement("p:cNvPicPr").CreateElement("a:picLocks").CreateAttr("noChangeAspect", "1")
	nvPicPr.CreateElement("p:nvPr")

	blipFill := pic.CreateElement("p:blipFill")
	blipFill.CreateElement("a:blip").CreateAttr("r:embed", "rId1")
	blipFill.CreateElement("a:stretch").CreateElement("a:fillRect")

	spPr := pic.CreateElement("p:spPr")
	xfrm := spPr.CreateElement("a:xfrm")
	writeOffExt(xfrm, picOffsetX, picOffsetY, picWidth, picHeight)
	prstGeom := spPr.CreateElement("a:prstGeom")
	prstGeom.CreateAttr("prst", "rect")
	prstGeom.CreateElement("a:avLst")
}

func writeOffExt(xfrm *etree.Element, x, y, cx, cy int64) {
	off := xfrm.CreateElement("a:off")
	off.CreateAttr("x", fmt.Sprintf("%d", x))
	off.CreateAttr("y", fmt.Sprintf("%d", y))
	ext := xfrm.CreateElement("a:ext")
	ext.CreateAttr("cx", fmt.Sprintf("%d", cx))
	ext.CreateAttr("cy", fmt.Sprintf("%d", cy))
}
