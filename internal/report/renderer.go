package report

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/go-pdf/fpdf"

	"github.com/lucalvex/hub-projeto-diag-api/internal/scoring"
)

const (
	cm = 72.0 / 2.54

	marginLeft      = 1.5 * cm
	marginTop       = 1.5 * cm
	pageBreakBottom = 3 * cm
	chartSize       = 10 * cm
	chartBottom     = 2 * cm
	chartTopNewPage = 2 * cm

	bodyLeading = 14.0
	chartImage  = "radar"
)

type UserInfo struct {
	Username string
	Email    string
}

type ModuleInfo struct {
	Name        string
	Description string
}

type DimensionScore struct {
	Title string
	Score int
}

type Input struct {
	User        UserInfo
	Module      ModuleInfo
	ModuleScore int
	Dimensions  []DimensionScore
}

type Renderer struct{}

func NewRenderer() *Renderer {
	return &Renderer{}
}

type span struct {
	text  string
	style string
}

type page struct {
	pdf    *fpdf.Fpdf
	tr     func(string) string
	width  float64
	height float64
	y      float64
}

func (p *page) paragraph(size, leading, gapAfter float64, parts ...span) {
	p.pdf.SetXY(marginLeft, p.y)
	for _, part := range parts {
		p.pdf.SetFont("Helvetica", part.style, size)
		p.pdf.Write(leading, p.tr(part.text))
	}
	p.pdf.Ln(leading)
	p.y = p.pdf.GetY() + gapAfter
}

func (p *page) newPage(top float64) {
	p.pdf.AddPage()
	p.y = top
}

// Render gera o PDF do relatório. Nenhum byte é devolvido se qualquer etapa falhar.
func (r *Renderer) Render(in Input) ([]byte, error) {
	dims := make([]DimensionScore, len(in.Dimensions))
	copy(dims, in.Dimensions)
	sort.SliceStable(dims, func(i, j int) bool { return dims[i].Title < dims[j].Title })

	labels := make([]string, len(dims))
	values := make([]int, len(dims))
	for i, d := range dims {
		labels[i] = d.Title
		values[i] = d.Score
	}
	chart, err := RadarChart(RadarSeries(labels, values))
	if err != nil {
		return nil, &RenderError{Stage: "gráfico", Err: err}
	}

	pdf := fpdf.New("P", "pt", "A4", "")
	pdf.SetMargins(marginLeft, marginTop, marginLeft)
	pdf.SetAutoPageBreak(false, 0)
	pdf.SetTitle("Relatório de Desempenho", true)

	w, h := pdf.GetPageSize()
	p := &page{pdf: pdf, tr: pdf.UnicodeTranslatorFromDescriptor(""), width: w, height: h}
	p.newPage(marginTop)

	p.paragraph(18, 22, 0.5*cm, span{"Relatório de Desempenho", "B"})
	p.paragraph(10, bodyLeading, 0.2*cm,
		span{"Usuário: ", "B"}, span{fmt.Sprintf("%s (%s)", in.User.Username, in.User.Email), ""})
	p.paragraph(14, 18, 0.1*cm, span{"Módulo: ", "B"}, span{in.Module.Name, "B"})
	p.paragraph(10, bodyLeading, 0.5*cm, span{"Descrição: ", "I"}, span{in.Module.Description, ""})

	moduleBand := scoring.ClassifyModule(in.ModuleScore).Label()
	p.paragraph(10, bodyLeading, 0.7*cm,
		span{"Resultado Geral do Módulo: ", "B"},
		span{fmt.Sprintf("%d pontos - ", in.ModuleScore), ""},
		span{moduleBand, "B"})
	p.paragraph(14, 18, 0.3*cm, span{"Resultados por Dimensão:", "B"})

	for _, d := range dims {
		p.paragraph(10, bodyLeading, 0, span{d.Title + ":", "B"})
		p.paragraph(10, bodyLeading, 0.3*cm,
			span{fmt.Sprintf("    Pontuação: %d - ", d.Score), ""},
			span{scoring.ClassifyDimension(d.Score).Label(), "B"})

		if p.y > p.height-pageBreakBottom {
			p.newPage(marginTop)
		}
	}

	if p.height-p.y-chartSize < chartBottom {
		p.newPage(chartTopNewPage)
	}
	opts := fpdf.ImageOptions{ImageType: "PNG", ReadDpi: false}
	pdf.RegisterImageOptionsReader(chartImage, opts, bytes.NewReader(chart))
	pdf.ImageOptions(chartImage, (p.width-chartSize)/2, p.y, chartSize, chartSize, false, opts, 0, "")

	if err := pdf.Error(); err != nil {
		return nil, &RenderError{Stage: "documento", Err: err}
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, &RenderError{Stage: "documento", Err: err}
	}
	return buf.Bytes(), nil
}

// Filename sugere o nome do arquivo: relatorio_{identificador}_{usuario}.pdf,
// com espaços do identificador trocados por "_".
func Filename(identifier, username string) string {
	return fmt.Sprintf("relatorio_%s_%s.pdf", strings.ReplaceAll(identifier, " ", "_"), username)
}
