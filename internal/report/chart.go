package report

import (
	"bytes"
	"fmt"
	"image/color"
	"math"

	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font/gofont/goregular"
)

const (
	minRadarAxes = 3
	chartSizePx  = 600
	chartTitle   = "Desempenho por Dimensão"
)

var (
	chartLine = color.RGBA{R: 0x05, G: 0x8a, B: 0xff, A: 0xff}
	chartFill = color.NRGBA{R: 0x05, G: 0x8a, B: 0xff, A: 64}
	chartGrid = color.RGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
)

// Series é a entrada do gráfico radar já pronta para desenho: Values e Angles
// têm um ponto a mais que Labels, repetindo o primeiro para fechar o polígono.
type Series struct {
	Labels []string
	Values []float64
	Angles []float64
}

// Axes devolve o número de eixos do gráfico.
func (s Series) Axes() int {
	return len(s.Labels)
}

// RadarSeries monta a série do radar. Com menos de três dimensões completa com
// eixos sem rótulo e valor zero.
func RadarSeries(labels []string, values []int) Series {
	n := len(labels)
	if len(values) > n {
		n = len(values)
	}
	if n < minRadarAxes {
		n = minRadarAxes
	}

	s := Series{
		Labels: make([]string, n),
		Values: make([]float64, n, n+1),
		Angles: make([]float64, n, n+1),
	}
	copy(s.Labels, labels)
	for i, v := range values {
		s.Values[i] = float64(v)
	}
	for i := range s.Angles {
		s.Angles[i] = 2 * math.Pi * float64(i) / float64(n)
	}

	s.Values = append(s.Values, s.Values[0])
	s.Angles = append(s.Angles, s.Angles[0])
	return s
}

// RadarChart desenha a série como PNG.
func RadarChart(s Series) ([]byte, error) {
	n := s.Axes()
	if n < minRadarAxes || len(s.Values) != n+1 || len(s.Angles) != n+1 {
		return nil, fmt.Errorf("série radar inconsistente: %d eixos, %d valores, %d ângulos", n, len(s.Values), len(s.Angles))
	}

	font, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, err
	}

	dc := gg.NewContext(chartSizePx, chartSizePx)
	dc.SetColor(color.White)
	dc.Clear()

	cx, cy := float64(chartSizePx)/2, float64(chartSizePx)/2+20
	radius := float64(chartSizePx) * 0.32

	maxValue := 0.0
	for _, v := range s.Values {
		maxValue = math.Max(maxValue, v)
	}
	if maxValue <= 0 {
		maxValue = 1
	}

	point := func(angle, value float64) (float64, float64) {
		r := radius * value / maxValue
		return cx + r*math.Cos(angle), cy - r*math.Sin(angle)
	}

	dc.SetColor(chartGrid)
	dc.SetLineWidth(1)
	for ring := 1; ring <= 4; ring++ {
		dc.DrawCircle(cx, cy, radius*float64(ring)/4)
		dc.Stroke()
	}
	for _, a := range s.Angles[:n] {
		x, y := point(a, maxValue)
		dc.DrawLine(cx, cy, x, y)
		dc.Stroke()
	}

	for i := range s.Values {
		x, y := point(s.Angles[i], s.Values[i])
		if i == 0 {
			dc.MoveTo(x, y)
		} else {
			dc.LineTo(x, y)
		}
	}
	dc.ClosePath()
	dc.SetColor(chartFill)
	dc.FillPreserve()
	dc.SetColor(chartLine)
	dc.SetLineWidth(2)
	dc.Stroke()

	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 14}))
	dc.SetColor(color.Black)
	for i, label := range s.Labels {
		if label == "" {
			continue
		}
		a := s.Angles[i]
		x, y := point(a, maxValue*1.12)
		dc.DrawStringAnchored(label, x, y, 0.5-0.5*math.Cos(a), 0.5-0.5*math.Sin(a))
	}

	dc.SetFontFace(truetype.NewFace(font, &truetype.Options{Size: 18}))
	dc.DrawStringAnchored(chartTitle, float64(chartSizePx)/2, 28, 0.5, 0.5)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
