package report_test

import (
	"bytes"
	"image/png"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lucalvex/hub-projeto-diag-api/internal/report"
)

func TestRadarSeries(t *testing.T) {
	t.Run("PadsToThreeAxes", func(t *testing.T) {
		s := report.RadarSeries([]string{"Custos", "Vendas"}, []int{12, 20})

		assert.Equal(t, 3, s.Axes())
		assert.Equal(t, []string{"Custos", "Vendas", ""}, s.Labels)
		assert.Equal(t, []float64{12, 20, 0, 12}, s.Values)
		require.Len(t, s.Angles, 4)
		assert.Equal(t, s.Angles[0], s.Angles[3])
		assert.InDelta(t, 2*math.Pi/3, s.Angles[1], 1e-9)
		assert.InDelta(t, 4*math.Pi/3, s.Angles[2], 1e-9)
	})

	t.Run("SingleDimension", func(t *testing.T) {
		s := report.RadarSeries([]string{"Única"}, []int{7})
		assert.Equal(t, []string{"Única", "", ""}, s.Labels)
		assert.Equal(t, []float64{7, 0, 0, 7}, s.Values)
	})

	t.Run("NoPaddingFromThree", func(t *testing.T) {
		s := report.RadarSeries([]string{"A", "B", "C", "D", "E"}, []int{1, 2, 3, 4, 5})
		assert.Equal(t, 5, s.Axes())
		assert.Equal(t, []float64{1, 2, 3, 4, 5, 1}, s.Values)
		assert.InDelta(t, 2*math.Pi/5, s.Angles[1], 1e-9)
	})
}

func TestRadarChart(t *testing.T) {
	t.Run("EncodesPNG", func(t *testing.T) {
		out, err := report.RadarChart(report.RadarSeries([]string{"Custos", "Vendas"}, []int{12, 20}))
		require.NoError(t, err)

		img, err := png.Decode(bytes.NewReader(out))
		require.NoError(t, err)
		assert.Equal(t, 600, img.Bounds().Dx())
	})

	t.Run("AllZeroValues", func(t *testing.T) {
		_, err := report.RadarChart(report.RadarSeries(nil, nil))
		assert.NoError(t, err)
	})

	t.Run("RejectsOpenPolygon", func(t *testing.T) {
		_, err := report.RadarChart(report.Series{
			Labels: []string{"A", "B", "C"},
			Values: []float64{1, 2, 3},
			Angles: []float64{0, 1, 2},
		})
		assert.Error(t, err)
	})
}
