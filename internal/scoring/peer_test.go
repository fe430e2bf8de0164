package scoring_test

import (
	"testing"

	"github.com/lucalvex/hub-projeto-diag-api/internal/scoring"
	"github.com/stretchr/testify/assert"
)

func TestPeerAverage(t *testing.T) {
	t.Run("NoPeers", func(t *testing.T) {
		assert.Equal(t, 0.0, scoring.PeerAverage(nil))
	})

	t.Run("Mean", func(t *testing.T) {
		assert.Equal(t, 20.0, scoring.PeerAverage([]int{10, 20, 30}))
	})

	t.Run("RoundsToTwoPlaces", func(t *testing.T) {
		assert.Equal(t, 3.33, scoring.PeerAverage([]int{3, 3, 4}))
		assert.Equal(t, 6.67, scoring.PeerAverage([]int{6, 7, 7}))
	})

	t.Run("HalfUp", func(t *testing.T) {
		assert.Equal(t, 12.5, scoring.PeerAverage([]int{12, 13}))
		assert.Equal(t, 1.13, scoring.PeerAverage([]int{1, 1, 1, 1, 1, 1, 1, 2}))

		peers := make([]int, 200)
		for i := range peers {
			peers[i] = 1
		}
		peers[0] = 2
		assert.Equal(t, 1.01, scoring.PeerAverage(peers), "201/200 deveria arredondar para 1.01")
	})

	t.Run("NegativeTotals", func(t *testing.T) {
		assert.Equal(t, -1.5, scoring.PeerAverage([]int{-1, -2}))
		assert.Equal(t, -3.33, scoring.PeerAverage([]int{-3, -3, -4}))
	})
}
