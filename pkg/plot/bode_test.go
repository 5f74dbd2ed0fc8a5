package plot

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireCharts(t *testing.T, base string) {
	t.Helper()
	for _, name := range []string{base + "_mag.png", base + "_phase.png"} {
		info, err := os.Stat(name)
		require.NoError(t, err, name)
		assert.Greater(t, info.Size(), int64(0), name)
	}
}

func TestSaveBodeLogAxis(t *testing.T) {
	results := map[string][]float64{
		"FREQ":           {10.0, 100.0, 1000.0},
		"Z(total)_MAG":   {159.2, 15.92, 1.592},
		"Z(total)_PHASE": {-90.0, -90.0, -90.0},
	}

	base := filepath.Join(t.TempDir(), "sweep")
	require.NoError(t, SaveBode(results, "capacitor", base, true))
	requireCharts(t, base)
}

func TestSaveBodeLinearAxisKeepsZeroHertz(t *testing.T) {
	// A linear sweep may start at 0 Hz; the 0 Hz phase point stays on a
	// linear axis while the non-finite magnitude there is dropped.
	results := map[string][]float64{
		"FREQ":           {0.0, 500.0, 1000.0},
		"Z(total)_MAG":   {math.Inf(1), 3.183, 1.592},
		"Z(total)_PHASE": {-90.0, -90.0, -90.0},
	}

	base := filepath.Join(t.TempDir(), "sweep")
	require.NoError(t, SaveBode(results, "capacitor", base, false))
	requireCharts(t, base)
}

func TestSaveBodeMissingFrequencyColumn(t *testing.T) {
	err := SaveBode(map[string][]float64{"Z(total)_MAG": {1.0}}, "x", filepath.Join(t.TempDir(), "sweep"), true)
	assert.Error(t, err)
}
