package analysis

import (
	"math"
	"math/cmplx"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zmeter/pkg/device"
	"zmeter/pkg/network"
)

func rlcSeries(t *testing.T) *network.Network {
	t.Helper()
	net := network.New("rlc-series")
	require.NoError(t, net.AddInSeries(device.NewResistor("R1", 100.0)))
	require.NoError(t, net.AddInSeries(device.NewCapacitor("C1", 1e-6)))
	require.NoError(t, net.AddInSeries(device.NewInductor("L1", 1e-3)))
	return net
}

func rlcParallel(t *testing.T) *network.Network {
	t.Helper()
	net := network.New("rlc-parallel")
	require.NoError(t, net.AddInParallel(device.NewResistor("R1", 100.0)))
	require.NoError(t, net.AddInParallel(device.NewCapacitor("C1", 1e-6)))
	require.NoError(t, net.AddInParallel(device.NewInductor("L1", 1e-3)))
	return net
}

func TestFrequencyPointsDecade(t *testing.T) {
	ac := NewAC(1.0, 1000.0, 4, "DEC")
	require.NoError(t, ac.Setup(rlcSeries(t)))

	freqs := ac.Frequencies()
	require.Len(t, freqs, 4)
	assert.InDelta(t, 1.0, freqs[0], 1e-9)
	assert.InDelta(t, 10.0, freqs[1], 1e-9)
	assert.InDelta(t, 100.0, freqs[2], 1e-9)
	assert.InDelta(t, 1000.0, freqs[3], 1e-9)
}

func TestFrequencyPointsLinear(t *testing.T) {
	ac := NewAC(100.0, 500.0, 5, "LIN")
	require.NoError(t, ac.Setup(rlcSeries(t)))

	freqs := ac.Frequencies()
	require.Len(t, freqs, 5)
	assert.InDelta(t, 100.0, freqs[0], 1e-9)
	assert.InDelta(t, 200.0, freqs[1], 1e-9)
	assert.InDelta(t, 500.0, freqs[4], 1e-9)
}

func TestSetupValidation(t *testing.T) {
	assert.Error(t, NewAC(1, 100, 10, "DEC").Setup(network.New("empty")))
	assert.Error(t, NewAC(1, 100, 1, "DEC").Setup(rlcSeries(t)))
	assert.Error(t, NewAC(1, 100, 10, "LOG").Setup(rlcSeries(t)))
}

func TestSweepResults(t *testing.T) {
	net := network.New("rl")
	require.NoError(t, net.AddInSeries(device.NewResistor("R1", 100.0)))
	require.NoError(t, net.AddInSeries(device.NewInductor("L1", 0.01)))

	ac := NewAC(60.0, 600.0, 3, "LIN")
	require.NoError(t, ac.Setup(net))
	require.NoError(t, ac.Execute())

	results := ac.GetResults()
	require.Len(t, results["FREQ"], 3)
	require.Contains(t, results, "Z(total)_MAG")
	require.Contains(t, results, "Z(total)_PHASE")
	require.Contains(t, results, "Z(R1)_MAG")
	require.Contains(t, results, "Z(L1)_PHASE")

	for i, f := range results["FREQ"] {
		reactance := 2 * math.Pi * f * 0.01
		wantMag := math.Hypot(100.0, reactance)
		assert.InDelta(t, wantMag, results["Z(total)_MAG"][i], 1e-9)

		wantPhase := math.Atan2(reactance, 100.0) * 180.0 / math.Pi
		assert.InDelta(t, wantPhase, results["Z(total)_PHASE"][i], 1e-9)

		assert.InDelta(t, 100.0, results["Z(R1)_MAG"][i], 1e-9)
		assert.InDelta(t, 90.0, results["Z(L1)_PHASE"][i], 1e-9)
	}
}

func TestDrivingPointMatchesSeriesAlgebra(t *testing.T) {
	net := rlcSeries(t)

	// 5032.9 Hz is the LC resonance of the 1mH/1uF pair, where the
	// reactances cancel and the solve must still recover the real part.
	for _, f := range []float64{60.0, 1000.0, 5032.9, 10000.0, 1e6} {
		z, err := DrivingPointImpedance(net, f)
		require.NoError(t, err)

		net.SetFrequency(f)
		want := net.GetCircuitImpedance()

		tol := 1e-6 * cmplx.Abs(want)
		assert.InDelta(t, real(want), real(z), tol, "f=%g", f)
		assert.InDelta(t, imag(want), imag(z), tol, "f=%g", f)
	}
}

func TestDrivingPointMatchesParallelAlgebra(t *testing.T) {
	net := rlcParallel(t)

	for _, f := range []float64{60.0, 1000.0, 10000.0, 1e6} {
		z, err := DrivingPointImpedance(net, f)
		require.NoError(t, err)

		net.SetFrequency(f)
		want := net.GetCircuitImpedance()

		tol := 1e-6 * cmplx.Abs(want)
		assert.InDelta(t, real(want), real(z), tol, "f=%g", f)
		assert.InDelta(t, imag(want), imag(z), tol, "f=%g", f)
	}
}

func TestDrivingPointParallelRC(t *testing.T) {
	net := network.New("rc-parallel")
	require.NoError(t, net.AddInParallel(device.NewResistor("R1", 50.0)))
	require.NoError(t, net.AddInParallel(device.NewCapacitor("C1", 100e-6)))

	z, err := DrivingPointImpedance(net, 60.0)
	require.NoError(t, err)

	net.SetFrequency(60.0)
	want := net.GetCircuitImpedance()

	// Both parts must carry through the solve: a layout mix-up in the
	// solution vector would zero the real part and shift the rest.
	require.NotZero(t, real(want))
	require.NotZero(t, imag(want))
	tol := 1e-6 * cmplx.Abs(want)
	assert.InDelta(t, real(want), real(z), tol)
	assert.InDelta(t, imag(want), imag(z), tol)
}

func TestDrivingPointEmptyNetwork(t *testing.T) {
	_, err := DrivingPointImpedance(network.New("empty"), 100.0)
	assert.Error(t, err)
}
