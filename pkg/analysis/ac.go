package analysis

import (
	"fmt"
	"math"

	"zmeter/pkg/network"
)

// ACAnalysis sweeps a network over a frequency range and records the
// aggregate and per-component impedances at every point.
type ACAnalysis struct {
	BaseAnalysis
	startFreq   float64
	stopFreq    float64
	numPoints   int
	pointsType  string // "DEC", "OCT", "LIN"
	frequencies []float64
}

func NewAC(fStart, fStop float64, nPoints int, pType string) *ACAnalysis {
	return &ACAnalysis{
		BaseAnalysis: *NewBaseAnalysis(),
		startFreq:    fStart,
		stopFreq:     fStop,
		numPoints:    nPoints,
		pointsType:   pType,
	}
}

func (ac *ACAnalysis) Setup(net *network.Network) error {
	if net == nil || net.Size() == 0 {
		return fmt.Errorf("network not set or empty")
	}
	if ac.numPoints < 2 {
		return fmt.Errorf("sweep requires at least 2 points, got %d", ac.numPoints)
	}
	switch ac.pointsType {
	case "DEC", "OCT":
		if ac.startFreq <= 0 {
			return fmt.Errorf("%s sweep requires a positive start frequency, got %g", ac.pointsType, ac.startFreq)
		}
	case "LIN":
	default:
		return fmt.Errorf("unknown sweep type %q (want DEC, OCT or LIN)", ac.pointsType)
	}
	if ac.stopFreq <= ac.startFreq {
		return fmt.Errorf("stop frequency %g must be above start frequency %g", ac.stopFreq, ac.startFreq)
	}

	ac.Network = net
	ac.generateFrequencyPoints()

	return nil
}

func (ac *ACAnalysis) Execute() error {
	if ac.Network == nil {
		return fmt.Errorf("analysis not set up")
	}

	for _, freq := range ac.frequencies {
		ac.Network.SetFrequency(freq)

		solution := make(map[string]complex128)
		solution["Z(total)"] = ac.Network.GetCircuitImpedance()
		for _, comp := range ac.Network.Components() {
			solution[fmt.Sprintf("Z(%s)", comp.GetName())] = comp.GetImpedance()
		}

		ac.StoreACResult(freq, solution)
	}

	return nil
}

func (ac *ACAnalysis) Frequencies() []float64 {
	return ac.frequencies
}

func (ac *ACAnalysis) generateFrequencyPoints() {
	ac.frequencies = make([]float64, ac.numPoints)

	switch ac.pointsType {
	case "DEC": // Decade
		logStart := math.Log10(ac.startFreq)
		logStop := math.Log10(ac.stopFreq)
		step := (logStop - logStart) / float64(ac.numPoints-1)
		for i := range ac.numPoints {
			ac.frequencies[i] = math.Pow(10, logStart+float64(i)*step)
		}

	case "OCT": // Octave
		logStart := math.Log2(ac.startFreq)
		logStop := math.Log2(ac.stopFreq)
		step := (logStop - logStart) / float64(ac.numPoints-1)
		for i := range ac.numPoints {
			ac.frequencies[i] = math.Pow(2, logStart+float64(i)*step)
		}

	case "LIN": // Linear
		step := (ac.stopFreq - ac.startFreq) / float64(ac.numPoints-1)
		for i := range ac.numPoints {
			ac.frequencies[i] = ac.startFreq + float64(i)*step
		}
	}
}
