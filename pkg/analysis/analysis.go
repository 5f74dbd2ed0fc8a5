package analysis

import (
	"math"
	"math/cmplx"

	"zmeter/pkg/network"
)

type Analysis interface {
	Setup(net *network.Network) error
	Execute() error
	GetResults() map[string][]float64
}

type BaseAnalysis struct {
	Network *network.Network
	results map[string][]float64 // key: variable name, value: result by frequency
}

func NewBaseAnalysis() *BaseAnalysis {
	return &BaseAnalysis{results: make(map[string][]float64)}
}

// StoreACResult appends one frequency row. Magnitudes are stored under
// <name>_MAG and phases in degrees under <name>_PHASE, keyed by frequency
// order in the FREQ column.
func (a *BaseAnalysis) StoreACResult(freq float64, solution map[string]complex128) {
	if _, exists := a.results["FREQ"]; !exists {
		a.results["FREQ"] = make([]float64, 0)
	}
	a.results["FREQ"] = append(a.results["FREQ"], freq)

	for name, value := range solution {
		magName := name + "_MAG"
		if _, exists := a.results[magName]; !exists {
			a.results[magName] = make([]float64, 0)
		}
		a.results[magName] = append(a.results[magName], cmplx.Abs(value))

		phaseName := name + "_PHASE"
		if _, exists := a.results[phaseName]; !exists {
			a.results[phaseName] = make([]float64, 0)
		}
		phase := cmplx.Phase(value) * 180.0 / math.Pi
		a.results[phaseName] = append(a.results[phaseName], phase)
	}
}

func (a *BaseAnalysis) GetResults() map[string][]float64 {
	return a.results
}
