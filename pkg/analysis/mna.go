package analysis

import (
	"fmt"

	"zmeter/pkg/matrix"
	"zmeter/pkg/network"
)

// DrivingPointImpedance recomputes the network's total impedance by nodal
// analysis instead of the series/parallel algebra: each member's admittance
// is stamped into a complex matrix, a 1 A test current is injected at the
// input node, and the solved input voltage equals the driving-point
// impedance. Serves as an independent check of the composition rules.
//
// Series chains place member i between nodes i and i+1 with the far end
// grounded; parallel networks place every member between node 1 and ground.
func DrivingPointImpedance(net *network.Network, freq float64) (complex128, error) {
	n := net.Size()
	if n == 0 {
		return 0, fmt.Errorf("network %s: empty", net.Name())
	}

	size := 1
	if net.Topology() == network.Series {
		size = n
	}

	mat, err := matrix.NewNodalMatrix(size)
	if err != nil {
		return 0, fmt.Errorf("network %s: %v", net.Name(), err)
	}
	defer mat.Destroy()

	net.SetFrequency(freq)

	stampAdmittances(mat, net)
	mat.SetupElements()

	mat.Clear()
	stampAdmittances(mat, net)
	mat.AddComplexRHS(1, 1, 0) // 1 A test current into node 1

	if err := mat.Solve(); err != nil {
		return 0, fmt.Errorf("network %s at f=%g: %v", net.Name(), freq, err)
	}

	re, im := mat.GetComplexSolution(1)
	return complex(re, im), nil
}

func stampAdmittances(mat matrix.Stamper, net *network.Network) {
	for i, comp := range net.Components() {
		y := 1.0 / comp.GetImpedance()

		n1, n2 := 1, 0
		if net.Topology() == network.Series {
			n1 = i + 1
			n2 = i + 2
			if i == net.Size()-1 {
				n2 = 0 // chain ends at ground
			}
		}

		g, b := real(y), imag(y)
		if n1 != 0 {
			mat.AddComplexElement(n1, n1, g, b)
			if n2 != 0 {
				mat.AddComplexElement(n1, n2, -g, -b)
			}
		}
		if n2 != 0 {
			mat.AddComplexElement(n2, n2, g, b)
			if n1 != 0 {
				mat.AddComplexElement(n2, n1, -g, -b)
			}
		}
	}
}
