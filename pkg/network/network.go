// Package network composes two-terminal components into a single series or
// parallel chain and derives the aggregate complex impedance: series sums
// member impedances, parallel sums member admittances and inverts.
package network

import (
	"fmt"
	"math/cmplx"

	"zmeter/pkg/device"
)

type Topology int

const (
	TopologyUnset Topology = iota
	Series
	Parallel
)

func (t Topology) String() string {
	switch t {
	case Series:
		return "series"
	case Parallel:
		return "parallel"
	default:
		return "unset"
	}
}

// ParseTopology maps the textual form used by config files and CLI flags.
func ParseTopology(s string) (Topology, error) {
	switch s {
	case "series":
		return Series, nil
	case "parallel":
		return Parallel, nil
	default:
		return TopologyUnset, fmt.Errorf("unknown topology %q (want series or parallel)", s)
	}
}

// Network holds borrowed references to externally owned components. The
// first successful add fixes the topology; the total impedance is
// recomputed by every mutating call, so the accessors are pure reads.
type Network struct {
	name           string
	components     []device.Component
	topology       Topology
	totalImpedance complex128
	frequency      float64
}

func New(name string) *Network {
	return &Network{
		name:       name,
		components: make([]device.Component, 0),
	}
}

func (n *Network) Name() string { return n.name }

func (n *Network) Topology() Topology { return n.topology }

func (n *Network) Components() []device.Component { return n.components }

func (n *Network) Size() int { return len(n.components) }

func (n *Network) AddInSeries(comp device.Component) error {
	if n.topology == Parallel {
		return fmt.Errorf("network %s: is a parallel network, cannot add %s in series", n.name, comp.GetName())
	}
	n.topology = Series
	n.components = append(n.components, comp)
	n.updateImpedanceSeries()
	return nil
}

func (n *Network) AddInParallel(comp device.Component) error {
	if n.topology == Series {
		return fmt.Errorf("network %s: is a series network, cannot add %s in parallel", n.name, comp.GetName())
	}
	n.topology = Parallel
	n.components = append(n.components, comp)
	n.updateImpedanceParallel()
	return nil
}

// SetFrequency propagates f to every member, then recomputes the total
// under the declared topology.
func (n *Network) SetFrequency(f float64) {
	n.frequency = f
	for _, comp := range n.components {
		comp.SetFrequency(f)
	}
	switch n.topology {
	case Series:
		n.updateImpedanceSeries()
	case Parallel:
		n.updateImpedanceParallel()
	}
}

func (n *Network) GetFrequency() float64 {
	return n.frequency
}

func (n *Network) updateImpedanceSeries() {
	n.totalImpedance = 0
	for _, comp := range n.components {
		n.totalImpedance += comp.GetImpedance()
	}
}

func (n *Network) updateImpedanceParallel() {
	n.totalImpedance = 0
	for _, comp := range n.components {
		n.totalImpedance += 1.0 / comp.GetImpedance()
	}
	n.totalImpedance = 1.0 / n.totalImpedance
}

func (n *Network) GetCircuitImpedance() complex128 {
	return n.totalImpedance
}

func (n *Network) GetTotalImpedanceMagnitude() float64 {
	return cmplx.Abs(n.totalImpedance)
}

func (n *Network) GetPhaseDifference() float64 {
	return cmplx.Phase(n.totalImpedance)
}
