// Package preset holds the canonical two- and three-element RLC circuits
// selectable from the command line, with their wiring diagrams.
package preset

import (
	"fmt"

	"zmeter/pkg/device"
	"zmeter/pkg/network"
)

// Values carries the element values a preset may draw from. Only the
// fields named by the preset's Elements string are used.
type Values struct {
	Resistance  float64 // Ohm
	Capacitance float64 // F
	Inductance  float64 // H
}

type Preset struct {
	Key      string
	Title    string
	Topology network.Topology
	Elements string // element letters in chain order, e.g. "RCL"
	Diagram  string
}

var presets = []Preset{
	{
		Key:      "rlc-parallel",
		Title:    "Parallel RLC circuit",
		Topology: network.Parallel,
		Elements: "RCL",
		Diagram: `+-----R-----+
|           |
+-----C-----+
|           |
+-----L-----+`,
	},
	{
		Key:      "rlc-series",
		Title:    "Series RLC circuit",
		Topology: network.Series,
		Elements: "RCL",
		Diagram: `+-----R-----C-----L-----+
|                       |
+-----------------------+`,
	},
	{
		Key:      "rl-series",
		Title:    "RL in Series",
		Topology: network.Series,
		Elements: "RL",
		Diagram: `+-----R-----L-----+
|                 |
+-----------------+`,
	},
	{
		Key:      "rl-parallel",
		Title:    "RL in Parallel",
		Topology: network.Parallel,
		Elements: "RL",
		Diagram: `+-----R-----+
|           |
+-----L-----+
|           |
+-----------+`,
	},
	{
		Key:      "rc-series",
		Title:    "RC in Series",
		Topology: network.Series,
		Elements: "RC",
		Diagram: `+-----R-----C-----+
|                 |
+-----------------+`,
	},
	{
		Key:      "rc-parallel",
		Title:    "RC in Parallel",
		Topology: network.Parallel,
		Elements: "RC",
		Diagram: `+-----R-----+
|           |
+-----C-----+
|           |
+-----------+`,
	},
	{
		Key:      "lc-series",
		Title:    "LC in Series",
		Topology: network.Series,
		Elements: "LC",
		Diagram: `+-----L-----C-----+
|                 |
+-----------------+`,
	},
	{
		Key:      "lc-parallel",
		Title:    "LC in Parallel",
		Topology: network.Parallel,
		Elements: "LC",
		Diagram: `+-----L-----+
|           |
+-----C-----+
|           |
+-----------+`,
	},
}

func All() []Preset {
	return presets
}

func Find(key string) (Preset, error) {
	for _, p := range presets {
		if p.Key == key {
			return p, nil
		}
	}
	return Preset{}, fmt.Errorf("unknown preset %q", key)
}

// Build creates the preset's network and its components from the supplied
// element values. Components are added in the preset's chain order.
func (p Preset) Build(v Values) (*network.Network, error) {
	net := network.New(p.Key)

	for _, letter := range p.Elements {
		var comp device.Component
		switch letter {
		case 'R':
			comp = device.NewResistor("R1", v.Resistance)
		case 'C':
			comp = device.NewCapacitor("C1", v.Capacitance)
		case 'L':
			comp = device.NewInductor("L1", v.Inductance)
		default:
			return nil, fmt.Errorf("preset %s: unknown element letter %q", p.Key, letter)
		}

		var err error
		if p.Topology == network.Parallel {
			err = net.AddInParallel(comp)
		} else {
			err = net.AddInSeries(comp)
		}
		if err != nil {
			return nil, err
		}
	}

	return net, nil
}
