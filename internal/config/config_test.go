package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"zmeter/pkg/network"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "circuit.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadAndBuild(t *testing.T) {
	path := writeConfig(t, `
circuit:
  name: rl-filter
  topology: series
  frequency: 60
  components:
    - type: resistor
      name: R1
      resistance: 100
    - type: inductor
      name: L1
      inductance: 0.01
sweep:
  start: 10
  stop: 10000
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	assert.Equal(t, 1, cfg.Version, "default version")
	assert.Equal(t, "DEC", cfg.Sweep.Scale, "default sweep scale")
	assert.Equal(t, 50, cfg.Sweep.Points, "default sweep points")

	net, err := cfg.Build()
	require.NoError(t, err)
	assert.Equal(t, "rl-filter", net.Name())
	assert.Equal(t, network.Series, net.Topology())
	require.Equal(t, 2, net.Size())

	net.SetFrequency(cfg.Circuit.Frequency)
	reactance := 2 * math.Pi * 60.0 * 0.01
	assert.InDelta(t, math.Hypot(100.0, reactance), net.GetTotalImpedanceMagnitude(), 1e-9)
}

func TestLoadAllVariants(t *testing.T) {
	path := writeConfig(t, `
circuit:
  name: mixed
  topology: parallel
  frequency: 1000
  components:
    - type: resistor
      resistance: 50
    - type: capacitor
      capacitance: 1.0e-6
    - type: inductor
      inductance: 1.0e-3
    - type: diode
      capacitance: 1.0e-9
      resistance: 100
      saturation_current: 1.0e-12
    - type: transistor
      collector_current: 0.01
      base_current: 0.0001
      emitter_current: 0.0101
      collector_emitter_voltage: 5
      base_emitter_voltage: 0.7
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	net, err := cfg.Build()
	require.NoError(t, err)
	require.Equal(t, 5, net.Size())

	types := make([]string, 0, net.Size())
	for _, comp := range net.Components() {
		types = append(types, comp.GetType())
	}
	assert.Equal(t, []string{"Resistor", "Capacitor", "Inductor", "Diode", "Transistor"}, types)

	// Unnamed components get positional names
	assert.Equal(t, "X1", net.Components()[0].GetName())
}

func TestLoadRejectsBadTopology(t *testing.T) {
	path := writeConfig(t, `
circuit:
  name: bad
  topology: ladder
  frequency: 60
  components:
    - type: resistor
      resistance: 100
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestLoadRejectsEmptyCircuit(t *testing.T) {
	path := writeConfig(t, `
circuit:
  name: empty
  topology: series
  frequency: 60
`)

	_, err := LoadFromPath(path)
	assert.Error(t, err)
}

func TestBuildRejectsUnknownType(t *testing.T) {
	path := writeConfig(t, `
circuit:
  name: bad
  topology: series
  frequency: 60
  components:
    - type: memristor
      resistance: 100
`)

	cfg, err := LoadFromPath(path)
	require.NoError(t, err)

	_, err = cfg.Build()
	assert.Error(t, err)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadFromPath(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
