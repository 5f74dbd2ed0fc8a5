package config

// Config is the root of a circuit description file
type Config struct {
	Version int           `yaml:"version"`
	Circuit CircuitConfig `yaml:"circuit"`
	Sweep   *SweepConfig  `yaml:"sweep,omitempty"`
}

// CircuitConfig declares the network topology, evaluation frequency and
// member components
type CircuitConfig struct {
	Name       string            `yaml:"name"`
	Topology   string            `yaml:"topology"` // series or parallel
	Frequency  float64           `yaml:"frequency"`
	Components []ComponentConfig `yaml:"components"`
}

// ComponentConfig holds the union of per-variant parameters; only the
// fields matching Type are read
type ComponentConfig struct {
	Type string `yaml:"type"` // resistor, capacitor, inductor, diode, transistor
	Name string `yaml:"name"`

	Resistance  float64 `yaml:"resistance,omitempty"`  // Ohm
	Capacitance float64 `yaml:"capacitance,omitempty"` // F
	Inductance  float64 `yaml:"inductance,omitempty"`  // H

	// Diode
	SaturationCurrent float64 `yaml:"saturation_current,omitempty"` // A

	// Transistor DC operating point
	CollectorCurrent        float64 `yaml:"collector_current,omitempty"`         // A
	BaseCurrent             float64 `yaml:"base_current,omitempty"`              // A
	EmitterCurrent          float64 `yaml:"emitter_current,omitempty"`           // A
	CollectorEmitterVoltage float64 `yaml:"collector_emitter_voltage,omitempty"` // V
	BaseEmitterVoltage      float64 `yaml:"base_emitter_voltage,omitempty"`      // V
}

// SweepConfig describes an optional frequency sweep
type SweepConfig struct {
	Start  float64 `yaml:"start"`
	Stop   float64 `yaml:"stop"`
	Points int     `yaml:"points"`
	Scale  string  `yaml:"scale"` // DEC, OCT or LIN
}
