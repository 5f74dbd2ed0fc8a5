// Package config loads YAML circuit descriptions and materializes them
// into networks of components.
package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"zmeter/pkg/device"
	"zmeter/pkg/network"
)

// LoadFromPath loads a circuit description from a specific path
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}

	cfg.applyDefaults()

	if err := cfg.validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Version == 0 {
		c.Version = 1
	}
	if c.Circuit.Name == "" {
		c.Circuit.Name = "circuit"
	}
	if c.Sweep != nil {
		if c.Sweep.Scale == "" {
			c.Sweep.Scale = "DEC"
		}
		if c.Sweep.Points == 0 {
			c.Sweep.Points = 50
		}
	}
}

func (c *Config) validate() error {
	if _, err := network.ParseTopology(c.Circuit.Topology); err != nil {
		return fmt.Errorf("circuit %s: %w", c.Circuit.Name, err)
	}
	if len(c.Circuit.Components) == 0 {
		return fmt.Errorf("circuit %s: no components", c.Circuit.Name)
	}
	if c.Circuit.Frequency <= 0 && c.Sweep == nil {
		return fmt.Errorf("circuit %s: frequency must be positive", c.Circuit.Name)
	}
	return nil
}

// Build materializes the configured network. Component ownership stays
// with the caller via the network's Components accessor.
func (c *Config) Build() (*network.Network, error) {
	topo, err := network.ParseTopology(c.Circuit.Topology)
	if err != nil {
		return nil, err
	}

	net := network.New(c.Circuit.Name)

	for i, cc := range c.Circuit.Components {
		comp, err := buildComponent(cc, i)
		if err != nil {
			return nil, fmt.Errorf("circuit %s: %w", c.Circuit.Name, err)
		}

		if topo == network.Parallel {
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

func buildComponent(cc ComponentConfig, idx int) (device.Component, error) {
	name := cc.Name
	if name == "" {
		name = fmt.Sprintf("X%d", idx+1)
	}

	switch cc.Type {
	case "resistor":
		return device.NewResistor(name, cc.Resistance), nil
	case "capacitor":
		return device.NewCapacitor(name, cc.Capacitance), nil
	case "inductor":
		return device.NewInductor(name, cc.Inductance), nil
	case "diode":
		return device.NewDiode(name, cc.Capacitance, cc.Resistance, cc.SaturationCurrent), nil
	case "transistor":
		return device.NewTransistor(name,
			cc.CollectorCurrent, cc.BaseCurrent, cc.EmitterCurrent,
			cc.CollectorEmitterVoltage, cc.BaseEmitterVoltage), nil
	default:
		return nil, fmt.Errorf("component %s: unknown type %q", name, cc.Type)
	}
}
