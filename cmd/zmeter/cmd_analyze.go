package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"zmeter/internal/config"
	"zmeter/pkg/analysis"
	"zmeter/pkg/device"
	"zmeter/pkg/network"
	"zmeter/pkg/preset"
	"zmeter/pkg/util"
)

var analyzeOpts struct {
	configPath  string
	presetKey   string
	frequency   float64
	resistance  float64
	capacitance float64
	inductance  float64
	check       bool
}

var analyzeCmd = &cobra.Command{
	Use:   "analyze",
	Short: "Report impedance and phase of a circuit at one frequency",
	RunE:  runAnalyze,
}

func init() {
	f := analyzeCmd.Flags()
	f.StringVar(&analyzeOpts.configPath, "config", "", "circuit description file (YAML)")
	f.StringVar(&analyzeOpts.presetKey, "preset", "", "canonical circuit key (see 'zmeter presets')")
	f.Float64Var(&analyzeOpts.frequency, "freq", 0, "frequency in Hz (must be positive)")
	f.Float64Var(&analyzeOpts.resistance, "resistance", 0, "resistance in Ohm (presets with R)")
	f.Float64Var(&analyzeOpts.capacitance, "capacitance", 0, "capacitance in F (presets with C)")
	f.Float64Var(&analyzeOpts.inductance, "inductance", 0, "inductance in H (presets with L)")
	f.BoolVar(&analyzeOpts.check, "check", false, "cross-check the result by nodal analysis")
	rootCmd.AddCommand(analyzeCmd)
}

func runAnalyze(cmd *cobra.Command, args []string) error {
	net, freq, diagram, err := buildCircuit()
	if err != nil {
		return err
	}

	net.SetFrequency(freq)
	printReport(net, freq, diagram)

	if analyzeOpts.check {
		z, err := analysis.DrivingPointImpedance(net, freq)
		if err != nil {
			return fmt.Errorf("nodal analysis check: %w", err)
		}
		fmt.Printf("Nodal analysis check: Z = %s\n", util.FormatImpedance(z))
	}

	return nil
}

func buildCircuit() (*network.Network, float64, string, error) {
	switch {
	case analyzeOpts.configPath != "":
		cfg, err := config.LoadFromPath(analyzeOpts.configPath)
		if err != nil {
			return nil, 0, "", err
		}
		net, err := cfg.Build()
		if err != nil {
			return nil, 0, "", err
		}
		freq := analyzeOpts.frequency
		if freq == 0 {
			freq = cfg.Circuit.Frequency
		}
		if freq <= 0 {
			return nil, 0, "", fmt.Errorf("frequency must be positive, got %g", freq)
		}
		return net, freq, "", nil

	case analyzeOpts.presetKey != "":
		p, err := preset.Find(analyzeOpts.presetKey)
		if err != nil {
			return nil, 0, "", err
		}
		if analyzeOpts.frequency <= 0 {
			return nil, 0, "", fmt.Errorf("frequency must be positive, got %g", analyzeOpts.frequency)
		}
		net, err := p.Build(preset.Values{
			Resistance:  analyzeOpts.resistance,
			Capacitance: analyzeOpts.capacitance,
			Inductance:  analyzeOpts.inductance,
		})
		if err != nil {
			return nil, 0, "", err
		}
		return net, analyzeOpts.frequency, p.Diagram, nil

	default:
		return nil, 0, "", fmt.Errorf("either --config or --preset is required")
	}
}

func printReport(net *network.Network, freq float64, diagram string) {
	fmt.Printf("Circuit: %s (%s)\n\n", net.Name(), net.Topology())

	fmt.Printf("Total Impedance Magnitude at %gHz: %s Ohms\n", freq, util.FormatMagnitude(net.GetTotalImpedanceMagnitude()))
	fmt.Printf("Total Phase Difference: %s\n", util.FormatPhaseRad(net.GetPhaseDifference()))
	fmt.Printf("Total Impedance: %s\n\n", util.FormatImpedance(net.GetCircuitImpedance()))

	fmt.Println("Component Impedances and Phase Shifts:")
	for _, comp := range net.Components() {
		fmt.Printf("Type: %s (%s)\n", comp.GetType(), comp.GetName())
		if value := componentValue(comp); value != "" {
			fmt.Printf("Value: %s\n", value)
		}
		fmt.Printf("Impedance Magnitude: %s Ohms\n", util.FormatMagnitude(comp.GetImpedanceMagnitude()))
		fmt.Printf("Phase Shift: %s\n\n", util.FormatPhaseRad(comp.GetPhaseDifference()))
	}

	if diagram != "" {
		fmt.Println("Circuit Diagram:")
		fmt.Println(diagram)
	}
}

func componentValue(comp device.Component) string {
	switch c := comp.(type) {
	case *device.Resistor:
		return util.FormatValueFactor(c.Resistance, "Ohm")
	case *device.Capacitor:
		return util.FormatValueFactor(c.Capacitance, "F")
	case *device.Inductor:
		return util.FormatValueFactor(c.Inductance, "H")
	case *device.Diode:
		return fmt.Sprintf("%s, %s, Is=%s",
			util.FormatValueFactor(c.Rs, "Ohm"),
			util.FormatValueFactor(c.Cj, "F"),
			util.FormatValueFactor(c.Is, "A"))
	case *device.Transistor:
		return fmt.Sprintf("Ic=%s, Vce=%s",
			util.FormatValueFactor(c.Ic, "A"),
			util.FormatValueFactor(c.Vce, "V"))
	default:
		return ""
	}
}
