package main

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spf13/cobra"

	"zmeter/internal/config"
	"zmeter/pkg/analysis"
	"zmeter/pkg/network"
	"zmeter/pkg/plot"
	"zmeter/pkg/preset"
	"zmeter/pkg/util"
)

var sweepOpts struct {
	configPath  string
	presetKey   string
	resistance  float64
	capacitance float64
	inductance  float64
	start       float64
	stop        float64
	points      int
	scale       string
	plotBase    string
}

var sweepCmd = &cobra.Command{
	Use:   "sweep",
	Short: "Sweep a circuit over a frequency range",
	RunE:  runSweep,
}

func init() {
	f := sweepCmd.Flags()
	f.StringVar(&sweepOpts.configPath, "config", "", "circuit description file (YAML)")
	f.StringVar(&sweepOpts.presetKey, "preset", "", "canonical circuit key (see 'zmeter presets')")
	f.Float64Var(&sweepOpts.resistance, "resistance", 0, "resistance in Ohm (presets with R)")
	f.Float64Var(&sweepOpts.capacitance, "capacitance", 0, "capacitance in F (presets with C)")
	f.Float64Var(&sweepOpts.inductance, "inductance", 0, "inductance in H (presets with L)")
	f.Float64Var(&sweepOpts.start, "start", 0, "start frequency in Hz")
	f.Float64Var(&sweepOpts.stop, "stop", 0, "stop frequency in Hz")
	f.IntVar(&sweepOpts.points, "points", 50, "number of sweep points")
	f.StringVar(&sweepOpts.scale, "scale", "DEC", "sweep scale: DEC, OCT or LIN")
	f.StringVar(&sweepOpts.plotBase, "plot", "", "write Bode charts to <base>_mag.png and <base>_phase.png")
	rootCmd.AddCommand(sweepCmd)
}

func runSweep(cmd *cobra.Command, args []string) error {
	net, sweep, err := buildSweep()
	if err != nil {
		return err
	}

	ac := analysis.NewAC(sweep.Start, sweep.Stop, sweep.Points, sweep.Scale)
	if err := ac.Setup(net); err != nil {
		return err
	}
	if err := ac.Execute(); err != nil {
		return err
	}

	results := ac.GetResults()
	printSweepTable(results)

	if sweepOpts.plotBase != "" {
		logFreq := sweep.Scale != "LIN"
		if err := plot.SaveBode(results, net.Name(), sweepOpts.plotBase, logFreq); err != nil {
			return err
		}
		fmt.Printf("\nWrote %s_mag.png and %s_phase.png\n", sweepOpts.plotBase, sweepOpts.plotBase)
	}

	return nil
}

func buildSweep() (*network.Network, *config.SweepConfig, error) {
	switch {
	case sweepOpts.configPath != "":
		cfg, err := config.LoadFromPath(sweepOpts.configPath)
		if err != nil {
			return nil, nil, err
		}
		net, err := cfg.Build()
		if err != nil {
			return nil, nil, err
		}
		sweep := cfg.Sweep
		if sweep == nil {
			sweep = &config.SweepConfig{Start: sweepOpts.start, Stop: sweepOpts.stop, Points: sweepOpts.points, Scale: sweepOpts.scale}
		}
		return net, sweep, nil

	case sweepOpts.presetKey != "":
		p, err := preset.Find(sweepOpts.presetKey)
		if err != nil {
			return nil, nil, err
		}
		net, err := p.Build(preset.Values{
			Resistance:  sweepOpts.resistance,
			Capacitance: sweepOpts.capacitance,
			Inductance:  sweepOpts.inductance,
		})
		if err != nil {
			return nil, nil, err
		}
		sweep := &config.SweepConfig{Start: sweepOpts.start, Stop: sweepOpts.stop, Points: sweepOpts.points, Scale: sweepOpts.scale}
		return net, sweep, nil

	default:
		return nil, nil, fmt.Errorf("either --config or --preset is required")
	}
}

func printSweepTable(results map[string][]float64) {
	freqs := results["FREQ"]
	fmt.Printf("\nAC Sweep Results (%d frequency points):\n", len(freqs))
	fmt.Println("Frequency      Impedances (Magnitude/Phase)")
	fmt.Println("-----------------------------------------------------------------------------")

	var names []string
	for name := range results {
		if strings.HasSuffix(name, "_MAG") {
			names = append(names, strings.TrimSuffix(name, "_MAG"))
		}
	}
	sort.Strings(names)

	for i, freq := range freqs {
		fmt.Printf("%-13s", util.FormatFrequency(freq))
		for _, name := range names {
			mag, magOK := results[name+"_MAG"]
			phase, phaseOK := results[name+"_PHASE"]
			if !magOK || !phaseOK {
				continue
			}
			fmt.Printf("%s=%s<%sdeg  ", name, util.FormatMagnitude(mag[i]), util.FormatPhase(phase[i]))
		}
		fmt.Println()
	}
}
