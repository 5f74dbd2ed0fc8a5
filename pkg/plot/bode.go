// Package plot renders frequency sweep results as Bode magnitude and
// phase charts.
package plot

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/plotutil"
	"gonum.org/v1/plot/vg"
)

// SaveBode writes <base>_mag.png and <base>_phase.png from an AC sweep
// result map. logFreq selects a logarithmic frequency axis, matching DEC
// and OCT sweeps; linear sweeps keep a linear axis so points at or below
// 0 Hz are not lost. Non-finite values (e.g. a capacitor evaluated at
// f=0) are dropped from the plotted series.
func SaveBode(results map[string][]float64, title, base string, logFreq bool) error {
	freqs, ok := results["FREQ"]
	if !ok {
		return fmt.Errorf("results contain no FREQ column")
	}

	if err := saveChart(results, freqs, "_MAG", title+" - magnitude", "|Z| (Ohm)", base+"_mag.png", logFreq); err != nil {
		return err
	}
	return saveChart(results, freqs, "_PHASE", title+" - phase", "Phase (deg)", base+"_phase.png", logFreq)
}

func saveChart(results map[string][]float64, freqs []float64, suffix, title, yLabel, filename string, logFreq bool) error {
	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "Frequency (Hz)"
	if logFreq {
		p.X.Scale = plot.LogScale{}
		p.X.Tick.Marker = plot.LogTicks{Prec: -1}
	}
	p.Y.Label.Text = yLabel

	var names []string
	for name := range results {
		if strings.HasSuffix(name, suffix) {
			names = append(names, name)
		}
	}
	sort.Strings(names)

	for i, name := range names {
		values := results[name]

		pts := make(plotter.XYs, 0, len(freqs))
		for j, f := range freqs {
			if j >= len(values) {
				break
			}
			if logFreq && f <= 0 {
				continue
			}
			if math.IsInf(values[j], 0) || math.IsNaN(values[j]) {
				continue
			}
			pts = append(pts, plotter.XY{X: f, Y: values[j]})
		}
		if len(pts) == 0 {
			continue
		}

		line, err := plotter.NewLine(pts)
		if err != nil {
			return fmt.Errorf("building line for %s: %w", name, err)
		}
		line.Color = plotutil.Color(i)

		p.Add(line)
		p.Legend.Add(strings.TrimSuffix(name, suffix), line)
	}

	if err := p.Save(8*vg.Inch, 4*vg.Inch, filename); err != nil {
		return fmt.Errorf("saving %s: %w", filename, err)
	}
	return nil
}
