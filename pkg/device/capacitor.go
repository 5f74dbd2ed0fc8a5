package device

import "math"

type Capacitor struct {
	BaseComponent
	Capacitance float64
}

var _ Component = (*Capacitor)(nil)

func NewCapacitor(name string, capacitance float64) *Capacitor {
	c := &Capacitor{
		BaseComponent: BaseComponent{Name: name},
		Capacitance:   capacitance,
	}
	c.SetFrequency(0)
	return c
}

func (c *Capacitor) GetType() string { return "Capacitor" }

func (c *Capacitor) SetFrequency(f float64) {
	c.Frequency = f
	omega := 2 * math.Pi * f
	// Z = -j / (ωC). At f=0 the reactance diverges and the stored
	// impedance becomes non-finite, which is propagated as-is.
	c.Impedance = complex(0, -1.0/(omega*c.Capacitance))
}

// GetPhaseDifference reports the exact analytic phase of an ideal
// capacitor rather than the argument of the stored value, which is
// ambiguous at f=0.
func (c *Capacitor) GetPhaseDifference() float64 {
	return -math.Pi / 2
}
