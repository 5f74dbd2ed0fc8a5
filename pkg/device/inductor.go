package device

import "math"

type Inductor struct {
	BaseComponent
	Inductance float64
}

var _ Component = (*Inductor)(nil)

func NewInductor(name string, inductance float64) *Inductor {
	l := &Inductor{
		BaseComponent: BaseComponent{Name: name},
		Inductance:    inductance,
	}
	l.SetFrequency(0)
	return l
}

func (l *Inductor) GetType() string { return "Inductor" }

func (l *Inductor) SetFrequency(f float64) {
	l.Frequency = f
	omega := 2 * math.Pi * f
	l.Impedance = complex(0, omega*l.Inductance) // Z = jωL
}

// GetPhaseDifference reports the exact analytic phase of an ideal
// inductor; atan2 of the stored value would be 0 at f=0.
func (l *Inductor) GetPhaseDifference() float64 {
	return math.Pi / 2
}
