package device

import "math"

// Diode is a small-signal junction model around a DC bias: a parallel RC
// rolloff combined with a saturation-current scaled reactive term.
type Diode struct {
	BaseComponent
	Cj float64 // Junction capacitance (F)
	Rs float64 // Series resistance (ohm)
	Is float64 // Saturation current (A)
}

var _ Component = (*Diode)(nil)

func NewDiode(name string, capacitance, resistance, saturationCurrent float64) *Diode {
	d := &Diode{
		BaseComponent: BaseComponent{
			Name:      name,
			Impedance: complex(0, resistance),
		},
		Cj: capacitance,
		Rs: resistance,
		Is: saturationCurrent,
	}
	return d
}

func (d *Diode) GetType() string { return "Diode" }

func (d *Diode) SetFrequency(f float64) {
	d.Frequency = f

	// tau = Rs*Cj, denom = 1 + jw*tau
	// Z = Rs/denom + (Is*Rs/Cj) / (jw*Cj*denom)
	// At f=0 the second term divides by zero and the non-finite result
	// is stored as-is.
	omega := 2 * math.Pi * f
	tau := d.Rs * d.Cj
	denom := complex(1, omega*tau)
	jwc := complex(0, omega*d.Cj)

	d.Impedance = complex(d.Rs, 0)/denom + complex(d.Is*d.Rs/d.Cj, 0)/(jwc*denom)
}
