package device

// Transistor is characterized only at its DC operating point: the stored
// impedance is the output resistance Vce/Ic and never changes with
// frequency.
type Transistor struct {
	BaseComponent
	Ic  float64 // Collector current (A)
	Ib  float64 // Base current (A)
	Ie  float64 // Emitter current (A)
	Vce float64 // Collector-emitter voltage (V)
	Vbe float64 // Base-emitter voltage (V)
}

var _ Component = (*Transistor)(nil)

func NewTransistor(name string, ic, ib, ie, vce, vbe float64) *Transistor {
	return &Transistor{
		BaseComponent: BaseComponent{
			Name:      name,
			Impedance: complex(vce/ic, 0),
		},
		Ic:  ic,
		Ib:  ib,
		Ie:  ie,
		Vce: vce,
		Vbe: vbe,
	}
}

func (t *Transistor) GetType() string { return "Transistor" }

func (t *Transistor) SetFrequency(f float64) {
	// Impedance does not depend on frequency
}

func (t *Transistor) GetFrequency() float64 {
	return 0
}

func (t *Transistor) GetPhaseDifference() float64 {
	return 0
}
