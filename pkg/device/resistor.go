package device

type Resistor struct {
	BaseComponent
	Resistance float64
}

var _ Component = (*Resistor)(nil)

func NewResistor(name string, resistance float64) *Resistor {
	return &Resistor{
		BaseComponent: BaseComponent{
			Name:      name,
			Impedance: complex(resistance, 0),
		},
		Resistance: resistance,
	}
}

func (r *Resistor) GetType() string { return "Resistor" }

func (r *Resistor) SetFrequency(f float64) {
	// Z = R regardless of frequency
	r.Frequency = f
}
