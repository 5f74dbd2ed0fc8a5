package device

import "math/cmplx"

// Component is a two-terminal circuit element characterized by its complex
// impedance at a single externally supplied frequency. SetFrequency
// recomputes and stores the impedance, so every accessor is a pure read.
type Component interface {
	GetName() string
	GetType() string
	SetFrequency(f float64)
	GetFrequency() float64
	GetImpedance() complex128
	GetImpedanceMagnitude() float64
	GetPhaseDifference() float64 // radians
}

type BaseComponent struct {
	Name      string
	Frequency float64
	Impedance complex128
}

func (b *BaseComponent) GetName() string {
	return b.Name
}

func (b *BaseComponent) GetFrequency() float64 {
	return b.Frequency
}

func (b *BaseComponent) GetImpedance() complex128 {
	return b.Impedance
}

func (b *BaseComponent) GetImpedanceMagnitude() float64 {
	return cmplx.Abs(b.Impedance)
}

func (b *BaseComponent) GetPhaseDifference() float64 {
	return cmplx.Phase(b.Impedance)
}
