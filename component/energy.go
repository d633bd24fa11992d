package component

import "fmt"

// EnergyPool is a clamped scalar resource. Locomotion states spend it on the
// booster and the glide and refill it while grounded.
type EnergyPool struct {
	current  float64
	max      float64
	onChange func(fraction float64)
}

// NewEnergyPool returns a full pool.
func NewEnergyPool(max float64) (*EnergyPool, error) {
	if max <= 0 {
		return nil, fmt.Errorf("%w: got %v", ErrInvalidEnergyMax, max)
	}
	return &EnergyPool{current: max, max: max}, nil
}

// OnChange registers fn to receive the fill fraction after every Adjust.
func (e *EnergyPool) OnChange(fn func(fraction float64)) {
	if e == nil {
		return
	}
	e.onChange = fn
}

// Adjust adds delta and clamps the result to [0, max]. Clamping is silent;
// callers check Empty before relying on energy-gated behaviour.
func (e *EnergyPool) Adjust(delta float64) {
	if e == nil {
		return
	}
	e.current += delta
	if e.current <= 0 {
		e.current = 0
	} else if e.current >= e.max {
		e.current = e.max
	}
	if e.onChange != nil {
		e.onChange(e.Fraction())
	}
}

func (e *EnergyPool) Current() float64 {
	if e == nil {
		return 0
	}
	return e.current
}

func (e *EnergyPool) Max() float64 {
	if e == nil {
		return 0
	}
	return e.max
}

// Fraction is current/max, the value shown by the energy bar.
func (e *EnergyPool) Fraction() float64 {
	if e == nil || e.max <= 0 {
		return 0
	}
	return e.current / e.max
}

// Empty reports whether no energy remains.
func (e *EnergyPool) Empty() bool {
	return e == nil || e.current <= 0
}
