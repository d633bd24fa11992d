package component

// PlayerObserver receives display state from the controller.
type PlayerObserver interface {
	EnergyChanged(fraction float64)
	TrailsChanged(enabled bool)
}

// NopObserver discards everything.
type NopObserver struct{}

func (NopObserver) EnergyChanged(float64) {}
func (NopObserver) TrailsChanged(bool)    {}
