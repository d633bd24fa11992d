package component

// Input stores the per-frame input snapshot read by the player states.
// Horizontal/Vertical are smoothed; the Raw variants are used for zero checks.
type Input struct {
	Horizontal    float64
	Vertical      float64
	RawHorizontal float64
	RawVertical   float64
	Jump          bool
	JumpPressed   bool
	JumpReleased  bool
	LookX         float64
	LookY         float64
}

// HasDirection reports whether either raw movement axis is held.
func (in *Input) HasDirection() bool {
	return in != nil && (in.RawHorizontal != 0 || in.RawVertical != 0)
}
