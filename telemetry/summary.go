package telemetry

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// Summary aggregates a run: time spent per state, transitions and extremes.
type Summary struct {
	Frames      int
	Duration    float64
	StateTime   map[string]float64
	Transitions int
	MaxHeight   float64
	MinEnergy   float64
	Distance    float64

	last *Sample
}

func NewSummary() *Summary {
	return &Summary{StateTime: map[string]float64{}}
}

// Add folds in a sample taken dt seconds after the previous one.
func (s *Summary) Add(sample Sample, dt float64) {
	if s.last == nil {
		s.MaxHeight = sample.Y
		s.MinEnergy = sample.Energy
	} else {
		if sample.State != s.last.State {
			s.Transitions++
		}
		dx, dz := sample.X-s.last.X, sample.Z-s.last.Z
		s.Distance += math.Hypot(dx, dz)
	}
	s.Frames++
	s.Duration += dt
	s.StateTime[sample.State] += dt
	if sample.Y > s.MaxHeight {
		s.MaxHeight = sample.Y
	}
	if sample.Energy < s.MinEnergy {
		s.MinEnergy = sample.Energy
	}
	cp := sample
	s.last = &cp
}

func (s *Summary) String() string {
	states := make([]string, 0, len(s.StateTime))
	for k := range s.StateTime {
		states = append(states, k)
	}
	sort.Strings(states)
	var b strings.Builder
	fmt.Fprintf(&b, "frames=%d duration=%.2fs transitions=%d max_height=%.2f min_energy=%.2f distance=%.2f",
		s.Frames, s.Duration, s.Transitions, s.MaxHeight, s.MinEnergy, s.Distance)
	for _, k := range states {
		fmt.Fprintf(&b, " %s=%.2fs", k, s.StateTime[k])
	}
	return b.String()
}
