package component

import (
	"errors"
	"math"
	"testing"
)

func TestEnergyPoolAdjust(t *testing.T) {
	tests := []struct {
		name   string
		deltas []float64
		want   float64
	}{
		{"starts_full", nil, 100},
		{"consume", []float64{-30}, 70},
		{"regenerate_clamps_to_max", []float64{-30, 500}, 100},
		{"underflow_clamps_to_zero", []float64{-1000}, 0},
		{"overflow_then_underflow", []float64{200, -200}, 0},
		{"zero_is_noop", []float64{-25, 0, 0}, 75},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pool, err := NewEnergyPool(100)
			if err != nil {
				t.Fatalf("NewEnergyPool: %v", err)
			}
			for _, d := range tt.deltas {
				pool.Adjust(d)
				if pool.Current() < 0 || pool.Current() > pool.Max() {
					t.Fatalf("current %v left [0,%v]", pool.Current(), pool.Max())
				}
			}
			if math.Abs(pool.Current()-tt.want) > 1e-9 {
				t.Fatalf("expected %v, got %v", tt.want, pool.Current())
			}
		})
	}
}

func TestEnergyPoolBoundsUnderRandomWalk(t *testing.T) {
	pool, _ := NewEnergyPool(50)
	// deterministic pseudo random sequence
	x := uint32(2463534242)
	for i := 0; i < 10000; i++ {
		x ^= x << 13
		x ^= x >> 17
		x ^= x << 5
		delta := float64(int32(x)%400) / 3
		pool.Adjust(delta)
		if pool.Current() < 0 || pool.Current() > 50 {
			t.Fatalf("step %d: current %v out of bounds", i, pool.Current())
		}
	}
}

func TestEnergyPoolAdjustZeroKeepsValue(t *testing.T) {
	pool, _ := NewEnergyPool(10)
	for _, d := range []float64{-3.3, -100, 7.25, 100} {
		pool.Adjust(d)
		before := pool.Current()
		pool.Adjust(0)
		if pool.Current() != before {
			t.Fatalf("Adjust(0) changed %v to %v", before, pool.Current())
		}
	}
}

func TestEnergyPoolNotifiesFraction(t *testing.T) {
	pool, _ := NewEnergyPool(200)
	var got []float64
	pool.OnChange(func(f float64) { got = append(got, f) })
	pool.Adjust(-50)
	pool.Adjust(-1000)
	if len(got) != 2 || got[0] != 0.75 || got[1] != 0 {
		t.Fatalf("unexpected fractions %v", got)
	}
	if !pool.Empty() {
		t.Fatalf("expected pool to be empty")
	}
}

func TestNewEnergyPoolRejectsNonPositiveMax(t *testing.T) {
	for _, max := range []float64{0, -1} {
		if _, err := NewEnergyPool(max); !errors.Is(err, ErrInvalidEnergyMax) {
			t.Fatalf("max %v: expected ErrInvalidEnergyMax, got %v", max, err)
		}
	}
}
