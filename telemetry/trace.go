package telemetry

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/milk9111/glider/system"
)

// Sample is one row of the per-frame trace.
type Sample struct {
	Frame    int     `csv:"frame"`
	Time     float64 `csv:"time"`
	State    string  `csv:"state"`
	X        float64 `csv:"x"`
	Y        float64 `csv:"y"`
	Z        float64 `csv:"z"`
	VX       float64 `csv:"vx"`
	VY       float64 `csv:"vy"`
	VZ       float64 `csv:"vz"`
	Energy   float64 `csv:"energy"`
	Booster  float64 `csv:"booster"`
	Yaw      float64 `csv:"yaw"`
	Roll     float64 `csv:"roll"`
	Grounded bool    `csv:"grounded"`
}

// SampleOf captures the controller's state after a frame.
func SampleOf(frame int, t float64, pc *system.PlayerController) Sample {
	body := pc.Body()
	cfg := pc.Config()
	pos, vel := body.Position(), body.Velocity()
	return Sample{
		Frame:    frame,
		Time:     t,
		State:    pc.State().String(),
		X:        pos.X(),
		Y:        pos.Y(),
		Z:        pos.Z(),
		VX:       vel.X(),
		VY:       vel.Y(),
		VZ:       vel.Z(),
		Energy:   pc.Energy().Current(),
		Booster:  pc.BoosterForce(),
		Yaw:      body.Yaw(),
		Roll:     pc.Pivot().Roll(),
		Grounded: body.Grounded(cfg.GroundCastLength, cfg.GroundLayer),
	}
}

// TraceWriter streams samples as CSV, writing the header with the first row.
// A nil TraceWriter discards everything.
type TraceWriter struct {
	out           io.Writer
	headerWritten bool
	rows          int
}

func NewTraceWriter(out io.Writer) *TraceWriter {
	if out == nil {
		return nil
	}
	return &TraceWriter{out: out}
}

func (tw *TraceWriter) Write(s Sample) error {
	if tw == nil {
		return nil
	}

	records := []Sample{s}

	if !tw.headerWritten {
		if err := gocsv.Marshal(records, tw.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
		tw.headerWritten = true
	} else {
		if err := gocsv.MarshalWithoutHeaders(records, tw.out); err != nil {
			return fmt.Errorf("writing trace: %w", err)
		}
	}
	tw.rows++
	return nil
}

// Rows is the number of samples written.
func (tw *TraceWriter) Rows() int {
	if tw == nil {
		return 0
	}
	return tw.rows
}

// ReadTrace parses a trace written by TraceWriter.
func ReadTrace(in io.Reader) ([]Sample, error) {
	var samples []Sample
	if err := gocsv.Unmarshal(in, &samples); err != nil {
		return nil, fmt.Errorf("reading trace: %w", err)
	}
	return samples, nil
}
