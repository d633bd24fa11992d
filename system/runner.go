package system

import (
	"errors"

	"github.com/milk9111/glider/component"
)

const (
	DefaultFixedStep = 0.02
	// maxStepsPerFrame caps catch-up after a long frame.
	maxStepsPerFrame = 5
)

var ErrNilController = errors.New("runner: controller is nil")

// Simulation is the physics world advanced between fixed updates.
type Simulation interface {
	Step(dt float64)
}

// Runner is the host loop: it polls input, turns the camera, runs the
// controller's frame hook, then as many fixed steps as the accumulated time
// allows, then the late hook.
type Runner struct {
	input      *component.Input
	source     InputSource
	camera     *CameraSystem
	controller *PlayerController
	sim        Simulation
	fixedDT    float64
	acc        float64
	frame      int
	time       float64
}

func NewRunner(input *component.Input, source InputSource, camera *CameraSystem, controller *PlayerController, sim Simulation, fixedDT float64) (*Runner, error) {
	if controller == nil {
		return nil, ErrNilController
	}
	if input == nil {
		return nil, ErrNilInput
	}
	if fixedDT <= 0 {
		fixedDT = DefaultFixedStep
	}
	return &Runner{
		input:      input,
		source:     source,
		camera:     camera,
		controller: controller,
		sim:        sim,
		fixedDT:    fixedDT,
	}, nil
}

// Frame advances one rendered frame of dt seconds and returns the number of
// fixed steps it ran.
func (r *Runner) Frame(dt float64) (int, error) {
	if r.source != nil {
		if err := r.source.Poll(r.input, dt); err != nil {
			return 0, err
		}
	}
	if r.camera != nil {
		r.camera.Update(r.input, dt)
	}

	r.controller.OnFrame(dt)

	r.acc += dt
	steps := 0
	for r.acc >= r.fixedDT && steps < maxStepsPerFrame {
		r.controller.OnFixedStep(r.fixedDT)
		if r.sim != nil {
			r.sim.Step(r.fixedDT)
		}
		r.acc -= r.fixedDT
		steps++
	}
	if r.acc > r.fixedDT {
		r.acc = r.fixedDT
	}

	r.controller.OnLateFrame(dt)
	r.frame++
	r.time += dt
	return steps, nil
}

// Frames is the number of completed frames.
func (r *Runner) Frames() int {
	return r.frame
}

// Time is the simulated time in seconds.
func (r *Runner) Time() float64 {
	return r.time
}

func (r *Runner) Controller() *PlayerController {
	return r.controller
}

func (r *Runner) Camera() *CameraSystem {
	return r.camera
}
