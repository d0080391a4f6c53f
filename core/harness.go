// Harness setup: glitch-free output initialization, interrupt binding
// and the run-mode split. Everything here runs once, before the
// measurement loop starts; nothing here is on a hot path.
package core

import (
	"errors"
	"fmt"
)

// RunMode selects between the two measurement configurations. It is a
// build-time choice, fixed before setup and never toggled afterwards.
type RunMode uint8

const (
	// Uninterrupted runs the bare loop with interrupt delivery globally
	// masked, for the baseline loop-period measurement.
	Uninterrupted RunMode = iota
	// Interrupted arms the service routine on the trigger edge so the
	// response pulse marks interrupt latency.
	Interrupted
)

// String returns the mode name for display/diagnostics.
func (m RunMode) String() string {
	if m == Interrupted {
		return "interrupted"
	}
	return "uninterrupted"
}

var (
	// ErrInitAborted means output initialization failed partway; no
	// interrupt was armed and the harness must not be run
	ErrInitAborted = errors.New("output initialization aborted")
	// ErrWiringMissing means the sense pin does not follow the trigger
	// pin, so the required external jumper is absent or broken
	ErrWiringMissing = errors.New("sense pin not wired to trigger pin")
)

// Harness owns the two (or three) measurement lines after setup.
// Trigger is written only by Run/PulseTrigger; Response only by the
// service routine. The two paths share no variable: they communicate
// solely through the electrical line and the platform's interrupt
// delivery.
type Harness struct {
	mapping  PinMapping
	mode     RunMode
	trigger  Line
	response Line
}

// Mapping returns the resolved pin-role mapping.
func (h *Harness) Mapping() PinMapping { return h.mapping }

// Mode returns the run mode the harness was set up with.
func (h *Harness) Mode() RunMode { return h.mode }

// Setup resolves the pin roles for dev and brings the hardware to the
// measurement-ready state for the given run mode. It must be called
// exactly once. On any error no interrupt is armed and the caller must
// not run the harness.
//
// Ordering contracts honored here:
//   - pin-role validation completes before any pin is touched
//   - each output's latch is forced low before its direction is
//     switched to output (no turn-on glitch on the capture trace)
//   - in Interrupted mode the service routine is attached before
//     interrupt delivery is re-enabled, and enabled exactly once
//   - in Uninterrupted mode interrupt delivery stays globally masked
func Setup(dev Device, mode RunMode) (*Harness, error) {
	mapping, err := ResolvePins(dev)
	if err != nil {
		return nil, err
	}

	gpio := MustGPIO()
	irq := MustIRQ()

	// Quiesce while lines are half-configured. A device-default
	// interrupt source firing mid-initialization could observe or
	// perturb a partially driven line.
	saved := irq.Disable()

	h := &Harness{mapping: mapping, mode: mode}
	for _, pin := range []Pin{mapping.Trigger, mapping.Response} {
		if err := initOutputLow(gpio, pin); err != nil {
			irq.Restore(saved)
			return nil, fmt.Errorf("%w: pin %d: %v", ErrInitAborted, pin, err)
		}
	}
	if h.trigger, err = gpio.Line(mapping.Trigger); err != nil {
		irq.Restore(saved)
		return nil, fmt.Errorf("%w: trigger line: %v", ErrInitAborted, err)
	}
	if h.response, err = gpio.Line(mapping.Response); err != nil {
		irq.Restore(saved)
		return nil, fmt.Errorf("%w: response line: %v", ErrInitAborted, err)
	}

	switch mode {
	case Interrupted:
		if err := h.bind(gpio, irq); err != nil {
			irq.Restore(saved)
			return nil, err
		}
		// Enable delivery only now, with the routine attached and both
		// lines resting low.
		irq.Restore(saved)
	default:
		// Leave delivery masked so no device-default source perturbs
		// the baseline loop.
	}
	return h, nil
}

// initOutputLow forces the pin's output latch low and only then makes
// the pin an output. The reverse order can emit an uncontrolled
// transient that the capture device cannot tell apart from a real edge.
func initOutputLow(gpio GPIODriver, pin Pin) error {
	if err := gpio.WritePin(pin, false); err != nil {
		return err
	}
	return gpio.ConfigureOutput(pin)
}

// bind attaches the service routine to the interrupt source for this
// family: the dedicated sense input when the family has one, otherwise
// the trigger line itself.
func (h *Harness) bind(gpio GPIODriver, irq IRQDriver) error {
	src := h.mapping.Trigger
	if h.mapping.HasSense() {
		src = h.mapping.Sense
		if err := gpio.ConfigureInputPullup(src); err != nil {
			return fmt.Errorf("%w: sense pin %d: %v", ErrInitAborted, src, err)
		}
	}
	if err := irq.AttachRising(src, h.serviceRoutine); err != nil {
		return fmt.Errorf("%w: attach on pin %d: %v", ErrInitAborted, src, err)
	}
	return nil
}

// VerifyWiring checks the external jumper between the trigger pin and
// the dedicated sense input by driving the trigger to both levels and
// reading the sense pin back. Families without a sense pin need no
// wiring and always pass.
//
// Call it between Setup and Run, and only then: it pulses the trigger
// line outside the measurement pattern.
func (h *Harness) VerifyWiring() error {
	if !h.mapping.HasSense() {
		return nil
	}
	gpio := MustGPIO()
	defer h.trigger.Low()
	for _, level := range []bool{true, false} {
		if level {
			h.trigger.High()
		} else {
			h.trigger.Low()
		}
		got, err := gpio.ReadPin(h.mapping.Sense)
		if err != nil {
			return err
		}
		if got != level {
			return fmt.Errorf("%w: trigger=%v sense=%v", ErrWiringMissing, level, got)
		}
	}
	return nil
}
