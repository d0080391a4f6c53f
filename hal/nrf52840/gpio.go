//go:build nrf52840

// Package nrf52840 implements the harness hardware drivers for
// nRF52840 boards on top of the machine package.
//
// The GPIOTE peripheral cannot sense a pin whose input buffer is
// disconnected, which is the case for push-pull outputs, so this family
// uses the dedicated sense input jumpered externally to the trigger pin.
package nrf52840

import (
	"errors"
	"machine"

	"irqmark/core"
)

// P0.00-P0.31 plus P1.00-P1.15.
const maxGPIO = 47

var errInvalidPin = errors.New("nrf52840: pin out of range")

// GPIODriver implements core.GPIODriver. OUTSET/OUTCLR latch writes are
// legal before a pin's direction is configured.
type GPIODriver struct{}

// NewGPIODriver returns the nRF52840 GPIO driver.
func NewGPIODriver() GPIODriver { return GPIODriver{} }

func (GPIODriver) pin(p core.Pin) (machine.Pin, error) {
	if p > maxGPIO {
		return machine.NoPin, errInvalidPin
	}
	return machine.Pin(p), nil
}

// WritePin sets the output latch without touching the pin direction.
func (d GPIODriver) WritePin(pin core.Pin, high bool) error {
	p, err := d.pin(pin)
	if err != nil {
		return err
	}
	p.Set(high)
	return nil
}

// ConfigureOutput switches the pin to push-pull output.
func (d GPIODriver) ConfigureOutput(pin core.Pin) error {
	p, err := d.pin(pin)
	if err != nil {
		return err
	}
	p.Configure(machine.PinConfig{Mode: machine.PinOutput})
	return nil
}

// ConfigureInputPullup configures the pin as an input idling high.
func (d GPIODriver) ConfigureInputPullup(pin core.Pin) error {
	p, err := d.pin(pin)
	if err != nil {
		return err
	}
	p.Configure(machine.PinConfig{Mode: machine.PinInputPullup})
	return nil
}

// ReadPin reads the current pin level.
func (d GPIODriver) ReadPin(pin core.Pin) (bool, error) {
	p, err := d.pin(pin)
	if err != nil {
		return false, err
	}
	return p.Get(), nil
}

// Line returns the hot-path handle for an output pin.
func (d GPIODriver) Line(pin core.Pin) (core.Line, error) {
	p, err := d.pin(pin)
	if err != nil {
		return nil, err
	}
	return line{p}, nil
}

type line struct {
	p machine.Pin
}

func (l line) High() { l.p.High() }
func (l line) Low()  { l.p.Low() }
