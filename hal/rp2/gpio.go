//go:build rp2040 || rp2350

// Package rp2 implements the harness hardware drivers for RP2040 and
// RP2350 boards on top of the machine package.
package rp2

import (
	"errors"
	"machine"

	"irqmark/core"
)

// Bank 0 user GPIOs on the Pico and Pico 2.
const maxGPIO = 29

var errInvalidPin = errors.New("rp2: pin out of range")

// GPIODriver implements core.GPIODriver. The SIO output latch is
// writable before a pin is switched to output, which is what WritePin
// relies on for glitch-free initialization.
type GPIODriver struct{}

// NewGPIODriver returns the RP2 GPIO driver.
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

// ConfigureOutput switches the pin to push-pull output. The pin drives
// whatever level the latch already holds.
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
