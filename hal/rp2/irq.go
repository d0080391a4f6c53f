//go:build rp2040 || rp2350

package rp2

import (
	"machine"
	"runtime/interrupt"

	"irqmark/core"
)

// IRQDriver implements core.IRQDriver using the machine pin-interrupt
// API and the runtime's global interrupt gate.
type IRQDriver struct{}

// NewIRQDriver returns the RP2 IRQ driver.
func NewIRQDriver() IRQDriver { return IRQDriver{} }

// AttachRising binds fn to the pin's rising edge. The wrapper only
// drops the pin argument, so the handler stays allocation-free in
// interrupt context.
func (d IRQDriver) AttachRising(pin core.Pin, fn func()) error {
	p, err := NewGPIODriver().pin(pin)
	if err != nil {
		return err
	}
	return p.SetInterrupt(machine.PinRising, func(machine.Pin) { fn() })
}

// Disable masks interrupt delivery globally.
func (IRQDriver) Disable() core.IRQState {
	return core.IRQState(interrupt.Disable())
}

// Restore returns interrupt delivery to a saved state.
func (IRQDriver) Restore(state core.IRQState) {
	interrupt.Restore(interrupt.State(state))
}
