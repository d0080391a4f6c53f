//go:build nrf52840

package nrf52840

import (
	"machine"
	"runtime/interrupt"

	"irqmark/core"
)

// IRQDriver implements core.IRQDriver via GPIOTE pin interrupts and the
// runtime's global interrupt gate.
type IRQDriver struct{}

// NewIRQDriver returns the nRF52840 IRQ driver.
func NewIRQDriver() IRQDriver { return IRQDriver{} }

// AttachRising binds fn to the pin's rising edge. The pin must be
// configured as an input; GPIOTE cannot watch an output-driven pin,
// which is why this family routes the trigger through the sense input.
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
