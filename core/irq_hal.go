package core

// IRQState is the opaque saved global-interrupt state returned by
// Disable and accepted by Restore. On TinyGo targets it wraps
// runtime/interrupt.State.
type IRQState uintptr

// IRQDriver is the abstract interrupt interface that core code uses.
//
// AttachRising is a one-shot action: the harness binds the service
// routine exactly once per process lifetime, during setup, and there is
// no detach. Implementations may reject a second attachment but are not
// required to; core never issues one.
type IRQDriver interface {
	// AttachRising arranges for fn to run on each rising edge observed
	// on the pin. fn executes in the platform's interrupt context.
	AttachRising(pin Pin, fn func()) error

	// Disable masks interrupt delivery globally and returns the
	// previous state
	Disable() IRQState

	// Restore returns interrupt delivery to a previously saved state
	Restore(state IRQState)
}

// Global singleton used by core code.
var irqDriver IRQDriver

// SetIRQDriver is called by target-specific code to register its driver.
func SetIRQDriver(d IRQDriver) {
	irqDriver = d
}

// MustIRQ returns the configured driver or panics if missing.
func MustIRQ() IRQDriver {
	if irqDriver == nil {
		panic("IRQ driver not configured")
	}
	return irqDriver
}
