package core

// Line is a pre-resolved handle for one output pin's hot-path writes.
// Implementations must be safe to call from interrupt context: no
// allocation, no blocking, no error path.
type Line interface {
	High()
	Low()
}

// GPIODriver is the abstract GPIO interface that core code uses.
// Platform-specific implementations handle actual hardware control.
//
// WritePin must be legal on a pin that has not yet been configured as
// an output: it writes the output latch only. The glitch-free
// initialization sequence depends on forcing the latch low before the
// pin direction is switched to output.
type GPIODriver interface {
	// WritePin sets the output latch high (true) or low (false)
	WritePin(pin Pin, high bool) error

	// ConfigureOutput switches the pin to push-pull output, driving
	// whatever level the latch already holds
	ConfigureOutput(pin Pin) error

	// ConfigureInputPullup configures a pin as a digital input with
	// the internal pull-up enabled (idle level high)
	ConfigureInputPullup(pin Pin) error

	// ReadPin reads the current pin level
	ReadPin(pin Pin) (bool, error)

	// Line returns the hot-path handle for an output pin
	Line(pin Pin) (Line, error)
}

// Global singleton used by core code.
var gpioDriver GPIODriver

// SetGPIODriver is called by target-specific code to register its driver.
func SetGPIODriver(d GPIODriver) {
	gpioDriver = d
}

// MustGPIO returns the configured driver or panics if missing.
func MustGPIO() GPIODriver {
	if gpioDriver == nil {
		panic("GPIO driver not configured")
	}
	return gpioDriver
}
