//go:build nrf52840

package main

import (
	"irqmark/core"
	"irqmark/hal/nrf52840"
)

//go:generate tinygo flash -target=feather-nrf52840

const device = core.NRF52840

func main() {
	core.SetGPIODriver(nrf52840.NewGPIODriver())
	core.SetIRQDriver(nrf52840.NewIRQDriver())

	h, err := core.Setup(device, runMode)
	if err != nil {
		panic(err)
	}
	// This family only fires interrupts through the external jumper
	// between the trigger and sense pins; refuse to run without it
	// rather than emit a trigger-only trace that looks like a result.
	if runMode == core.Interrupted {
		if err := h.VerifyWiring(); err != nil {
			panic(err)
		}
	}

	h.Run()
}
