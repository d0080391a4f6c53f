//go:build rp2040 || rp2350

package main

import (
	"machine"

	"irqmark/core"
	"irqmark/hal/rp2"
)

//go:generate tinygo flash -target=pico

// Spare pin carrying the PIO-generated reference square wave. Probe it
// alongside the trigger and response lines to cross-check the capture
// timebase; it costs the CPU nothing.
const (
	refWavePin = machine.GP16
	refWaveHz  = 1_000_000
)

func main() {
	core.SetGPIODriver(rp2.NewGPIODriver())
	core.SetIRQDriver(rp2.NewIRQDriver())

	h, err := core.Setup(device, runMode)
	if err != nil {
		panic(err)
	}
	if err := rp2.StartRefWave(refWavePin, refWaveHz); err != nil {
		panic(err)
	}

	h.Run()
}
