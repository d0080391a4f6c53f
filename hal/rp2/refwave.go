//go:build rp2040 || rp2350

package rp2

import (
	"machine"

	rp2pio "github.com/tinygo-org/pio/rp2-pio"
)

// Hardware-timed reference square wave on a spare pin. The PIO state
// machine runs it with zero CPU involvement, so it can stay on during
// measurement as a timebase cross-check for the capture equipment.

// buildRefWaveProgram creates the two-instruction wave program using
// AssemblerV0. The state machine wraps from the last instruction back
// to the first, giving one cycle high and one cycle low.
func buildRefWaveProgram() []uint16 {
	asm := rp2pio.AssemblerV0{}
	return []uint16{
		// .wrap_target
		asm.Set(rp2pio.SetDestPins, 1).Encode(), // 0: set pins, 1
		asm.Set(rp2pio.SetDestPins, 0).Encode(), // 1: set pins, 0
		// .wrap
	}
}

const refWaveOrigin = 0 // Load at offset 0 for correct wrap addresses

// StartRefWave loads the wave program on PIO0 state machine 0 and
// starts a square wave of the given frequency on pin. The wave keeps
// running until reset.
func StartRefWave(pin machine.Pin, hz uint32) error {
	Pio := rp2pio.PIO0
	sm := Pio.StateMachine(0)
	sm.TryClaim()

	program := buildRefWaveProgram()
	offset, err := Pio.AddProgram(program, refWaveOrigin)
	if err != nil {
		return err
	}

	pin.Configure(machine.PinConfig{Mode: Pio.PinMode()})

	cfg := rp2pio.DefaultStateMachineConfig()
	cfg.SetSetPins(pin, 1)
	cfg.SetWrap(offset+uint8(len(program))-1, offset)

	// One full output cycle is two instructions.
	div := machine.CPUFrequency() / (2 * hz)
	cfg.SetClkDivIntFrac(uint16(div), 0)

	sm.Init(offset, cfg)

	// Pin direction and idle level must be set after Init.
	sm.SetPindirsConsecutive(pin, 1, true)
	sm.SetPinsConsecutive(pin, 1, false)

	sm.SetEnabled(true)
	return nil
}
