package core

import "fmt"

// Simulated GPIO/IRQ drivers for host tests. The GPIO sim records every
// (pin, operation) in order so tests can assert sequencing contracts,
// and models the external jumper wire plus rising-edge dispatch so the
// interrupt scenarios run without hardware.

type simBus struct {
	// log is the interleaved event trace across both drivers
	log []string
}

func (b *simBus) record(format string, args ...any) {
	b.log = append(b.log, fmt.Sprintf(format, args...))
}

type simGPIO struct {
	bus     *simBus
	irq     *simIRQ
	levels  map[Pin]bool
	output  map[Pin]bool
	pullup  map[Pin]bool
	wires   map[Pin]Pin // driven pin -> jumpered input pin
	pulses  map[Pin]int // completed high-then-low pulses per pin
	failCfg map[Pin]error
}

type simIRQ struct {
	bus      *simBus
	enabled  bool
	attached map[Pin]func()
	attaches []Pin
}

func newSim() (*simGPIO, *simIRQ) {
	bus := &simBus{}
	irq := &simIRQ{bus: bus, enabled: true, attached: map[Pin]func(){}}
	gpio := &simGPIO{
		bus:     bus,
		irq:     irq,
		levels:  map[Pin]bool{},
		output:  map[Pin]bool{},
		pullup:  map[Pin]bool{},
		wires:   map[Pin]Pin{},
		pulses:  map[Pin]int{},
		failCfg: map[Pin]error{},
	}
	return gpio, irq
}

// useSim installs fresh simulated drivers and returns them.
func useSim() (*simGPIO, *simIRQ) {
	gpio, irq := newSim()
	SetGPIODriver(gpio)
	SetIRQDriver(irq)
	return gpio, irq
}

// connect models the external jumper joining a driven pin to an input.
func (g *simGPIO) connect(from, to Pin) {
	g.wires[from] = to
}

func (g *simGPIO) WritePin(pin Pin, high bool) error {
	prev := g.levels[pin]
	g.levels[pin] = high
	g.bus.record("write %d %v", pin, high)
	switch {
	case !prev && high:
		g.rising(pin)
		if sense, ok := g.wires[pin]; ok {
			g.levels[sense] = true
			g.rising(sense)
		}
	case prev && !high:
		g.pulses[pin]++
		if sense, ok := g.wires[pin]; ok {
			g.levels[sense] = false
		}
	}
	return nil
}

func (g *simGPIO) rising(pin Pin) {
	if !g.irq.enabled {
		return
	}
	if fn, ok := g.irq.attached[pin]; ok {
		fn()
	}
}

func (g *simGPIO) ConfigureOutput(pin Pin) error {
	if err := g.failCfg[pin]; err != nil {
		return err
	}
	g.output[pin] = true
	g.bus.record("output %d", pin)
	return nil
}

func (g *simGPIO) ConfigureInputPullup(pin Pin) error {
	if err := g.failCfg[pin]; err != nil {
		return err
	}
	g.pullup[pin] = true
	g.bus.record("input-pullup %d", pin)
	return nil
}

func (g *simGPIO) ReadPin(pin Pin) (bool, error) {
	for from, to := range g.wires {
		if to == pin {
			return g.levels[from], nil
		}
	}
	if level, ok := g.levels[pin]; ok {
		return level, nil
	}
	// An unwired, undriven input idles at the pull-up level.
	return g.pullup[pin], nil
}

func (g *simGPIO) Line(pin Pin) (Line, error) {
	return simLine{g: g, pin: pin}, nil
}

type simLine struct {
	g   *simGPIO
	pin Pin
}

func (l simLine) High() { _ = l.g.WritePin(l.pin, true) }
func (l simLine) Low()  { _ = l.g.WritePin(l.pin, false) }

func (i *simIRQ) AttachRising(pin Pin, fn func()) error {
	i.attached[pin] = fn
	i.attaches = append(i.attaches, pin)
	i.bus.record("attach %d", pin)
	return nil
}

func (i *simIRQ) Disable() IRQState {
	i.bus.record("irq-disable")
	prev := i.enabled
	i.enabled = false
	if prev {
		return 1
	}
	return 0
}

func (i *simIRQ) Restore(state IRQState) {
	i.bus.record("irq-restore")
	i.enabled = state != 0
}
