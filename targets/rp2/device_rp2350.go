//go:build rp2350

package main

import "irqmark/core"

const device = core.PicoRP2350
