//go:build rp2040

package main

import "irqmark/core"

const device = core.PicoRP2040
