//go:build nrf52840 && !interrupted

package main

import "irqmark/core"

// Baseline build: bare loop, interrupts masked.
// Build with -tags interrupted for the latency measurement.
const runMode = core.Uninterrupted
