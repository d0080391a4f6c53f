//go:build interrupted

package main

import "irqmark/core"

const runMode = core.Interrupted
