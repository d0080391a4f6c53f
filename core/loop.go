// The two hot paths. Every statement here lands on the captured
// waveform: the loop body and the service routine must stay at exactly
// two line writes each.
package core

// Run drives the trigger line forever: assert, deassert, repeat. It
// never returns, never blocks and never yields; in Interrupted mode the
// platform suspends it for the duration of the service routine and
// resumes it at the suspension point.
func (h *Harness) Run() {
	trigger := h.trigger
	for {
		trigger.High()
		trigger.Low()
	}
}

// PulseTrigger performs exactly one loop iteration. The trigger line
// ends deasserted, same as it started.
func (h *Harness) PulseTrigger() {
	h.trigger.High()
	h.trigger.Low()
}

// serviceRoutine is the bound interrupt handler: one narrow pulse on
// the response line, nothing else. It runs in the platform's interrupt
// context, so it must not allocate, block or touch loop state.
func (h *Harness) serviceRoutine() {
	h.response.High()
	h.response.Low()
}
