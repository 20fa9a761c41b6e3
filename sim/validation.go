package sim

// ValidationItem is a device waiting for, or undergoing, the post-charge
// check. It remembers the station it charged at for log traceability.
type ValidationItem struct {
	Station int
	Device  DeviceType
}

// ValidationStand is the single shared resource that gates departure after
// charging. It is a two-state machine (idle, busy) with a FIFO wait queue.
//
// Invariant: an idle stand has an empty queue; the stand serves the next
// queued item the instant it frees up.
type ValidationStand struct {
	busy    bool
	current ValidationItem
	queue   []ValidationItem
}

// NewValidationStand creates an idle stand.
func NewValidationStand() *ValidationStand {
	return &ValidationStand{queue: make([]ValidationItem, 0)}
}

// Busy reports whether a device is currently in validation.
func (v *ValidationStand) Busy() bool { return v.busy }

// Current returns the item in validation. Meaningful only while Busy.
func (v *ValidationStand) Current() ValidationItem { return v.current }

// QueueLen returns the number of devices waiting behind the stand.
func (v *ValidationStand) QueueLen() int { return len(v.queue) }

// Admit presents a device that just finished charging. If the stand is
// idle it starts serving the item immediately and returns true; the caller
// must then schedule the matching validation-completion event. If the
// stand is busy the item joins the back of the queue and Admit returns
// false.
func (v *ValidationStand) Admit(it ValidationItem) bool {
	if !v.busy {
		v.busy = true
		v.current = it
		return true
	}
	v.queue = append(v.queue, it)
	return false
}

// Complete finishes the in-service validation. If the queue is non-empty
// the front item enters service and is returned with ok=true; the caller
// must schedule its completion event. Otherwise the stand goes idle and
// ok is false.
func (v *ValidationStand) Complete() (next ValidationItem, ok bool) {
	if len(v.queue) > 0 {
		next = v.queue[0]
		v.queue = v.queue[1:]
		v.current = next
		return next, true
	}
	v.busy = false
	v.current = ValidationItem{}
	return ValidationItem{}, false
}
