package sim

import "container/heap"

// entry pairs an event with its insertion sequence number.
// The sequence breaks exact timestamp ties: earlier-scheduled fires first,
// which keeps the processing order total and deterministic even when
// floating-point times collide.
type entry struct {
	ev  Event
	seq uint64
}

// EventHeap is a min-priority queue of pending events ordered by
// (timestamp, insertion sequence). The sequence counter is owned by the
// heap instance, so independent simulation runs never interfere.
//
// See canonical Golang example here: https://pkg.go.dev/container/heap#example-package-IntHeap
type EventHeap struct {
	entries []entry
	nextSeq uint64
}

// NewEventHeap creates an empty event heap.
func NewEventHeap() *EventHeap {
	h := &EventHeap{entries: make([]entry, 0)}
	heap.Init(h)
	return h
}

// Len implements heap.Interface.
func (h *EventHeap) Len() int { return len(h.entries) }

// Less implements heap.Interface: timestamp first, insertion sequence second.
func (h *EventHeap) Less(i, j int) bool {
	ei, ej := h.entries[i], h.entries[j]
	if ei.ev.Timestamp() != ej.ev.Timestamp() {
		return ei.ev.Timestamp() < ej.ev.Timestamp()
	}
	return ei.seq < ej.seq
}

// Swap implements heap.Interface.
func (h *EventHeap) Swap(i, j int) {
	h.entries[i], h.entries[j] = h.entries[j], h.entries[i]
}

// Push implements heap.Interface.
func (h *EventHeap) Push(x any) {
	h.entries = append(h.entries, x.(entry))
}

// Pop implements heap.Interface.
func (h *EventHeap) Pop() any {
	old := h.entries
	n := len(old)
	item := old[n-1]
	h.entries = old[0 : n-1]
	return item
}

// Schedule inserts an event, stamping it with the next insertion sequence.
func (h *EventHeap) Schedule(e Event) {
	heap.Push(h, entry{ev: e, seq: h.nextSeq})
	h.nextSeq++
}

// PopNext removes and returns the event with the smallest
// (timestamp, sequence), or nil if the heap is empty.
func (h *EventHeap) PopNext() Event {
	if h.Len() == 0 {
		return nil
	}
	return heap.Pop(h).(entry).ev
}

// Peek returns the next event without removing it, or nil if empty.
func (h *EventHeap) Peek() Event {
	if h.Len() == 0 {
		return nil
	}
	return h.entries[0].ev
}
