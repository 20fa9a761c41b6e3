// Package sim provides the discrete-event simulation engine for the
// festival charging area.
//
// # Reading Guide
//
// Start with these three files to understand the simulation kernel:
//   - event.go: the three event types that drive the simulation
//     (arrival, charge completion, validation completion)
//   - event_heap.go: the (time, insertion sequence) priority queue that
//     makes event order total and deterministic
//   - simulator.go: the event loop, interval weighting, and snapshot
//     emission
//
// # Architecture
//
// One Simulator owns all state for one run: the event heap, the station
// pool, the validation stand, the metrics accumulators and the trace.
// Event Execute methods perform state transitions and schedule follow-up
// events; the loop in Run advances the clock and records one fixed-shape
// snapshot row per processed event (plus the time-0 seed row). Snapshot
// data types live in sim/trace and carry no dependency back on sim.
//
// Randomness is drawn from a per-run Sampler. A zero seed reseeds from the
// wall clock; a fixed seed reproduces a run bit-for-bit.
package sim
