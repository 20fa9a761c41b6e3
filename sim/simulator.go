package sim

import (
	"time"

	"github.com/sirupsen/logrus"

	"github.com/fedegimenez/chargesim/sim/trace"
)

// Simulator is the core object that holds simulation time, system state,
// and the event loop for one run. A run exclusively owns its event heap,
// station pool, validation stand, metrics and trace; nothing is shared
// across runs, so concurrent runs just construct independent Simulators.
type Simulator struct {
	Config  Config
	Clock   float64
	Events  *EventHeap
	Pool    *StationPool
	Stand   *ValidationStand
	Metrics *Metrics
	Sampler *Sampler
	Trace   *trace.SimulationTrace

	processed    int // events processed so far, also the next row sequence
	prevOccupied int // occupancy after the previous event, weights the next interval
	row          *trace.Row
	started      bool
}

// NewSimulator validates cfg and constructs a run. A zero cfg.Seed reseeds
// from the wall clock; any other value makes the run reproducible.
func NewSimulator(cfg Config) (*Simulator, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &Simulator{
		Config:  cfg,
		Events:  NewEventHeap(),
		Pool:    NewStationPool(cfg.Stations),
		Stand:   NewValidationStand(),
		Metrics: NewMetrics(),
		Sampler: NewSampler(seed),
		Trace:   trace.NewSimulationTrace(),
	}, nil
}

// Schedule pushes a future event into the run's event heap.
func (sim *Simulator) Schedule(ev Event) {
	sim.Events.Schedule(ev)
}

// Run executes the event loop to completion and returns the run summary.
// The loop stops when the heap is exhausted, the processed-event cap is
// reached, or the next event lies past the horizon (that event is
// discarded, not processed).
func (sim *Simulator) Run() *trace.Summary {
	sim.start()
	for sim.Events.Len() > 0 && sim.processed < sim.Config.MaxEvents {
		ev := sim.Events.PopNext()
		if ev.Timestamp() > sim.Config.Horizon {
			break
		}
		sim.step(ev)
	}
	summary := trace.Summarize(sim.Trace)
	logrus.Infof("run %s finished: %d events, accepted=%d rejected=%d revenue=$%.2f occupancy=%.2f%%",
		sim.Trace.RunID, summary.Events, summary.Accepted, summary.Rejected,
		summary.TotalRevenue, summary.WeightedOccupancyPct)
	return summary
}

// start emits the sequence-0 seed row and schedules the first arrival.
// Idempotent so tests can drive step directly after calling it.
func (sim *Simulator) start() {
	if sim.started {
		return
	}
	sim.started = true

	iat, u := sim.Sampler.SampleInterArrival(sim.Config.MeanInterArrival)
	first := iat
	sim.Schedule(&ArrivalEvent{time: first})

	sim.row = &trace.Row{
		Sequence:    0,
		Clock:       0,
		Kind:        trace.KindSimulationStart,
		ArrivalRand: &u,
	}
	sim.row.InterArrival = &iat
	sim.row.NextArrival = &first
	sim.finishRow()
	logrus.Infof("run %s started: %d stations, first arrival at %.4f min",
		sim.Trace.RunID, sim.Config.Stations, first)
}

// step processes a single event: advance the clock, weight the interval
// that just elapsed with the occupancy that held during it, dispatch the
// event's transition, and record the snapshot row.
func (sim *Simulator) step(ev Event) {
	deltaT := ev.Timestamp() - sim.Clock
	sim.Clock = ev.Timestamp()
	sim.processed++

	// The weight reflects the state over [previous clock, clock), so the
	// pre-event occupancy is accumulated before any transition runs.
	sim.Metrics.AccumulateOccupancy(sim.occupancyPct(sim.prevOccupied), deltaT)

	sim.row = &trace.Row{
		Sequence: sim.processed,
		Clock:    sim.Clock,
	}
	ev.Execute(sim)
	sim.finishRow()
}

// scheduleValidation books the stand's completion event for the device now
// entering service and records it on the current row.
func (sim *Simulator) scheduleValidation(station int, dev DeviceType) {
	dur := sim.Config.ValidationDuration
	endsAt := sim.Clock + dur
	sim.Schedule(&ValidationCompleteEvent{time: endsAt, Station: station, Device: dev})
	sim.row.ValidationDuration = &dur
	sim.row.ValidationEndsAt = &endsAt
}

// finishRow fills the state columns shared by every row kind and appends
// the row to the trace. Each field is computed exactly once, here or at
// dispatch time; rows are never patched afterwards.
func (sim *Simulator) finishRow() {
	row := sim.row

	stations := sim.Pool.Stations()
	row.Stations = make([]trace.StationState, len(stations))
	for i := range stations {
		cell := trace.StationState{Occupied: stations[i].Occupied}
		if stations[i].Occupied {
			endsAt := stations[i].ChargeEndsAt
			minutes := stations[i].ChargeMinutes
			cell.Device = stations[i].Device.String()
			cell.ChargeEndsAt = &endsAt
			cell.ChargeMinutes = &minutes
		}
		row.Stations[i] = cell
	}

	row.StandBusy = sim.Stand.Busy()
	row.QueueLen = sim.Stand.QueueLen()

	occupied := sim.Pool.OccupiedCount()
	row.OccupiedCount = occupied
	row.OccupancyPct = sim.occupancyPct(occupied)
	row.WeightedOccupancySum = sim.Metrics.WeightedOccupancySum()
	row.WeightedOccupancyAvg = sim.Metrics.WeightedOccupancyPct()

	row.ChargeMinutesByType = sim.Metrics.ChargeMinutes
	row.RevenueByType = sim.Metrics.Revenue
	row.TotalRevenue = sim.Metrics.TotalRevenue
	row.Accepted = sim.Metrics.Accepted
	row.Rejected = sim.Metrics.Rejected

	sim.prevOccupied = occupied
	sim.Trace.Append(*row)
	sim.row = nil
}

// occupancyPct converts an occupied-station count into a percentage of the
// pool. Defined as 0 for an empty pool.
func (sim *Simulator) occupancyPct(occupied int) float64 {
	if sim.Config.Stations == 0 {
		return 0
	}
	return float64(occupied) / float64(sim.Config.Stations) * 100
}
