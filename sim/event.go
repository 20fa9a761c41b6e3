package sim

import (
	"github.com/sirupsen/logrus"

	"github.com/fedegimenez/chargesim/sim/trace"
)

// Event defines the interface for all simulation events.
// Each event carries a Timestamp (in simulated minutes) and an Execute
// method that advances simulation state when invoked. Events are created
// once, consumed exactly once when popped, and never mutated.
type Event interface {
	Timestamp() float64
	Execute(*Simulator)
}

// ArrivalEvent represents a device entering the area to request a station.
type ArrivalEvent struct {
	time float64
}

// Timestamp returns the scheduled time of the ArrivalEvent.
func (e *ArrivalEvent) Timestamp() float64 {
	return e.time
}

// Execute handles a device arrival: draw the device type and the next
// inter-arrival gap, claim the lowest free station or reject, and always
// schedule the following arrival.
func (e *ArrivalEvent) Execute(sim *Simulator) {
	dev, uDev := sim.Sampler.SampleDeviceType(sim.Config.Probabilities)
	iat, uIAT := sim.Sampler.SampleInterArrival(sim.Config.MeanInterArrival)
	next := sim.Clock + iat

	row := sim.row
	row.Kind = trace.KindArrival
	row.Device = dev.String()
	row.DeviceRand = &uDev
	row.ArrivalRand = &uIAT
	row.InterArrival = &iat
	row.NextArrival = &next

	if idx, ok := sim.Pool.FindFree(); ok {
		minutes, uCharge := sim.Sampler.SampleChargeDuration()
		endsAt := sim.Clock + float64(minutes)
		sim.Pool.Assign(idx, dev, minutes, endsAt)
		sim.Schedule(&ChargeCompleteEvent{time: endsAt, Station: idx, Device: dev})
		sim.Metrics.RecordAccepted()

		row.ChargeRand = &uCharge
		row.ChargeMinutes = &minutes
		row.Station = &idx
		logrus.Debugf("<< Arrival: %s at %.4f min, station %d for %d min", dev, e.time, idx, minutes)
	} else {
		sim.Metrics.RecordRejected()
		logrus.Debugf("<< Arrival: %s at %.4f min, rejected (no free station)", dev, e.time)
	}

	// The arrival process never stops: the next arrival is scheduled
	// whether or not this device was admitted. Scheduled after the
	// charge-completion event so equal-time ties resolve in creation
	// order.
	sim.Schedule(&ArrivalEvent{time: next})
}

// ChargeCompleteEvent represents a device finishing its charge at a
// station. The station frees up for new arrivals immediately; the device
// itself moves on to the validation stand.
type ChargeCompleteEvent struct {
	time    float64
	Station int
	Device  DeviceType
}

// Timestamp returns the scheduled time of the ChargeCompleteEvent.
func (e *ChargeCompleteEvent) Timestamp() float64 {
	return e.time
}

// Execute attributes charge minutes and revenue to the device's type,
// releases the station, and feeds the device into the validation stand.
func (e *ChargeCompleteEvent) Execute(sim *Simulator) {
	minutes := sim.Pool.Stations()[e.Station].ChargeMinutes
	sim.Metrics.RecordCharge(e.Device, minutes)
	sim.Pool.Release(e.Station)

	row := sim.row
	row.Kind = trace.KindChargeComplete
	row.Device = e.Device.String()
	station := e.Station
	row.Station = &station

	if sim.Stand.Admit(ValidationItem{Station: e.Station, Device: e.Device}) {
		sim.scheduleValidation(e.Station, e.Device)
	}
	logrus.Debugf("<< ChargeComplete: %s at %.4f min, station %d freed, queue %d",
		e.Device, e.time, e.Station, sim.Stand.QueueLen())
}

// ValidationCompleteEvent represents the validation stand finishing a
// device's post-charge check; the device departs.
type ValidationCompleteEvent struct {
	time    float64
	Station int
	Device  DeviceType
}

// Timestamp returns the scheduled time of the ValidationCompleteEvent.
func (e *ValidationCompleteEvent) Timestamp() float64 {
	return e.time
}

// Execute releases the stand and starts service on the next queued device,
// if any. The originating station was already freed at charge completion.
func (e *ValidationCompleteEvent) Execute(sim *Simulator) {
	row := sim.row
	row.Kind = trace.KindValidationComplete
	row.Device = e.Device.String()
	station := e.Station
	row.Station = &station

	if next, ok := sim.Stand.Complete(); ok {
		sim.scheduleValidation(next.Station, next.Device)
	}
	logrus.Debugf("<< ValidationComplete: %s at %.4f min, station %d, queue %d",
		e.Device, e.time, e.Station, sim.Stand.QueueLen())
}
