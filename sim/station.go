package sim

// Station is one charging slot. When Occupied is false every other field
// holds its zero value.
type Station struct {
	Occupied      bool
	Device        DeviceType
	ChargeEndsAt  float64 // absolute completion time in minutes
	ChargeMinutes int     // assigned charging duration
}

// StationPool is the fixed-size array of charging slots for one run.
// Station count never changes after construction.
type StationPool struct {
	stations []Station
}

// NewStationPool creates a pool with n free stations. n may be zero, in
// which case FindFree never succeeds and every arrival is rejected.
func NewStationPool(n int) *StationPool {
	return &StationPool{stations: make([]Station, n)}
}

// Len returns the station count.
func (p *StationPool) Len() int { return len(p.stations) }

// FindFree returns the lowest-index free station. The ordering models a
// fixed physical layout and is never randomized.
func (p *StationPool) FindFree() (int, bool) {
	for i := range p.stations {
		if !p.stations[i].Occupied {
			return i, true
		}
	}
	return 0, false
}

// Assign claims a free station for a device. The caller must have obtained
// idx from FindFree on the same pool state.
func (p *StationPool) Assign(idx int, d DeviceType, minutes int, endsAt float64) {
	p.stations[idx] = Station{
		Occupied:      true,
		Device:        d,
		ChargeEndsAt:  endsAt,
		ChargeMinutes: minutes,
	}
}

// Release clears every field of the station at charge completion. The slot
// is immediately eligible for a new arrival; the departed device's onward
// validation is tracked by the ValidationStand, not by the station record.
func (p *StationPool) Release(idx int) {
	p.stations[idx] = Station{}
}

// OccupiedCount returns the number of stations currently charging a device.
func (p *StationPool) OccupiedCount() int {
	n := 0
	for i := range p.stations {
		if p.stations[i].Occupied {
			n++
		}
	}
	return n
}

// Stations returns the pool contents for snapshotting. Callers must treat
// the returned slice as read-only.
func (p *StationPool) Stations() []Station {
	return p.stations
}
