package sim

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStationPool_FindFree_LowestIndexWins(t *testing.T) {
	// GIVEN a pool with stations 0 and 2 occupied
	p := NewStationPool(4)
	p.Assign(0, DeviceUSBC, 60, 100)
	p.Assign(2, DeviceMicroUSB, 120, 160)

	// WHEN a free station is requested
	idx, ok := p.FindFree()

	// THEN the lowest free index is chosen
	assert.True(t, ok)
	assert.Equal(t, 1, idx)
}

func TestStationPool_FindFree_FullPool(t *testing.T) {
	p := NewStationPool(2)
	p.Assign(0, DeviceUSBC, 60, 100)
	p.Assign(1, DeviceLightning, 60, 100)

	_, ok := p.FindFree()

	assert.False(t, ok)
}

func TestStationPool_ZeroStations_NeverFindsFree(t *testing.T) {
	p := NewStationPool(0)

	_, ok := p.FindFree()

	assert.False(t, ok)
	assert.Equal(t, 0, p.Len())
	assert.Equal(t, 0, p.OccupiedCount())
}

func TestStationPool_AssignThenRelease_ClearsEveryField(t *testing.T) {
	p := NewStationPool(1)

	p.Assign(0, DeviceLightning, 180, 240.5)
	st := p.Stations()[0]
	assert.True(t, st.Occupied)
	assert.Equal(t, DeviceLightning, st.Device)
	assert.Equal(t, 180, st.ChargeMinutes)
	assert.Equal(t, 240.5, st.ChargeEndsAt)
	assert.Equal(t, 1, p.OccupiedCount())

	p.Release(0)
	// a free station holds only zero values
	assert.Equal(t, Station{}, p.Stations()[0])
	assert.Equal(t, 0, p.OccupiedCount())

	// the slot is immediately reusable
	idx, ok := p.FindFree()
	assert.True(t, ok)
	assert.Equal(t, 0, idx)
}
