package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOccupancyRecord_GetAndLen(t *testing.T) {
	rec := NewOccupancyRecord()
	rec.PutData(map[int64]int{1: 2, 2: 0})

	n, ok := rec.Get(1)
	assert.True(t, ok)
	assert.Equal(t, 2, n)

	_, ok = rec.Get(7)
	assert.False(t, ok)
	assert.Equal(t, 2, rec.Len())
}

func TestOccupancyRecord_GetDataReturnsCopy(t *testing.T) {
	rec := NewOccupancyRecord()
	rec.PutData(map[int64]int{1: 2})

	snapshot := rec.GetData()
	snapshot[1] = 99
	snapshot[5] = 1

	n, _ := rec.Get(1)
	assert.Equal(t, 2, n)
	assert.Equal(t, 1, rec.Len())
}

func TestVesselSnapshot_HasFix(t *testing.T) {
	assert.False(t, (&VesselSnapshot{}).HasFix())
	assert.True(t, (&VesselSnapshot{Lat: 59.4}).HasFix())
	assert.True(t, (&VesselSnapshot{Lon: 24.7}).HasFix())
}
