package models

import "sync"

// OccupancyRecord maps zone ID to the vessel count observed by the most
// recent completed tracker cycle. The tracker owns it exclusively: reads
// return copies, writes replace the whole map.
type OccupancyRecord struct {
	Mutex sync.RWMutex
	Data  map[int64]int
}

func NewOccupancyRecord() *OccupancyRecord {
	return &OccupancyRecord{Data: make(map[int64]int)}
}

func (o *OccupancyRecord) Get(zoneID int64) (int, bool) {
	o.Mutex.RLock()
	defer o.Mutex.RUnlock()
	val, ok := o.Data[zoneID]
	return val, ok
}

func (o *OccupancyRecord) Len() int {
	o.Mutex.RLock()
	defer o.Mutex.RUnlock()
	return len(o.Data)
}

func (o *OccupancyRecord) GetData() map[int64]int {
	o.Mutex.RLock()
	defer o.Mutex.RUnlock()

	copyMap := make(map[int64]int, len(o.Data))
	for k, v := range o.Data {
		copyMap[k] = v
	}
	return copyMap
}

func (o *OccupancyRecord) PutData(data map[int64]int) {
	o.Mutex.Lock()
	defer o.Mutex.Unlock()
	o.Data = data
}
