package models

import (
	"sync"
	"time"
)

type Severity string

const (
	SeverityInfo  Severity = "info"
	SeverityWarn  Severity = "warn"
	SeverityError Severity = "error"
)

// ZoneAlert is one entered/exited report for a zone, or a plain notice
// (zero ZoneID) such as "no zones configured".
type ZoneAlert struct {
	ZoneID   int64     `json:"zone_id,omitempty"`
	ZoneName string    `json:"zone_name,omitempty"`
	Entered  int       `json:"entered"`
	Exited   int       `json:"exited"`
	Current  int       `json:"current"`
	Message  string    `json:"message"`
	Severity Severity  `json:"severity"`
	At       time.Time `json:"at"`
}

// AlertLog keeps the most recent alerts in a fixed-size ring so late
// subscribers can catch up.
type AlertLog struct {
	mutex sync.RWMutex
	buf   []ZoneAlert
	size  int
}

func NewAlertLog(size int) *AlertLog {
	if size <= 0 {
		size = 100
	}
	return &AlertLog{size: size}
}

func (l *AlertLog) Append(a ZoneAlert) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	l.buf = append(l.buf, a)
	if len(l.buf) > l.size {
		l.buf = l.buf[len(l.buf)-l.size:]
	}
}

// Recent returns newest-first copies.
func (l *AlertLog) Recent(limit int) []ZoneAlert {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	if limit <= 0 || limit > len(l.buf) {
		limit = len(l.buf)
	}
	out := make([]ZoneAlert, 0, limit)
	for i := len(l.buf) - 1; i >= len(l.buf)-limit; i-- {
		out = append(out, l.buf[i])
	}
	return out
}

func (l *AlertLog) Len() int {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	return len(l.buf)
}

func (l *AlertLog) GetData() []ZoneAlert {
	l.mutex.RLock()
	defer l.mutex.RUnlock()
	out := make([]ZoneAlert, len(l.buf))
	copy(out, l.buf)
	return out
}

func (l *AlertLog) PutData(alerts []ZoneAlert) {
	l.mutex.Lock()
	defer l.mutex.Unlock()
	if len(alerts) > l.size {
		alerts = alerts[len(alerts)-l.size:]
	}
	l.buf = make([]ZoneAlert, len(alerts))
	copy(l.buf, alerts)
}

// TrackerState is the on-disk snapshot of the tracker between restarts:
// last completed per-zone counts plus the recent alert history.
type TrackerState struct {
	Counts  map[int64]int `json:"counts"`
	Alerts  []ZoneAlert   `json:"alerts"`
	SavedAt time.Time     `json:"saved_at"`
}
