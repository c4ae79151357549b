package http

import (
	"sync"
	"time"
)

// Quota tracks per-client scan counts over a fixed window (daily by
// default). The window starts at a client's first scan and resets when
// it elapses, mirroring a counter-with-expiry.
type Quota struct {
	limit  int
	window time.Duration

	mutex   sync.Mutex
	entries map[string]*quotaEntry
}

type quotaEntry struct {
	used        int
	windowStart time.Time
}

// QuotaStatus is one client's standing against the quota.
type QuotaStatus struct {
	Allowed   bool
	Limit     int
	Used      int
	Remaining int
	Reset     int64 // unix seconds when the window rolls over
}

// NewQuota creates a quota of limit scans per window.
func NewQuota(limit int, window time.Duration) *Quota {
	if limit <= 0 {
		limit = 30
	}
	if window <= 0 {
		window = 24 * time.Hour
	}
	return &Quota{
		limit:   limit,
		window:  window,
		entries: make(map[string]*quotaEntry),
	}
}

// Allow consumes one scan if the client has allowance left.
func (q *Quota) Allow(clientID string, now time.Time) QuotaStatus {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	entry := q.entry(clientID, now)
	if entry.used >= q.limit {
		return q.status(entry, false)
	}
	entry.used++
	return q.status(entry, true)
}

// Status reports without consuming.
func (q *Quota) Status(clientID string, now time.Time) QuotaStatus {
	q.mutex.Lock()
	defer q.mutex.Unlock()

	entry := q.entry(clientID, now)
	return q.status(entry, entry.used < q.limit)
}

func (q *Quota) entry(clientID string, now time.Time) *quotaEntry {
	entry, ok := q.entries[clientID]
	if !ok || now.Sub(entry.windowStart) >= q.window {
		entry = &quotaEntry{windowStart: now}
		q.entries[clientID] = entry
	}
	return entry
}

func (q *Quota) status(entry *quotaEntry, allowed bool) QuotaStatus {
	remaining := q.limit - entry.used
	if remaining < 0 {
		remaining = 0
	}
	return QuotaStatus{
		Allowed:   allowed,
		Limit:     q.limit,
		Used:      entry.used,
		Remaining: remaining,
		Reset:     entry.windowStart.Add(q.window).Unix(),
	}
}
