// Package history provides the in-memory scan history store.
package history

import (
	"context"
	"sync"

	"github.com/futureissustainable/healthscore-2.0/internal/domain"
)

// maxRecordsPerClient bounds each client's history; the oldest records
// fall off once the limit is reached.
const maxRecordsPerClient = 500

// MemoryStore is a thread-safe in-memory implementation of
// domain.HistoryRepository, keyed by client identifier with records
// held newest first.
type MemoryStore struct {
	records map[string][]*domain.ScanRecord
	mutex   sync.RWMutex
}

// NewMemoryStore creates an empty history store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		records: make(map[string][]*domain.ScanRecord),
	}
}

// Add prepends a record to the client's history and trims it to the
// retention bound.
func (s *MemoryStore) Add(ctx context.Context, clientID string, record *domain.ScanRecord) error {
	if clientID == "" || record == nil {
		return domain.ErrInvalidRequest
	}

	s.mutex.Lock()
	defer s.mutex.Unlock()

	records := append([]*domain.ScanRecord{record}, s.records[clientID]...)
	if len(records) > maxRecordsPerClient {
		records = records[:maxRecordsPerClient]
	}
	s.records[clientID] = records
	return nil
}

// List returns up to limit records, newest first. A non-positive limit
// returns the full retained history.
func (s *MemoryStore) List(ctx context.Context, clientID string, limit int) ([]*domain.ScanRecord, error) {
	s.mutex.RLock()
	defer s.mutex.RUnlock()

	records := s.records[clientID]
	if limit <= 0 || limit > len(records) {
		limit = len(records)
	}

	out := make([]*domain.ScanRecord, limit)
	copy(out, records[:limit])
	return out, nil
}

// Clear drops a client's history entirely.
func (s *MemoryStore) Clear(ctx context.Context, clientID string) error {
	s.mutex.Lock()
	defer s.mutex.Unlock()

	delete(s.records, clientID)
	return nil
}

// Size reports the number of retained records for a client.
func (s *MemoryStore) Size(clientID string) int {
	s.mutex.RLock()
	defer s.mutex.RUnlock()
	return len(s.records[clientID])
}
