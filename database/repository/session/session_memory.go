package sessionRepo

import (
	"context"
	"sync"
	"time"

	"letsheal/models"
)

// MemoryStore is an in-process store for development and tests.
type MemoryStore struct {
	mu      sync.RWMutex
	records map[string]memoryRecord
	ttl     time.Duration
	now     func() time.Time
}

type memoryRecord struct {
	fields    map[string]string
	expiresAt time.Time
}

func NewMemoryStore(ttl time.Duration) *MemoryStore {
	return &MemoryStore{records: make(map[string]memoryRecord), ttl: ttl, now: time.Now}
}

func (s *MemoryStore) Load(_ context.Context, sessionID string) (*models.Session, error) {
	s.mu.RLock()
	rec, ok := s.records[sessionID]
	s.mu.RUnlock()
	if !ok {
		return nil, nil
	}
	if !rec.expiresAt.After(s.now()) {
		s.mu.Lock()
		if cur, still := s.records[sessionID]; still && !cur.expiresAt.After(s.now()) {
			delete(s.records, sessionID)
		}
		s.mu.Unlock()
		return nil, nil
	}
	return decodeRecord(rec.fields), nil
}

func (s *MemoryStore) Save(_ context.Context, sessionID string, session models.Session) error {
	fields, err := encodeRecord(session)
	if err != nil {
		return err
	}
	now := s.now()
	s.mu.Lock()
	s.sweep(now)
	s.records[sessionID] = memoryRecord{fields: fields, expiresAt: now.Add(s.ttl)}
	s.mu.Unlock()
	return nil
}

// sweep drops expired records. Callers hold mu.
func (s *MemoryStore) sweep(now time.Time) {
	for id, rec := range s.records {
		if !rec.expiresAt.After(now) {
			delete(s.records, id)
		}
	}
}
