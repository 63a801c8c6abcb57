package domain

import "sync"

// ChangeLog is the ordered list of records captured against one reference
// document. It is safe for concurrent use.
type ChangeLog struct {
	mu      sync.RWMutex
	records []ChangeRecord
}

func NewChangeLog(records ...ChangeRecord) *ChangeLog {
	log := &ChangeLog{}
	log.records = append(log.records, records...)
	return log
}

func (l *ChangeLog) Append(record ChangeRecord) {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = append(l.records, record)
}

// Clear drops every record. Called whenever a new reference is loaded.
func (l *ChangeLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.records = nil
}

// Records returns a copy of the records in capture order.
func (l *ChangeLog) Records() []ChangeRecord {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]ChangeRecord, len(l.records))
	copy(out, l.records)
	return out
}

func (l *ChangeLog) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()

	return len(l.records)
}
