package enrichment

import (
	"context"
	"sync"

	pkgerrors "bodygraph/pkg/errors"
)

type lineKey struct {
	gate, line int
}

// MemoryStore is an in-memory Store for tests and seed data.
type MemoryStore struct {
	mu    sync.RWMutex
	gates map[int]GateInfo
	lines map[lineKey]LineInfo
}

// NewMemoryStore builds an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		gates: make(map[int]GateInfo),
		lines: make(map[lineKey]LineInfo),
	}
}

// SeedGate registers a gate record.
func (s *MemoryStore) SeedGate(gate int, info GateInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.gates[gate] = info
}

// SeedLine registers a line record.
func (s *MemoryStore) SeedLine(gate, line int, info LineInfo) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.lines[lineKey{gate, line}] = info
}

func (s *MemoryStore) GateLabel(_ context.Context, gate int) (GateInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if info, ok := s.gates[gate]; ok {
		return info, nil
	}
	return GateInfo{}, pkgerrors.Newf(pkgerrors.CodeNotFound, "gate %d not found", gate)
}

func (s *MemoryStore) LineLabel(_ context.Context, gate, line int) (LineInfo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if info, ok := s.lines[lineKey{gate, line}]; ok {
		return info, nil
	}
	return LineInfo{}, pkgerrors.Newf(pkgerrors.CodeNotFound, "gate %d line %d not found", gate, line)
}

var _ Store = (*MemoryStore)(nil)
