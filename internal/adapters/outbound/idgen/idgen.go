// Package idgen provides domain.IDSource implementations backed by ULIDs.
package idgen

import (
	"bytes"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"

	"github.com/abdidvp/orderlens/internal/domain"
)

// Monotonic produces strictly increasing ULIDs. Within one millisecond the
// random part is incremented; a clock that steps backwards is clamped to the
// last timestamp handed out.
type Monotonic struct {
	mu      sync.Mutex
	now     func() time.Time
	entropy *ulid.MonotonicEntropy
	lastMS  uint64
}

// NewMonotonic creates a Monotonic source reading the wall clock.
func NewMonotonic() *Monotonic {
	return NewMonotonicWithClock(time.Now)
}

// NewMonotonicWithClock lets tests pin the clock.
func NewMonotonicWithClock(now func() time.Time) *Monotonic {
	return &Monotonic{
		now:     now,
		entropy: ulid.Monotonic(rand.Reader, 0),
	}
}

func (m *Monotonic) Next() (ulid.ULID, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	ms := ulid.Timestamp(m.now())
	if ms < m.lastMS {
		ms = m.lastMS
	}
	id, err := ulid.New(ms, m.entropy)
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("generating ulid: %w", err)
	}
	m.lastMS = ms
	return id, nil
}

// Derive returns the identifier for name at instant at. The same pair always
// yields the same ULID, which keeps fixtures and replayed batches stable.
func Derive(name string, at time.Time) (ulid.ULID, error) {
	sum := sha256.Sum256([]byte(name + "|" + at.UTC().Format(time.RFC3339Nano)))
	id, err := ulid.New(ulid.Timestamp(at), bytes.NewReader(sum[:]))
	if err != nil {
		return ulid.ULID{}, fmt.Errorf("deriving ulid for %q: %w", name, err)
	}
	return id, nil
}

// OrderID derives a deterministic order identifier.
func OrderID(name string, at time.Time) (domain.OrderID, error) {
	id, err := Derive(name, at)
	if err != nil {
		return domain.OrderID{}, err
	}
	return domain.OrderIDFrom(id)
}

// Sequence is a deterministic IDSource: the n-th call returns
// Derive(seed#n, start+n ms), so identifiers are reproducible and ordered.
type Sequence struct {
	mu    sync.Mutex
	seed  string
	start time.Time
	n     int
}

func NewSequence(seed string, start time.Time) *Sequence {
	return &Sequence{seed: seed, start: start}
}

func (s *Sequence) Next() (ulid.ULID, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.n++
	at := s.start.Add(time.Duration(s.n) * time.Millisecond)
	return Derive(fmt.Sprintf("%s#%d", s.seed, s.n), at)
}
