package hook

import "sync/atomic"

// Event is a cache occurrence counted by the Stats hook.
type Event uint8

const (
	EventHit Event = iota
	EventMiss
	EventWrite
	EventEviction
	EventExpiration
)

// Stats is the built-in statistics hook. It is notified after every cache operation.
type Stats struct {
	operations  atomic.Int64
	hits        atomic.Int64
	misses      atomic.Int64
	writes      atomic.Int64
	evictions   atomic.Int64
	expirations atomic.Int64
}

func NewStats() *Stats {
	return &Stats{}
}

func (s *Stats) Phase() Phase { return Post }

// Record adds n occurrences of ev. Hits, misses and writes also count as operations.
func (s *Stats) Record(ev Event, n int64) {
	switch ev {
	case EventHit:
		s.hits.Add(n)
		s.operations.Add(n)
	case EventMiss:
		s.misses.Add(n)
		s.operations.Add(n)
	case EventWrite:
		s.writes.Add(n)
		s.operations.Add(n)
	case EventEviction:
		s.evictions.Add(n)
	case EventExpiration:
		s.expirations.Add(n)
	}
}

// StatsSnapshot holds cumulative counters (monotonic).
type StatsSnapshot struct {
	Operations  int64
	Hits        int64
	Misses      int64
	Writes      int64
	Evictions   int64
	Expirations int64
}

func (s *Stats) Snapshot() StatsSnapshot {
	return StatsSnapshot{
		Operations:  s.operations.Load(),
		Hits:        s.hits.Load(),
		Misses:      s.misses.Load(),
		Writes:      s.writes.Load(),
		Evictions:   s.evictions.Load(),
		Expirations: s.expirations.Load(),
	}
}

// HitRate is hits / (hits + misses), zero when nothing was read.
func (s StatsSnapshot) HitRate() float64 {
	reads := s.Hits + s.Misses
	if reads == 0 {
		return 0
	}
	return float64(s.Hits) / float64(reads)
}

// Since converts two cumulative snapshots into a per-interval delta.
// If counters reset (cur < prev), it treats cur as the delta.
func (s StatsSnapshot) Since(prev StatsSnapshot) StatsSnapshot {
	return StatsSnapshot{
		Operations:  delta(prev.Operations, s.Operations),
		Hits:        delta(prev.Hits, s.Hits),
		Misses:      delta(prev.Misses, s.Misses),
		Writes:      delta(prev.Writes, s.Writes),
		Evictions:   delta(prev.Evictions, s.Evictions),
		Expirations: delta(prev.Expirations, s.Expirations),
	}
}

func delta(prev, cur int64) int64 {
	if cur >= prev {
		return cur - prev
	}
	return cur
}
