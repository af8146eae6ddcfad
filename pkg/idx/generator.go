package idx

import (
	"fmt"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/oklog/ulid/v2"
)

// Generator produces identifiers that are unique for the lifetime of the
// instance. Each entity kind owns its own Generator; they never share
// counters.
type Generator interface {
	Next() uint64
}

// Strategy names a Generator implementation selectable from configuration.
type Strategy string

const (
	// StrategySequence is an in-process counter. Deterministic, suitable for
	// tests and single-instance deployments seeded from the store.
	StrategySequence Strategy = "sequence"

	// StrategyClock combines wall-clock milliseconds with a per-millisecond
	// counter, so ids keep growing across restarts.
	StrategyClock Strategy = "clock"
)

// ParseStrategy validates a configured strategy name.
func ParseStrategy(s string) (Strategy, error) {
	switch Strategy(strings.ToLower(strings.TrimSpace(s))) {
	case StrategySequence:
		return StrategySequence, nil
	case StrategyClock:
		return StrategyClock, nil
	default:
		return "", fmt.Errorf("idx: unknown id strategy %q", s)
	}
}

// Sequence is a lock-free counter. The first call to Next returns the start
// value.
type Sequence struct {
	next atomic.Uint64
}

// NewSequence returns a Sequence whose first id is start.
func NewSequence(start uint64) *Sequence {
	s := &Sequence{}
	s.next.Store(start)
	return s
}

// Next returns the current value and advances the counter.
func (s *Sequence) Next() uint64 {
	return s.next.Add(1) - 1
}

const (
	// clockEpochMS is 2025-01-01T00:00:00Z. Timestamps count from it so that
	// 41 bits of milliseconds plus the counter stay below 2^53 until 2094,
	// which keeps ids exact as JSON numbers in JavaScript clients.
	clockEpochMS = 1735689600000

	clockCounterBits = 12
	clockCounterMax  = 1<<clockCounterBits - 1

	// MaxSafeID is the largest id a float64 represents exactly.
	MaxSafeID = 1<<53 - 1
)

// Clock generates ids of the form (ms-epoch)<<12 | counter where ms is the
// ULID millisecond timestamp, allowing 4096 ids per millisecond. Ids from
// one instance are strictly increasing even if the wall clock steps
// backwards.
type Clock struct {
	mu      sync.Mutex
	lastMS  uint64
	counter uint64

	now   func() uint64
	sleep func(time.Duration)
}

// NewClock returns a Clock reading the system time.
func NewClock() *Clock {
	return &Clock{now: ulid.Now, sleep: time.Sleep}
}

// Next returns the next id.
func (c *Clock) Next() uint64 {
	c.mu.Lock()
	defer c.mu.Unlock()

	ms := c.elapsed()
	switch {
	case ms > c.lastMS:
		c.lastMS = ms
		c.counter = 0
	case c.counter < clockCounterMax:
		// Same millisecond, or the clock went backwards: stay on lastMS.
		c.counter++
	default:
		// Counter exhausted for lastMS; wait for the clock to catch up.
		for ms <= c.lastMS {
			c.sleep(time.Millisecond)
			ms = c.elapsed()
		}
		c.lastMS = ms
		c.counter = 0
	}

	return c.lastMS<<clockCounterBits | c.counter
}

// elapsed is milliseconds since clockEpochMS; a clock set before the epoch
// reads as 0.
func (c *Clock) elapsed() uint64 {
	ms := c.now()
	if ms < clockEpochMS {
		return 0
	}
	return ms - clockEpochMS
}

// NewGenerator returns a Generator for the strategy. start seeds StrategySequence and
// is ignored by StrategyClock.
func NewGenerator(strategy Strategy, start uint64) Generator {
	if strategy == StrategySequence {
		return NewSequence(start)
	}
	return NewClock()
}
