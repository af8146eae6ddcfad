package idx

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestSequenceStartsAtSeed(t *testing.T) {
	t.Parallel()

	s := NewSequence(0)
	require.Equal(t, uint64(0), s.Next())
	require.Equal(t, uint64(1), s.Next())
	require.Equal(t, uint64(2), s.Next())

	seeded := NewSequence(42)
	require.Equal(t, uint64(42), seeded.Next())
}

func TestSequenceConcurrentUnique(t *testing.T) {
	t.Parallel()

	const workers, perWorker = 8, 500
	s := NewSequence(0)

	var (
		mu   sync.Mutex
		seen = make(map[uint64]struct{}, workers*perWorker)
		wg   sync.WaitGroup
	)
	for range workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			local := make([]uint64, 0, perWorker)
			for range perWorker {
				local = append(local, s.Next())
			}
			mu.Lock()
			for _, id := range local {
				seen[id] = struct{}{}
			}
			mu.Unlock()
		}()
	}
	wg.Wait()

	require.Len(t, seen, workers*perWorker)
}

func TestClockIncreasesWithinMillisecond(t *testing.T) {
	t.Parallel()

	c := &Clock{now: func() uint64 { return clockEpochMS + 1000 }, sleep: func(time.Duration) {}}

	a := c.Next()
	b := c.Next()
	require.Equal(t, uint64(1000)<<clockCounterBits, a)
	require.Equal(t, a+1, b)
}

func TestClockSurvivesBackwardsStep(t *testing.T) {
	t.Parallel()

	now := uint64(clockEpochMS + 2000)
	c := &Clock{now: func() uint64 { return now }, sleep: func(time.Duration) {}}

	first := c.Next()
	now = clockEpochMS + 1500
	second := c.Next()
	require.Greater(t, second, first)
}

func TestClockWaitsWhenCounterExhausted(t *testing.T) {
	t.Parallel()

	now := uint64(clockEpochMS + 3000)
	sleeps := 0
	c := &Clock{
		now: func() uint64 { return now },
		sleep: func(time.Duration) {
			sleeps++
			now++
		},
	}
	c.lastMS = 3000
	c.counter = clockCounterMax

	id := c.Next()
	require.Equal(t, 1, sleeps)
	require.Equal(t, uint64(3001)<<clockCounterBits, id)
}

func TestClockStaysJSONSafe(t *testing.T) {
	t.Parallel()

	id := NewClock().Next()
	require.LessOrEqual(t, id, uint64(MaxSafeID))
	require.Equal(t, id, uint64(float64(id)), "id must survive a float64 round trip")

	// The last millisecond the layout can hold, with a full counter.
	end := uint64(1<<41-1)<<clockCounterBits | clockCounterMax
	require.LessOrEqual(t, end, uint64(MaxSafeID))
}

func TestClockBeforeEpochStartsAtZero(t *testing.T) {
	t.Parallel()

	c := &Clock{now: func() uint64 { return 42 }, sleep: func(time.Duration) {}}
	a := c.Next()
	b := c.Next()
	require.Less(t, a, b)
	require.Less(t, b, uint64(1)<<clockCounterBits, "stays in the first millisecond")
}

func TestParseStrategy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    Strategy
		wantErr bool
	}{
		{"sequence", StrategySequence, false},
		{" Clock ", StrategyClock, false},
		{"uuid", "", true},
		{"", "", true},
	}

	for _, tt := range tests {
		got, err := ParseStrategy(tt.in)
		if tt.wantErr {
			require.Error(t, err, tt.in)
			continue
		}
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.want, got)
	}
}

func TestNewGenerator(t *testing.T) {
	t.Parallel()

	seq := NewGenerator(StrategySequence, 7)
	require.IsType(t, &Sequence{}, seq)
	require.Equal(t, uint64(7), seq.Next())

	require.IsType(t, &Clock{}, NewGenerator(StrategyClock, 7))
}
