package hlc

import (
	"math/rand"
	"sort"
	"testing"
)

// TestClock_Property_NowIsStrictlyMonotonic tests that results from one
// instance are strictly increasing regardless of what the source returns.
func TestClock_Property_NowIsStrictlyMonotonic(t *testing.T) {
	src := NewManualSource(0)
	c := New(1, src)
	rng := rand.New(rand.NewSource(42))

	prev := c.Now()
	for i := 0; i < 5000; i++ {
		// Walk the source forward, backward, or leave it stalled.
		switch rng.Intn(3) {
		case 0:
			src.Advance(int64(rng.Intn(10)))
		case 1:
			src.Advance(-int64(rng.Intn(10)))
		}

		got := c.Now()
		if !prev.Before(got) {
			t.Fatalf("Iteration %d: %v is not before %v", i, prev, got)
		}
		prev = got
	}
}

// TestClock_Property_CausalityPreserved tests that after B observes a
// timestamp from A, everything B produces is strictly after it.
func TestClock_Property_CausalityPreserved(t *testing.T) {
	srcA := NewManualSource(1000)
	srcB := NewManualSource(0) // B's physical clock lags far behind A's
	a := New(1, srcA)
	b := New(2, srcB)

	for i := 0; i < 100; i++ {
		srcA.Advance(int64(i % 3))
		tsA := a.Now()

		b.Observe(tsA)
		tsB := b.Now()
		if !tsA.Before(tsB) {
			t.Fatalf("Iteration %d: remote %v not before local %v", i, tsA, tsB)
		}
	}
}

// TestClock_Property_CounterResetsOnProgress tests that the counter drops to
// zero as soon as physical time passes the stored wall value.
func TestClock_Property_CounterResetsOnProgress(t *testing.T) {
	src := NewManualSource(100)
	c := New(1, src)

	// Stall the source to build up logical drift.
	for i := 0; i < 10; i++ {
		c.Now()
	}
	if got := c.Last(); got.Counter == 0 {
		t.Fatal("Expected a non-zero counter after a stalled source")
	}

	src.Set(101)
	got := c.Now()
	if got.Wall != 101 || got.Counter != 0 {
		t.Errorf("Expected (101, 0) after progress, got (%d, %d)", got.Wall, got.Counter)
	}
}

// TestClock_Property_EncodingOrderEquivalence tests that a < b by the
// numeric comparator exactly when encode(a) < encode(b) byte-wise.
func TestClock_Property_EncodingOrderEquivalence(t *testing.T) {
	rng := rand.New(rand.NewSource(7))
	stamps := randomTimestamps(rng, 500)

	for i := 0; i < len(stamps); i++ {
		for j := i + 1; j < len(stamps); j++ {
			a, b := stamps[i], stamps[j]
			numeric := a.Compare(b)
			var lexical int
			switch sa, sb := a.String(), b.String(); {
			case sa < sb:
				lexical = -1
			case sa > sb:
				lexical = 1
			}
			if numeric != lexical {
				t.Fatalf("Order mismatch for %v vs %v: numeric %d, lexical %d", a, b, numeric, lexical)
			}
		}
	}
}

// TestClock_Property_SortStability tests that sorting by the comparator
// matches sorting encoded strings.
func TestClock_Property_SortStability(t *testing.T) {
	rng := rand.New(rand.NewSource(99))
	stamps := randomTimestamps(rng, 1000)

	byComparator := append([]Timestamp(nil), stamps...)
	sort.Slice(byComparator, func(i, j int) bool {
		return byComparator[i].Before(byComparator[j])
	})

	encoded := make([]string, len(stamps))
	for i, ts := range stamps {
		encoded[i] = ts.String()
	}
	sort.Strings(encoded)

	for i := range byComparator {
		if byComparator[i].String() != encoded[i] {
			t.Fatalf("Position %d: comparator order %q, encoded order %q",
				i, byComparator[i].String(), encoded[i])
		}
	}
}

// TestClock_Property_ObserveNeverDecreasesCounterOrder tests that folding in
// older remote timestamps cannot move the clock backward.
func TestClock_Property_ObserveNeverDecreasesCounterOrder(t *testing.T) {
	src := NewManualSource(0)
	c := New(1, src)
	rng := rand.New(rand.NewSource(13))

	prev := c.Now()
	for i := 0; i < 2000; i++ {
		switch rng.Intn(3) {
		case 0:
			src.Advance(int64(rng.Intn(5)) - 2)
		case 1:
			c.Observe(Timestamp{
				Wall:    int64(rng.Intn(200)),
				Counter: uint16(rng.Intn(50)),
				Node:    uint16(rng.Intn(8)) + 2,
			})
		}

		got := c.Now()
		if !prev.Before(got) {
			t.Fatalf("Iteration %d: %v is not before %v", i, prev, got)
		}
		prev = got
	}
}

func randomTimestamps(rng *rand.Rand, n int) []Timestamp {
	stamps := make([]Timestamp, n)
	for i := range stamps {
		stamps[i] = Timestamp{
			// Small ranges on purpose, to force field-level ties.
			Wall:    int64(rng.Intn(5)),
			Counter: uint16(rng.Intn(5)),
			Node:    uint16(rng.Intn(5)),
		}
	}
	return stamps
}
