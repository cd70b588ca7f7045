package hlc

import (
	"math"
	"testing"
)

func TestClock_CounterExhaustion_AdvancesWall(t *testing.T) {
	src := NewManualSource(100)
	c := New(1, src)

	c.wall, c.counter = 100, math.MaxUint16-1

	got := c.Now()
	if got.Wall != 100 || got.Counter != math.MaxUint16 {
		t.Fatalf("Expected (100, %d), got (%d, %d)", math.MaxUint16, got.Wall, got.Counter)
	}

	// The next increment would wrap: the wall advances instead.
	prev := got
	got = c.Now()
	if got.Wall != 101 || got.Counter != 0 {
		t.Errorf("Expected (101, 0) after counter exhaustion, got (%d, %d)", got.Wall, got.Counter)
	}
	if !prev.Before(got) {
		t.Errorf("Ordering lost across counter exhaustion: %v then %v", prev, got)
	}
}

func TestClock_Observe_RemoteCounterExhaustion(t *testing.T) {
	src := NewManualSource(10)
	c := New(1, src)

	c.Observe(Timestamp{Wall: 50, Counter: math.MaxUint16, Node: 2})
	if got := c.Last(); got.Wall != 51 || got.Counter != 0 {
		t.Errorf("Expected (51, 0), got (%d, %d)", got.Wall, got.Counter)
	}
}

func TestClock_Observe_TieCounterExhaustion(t *testing.T) {
	src := NewManualSource(10)
	c := New(1, src)
	c.wall, c.counter = 50, 3

	c.Observe(Timestamp{Wall: 50, Counter: math.MaxUint16, Node: 2})
	if got := c.Last(); got.Wall != 51 || got.Counter != 0 {
		t.Errorf("Expected (51, 0), got (%d, %d)", got.Wall, got.Counter)
	}
}

func TestClock_Observe_StaleRemoteStillAdvances(t *testing.T) {
	src := NewManualSource(0)
	c := New(1, src)
	c.wall, c.counter = 100, 5

	// Remote far in the past: local state dominates but must still move,
	// the next local event has to exceed everything already issued.
	c.Observe(Timestamp{Wall: 1, Counter: 60000, Node: 2})
	if got := c.Last(); got.Wall != 100 || got.Counter != 6 {
		t.Errorf("Expected (100, 6), got (%d, %d)", got.Wall, got.Counter)
	}
}

func TestClock_Observe_SelfEcho(t *testing.T) {
	src := NewManualSource(40)
	c := New(1, src)

	ts := c.Now()
	c.Observe(ts)
	next := c.Now()
	if !ts.Before(next) {
		t.Errorf("Echoed timestamp %v not before subsequent %v", ts, next)
	}
}

func TestClock_Observe_RemoteTieWithPhysicalBelowLocal(t *testing.T) {
	src := NewManualSource(30)
	c := New(1, src)
	c.wall, c.counter = 60, 2

	// Remote ties the local wall while physical lags: max(counter) + 1.
	c.Observe(Timestamp{Wall: 60, Counter: 1, Node: 2})
	if got := c.Last(); got.Wall != 60 || got.Counter != 3 {
		t.Errorf("Expected (60, 3), got (%d, %d)", got.Wall, got.Counter)
	}
}

func TestClock_TwoNodes_ConcurrentStampsDifferByNode(t *testing.T) {
	src := NewManualSource(500)
	a := New(1, src)
	b := New(2, src)

	tsA := a.Now()
	tsB := b.Now()

	if tsA.Compare(tsB) == 0 {
		t.Fatal("Stamps from distinct nodes must never compare equal")
	}
	if tsA.Wall == tsB.Wall && tsA.Counter == tsB.Counter && !tsA.Before(tsB) {
		t.Errorf("Equal (wall, counter) must order by node: %v vs %v", tsA, tsB)
	}
}
