package hlc

import "math"

// Clock is a per-node hybrid logical clock. It holds the last wall time and
// counter it issued or observed and never hands out the same or a smaller
// timestamp twice.
//
// A Clock is not safe for unsynchronized concurrent use: Now and Observe
// read-then-write the stored wall and counter as a unit. Callers needing
// multi-goroutine access must serialize calls to a given instance, or shard
// clocks per goroutine with distinct node IDs (see package shard).
type Clock struct {
	wall    int64
	counter uint16
	node    uint16
	source  Source
}

// New creates a clock for the given node ID, seeding the stored wall time
// from the source. Node ID uniqueness across the cluster is the caller's
// responsibility.
func New(node uint16, source Source) *Clock {
	return &Clock{
		wall:   source.Now(),
		node:   node,
		source: source,
	}
}

// Now mints a timestamp for a local event. Results from one instance are
// strictly increasing even when the physical source stalls or regresses:
// the counter carries monotonicity across the stall and resets to zero as
// soon as real time passes the stored wall value.
func (c *Clock) Now() Timestamp {
	physical := c.source.Now()
	if physical > c.wall {
		c.wall = physical
		c.counter = 0
	} else {
		c.wall, c.counter = bump(c.wall, c.counter)
	}
	return Timestamp{Wall: c.wall, Counter: c.counter, Node: c.node}
}

// Observe folds a causally-prior remote timestamp into the clock so that
// every subsequent Now result is strictly greater than remote. The counter
// update is branch-based on which operand reached the maximum wall value;
// the branches are distinct on purpose, collapsing them changes tie-breaking
// at clock-skew boundaries.
func (c *Clock) Observe(remote Timestamp) {
	physical := c.source.Now()

	wall := remote.Wall
	if c.wall > wall {
		wall = c.wall
	}
	if physical > wall {
		wall = physical
	}

	switch {
	case wall == c.wall && wall == remote.Wall:
		// Local and remote tie at the maximum: advance past both counters.
		counter := c.counter
		if remote.Counter > counter {
			counter = remote.Counter
		}
		c.wall, c.counter = bump(wall, counter)
	case wall == c.wall:
		c.wall, c.counter = bump(wall, c.counter)
	case wall == remote.Wall:
		c.wall, c.counter = bump(wall, remote.Counter)
	default:
		// Physical time passed both stored values, logical drift is over.
		c.wall, c.counter = wall, 0
	}
}

// Node returns the node ID this clock stamps timestamps with.
func (c *Clock) Node() uint16 {
	return c.node
}

// Last returns the timestamp the clock last issued or folded in, without
// advancing it.
func (c *Clock) Last() Timestamp {
	return Timestamp{Wall: c.wall, Counter: c.counter, Node: c.node}
}

// bump increments a (wall, counter) pair. When the counter is exhausted the
// wall value advances by one millisecond and the counter restarts at zero,
// so ordering is preserved without blocking or silent wraparound.
func bump(wall int64, counter uint16) (int64, uint16) {
	if counter == math.MaxUint16 {
		return wall + 1, 0
	}
	return wall, counter + 1
}
