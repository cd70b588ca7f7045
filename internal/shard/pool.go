package shard

import (
	"fmt"
	"hash/fnv"
	"sync"

	"hlcstore/internal/hlc"
)

// Pool distributes timestamp generation over a fixed set of clocks. Shard
// node IDs occupy the contiguous range [baseNode, baseNode+n); stamps from
// different shards stay globally unique because the node ID is the final
// tie-break of the timestamp order.
type Pool struct {
	shards []*shardClock
}

type shardClock struct {
	mu    sync.Mutex
	clock *hlc.Clock
}

// NewPool creates a pool of n clocks reading from the same source. The
// source may be shared read-only across clocks; each shard serializes its
// own clock. The node ID range must not wrap the 16-bit space.
func NewPool(baseNode uint16, n int, source hlc.Source) (*Pool, error) {
	if n <= 0 {
		return nil, fmt.Errorf("pool size must be positive, got %d", n)
	}
	if int(baseNode)+n-1 > 0xFFFF {
		return nil, fmt.Errorf("node ID range [%d, %d) exceeds 16 bits", baseNode, int(baseNode)+n)
	}

	shards := make([]*shardClock, n)
	for i := range shards {
		shards[i] = &shardClock{
			clock: hlc.New(baseNode+uint16(i), source),
		}
	}
	return &Pool{shards: shards}, nil
}

// Size returns the number of shards.
func (p *Pool) Size() int {
	return len(p.shards)
}

// Now mints a timestamp for a local event on the shard owning key.
func (p *Pool) Now(key string) hlc.Timestamp {
	s := p.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.clock.Now()
}

// Observe folds a remote timestamp into the shard owning key, so subsequent
// Now calls for that key are stamped strictly after it.
func (p *Pool) Observe(key string, remote hlc.Timestamp) {
	s := p.shardFor(key)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clock.Observe(remote)
}

// ObserveAll folds a remote timestamp into every shard. Use when the remote
// event is not attributable to a single key.
func (p *Pool) ObserveAll(remote hlc.Timestamp) {
	for _, s := range p.shards {
		s.mu.Lock()
		s.clock.Observe(remote)
		s.mu.Unlock()
	}
}

// shardFor maps a key onto its shard by FNV-1a hash. The mapping is
// deterministic: the same key always lands on the same clock.
func (p *Pool) shardFor(key string) *shardClock {
	h := fnv.New32a()
	h.Write([]byte(key))
	return p.shards[int(h.Sum32())%len(p.shards)]
}
