package hlc

import (
	"fmt"
	"strconv"
	"strings"
)

// Timestamp is an immutable hybrid logical clock reading. Timestamps are
// totally ordered by (Wall, Counter, Node) ascending; the node identifier is
// a deterministic tie-break, not a causality claim.
type Timestamp struct {
	Wall    int64  // milliseconds since the Unix epoch
	Counter uint16 // logical tie-breaker within the same Wall value
	Node    uint16 // cluster-unique node identifier
}

// Compare compares two timestamps and returns -1, 0, or 1.
// No two timestamps compare equal unless all three fields match.
func (t Timestamp) Compare(other Timestamp) int {
	if t.Wall < other.Wall {
		return -1
	}
	if t.Wall > other.Wall {
		return 1
	}
	if t.Counter < other.Counter {
		return -1
	}
	if t.Counter > other.Counter {
		return 1
	}
	if t.Node < other.Node {
		return -1
	}
	if t.Node > other.Node {
		return 1
	}
	return 0
}

// Before returns true if t is ordered strictly before other.
func (t Timestamp) Before(other Timestamp) bool {
	return t.Compare(other) < 0
}

// After returns true if t is ordered strictly after other.
func (t Timestamp) After(other Timestamp) bool {
	return t.Compare(other) > 0
}

// Equal returns true if both timestamps are identical triples.
func (t Timestamp) Equal(other Timestamp) bool {
	return t == other
}

// String encodes the timestamp as fixed-width, zero-padded decimal fields:
// 15 digits of wall time, 6 digits of counter, 6 digits of node ID. The
// encoding is order-equivalent with Compare: comparing two encoded strings
// byte-wise yields the same result as the numeric comparator, so the string
// can serve directly as a sortable key.
func (t Timestamp) String() string {
	return fmt.Sprintf("%015d-%06d-%06d", uint64(t.Wall), t.Counter, t.Node)
}

// Parse decodes a timestamp previously produced by String.
func Parse(s string) (Timestamp, error) {
	parts := strings.Split(s, "-")
	if len(parts) != 3 || len(parts[0]) != 15 || len(parts[1]) != 6 || len(parts[2]) != 6 {
		return Timestamp{}, fmt.Errorf("malformed timestamp %q", s)
	}
	wall, err := strconv.ParseUint(parts[0], 10, 64)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid wall field in %q: %w", s, err)
	}
	counter, err := strconv.ParseUint(parts[1], 10, 16)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid counter field in %q: %w", s, err)
	}
	node, err := strconv.ParseUint(parts[2], 10, 16)
	if err != nil {
		return Timestamp{}, fmt.Errorf("invalid node field in %q: %w", s, err)
	}
	return Timestamp{
		Wall:    int64(wall),
		Counter: uint16(counter),
		Node:    uint16(node),
	}, nil
}
