package repair

import (
	"fmt"

	"hlcstore/internal/hlc"
)

// VersionedValue represents a value with its timestamp. This is used for
// reconciliation and is compatible with storage.VersionedValue.
type VersionedValue struct {
	Value   []byte
	Stamp   hlc.Timestamp
	Deleted bool
}

// ReconcileResult represents the result of reconciling replica versions.
type ReconcileResult struct {
	// Winner is the newest version by timestamp order. The total order
	// guarantees exactly one winner whenever any version exists.
	Winner VersionedValue

	// Found is false when no versions were given.
	Found bool

	// Stale maps replica identifier to the outdated version it returned.
	// A version is stale if its stamp is strictly before the winner's.
	Stale map[string]VersionedValue
}

// Reconcile picks the winning version from the given list and identifies the
// replicas that returned something older. replicaIDs must correspond 1:1
// with values (for tracking which replica returned which version).
func Reconcile(values []VersionedValue, replicaIDs []string) (ReconcileResult, error) {
	if len(replicaIDs) != len(values) {
		return ReconcileResult{}, fmt.Errorf("reconcile: %d values but %d replica IDs", len(values), len(replicaIDs))
	}

	result := ReconcileResult{
		Stale: make(map[string]VersionedValue),
	}
	if len(values) == 0 {
		return result, nil
	}

	winner := 0
	for i := 1; i < len(values); i++ {
		if values[i].Stamp.After(values[winner].Stamp) {
			winner = i
		}
	}
	result.Winner = values[winner]
	result.Found = true

	for i, v := range values {
		if v.Stamp.Before(result.Winner.Stamp) {
			result.Stale[replicaIDs[i]] = v
		}
	}
	return result, nil
}

// IsNotFound returns true if reconciliation yielded nothing readable: either
// no versions at all, or a tombstone won.
func (r *ReconcileResult) IsNotFound() bool {
	return !r.Found || r.Winner.Deleted
}

// NeedsRepair returns true if at least one replica returned a stale version.
func (r *ReconcileResult) NeedsRepair() bool {
	return len(r.Stale) > 0
}
