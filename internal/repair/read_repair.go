package repair

import (
	"fmt"

	"hlcstore/internal/hlc"
)

// Target is where a repaired version can be written back. It matches the
// Apply method of storage.Store.
type Target interface {
	Apply(key string, value []byte, stamp hlc.Timestamp, deleted bool) error
}

// Repairer converges stale replicas by writing winning versions back into
// their stores. It is best effort: a failing replica does not stop repair of
// the others.
type Repairer struct {
	targets map[string]Target // replica ID -> store
}

// NewRepairer creates a repairer with no registered replicas.
func NewRepairer() *Repairer {
	return &Repairer{targets: make(map[string]Target)}
}

// Register makes a replica's store available for repair under replicaID.
func (r *Repairer) Register(replicaID string, target Target) {
	r.targets[replicaID] = target
}

// Repair pushes the winning version to every stale replica in result.
// It returns how many replicas were repaired and the first error seen;
// replicas without a registered target are skipped.
func (r *Repairer) Repair(key string, result ReconcileResult) (int, error) {
	if !result.Found || !result.NeedsRepair() {
		return 0, nil
	}

	repaired := 0
	var firstErr error
	for replicaID := range result.Stale {
		target, exists := r.targets[replicaID]
		if !exists {
			continue
		}

		w := result.Winner
		if err := target.Apply(key, w.Value, w.Stamp, w.Deleted); err != nil {
			if firstErr == nil {
				firstErr = fmt.Errorf("repair replica %s for key %q: %w", replicaID, key, err)
			}
			continue
		}
		repaired++
	}
	return repaired, firstErr
}
