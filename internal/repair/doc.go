// Package repair provides reconciliation logic for replica reads. Versions
// are stamped with hybrid logical clock timestamps, so reconciliation always
// resolves to a single winner by the clock's total order; replicas holding
// anything older are reported as stale for read repair.
package repair
