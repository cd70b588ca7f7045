// Package shard provides a pool of independently serialized clocks for
// multi-goroutine timestamp generation. A single clock must be serialized by
// its caller; the pool instead hashes keys onto per-shard clocks, each with
// its own node identifier and mutex, so unrelated keys never contend on one
// lock while ordering per key is preserved.
package shard
