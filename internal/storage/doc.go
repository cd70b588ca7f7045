// Package storage provides the local key-value storage interface and
// in-memory implementation. Every value carries the hybrid logical clock
// timestamp that produced it, so writes arriving from other nodes resolve
// deterministically by last-writer-wins over the clock's total order.
package storage
