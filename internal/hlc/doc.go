// Package hlc provides a hybrid logical clock for ordering events in
// distributed operations. Hybrid logical clocks combine a physical wall-clock
// reading with a logical counter so timestamps stay totally ordered and
// causally consistent even when physical clocks stall, skew, or move
// backward.
package hlc
