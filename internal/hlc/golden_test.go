package hlc

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
)

// TestScriptedRun_Golden drives one clock through a scripted mix of local
// events, remote observations, and source moves, and compares the encoded
// trace against a golden file. The trace is fully deterministic.
//
// To regenerate the golden file, run:
//
//	go test ./internal/hlc -update
func TestScriptedRun_Golden(t *testing.T) {
	src := NewManualSource(100)
	c := New(3, src)

	var trace bytes.Buffer
	emit := func(ts Timestamp) {
		trace.WriteString(ts.String())
		trace.WriteByte('\n')
	}

	emit(c.Now()) // stalled source
	emit(c.Now()) // still stalled
	src.Set(105)
	emit(c.Now()) // physical progress
	src.Set(103)
	emit(c.Now()) // regression
	c.Observe(Timestamp{Wall: 120, Counter: 4, Node: 9})
	emit(c.Last()) // remote dominates
	src.Set(121)
	emit(c.Now()) // physical progress
	c.Observe(Timestamp{Wall: 121, Counter: 40, Node: 9})
	emit(c.Last()) // three-way tie
	emit(c.Now()) // stalled again

	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, "scripted_run", trace.Bytes())
}
