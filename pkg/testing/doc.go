// Package testing provides helpers for testing overlay painting.
//
// # Display Lists
//
// Record paints through a display list and returns the serialized drawing
// operations, so tests can assert on what was drawn and in which order:
//
//	ops := skintest.Record(size, func(c rendering.Canvas) {
//	    compositor.Composite(c, bounds, rect, s, kind, style)
//	})
//	if got := skintest.OpNames(ops); got[len(got)-2] != "drawPath" {
//	    t.Errorf("border not drawn last: %v", got)
//	}
//
// # Snapshot Testing
//
// Capture and compare display list snapshots:
//
//	snapshot := skintest.CaptureSnapshot(size, paint)
//	snapshot.MatchesFile(t, "testdata/split_round.snapshot.json")
//
// Run with BARSKIN_UPDATE_SNAPSHOTS=1 to create or refresh golden files.
//
// # Time
//
// FakeClock stands in for the wall clock wherever a scheduler or watcher
// takes a clock, so frame timestamps are deterministic.
package testing
