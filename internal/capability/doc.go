// Package capability implements the "available map plus optional enabled
// subset" pattern shared by every pluggable subsystem of vcr.
//
// A Registry keeps named implementations in insertion order. Until Enable is
// called every entry is active; afterwards only the enabled names are, and
// they are always returned in registry order, never in the order the caller
// listed them:
//
//	reg := capability.New("library hooks",
//	    capability.Entry[int]{Name: "a", Value: 1},
//	    capability.Entry[int]{Name: "b", Value: 2},
//	    capability.Entry[int]{Name: "c", Value: 3},
//	)
//	_ = reg.Enable("c", "a")
//	reg.Active() // [1 3]
//
// A Selector is the single-select variant: exactly one entry is active.
//
// Neither type is safe for concurrent mutation.
package capability
