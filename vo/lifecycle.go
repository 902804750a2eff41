// Package vo lifecycle states.
//
// One construction walks StateUninitialized → StateBound → StateFrozen →
// StateValidating → StateReady; StateFailed absorbs from any stage. The state
// is observable on a returned Instance (always StateReady) and mainly serves
// error context and tests of the pipeline's fail-fast property.

package vo

// State is the lifecycle stage of one value-object construction.
type State uint8

// Lifecycle stages, in pipeline order.
const (
	// StateUninitialized marks an allocation the binder has not filled yet.
	StateUninitialized State = iota

	// StateBound marks resolved field values, not yet frozen.
	StateBound

	// StateFrozen marks container values replaced by their frozen variants.
	StateFrozen

	// StateValidating marks invariant evaluation in progress.
	StateValidating

	// StateReady marks a fully validated, frozen, returned instance.
	StateReady

	// StateFailed absorbs any pipeline failure; a failed instance never
	// escapes to the caller.
	StateFailed
)

// String returns the stage name for logs and test output.
func (s State) String() string {
	switch s {
	case StateUninitialized:
		return "Uninitialized"
	case StateBound:
		return "Bound"
	case StateFrozen:
		return "Frozen"
	case StateValidating:
		return "Validating"
	case StateReady:
		return "Ready"
	case StateFailed:
		return "Failed"
	default:
		return "Unknown"
	}
}
