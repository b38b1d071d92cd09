package models

// ItemStatus is the lifecycle state of an inventory item.
type ItemStatus string

const (
	StatusAvailable   ItemStatus = "available"
	StatusReserved    ItemStatus = "reserved"
	StatusSold        ItemStatus = "sold"
	StatusWorkshop    ItemStatus = "workshop"
	StatusTransferred ItemStatus = "transferred"
	StatusDamaged     ItemStatus = "damaged"
	StatusReturned    ItemStatus = "returned"
)

// statusTransitions is the full lifecycle graph, kept as data so the ruleset
// is auditable and testable without walking code branches. A self-transition
// is always allowed and treated as an idempotent no-op by callers.
var statusTransitions = map[ItemStatus][]ItemStatus{
	StatusAvailable:   {StatusReserved, StatusSold, StatusWorkshop, StatusTransferred, StatusDamaged},
	StatusReserved:    {StatusAvailable, StatusSold},
	StatusSold:        {StatusReturned},
	StatusWorkshop:    {StatusAvailable, StatusDamaged},
	StatusTransferred: {StatusAvailable},
	StatusDamaged:     {StatusAvailable, StatusReturned},
	StatusReturned:    {StatusAvailable, StatusDamaged},
}

// editBlockedStatuses are the states in which generic field updates are
// rejected; only status transitions out of them are permitted.
var editBlockedStatuses = map[ItemStatus]bool{
	StatusSold:        true,
	StatusTransferred: true,
}

// deleteBlockedStatuses are the states in which an item may not be
// soft-deleted.
var deleteBlockedStatuses = map[ItemStatus]bool{
	StatusSold:        true,
	StatusReserved:    true,
	StatusWorkshop:    true,
	StatusTransferred: true,
}

// AllStatuses returns every known lifecycle state.
func AllStatuses() []ItemStatus {
	return []ItemStatus{
		StatusAvailable, StatusReserved, StatusSold, StatusWorkshop,
		StatusTransferred, StatusDamaged, StatusReturned,
	}
}

// IsValid reports whether s is a known lifecycle state.
func (s ItemStatus) IsValid() bool {
	_, ok := statusTransitions[s]
	return ok
}

// CanTransition reports whether the edge from → to exists in the lifecycle
// graph. Self-transitions are always permitted.
func CanTransition(from, to ItemStatus) bool {
	if from == to {
		return from.IsValid()
	}
	for _, next := range statusTransitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

// TransitionsFrom returns the states reachable from the given state,
// excluding the implicit self-loop.
func TransitionsFrom(from ItemStatus) []ItemStatus {
	out := make([]ItemStatus, len(statusTransitions[from]))
	copy(out, statusTransitions[from])
	return out
}
