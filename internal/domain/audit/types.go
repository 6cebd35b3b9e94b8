package audit

// Sink selects the per-resource-type log table. The three tables are
// structurally identical; only the resource they reference differs.
type Sink string

const (
	SinkEquipment Sink = "equipment"
	SinkFacility  Sink = "facility"
	SinkSupply    Sink = "supply"
)

func (s Sink) IsValid() bool {
	switch s {
	case SinkEquipment, SinkFacility, SinkSupply:
		return true
	default:
		return false
	}
}

// Action is the label attached to an audit entry. Entries are append-only;
// the label names what happened to the resource, never who decided it (the
// acting user is recorded separately).
type Action string

const (
	ActionApproved       Action = "approved"
	ActionRejected       Action = "rejected"
	ActionDeleted        Action = "deleted"
	ActionReturned       Action = "returned"
	ActionReturnRejected Action = "return_rejected"
	ActionCompleted      Action = "completed"
	ActionDismissed      Action = "dismissed"
)

func (a Action) String() string {
	return string(a)
}

// ForDecision maps an approval verdict to its log label.
func ForDecision(approved bool) Action {
	if approved {
		return ActionApproved
	}
	return ActionRejected
}
