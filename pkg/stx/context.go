package stx

// State is the progress of a sign-transaction session.
type State int

const (
	StateInitialized State = iota
	StateApproved
	StateDataLoaded
)

func (s State) String() string {
	switch s {
	case StateInitialized:
		return "initialized"
	case StateApproved:
		return "approved"
	case StateDataLoaded:
		return "data-loaded"
	default:
		return "unknown"
	}
}

// Context is the signing protocol's view of one transaction. The confirmation
// flows read Amounts and Outputs and advance State on approval.
type Context struct {
	Session uint8
	State   State
	Amounts Amounts
	Outputs []OutputInfo
}

// Reset returns the context to its initial state for a new session.
func (c *Context) Reset(session uint8) {
	*c = Context{Session: session}
}
