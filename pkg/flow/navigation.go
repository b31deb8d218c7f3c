package flow

// NavState is the field a navigated transaction confirmation is showing.
type NavState int

const (
	NavNone NavState = iota
	NavTxValue
	NavTxFee
	NavTokenID
	NavTokenValue
)

func (s NavState) String() string {
	switch s {
	case NavNone:
		return "none"
	case NavTxValue:
		return "tx-value"
	case NavTxFee:
		return "tx-fee"
	case NavTokenID:
		return "token-id"
	case NavTokenValue:
		return "token-value"
	default:
		return "unknown"
	}
}

// Navigator walks value, fee and then an id/value pair per minted or burned
// token, in either direction. NavNone sits between the last and the first
// field, so the walk is cyclic.
type Navigator struct {
	State  NavState
	Token  int
	tokens int
}

func NewNavigator(tokens int) Navigator {
	if tokens < 0 {
		tokens = 0
	}
	return Navigator{tokens: tokens}
}

func (n *Navigator) Tokens() int {
	return n.tokens
}

// Forward moves to the next field and reports whether one is shown.
func (n *Navigator) Forward() bool {
	switch n.State {
	case NavNone:
		n.State = NavTxValue
	case NavTxValue:
		n.State = NavTxFee
	case NavTxFee:
		if n.tokens > 0 {
			n.State, n.Token = NavTokenID, 0
		} else {
			n.State = NavNone
		}
	case NavTokenID:
		n.State = NavTokenValue
	case NavTokenValue:
		if n.Token+1 < n.tokens {
			n.State = NavTokenID
			n.Token++
		} else {
			n.State, n.Token = NavNone, 0
		}
	}
	return n.State != NavNone
}

// Backward mirrors Forward.
func (n *Navigator) Backward() bool {
	switch n.State {
	case NavNone:
		if n.tokens > 0 {
			n.State, n.Token = NavTokenValue, n.tokens-1
		} else {
			n.State = NavTxFee
		}
	case NavTxValue:
		n.State = NavNone
	case NavTxFee:
		n.State = NavTxValue
	case NavTokenID:
		if n.Token > 0 {
			n.State = NavTokenValue
			n.Token--
		} else {
			n.State, n.Token = NavTxFee, 0
		}
	case NavTokenValue:
		n.State = NavTokenID
	}
	return n.State != NavNone
}

// Field returns what the current state shows, in the terms Layout.Resolve
// uses for the same position.
func (n *Navigator) Field() (Field, bool) {
	switch n.State {
	case NavTxValue:
		return Field{Kind: FieldTxValue}, true
	case NavTxFee:
		return Field{Kind: FieldTxFee}, true
	case NavTokenID:
		return Field{Kind: FieldTokenID, Token: n.Token}, true
	case NavTokenValue:
		return Field{Kind: FieldTokenValue, Token: n.Token}, true
	default:
		return Field{}, false
	}
}
