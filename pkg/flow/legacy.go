package flow

import (
	"github.com/pkg/errors"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/format"
	"github.com/status-im/status-ergo-go/pkg/stx"
)

// LegacyRegion shows a transaction through a Navigator. Unlike
// DynamicRegion it keeps state between paints: every transition reformats
// the buffers and Content only hands them out.
type LegacyRegion struct {
	nav     Navigator
	amounts *stx.Amounts
	digits  int
	title   *format.Buffer
	text    *format.Buffer
	err     error
}

func newLegacyRegion(amounts *stx.Amounts, digits int, title, text *format.Buffer) *LegacyRegion {
	return &LegacyRegion{
		nav:     NewNavigator(amounts.NonZeroTokensCount()),
		amounts: amounts,
		digits:  digits,
		title:   title,
		text:    text,
	}
}

func (r *LegacyRegion) Navigator() Navigator {
	return r.nav
}

func (r *LegacyRegion) Start(forward bool) bool {
	r.nav = NewNavigator(r.nav.Tokens())
	if forward {
		return r.step(r.nav.Forward)
	}
	return r.step(r.nav.Backward)
}

func (r *LegacyRegion) Next() bool {
	return r.step(r.nav.Forward)
}

func (r *LegacyRegion) Prev() bool {
	return r.step(r.nav.Backward)
}

func (r *LegacyRegion) Content() (string, string, error) {
	return r.title.String(), r.text.String(), r.err
}

func (r *LegacyRegion) step(move func() bool) bool {
	if !move() {
		return false
	}
	r.err = r.format()
	return true
}

func (r *LegacyRegion) format() error {
	r.title.Clear()
	r.text.Clear()
	f, ok := r.nav.Field()
	if !ok {
		return errors.Wrap(internal.ErrBadState, "no field to show")
	}
	return renderTxField(f, r.amounts, r.digits, r.title, r.text)
}
