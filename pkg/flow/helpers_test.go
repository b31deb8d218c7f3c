package flow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/stx"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

type recordingHost struct {
	events []string
	faults []internal.SW
}

func (h *recordingHost) record(format string, args ...interface{}) {
	h.events = append(h.events, fmt.Sprintf(format, args...))
}

func (h *recordingHost) RespondOK()                     { h.record("ok") }
func (h *recordingHost) RespondData(data []byte)        { h.record("data:%x", data) }
func (h *recordingHost) RespondSessionID(session uint8) { h.record("session:%d", session) }
func (h *recordingHost) RespondDeny()                   { h.record("deny") }
func (h *recordingHost) RespondError(sw internal.SW)    { h.faults = append(h.faults, sw) }
func (h *recordingHost) SetBusy(busy bool)              { h.record("busy:%t", busy) }
func (h *recordingHost) SetAppSession(token uint32)     { h.record("app:%08x", token) }
func (h *recordingHost) ClearContext()                  { h.record("clear") }
func (h *recordingHost) MainMenu()                      { h.record("menu") }

type screens struct {
	painted []ux.Screen
	faults  []error
}

func (s *screens) last() ux.Screen {
	return s.painted[len(s.painted)-1]
}

func newRuntime(s *screens) *ux.Flow {
	return ux.NewFlow(
		ux.WithPainter(ux.PainterFunc(func(sc ux.Screen) { s.painted = append(s.painted, sc) })),
		ux.WithFaultHandler(func(err error) { s.faults = append(s.faults, err) }),
	)
}

// walk returns "title/text" of the current screen and the n screens that
// follow it, pressing right between them.
func walk(rt *ux.Flow, s *screens, n int) []string {
	seen := []string{s.last().Title + "/" + s.last().Text}
	for i := 0; i < n; i++ {
		rt.Right()
		seen = append(seen, s.last().Title+"/"+s.last().Text)
	}
	return seen
}

func filledID(b byte) stx.TokenID {
	var id stx.TokenID
	for i := range id {
		id[i] = b
	}
	return id
}

func display(t *testing.T, e *Engine, b *Buffer) (*ux.Flow, *screens) {
	t.Helper()
	s := &screens{}
	rt := newRuntime(s)
	require.NoError(t, e.DisplayScreens(b, rt))
	return rt, s
}
