// Package sim is the terminal front end of the simulated device: it shows
// the display, maps keys to buttons and plays the host side of the signing
// protocol.
package sim

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/address"
	"github.com/status-im/status-ergo-go/pkg/device"
	"github.com/status-im/status-ergo-go/pkg/keystore"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

const maxLogEntries = 6

type request string

const (
	requestNone        request = ""
	requestSession     request = "session"
	requestOutput      request = "output"
	requestTransaction request = "transaction"
	requestAddress     request = "address"
)

type logEntry struct {
	request  request
	response device.Response
}

type Config struct {
	Network        address.Network
	FractionDigits int
	Mnemonic       string
	Passphrase     string
}

// Model is the bubbletea model of the simulator.
type Model struct {
	device   *device.Device
	keystore *keystore.Keystore
	logger   *zap.Logger

	awaiting   request
	session    uint8
	loaded     bool
	outputs    int
	nextOutput int

	pending  []device.Response
	log      []logEntry
	err      string
	quitting bool
}

func New(cfg Config) (*Model, error) {
	m := &Model{
		keystore: keystore.New(),
		logger:   zap.L().Named("sim"),
	}
	if err := m.keystore.LoadMnemonic(cfg.Mnemonic, cfg.Passphrase); err != nil {
		return nil, err
	}

	d, err := device.New(
		device.WithNetwork(cfg.Network),
		device.WithFractionDigits(cfg.FractionDigits),
		device.WithKeystore(m.keystore),
		device.WithResponseHandler(func(r device.Response) { m.pending = append(m.pending, r) }),
		device.WithExit(func() { m.quitting = true }),
	)
	if err != nil {
		return nil, err
	}
	m.device = d
	return m, nil
}

func (m *Model) Init() tea.Cmd {
	return nil
}

func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	m.err = ""
	switch key.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "left", "h":
		m.press(device.ButtonLeft)
	case "right", "l":
		m.press(device.ButtonRight)
	case "enter", " ":
		m.press(device.ButtonBoth)
	case "s":
		m.request(requestSession, func() error {
			session, err := m.device.StartSigning(DemoAppToken)
			m.session = session
			return err
		})
	case "o":
		m.request(requestOutput, m.confirmOutput)
	case "t":
		m.request(requestTransaction, func() error { return m.device.ConfirmTransaction(m.session, -1) })
	case "y":
		m.request(requestTransaction, func() error { return m.device.ConfirmLegacyTransaction(m.session) })
	case "a":
		m.request(requestAddress, func() error { return m.device.ConfirmAddress(AccountPath(0, 0)) })
	}

	if m.quitting {
		return m, tea.Quit
	}
	return m, nil
}

func (m *Model) setError(err error) {
	m.err = err.Error()
	m.logger.Warn("request failed", zap.Error(err))
}

func (m *Model) press(b device.Button) {
	if err := m.device.Press(b); err != nil {
		m.setError(err)
		return
	}
	m.settle()
}

func (m *Model) request(r request, send func() error) {
	if err := send(); err != nil {
		m.setError(err)
		return
	}
	m.awaiting = r
}

func (m *Model) confirmOutput() error {
	if m.outputs == 0 {
		return m.device.ConfirmOutput(m.session, 0)
	}
	err := m.device.ConfirmOutput(m.session, m.nextOutput)
	if err == nil {
		m.nextOutput = (m.nextOutput + 1) % m.outputs
	}
	return err
}

// settle plays the host side for responses produced by the last button
// press. It runs outside the device's button handling, so it may issue new
// requests.
func (m *Model) settle() {
	pending := m.pending
	m.pending = nil

	for _, r := range pending {
		m.log = append(m.log, logEntry{request: m.awaiting, response: r})
		if len(m.log) > maxLogEntries {
			m.log = m.log[len(m.log)-maxLogEntries:]
		}

		switch m.awaiting {
		case requestSession:
			if r.SW == internal.SWOk && len(r.Data) == 1 {
				m.session = r.Data[0]
				m.loadDemo()
			} else {
				m.session = 0
			}
		case requestTransaction:
			m.session, m.loaded = 0, false
		}
		if r.SW != internal.SWOk && m.awaiting == requestOutput {
			m.session, m.loaded = 0, false
		}
		m.awaiting = requestNone
	}
}

func (m *Model) loadDemo() {
	amounts, outputs, err := DemoTransaction(m.keystore)
	if err != nil {
		m.setError(err)
		return
	}
	if err := m.device.LoadTransaction(m.session, amounts, outputs); err != nil {
		m.setError(err)
		return
	}
	m.loaded, m.outputs, m.nextOutput = true, len(outputs), 0
}

func iconGlyph(icon ux.Icon) string {
	switch icon {
	case ux.IconApp:
		return "◆"
	case ux.IconWarning:
		return "⚠"
	case ux.IconEye:
		return "◉"
	case ux.IconValidate:
		return "✔"
	case ux.IconCrossmark:
		return "✖"
	case ux.IconCertificate:
		return "✦"
	case ux.IconDashboard:
		return "⏻"
	case ux.IconBack:
		return "←"
	default:
		return " "
	}
}

func (m *Model) viewScreen(s ux.Screen) string {
	title := titleStyle.Render(s.Title)
	if s.Selectable {
		title = selectedStyle.Render(s.Title)
	}
	lines := []string{
		iconStyle.Render(iconGlyph(s.Icon)) + " " + title,
		s.Text,
	}
	if s.Pages > 1 {
		lines = append(lines, mutedStyle.Render(fmt.Sprintf("%d/%d", s.Page+1, s.Pages)))
	} else {
		lines = append(lines, "")
	}
	return screenStyle.Width(ux.DefaultPageWidth + 4).Render(strings.Join(lines, "\n"))
}

func (m *Model) viewLog() string {
	if len(m.log) == 0 {
		return mutedStyle.Render("no responses yet")
	}
	lines := make([]string, 0, len(m.log))
	for _, e := range m.log {
		style := okStyle
		if e.response.SW != internal.SWOk {
			style = denyStyle
		}
		line := fmt.Sprintf("%-11s %s", e.request, style.Render(e.response.Code))
		if len(e.response.Data) > 0 {
			line += " " + mutedStyle.Render(e.response.Data.String())
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) View() string {
	st := m.device.Status()

	status := fmt.Sprintf("busy: %t  session: %d  state: %s  loaded: %t", st.Busy, st.Session, st.State, m.loaded)
	help := mutedStyle.Render("←/→ move  enter select  s start  o output  t transaction  y legacy  a address  q quit")

	parts := []string{m.viewScreen(st.Screen), status, m.viewLog()}
	if m.err != "" {
		parts = append(parts, denyStyle.Render(m.err))
	}
	parts = append(parts, help)
	return lipgloss.JoinVertical(lipgloss.Left, parts...) + "\n"
}
