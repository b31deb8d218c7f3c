// Package ux is the step-sequencing runtime behind the device display. It
// shows one step at a time, moves between steps on button events and asks
// dynamic regions for their content only when a screen is painted.
package ux

type Icon string

const (
	IconNone        Icon = ""
	IconApp         Icon = "app"
	IconWarning     Icon = "warning"
	IconEye         Icon = "eye"
	IconValidate    Icon = "validate"
	IconCrossmark   Icon = "crossmark"
	IconCertificate Icon = "certificate"
	IconDashboard   Icon = "dashboard"
	IconBack        Icon = "back"
)

type Kind int

const (
	KindText Kind = iota
	KindRegionBefore
	KindRegionBody
	KindRegionAfter
	KindLoop
	KindEnd
)

func (k Kind) String() string {
	switch k {
	case KindText:
		return "text"
	case KindRegionBefore:
		return "region-before"
	case KindRegionBody:
		return "region-body"
	case KindRegionAfter:
		return "region-after"
	case KindLoop:
		return "loop"
	case KindEnd:
		return "end"
	default:
		return "unknown"
	}
}

// Step is one descriptor of a flow. Text steps show fixed content and may
// carry an action run when both buttons are pressed. Region steps always come
// in before/body/after triples sharing one Region.
type Step struct {
	Kind     Kind
	Icon     Icon
	Title    string
	Text     string
	OnSelect func()
	Region   Region
}

// Region supplies a run of screens whose content is produced on demand.
type Region interface {
	// Start positions the region on its first screen, or on its last one
	// when entered backward. It returns false if there is nothing to show.
	Start(forward bool) bool
	// Next and Prev move within the region and return false at its edges.
	Next() bool
	Prev() bool
	// Content renders the current screen.
	Content() (title, text string, err error)
}

func TextStep(icon Icon, title, text string) Step {
	return Step{Kind: KindText, Icon: icon, Title: title, Text: text}
}

func ActionStep(icon Icon, title, text string, action func()) Step {
	return Step{Kind: KindText, Icon: icon, Title: title, Text: text, OnSelect: action}
}

// RegionSteps returns the three descriptors that embed r in a flow.
func RegionSteps(r Region) [3]Step {
	return [3]Step{
		{Kind: KindRegionBefore, Region: r},
		{Kind: KindRegionBody, Region: r},
		{Kind: KindRegionAfter, Region: r},
	}
}

func LoopStep() Step {
	return Step{Kind: KindLoop}
}

func EndStep() Step {
	return Step{Kind: KindEnd}
}

// Screen is what the display shows after a paint.
type Screen struct {
	Step       int    `json:"step"`
	Icon       Icon   `json:"icon,omitempty"`
	Title      string `json:"title"`
	Text       string `json:"text"`
	Page       int    `json:"page"`
	Pages      int    `json:"pages"`
	Selectable bool   `json:"selectable"`
}

// Painter receives every screen the runtime paints.
type Painter interface {
	Paint(Screen)
}

type PainterFunc func(Screen)

func (f PainterFunc) Paint(s Screen) {
	f(s)
}
