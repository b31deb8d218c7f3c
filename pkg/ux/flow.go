package ux

import (
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

var (
	ErrNoTerminator = errors.New("flow has no loop or end marker")
	ErrEmptyFlow    = errors.New("flow has no visible steps")
	ErrBadStart     = errors.New("start step out of range")
)

// Flow drives a sequence of steps. It is not safe for concurrent use; the
// owner serialises button events and Init calls.
type Flow struct {
	steps     []Step
	visible   int
	loop      bool
	pos       int
	title     string
	text      string
	pages     []string
	page      int
	pageWidth int
	painter   Painter
	onFault   func(error)
	logger    *zap.Logger
}

func NewFlow(opts ...Option) *Flow {
	f := &Flow{
		pageWidth: DefaultPageWidth,
		logger:    zap.L().Named("ux"),
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Init replaces the running flow with steps and shows step start. The step
// list must end with a loop marker followed by an end marker, or an end
// marker alone.
func (f *Flow) Init(steps []Step, start int) error {
	visible := -1
	for i, s := range steps {
		if s.Kind == KindLoop || s.Kind == KindEnd {
			visible = i
			break
		}
	}
	if visible < 0 {
		return ErrNoTerminator
	}
	if visible == 0 {
		return ErrEmptyFlow
	}
	if start < 0 || start >= visible {
		return ErrBadStart
	}

	f.steps = append(f.steps[:0], steps...)
	f.visible = visible
	f.loop = steps[visible].Kind == KindLoop
	f.pos = start
	f.pages = nil
	f.page = 0

	f.logger.Debug("flow initialised", zap.Int("steps", visible), zap.Bool("loop", f.loop))
	f.move(start, true)
	return nil
}

// Right is the right button: next page of a long text, else the next step.
func (f *Flow) Right() {
	if f.page+1 < len(f.pages) {
		f.page++
		f.paint()
		return
	}
	f.Next()
}

// Left is the left button: previous page of a long text, else the
// previous step.
func (f *Flow) Left() {
	if f.page > 0 {
		f.page--
		f.paint()
		return
	}
	f.Prev()
}

// Both runs the action of the current step, if it has one. The action may
// replace the flow, so nothing is touched afterwards.
func (f *Flow) Both() {
	if f.pos >= f.visible {
		return
	}
	if action := f.steps[f.pos].OnSelect; action != nil {
		action()
	}
}

// Next advances to the following step.
func (f *Flow) Next() {
	if f.visible == 0 {
		return
	}
	f.move(f.pos+1, true)
}

// Prev retreats to the preceding step.
func (f *Flow) Prev() {
	if f.visible == 0 {
		return
	}
	f.move(f.pos-1, false)
}

// Relayout recomputes the pages of the current text and shows the first
// page, or the last one when fromEnd is set.
func (f *Flow) Relayout(fromEnd bool) {
	f.pages = paginate(f.text, f.pageWidth)
	f.page = 0
	if fromEnd {
		f.page = len(f.pages) - 1
	}
	f.paint()
}

// Current returns the screen last painted.
func (f *Flow) Current() Screen {
	return f.screen()
}

// Position returns the index of the current step.
func (f *Flow) Position() int {
	return f.pos
}

func (f *Flow) wrap(target int) (int, bool) {
	switch {
	case target >= f.visible:
		if !f.loop {
			return 0, false
		}
		return target % f.visible, true
	case target < 0:
		if !f.loop {
			return 0, false
		}
		return (target%f.visible + f.visible) % f.visible, true
	default:
		return target, true
	}
}

// move walks from target in the given direction until it finds a step with
// something to show. Region delimiters are never shown themselves: they ask
// the region whether to re-enter its body or to let the walk continue.
func (f *Flow) move(target int, forward bool) {
	for guard := 0; guard <= 2*len(f.steps); guard++ {
		var ok bool
		target, ok = f.wrap(target)
		if !ok {
			return
		}

		step := f.steps[target]
		switch step.Kind {
		case KindRegionBefore:
			if forward {
				if step.Region.Start(true) {
					f.land(target+1, true)
					return
				}
				target += 3
				continue
			}
			if step.Region.Prev() {
				f.land(target+1, false)
				return
			}
			target--
		case KindRegionAfter:
			if !forward {
				if step.Region.Start(false) {
					f.land(target-1, false)
					return
				}
				target -= 3
				continue
			}
			if step.Region.Next() {
				f.land(target-1, true)
				return
			}
			target++
		case KindRegionBody:
			if step.Region.Start(forward) {
				f.land(target, forward)
				return
			}
			if forward {
				target += 2
			} else {
				target -= 2
			}
		default:
			f.land(target, forward)
			return
		}
	}

	f.logger.Warn("no step to show", zap.Int("from", f.pos), zap.Bool("forward", forward))
}

func (f *Flow) land(pos int, forward bool) {
	step := f.steps[pos]
	f.pos = pos

	if step.Kind == KindRegionBody {
		title, text, err := step.Region.Content()
		if err != nil {
			f.logger.Error("region content failed", zap.Int("step", pos), zap.Error(err))
			if f.onFault != nil {
				f.onFault(err)
			}
			return
		}
		f.title, f.text = title, text
	} else {
		f.title, f.text = step.Title, step.Text
	}

	f.Relayout(!forward)
}

func (f *Flow) screen() Screen {
	s := Screen{Step: f.pos, Title: f.title, Pages: len(f.pages), Page: f.page}
	if f.page < len(f.pages) {
		s.Text = f.pages[f.page]
	}
	if f.pos < len(f.steps) {
		s.Icon = f.steps[f.pos].Icon
		s.Selectable = f.steps[f.pos].OnSelect != nil
	}
	return s
}

func (f *Flow) paint() {
	if f.painter != nil {
		f.painter.Paint(f.screen())
	}
}
