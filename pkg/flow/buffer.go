package flow

import (
	"github.com/pkg/errors"

	"github.com/status-im/status-ergo-go/internal"
	"github.com/status-im/status-ergo-go/pkg/ux"
)

var ErrTooManyScreens = errors.New("too many screens")

// Buffer is the fixed-size arena screen descriptors are packed into. One
// confirmation request owns it at a time and resets it before building.
type Buffer struct {
	steps [internal.MaxNumberOfScreens]ux.Step
	n     int
}

func (b *Buffer) Len() int {
	return b.n
}

func (b *Buffer) Remaining() int {
	return len(b.steps) - b.n
}

// Reset truncates the buffer and drops references held by old descriptors.
func (b *Buffer) Reset() {
	for i := 0; i < b.n; i++ {
		b.steps[i] = ux.Step{}
	}
	b.n = 0
}

// Steps returns the descriptors packed so far.
func (b *Buffer) Steps() []ux.Step {
	return b.steps[:b.n]
}

// AddScreen appends a single descriptor.
func (b *Buffer) AddScreen(step ux.Step) error {
	if err := b.reserve(1); err != nil {
		return err
	}
	b.push(step)
	return nil
}

func (b *Buffer) reserve(need int) error {
	if b.Remaining() < need {
		return errors.Wrapf(ErrTooManyScreens, "need %d, %d left", need, b.Remaining())
	}
	return nil
}

// push must only be called after a successful reserve covering the steps.
func (b *Buffer) push(steps ...ux.Step) {
	for _, s := range steps {
		b.steps[b.n] = s
		b.n++
	}
}

func (b *Buffer) pushRegion(r ux.Region) {
	rs := ux.RegionSteps(r)
	b.push(rs[:]...)
}
