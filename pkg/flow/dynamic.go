package flow

import (
	"github.com/status-im/status-ergo-go/pkg/format"
)

// DynamicRegion is a run of count screens rendered on demand by render. It
// owns the cursor; render only ever sees the index it has to draw.
type DynamicRegion struct {
	count  int
	cursor int
	title  *format.Buffer
	text   *format.Buffer
	render RenderFunc
}

func NewDynamicRegion(count int, title, text *format.Buffer, render RenderFunc) *DynamicRegion {
	return &DynamicRegion{count: count, title: title, text: text, render: render}
}

func (r *DynamicRegion) Count() int {
	return r.count
}

func (r *DynamicRegion) Start(forward bool) bool {
	if r.count <= 0 {
		return false
	}
	if forward {
		r.cursor = 0
	} else {
		r.cursor = r.count - 1
	}
	return true
}

func (r *DynamicRegion) Next() bool {
	if r.cursor+1 >= r.count {
		return false
	}
	r.cursor++
	return true
}

func (r *DynamicRegion) Prev() bool {
	if r.cursor <= 0 {
		return false
	}
	r.cursor--
	return true
}

func (r *DynamicRegion) Content() (string, string, error) {
	err := r.render(r.cursor, r.title, r.text)
	return r.title.String(), r.text.String(), err
}
