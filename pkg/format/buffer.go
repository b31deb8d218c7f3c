package format

// Buffer is a fixed-capacity text buffer owned by a confirmation context.
// Like a C string buffer it always keeps room for a terminator, so at most
// Cap()-1 bytes of content are stored.
type Buffer struct {
	data []byte
	n    int
}

func NewBuffer(capacity int) Buffer {
	if capacity < 1 {
		capacity = 1
	}
	return Buffer{data: make([]byte, capacity)}
}

func (b *Buffer) Cap() int {
	return len(b.data)
}

func (b *Buffer) Len() int {
	return b.n
}

// Clear zeroes the whole buffer so nothing from a previous screen survives.
func (b *Buffer) Clear() {
	for i := range b.data {
		b.data[i] = 0
	}
	b.n = 0
}

// Set replaces the content with s, truncated to fit. It reports whether s
// fit without truncation.
func (b *Buffer) Set(s string) bool {
	b.Clear()
	return b.Append(s)
}

// Append adds s after the current content, truncated to fit.
func (b *Buffer) Append(s string) bool {
	room := len(b.data) - 1 - b.n
	if room < 0 {
		room = 0
	}
	fit := len(s) <= room
	if !fit {
		s = s[:room]
	}
	b.n += copy(b.data[b.n:], s)
	return fit
}

func (b *Buffer) String() string {
	return string(b.data[:b.n])
}
