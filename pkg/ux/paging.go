package ux

// DefaultPageWidth is how many characters of text fit on one page.
const DefaultPageWidth = 32

// paginate splits text into pages of at most width characters. Empty text
// still yields one (empty) page.
func paginate(text string, width int) []string {
	if len(text) <= width {
		return []string{text}
	}
	pages := make([]string, 0, (len(text)+width-1)/width)
	for len(text) > width {
		pages = append(pages, text[:width])
		text = text[width:]
	}
	return append(pages, text)
}
