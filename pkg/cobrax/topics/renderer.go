package topics

// Renderer turns the raw content of a topic file into terminal text.
// format is the file extension, including the dot.
type Renderer interface {
	Render(content string, format string) string
}

// PlainRenderer prints topics exactly as stored. It is used when no
// Renderer is configured and by tests that compare topic text verbatim.
type PlainRenderer struct{}

// Render returns content unchanged for every format.
func (r *PlainRenderer) Render(content string, format string) string {
	return content
}
