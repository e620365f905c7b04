package render

import "io"

// Renderer writes a View in one output format.
type Renderer interface {
	Name() string
	ContentType() string
	Render(w io.Writer, view View) error
}
