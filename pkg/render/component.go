package render

import (
	"context"
	"io"

	g "maragu.dev/gomponents"
)

// Component adapts a gomponents node to renderers that pass a context,
// matching the Render(ctx, w) shape the HTTP layer expects.
type Component struct {
	Node g.Node
}

func (c Component) Render(_ context.Context, w io.Writer) error {
	return c.Node.Render(w)
}
