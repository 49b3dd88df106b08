package rendering

import (
	"bytes"
	"fmt"
	"io"

	"github.com/labstack/echo/v4"
	"maragu.dev/gomponents"
)

// Renderer defines the contract for rendering view components. Handlers
// depend on this interface for htmx fragments; full pages go through echo's
// own Renderer hook.
type Renderer interface {
	// RenderComponent renders a component to a byte slice.
	RenderComponent(component gomponents.Node) ([]byte, error)
}

// GomponentRenderer renders gomponents trees and satisfies echo.Renderer so
// handlers can use c.Render with a component as the data argument.
type GomponentRenderer struct{}

// NewGomponentRenderer creates a new GomponentRenderer instance.
func NewGomponentRenderer() *GomponentRenderer {
	return &GomponentRenderer{}
}

// RenderComponent implements the Renderer interface.
func (r *GomponentRenderer) RenderComponent(component gomponents.Node) ([]byte, error) {
	var buf bytes.Buffer
	if err := component.Render(&buf); err != nil {
		return nil, fmt.Errorf("failed to render component to bytes: %w", err)
	}
	return buf.Bytes(), nil
}

// Render implements the echo.Renderer interface. The component is passed in
// the data parameter; the template name is unused.
func (r *GomponentRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	component, ok := data.(gomponents.Node)
	if !ok {
		return fmt.Errorf("unsupported component type: %T, expected gomponents.Node", data)
	}
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, "text/html; charset=utf-8")
	}
	return component.Render(w)
}
