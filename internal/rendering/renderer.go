package rendering

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/a-h/templ"
	"github.com/labstack/echo/v4"
)

// Renderer turns view components into HTML. Pages go through echo's
// c.Render, fragments pushed over the analytics socket go through Fragment.
type Renderer interface {
	Fragment(ctx context.Context, component any) ([]byte, error)
	Page(c echo.Context, status int, component any) error
}

// UniversalRenderer renders both templ components and gomponents nodes.
type UniversalRenderer struct{}

func NewUniversalRenderer() *UniversalRenderer {
	return &UniversalRenderer{}
}

type nodeRenderer interface {
	Render(w io.Writer) error
}

func (r *UniversalRenderer) write(ctx context.Context, component any, w io.Writer) error {
	switch c := component.(type) {
	case templ.Component:
		return c.Render(ctx, w)
	case nodeRenderer:
		return c.Render(w)
	case nil:
		return fmt.Errorf("rendering: nil component")
	default:
		return fmt.Errorf("rendering: unsupported component type %T", component)
	}
}

// Fragment renders component into a byte slice.
func (r *UniversalRenderer) Fragment(ctx context.Context, component any) ([]byte, error) {
	var buf bytes.Buffer
	if err := r.write(ctx, component, &buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// Page buffers component and writes it as the full response body, so a
// render failure never leaves a half-written page behind.
func (r *UniversalRenderer) Page(c echo.Context, status int, component any) error {
	body, err := r.Fragment(c.Request().Context(), component)
	if err != nil {
		slog.Error("Failed to render page", "path", c.Request().URL.Path, "error", err)
		return err
	}
	return c.HTMLBlob(status, body)
}

// Render implements echo.Renderer; the component is passed as data.
func (r *UniversalRenderer) Render(w io.Writer, _ string, data any, c echo.Context) error {
	if c.Response().Header().Get(echo.HeaderContentType) == "" {
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
	}
	return r.write(c.Request().Context(), data, w)
}
