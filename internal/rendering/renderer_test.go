package rendering_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"maragu.dev/gomponents"
	"maragu.dev/gomponents/html"

	"github.com/westernedge/portal/internal/rendering"
)

func TestRenderComponent(t *testing.T) {
	r := rendering.NewGomponentRenderer()

	buf, err := r.RenderComponent(html.Div(html.ID("greeting"), gomponents.Text("hello")))
	require.NoError(t, err)
	assert.Equal(t, `<div id="greeting">hello</div>`, string(buf))
}

func TestRender(t *testing.T) {
	e := echo.New()
	e.Renderer = rendering.NewGomponentRenderer()

	t.Run("renders a component passed as data", func(t *testing.T) {
		e.GET("/", func(c echo.Context) error {
			return c.Render(http.StatusOK, "", html.P(gomponents.Text("page")))
		})

		req := httptest.NewRequest(http.MethodGet, "/", nil)
		rec := httptest.NewRecorder()
		e.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "<p>page</p>", rec.Body.String())
		assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/html"))
	})

	t.Run("rejects non-component data", func(t *testing.T) {
		r := rendering.NewGomponentRenderer()
		c := e.NewContext(httptest.NewRequest(http.MethodGet, "/", nil), httptest.NewRecorder())

		err := r.Render(httptest.NewRecorder().Body, "", "not a component", c)
		assert.Error(t, err)
	})
}
