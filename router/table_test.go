package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/testcomponents"
	"github.com/vcrobe/supasite/vdom"
)

type labelPage struct {
	runtime.ComponentBase
	label string
}

func (p *labelPage) Render(r runtime.Renderer) *vdom.VNode {
	return vdom.Heading(1, p.label, nil)
}

func labelFactory(label string) runtime.ComponentFactory {
	return func() runtime.Component { return &labelPage{label: label} }
}

func TestTable_PageBuildsFreshInstances(t *testing.T) {
	table := NewTable(map[Route]runtime.ComponentFactory{Home: labelFactory("home")})

	a := table.Page(Home)
	b := table.Page(Home)

	assert.NotSame(t, a, b)
}

func TestTable_MissingEntriesFallBackToNotFound(t *testing.T) {
	table := NewTable(map[Route]runtime.ComponentFactory{Home: labelFactory("home")})

	page := table.Page(Blog1)
	_, ok := page.(*NotFoundPage)
	require.True(t, ok, "got %T", page)

	vnode := testcomponents.NewTestRenderer(page).RenderRoot()
	assert.Equal(t, "h1", vnode.Tag)
	assert.Equal(t, "404", vnode.Content)
}

func TestTable_CustomNotFound(t *testing.T) {
	table := NewTable(map[Route]runtime.ComponentFactory{NotFound: labelFactory("gone")})

	r, page := table.Lookup("/blog1/extra")

	assert.Equal(t, NotFound, r)
	assert.Equal(t, "gone", page.(*labelPage).label)
}
