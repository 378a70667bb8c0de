package runtime

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/supasite/vdom"
)

type probe struct {
	ComponentBase
	label     string
	inits     int
	paramSets int
	destroys  int
	renders   int
}

func (p *probe) OnInit()          { p.inits++ }
func (p *probe) OnParametersSet() { p.paramSets++ }
func (p *probe) OnDestroy()       { p.destroys++ }
func (p *probe) Render(r Renderer) *vdom.VNode {
	p.renders++
	return vdom.Paragraph(p.label, nil)
}

// parent renders whichever child is set under the given key.
type parent struct {
	ComponentBase
	key   string
	child Component
}

func (p *parent) Render(r Renderer) *vdom.VNode {
	if p.child == nil {
		return vdom.Div(nil)
	}
	return vdom.Div(nil, r.RenderChild(p.key, p.child))
}

type navRecorder struct {
	paths []string
	err   error
}

func (n *navRecorder) Navigate(path string) error {
	n.paths = append(n.paths, path)
	return n.err
}

func TestRenderer_MountsEveryRootRender(t *testing.T) {
	var mounted []*vdom.VNode
	r := NewRenderer(nil, func(n *vdom.VNode) { mounted = append(mounted, n) })
	root := &probe{label: "hello"}

	r.SetCurrentComponent(root, "root")
	r.RenderRoot()
	root.StateHasChanged()

	require.Len(t, mounted, 2)
	assert.Equal(t, "hello", mounted[1].Content)
	assert.Same(t, mounted[1], r.LastVDOM())
	assert.Equal(t, 1, root.inits, "OnInit runs once for the root")
	assert.Equal(t, 2, root.paramSets, "OnParametersSet runs before every render")
}

func TestRenderer_ChildKeptWhileKeyIsRendered(t *testing.T) {
	r := NewRenderer(nil, nil)
	child := &probe{label: "a"}
	p := &parent{key: "page-1", child: child}

	r.SetCurrentComponent(p, "shell")
	r.RenderRoot()
	r.ReRender()

	assert.Equal(t, 1, child.inits)
	assert.Equal(t, 2, child.renders)
	assert.Equal(t, 0, child.destroys)
	assert.Equal(t, 1, r.LiveInstances())
}

func TestRenderer_ChildDestroyedWhenKeyChanges(t *testing.T) {
	r := NewRenderer(nil, nil)
	first := &probe{label: "first"}
	p := &parent{key: "page-1", child: first}
	r.SetCurrentComponent(p, "shell")
	r.RenderRoot()

	second := &probe{label: "second"}
	p.key, p.child = "page-2", second
	r.ReRender()

	assert.Equal(t, 1, first.destroys)
	assert.Equal(t, 1, second.inits)
	assert.Equal(t, 1, r.LiveInstances())
	assert.Equal(t, "second", r.LastVDOM().Children[0].Content)
}

func TestRenderer_NavigateDelegates(t *testing.T) {
	r := NewRenderer(nil, nil)
	assert.Error(t, r.Navigate("/blog1"), "no router configured")

	nav := &navRecorder{}
	r.SetNavigationManager(nav)
	require.NoError(t, r.Navigate("/blog1"))
	assert.Equal(t, []string{"/blog1"}, nav.paths)

	nav.err = errors.New("boom")
	assert.EqualError(t, r.Navigate("/blog2"), "boom")
}

func TestComponentBase_UnmountedIsSafe(t *testing.T) {
	var b ComponentBase

	b.StateHasChanged()
	assert.Error(t, b.Navigate("/"))
	assert.Nil(t, b.GetRenderer())
}
