package router

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/supasite/browser"
	"github.com/vcrobe/supasite/runtime"
	"github.com/vcrobe/supasite/testcomponents"
	"github.com/vcrobe/supasite/vdom"
)

// scrollPage resets scroll on its first render, the way site pages do.
type scrollPage struct {
	runtime.ComponentBase
	mount    runtime.MountState
	scroller browser.Scroller
	label    string
	next     Route
}

func (p *scrollPage) GoNext() error {
	return p.Navigate(p.next.Path())
}

func (p *scrollPage) Render(r runtime.Renderer) *vdom.VNode {
	if p.mount.First() {
		p.scroller.ScrollToTop()
	}
	return vdom.Heading(1, p.label, nil)
}

type harness struct {
	window   *browser.MemoryWindow
	engine   *Engine
	shell    *AppShell
	renderer *testcomponents.TestRenderer
}

func newHarness(t *testing.T, initial string) *harness {
	t.Helper()
	w := browser.NewMemoryWindow(initial)
	page := func(label string, next Route) runtime.ComponentFactory {
		return func() runtime.Component {
			return &scrollPage{scroller: w, label: label, next: next}
		}
	}
	table := NewTable(map[Route]runtime.ComponentFactory{
		Home:  page("home", Blog1),
		Blog1: page("blog1", Blog2),
		Blog2: page("blog2", Blog1),
	})

	h := &harness{window: w, shell: NewAppShell()}
	h.engine = NewEngine(w, table)
	h.renderer = testcomponents.NewTestRenderer(h.shell).WithNavigation(h.engine)
	require.NoError(t, h.engine.Start(h.shell.SetPage))
	t.Cleanup(h.engine.Stop)
	return h
}

func (h *harness) heading() string {
	return h.renderer.GetCurrentVDOM().Children[0].Content
}

func TestEngine_InitialResolution(t *testing.T) {
	cases := map[string]Route{
		"/":             Home,
		"/blog1":        Blog1,
		"/blog2":        Blog2,
		"/nonexistent":  NotFound,
		"/blog1/extra":  NotFound,
		"/?/blog2":      Blog2,
		"/?/blog1&a=b":  Blog1,
		"/?/nope~and~x": NotFound,
	}
	for initial, want := range cases {
		h := newHarness(t, initial)
		assert.Equal(t, want, h.engine.CurrentRoute(), "initial %q", initial)
		assert.Equal(t, 1, h.window.Len(), "start must not touch history")
	}
}

func TestEngine_NotFoundRendersMinimalPage(t *testing.T) {
	h := newHarness(t, "/nonexistent")

	_, ok := h.shell.Page().(*NotFoundPage)
	require.True(t, ok)
	assert.Equal(t, "404", h.heading())
}

func TestEngine_InPageNavigationAppendsOneEntry(t *testing.T) {
	h := newHarness(t, "/blog1")
	before := h.window.Len()

	require.NoError(t, h.shell.Page().(*scrollPage).GoNext())

	assert.Equal(t, Blog2, h.engine.CurrentRoute())
	assert.Equal(t, "blog2", h.heading())
	assert.Equal(t, before+1, h.window.Len())
	assert.Equal(t, "/blog2", h.window.Location().Pathname)
	assert.Equal(t, []string{"/blog2"}, h.renderer.Navigations)
}

func TestEngine_PushRoundTrip(t *testing.T) {
	h := newHarness(t, "/")
	for _, r := range []Route{Blog1, Blog2, Home, NotFound, Blog2} {
		require.NoError(t, h.engine.Push(r))
		assert.Equal(t, r, h.engine.CurrentRoute())
	}
}

func TestEngine_BackFollowsHistoryOrder(t *testing.T) {
	h := newHarness(t, "/")
	require.NoError(t, h.engine.Push(Blog1))
	require.NoError(t, h.engine.Push(Blog2))

	require.True(t, h.window.Back())
	assert.Equal(t, Blog1, h.engine.CurrentRoute())
	assert.Equal(t, "blog1", h.heading())

	require.True(t, h.window.Back())
	assert.Equal(t, Home, h.engine.CurrentRoute())

	require.True(t, h.window.Forward())
	assert.Equal(t, Blog1, h.engine.CurrentRoute())
	assert.Equal(t, 3, h.window.Len(), "popstate must not push")
}

func TestEngine_ScrollResetOncePerMount(t *testing.T) {
	h := newHarness(t, "/blog1")
	require.Equal(t, 1, h.window.ScrollResets())

	h.window.ScrollTo(900)
	require.NoError(t, h.engine.Push(Blog2))
	assert.Equal(t, 2, h.window.ScrollResets())
	assert.Equal(t, 0, h.window.ScrollY())

	// re-rendering the mounted Blog2 instance keeps the reader's position
	blog2 := h.shell.Page()
	h.window.ScrollTo(300)
	h.shell.StateHasChanged()
	h.shell.StateHasChanged()

	assert.Same(t, blog2, h.shell.Page())
	assert.Equal(t, 2, h.window.ScrollResets())
	assert.Equal(t, 300, h.window.ScrollY())
}

func TestEngine_EachNavigationGetsFreshInstance(t *testing.T) {
	h := newHarness(t, "/blog2")
	first, firstKey := h.shell.Page(), h.shell.Key()

	require.NoError(t, h.engine.Push(Blog2))

	assert.NotSame(t, first, h.shell.Page())
	assert.NotEqual(t, firstKey, h.shell.Key())
	assert.Equal(t, 2, h.window.ScrollResets(), "new instance has its own mount state")
}

func TestEngine_StartTwiceFails(t *testing.T) {
	h := newHarness(t, "/")
	assert.Error(t, h.engine.Start(h.shell.SetPage))
}

func TestEngine_NavigateBeforeStartFails(t *testing.T) {
	e := NewEngine(browser.NewMemoryWindow("/"), NewTable(nil))
	assert.Error(t, e.Navigate("/blog1"))
}

func TestEngine_StopReleasesPopState(t *testing.T) {
	h := newHarness(t, "/")
	require.NoError(t, h.engine.Push(Blog1))

	h.engine.Stop()
	h.window.Back()

	assert.Equal(t, Blog1, h.engine.CurrentRoute())
}
