package pages

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vcrobe/supasite/browser"
	"github.com/vcrobe/supasite/content"
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/style"
	"github.com/vcrobe/supasite/testcomponents"
	"github.com/vcrobe/supasite/vdom"
)

func testProps(t *testing.T) (Props, *browser.MemoryWindow) {
	t.Helper()
	sheet, err := style.New("main.css", "& { margin: 0 }\n.blog-body { padding: 1em }")
	require.NoError(t, err)
	w := browser.NewMemoryWindow("/")
	return Props{Title: "Supa Site", Sheet: sheet, Scroller: w}, w
}

func anchorTo(t *testing.T, tree *vdom.VNode, href string) *vdom.VNode {
	t.Helper()
	for _, a := range tree.FindAll("a") {
		if a.Attr("href") == href {
			return a
		}
	}
	t.Fatalf("no anchor to %s", href)
	return nil
}

func TestHomePage_ListsPosts(t *testing.T) {
	props, _ := testProps(t)
	articles, err := content.LoadAll()
	require.NoError(t, err)

	home := &HomePage{Props: props, Posts: []Post{
		{Route: router.Blog1, Article: articles["blog1"]},
		{Route: router.Blog2, Article: articles["blog2"]},
	}}
	r := testcomponents.NewTestRenderer(home)
	tree := r.RenderRoot()

	assert.True(t, tree.HasClass(props.Sheet.Class))
	h1 := tree.FindAll("h1")
	require.Len(t, h1, 1)
	assert.Equal(t, "Supa Site", h1[0].Content)

	link := anchorTo(t, tree, "/blog2")
	assert.Equal(t, articles["blog2"].Title, link.Content)
	require.NotNil(t, link.OnClick)
	link.OnClick()
	assert.Equal(t, []string{"/blog2"}, r.Navigations)
}

func TestBlogPage_Layout(t *testing.T) {
	props, _ := testProps(t)
	article, err := content.Load("blog2")
	require.NoError(t, err)

	page := &BlogPage{Props: props, Article: article}
	tree := testcomponents.NewTestRenderer(page).RenderRoot()

	assert.True(t, tree.HasClass(props.Sheet.Class))
	require.Len(t, tree.Children, 1)
	body := tree.Children[0]
	assert.True(t, body.HasClass("blog-body"))
	require.Len(t, body.Children, 1)
	container := body.Children[0]
	assert.True(t, container.HasClass("blog-content-container"))

	assert.Equal(t, article.Title, container.Children[0].Content)
	sub := container.Children[1]
	assert.True(t, sub.HasClass("subtitle"))
	assert.Contains(t, sub.TextContent(), "Yew")

	var heading *vdom.VNode
	for _, h := range tree.FindAll("h3") {
		if h.Content == "Further Reading / Sources:" {
			heading = h
		}
	}
	assert.NotNil(t, heading)
	sources := 0
	for _, d := range tree.FindAll("div") {
		if d.HasClass("sources") {
			sources = len(d.Children)
		}
	}
	assert.Equal(t, len(article.Sources), sources)
}

func TestBlogPage_InternalLinkNavigates(t *testing.T) {
	props, _ := testProps(t)
	article, err := content.Load("blog1")
	require.NoError(t, err)

	page := &BlogPage{Props: props, Article: article}
	r := testcomponents.NewTestRenderer(page)
	tree := r.RenderRoot()

	next := anchorTo(t, tree, "/blog2")
	require.NotNil(t, next.OnClick)
	next.OnClick()
	assert.Equal(t, []string{"/blog2"}, r.Navigations)

	for _, a := range tree.FindAll("a") {
		if !router.IsInternal(a.Attr("href")) {
			assert.Nil(t, a.OnClick, a.Attr("href"))
		}
	}
}

func TestBlogPage_ScrollResetOncePerInstance(t *testing.T) {
	props, w := testProps(t)
	article, err := content.Load("blog2")
	require.NoError(t, err)
	w.ScrollTo(900)

	page := &BlogPage{Props: props, Article: article}
	r := testcomponents.NewTestRenderer(page)
	r.RenderRoot()
	assert.Equal(t, 1, w.ScrollResets())
	assert.Equal(t, 0, w.ScrollY())

	w.ScrollTo(400)
	page.StateHasChanged()
	page.StateHasChanged()
	assert.Equal(t, 3, r.Renders())
	assert.Equal(t, 1, w.ScrollResets())
	assert.Equal(t, 400, w.ScrollY())

	again := &BlogPage{Props: props, Article: article}
	testcomponents.NewTestRenderer(again).RenderRoot()
	assert.Equal(t, 2, w.ScrollResets())
}

func TestBlogPage_BodyRebuiltPerRender(t *testing.T) {
	props, _ := testProps(t)
	article, err := content.Load("blog1")
	require.NoError(t, err)

	page := &BlogPage{Props: props, Article: article}
	r := testcomponents.NewTestRenderer(page)
	first := r.RenderRoot()
	second := r.RenderRoot()
	assert.NotSame(t, first, second)
	a, err := vdom.HTMLString(first)
	require.NoError(t, err)
	b, err := vdom.HTMLString(second)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestNotFoundPage(t *testing.T) {
	props, w := testProps(t)
	page := &NotFoundPage{Props: props}
	r := testcomponents.NewTestRenderer(page)
	tree := r.RenderRoot()

	h1 := tree.FindAll("h1")
	require.Len(t, h1, 1)
	assert.Equal(t, "404", h1[0].Content)
	assert.Equal(t, 1, w.ScrollResets())

	home := anchorTo(t, tree, "/")
	home.OnClick()
	assert.Equal(t, []string{"/"}, r.Navigations)
}

func TestPages_NilSheetRendersUnscoped(t *testing.T) {
	page := &NotFoundPage{}
	tree := testcomponents.NewTestRenderer(page).RenderRoot()
	assert.Empty(t, tree.Attr("class"))
}
