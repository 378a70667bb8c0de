package app

import (
	"github.com/pkg/errors"

	"github.com/vcrobe/supasite/content"
	"github.com/vcrobe/supasite/internal/app/components/pages"
	"github.com/vcrobe/supasite/router"
	"github.com/vcrobe/supasite/runtime"
)

// articleRoutes pairs each article route with the slug it renders.
var articleRoutes = []struct {
	Route router.Route
	Slug  string
}{
	{router.Blog1, "blog1"},
	{router.Blog2, "blog2"},
}

// Routes builds the route table. Every route in router.Routes gets a page,
// and every article route needs its article in articles.
func Routes(props pages.Props, articles map[string]*content.Article) (*router.Table, error) {
	posts := make([]pages.Post, 0, len(articleRoutes))
	factories := map[router.Route]runtime.ComponentFactory{
		router.NotFound: func() runtime.Component { return &pages.NotFoundPage{Props: props} },
	}

	for _, ar := range articleRoutes {
		article, ok := articles[ar.Slug]
		if !ok {
			return nil, errors.Errorf("route %s: article %q not loaded", ar.Route, ar.Slug)
		}
		factories[ar.Route] = func() runtime.Component {
			return &pages.BlogPage{Props: props, Article: article}
		}
		posts = append(posts, pages.Post{Route: ar.Route, Article: article})
	}

	factories[router.Home] = func() runtime.Component {
		return &pages.HomePage{Props: props, Posts: posts}
	}
	return router.NewTable(factories), nil
}
