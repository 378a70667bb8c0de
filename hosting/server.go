package hosting

import (
	"context"
	"net/http"
	"os"
	"path"
	"path/filepath"
	"time"

	"github.com/gorilla/mux"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"

	"github.com/vcrobe/supasite/console"
)

// NewServer serves an exported directory the way the static host does:
// existing files as they are, anything else as 404.html with status 404.
func NewServer(dir string) *mux.Router {
	r := mux.NewRouter()
	r.MatcherFunc(fileExists(dir)).Handler(http.FileServer(http.Dir(dir)))
	r.NotFoundHandler = notFoundHandler(dir)
	r.Use(logRequests)
	return r
}

func fileExists(dir string) mux.MatcherFunc {
	return func(req *http.Request, _ *mux.RouteMatch) bool {
		name := filepath.Join(dir, filepath.FromSlash(path.Clean("/"+req.URL.Path)))
		info, err := os.Stat(name)
		if err != nil {
			return false
		}
		if info.IsDir() {
			_, err = os.Stat(filepath.Join(name, IndexFile))
			return err == nil
		}
		return true
	}
}

func notFoundHandler(dir string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		console.Warn("not found:", req.URL.Path)
		page, err := os.ReadFile(filepath.Join(dir, NotFoundFile))
		if err != nil {
			http.NotFound(w, req)
			return
		}
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write(page)
	})
}

func logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
		console.Log(req.Method, req.URL.String())
		next.ServeHTTP(w, req)
	})
}

// ListenAndServe serves h on addr until ctx is cancelled, then shuts the
// server down.
func ListenAndServe(ctx context.Context, addr string, h http.Handler) error {
	srv := &http.Server{Addr: addr, Handler: h, ReadHeaderTimeout: 10 * time.Second}

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return errors.Wrapf(err, "listen on %s", addr)
		}
		return nil
	})
	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
