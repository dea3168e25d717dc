// Package server serves a built site for local preview.
//
// The site is mounted under its configured base path, the way it is
// published, so relative asset links resolve the same as in production:
//
//	srv, err := server.New(server.Options{Dir: "dist", BasePath: "/wtfcesko"})
//	err = srv.ListenAndServe(ctx) // returns after ctx is canceled
package server

import (
	"context"
	"encoding/json"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sgtmarmite/wtfcesko/pkg/buildinfo"
	"github.com/sgtmarmite/wtfcesko/pkg/errors"
	"github.com/sgtmarmite/wtfcesko/pkg/observability"
	"github.com/sgtmarmite/wtfcesko/pkg/site"
)

// Timeouts.
const (
	readHeaderTimeout = 5 * time.Second
	shutdownTimeout   = 5 * time.Second
)

// Cache-Control values. Hashed assets never change under the same name.
const (
	cacheImmutable  = "public, max-age=31536000, immutable"
	cacheRevalidate = "no-cache"
)

// Options configure the preview server.
type Options struct {
	Dir      string // Built site directory
	Addr     string // Listen address, e.g. ":4321"
	BasePath string // URL prefix the site is mounted under, e.g. "/wtfcesko"
	Logger   *log.Logger
}

// Server serves a built site directory.
type Server struct {
	opts   Options
	base   string
	router chi.Router
}

// New validates opts and builds the router. The directory must exist; a
// missing index.html is only logged so the server can run before the
// first build finishes.
func New(opts Options) (*Server, error) {
	if opts.Dir == "" {
		return nil, errors.New(errors.ErrCodeInvalidPath, "site directory is required")
	}
	fi, err := os.Stat(opts.Dir)
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidPath, err, "site directory %s", opts.Dir)
	}
	if !fi.IsDir() {
		return nil, errors.New(errors.ErrCodeInvalidPath, "%s is not a directory", opts.Dir)
	}
	if err := errors.ValidateBasePath(opts.BasePath); err != nil {
		return nil, err
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}
	if _, err := os.Stat(filepath.Join(opts.Dir, site.IndexFile)); err != nil {
		opts.Logger.Warn("no index.html yet, run build first", "dir", opts.Dir)
	}

	s := &Server{opts: opts, base: strings.TrimRight(opts.BasePath, "/")}
	s.router = s.routes()
	return s, nil
}

// URL returns the address of the site root for a server listening on addr.
func (s *Server) URL(addr string) string {
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return "http://" + addr + s.base + "/"
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	return "http://" + net.JoinHostPort(host, port) + s.base + "/"
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

func (s *Server) routes() chi.Router {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)

	files := s.fileServer()
	if s.base == "" {
		r.Handle("/*", files)
		return r
	}

	r.Get("/", s.redirectToBase)
	r.Get(s.base, s.redirectToBase)
	r.Handle(s.base+"/*", http.StripPrefix(s.base, files))
	return r
}

func (s *Server) redirectToBase(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, s.base+"/", http.StatusFound)
}

func (s *Server) health(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(map[string]string{
		"status":  "ok",
		"version": buildinfo.Version,
	})
}

// fileServer serves the site directory with cache headers: hashed assets
// are immutable, everything else is revalidated.
func (s *Server) fileServer() http.Handler {
	fs := http.FileServerFS(os.DirFS(s.opts.Dir))
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.HasPrefix(r.URL.Path, "/"+site.AssetDir+"/") {
			w.Header().Set("Cache-Control", cacheImmutable)
		} else {
			w.Header().Set("Cache-Control", cacheRevalidate)
		}
		fs.ServeHTTP(w, r)
	})
}

// requestLogger reports each response to the server hooks.
func requestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hooks := observability.Server()
		hooks.OnRequest(r.Context(), r.Method, r.URL.Path)

		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		hooks.OnResponse(r.Context(), r.Method, r.URL.Path, status, time.Since(start))
	})
}

// ListenAndServe serves until ctx is canceled, then shuts down gracefully.
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "listen on %s", s.opts.Addr)
	}
	return s.Serve(ctx, ln)
}

// Serve serves on ln until ctx is canceled.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	srv := &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: readHeaderTimeout,
		BaseContext:       func(net.Listener) context.Context { return ctx },
	}

	errc := make(chan error, 1)
	go func() {
		s.opts.Logger.Info("serving site", "dir", s.opts.Dir, "url", s.URL(ln.Addr().String()))
		errc <- srv.Serve(ln)
	}()

	select {
	case err := <-errc:
		if err == http.ErrServerClosed {
			return nil
		}
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.opts.Logger.Info("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	if err := <-errc; err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
