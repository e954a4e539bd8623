package http

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/dto"
	"github.com/jsamuelsen11/todo-spa-service/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/todo-spa-service/internal/platform/config"
)

const (
	defaultShutdownTimeout = 10 * time.Second
	defaultMaxBodyBytes    = 1 << 20
	defaultPublicPath      = "public"
	defaultCompression     = 5
	spaIndex               = "index.html"
)

// Lifecycle errors returned by Start.
var (
	ErrAlreadyStarted = errors.New("http server already started")
	ErrServerClosed   = errors.New("http server closed")
)

// State is the lifecycle state of a Server. It only moves forward:
// unstarted → listening → closed.
type State int

// Server lifecycle states.
const (
	StateUnstarted State = iota
	StateListening
	StateClosed
)

func (s State) String() string {
	switch s {
	case StateUnstarted:
		return "unstarted"
	case StateListening:
		return "listening"
	case StateClosed:
		return "closed"
	default:
		return fmt.Sprintf("State(%d)", int(s))
	}
}

// Server serves the API router together with the single page application
// found in the configured public directory.
type Server struct {
	srv             *http.Server
	logger          *slog.Logger
	publicPath      string
	shutdownTimeout time.Duration

	mu       sync.Mutex
	state    State
	listener net.Listener
	done     chan error
}

// NewServer builds the request pipeline around routes:
//
//	middlewares... → JSON body → form body → compression → static files
//	→ routes → SPA fallback
//
// middlewares are the cross-cutting ones (recovery, request IDs, tracing,
// logging, timeout) and run first, in the order given.
func NewServer(
	cfg config.ServerConfig,
	routes http.Handler,
	logger *slog.Logger,
	middlewares ...func(http.Handler) http.Handler,
) *Server {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	if cfg.ShutdownTimeout <= 0 {
		cfg.ShutdownTimeout = defaultShutdownTimeout
	}
	if cfg.MaxBodyBytes <= 0 {
		cfg.MaxBodyBytes = defaultMaxBodyBytes
	}
	if cfg.PublicPath == "" {
		cfg.PublicPath = defaultPublicPath
	}
	if cfg.CompressionLevel <= 0 {
		cfg.CompressionLevel = defaultCompression
	}

	return &Server{
		srv: &http.Server{
			Addr:              net.JoinHostPort(cfg.Host, fmt.Sprint(cfg.Port)),
			Handler:           newHandler(cfg, routes, middlewares),
			ReadTimeout:       cfg.ReadTimeout,
			ReadHeaderTimeout: cfg.ReadTimeout,
			WriteTimeout:      cfg.WriteTimeout,
			IdleTimeout:       cfg.IdleTimeout,
			ErrorLog:          slog.NewLogLogger(logger.Handler(), slog.LevelWarn),
		},
		logger:          logger,
		publicPath:      cfg.PublicPath,
		shutdownTimeout: cfg.ShutdownTimeout,
		done:            make(chan error, 1),
	}
}

func newHandler(cfg config.ServerConfig, routes http.Handler, middlewares []func(http.Handler) http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middlewares...)
	r.Use(
		middleware.BodyParsers(cfg.MaxBodyBytes),
		chimw.Compress(cfg.CompressionLevel),
		middleware.Static(cfg.PublicPath),
	)

	// Must be set before Mount so the mounted router inherits them.
	r.NotFound(spaFallback(cfg.PublicPath))
	r.MethodNotAllowed(methodNotAllowed)
	r.Mount("/", routes)

	return r
}

// spaFallback serves the SPA entry file for GET and HEAD requests that
// matched neither a static file nor an API route, so client-side routing
// works on deep links. Other methods get a JSON 404.
func spaFallback(publicPath string) http.HandlerFunc {
	index := filepath.Join(publicPath, spaIndex)

	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet && r.Method != http.MethodHead {
			dto.WriteJSON(w, r, http.StatusNotFound, cannot(r))
			return
		}

		f, err := os.Open(index) //nolint:gosec // path comes from config, not the request
		if err != nil {
			dto.WriteJSON(w, r, http.StatusNotFound, dto.ErrorResponse{Error: http.StatusText(http.StatusNotFound)})
			return
		}
		defer f.Close()

		info, err := f.Stat()
		if err != nil {
			dto.WriteErrorResponse(w, r, fmt.Errorf("stat %s: %w", index, err))
			return
		}

		w.Header().Set("Cache-Control", "no-cache")
		http.ServeContent(w, r, spaIndex, info.ModTime(), f)
	}
}

// methodNotAllowed answers a known path requested with the wrong method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	dto.WriteJSON(w, r, http.StatusMethodNotAllowed, cannot(r))
}

func cannot(r *http.Request) dto.ErrorResponse {
	return dto.ErrorResponse{Error: fmt.Sprintf("Cannot %s %s", r.Method, r.URL.Path)}
}

// Start binds the configured address and serves in the background. It
// returns once the listener is open, so a nil error means the server is
// accepting connections. Serve errors arrive on Done.
func (s *Server) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateListening:
		return ErrAlreadyStarted
	case StateClosed:
		return ErrServerClosed
	}

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return fmt.Errorf("listening on %s: %w", s.srv.Addr, err)
	}
	s.listener = ln
	s.state = StateListening

	go func() {
		err := s.srv.Serve(ln)
		if errors.Is(err, http.ErrServerClosed) {
			err = nil
		}
		s.done <- err
		close(s.done)
	}()

	s.logger.Info("HTTP server listening",
		slog.String("addr", ln.Addr().String()),
		slog.String("public_path", s.publicPath),
	)
	return nil
}

// Close gracefully stops a listening server, waiting for in-flight
// requests until ctx expires. Without a deadline on ctx the configured
// shutdown timeout applies. Close is a no-op on a server that was never
// started or is already closed.
func (s *Server) Close(ctx context.Context) error {
	s.mu.Lock()
	if s.state != StateListening {
		s.mu.Unlock()
		return nil
	}
	s.state = StateClosed
	s.mu.Unlock()

	if _, ok := ctx.Deadline(); !ok {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()
	}

	s.logger.Info("shutting down HTTP server")
	if err := s.srv.Shutdown(ctx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}

// Done delivers the result of the background Serve call once it returns:
// nil after a graceful Close, the failure otherwise.
func (s *Server) Done() <-chan error {
	return s.done
}

// Addr returns the bound address while listening (useful with port 0) and
// the configured address otherwise.
func (s *Server) Addr() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.listener != nil {
		return s.listener.Addr().String()
	}
	return s.srv.Addr
}

// State reports the lifecycle state.
func (s *Server) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Handler exposes the full request pipeline, for tests and embedding.
func (s *Server) Handler() http.Handler {
	return s.srv.Handler
}
