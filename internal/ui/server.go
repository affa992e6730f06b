// Package ui provides the web UI server for lineaview.
package ui

import (
	"context"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/internal/ui/router"
	"github.com/lineaview-labs/lineaview/internal/ui/session"
)

// Server is the main UI server.
type Server struct {
	store        *lineage.Store
	sessions     *session.Registry
	port         int
	watch        bool
	snapshotPath string
	logger       *slog.Logger
}

// Config holds configuration for the UI server.
type Config struct {
	Store         *lineage.Store
	Port          int
	Watch         bool
	SnapshotPath  string
	SessionSecret string
	Logger        *slog.Logger
}

// NewServer creates a new UI server instance.
func NewServer(cfg Config) *Server {
	if cfg.Logger == nil {
		cfg.Logger = slog.New(slog.DiscardHandler)
	}
	if cfg.SessionSecret == "" {
		cfg.SessionSecret = uuid.NewString()
	}

	return &Server{
		store:        cfg.Store,
		sessions:     session.NewRegistry(cfg.SessionSecret, cfg.Store.Current),
		port:         cfg.Port,
		watch:        cfg.Watch,
		snapshotPath: cfg.SnapshotPath,
		logger:       cfg.Logger,
	}
}

// Serve starts the UI server and blocks until the context is cancelled.
func (s *Server) Serve(ctx context.Context) error {
	defer s.sessions.Close()

	addr := fmt.Sprintf(":%d", s.port)
	s.logger.Info("starting UI server", "addr", fmt.Sprintf("http://localhost:%d", s.port))

	eg, egctx := errgroup.WithContext(ctx)

	r := chi.NewMux()
	r.Use(
		middleware.Logger,
		middleware.Recoverer,
		middleware.Compress(5),
	)

	router.SetupRoutes(r, s.store, s.sessions)

	srv := &http.Server{
		Addr:    addr,
		Handler: r,
		BaseContext: func(_ net.Listener) context.Context {
			return egctx
		},
		ReadHeaderTimeout: 10 * time.Second,
	}

	// Start snapshot watcher if enabled
	if s.watch && s.snapshotPath != "" {
		eg.Go(func() error {
			return s.watchSnapshot(egctx)
		})
	}

	// Start HTTP server
	eg.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	// Graceful shutdown
	eg.Go(func() error {
		<-egctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		s.logger.Debug("shutting down UI server...")
		return srv.Shutdown(shutdownCtx)
	})

	return eg.Wait()
}

// watchSnapshot watches the snapshot file and reloads it on change.
func (s *Server) watchSnapshot(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer func() { _ = watcher.Close() }()

	// Watch the parent directory: editors replace files via rename, which
	// drops a direct file watch.
	if err := watcher.Add(filepath.Dir(s.snapshotPath)); err != nil {
		s.logger.Error("failed to watch snapshot directory", "error", err)
		// Don't fail - continue without watching
		return nil
	}

	target, err := filepath.Abs(s.snapshotPath)
	if err != nil {
		return err
	}

	// Debounce timer
	var debounceTimer *time.Timer

	for {
		select {
		case <-ctx.Done():
			return nil

		case event := <-watcher.Events:
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if abs, err := filepath.Abs(event.Name); err != nil || abs != target {
				continue
			}

			// Debounce
			if debounceTimer != nil {
				debounceTimer.Stop()
			}
			debounceTimer = time.AfterFunc(100*time.Millisecond, func() {
				s.reloadSnapshot()
			})

		case err := <-watcher.Errors:
			s.logger.Error("watcher error", "error", err)
		}
	}
}

// reloadSnapshot re-reads the snapshot file and pushes it to all sessions.
// A broken file leaves the previous snapshot in place.
func (s *Server) reloadSnapshot() {
	snap, err := lineage.LoadFile(s.snapshotPath)
	if err != nil {
		s.logger.Error("snapshot reload failed", "file", s.snapshotPath, "error", err)
		return
	}

	s.store.Replace(snap)
	s.sessions.ReloadAll()
	s.logger.Info("snapshot reloaded", "nodes", len(snap.Nodes), "edges", len(snap.Edges))
}
