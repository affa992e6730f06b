// Package session maps browser sessions to their viewport engines.
//
// Viewport state (transform, expansion, selection) is per visitor: two open
// tabs share one engine, two visitors never do. The session id travels in a
// signed cookie; engines live in memory for the lifetime of the server.
package session

import (
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/sessions"

	"github.com/lineaview-labs/lineaview/internal/lineage"
	"github.com/lineaview-labs/lineaview/internal/viewport"
)

const (
	cookieName = "lineaview_session"
	idKey      = "id"
)

// Registry owns one viewport engine per session.
type Registry struct {
	mu      sync.Mutex
	store   *sessions.CookieStore
	engines map[string]*viewport.Engine
	current func() *lineage.Snapshot
}

// NewRegistry creates a registry. current supplies the snapshot loaded into
// newly created engines.
func NewRegistry(secret string, current func() *lineage.Snapshot) *Registry {
	store := sessions.NewCookieStore([]byte(secret))
	store.Options.Path = "/"
	store.Options.HttpOnly = true
	store.Options.SameSite = http.SameSiteLaxMode

	return &Registry{
		store:   store,
		engines: make(map[string]*viewport.Engine),
		current: current,
	}
}

// Engine returns the viewport engine for the request's session, creating
// the session and engine on first contact.
func (r *Registry) Engine(w http.ResponseWriter, req *http.Request) (*viewport.Engine, error) {
	sess, _ := r.store.Get(req, cookieName) // a bad cookie just means a fresh session

	id, ok := sess.Values[idKey].(string)
	if !ok || id == "" {
		id = uuid.NewString()
		sess.Values[idKey] = id
		if err := sess.Save(req, w); err != nil {
			return nil, err
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	eng, ok := r.engines[id]
	if !ok {
		eng = viewport.New(viewport.Config{})
		eng.Load(r.current())
		r.engines[id] = eng
	}
	return eng, nil
}

// ReloadAll pushes the current snapshot into every live engine. Used after
// the snapshot file changes on disk.
func (r *Registry) ReloadAll() {
	snap := r.current()

	r.mu.Lock()
	defer r.mu.Unlock()
	for _, eng := range r.engines {
		eng.Load(snap)
	}
}

// Close releases all engines.
func (r *Registry) Close() {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, eng := range r.engines {
		eng.Close()
		delete(r.engines, id)
	}
}
