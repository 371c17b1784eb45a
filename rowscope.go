// Package rowscope is the top-level facade of the inspection bridge: it
// attaches to an external storage/query engine and answers "list tables"
// and "execute query" requests with generic, client-renderable results.
package rowscope

import (
	"log/slog"
	"sync"

	"github.com/rowscope/rowscope/internal/inspect"
)

// Options tune how results are windowed and which tables are listed.
type Options struct {
	// WithMetaTables includes engine-internal tables in ListTables.
	WithMetaTables bool

	// Limit is the maximum number of data rows returned per query.
	Limit int64

	// Ascending walks rows from the first physical ordinal forward;
	// false walks from the last backward.
	Ascending bool
}

// Inspector serves inspection requests against one attached engine.
// Each request runs synchronously to completion; the inspector keeps no
// cross-request state beyond the peer registry.
type Inspector struct {
	engine inspect.Engine
	opts   Options

	mu    sync.Mutex
	peers map[string]struct{}
}

func New(engine inspect.Engine, opts Options) *Inspector {
	return &Inspector{
		engine: engine,
		opts:   opts,
		peers:  make(map[string]struct{}),
	}
}

// AddPeer registers an inspection peer. Idempotent per id.
func (ins *Inspector) AddPeer(id string) {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	if _, ok := ins.peers[id]; ok {
		return
	}
	ins.peers[id] = struct{}{}
	slog.Info("rowscope: peer attached", "peer", id, "peers", len(ins.peers))
}

// RemovePeer unregisters an inspection peer. Unknown ids are ignored.
func (ins *Inspector) RemovePeer(id string) {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	if _, ok := ins.peers[id]; !ok {
		return
	}
	delete(ins.peers, id)
	slog.Info("rowscope: peer detached", "peer", id, "peers", len(ins.peers))
}

func (ins *Inspector) PeerCount() int {
	ins.mu.Lock()
	defer ins.mu.Unlock()
	return len(ins.peers)
}

// ListTables returns the table names of one attached database, filtered
// by the meta-table option.
func (ins *Inspector) ListTables(databaseID string) ([]string, error) {
	return ins.engine.TableNames(databaseID, ins.opts.WithMetaTables)
}

// ExecuteQuery runs one ad-hoc query and builds the response for its
// outcome. Engine failures are expected: they come back as a structured
// error body, not a Go error.
func (ins *Inspector) ExecuteQuery(databaseID, query string) inspect.Response {
	out, err := ins.engine.Execute(databaseID, query)
	if err != nil {
		return inspect.Response{Error: &inspect.QueryError{Code: 0, Message: err.Error()}}
	}

	d := inspect.Dispatcher{Limit: ins.opts.Limit, Ascending: ins.opts.Ascending}
	return d.Dispatch(out)
}
