// Package record maps Go struct types to remote HTTP resources in the
// style of an active record. Entities embed Model, declare a resource
// name, and query the remote API through chainable relation traversals
// (HasMany, HasOne) that accumulate state on a query.Builder and hand it
// to the configured Adapter on a terminal call.
package record

import (
	"context"
	"sync"

	"github.com/restorm-go/restorm/query"
)

// Response is the envelope every adapter resolves to. Data holds the
// decoded payload: a map for single-cardinality calls, a slice of maps
// for collections.
type Response struct {
	Data any
}

// Adapter turns a fully accumulated query.Builder into an actual
// network call. Implementations own transport, headers, credentials,
// and response parsing; this package never inspects their options.
type Adapter interface {
	Configure(options map[string]any)
	Call(ctx context.Context, b *query.Builder) (*Response, error)
}

var (
	adapterMu     sync.RWMutex
	activeAdapter Adapter
)

// Use installs the process-wide adapter used by all terminal operations.
func Use(a Adapter) {
	adapterMu.Lock()
	defer adapterMu.Unlock()
	activeAdapter = a
}

// Active returns the installed adapter, or ErrNoAdapter if Use was
// never called. The error is returned before any network attempt.
func Active() (Adapter, error) {
	adapterMu.RLock()
	defer adapterMu.RUnlock()
	if activeAdapter == nil {
		return nil, ErrNoAdapter
	}
	return activeAdapter, nil
}
