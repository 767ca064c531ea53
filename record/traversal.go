package record

import (
	"context"
	"net/http"

	"github.com/restorm-go/restorm/query"
)

// traversal is the shared core of HasMany and HasOne: a builder plus
// the per-instance scope dispatch table. Chained calls mutate the
// builder in place; terminal calls do not reset it, so a reused
// traversal carries its accumulated parameters into the next call.
type traversal[T Entity] struct {
	builder *query.Builder
	scopes  map[string]Scope
	err     error
}

// makeTraversal resolves the effective resource name (override wins
// over the entity type's default) and composes the child builder. A nil
// parent yields a root-level builder; a parent with a resource context
// yields a fresh child whose parent link is a snapshot of the parent's
// current state, so later mutation of the owner does not leak in.
func makeTraversal[T Entity](parent *query.Builder, override string) traversal[T] {
	probe := newEntity[T](nil)
	name := override
	if name == "" {
		name = probe.ResourceName()
	}

	b := query.New(name)
	if parent != nil && parent.Resource() != "" {
		b.SetParent(parent.Clone())
	}

	t := traversal[T]{builder: b}
	if sc, ok := any(probe).(Scoper); ok {
		declared := sc.Scopes()
		t.scopes = make(map[string]Scope, len(declared))
		for scopeName, fn := range declared {
			t.scopes[scopeName] = fn
		}
	}
	return t
}

// Builder exposes the wrapped builder, mainly for tests and adapters.
func (t *traversal[T]) Builder() *query.Builder { return t.builder }

func (t *traversal[T]) applyScope(name string, args ...any) {
	fn, ok := t.scopes[name]
	if !ok {
		if t.err == nil {
			t.err = &UnknownScopeError{Name: name}
		}
		return
	}
	fn(t.builder, args...)
}

// byID constructs a new, unsaved entity with only the id set, sharing
// this traversal's descriptor state via a clone. No network call.
func (t *traversal[T]) byID(id any) T {
	b := t.builder.Clone()
	b.SetID(id)
	e := newEntity[T](b)
	e.model().ID = id
	return e
}

// call hands the builder to the active adapter, surfacing any deferred
// chain error first.
func (t *traversal[T]) call(ctx context.Context) (*Response, error) {
	if t.err != nil {
		return nil, t.err
	}
	a, err := Active()
	if err != nil {
		return nil, err
	}
	return a.Call(ctx, t.builder)
}

// find fetches a single entity by id. The resulting entity shares this
// traversal's builder so further relation access composes from the
// fetched path, and the id is re-set defensively in case the adapter
// data omitted it.
func (t *traversal[T]) find(ctx context.Context, id any) (T, error) {
	var zero T
	t.builder.SetID(id)
	t.builder.SetMethod(http.MethodGet)
	resp, err := t.call(ctx)
	if err != nil {
		return zero, err
	}
	e, err := hydrate[T](resp.Data, t.builder)
	if err != nil {
		return zero, err
	}
	m := e.model()
	if m.ID == nil {
		m.ID = id
	}
	m.builder.SetID(m.ID)
	return e, nil
}

// collection maps each element of response data into an entity, each
// bound to its own copy of the current descriptor so subsequent
// relation access on a result continues from the correct nested path.
func (t *traversal[T]) collection(data any) ([]T, error) {
	var items []any
	switch v := data.(type) {
	case nil:
		return []T{}, nil
	case []any:
		items = v
	case []map[string]any:
		items = make([]any, len(v))
		for i, m := range v {
			items[i] = m
		}
	default:
		// Single object where a collection was expected; wrap it.
		items = []any{v}
	}

	out := make([]T, 0, len(items))
	for _, item := range items {
		e, err := hydrate[T](item, t.builder.Clone())
		if err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, nil
}
