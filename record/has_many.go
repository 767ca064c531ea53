package record

import (
	"context"
	"net/http"

	"github.com/restorm-go/restorm/query"
)

// HasMany is a multi-cardinality traversal: it resolves to a slice of
// entities, and its collection-shaped terminals (All, Create, Paginate)
// always issue with the id cleared even if a prior Find or Update on
// the same instance had set one.
type HasMany[T Entity] struct {
	traversal[T]
}

func newHasMany[T Entity](parent *query.Builder, override string) *HasMany[T] {
	return &HasMany[T]{traversal: makeTraversal[T](parent, override)}
}

// Where merges equality conditions into the query. Later keys win.
func (h *HasMany[T]) Where(conditions map[string]any) *HasMany[T] {
	h.builder.Where(conditions)
	return h
}

// Filter is identical to Where.
func (h *HasMany[T]) Filter(conditions map[string]any) *HasMany[T] {
	h.builder.Filter(conditions)
	return h
}

// OrderBy sets the sort field and direction, overwriting prior calls.
func (h *HasMany[T]) OrderBy(field, direction string) *HasMany[T] {
	h.builder.OrderBy(field, direction)
	return h
}

// Limit sets the limit parameter.
func (h *HasMany[T]) Limit(n int) *HasMany[T] {
	h.builder.Limit(n)
	return h
}

// Offset sets the offset parameter.
func (h *HasMany[T]) Offset(n int) *HasMany[T] {
	h.builder.Offset(n)
	return h
}

// Scope applies a named scope declared by the entity type. An unknown
// name records an error that the next terminal call returns.
func (h *HasMany[T]) Scope(name string, args ...any) *HasMany[T] {
	h.applyScope(name, args...)
	return h
}

// ID returns a new, unsaved entity with only the id set, sharing this
// traversal's descriptor state. No network call: use it to anchor
// deeper relation chains or nested creates without fetching.
func (h *HasMany[T]) ID(id any) T {
	return h.byID(id)
}

// Find fetches a single entity by id.
func (h *HasMany[T]) Find(ctx context.Context, id any) (T, error) {
	return h.find(ctx, id)
}

// All fetches the collection. The id is cleared so the request is
// collection-shaped regardless of prior calls on this traversal.
func (h *HasMany[T]) All(ctx context.Context) ([]T, error) {
	h.builder.ClearID()
	h.builder.SetMethod(http.MethodGet)
	h.builder.SetBody(nil)
	resp, err := h.call(ctx)
	if err != nil {
		return nil, err
	}
	return h.collection(resp.Data)
}

// Create POSTs data to the collection and returns the created entity.
func (h *HasMany[T]) Create(ctx context.Context, data any) (T, error) {
	var zero T
	h.builder.ClearID()
	h.builder.SetMethod(http.MethodPost)
	h.builder.SetBody(data)
	resp, err := h.call(ctx)
	if err != nil {
		return zero, err
	}
	return hydrate[T](resp.Data, h.builder)
}

// Update PUTs data against an explicit id and returns the updated
// entity. A full replace by convention; the remote API decides.
func (h *HasMany[T]) Update(ctx context.Context, id, data any) (T, error) {
	return h.write(ctx, http.MethodPut, id, data)
}

// Patch is Update with PATCH: a partial merge by convention.
func (h *HasMany[T]) Patch(ctx context.Context, id, data any) (T, error) {
	return h.write(ctx, http.MethodPatch, id, data)
}

func (h *HasMany[T]) write(ctx context.Context, method string, id, data any) (T, error) {
	var zero T
	h.builder.SetID(id)
	h.builder.SetMethod(method)
	h.builder.SetBody(data)
	resp, err := h.call(ctx)
	if err != nil {
		return zero, err
	}
	e, err := hydrate[T](resp.Data, h.builder)
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

// Delete issues DELETE against an explicit id.
func (h *HasMany[T]) Delete(ctx context.Context, id any) error {
	h.builder.SetID(id)
	h.builder.SetMethod(http.MethodDelete)
	h.builder.SetBody(nil)
	_, err := h.call(ctx)
	return err
}

// Paginate sets page/perPage (deriving offset and limit) and fetches
// the collection.
func (h *HasMany[T]) Paginate(ctx context.Context, page, perPage int) ([]T, error) {
	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}
	h.builder.Paginate(page, perPage)
	return h.All(ctx)
}
