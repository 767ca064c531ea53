package record

import (
	"context"
	"net/http"

	"github.com/restorm-go/restorm/query"
)

// HasOne is a single-cardinality traversal: it resolves to exactly one
// entity. Its terminals operate on the descriptor's current id, which
// must already be known (set at construction from the owning context,
// by ID, or by a prior Find). No local validation happens when it is
// absent; the adapter reports the malformed request.
type HasOne[T Entity] struct {
	traversal[T]
}

func newHasOne[T Entity](parent *query.Builder, override string) *HasOne[T] {
	return &HasOne[T]{traversal: makeTraversal[T](parent, override)}
}

// Where merges equality conditions into the query. Later keys win.
func (h *HasOne[T]) Where(conditions map[string]any) *HasOne[T] {
	h.builder.Where(conditions)
	return h
}

// Filter is identical to Where.
func (h *HasOne[T]) Filter(conditions map[string]any) *HasOne[T] {
	h.builder.Filter(conditions)
	return h
}

// OrderBy sets the sort field and direction, overwriting prior calls.
func (h *HasOne[T]) OrderBy(field, direction string) *HasOne[T] {
	h.builder.OrderBy(field, direction)
	return h
}

// Limit sets the limit parameter.
func (h *HasOne[T]) Limit(n int) *HasOne[T] {
	h.builder.Limit(n)
	return h
}

// Offset sets the offset parameter.
func (h *HasOne[T]) Offset(n int) *HasOne[T] {
	h.builder.Offset(n)
	return h
}

// Scope applies a named scope declared by the entity type.
func (h *HasOne[T]) Scope(name string, args ...any) *HasOne[T] {
	h.applyScope(name, args...)
	return h
}

// ID returns a new, unsaved entity with only the id set. No network call.
func (h *HasOne[T]) ID(id any) T {
	return h.byID(id)
}

// Find fetches a single entity by id.
func (h *HasOne[T]) Find(ctx context.Context, id any) (T, error) {
	return h.find(ctx, id)
}

// Get fetches the related entity at the descriptor's current id.
func (h *HasOne[T]) Get(ctx context.Context) (T, error) {
	var zero T
	h.builder.SetMethod(http.MethodGet)
	h.builder.SetBody(nil)
	resp, err := h.call(ctx)
	if err != nil {
		return zero, err
	}
	return hydrate[T](resp.Data, h.builder)
}

// Update PUTs data against the current id: a full replace by
// convention.
func (h *HasOne[T]) Update(ctx context.Context, data any) (T, error) {
	return h.write(ctx, http.MethodPut, data)
}

// Patch is Update with PATCH: a partial merge by convention.
func (h *HasOne[T]) Patch(ctx context.Context, data any) (T, error) {
	return h.write(ctx, http.MethodPatch, data)
}

func (h *HasOne[T]) write(ctx context.Context, method string, data any) (T, error) {
	var zero T
	h.builder.SetMethod(method)
	h.builder.SetBody(data)
	resp, err := h.call(ctx)
	if err != nil {
		return zero, err
	}
	return hydrate[T](resp.Data, h.builder)
}

// Delete issues DELETE against the current id.
func (h *HasOne[T]) Delete(ctx context.Context) error {
	h.builder.SetMethod(http.MethodDelete)
	h.builder.SetBody(nil)
	_, err := h.call(ctx)
	return err
}
