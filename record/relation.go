package record

import "context"

// HasManyOf declares a multi-cardinality relation from owner to T,
// parent-chained onto a snapshot of the owner's current path and id.
// It is evaluated fresh on every call, so each access reflects the
// owner's current state (important after Save assigns a server id).
// An optional resource-name override supports relation fields whose
// remote path differs from T's default resource name.
//
// Entities expose relations as plain methods:
//
//	func (u *User) Medias() *record.HasMany[*Media] {
//		return record.HasManyOf[*Media](u)
//	}
func HasManyOf[T Entity](owner Entity, override ...string) *HasMany[T] {
	return newHasMany[T](builderFor(owner), firstOf(override))
}

// HasOneOf declares a single-cardinality relation from owner to T. See
// HasManyOf for composition and override semantics.
func HasOneOf[T Entity](owner Entity, override ...string) *HasOne[T] {
	return newHasOne[T](builderFor(owner), firstOf(override))
}

func firstOf(override []string) string {
	if len(override) > 0 {
		return override[0]
	}
	return ""
}

// Query returns a fresh root-level traversal for T with no conditions.
func Query[T Entity]() *HasMany[T] {
	return newHasMany[T](nil, "")
}

// Where returns a fresh traversal pre-filtered with conditions.
func Where[T Entity](conditions map[string]any) *HasMany[T] {
	return Query[T]().Where(conditions)
}

// Filter is identical to Where.
func Filter[T Entity](conditions map[string]any) *HasMany[T] {
	return Query[T]().Filter(conditions)
}

// All fetches every T at the root collection path.
func All[T Entity](ctx context.Context) ([]T, error) {
	return Query[T]().All(ctx)
}

// Find fetches a single T by id.
func Find[T Entity](ctx context.Context, id any) (T, error) {
	return Query[T]().Find(ctx, id)
}

// Create POSTs data to the root collection and returns the created T.
func Create[T Entity](ctx context.Context, data any) (T, error) {
	return Query[T]().Create(ctx, data)
}

// Update PUTs data against id and returns the updated T.
func Update[T Entity](ctx context.Context, id, data any) (T, error) {
	return Query[T]().Update(ctx, id, data)
}

// Patch PATCHes data against id and returns the updated T.
func Patch[T Entity](ctx context.Context, id, data any) (T, error) {
	return Query[T]().Patch(ctx, id, data)
}

// Delete issues DELETE against id.
func Delete[T Entity](ctx context.Context, id any) error {
	return Query[T]().Delete(ctx, id)
}

// ByID constructs an unsaved T with only the id set. No network call.
func ByID[T Entity](id any) T {
	return Query[T]().ID(id)
}

// New constructs a T from an attribute map without contacting the
// adapter. Declared fields are coerced onto the struct; unknown keys
// land in Extra.
func New[T Entity](attributes map[string]any) (T, error) {
	e := newEntity[T](nil)
	if err := decodeInto(e, attributes); err != nil {
		return e, err
	}
	return e, nil
}
