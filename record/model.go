package record

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"

	"github.com/restorm-go/restorm/query"
)

// Resource is anything addressable by a remote resource name.
type Resource interface {
	ResourceName() string
}

// Scope mutates a builder in place; entity types expose named scopes as
// reusable query fragments attachable to their traversals.
type Scope func(b *query.Builder, args ...any)

// Scoper is implemented by entity types that declare named scopes. The
// table is copied onto each traversal at construction time.
type Scoper interface {
	Scopes() map[string]Scope
}

// Model is the embeddable base for all entities. It carries the
// identity, a container for server fields the struct does not declare,
// and the builder that anchors the entity's path context for relation
// traversal.
//
// Entity types must be pointer-to-struct and embed Model:
//
//	type User struct {
//		record.Model
//		Name string `json:"name,omitempty"`
//	}
//
//	func (*User) ResourceName() string { return "users" }
type Model struct {
	// ID identifies the remote instance. Absence (nil) signals "not
	// yet created" for Save semantics.
	ID any `json:"id,omitempty"`

	// Extra holds attributes returned by the server that the entity
	// struct does not declare, so unknown fields round-trip intact.
	Extra map[string]any `json:"-"`

	builder *query.Builder
}

func (m *Model) model() *Model { return m }

// Entity is the constraint satisfied by pointer-to-struct types that
// embed Model and declare a resource name.
type Entity interface {
	Resource
	model() *Model
}

// newEntity allocates a T and binds it to b, or to a fresh builder for
// the type's resource when b is nil.
func newEntity[T Entity](b *query.Builder) T {
	var zero T
	typ := reflect.TypeOf(zero)
	if typ == nil || typ.Kind() != reflect.Pointer || typ.Elem().Kind() != reflect.Struct {
		panic("record: entity type must be a pointer to a struct embedding record.Model")
	}
	e := reflect.New(typ.Elem()).Interface().(T)
	if b == nil {
		b = query.New(e.ResourceName())
	}
	e.model().builder = b
	return e
}

// builderFor returns the entity's builder, creating one bound to its
// resource name for entities constructed directly by the caller, and
// re-syncs the builder id from the entity so attribute changes made
// since construction are captured before the next call.
func builderFor(e Entity) *query.Builder {
	m := e.model()
	if m.builder == nil {
		m.builder = query.New(e.ResourceName())
	}
	if m.ID != nil {
		m.builder.SetID(m.ID)
	}
	return m.builder
}

// decodeInto merges loosely-typed data onto an existing entity. Keys
// matching declared fields (by json tag) are coerced onto the struct;
// unmatched top-level keys are kept in Extra. The builder id is
// re-synced afterwards.
func decodeInto(e Entity, data any) error {
	if data == nil {
		return nil
	}
	var md mapstructure.Metadata
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		Result:           e,
		Metadata:         &md,
		WeaklyTypedInput: true,
		Squash:           true,
	})
	if err != nil {
		return err
	}
	if err := dec.Decode(data); err != nil {
		return fmt.Errorf("record: decode %s: %w", e.ResourceName(), err)
	}

	m := e.model()
	if raw, ok := data.(map[string]any); ok {
		for _, key := range md.Unused {
			if strings.Contains(key, ".") {
				continue
			}
			if m.Extra == nil {
				m.Extra = make(map[string]any)
			}
			m.Extra[key] = raw[key]
		}
	}
	if m.builder != nil && m.ID != nil {
		m.builder.SetID(m.ID)
	}
	return nil
}

// hydrate constructs a T bound to b and fills it from response data.
func hydrate[T Entity](data any, b *query.Builder) (T, error) {
	e := newEntity[T](b)
	if err := decodeInto(e, data); err != nil {
		return e, err
	}
	return e, nil
}
