// Package query provides the request builder that accumulates resource
// identity, nesting, filter, sort, and pagination state for one outbound call.
package query

import "net/http"

// Segment is one path element of an unwrapped builder chain.
type Segment struct {
	Resource string
	ID       any
}

// Builder accumulates the state of a single request: the resource path
// segment, an optional id, an optional parent builder (forming a
// singly-linked chain that mirrors URL nesting), filter conditions, a
// single active sort, pagination fields, the HTTP method, and a body.
//
// All mutators return the builder for chaining. A builder is owned by a
// single logical call chain and is not safe for concurrent mutation.
type Builder struct {
	resource  string
	id        any
	parent    *Builder
	query     map[string]any
	sort      string
	direction string
	limit     *int
	offset    *int
	page      *int
	perPage   *int
	method    string
	body      any
}

// New creates a builder bound to the given resource path segment.
func New(resource string) *Builder {
	return &Builder{
		resource: resource,
		query:    make(map[string]any),
	}
}

// Where merges conditions into the query map. Later keys overwrite
// same-named earlier keys.
func (b *Builder) Where(conditions map[string]any) *Builder {
	for k, v := range conditions {
		b.query[k] = v
	}
	return b
}

// Filter is identical to Where; the two names exist to express caller
// intent, not distinct behavior.
func (b *Builder) Filter(conditions map[string]any) *Builder {
	return b.Where(conditions)
}

// OrderBy sets the active sort field and direction, overwriting any
// prior call. There is no multi-field sort.
func (b *Builder) OrderBy(field, direction string) *Builder {
	if field == "" {
		field = "id"
	}
	if direction != "desc" {
		direction = "asc"
	}
	b.sort = field
	b.direction = direction
	return b
}

// Limit sets the LIMIT parameter.
func (b *Builder) Limit(n int) *Builder {
	b.limit = &n
	return b
}

// Offset sets the OFFSET parameter.
func (b *Builder) Offset(n int) *Builder {
	b.offset = &n
	return b
}

// Paginate sets page and perPage and derives offset=(page-1)*perPage
// and limit=perPage. All four fields coexist in serialized output.
func (b *Builder) Paginate(page, perPage int) *Builder {
	offset := (page - 1) * perPage
	limit := perPage
	b.page = &page
	b.perPage = &perPage
	b.offset = &offset
	b.limit = &limit
	return b
}

// SetID marks the builder as addressing a single resource instance.
func (b *Builder) SetID(id any) *Builder {
	b.id = id
	return b
}

// ClearID removes the id so the builder addresses the collection.
func (b *Builder) ClearID() *Builder {
	b.id = nil
	return b
}

// SetMethod sets the HTTP method for the request.
func (b *Builder) SetMethod(method string) *Builder {
	b.method = method
	return b
}

// SetBody sets the request payload. Only mutating calls set a body.
func (b *Builder) SetBody(body any) *Builder {
	b.body = body
	return b
}

// SetParent links this builder under a parent, nesting its path.
func (b *Builder) SetParent(parent *Builder) *Builder {
	b.parent = parent
	return b
}

// Reset clears accumulated parameters (query, sort, pagination, id,
// method, body) but preserves the builder's identity: resource and
// parent are untouched.
func (b *Builder) Reset() *Builder {
	b.query = make(map[string]any)
	b.sort = ""
	b.direction = ""
	b.limit = nil
	b.offset = nil
	b.page = nil
	b.perPage = nil
	b.id = nil
	b.method = ""
	b.body = nil
	return b
}

// Resource returns the resource path segment.
func (b *Builder) Resource() string { return b.resource }

// ID returns the id, or nil when the builder addresses a collection.
func (b *Builder) ID() any { return b.id }

// Parent returns the parent builder, or nil at the root.
func (b *Builder) Parent() *Builder { return b.parent }

// Query returns the accumulated condition map. Never nil.
func (b *Builder) Query() map[string]any { return b.query }

// Sort returns the active sort field, or "" when unset.
func (b *Builder) Sort() string { return b.sort }

// Direction returns the active sort direction, or "" when unset.
func (b *Builder) Direction() string { return b.direction }

// Method returns the HTTP method, defaulting to GET when unset.
func (b *Builder) Method() string {
	if b.method == "" {
		return http.MethodGet
	}
	return b.method
}

// Body returns the request payload, or nil.
func (b *Builder) Body() any { return b.body }

// ToMap serializes the builder to a plain map containing only the
// fields that are present among query, method, sort, direction, limit,
// offset, page, and perPage. The query map is always included, even
// when empty. Resource, id, parent, and body are consumed separately
// by the adapter's URL builder and are not part of this serialization.
func (b *Builder) ToMap() map[string]any {
	out := map[string]any{
		"query": b.query,
	}
	if b.method != "" {
		out["method"] = b.method
	}
	if b.sort != "" {
		out["sort"] = b.sort
	}
	if b.direction != "" {
		out["direction"] = b.direction
	}
	if b.limit != nil {
		out["limit"] = *b.limit
	}
	if b.offset != nil {
		out["offset"] = *b.offset
	}
	if b.page != nil {
		out["page"] = *b.page
	}
	if b.perPage != nil {
		out["perPage"] = *b.perPage
	}
	return out
}

// Clone returns a deep copy of the builder, including its parent chain,
// so that independent call chains never share mutable state.
func (b *Builder) Clone() *Builder {
	clone := &Builder{
		resource:  b.resource,
		id:        b.id,
		query:     make(map[string]any, len(b.query)),
		sort:      b.sort,
		direction: b.direction,
		method:    b.method,
		body:      b.body,
	}
	for k, v := range b.query {
		clone.query[k] = v
	}
	if b.parent != nil {
		clone.parent = b.parent.Clone()
	}
	if b.limit != nil {
		limit := *b.limit
		clone.limit = &limit
	}
	if b.offset != nil {
		offset := *b.offset
		clone.offset = &offset
	}
	if b.page != nil {
		page := *b.page
		clone.page = &page
	}
	if b.perPage != nil {
		perPage := *b.perPage
		clone.perPage = &perPage
	}
	return clone
}

// Segments unwraps the parent chain root-first into path segments. The
// outermost ancestor comes first; the receiver is the leaf.
func (b *Builder) Segments() []Segment {
	var segments []Segment
	for cur := b; cur != nil; cur = cur.parent {
		segments = append(segments, Segment{Resource: cur.resource, ID: cur.id})
	}
	for i, j := 0, len(segments)-1; i < j; i, j = i+1, j-1 {
		segments[i], segments[j] = segments[j], segments[i]
	}
	return segments
}
