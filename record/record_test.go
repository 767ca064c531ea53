package record

import (
	"context"

	"github.com/restorm-go/restorm/query"
)

// Test fixtures shared across the package tests: a small resource graph
// of users -> medias -> thumbnails plus a has-one avatar and nested
// attribute types for serialization tests.

type Thumbnail struct {
	Model
	URL string `json:"url,omitempty"`
}

func (*Thumbnail) ResourceName() string { return "thumbnails" }

type Media struct {
	Model
	Kind string `json:"kind,omitempty"`
}

func (*Media) ResourceName() string { return "medias" }

func (m *Media) Thumbnails() *HasMany[*Thumbnail] {
	return HasManyOf[*Thumbnail](m)
}

type Profile struct {
	Model
	Bio string `json:"bio,omitempty"`
}

func (*Profile) ResourceName() string { return "profiles" }

type Tag struct {
	Model
	Name string `json:"name,omitempty"`
}

func (*Tag) ResourceName() string { return "tags" }

type User struct {
	Model
	Name    string   `json:"name,omitempty"`
	Email   string   `json:"email,omitempty"`
	Profile *Profile `json:"profile,omitempty"`
	Tags    []*Tag   `json:"tags,omitempty"`
}

func (*User) ResourceName() string { return "users" }

func (u *User) Medias() *HasMany[*Media] {
	return HasManyOf[*Media](u)
}

func (u *User) Avatar() *HasOne[*Media] {
	return HasOneOf[*Media](u, "avatar")
}

func (*User) Scopes() map[string]Scope {
	return map[string]Scope{
		"active": func(b *query.Builder, args ...any) {
			b.Where(map[string]any{"status": "active"})
		},
		"recent": func(b *query.Builder, args ...any) {
			b.OrderBy("created_at", "desc")
			if len(args) > 0 {
				if n, ok := args[0].(int); ok {
					b.Limit(n)
				}
			}
		},
	}
}

// capturedCall snapshots the builder at call time so later chain
// mutation cannot rewrite what the test observed.
type capturedCall struct {
	builder *query.Builder
	method  string
	body    any
}

// stubAdapter records every call and answers with canned data.
type stubAdapter struct {
	calls []capturedCall
	data  any
	err   error
}

func (s *stubAdapter) Configure(options map[string]any) {}

func (s *stubAdapter) Call(ctx context.Context, b *query.Builder) (*Response, error) {
	s.calls = append(s.calls, capturedCall{
		builder: b.Clone(),
		method:  b.Method(),
		body:    b.Body(),
	})
	if s.err != nil {
		return nil, s.err
	}
	return &Response{Data: s.data}, nil
}

func (s *stubAdapter) last() capturedCall {
	return s.calls[len(s.calls)-1]
}

func install(data any) *stubAdapter {
	stub := &stubAdapter{data: data}
	Use(stub)
	return stub
}
