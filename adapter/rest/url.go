package rest

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/restorm-go/restorm/query"
)

// queryParamKeys are the builder fields rendered into the query string
// alongside the accumulated condition map.
var queryParamKeys = []string{"page", "perPage", "sort", "direction", "limit", "offset"}

// BuildURL renders a builder into a full request URL: the parent chain
// unwrapped root-first, each segment being `resource` or `resource/id`,
// followed by the encoded query string. Key order is deterministic
// (url.Values sorts on encode).
func BuildURL(base string, b *query.Builder) string {
	var sb strings.Builder
	sb.WriteString(strings.TrimRight(base, "/"))

	for _, seg := range b.Segments() {
		if seg.Resource == "" {
			continue
		}
		sb.WriteString("/")
		sb.WriteString(seg.Resource)
		if seg.ID != nil {
			sb.WriteString("/")
			sb.WriteString(fmt.Sprintf("%v", seg.ID))
		}
	}

	if qs := encodeQuery(b); qs != "" {
		sb.WriteString("?")
		sb.WriteString(qs)
	}
	return sb.String()
}

func encodeQuery(b *query.Builder) string {
	values := url.Values{}
	for k, v := range b.Query() {
		values.Set(k, fmt.Sprintf("%v", v))
	}
	m := b.ToMap()
	for _, k := range queryParamKeys {
		if v, ok := m[k]; ok {
			values.Set(k, fmt.Sprintf("%v", v))
		}
	}
	return values.Encode()
}
