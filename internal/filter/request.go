package filter

import (
	"net/url"
	"strings"
)

// Request is a resource path plus optional query and bearer credential,
// relative to the API base URL.
type Request struct {
	Path        string
	Query       url.Values
	BearerToken string
}

// URL joins the request onto base. No "?" is emitted for an empty query.
func (r Request) URL(base string) string {
	u := strings.TrimSuffix(base, "/") + r.Path
	if len(r.Query) > 0 {
		u += "?" + r.Query.Encode()
	}
	return u
}

// set adds key only for a non-empty value
func set(q url.Values, key, value string) {
	if value != "" {
		q.Set(key, value)
	}
}
