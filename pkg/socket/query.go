package socket

import (
	"net/url"
	"strings"
)

// Param is a single query parameter. Params are kept as an ordered slice so
// the serialized query string is reproducible: entries appear in input order,
// renamed keys keep their original position.
type Param struct {
	Key   string
	Value string
}

// queryRenames maps the camelCase parameter names accepted by the SDK to the
// snake_case names the server expects. Keys not listed pass through unchanged.
var queryRenames = map[string]string{
	"defaultBranch": "default_branch",
	"perPage":       "per_page",
}

// encodeParams serializes params into a wire-ready query string. Entries with
// an empty value are dropped entirely rather than emitted as "key=".
// Percent-encoding is delegated to net/url.
func encodeParams(params []Param) string {
	var b strings.Builder
	for _, p := range params {
		if p.Value == "" {
			continue
		}
		key := p.Key
		if renamed, ok := queryRenames[key]; ok {
			key = renamed
		}
		if b.Len() > 0 {
			b.WriteByte('&')
		}
		b.WriteString(url.QueryEscape(key))
		b.WriteByte('=')
		b.WriteString(url.QueryEscape(p.Value))
	}
	return b.String()
}
