package auth

import (
	"slices"
	"strings"

	"cryptomkt/pkg/core"
)

// CanonicalBody concatenates the parameter values ordered by key name, with no
// delimiter. Adjacent values are not separated so {"amount": 1, "price": 23}
// and {"amount": 12, "price": 3} collide; the server verifies the same form.
func CanonicalBody(params core.Params) string {
	if len(params) == 0 {
		return ""
	}

	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	var b strings.Builder
	for _, k := range keys {
		b.WriteString(core.FormatParam(params[k]))
	}
	return b.String()
}
