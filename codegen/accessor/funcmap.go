package accessor

import (
	"strconv"
	"strings"
)

// templateFuncMap returns the helpers available to the accessor templates.
func templateFuncMap() map[string]any {
	return map[string]any{
		"header": func() string { return Header },
		"quote":  strconv.Quote,
		// typeParams renders the type parameter list of a receiver type,
		// e.g. "[K, V]", or nothing for non-generic types.
		"typeParams": func(names []string) string {
			if len(names) == 0 {
				return ""
			}
			return "[" + strings.Join(names, ", ") + "]"
		},
	}
}
