package decorator

import (
	"fmt"
	"strings"
	"unicode"
)

const instrumentationName = "github.com/architeacher/inventory/pkg/decorator"

// actionName turns a value of type commands.AssignLocationCommand into "assign_location".
func actionName(v any) string {
	name := fmt.Sprintf("%T", v)
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}

	name = strings.TrimSuffix(name, "Command")
	name = strings.TrimSuffix(name, "Query")

	var b strings.Builder
	for i, r := range name {
		if unicode.IsUpper(r) {
			if i > 0 {
				b.WriteByte('_')
			}

			r = unicode.ToLower(r)
		}

		b.WriteRune(r)
	}

	return b.String()
}
