package docs

import "strings"

// FormatType renders a type expression as display text.
//
//	"bool"                      → bool
//	{"array": "Player"}         → Player[]
//	{"union": ["string","nil"]} → string | nil
//	{"array": {"union": [...]}} → (string | nil)[]
func FormatType(t TypeExpr) string {
	switch {
	case t.Array != nil:
		inner := FormatType(*t.Array)
		if inner == "" {
			return ""
		}
		if len(t.Array.Union) > 1 {
			inner = "(" + inner + ")"
		}
		return inner + "[]"
	case len(t.Union) > 0:
		parts := make([]string, 0, len(t.Union))
		for _, m := range t.Union {
			if s := FormatType(m); s != "" {
				parts = append(parts, s)
			}
		}
		return strings.Join(parts, " | ")
	default:
		return t.Name
	}
}

// TypeLink returns the site URL for a named type that carries a path, or ""
// when the expression isn't a single linkable type.
func TypeLink(t TypeExpr) string {
	if t.Name == "" || t.Path == "" || t.Array != nil || len(t.Union) > 0 {
		return ""
	}
	return ReferenceURL(t.Path)
}

// typePaths collects the paths of every named type reachable from t.
func typePaths(t TypeExpr) []string {
	var paths []string
	if t.Path != "" {
		paths = append(paths, t.Path)
	}
	if t.Array != nil {
		paths = append(paths, typePaths(*t.Array)...)
	}
	for _, m := range t.Union {
		paths = append(paths, typePaths(m)...)
	}
	return paths
}
