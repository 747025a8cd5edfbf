package docs

import (
	"net/url"
	"strings"
)

// DocsRoot is the URL prefix under which items are served.
const DocsRoot = "/docs"

// ParseDocPath splits a reference path like "classes/Player/Kick" into its
// navigation keys. Anything past the third segment stays in subcategory.
func ParseDocPath(path string) (tab, category, subcategory string) {
	path = strings.Trim(path, "/")
	parts := strings.SplitN(path, "/", 3)
	switch len(parts) {
	case 3:
		return parts[0], parts[1], parts[2]
	case 2:
		return parts[0], parts[1], ""
	default:
		return parts[0], "", ""
	}
}

// DocURL builds the site URL for the given navigation keys. Empty trailing
// keys are dropped.
func DocURL(tab, category, subcategory string) string {
	var b strings.Builder
	b.WriteString(DocsRoot)
	for _, seg := range []string{tab, category, subcategory} {
		if seg == "" {
			break
		}
		b.WriteString("/")
		b.WriteString(url.PathEscape(seg))
	}
	return b.String()
}

// ReferenceURL resolves a reference path to its site URL.
func ReferenceURL(path string) string {
	return DocURL(ParseDocPath(path))
}

// IsDocPath reports whether a link destination found in markdown is a
// relative documentation path rather than an absolute URL, a rooted path or
// an in-page anchor.
func IsDocPath(dest string) bool {
	if dest == "" || strings.HasPrefix(dest, "#") || strings.HasPrefix(dest, "/") {
		return false
	}
	u, err := url.Parse(dest)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}
