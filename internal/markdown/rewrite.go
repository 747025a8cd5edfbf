package markdown

import (
	"fmt"
	"sort"
	"strings"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/ast"
	gmparser "github.com/gomarkdown/markdown/parser"

	"github.com/jcdickinson/apidocs/internal/docs"
)

func newParser() *gmparser.Parser {
	return gmparser.NewWithExtensions(gmparser.CommonExtensions | gmparser.Autolink)
}

// RewriteDocLinks points relative documentation links such as
// "classes/Player" at their site URL under docs.DocsRoot. Absolute URLs,
// rooted paths and anchors are left alone.
func RewriteDocLinks(src string) string {
	linkMap := make(map[string]string)
	for _, dest := range linkDestinations(src) {
		if docs.IsDocPath(dest) {
			linkMap[dest] = docs.ReferenceURL(dest)
		}
	}
	return RewriteLinks(src, linkMap)
}

// RewriteLinks rewrites markdown link destinations using the provided link map.
// Destinations are found on the parsed AST, then replaced textually so the
// rest of the source keeps its formatting.
func RewriteLinks(src string, linkMap map[string]string) string {
	if len(linkMap) == 0 {
		return src
	}

	type replacement struct {
		oldDest string
		newDest string
	}
	var replacements []replacement
	for _, dest := range linkDestinations(src) {
		if newDest, ok := linkMap[dest]; ok {
			replacements = append(replacements, replacement{dest, newDest})
		}
	}
	if len(replacements) == 0 {
		return src
	}

	result := src

	// Inline links: [text](destination)
	for _, r := range replacements {
		result = strings.ReplaceAll(result, "]("+r.oldDest+")", "]("+r.newDest+")")
	}

	// Reference definitions: [ref]: destination
	refMap := make(map[string]string, len(replacements))
	for _, r := range replacements {
		refMap["]: "+r.oldDest] = "]: " + r.newDest
	}
	lines := strings.Split(result, "\n")
	for i, line := range lines {
		trimmed := strings.TrimSpace(line)
		for oldSuffix, newSuffix := range refMap {
			if strings.HasSuffix(trimmed, oldSuffix) {
				lines[i] = strings.Replace(line, oldSuffix, newSuffix, 1)
				break
			}
		}
	}
	return strings.Join(lines, "\n")
}

// linkDestinations returns the unique link destinations of src in document
// order.
func linkDestinations(src string) []string {
	doc := gm.Parse([]byte(src), newParser())

	seen := make(map[string]bool)
	var dests []string
	ast.WalkFunc(doc, func(node ast.Node, entering bool) ast.WalkStatus {
		if !entering {
			return ast.GoToNext
		}
		if link, ok := node.(*ast.Link); ok {
			dest := string(link.Destination)
			if !seen[dest] {
				seen[dest] = true
				dests = append(dests, dest)
			}
		}
		return ast.GoToNext
	})
	return dests
}

// AddFrontMatter prepends a YAML front-matter block with the given keys in
// sorted order.
func AddFrontMatter(src string, meta map[string]string) string {
	if len(meta) == 0 {
		return src
	}

	keys := make([]string, 0, len(meta))
	for k := range meta {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var b strings.Builder
	b.WriteString("---\n")
	for _, k := range keys {
		b.WriteString(fmt.Sprintf("%s: %s\n", k, meta[k]))
	}
	b.WriteString("---\n\n")
	b.WriteString(src)
	return b.String()
}
