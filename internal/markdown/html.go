package markdown

import (
	"strconv"

	gm "github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"

	"github.com/jcdickinson/apidocs/internal/docs"
)

// ToHTML renders markdown to HTML. Relative documentation links are
// rewritten to site URLs first. The output is trusted and meant to be
// inserted into pages verbatim.
func ToHTML(src string) string {
	if src == "" {
		return ""
	}
	renderer := html.NewRenderer(html.RendererOptions{
		Flags: html.CommonFlags | html.HrefTargetBlank,
	})
	// Parsers keep state between calls and can't be reused.
	return string(gm.ToHTML([]byte(RewriteDocLinks(src)), newParser(), renderer))
}

// Document renders an item as a standalone markdown document with front
// matter describing its realm and kind.
func Document(it *docs.Item, category string) string {
	if it == nil {
		return ""
	}
	meta := map[string]string{
		"method":   strconv.FormatBool(it.IsMethod()),
		"internal": strconv.FormatBool(it.Internal),
	}
	if it.Realm != "" {
		meta["realm"] = it.Realm
	}
	return AddFrontMatter(RewriteDocLinks(docs.Markdown(it, category)), meta)
}
