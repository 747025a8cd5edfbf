package cmd

import (
	"context"
	"fmt"
	"net/url"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcdickinson/apidocs/internal/docs"
	"github.com/jcdickinson/apidocs/internal/markdown"
	"github.com/jcdickinson/apidocs/internal/mcp"
)

var getCmd = &cobra.Command{
	Use:   "get <tab>/<category>[/<subcategory>]",
	Short: "Print a documentation item as markdown",
	Example: `  apidocs get classes/Player/Kick
  apidocs get globals/print
  apidocs get apidoc://classes/Player
  apidocs get /docs/hooks/GM%20hooks`,
	Args: cobra.ExactArgs(1),
	Run:  runGet,
}

func runGet(cmd *cobra.Command, args []string) {
	tab, category, subcategory, err := parseItemArg(args[0])
	if err != nil {
		fatal("invalid item path", err)
	}

	_, project, err := loadProject(context.Background())
	if err != nil {
		fatal("failed to load documentation", err)
	}

	it, ok := project.Select(tab, category, subcategory)
	if !ok {
		fmt.Fprintf(os.Stderr, "no item at %s\n", args[0])
		os.Exit(1)
	}
	fmt.Print(markdown.Document(it, category))
}

// parseItemArg accepts a bare path, an apidoc:// URI or a site URL path.
func parseItemArg(arg string) (tab, category, subcategory string, err error) {
	p := strings.TrimPrefix(arg, mcp.URIScheme)
	p = strings.TrimPrefix(p, docs.DocsRoot+"/")
	if p, err = url.PathUnescape(p); err != nil {
		return "", "", "", err
	}
	tab, category, subcategory = docs.ParseDocPath(p)
	if tab == "" || category == "" {
		return "", "", "", fmt.Errorf("%q needs at least <tab>/<category>", arg)
	}
	return tab, category, subcategory, nil
}
