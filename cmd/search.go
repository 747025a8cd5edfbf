package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jcdickinson/apidocs/internal/index"
	"github.com/jcdickinson/apidocs/internal/rpc"
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search documented items by name or summary",
	Args:  cobra.MinimumNArgs(1),
	Run:   runSearch,
}

var (
	searchLimit int
	searchJSON  bool
)

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", index.DefaultLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "print results as JSON")
}

func runSearch(cmd *cobra.Command, args []string) {
	ctx := context.Background()
	query := strings.Join(args, " ")

	cfg, project, err := loadProject(ctx)
	if err != nil {
		fatal("failed to load documentation", err)
	}

	idx, _, err := buildIndex(ctx, cfg, project)
	if err != nil {
		fatal("failed to build search index", err)
	}
	defer idx.Close()

	results, err := idx.Search(ctx, query, searchLimit)
	if err != nil {
		fatal("search failed", err)
	}

	if searchJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		enc.Encode(rpc.NewSearchResponse(query, results))
		return
	}

	if len(results) == 0 {
		fmt.Println("no results")
		return
	}
	for _, r := range results {
		fmt.Printf("%s\n  %s\n", r.Path, r.Signature)
		if r.Summary != "" {
			fmt.Printf("  %s\n", r.Summary)
		}
	}
}
