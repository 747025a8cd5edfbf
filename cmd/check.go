package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/jcdickinson/apidocs/internal/docs"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Load the documentation tree and report unresolved references",
	Run:   runCheck,
}

var (
	checkStrict bool
	checkWrite  string
)

func init() {
	checkCmd.Flags().BoolVar(&checkStrict, "strict", false, "exit non-zero when references are unresolved")
	checkCmd.Flags().StringVar(&checkWrite, "write", "", "write the loaded tree as zstd-compressed JSON to this path")
}

func runCheck(cmd *cobra.Command, args []string) {
	_, project, err := loadProject(context.Background())
	if err != nil {
		fatal("failed to load documentation", err)
	}

	report := docs.Check(project)
	fmt.Printf("%d tabs, %d items (%d methods)\n", len(project), report.Items, report.Methods)
	for _, b := range report.Broken {
		fmt.Printf("unresolved: %s -> %s\n", b.From, b.Path)
	}
	for _, u := range report.Untyped {
		fmt.Printf("untyped: %s %s\n", u.From, u.Label)
	}

	if checkWrite != "" {
		if err := docs.SaveProject(project, checkWrite); err != nil {
			fatal("failed to write tree", err)
		}
		fmt.Printf("wrote %s\n", checkWrite)
	}

	if checkStrict && len(report.Broken) > 0 {
		os.Exit(1)
	}
}
