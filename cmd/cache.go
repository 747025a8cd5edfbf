package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jcdickinson/apidocs/internal/cas"
	"github.com/jcdickinson/apidocs/internal/config"
)

var clearCacheCmd = &cobra.Command{
	Use:   "clear-cache",
	Short: "Remove cached rendered markdown",
	Run:   runClearCache,
}

func runClearCache(cmd *cobra.Command, args []string) {
	store := cas.New(config.CASDir())
	if err := store.Clear(); err != nil {
		fatal("failed to clear cache", err)
	}
	fmt.Printf("removed %s\n", store.Dir())
}
