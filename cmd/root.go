package cmd

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/jcdickinson/apidocs/internal/config"
	"github.com/jcdickinson/apidocs/internal/docs"
	"github.com/jcdickinson/apidocs/internal/index"
)

const version = "0.1.0"

var debug bool

var rootCmd = &cobra.Command{
	Use:   "apidocs",
	Short: "Static API reference site for a pre-built documentation tree",
	Run:   runServe,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging")
	rootCmd.PersistentFlags().String("tree", "", "documentation tree file or URL (overrides site.tree)")
	rootCmd.PersistentFlags().String("title", "", "site title (overrides site.title)")
	viper.BindPFlag("site.tree", rootCmd.PersistentFlags().Lookup("tree"))
	viper.BindPFlag("site.title", rootCmd.PersistentFlags().Lookup("title"))

	serveFlags(rootCmd)

	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(getCmd)
	rootCmd.AddCommand(searchCmd)
	rootCmd.AddCommand(mcpCmd)
	rootCmd.AddCommand(logsCmd)
	rootCmd.AddCommand(clearCacheCmd)
	rootCmd.AddCommand(checkCmd)
}

func fatal(msg string, err error) {
	slog.Error(msg, "error", err)
	os.Exit(1)
}

func logLevel() slog.Level {
	if debug {
		return slog.LevelDebug
	}
	return slog.LevelInfo
}

// loadProject reads the config and the documentation tree it points at.
func loadProject(ctx context.Context) (*config.Config, docs.Project, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}

	slog.Debug("loading documentation tree", "source", cfg.Site.Tree.Location, "remote", cfg.Site.Tree.IsRemote())
	project, err := docs.LoadProject(ctx, cfg.Site.Tree.Location)
	if err != nil {
		return nil, nil, fmt.Errorf("loading %s: %w", cfg.Site.Tree.Location, err)
	}
	return cfg, project, nil
}

// buildIndex opens the configured index and fills it from project.
func buildIndex(ctx context.Context, cfg *config.Config, project docs.Project) (*index.DB, int, error) {
	idx, err := index.New(cfg.Index.Path)
	if err != nil {
		return nil, 0, fmt.Errorf("opening index: %w", err)
	}
	n, err := idx.Build(ctx, project)
	if err != nil {
		idx.Close()
		return nil, 0, fmt.Errorf("building index: %w", err)
	}
	slog.Debug("indexed documentation", "items", n)
	return idx, n, nil
}
