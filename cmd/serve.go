package cmd

import (
	"context"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/jcdickinson/apidocs/internal/cas"
	"github.com/jcdickinson/apidocs/internal/config"
	"github.com/jcdickinson/apidocs/internal/metrics"
	"github.com/jcdickinson/apidocs/internal/render"
	"github.com/jcdickinson/apidocs/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the documentation site over HTTP",
	Run:   runServe,
}

var serveLogFile bool

func init() {
	serveFlags(serveCmd)
}

func serveFlags(c *cobra.Command) {
	c.Flags().BoolVar(&serveLogFile, "log-file", false, "also append logs to server.log_path (read with `apidocs logs`)")
	c.Flags().String("listen", "", "address to listen on (overrides server.listen)")
}

func runServe(cmd *cobra.Command, args []string) {
	// Bound here since both the root and serve commands carry the flag.
	viper.BindPFlag("server.listen", cmd.Flags().Lookup("listen"))

	closeLog := setupServeLogging()
	defer closeLog()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, project, err := loadProject(ctx)
	if err != nil {
		fatal("failed to load documentation", err)
	}

	var store *cas.Store
	if cfg.Cache.Markdown {
		store = cas.New(config.CASDir())
	}
	renderer := render.New(project, cfg.Site.Title, store)
	m := metrics.New()

	idx, n, err := buildIndex(ctx, cfg, project)
	if err != nil {
		fatal("failed to build search index", err)
	}
	defer idx.Close()
	m.IndexedItems.Set(float64(n))

	srv := server.New(renderer,
		server.WithIndex(idx),
		server.WithMetrics(m),
		server.WithLogger(slog.Default()),
		server.WithReadTimeout(time.Duration(cfg.Server.ReadTimeoutSeconds)*time.Second),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return srv.ListenAndServe(gctx, cfg.Server.Listen)
	})
	g.Go(func() error {
		<-gctx.Done()
		slog.Info("received shutdown signal")
		return nil
	})

	if err := g.Wait(); err != nil {
		fatal("server error", err)
	}
}

// setupServeLogging installs the default logger. With --log-file, records
// are also appended to the file `logs` reads.
func setupServeLogging() func() {
	var w io.Writer = os.Stderr
	closer := func() {}

	if serveLogFile {
		logFile, err := openServerLog(serverLogPath())
		if err != nil {
			fatal("failed to open log file", err)
		}
		w = io.MultiWriter(os.Stderr, logFile)
		closer = func() { logFile.Close() }
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: logLevel()})))
	return closer
}
