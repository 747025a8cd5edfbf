package cmd

import (
	"fmt"
	"os"
	"os/exec"

	"github.com/spf13/cobra"
)

var logsCmd = &cobra.Command{
	Use:   "logs",
	Short: "Show the log written by serve --log-file",
	Run:   runLogs,
}

var (
	logsFollow bool
	logsLines  int
	logsFilter logFilter
)

func init() {
	logsCmd.Flags().BoolVarP(&logsFollow, "follow", "f", false, "keep printing records as the server writes them")
	logsCmd.Flags().IntVarP(&logsLines, "lines", "n", 50, "number of trailing lines to read")
	logsCmd.Flags().StringVar(&logsFilter.level, "level", "", "only show records at this level (DEBUG, INFO, WARN, ERROR)")
	logsCmd.Flags().BoolVar(&logsFilter.requests, "requests", false, "only show HTTP request records")
}

func runLogs(cmd *cobra.Command, args []string) {
	path := serverLogPath()
	if _, err := os.Stat(path); os.IsNotExist(err) {
		fmt.Printf("no log at %s (start the server with --log-file)\n", path)
		return
	}

	tail := exec.Command("tail", tailArgs(path, logsLines, logsFollow)...)
	tail.Stderr = os.Stderr
	out, err := tail.StdoutPipe()
	if err != nil {
		fatal("failed to read log", err)
	}
	if err := tail.Start(); err != nil {
		fatal("failed to start tail", err)
	}
	if err := copyFiltered(os.Stdout, out, logsFilter); err != nil {
		fatal("failed to read log", err)
	}
	if err := tail.Wait(); err != nil {
		fatal("tail failed", err)
	}
}
