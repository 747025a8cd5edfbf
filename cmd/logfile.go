package cmd

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/jcdickinson/apidocs/internal/config"
)

// serverLogPath reads the config file without validating it, so `logs` works
// before a tree is configured.
func serverLogPath() string {
	if err := config.InitializeViper(); err != nil {
		fatal("failed to read config", err)
	}
	return config.ServerLogPath()
}

func openServerLog(path string) (*os.File, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create log directory: %w", err)
	}
	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

func tailArgs(path string, lines int, follow bool) []string {
	args := []string{"-n", strconv.Itoa(lines)}
	if follow {
		args = append(args, "-f")
	}
	return append(args, path)
}

// logFilter selects slog text records by level and message.
type logFilter struct {
	level    string // e.g. "WARN"; empty keeps every level
	requests bool   // only "http request" records
}

func (f logFilter) match(line string) bool {
	if f.level != "" && !strings.Contains(line, "level="+strings.ToUpper(f.level)) {
		return false
	}
	if f.requests && !strings.Contains(line, `msg="http request"`) {
		return false
	}
	return true
}

// copyFiltered copies matching lines from r to w until r is exhausted.
func copyFiltered(w io.Writer, r io.Reader, f logFilter) error {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 1024*1024)
	for sc.Scan() {
		if !f.match(sc.Text()) {
			continue
		}
		if _, err := fmt.Fprintln(w, sc.Text()); err != nil {
			return err
		}
	}
	return sc.Err()
}
