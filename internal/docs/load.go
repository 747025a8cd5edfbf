package docs

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"strings"
	"time"

	"github.com/klauspost/compress/zstd"
	"gopkg.in/yaml.v3"
)

// UserAgent is sent when fetching a remote tree.
const UserAgent = "apidocs/0.1.0"

// ErrUnsupportedFormat is returned for tree sources whose suffix isn't one
// of .json, .yaml or .yml (each optionally followed by .zst).
var ErrUnsupportedFormat = errors.New("unsupported documentation tree format")

var httpClient = &http.Client{Timeout: 60 * time.Second}

// LoadProject reads the documentation tree from a file path or an http(s)
// URL. The format is picked from the source's suffix.
func LoadProject(ctx context.Context, source string) (Project, error) {
	name := source
	if u, err := url.Parse(source); err == nil && (u.Scheme == "http" || u.Scheme == "https") {
		name = u.Path
	}

	var (
		data []byte
		err  error
	)
	if name != source {
		data, err = fetchTree(ctx, source)
	} else {
		data, err = os.ReadFile(source)
	}
	if err != nil {
		return nil, err
	}

	return DecodeProject(data, path.Base(name))
}

// DecodeProject decodes tree bytes according to the file name's suffix.
func DecodeProject(data []byte, name string) (Project, error) {
	name = strings.ToLower(name)
	if strings.HasSuffix(name, ".zst") {
		decompressed, err := decompress(data)
		if err != nil {
			return nil, err
		}
		data = decompressed
		name = strings.TrimSuffix(name, ".zst")
	}

	var project Project
	switch {
	case strings.HasSuffix(name, ".json"):
		if err := json.Unmarshal(data, &project); err != nil {
			return nil, fmt.Errorf("unmarshaling documentation JSON: %w", err)
		}
	case strings.HasSuffix(name, ".yaml"), strings.HasSuffix(name, ".yml"):
		if err := yaml.Unmarshal(data, &project); err != nil {
			return nil, fmt.Errorf("unmarshaling documentation YAML: %w", err)
		}
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedFormat, name)
	}

	if project == nil {
		project = Project{}
	}
	return project, nil
}

func fetchTree(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, "GET", rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("User-Agent", UserAgent)

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching %s: %w", rawURL, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 1024))
		return nil, fmt.Errorf("%s returned %d: %s", rawURL, resp.StatusCode, string(body))
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", rawURL, err)
	}
	return data, nil
}

func decompress(data []byte) ([]byte, error) {
	decoder, err := zstd.NewReader(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("creating zstd decoder: %w", err)
	}
	defer decoder.Close()

	out, err := io.ReadAll(decoder)
	if err != nil {
		return nil, fmt.Errorf("decompressing documentation tree: %w", err)
	}
	return out, nil
}

// SaveProject writes the project as zstd-compressed JSON. The output can be
// read back with LoadProject from a path ending in ".json.zst".
func SaveProject(p Project, dst string) error {
	f, err := os.Create(dst)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dst, err)
	}
	defer f.Close()

	w, err := zstd.NewWriter(f)
	if err != nil {
		return fmt.Errorf("creating zstd writer: %w", err)
	}

	if err := json.NewEncoder(w).Encode(p); err != nil {
		w.Close()
		return fmt.Errorf("writing compressed tree: %w", err)
	}
	if err := w.Close(); err != nil {
		return fmt.Errorf("closing zstd writer: %w", err)
	}
	return nil
}
