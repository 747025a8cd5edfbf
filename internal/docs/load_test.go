package docs

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/klauspost/compress/zstd"
)

const sampleJSON = `{
  "classes": {
    "subcategories": {
      "Players": {
        "subcategories": {
          "GetPlayers": {
            "name": "Players:GetPlayers",
            "description": "Returns all players.",
            "parameters": [{"name": "recursive", "type": "bool"}],
            "returns": [{"type": {"array": {"name": "Player", "path": "classes/Player"}}}],
            "realm": "shared"
          }
        }
      }
    }
  },
  "globals": {
    "subcategories": {
      "tostring": {
        "name": "tostring",
        "parameters": [{"name": "value", "type": ["string", "number", {"array": "any"}]}],
        "internal": true
      }
    }
  }
}`

const sampleYAML = `
classes:
  subcategories:
    Players:
      subcategories:
        GetPlayers:
          name: "Players:GetPlayers"
          parameters:
            - name: recursive
              type: bool
          returns:
            - type:
                array:
                  name: Player
                  path: classes/Player
          realm: shared
globals:
  subcategories:
    tostring:
      name: tostring
      parameters:
        - name: value
          type: [string, number, {array: any}]
      internal: true
`

func assertSample(t *testing.T, p Project) {
	t.Helper()

	it, ok := p.Select("classes", "Players", "GetPlayers")
	if !ok {
		t.Fatal("GetPlayers not found")
	}
	if it.Name != "Players:GetPlayers" || it.Realm != "shared" {
		t.Errorf("item = %+v", it)
	}
	if got := PlainSignature(ParamSignature(it.Parameters)); got != "bool recursive" {
		t.Errorf("params = %q", got)
	}
	if got := PlainSignature(ReturnSignature(it.Returns)); got != "Player[]" {
		t.Errorf("returns = %q", got)
	}
	if it.Returns[0].Type.Array.Path != "classes/Player" {
		t.Errorf("return path lost: %+v", it.Returns[0].Type)
	}

	ts, ok := p.Select("globals", "tostring", "")
	if !ok {
		t.Fatal("tostring not found")
	}
	if !ts.Internal {
		t.Error("expected internal flag")
	}
	if got := FormatType(ts.Parameters[0].Type); got != "string | number | any[]" {
		t.Errorf("union = %q", got)
	}
}

func TestDecodeProject_JSON(t *testing.T) {
	t.Parallel()

	p, err := DecodeProject([]byte(sampleJSON), "docs.json")
	if err != nil {
		t.Fatal(err)
	}
	assertSample(t, p)
}

func TestDecodeProject_YAML(t *testing.T) {
	t.Parallel()

	for _, name := range []string{"docs.yaml", "docs.YML"} {
		p, err := DecodeProject([]byte(sampleYAML), name)
		if err != nil {
			t.Fatalf("%s: %v", name, err)
		}
		assertSample(t, p)
	}
}

func TestDecodeProject_Zstd(t *testing.T) {
	t.Parallel()

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		t.Fatal(err)
	}
	compressed := enc.EncodeAll([]byte(sampleJSON), nil)
	enc.Close()

	p, err := DecodeProject(compressed, "docs.json.zst")
	if err != nil {
		t.Fatal(err)
	}
	assertSample(t, p)
}

func TestDecodeProject_Unsupported(t *testing.T) {
	t.Parallel()

	_, err := DecodeProject([]byte("{}"), "docs.txt")
	if !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("expected ErrUnsupportedFormat, got %v", err)
	}
}

func TestDecodeProject_Empty(t *testing.T) {
	t.Parallel()

	p, err := DecodeProject([]byte("null"), "docs.json")
	if err != nil {
		t.Fatal(err)
	}
	if p == nil {
		t.Error("expected non-nil empty project")
	}
	if _, ok := p.Select("a", "b", ""); ok {
		t.Error("empty project should not resolve")
	}
}

func TestLoadProject_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "docs.json")
	if err := os.WriteFile(path, []byte(sampleJSON), 0644); err != nil {
		t.Fatal(err)
	}
	p, err := LoadProject(context.Background(), path)
	if err != nil {
		t.Fatal(err)
	}
	assertSample(t, p)
}

func TestLoadProject_MissingFile(t *testing.T) {
	t.Parallel()

	_, err := LoadProject(context.Background(), filepath.Join(t.TempDir(), "nope.json"))
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}

func TestLoadProject_HTTP(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("User-Agent") != UserAgent {
			t.Errorf("user agent = %q", r.Header.Get("User-Agent"))
		}
		switch r.URL.Path {
		case "/docs.yaml":
			w.Write([]byte(sampleYAML))
		default:
			http.Error(w, "gone", http.StatusNotFound)
		}
	}))
	defer srv.Close()

	p, err := LoadProject(context.Background(), srv.URL+"/docs.yaml")
	if err != nil {
		t.Fatal(err)
	}
	assertSample(t, p)

	if _, err := LoadProject(context.Background(), srv.URL+"/missing.json"); err == nil {
		t.Error("expected error for 404")
	}
}

func TestSaveProject_RoundTrip(t *testing.T) {
	t.Parallel()

	src, err := DecodeProject([]byte(sampleJSON), "docs.json")
	if err != nil {
		t.Fatal(err)
	}

	dst := filepath.Join(t.TempDir(), "docs.json.zst")
	if err := SaveProject(src, dst); err != nil {
		t.Fatal(err)
	}

	p, err := LoadProject(context.Background(), dst)
	if err != nil {
		t.Fatal(err)
	}
	assertSample(t, p)
}
