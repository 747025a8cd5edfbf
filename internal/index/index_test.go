package index

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jcdickinson/apidocs/internal/docs"
)

func testProject() docs.Project {
	return docs.Project{
		"classes": {
			Subcategories: map[string]*docs.Node{
				"Player": {
					Item: docs.Item{Name: "Player", Description: "A connected player.\n\nMore detail here."},
					Subcategories: map[string]*docs.Node{
						"Kick": {Item: docs.Item{
							Name:        "Player:Kick",
							Description: "Kicks the player from the server.",
							Parameters:  []docs.Parameter{{Name: "reason", Type: docs.Named("string")}},
							Realm:       "server",
						}},
					},
				},
				"Players": {
					Subcategories: map[string]*docs.Node{
						"GetPlayers": {Item: docs.Item{
							Name:       "Players:GetPlayers",
							Parameters: []docs.Parameter{{Name: "recursive", Type: docs.Named("bool")}},
							Returns:    []docs.ReturnType{{Type: docs.Named("Array")}},
						}},
					},
				},
			},
		},
		"globals": {
			Subcategories: map[string]*docs.Node{
				"kick": {Item: docs.Item{Name: "kick", Description: "Global kick helper."}},
			},
		},
	}
}

func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New("")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	n, err := db.Build(context.Background(), testProject())
	require.NoError(t, err)
	require.Equal(t, 4, n)
	return db
}

func TestBuild_Count(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	n, err := db.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)

	// Rebuilding replaces rather than appends.
	_, err = db.Build(context.Background(), testProject())
	require.NoError(t, err)
	n, err = db.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSearch_Ranking(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	results, err := db.Search(context.Background(), "KICK", 0)
	require.NoError(t, err)
	require.Len(t, results, 2)

	// Both display names equal "kick"; methods rank before functions.
	assert.Equal(t, "classes/Player/Kick", results[0].Path)
	assert.True(t, results[0].IsMethod)
	assert.Equal(t, "Player:Kick(string reason)", results[0].Signature)
	assert.Equal(t, "server", results[0].Realm)
	assert.Equal(t, "globals/kick", results[1].Path)
	assert.False(t, results[1].IsMethod)
}

func TestSearch_Summary(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	results, err := db.Search(context.Background(), "connected", 10)
	require.NoError(t, err)
	require.Len(t, results, 1)
	assert.Equal(t, "classes/Player", results[0].Path)
	assert.Equal(t, "A connected player.", results[0].Summary)
}

func TestSearch_LimitAndEmpty(t *testing.T) {
	t.Parallel()
	db := newTestDB(t)

	results, err := db.Search(context.Background(), "player", 1)
	require.NoError(t, err)
	assert.Len(t, results, 1)

	results, err = db.Search(context.Background(), "   ", 5)
	require.NoError(t, err)
	assert.Empty(t, results)

	results, err = db.Search(context.Background(), "zzz-no-match", 5)
	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestNew_File(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "index.duckdb")
	db, err := New(path)
	require.NoError(t, err)
	_, err = db.Build(context.Background(), testProject())
	require.NoError(t, err)
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	defer db.Close()
	n, err := db.Count(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}

func TestSummary(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"first_paragraph", "One.\n\nTwo.", "One."},
		{"collapses_whitespace", "  a\n b\tc  ", "a b c"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Summary(tt.in))
		})
	}

	long := Summary(strings.Repeat("word ", 100))
	assert.True(t, strings.HasSuffix(long, "…"))
	assert.LessOrEqual(t, len([]rune(long)), summaryLen+1)
}
