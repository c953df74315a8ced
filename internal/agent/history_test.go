package agent

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLastActiveByProject(t *testing.T) {
	path := filepath.Join(t.TempDir(), "history.jsonl")
	lines := `{"timestamp":1700000000000,"project":"/a"}
not json
{"timestamp":1700000005000,"project":"/a"}
{"timestamp":1600000000000,"project":"/a"}
{"timestamp":0,"project":"/b"}
{"timestamp":1700000001000,"project":""}
{"timestamp":1700000002000,"project":"/c"}
`
	require.NoError(t, os.WriteFile(path, []byte(lines), 0o644))

	got := LastActiveByProject(path)
	assert.Equal(t, map[string]time.Time{
		"/a": time.UnixMilli(1700000005000),
		"/c": time.UnixMilli(1700000002000),
	}, got)
}

func TestLastActiveByProjectMissing(t *testing.T) {
	assert.Nil(t, LastActiveByProject(""))
	assert.Nil(t, LastActiveByProject(filepath.Join(t.TempDir(), "missing.jsonl")))
}

func TestLastActiveByProjectCacheKeyedByPath(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "one.jsonl")
	second := filepath.Join(dir, "two.jsonl")
	require.NoError(t, os.WriteFile(first, []byte(`{"timestamp":1,"project":"/one"}`+"\n"), 0o644))
	require.NoError(t, os.WriteFile(second, []byte(`{"timestamp":2,"project":"/two"}`+"\n"), 0o644))
	mtime := time.Now().Add(-time.Hour)
	require.NoError(t, os.Chtimes(first, mtime, mtime))
	require.NoError(t, os.Chtimes(second, mtime, mtime))

	assert.Contains(t, LastActiveByProject(first), "/one")
	assert.Contains(t, LastActiveByProject(second), "/two")
	assert.NotContains(t, LastActiveByProject(second), "/one")
}
