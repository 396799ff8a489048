package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSONFile_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "reminders.json")
	f := NewJSONFile(path)

	want := map[string]Subscriber{
		"821102915325526046": {Subscribed: true},
		"123":                {Subscribed: true, Streak: 3},
	}
	require.NoError(t, f.Save(want))

	got, err := f.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestJSONFile_Format(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.json")
	require.NoError(t, NewJSONFile(path).Save(map[string]Subscriber{"1": {Subscribed: true}}))

	raw, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.JSONEq(t, `{"1": {"subscribed": true}}`, string(raw))
}

func TestJSONFile_Load(t *testing.T) {
	t.Run("should return empty mapping when file is missing", func(t *testing.T) {
		got, err := NewJSONFile(filepath.Join(t.TempDir(), "missing.json")).Load()

		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("should fail on corrupt file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "bad.json")
		require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

		_, err := NewJSONFile(path).Load()
		require.Error(t, err)
	})

	t.Run("should read the legacy format", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "legacy.json")
		require.NoError(t, os.WriteFile(path, []byte(`{"55": {"subscribed": true}}`), 0o644))

		got, err := NewJSONFile(path).Load()
		require.NoError(t, err)
		assert.Equal(t, map[string]Subscriber{"55": {Subscribed: true}}, got)
	})
}

func TestStore_CorruptFileRecovers(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reminders.json")
	require.NoError(t, os.WriteFile(path, []byte("[]garbage"), 0o644))

	s := NewStore(NewJSONFile(path))
	assert.Equal(t, 0, s.Len())

	s.Toggle("9")

	reloaded := NewStore(NewJSONFile(path))
	assert.True(t, reloaded.IsSubscribed("9"))
}
