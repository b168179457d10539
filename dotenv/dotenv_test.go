package dotenv_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/fwojciec/chat/dotenv"
	"github.com/joho/godotenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const key = "ANTHROPIC_API_KEY"

func TestStore_GetMissingFile(t *testing.T) {
	t.Parallel()

	s := dotenv.NewStore(filepath.Join(t.TempDir(), ".env"), key)
	v, ok, err := s.Get()
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Empty(t, v)
}

func TestStore_GetExisting(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER=1\nANTHROPIC_API_KEY=sk-ant-123\n"), 0o600))

	v, ok, err := dotenv.NewStore(path, key).Get()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sk-ant-123", v)
}

func TestStore_GetMissingKey(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER=1\nANTHROPIC_API_KEY=\n"), 0o600))

	_, ok, err := dotenv.NewStore(path, key).Get()
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestStore_SetRoundTrip(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", "chat", ".env")
	s := dotenv.NewStore(path, key)
	require.NoError(t, s.Set("sk-ant-secret"))

	v, ok, err := s.Get()
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "sk-ant-secret", v)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "ANTHROPIC_API_KEY=\"sk-ant-secret\"\n", string(data))
}

func TestStore_SetPermissions(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	path := filepath.Join(dir, "chat", ".env")
	require.NoError(t, dotenv.NewStore(path, key).Set("k"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	dirInfo, err := os.Stat(filepath.Dir(path))
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o700), dirInfo.Mode().Perm()&0o700)
}

func TestStore_SetTightensExistingFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("OTHER=keep\n"), 0o644))

	require.NoError(t, dotenv.NewStore(path, key).Set("new"))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	env, err := godotenv.Read(path)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"OTHER": "keep", key: "new"}, env)
}

func TestStore_SetLeavesNoTempFiles(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	require.NoError(t, dotenv.NewStore(filepath.Join(dir, ".env"), key).Set("k"))

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1)
	assert.Equal(t, ".env", entries[0].Name())
}

func TestStore_Path(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "/x/.env", dotenv.NewStore("/x/.env", key).Path())
}
