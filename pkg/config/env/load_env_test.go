package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDotEnv_FromEnvPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("HTB_TEST_VALUE=from-file\n"), 0o600))
	t.Setenv("ENV_PATH", path)
	t.Cleanup(func() { _ = os.Unsetenv("HTB_TEST_VALUE") })

	require.NoError(t, LoadDotEnv("local", "missing.env"))
	assert.Equal(t, "from-file", os.Getenv("HTB_TEST_VALUE"))
}

func TestLoadDotEnv_MissingFile(t *testing.T) {
	t.Setenv("ENV_PATH", filepath.Join(t.TempDir(), "nope.env"))

	assert.Error(t, LoadDotEnv("local", ""))
	assert.NoError(t, LoadDotEnv("production", ""))
}

func TestHelpers(t *testing.T) {
	t.Setenv("HTB_STRING", "  value ")
	t.Setenv("HTB_LIST", "a, b,,c")
	t.Setenv("HTB_INT", "12")
	t.Setenv("HTB_BAD_INT", "x")
	t.Setenv("HTB_DURATION", "3s")

	assert.Equal(t, "value", String("HTB_STRING", "def"))
	assert.Equal(t, "def", String("HTB_UNSET", "def"))
	assert.Equal(t, []string{"a", "b", "c"}, List("HTB_LIST"))
	assert.Nil(t, List("HTB_UNSET"))

	n, err := Int("HTB_INT", 1)
	require.NoError(t, err)
	assert.Equal(t, 12, n)

	_, err = Int("HTB_BAD_INT", 1)
	assert.Error(t, err)

	d, err := Duration("HTB_DURATION", time.Second)
	require.NoError(t, err)
	assert.Equal(t, 3*time.Second, d)

	d, err = Duration("HTB_UNSET", time.Second)
	require.NoError(t, err)
	assert.Equal(t, time.Second, d)
}
