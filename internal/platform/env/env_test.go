package env

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadFiles_DoesNotOverrideExistingEnv(t *testing.T) {
	tmp := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env"), []byte("DB_DSN=postgres://file@localhost/greatreads\nGREATREADS_FROM_FILE=yes\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(tmp, ".env.local"), []byte("GREATREADS_FROM_FILE=local\n"), 0644))

	t.Setenv("DB_DSN", "from_env")
	t.Setenv("GREATREADS_FROM_FILE", "")
	require.NoError(t, os.Unsetenv("GREATREADS_FROM_FILE"))

	cwd, _ := os.Getwd()
	require.NoError(t, os.Chdir(tmp))
	t.Cleanup(func() { _ = os.Chdir(cwd) })

	LoadFiles()

	assert.Equal(t, "from_env", os.Getenv("DB_DSN"))
	assert.Equal(t, "yes", os.Getenv("GREATREADS_FROM_FILE"), ".env is read before .env.local")
}

func TestGet(t *testing.T) {
	t.Setenv("GREATREADS_TEST_VALUE", "")
	assert.Equal(t, "fallback", Get("GREATREADS_TEST_VALUE", "fallback"))

	t.Setenv("GREATREADS_TEST_VALUE", "set")
	assert.Equal(t, "set", Get("GREATREADS_TEST_VALUE", "fallback"))
}

func TestInt(t *testing.T) {
	t.Setenv("GREATREADS_TEST_INT", "")
	n, err := Int("GREATREADS_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("GREATREADS_TEST_INT", "-3")
	n, err = Int("GREATREADS_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, -3, n)

	t.Setenv("GREATREADS_TEST_INT", "fast")
	_, err = Int("GREATREADS_TEST_INT", 7)
	assert.ErrorContains(t, err, "GREATREADS_TEST_INT")
}
