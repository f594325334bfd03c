package env

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestInitReadsEnvFile(t *testing.T) {
	dir := t.TempDir()
	content := "MONGO_URI=mongodb://db:27017\nREDIS_DB=3\nSESSION_TTL=90m\nREQUEST_TIMEOUT=bogus\nDRAIN_MODE=true\n"
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".env"), []byte(content), 0o600))

	for _, key := range []string{"MONGO_URI", "REDIS_DB", "SESSION_TTL", "REQUEST_TIMEOUT", "DRAIN_MODE", "MONGO_DATABASE"} {
		t.Setenv(key, "")
	}

	Init(dir, "1.2.3")

	require.Equal(t, "mongodb://db:27017", MONGO_URI)
	require.Equal(t, "admindash", MONGO_DATABASE)
	require.Equal(t, 3, REDIS_DB)
	require.Equal(t, 90*time.Minute, SESSION_TTL)
	require.Equal(t, defaultRequestTimeout, REQUEST_TIMEOUT)
	require.True(t, DRAIN_MODE)
	require.Equal(t, "1.2.3", VERSION)
}

func TestInitWithoutEnvFile(t *testing.T) {
	t.Setenv("SESSION_TTL", "")

	Init(t.TempDir(), "")

	require.Equal(t, defaultSessionTTL, SESSION_TTL)
	require.NotEmpty(t, VERSION)
}
