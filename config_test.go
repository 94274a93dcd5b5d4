package slotpass

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromEnv(t *testing.T) {
	t.Setenv("SLOTPASS_VALUE", "544387104597")
	t.Setenv("SLOTPASS_SALT", "0x689a28f4")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Equal(t, "544387104597", cfg.Value)
	assert.Equal(t, "0x689a28f4", cfg.Salt)
}

func TestFromEnvUnset(t *testing.T) {
	t.Setenv("SLOTPASS_VALUE", "")
	t.Setenv("SLOTPASS_SALT", "")

	cfg, err := FromEnv()
	require.NoError(t, err)
	assert.Empty(t, cfg.Value)
	assert.Empty(t, cfg.Salt)
}

func writeClaimFile(t *testing.T, contents string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "claim.yaml")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0600))
	return path
}

func TestLoadClaimFile(t *testing.T) {
	path := writeClaimFile(t, "value: \"544387104597\"\nsalt: \"1754933492\"\n")

	cfg, err := LoadClaimFile(path)
	require.NoError(t, err)
	assert.Equal(t, "544387104597", cfg.Value)
	assert.Equal(t, "1754933492", cfg.Salt)
}

func TestLoadClaimFileMissing(t *testing.T) {
	_, err := LoadClaimFile(filepath.Join(t.TempDir(), "absent.yaml"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "open claim file")
}

func TestLoadClaimFileUnknownKey(t *testing.T) {
	path := writeClaimFile(t, "value: \"1\"\nsalt: \"2\"\nhidden: true\n")

	_, err := LoadClaimFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decode claim file")
}

func TestLoadClaimFileMalformed(t *testing.T) {
	path := writeClaimFile(t, "value: [oops\n")

	_, err := LoadClaimFile(path)
	require.Error(t, err)
}
