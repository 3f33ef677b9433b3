package cli

import (
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVersionCmd_Metadata(t *testing.T) {
	assert.Equal(t, "version", versionCmd.Use)
	assert.NotNil(t, versionCmd.Flags().Lookup("short"))
}

func TestVersionCmd_IncludesPlatform(t *testing.T) {
	setupTestServices(t)
	original := version
	SetVersion("dev")
	defer func() { version = original }()

	out, err := executeCommand("version")
	require.NoError(t, err)
	assert.Contains(t, out, "wppm version dev")
	assert.Contains(t, out, runtime.GOOS+"/"+runtime.GOARCH)
}
