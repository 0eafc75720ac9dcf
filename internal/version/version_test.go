package version

import (
	"encoding/json"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInfo(t *testing.T) {
	info := Info()
	assert.Equal(t, Module, info.Module)
	assert.Equal(t, Version, info.Version)
	assert.Equal(t, runtime.Version(), info.GoVersion)
	assert.Equal(t, runtime.GOOS+"/"+runtime.GOARCH, info.Platform)
}

func TestVersionInfo_String(t *testing.T) {
	info := VersionInfo{Version: "1.2.0", GitCommit: "abc123", BuildTime: "2025-06-01T10:00:00Z"}
	assert.Equal(t, "vtable 1.2.0 (commit abc123, built 2025-06-01T10:00:00Z)", info.String())
}

func TestVersionInfo_JSON(t *testing.T) {
	out, err := json.Marshal(Info())
	require.NoError(t, err)

	var fields map[string]string
	require.NoError(t, json.Unmarshal(out, &fields))
	for _, key := range []string{"module", "version", "git_commit", "build_time", "go_version", "platform"} {
		assert.Contains(t, fields, key)
	}
	assert.Equal(t, "github.com/ryanrauch/restaurant-ai-landing", fields["module"])
}
