package runner

import (
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildSwizzledEnvPrependsPATH(t *testing.T) {
	env := BuildSwizzledEnv("/swizzle/dir")

	sep := ":"
	if runtime.GOOS == "windows" {
		sep = ";"
	}

	var pathVal string
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=") {
			pathVal = strings.TrimPrefix(e, "PATH=")
			break
		}
	}
	require.NotEmpty(t, pathVal)
	assert.True(t, strings.HasPrefix(pathVal, "/swizzle/dir"+sep))
}

func TestBuildSwizzledEnvMissingPATH(t *testing.T) {
	t.Setenv("PATH", "")
	env := BuildSwizzledEnv("/swizzle/dir")
	found := false
	for _, e := range env {
		if strings.HasPrefix(e, "PATH=/swizzle/dir") {
			found = true
		}
	}
	assert.True(t, found)
}

func TestSanitizeEnvStripsSwizzleDirFromPATH(t *testing.T) {
	env := []string{"PATH=/swizzle-abc@blight-swizzle@:/usr/bin", "OTHER=unchanged"}
	out := sanitizeEnv(env)
	assert.Equal(t, "PATH=/usr/bin", out[0])
	assert.Equal(t, "OTHER=unchanged", out[1])
}

func TestSplitEnvVar(t *testing.T) {
	key, val, ok := splitEnvVar("FOO=bar")
	assert.True(t, ok)
	assert.Equal(t, "FOO", key)
	assert.Equal(t, "bar", val)

	key, val, ok = splitEnvVar("FOO=bar=baz")
	assert.True(t, ok)
	assert.Equal(t, "FOO", key)
	assert.Equal(t, "bar=baz", val)

	_, _, ok = splitEnvVar("NOEQUALSSIGN")
	assert.False(t, ok)
}
