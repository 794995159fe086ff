package action

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trailofbits/blight/internal/enums"
	"github.com/trailofbits/blight/internal/tool"
)

func TestMaskForAndApplies(t *testing.T) {
	b := Base{ActionName: "x", Mask: MaskCompilerTool}
	assert.True(t, b.Applies(enums.CC))
	assert.True(t, b.Applies(enums.CXX))
	assert.False(t, b.Applies(enums.LD))
}

func TestMaskAllCoversEveryKind(t *testing.T) {
	for _, k := range []enums.ToolKind{enums.CC, enums.CXX, enums.CPP, enums.LD, enums.AS, enums.AR, enums.STRIP, enums.INSTALL} {
		assert.NotZero(t, MaskAll&MaskFor(k))
	}
}

func TestParseConfigQuoting(t *testing.T) {
	config, err := ParseConfig(`CFLAGS="-DFOO -DBAR" store=/tmp/store`)
	require.NoError(t, err)
	assert.Equal(t, "-DFOO -DBAR", config["CFLAGS"])
	assert.Equal(t, "/tmp/store", config["store"])
}

func TestParseConfigBooleanFlag(t *testing.T) {
	config, err := ParseConfig("append_hash")
	require.NoError(t, err)
	v, ok := config["append_hash"]
	assert.True(t, ok)
	assert.Equal(t, "", v)
}

type stubAction struct {
	Base
	skip bool
}

func (s *stubAction) BeforeRun(tool.Instance) error {
	if s.skip {
		return ErrSkipRun
	}
	return nil
}

func TestLoadOrdersAndDedupes(t *testing.T) {
	Register("test_stub_a", func(map[string]string) (Action, error) {
		return &stubAction{Base: Base{ActionName: "test_stub_a", Mask: MaskAll}}, nil
	})
	Register("test_stub_b", func(map[string]string) (Action, error) {
		return &stubAction{Base: Base{ActionName: "test_stub_b", Mask: MaskAll}}, nil
	})

	environ := []string{"BLIGHT_ACTIONS=test_stub_a:test_stub_b:test_stub_a"}
	acts, err := Load(environ)
	require.NoError(t, err)
	require.Len(t, acts, 2)
	assert.Equal(t, "test_stub_a", acts[0].Name())
	assert.Equal(t, "test_stub_b", acts[1].Name())
}

func TestLoadUnknownAction(t *testing.T) {
	_, err := Load([]string{"BLIGHT_ACTIONS=does_not_exist"})
	assert.Error(t, err)
}

func TestSkipRunIsDetectableWithErrorsIs(t *testing.T) {
	a := &stubAction{Base: Base{ActionName: "x", Mask: MaskAll}, skip: true}
	err := a.BeforeRun(nil)
	assert.True(t, errors.Is(err, ErrSkipRun))
}
