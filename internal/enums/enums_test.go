package enums

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStdFlagMapCoversKnownSpellings(t *testing.T) {
	cases := map[string]Std{
		"-std=c89":     StdC89,
		"-std=c++17":   StdCxx17,
		"-std=gnu++2a": StdGnuxx2a,
	}
	for flag, want := range cases {
		assert.Equal(t, want, StdFlagMap[flag], flag)
	}
}

func TestStdLangPredicates(t *testing.T) {
	assert.True(t, StdC99.IsCStd())
	assert.False(t, StdC99.IsCxxStd())
	assert.True(t, StdCxx17.IsCxxStd())
	assert.Equal(t, LangC, StdGnu11.Lang())
	assert.Equal(t, LangCxx, StdGnuxx17.Lang())
	assert.Equal(t, LangUnknown, StdUnknown.Lang())
}

func TestClassifyOpt(t *testing.T) {
	lvl, ok := ClassifyOpt("-O2")
	assert.True(t, ok)
	assert.Equal(t, OptO2, lvl)

	lvl, ok = ClassifyOpt("-O17")
	assert.True(t, ok)
	assert.Equal(t, OptO3, lvl)

	lvl, ok = ClassifyOpt("-Oweird")
	assert.True(t, ok)
	assert.Equal(t, OptUnknown, lvl)

	_, ok = ClassifyOpt("-c")
	assert.False(t, ok)
}

func TestOptLevelPredicates(t *testing.T) {
	assert.True(t, OptOSize.ForSize())
	assert.True(t, OptO3.ForPerformance())
	assert.True(t, OptO0.ForDebug())
	assert.False(t, OptO2.ForDebug())
}

func TestClassifyOutputSuffix(t *testing.T) {
	assert.Equal(t, OutputObject, ClassifyOutput("main.o"))
	assert.Equal(t, OutputStaticLibrary, ClassifyOutput("libfoo.a"))
}

func TestClassifyOutputPattern(t *testing.T) {
	assert.Equal(t, OutputSharedLibrary, ClassifyOutput("libssl.so.1.1"))
	assert.Equal(t, OutputSharedLibrary, ClassifyOutput("libc.so.6"))
	assert.Equal(t, OutputUnknown, ClassifyOutput("README"))
}

func TestClassifyInput(t *testing.T) {
	assert.Equal(t, InputCSource, ClassifyInput("main.c"))
	assert.Equal(t, InputCxxSource, ClassifyInput("main.cpp"))
	assert.Equal(t, InputUnknown, ClassifyInput("main"))
}

func TestWrappedEnvVar(t *testing.T) {
	assert.Equal(t, "BLIGHT_WRAPPED_CC", WrappedEnvVar(CC))
	assert.Equal(t, "BLIGHT_WRAPPED_INSTALL", WrappedEnvVar(INSTALL))
}

func TestShimBasenamesIncludesAliases(t *testing.T) {
	assert.Equal(t, CC, ShimBasenames["blight-cc"])
	assert.Equal(t, CC, ShimBasenames["clang-14"])
	assert.Equal(t, CXX, ShimBasenames["clang++-14"])
	assert.Equal(t, LD, ShimBasenames["gold"])
}

func TestSupportsResponseFiles(t *testing.T) {
	assert.True(t, CC.SupportsResponseFiles())
	assert.False(t, INSTALL.SupportsResponseFiles())
}
