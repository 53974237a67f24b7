package charset

import (
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/sungodmoth/glyfi/core/ucd"
)

func TestParseCharset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	ranges, err := parseCharset("20-7e a0-ff 131 134-137\n")
	if err != nil {
		t.Fatal(err)
	}
	assert.Equal(t, ucd.RuneRanges{
		{Lo: 0x20, Hi: 0x7E}, {Lo: 0xA0, Hi: 0xFF}, {Lo: 0x131, Hi: 0x131}, {Lo: 0x134, Hi: 0x137},
	}, ranges)
	assert.True(t, ranges.Contains('a'))
	assert.False(t, ranges.Contains(0x130))
}

func TestParseCharsetEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	ranges, err := parseCharset("  \n")
	assert.NoError(t, err)
	assert.Empty(t, ranges)
}

func TestParseCharsetMalformed(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	_, err := parseCharset("20-7e xx")
	assert.Error(t, err)
	_, err = parseCharset("20-")
	assert.Error(t, err)
}

func TestBuiltinCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	ranges, ok := Builtin("STIXTwoText")
	assert.True(t, ok)
	assert.True(t, ranges.Contains('A'))
	assert.True(t, ranges.Contains('Ω'), "Greek is in the STIX table")
	assert.True(t, ranges.Contains(0x0301), "combining marks are covered")
	assert.False(t, ranges.Contains(0x4E00), "no CJK in STIX Two Text")
	//
	_, ok = Builtin("Helvetica")
	assert.False(t, ok)
}
