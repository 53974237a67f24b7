package font

import (
	"testing"

	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/sungodmoth/glyfi/core"
	"github.com/sungodmoth/glyfi/core/percent"
	"github.com/sungodmoth/glyfi/core/ucd"
)

func TestParseTable(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	data := []byte(`{"fonts": [
		{"name": "STIXTwoText"},
		{"name": "NotoSansMath", "excludes": ["2190-21FF", "27C0-27EF"], "size_percentage": 85},
		{"name": "HanaMinA", "supports_styles": true, "vertical": true, "load_as": "\\hanamin "}
	]}`)
	table, err := ParseTable(data)
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, table, 3, "table keeps file order") {
		assert.Equal(t, "STIXTwoText", table[0].Name)
		assert.False(t, table[0].Scale.IsSet())
		assert.Equal(t, ucd.RuneRanges{{Lo: 0x2190, Hi: 0x21FF}, {Lo: 0x27C0, Hi: 0x27EF}}, table[1].Excludes)
		assert.Equal(t, percent.Percent(85), table[1].Scale)
		assert.True(t, table[2].SupportsStyles)
		assert.True(t, table[2].Vertical)
		assert.Equal(t, `\hanamin `, table[2].LoadAs)
	}
}

func TestParseTableRejectsBadInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	for _, data := range []string{
		`{"fonts": [{"name": ""}]}`,
		`{"fonts": [{"name": "X", "excludes": ["300"]}]}`,    // no dash
		`{"fonts": [{"name": "X", "excludes": ["30g-40f"]}]}`, // not hex
		`{"fonts": [`,
	} {
		_, err := ParseTable([]byte(data))
		if assert.Error(t, err, "input %s", data) {
			assert.Equal(t, core.EINVALID, core.Code(err))
		}
	}
}

func TestMatchIsOrderDependent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	table := Table{
		{Name: "First", Ranges: ucd.RuneRanges{{Lo: 'a', Hi: 'z'}}},
		{Name: "Second", Ranges: ucd.RuneRanges{{Lo: 'a', Hi: 'z'}}},
	}
	if font := table.Match("ab"); assert.NotNil(t, font) {
		assert.Equal(t, "First", font.Name, "earlier font wins")
	}
	// an exclusion on the first font flips the choice
	table[0].Excludes = ucd.RuneRanges{{Lo: 'a', Hi: 'b'}}
	if font := table.Match("ab"); assert.NotNil(t, font) {
		assert.Equal(t, "Second", font.Name, "exclusions override inclusions")
	}
}

func TestMatchNeedsFullCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	latin := Descriptor{Name: "LatinOnly", Ranges: ucd.RuneRanges{{Lo: 0x41, Hi: 0x7A}}}
	wide := Descriptor{Name: "Wide", Ranges: ucd.RuneRanges{{Lo: 0x20, Hi: 0x2FFF}}}
	table := Table{latin, wide}
	if font := table.Match("ab"); assert.NotNil(t, font) {
		assert.Equal(t, "LatinOnly", font.Name)
	}
	if font := table.Match("aµb"); assert.NotNil(t, font) {
		assert.Equal(t, "Wide", font.Name, "one uncovered rune rejects the font")
	}
	assert.Nil(t, Table{latin}.Match("aµb"), "nil means: leave it to the typesetter")
}

func TestLoadTableResolvesBuiltinCoverage(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	conf := testconfig.Conf{}
	table, err := LoadTable(conf, "testdata/fontdata.json")
	if err != nil {
		t.Fatal(err)
	}
	if assert.Len(t, table, 1) {
		assert.Equal(t, "STIXTwoText", table[0].Name)
		assert.True(t, table[0].Ranges.Contains('A'), "builtin STIX table resolved")
	}
}

func TestLoadTableMissingFile(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.fonts")
	defer teardown()
	//
	_, err := LoadTable(testconfig.Conf{}, "testdata/absent.json")
	assert.Error(t, err)
	assert.Equal(t, core.EMISSING, core.Code(err))
}
