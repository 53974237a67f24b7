package scriptrun

import (
	"strings"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/sungodmoth/glyfi/core/ucd"
)

// A small synthetic script table. Unlike the published Unicode data it
// tags U+0301 as Common, so that the combining-mark transparency case is
// exercised without dragging the full Scripts.txt into the test.
const testScripts = `
# Synthetic script data for segmentation tests.

0020..0040    ; Common # includes space, digits, ( )
005B..0060    ; Common # includes [ \ ] _
007B..007E    ; Common # includes { | }
00B7          ; Common # MIDDLE DOT
0301          ; Common # COMBINING ACUTE ACCENT

0041..005A    ; Latin
0061..007A    ; Latin

0370..03FF    ; Greek
0400..04FF    ; Cyrillic
`

func testTable(t *testing.T) *ucd.ScriptTable {
	table, err := ucd.ParseScripts(strings.NewReader(testScripts))
	if err != nil {
		t.Fatal(err)
	}
	return table
}

func texts(runs []Run) []string {
	ts := make([]string, len(runs))
	for i, run := range runs {
		ts[i] = run.Text
	}
	return ts
}

func TestSegmentEmpty(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	assert.Empty(t, Segment("", testTable(t)))
}

func TestSegmentReconstructsInput(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	table := testTable(t)
	for _, input := range []string{
		"glyph",
		"соба́ка",
		`ab\\cd`,
		`\\\`,
		"αβγ абв abc",
		"[mixed] (brackets) everywhere",
		"日本語 unknown to the table",
		"· · ·",
	} {
		runs := Segment(input, table)
		assert.Equal(t, input, strings.Join(texts(runs), ""), "input %q", input)
		for _, run := range runs {
			assert.NotEmpty(t, run.Text, "input %q", input)
		}
	}
}

func TestSegmentScriptBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	runs := Segment("aб", testTable(t))
	if assert.Len(t, runs, 2) {
		assert.Equal(t, Run{Text: "a", Script: "Latin"}, runs[0])
		assert.Equal(t, Run{Text: "б", Script: "Cyrillic"}, runs[1])
	}
}

func TestSegmentCombiningMarkStaysAttached(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	table := testTable(t)
	runs := Segment("á", table)
	if assert.Len(t, runs, 1) {
		assert.Equal(t, Run{Text: "á", Script: "Latin"}, runs[0])
	}
	// the mark must not tear a Cyrillic word apart
	runs = Segment("соба́ка", table)
	if assert.Len(t, runs, 1) {
		assert.Equal(t, "Cyrillic", runs[0].Script)
	}
}

func TestSegmentLineBreakForcesBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	runs := Segment(`ab\\cd`, testTable(t))
	if assert.Len(t, runs, 2, "boundary right after the double backslash") {
		assert.Equal(t, `ab\\`, runs[0].Text)
		assert.Equal(t, `cd`, runs[1].Text)
		// the boundary does not reset the script label
		assert.Equal(t, "Latin", runs[0].Script)
		assert.Equal(t, "Latin", runs[1].Script)
	}
}

func TestSegmentThreeBackslashesAreNoBoundary(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	// a third backslash resets the count, so no line break is pending
	runs := Segment(`ab\\\cd`, testTable(t))
	if assert.Len(t, runs, 1) {
		assert.Equal(t, `ab\\\cd`, runs[0].Text)
	}
}

func TestSegmentTransparentCharacters(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	table := testTable(t)
	// a leading transparent character is folded into the first real run
	runs := Segment("·a", table)
	if assert.Len(t, runs, 1) {
		assert.Equal(t, Run{Text: "·a", Script: "Latin"}, runs[0])
	}
	// all-transparent input never gets a script label
	runs = Segment("· ·", table)
	if assert.Len(t, runs, 1) {
		assert.Equal(t, Run{Text: "· ·", Script: ""}, runs[0])
	}
}

func TestSegmentBracketsAreNotTransparent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	table := testTable(t)
	runs := Segment("(a", table)
	if assert.Len(t, runs, 2) {
		assert.Equal(t, Run{Text: "(", Script: "Common"}, runs[0])
		assert.Equal(t, Run{Text: "a", Script: "Latin"}, runs[1])
	}
	// brackets merge with each other, though
	runs = Segment("()", table)
	if assert.Len(t, runs, 1) {
		assert.Equal(t, Run{Text: "()", Script: "Common"}, runs[0])
	}
}

func TestSegmentUnknownScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "glyfi.runs")
	defer teardown()
	//
	table := testTable(t)
	// characters missing from the table share the Unknown label and merge
	runs := Segment("日本", table)
	if assert.Len(t, runs, 1) {
		assert.Equal(t, Run{Text: "日本", Script: ucd.Unknown}, runs[0])
	}
	runs = Segment("日a", table)
	if assert.Len(t, runs, 2) {
		assert.Equal(t, ucd.Unknown, runs[0].Script)
		assert.Equal(t, "Latin", runs[1].Script)
	}
}
