/*
Package scriptrun splits strings into script runs prior to font selection.

Fonts rarely cover all of Unicode. To typeset a string like `соба́ка` or
a mixed Latin/Japanese prompt, we cut it into maximal substrings which
can plausibly be rendered by a single font, and hand each substring to
the font matcher separately. The cut points are script boundaries, with
two refinements:

▪︎ Characters carrying the script tag Common (punctuation, spaces,
combining marks shared between scripts) are transparent: they attach to
whatever run is currently open instead of starting a run of their own.
Without this, a combining mark like U+0301 would be torn off its base
character and rendered in whatever font the matcher picks for lone
punctuation.

▪︎ A double backslash is a forced line break in the downstream markup,
and font state does not survive a line break there. We therefore force a
run boundary right after a double backslash even when the script does
not change.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the glyfi authors
*/
package scriptrun

import (
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/sungodmoth/glyfi/core/ucd"
)

// tracer traces with key 'glyfi.runs'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.runs")
}

// Run is a maximal substring of the input to be typeset with a single font.
//
// Script is the effective script label of the run. It is empty for runs
// consisting entirely of script-transparent characters, i.e. when no
// character ever pinned the run to a script.
type Run struct {
	Text   string
	Script string
}

// Paired brackets carry the script tag Common, but we exempt them from
// Common-transparency: an opening bracket glued to a Cyrillic run and its
// closing partner glued to a Latin one would be rendered in two different
// fonts, which looks broken.
const pairedBrackets = "[](){}"

// Segment splits input into script runs, consulting scripts for the script
// of each character. Concatenating the Text fields of the returned runs
// reproduces input exactly. An empty input yields no runs.
func Segment(input string, scripts *ucd.ScriptTable) []Run {
	var runs []Run
	var buf strings.Builder
	script := ""     // label of the open run; empty until a character pins it
	backslashes := 0 // consecutive backslashes, saturating at 2
	for _, r := range input {
		s := scripts.ScriptFor(r)
		switch {
		case s == ucd.Common && !strings.ContainsRune(pairedBrackets, r):
			// transparent: joins the open run, never triggers a boundary
			buf.WriteRune(r)
		case (script == "" || script == s) && backslashes != 2:
			buf.WriteRune(r)
			script = s
		default:
			runs = append(runs, Run{Text: buf.String(), Script: script})
			buf.Reset()
			buf.WriteRune(r)
			script = s
		}
		if r == '\\' && backslashes != 2 {
			backslashes++
		} else {
			backslashes = 0
		}
	}
	if buf.Len() > 0 {
		runs = append(runs, Run{Text: buf.String(), Script: script})
	}
	tracer().Debugf("segmented %q into %d run(s)", input, len(runs))
	return runs
}
