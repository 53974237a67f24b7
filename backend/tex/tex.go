/*
Package tex produces the markup consumed by the typesetting collaborator.

The heart of the package is Format, which splits a string into script
runs, matches a font to each run, and emits the font-switch, size and
style directives the matched font calls for, interleaved with the run
text. The directive grammar is owned by the macro package of the
document template, not by us; we only promise the ordering the
template's macros expect.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the glyfi authors
*/
package tex

import (
	"fmt"
	"strings"

	"github.com/npillmayer/schuko/tracing"
	"github.com/sungodmoth/glyfi/core/font"
	"github.com/sungodmoth/glyfi/core/percent"
	"github.com/sungodmoth/glyfi/core/ucd"
	"github.com/sungodmoth/glyfi/engine/scriptrun"
)

// tracer traces with key 'glyfi.tex'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.tex")
}

// Escape escapes characters which are unsafe in markup text. Only the
// underscore is escaped. Other special characters would need escaping in
// principle, but they cause trouble in filenames even when escaped, so
// callers reject or avoid them instead.
func Escape(s string) string {
	return strings.ReplaceAll(s, "_", `\_`)
}

// FontAndSize emits the directives which select a font and a size.
// Either directive may be dropped: an empty fontname emits no font
// directive, a zero size no size directive.
func FontAndSize(fontname string, size int) string {
	var buf strings.Builder
	if fontname != "" {
		fmt.Fprintf(&buf, `\setmainfont{%s}`, fontname)
	}
	if size != 0 {
		fmt.Fprintf(&buf, `\fontsize{%d}{%d}\selectfont `, size, size)
	}
	return buf.String()
}

// Format typesets input as a sequence of font directives and text runs.
//
// The input is segmented into script runs and each run is matched
// against the font table. A run without a matching font is emitted with
// a size directive only, leaving font selection to whatever default the
// surrounding document established. The effective size is defaultSize
// scaled by scale (unset means 100%), further scaled by the matched
// font's own modifier if it declares one, with integer floor division at
// every step. A non-empty style is appended for fonts which support
// styling. Fonts marked vertical rotate everything formatted so far.
func Format(input string, fonts font.Table, scripts *ucd.ScriptTable, scale percent.Percent, defaultSize int, style string) string {
	if !scale.IsSet() {
		scale = percent.Hundred
	}
	buf := ""
	for _, run := range scriptrun.Segment(input, scripts) {
		size := scale.Of(defaultSize)
		name := ""
		f := fonts.Match(run.Text)
		if f != nil {
			name = f.Name
			if f.Scale.IsSet() {
				size = f.Scale.Of(size)
			}
			tracer().Debugf("font %s used for substring %q of string %q", f.Name, run.Text, input)
		} else {
			tracer().Debugf("no font matched for substring %q of string %q", run.Text, input)
		}
		if f != nil && f.LoadAs != "" {
			buf += f.LoadAs
			name = "" // the load sequence replaces the font directive
		}
		buf += FontAndSize(name, size)
		if f != nil && f.SupportsStyles && style != "" {
			buf += style + " "
		}
		buf += run.Text
		if f != nil && f.Vertical {
			buf = `\rotatebox{-90}{` + buf + `}`
		}
	}
	return buf
}
