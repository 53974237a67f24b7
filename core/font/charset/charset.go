// Package charset resolves the code point coverage of installed fonts.
//
// Coverage comes from one of three sources, tried in order: a builtin
// literal table for fonts that may be invisible to the system font query
// (STIX Two Text usually ships with the TeX distribution, not the OS), a
// fontconfig charset query, and a cmap probe of the font file itself.
package charset

import (
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/flopp/go-findfont"
	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/sungodmoth/glyfi/core"
	"github.com/sungodmoth/glyfi/core/ucd"
	"golang.org/x/image/font/sfnt"
)

// tracer traces with key 'glyfi.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.fonts")
}

// Ranges resolves the code point coverage of a font by name. It never fails
// hard: when every source comes up empty the returned ranges are nil and the
// font simply will not match any text, which degrades font selection but
// must not abort a run.
func Ranges(conf schuko.Configuration, fontname string) ucd.RuneRanges {
	if ranges, ok := Builtin(fontname); ok {
		tracer().Debugf("builtin coverage for %s: %d ranges", fontname, len(ranges))
		return ranges
	}
	ranges, err := FontconfigRanges(conf, fontname)
	if err == nil {
		tracer().Debugf("fontconfig coverage for %s: %d ranges", fontname, len(ranges))
		return ranges
	}
	tracer().Infof("fontconfig query for %s failed (%s), probing font file", fontname,
		core.UserMessage(err))
	ranges, err = ProbeRanges(fontname)
	if err != nil {
		err = core.WrapError(err, core.EMISSING,
			"coverage of font %s cannot be determined", fontname)
		core.UserError(err)
		return nil
	}
	tracer().Debugf("probed coverage for %s: %d ranges", fontname, len(ranges))
	return ranges
}

// Builtin returns the hardcoded coverage table for fontname, if one exists.
func Builtin(fontname string) (ucd.RuneRanges, bool) {
	ranges, ok := builtinCoverage[fontname]
	return ranges, ok
}

// findFontconfigBinary locates fc-match. The configuration key 'fontconfig'
// may point to the binary; without it we fall back to a $PATH lookup.
func findFontconfigBinary(conf schuko.Configuration) (string, error) {
	fcpath := conf.GetString("fontconfig")
	if fcpath == "" {
		p, err := exec.LookPath("fc-match")
		if err != nil {
			return "", core.WrapError(err, core.ETOOL,
				"fontconfig not configured and fc-match not on PATH")
		}
		return p, nil
	}
	if !filepath.IsAbs(fcpath) {
		return "", core.Error(core.EINVALID,
			"fontconfig binary fc-match must point to absolute path: %s", fcpath)
	}
	if fi, err := os.Stat(fcpath); err != nil || (fi.Mode().Perm()&0100) == 0 {
		return "", core.WrapError(err, core.EINVALID,
			"fontconfig configuration points to an invalid binary: %s", fcpath)
	}
	return fcpath, nil
}

// FontconfigRanges queries fontconfig for the charset of the font best
// matching fontname. fc-match always answers with some font, so an
// installed lookalike may stand in for an absent one; this mirrors how the
// typesetter will substitute fonts as well.
func FontconfigRanges(conf schuko.Configuration, fontname string) (ucd.RuneRanges, error) {
	fcpath, err := findFontconfigBinary(conf)
	if err != nil {
		return nil, err
	}
	out, err := exec.Command(fcpath, "--format=%{charset}", fontname).Output()
	if err != nil {
		return nil, core.WrapError(err, core.ETOOL, "fc-match failed for %s", fontname)
	}
	ranges, err := parseCharset(string(out))
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID,
			"fc-match returned unparsable charset for %s", fontname)
	}
	return ranges, nil
}

// parseCharset parses fontconfig's charset syntax: space-separated hex
// code points or lo-hi pairs, e.g. "20-7e a0-ff 131 134-137".
func parseCharset(s string) (ucd.RuneRanges, error) {
	var ranges ucd.RuneRanges
	for _, tok := range strings.Fields(s) {
		parts := strings.SplitN(tok, "-", 2)
		lo, err := strconv.ParseUint(parts[0], 16, 32)
		if err != nil {
			return nil, err
		}
		hi := lo
		if len(parts) == 2 {
			if hi, err = strconv.ParseUint(parts[1], 16, 32); err != nil {
				return nil, err
			}
		}
		ranges = append(ranges, ucd.RuneRange{Lo: rune(lo), Hi: rune(hi)})
	}
	return ranges, nil
}

// probeMax bounds the cmap probe to the BMP and SMP. Historic scripts,
// which glyph challenges are fond of, live in plane 1; later planes hold
// nothing a challenge prompt would use.
const probeMax = rune(0x2FFFF)

// ProbeRanges determines coverage from the font file itself: locate a file
// matching fontname, parse it, and walk the cmap.
func ProbeRanges(fontname string) (ucd.RuneRanges, error) {
	fpath, err := findfont.Find(fontname)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING,
			"no font file found matching %q", fontname)
	}
	tracer().Debugf("probing cmap of %s", fpath)
	data, err := os.ReadFile(fpath)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "font file unreadable: %s", fpath)
	}
	f, err := sfnt.Parse(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font file will not parse: %s", fpath)
	}
	var buf sfnt.Buffer
	covered := func(r rune) bool {
		if r >= 0xD800 && r <= 0xDFFF { // surrogates
			return false
		}
		gid, err := f.GlyphIndex(&buf, r)
		return err == nil && gid != 0
	}
	var ranges ucd.RuneRanges
	start := rune(-1)
	for r := rune(0x20); r <= probeMax+1; r++ {
		if r <= probeMax && covered(r) {
			if start < 0 {
				start = r
			}
			continue
		}
		if start >= 0 {
			ranges = append(ranges, ucd.RuneRange{Lo: start, Hi: r - 1})
			start = -1
		}
	}
	return ranges, nil
}
