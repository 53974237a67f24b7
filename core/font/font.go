// Package font implements the font capability table: an ordered list of
// font descriptors with their code point coverage, used to pick a font for
// each script run of a challenge prompt. Order is priority, first match
// wins.
package font

import (
	"encoding/json"
	"os"
	"strconv"
	"strings"

	"github.com/npillmayer/schuko"
	"github.com/npillmayer/schuko/tracing"
	"github.com/sungodmoth/glyfi/core"
	"github.com/sungodmoth/glyfi/core/font/charset"
	"github.com/sungodmoth/glyfi/core/percent"
	"github.com/sungodmoth/glyfi/core/ucd"
)

// tracer traces with key 'glyfi.fonts'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.fonts")
}

// Descriptor describes one font of the capability table: the name the
// typesetter knows it by, its coverage, and a handful of optional rendering
// hints. A flat record with zero values meaning "absent"; behavior
// differences between fonts are plain conditionals in the formatter, not
// dispatch.
type Descriptor struct {
	Name           string          // font name, as the typesetter resolves it
	Ranges         ucd.RuneRanges  // supported code points
	Excludes       ucd.RuneRanges  // code points never to use this font for
	SupportsStyles bool            // font reacts to style directives
	Vertical       bool            // glyphs are rendered rotated
	Scale          percent.Percent // size modifier, 0 = none
	LoadAs         string          // literal load markup replacing the name directive
}

// Supports reports whether every rune of text falls inside the supported
// ranges and none inside an exclusion. Exclusions override inclusions.
func (d *Descriptor) Supports(text string) bool {
	for _, r := range text {
		if !d.Ranges.Contains(r) || d.Excludes.Contains(r) {
			return false
		}
	}
	return true
}

// Table is the font capability table. The slice order is the matching
// priority and must be preserved from the capability file.
type Table []Descriptor

// Match selects the first font in priority order that supports every
// character of text. A nil result is not an error; the caller leaves font
// selection to the typesetter's default.
func (t Table) Match(text string) *Descriptor {
	for i := range t {
		if t[i].Supports(text) {
			tracer().Debugf("%s matches %q", t[i].Name, text)
			return &t[i]
		}
	}
	tracer().Debugf("no font matches %q", text)
	return nil
}

// The capability file format: {"fonts": [{"name": ..., ...}, ...]}.
type fontRecord struct {
	Name           string   `json:"name"`
	Excludes       []string `json:"excludes"`
	SupportsStyles bool     `json:"supports_styles"`
	Vertical       bool     `json:"vertical"`
	SizePercentage int      `json:"size_percentage"`
	LoadAs         string   `json:"load_as"`
}

type fontFile struct {
	Fonts []fontRecord `json:"fonts"`
}

// ParseTable parses a font capability file. Coverage is not resolved here;
// see ResolveCoverage.
func ParseTable(data []byte) (Table, error) {
	var ff fontFile
	if err := json.Unmarshal(data, &ff); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font data is not valid JSON")
	}
	table := make(Table, 0, len(ff.Fonts))
	for _, rec := range ff.Fonts {
		if rec.Name == "" {
			return nil, core.Error(core.EINVALID, "font record without a name")
		}
		excludes, err := parseExcludes(rec.Excludes)
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID,
				"font %s: bad exclusion range", rec.Name)
		}
		table = append(table, Descriptor{
			Name:           rec.Name,
			Excludes:       excludes,
			SupportsStyles: rec.SupportsStyles,
			Vertical:       rec.Vertical,
			Scale:          percent.FromInt(rec.SizePercentage),
			LoadAs:         rec.LoadAs,
		})
	}
	return table, nil
}

// Exclusion ranges are strict "HEX-HEX" pairs.
func parseExcludes(specs []string) (ucd.RuneRanges, error) {
	var ranges ucd.RuneRanges
	for _, spec := range specs {
		parts := strings.SplitN(spec, "-", 2)
		if len(parts) != 2 {
			return nil, core.Error(core.EINVALID, "%q: want HEX-HEX", spec)
		}
		lo, err := strconv.ParseUint(parts[0], 16, 32)
		if err != nil {
			return nil, err
		}
		hi, err := strconv.ParseUint(parts[1], 16, 32)
		if err != nil {
			return nil, err
		}
		ranges = append(ranges, ucd.RuneRange{Lo: rune(lo), Hi: rune(hi)})
	}
	return ranges, nil
}

// ResolveCoverage fills in the supported ranges of every font in the table
// through the charset sources.
func (t Table) ResolveCoverage(conf schuko.Configuration) {
	for i := range t {
		t[i].Ranges = charset.Ranges(conf, t[i].Name)
	}
}

// LoadTable reads the font capability file at path and resolves coverage
// for every font in it.
func LoadTable(conf schuko.Configuration, path string) (Table, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING,
			"font data file cannot be opened: %s", path)
	}
	table, err := ParseTable(data)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "font data file %s", path)
	}
	table.ResolveCoverage(conf)
	tracer().Infof("font capability table: %d fonts", len(table))
	return table, nil
}
