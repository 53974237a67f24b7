package ucd

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/emirpasic/gods/maps/linkedhashmap"
	"github.com/npillmayer/schuko/tracing"
	"github.com/sungodmoth/glyfi/core"
	"golang.org/x/text/unicode/runenames"
)

// tracer traces with key 'glyfi.ucd'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.ucd")
}

// Script names with special meaning to clients of this package.
const (
	Common  = "Common"  // characters shared between scripts
	Unknown = "Unknown" // sentinel for unidentifiable code points
)

// RuneRange is an inclusive interval of Unicode code points.
type RuneRange struct {
	Lo, Hi rune
}

func (rr RuneRange) Contains(r rune) bool {
	return rr.Lo <= r && r <= rr.Hi
}

// RuneRanges is a list of inclusive code point intervals. Intervals need not
// be sorted or disjoint; containment is a linear scan.
type RuneRanges []RuneRange

// Contains tells whether r falls inside any of the intervals.
func (rrs RuneRanges) Contains(r rune) bool {
	for _, rr := range rrs {
		if rr.Contains(r) {
			return true
		}
	}
	return false
}

// ScriptTable maps Unicode script names to the code point ranges carrying
// them. A table is built once by LoadScripts or ParseScripts and is
// read-only afterwards. Ranges of one script keep the order parsed; scripts
// keep first-insertion order.
type ScriptTable struct {
	scripts *linkedhashmap.Map // script name -> RuneRanges
}

// LoadScripts reads a script range data file in the line format of the
// UCD's Scripts.txt.
func LoadScripts(path string) (*ScriptTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING,
			"script data file cannot be opened: %s", path)
	}
	defer f.Close()
	t, err := ParseScripts(f)
	if err != nil {
		return nil, err
	}
	tracer().Infof("loaded script ranges for %d scripts from %s", t.Len(), path)
	return t, nil
}

// ParseScripts parses script range data, one range per line:
//
//	<hex>[..<hex>] ; <ScriptName> # comment
//
// Blank lines and lines starting with '#' are skipped. Parsing fails on the
// first malformed line; there is no partial recovery.
func ParseScripts(input io.Reader) (*ScriptTable, error) {
	t := &ScriptTable{scripts: linkedhashmap.New()}
	scanner := bufio.NewScanner(input)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		fields := strings.SplitN(line, ";", 2)
		if len(fields) < 2 {
			return nil, core.Error(core.EINVALID,
				"script data line %d: no ';' separator", lineno)
		}
		names := strings.Fields(fields[1])
		if len(names) == 0 {
			return nil, core.Error(core.EINVALID,
				"script data line %d: missing script name", lineno)
		}
		rr, err := parseRuneRange(strings.TrimSpace(fields[0]))
		if err != nil {
			return nil, core.WrapError(err, core.EINVALID,
				"script data line %d: malformed range", lineno)
		}
		t.put(names[0], rr)
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "script data unreadable")
	}
	return t, nil
}

// put appends a range to a script, registering the script on first sight.
// Updating an existing key does not disturb the map's insertion order.
func (t *ScriptTable) put(name string, rr RuneRange) {
	if ranges, ok := t.scripts.Get(name); ok {
		t.scripts.Put(name, append(ranges.(RuneRanges), rr))
		return
	}
	t.scripts.Put(name, RuneRanges{rr})
}

func parseRuneRange(s string) (RuneRange, error) {
	parts := strings.SplitN(s, "..", 2)
	lo, err := strconv.ParseUint(strings.TrimSpace(parts[0]), 16, 32)
	if err != nil {
		return RuneRange{}, err
	}
	hi := lo
	if len(parts) == 2 {
		if hi, err = strconv.ParseUint(strings.TrimSpace(parts[1]), 16, 32); err != nil {
			return RuneRange{}, err
		}
	}
	return RuneRange{Lo: rune(lo), Hi: rune(hi)}, nil
}

// ScriptFor identifies the script of a code point: the first script in
// table order whose ranges contain it, or Unknown.
func (t *ScriptTable) ScriptFor(r rune) string {
	it := t.scripts.Iterator()
	for it.Next() {
		if it.Value().(RuneRanges).Contains(r) {
			return it.Key().(string)
		}
	}
	tracer().Debugf("no script found for %#U (%s)", r, runenames.Name(r))
	return Unknown
}

// Ranges returns the ranges of a script, nil for scripts not in the table.
func (t *ScriptTable) Ranges(name string) RuneRanges {
	if ranges, ok := t.scripts.Get(name); ok {
		return ranges.(RuneRanges)
	}
	return nil
}

// Scripts lists the script names in table order.
func (t *ScriptTable) Scripts() []string {
	names := make([]string, 0, t.scripts.Size())
	it := t.scripts.Iterator()
	for it.Next() {
		names = append(names, it.Key().(string))
	}
	return names
}

// Len is the number of distinct scripts in the table.
func (t *ScriptTable) Len() int {
	return t.scripts.Size()
}
