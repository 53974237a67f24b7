/*
Package suggestions reads prompt suggestions for the next-cycle polls.

Suggestions are collected by the community over the week and handed to
us as a plain text file, one suggestion per line: the prompt itself,
optionally followed by a tab and a size percentage for prompts which
need to deviate from the default size to fit their poll cell.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the glyfi authors
*/
package suggestions

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/uax/grapheme"
	"github.com/sungodmoth/glyfi/core"
	"github.com/sungodmoth/glyfi/core/percent"
	"github.com/sungodmoth/glyfi/engine/challenge"
)

// tracer traces with key 'glyfi.challenge'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.challenge")
}

// MaxPromptLength is the longest prompt accepted into the pipeline,
// counted in grapheme clusters.
const MaxPromptLength = 200

// FileFor returns the canonical suggestions file name for a challenge
// kind, e.g. "glyph_suggestions.txt".
func FileFor(kind challenge.Kind) string {
	return kind.String() + "_suggestions.txt"
}

// Load reads the suggestions file at path.
func Load(path string) ([]challenge.Suggestion, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot read suggestions file %s", path)
	}
	defer f.Close()
	return Parse(f)
}

// Parse reads tab-separated suggestion lines. The first field is the
// prompt, an optional second field its size percentage; further fields
// are ignored. Lines with a blank prompt are skipped without consuming
// an entry number.
func Parse(input io.Reader) ([]challenge.Suggestion, error) {
	var list []challenge.Suggestion
	scanner := bufio.NewScanner(input)
	line := 0
	for scanner.Scan() {
		line++
		fields := strings.Split(strings.TrimSpace(scanner.Text()), "\t")
		if fields[0] == "" {
			continue
		}
		s := challenge.Suggestion{Text: fields[0]}
		if len(fields) > 1 && fields[1] != "" {
			pct, err := strconv.Atoi(fields[1])
			if err != nil {
				return nil, core.WrapError(err, core.EINVALID,
					"suggestions line %d: bad size percentage %q", line, fields[1])
			}
			s.Scale = percent.FromInt(pct)
		}
		list = append(list, s)
	}
	if err := scanner.Err(); err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot read suggestions")
	}
	tracer().Debugf("%d suggestion(s) read", len(list))
	return list, nil
}

var setupClasses sync.Once

// Length is the length of a prompt as a user perceives it, i.e. in
// grapheme clusters rather than bytes or codepoints.
func Length(prompt string) int {
	setupClasses.Do(grapheme.SetupGraphemeClasses)
	return grapheme.StringFromString(prompt).Len()
}

// Check rejects prompts the pipeline will not accept: empty ones and
// those longer than MaxPromptLength.
func Check(prompt string) error {
	if prompt == "" {
		return core.Error(core.EINVALID, "empty prompt")
	}
	if l := Length(prompt); l > MaxPromptLength {
		return core.Error(core.EINVALID, "prompt of length %d exceeds %d characters", l, MaxPromptLength)
	}
	return nil
}
