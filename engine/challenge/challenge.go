/*
Package challenge models the weekly glyph and ambigram challenges.

A challenge week cycles through a fixed set of operations: the prompt is
announced, submissions are collected and shown in a poll, winners are
honoured, and prompts for the next cycle are voted on. Every operation
results in one typeset image. This package holds the vocabulary shared
by the operations (challenge kind, podium places, week colours, column
layout) and builds the markup definition blocks which parameterize the
document template for each operation.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2024–2026 the glyfi authors
*/
package challenge

import (
	"os"
	"path"
	"sort"

	"github.com/npillmayer/schuko/tracing"
	"github.com/sungodmoth/glyfi/core"
	"github.com/sungodmoth/glyfi/core/percent"
)

// tracer traces with key 'glyfi.challenge'.
func tracer() tracing.Trace {
	return tracing.Select("glyfi.challenge")
}

// Kind distinguishes the two challenge variants.
type Kind int

const (
	Glyph Kind = iota
	Ambigram
)

func (k Kind) String() string {
	if k == Ambigram {
		return "ambigram"
	}
	return "glyph"
}

// Short is the abbreviated kind name, used for the submission image
// directories.
func (k Kind) Short() string {
	if k == Ambigram {
		return "ambi"
	}
	return "glyph"
}

// title and titleShort are the kind's fragments of the template macro
// names, e.g. \AmbigramChallengeFirst and \AmbiWinnerFirst.
func (k Kind) title() string {
	if k == Ambigram {
		return "Ambigram"
	}
	return "Glyph"
}

func (k Kind) titleShort() string {
	if k == Ambigram {
		return "Ambi"
	}
	return "Glyph"
}

// Place is a podium position of a finished challenge week.
type Place int

const (
	First Place = iota + 1
	Second
	Third
)

func (p Place) String() string {
	switch p {
	case First:
		return "First"
	case Second:
		return "Second"
	case Third:
		return "Third"
	}
	return ""
}

// Suggestion is one suggested prompt for a next-cycle poll, with an
// optional size modifier overriding the default size for this prompt
// only.
type Suggestion struct {
	Text  string
	Scale percent.Percent
}

// WeekColour returns the accent colour for a week of the challenge
// cycle. Weeks outside the three-colour cycle fall back to red.
func WeekColour(week int) string {
	switch week {
	case 0:
		return "Blue"
	case 1:
		return "Pink"
	case 2:
		return "Cyan"
	}
	return "Red"
}

// Columns picks the number of columns in which n submissions ought to
// be displayed: maximally square, but never more columns than rows and
// never fewer than min. A nonzero max caps the result.
func Columns(n, min, max int) int {
	for i := min; i < n; i++ {
		rows := (n + i) / (i + 1) // ceil(n / (i+1))
		if rows < i+1 {
			if max != 0 && i > max {
				return max
			}
			return i
		}
	}
	return min
}

// Submissions lists the submission images in dir, sorted by file name.
// Anything which is not a regular file is skipped.
func Submissions(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, core.WrapError(err, core.EMISSING, "cannot list submissions in %s", dir)
	}
	var names []string
	for _, entry := range entries {
		if info, err := os.Stat(path.Join(dir, entry.Name())); err == nil && info.Mode().IsRegular() {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)
	tracer().Debugf("%d submission(s) in %s", len(names), dir)
	return names, nil
}
