package challenge

import (
	"fmt"
	"path"
	"strconv"
	"strings"

	"github.com/sungodmoth/glyfi/backend/tex"
	"github.com/sungodmoth/glyfi/core/font"
	"github.com/sungodmoth/glyfi/core/percent"
	"github.com/sungodmoth/glyfi/core/ucd"
)

// Default point sizes per operation. The template lays its pages out
// around these; the per-invocation size percentage scales them.
const (
	glyphAnnouncementSize = 100
	ambiAnnouncementSize  = 80
	glyphPollSize         = 60
	ambiPollSize          = 22
	winnerSize            = 40
	glyphSuggestionSize   = 40
	ambiSuggestionSize    = 28
)

// winnerStyle decorates winner nicknames.
const winnerStyle = `\itshape\bfseries`

// Generator builds the markup definition blocks for the challenge
// operations. It bundles the tables and per-invocation parameters so
// that each operation only takes its own arguments. Generated blocks
// are appended to a tex.Document after the template and before
// typesetting.
type Generator struct {
	Fonts   font.Table
	Scripts *ucd.ScriptTable
	Scale   percent.Percent // size modifier applied to the operation's default size
	Week    int
}

// Preamble produces the definitions shared by all operations: the
// challenge period and the accent colour of the week.
func (g *Generator) Preamble(startDate, endDate string) string {
	return fmt.Sprintf(`
\SetDate[%s]
\SaveDate[\StartDate]
\SetDate[%s]
\SaveDate[\EndDate]
\WeekColor{%s}
`, startDate, endDate, WeekColour(g.Week))
}

// Announcement produces the block announcing next week's prompt.
func (g *Generator) Announcement(kind Kind, prompt string) string {
	size := glyphAnnouncementSize
	if kind == Ambigram {
		size = ambiAnnouncementSize
	}
	formatted := tex.Format(prompt, g.Fonts, g.Scripts, g.Scale, size, "")
	return fmt.Sprintf(`
\def\NextWeek%s{%s}
\begin{document}
\%sChallengeAnnouncement
\end{document}
`, kind.title(), formatted, kind.title())
}

// Poll produces the block showing this week's submissions for voting.
// Submission images are taken from imagesRoot/<kind>/<week>; the
// reference written into the markup drops everything from the first dot
// of the file name, since the typesetting engine appends the graphics
// extension itself. A cols of zero lets the layout rule decide.
func (g *Generator) Poll(kind Kind, prompt string, imagesRoot string, cols int) (string, error) {
	size, countName, showcase := glyphPollSize, "NumberOfSubs", `\GlyphChallengeShowcase{9}`
	if kind == Ambigram {
		size, countName, showcase = ambiPollSize, "NumberOfAmbis", `\AmbigramChallengeShowcase{11}`
	}
	dir := path.Join(imagesRoot, kind.Short(), strconv.Itoa(g.Week))
	subs, err := Submissions(dir)
	if err != nil {
		return "", err
	}
	var images strings.Builder
	for i, name := range subs {
		stem := strings.SplitN(name, ".", 2)[0]
		fmt.Fprintf(&images, "\\setimage{%d}{%s/%s}\n", i+1, dir, stem)
	}
	if cols == 0 {
		max := 4
		if kind == Ambigram {
			max = 3
		}
		cols = Columns(len(subs), 3, max)
	}
	formatted := tex.Format(prompt, g.Fonts, g.Scripts, g.Scale, size, "")
	return fmt.Sprintf(`
\def\ThisWeek%s{%s}
\begin{document}
\def\%s{%d}
%s
\glyphlabels
%s{%d}
\end{document}
`, kind.title(), formatted, countName, len(subs), images.String(), showcase, cols), nil
}

// Winner produces the block honouring the submission placed at place.
// The nickname is typeset through font matching like a prompt; the user
// and submission identifiers are only escaped.
func (g *Generator) Winner(kind Kind, place Place, nickname, userID, subID string) string {
	winner := kind.titleShort() + "Winner" + place.String()
	formatted := tex.Format(tex.Escape(nickname), g.Fonts, g.Scripts, g.Scale, winnerSize, winnerStyle)
	return fmt.Sprintf(`
\def\%s{%s}
\def\%sID{%s}
\def\%sSubID{%s}
\def\WeekNum{%d}
\begin{document}
\%sChallenge%s
\end{document}
`, winner, formatted, winner, tex.Escape(userID), winner, tex.Escape(subID), g.Week, kind.title(), place.String())
}

// Suggestions produces the block putting suggested prompts up for a
// vote. Each suggestion may carry its own size modifier; the
// generator-wide one does not apply here. A cols of zero lets the
// layout rule decide.
func (g *Generator) Suggestions(kind Kind, suggestions []Suggestion, cols int) string {
	size, entryName, listName := glyphSuggestionSize, "setpollglyph", "pollglyphs"
	if kind == Ambigram {
		size, entryName, listName = ambiSuggestionSize, "setpollambi", "pollambigrams"
	}
	var entries strings.Builder
	for i, s := range suggestions {
		formatted := tex.Format(s.Text, g.Fonts, g.Scripts, s.Scale, size, "")
		fmt.Fprintf(&entries, "\\%s{%d}{%s}\n    ", entryName, i+1, formatted)
	}
	if cols == 0 {
		if kind == Ambigram {
			cols = Columns(len(suggestions), 3, 3)
		} else {
			cols = Columns(len(suggestions), 4, 0)
		}
	}
	return fmt.Sprintf(`
\def\%sSuggestions{%d}
\def\%s{
    %s
}
\begin{document}
\glyphlabels
\%sPoll{%d}
\end{document}
`, kind.titleShort(), len(suggestions), listName, entries.String(), kind.title(), cols)
}
