package inline

import (
	"strings"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// TextMinMax holds the intrinsic widths of a run of text, as needed to
// compute the intrinsic widths of inline content consisting of several
// runs.
type TextMinMax struct {
	Min, Max         dimen.Dimen // widest unbreakable part, width without breaks
	BeginMin, EndMin dimen.Dimen // width of the first and last unbreakable part
	BeginMax, EndMax dimen.Dimen // width up to the first and after the last forced break
	BeginWS, EndWS   bool        // text starts or ends with collapsible white space
	HasBreakable     bool        // text contains a line break opportunity
	HasBreak         bool        // text contains a forced line break
}

// TrimmedMinMax computes the intrinsic widths of text with white-space
// handling ws. If stripFront is set, leading white space does not count,
// as it would be collapsed with preceding white space.
func (fmtr *Formatter) TrimmedMinMax(text string, ws css.WhiteSpace, stripFront bool) TextMinMax {
	if fmtr.breaker == nil {
		fmtr.breaker = newBreaker()
	}
	var mm TextMinMax
	text = collapseWhiteSpace(text, ws)
	if text == "" {
		return mm
	}
	width := fmtr.Measure.TextWidth
	switch ws {
	case css.WhiteSpacePre:
		lines := strings.Split(text, "\n")
		mm.HasBreak = len(lines) > 1
		mm.HasBreakable = mm.HasBreak
		for _, l := range lines {
			mm.Max = dimen.Max(mm.Max, width(l))
		}
		mm.Min = mm.Max
		mm.BeginMax = width(lines[0])
		mm.EndMax = width(lines[len(lines)-1])
		mm.BeginMin, mm.EndMin = mm.BeginMax, mm.EndMax
		return mm
	}
	mm.BeginWS = strings.HasPrefix(text, " ")
	mm.EndWS = strings.HasSuffix(text, " ")
	trimmed := strings.Trim(text, " ")
	maxText := text
	if stripFront {
		maxText = strings.TrimLeft(text, " ")
	}
	mm.Max = width(maxText)
	if ws == css.WhiteSpaceNowrap {
		mm.Min = width(trimmed)
		mm.BeginMin, mm.EndMin = mm.Min, mm.Min
		return mm
	}
	frags := fmtr.breaker.fragments(trimmed)
	for i, fragm := range frags {
		word, _ := splitTrailingSpace(fragm)
		w := width(word)
		mm.Min = dimen.Max(mm.Min, w)
		if i == 0 {
			mm.BeginMin = w
		}
		if i == len(frags)-1 {
			mm.EndMin = w
		}
	}
	mm.HasBreakable = len(frags) > 1 || mm.BeginWS || mm.EndWS
	return mm
}
