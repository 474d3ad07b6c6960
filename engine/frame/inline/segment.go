package inline

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/npillmayer/blockflow/engine/style/css"
	"github.com/npillmayer/uax"
	"github.com/npillmayer/uax/segment"
	"github.com/npillmayer/uax/uax14"
)

type penalties struct {
	p1, p2 int
}

func penlty(p1, p2 int) penalties {
	return penalties{p1, p2}
}

// Penalties at or above suppressBreak discourage a break too strongly to
// count as an opportunity.
const suppressBreak = uax.InfinitePenalty / 2

// canWrapLine is true for a line break opportunity. Zero penalties carry no
// information.
func (p penalties) canWrapLine() bool {
	return p.p1 != 0 && p.p1 < suppressBreak
}

// breaker splits text into fragments, each ending at a line break
// opportunity.
type breaker struct {
	segmenter *segment.Segmenter
}

func newBreaker() *breaker {
	return &breaker{
		segmenter: segment.NewSegmenter(uax14.NewLineWrap()),
	}
}

// fragments returns the fragments of text, each ending at a break
// opportunity. Concatenating the fragments yields text. Fragments end with
// whitespace if the opportunity follows whitespace.
func (b *breaker) fragments(text string) []string {
	if text == "" {
		return nil
	}
	var frags []string
	var fragm strings.Builder
	b.segmenter.Init(strings.NewReader(text))
	for b.segmenter.Next() {
		fragm.WriteString(b.segmenter.Text())
		if penlty(b.segmenter.Penalties()).canWrapLine() {
			frags = append(frags, splitAfterSpaces(fragm.String())...)
			fragm.Reset()
		}
	}
	if fragm.Len() > 0 {
		frags = append(frags, splitAfterSpaces(fragm.String())...)
	}
	return frags
}

// splitAfterSpaces splits s after every run of white space, as white space
// is always breakable for white-space: normal.
func splitAfterSpaces(s string) []string {
	var parts []string
	start, inSpace := 0, false
	for i, r := range s {
		if isspace(r) {
			inSpace = true
		} else if inSpace {
			parts = append(parts, s[start:i])
			start, inSpace = i, false
		}
	}
	return append(parts, s[start:])
}

func isspace(r rune) bool {
	return unicode.IsSpace(r) && r != '\u00A0'
}

// collapseWhiteSpace replaces every run of white space by a single space,
// as required for white-space: normal and nowrap.
func collapseWhiteSpace(text string, ws css.WhiteSpace) string {
	if ws == css.WhiteSpacePre {
		return text
	}
	var b strings.Builder
	inSpace := false
	for _, r := range text {
		if isspace(r) {
			if !inSpace {
				b.WriteByte(' ')
			}
			inSpace = true
			continue
		}
		inSpace = false
		b.WriteRune(r)
	}
	return b.String()
}

// splitTrailingSpace separates a fragment into its word and trailing white
// space.
func splitTrailingSpace(fragm string) (word, space string) {
	i := len(fragm)
	for i > 0 {
		r, size := utf8.DecodeLastRuneInString(fragm[:i])
		if !isspace(r) {
			break
		}
		i -= size
	}
	return fragm[:i], fragm[i:]
}
