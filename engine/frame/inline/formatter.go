package inline

import (
	"strings"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// Env is the environment of an inline formatting context, provided by the
// block containing it. Coordinates are relative to the border box of the
// block.
type Env interface {
	// LeftOffset returns the left edge of the space available for a line at
	// vertical position y, and the vertical distance for which the value
	// stays valid.
	LeftOffset(y dimen.Dimen) (x dimen.Dimen, remaining dimen.Dimen)
	// RightOffset returns the right edge of the space available for a line
	// at vertical position y.
	RightOffset(y dimen.Dimen) (x dimen.Dimen, remaining dimen.Dimen)
	// NearestFloatBottom returns the nearest bottom edge of a float below
	// y, or y if there is none.
	NearestFloatBottom(y dimen.Dimen) dimen.Dimen
	// LayoutAtomic lays out an atomic inline-level frame or a float, such
	// that its dimensions are known.
	LayoutAtomic(f *frame.Frame)
	// PlaceFloat places a float encountered at vertical position y.
	PlaceFloat(f *frame.Frame, y dimen.Dimen)
	// PlacePositioned sets the static position of a positioned frame.
	PlacePositioned(f *frame.Frame, x, y dimen.Dimen)
}

// Result is the outcome of laying out inline content.
type Result struct {
	Bottom     dimen.Dimen // vertical position below the last line
	Width      dimen.Dimen // rightmost extent of the lines
	FirstLineY dimen.Dimen
	LastLineY  dimen.Dimen
	Lines      []frame.LineBox
}

// Formatter breaks inline content into lines.
type Formatter struct {
	Measure    Measurer
	LineHeight dimen.Dimen
	breaker    *breaker
}

// NewFormatter creates a formatter for monospaced text with cell width em
// and line height lh.
func NewFormatter(em, lh dimen.Dimen) *Formatter {
	return &Formatter{
		Measure:    NewMonospace(em),
		LineHeight: lh,
		breaker:    newBreaker(),
	}
}

// SpaceWidth returns the width of a single space.
func (fmtr *Formatter) SpaceWidth() dimen.Dimen {
	return fmtr.Measure.TextWidth(" ")
}

// lineItem is a contribution to the current line.
type lineItem struct {
	frame  *frame.Frame
	atomic bool
	x, w   dimen.Dimen // position relative to the line start
}

// lineBuilder is a greedy line breaker for the inline content of a block.
type lineBuilder struct {
	fmtr       *Formatter
	env        Env
	block      *frame.Frame
	y          dimen.Dimen // top of the current line
	firstLine  bool        // text indent in effect
	indent     dimen.Dimen
	used       dimen.Dimen // width used on the current line
	trailing   dimen.Dimen // width of collapsible trailing space
	height     dimen.Dimen // height of the current line
	hasContent bool
	text       strings.Builder
	items      []lineItem
	pending    []*frame.Frame // floats waiting for the next line
	placed     map[*frame.Frame]bool
	result     Result
}

// Layout breaks the inline children of block into lines, starting below
// the top border and padding of block. Floats and atomic inline-level
// frames are laid out through env. Text frames and inline flows are
// positioned at the start of their first line.
func (fmtr *Formatter) Layout(block *frame.Frame, env Env) Result {
	if fmtr.breaker == nil {
		fmtr.breaker = newBreaker()
	}
	lb := &lineBuilder{
		fmtr:      fmtr,
		env:       env,
		block:     block,
		y:         block.BorderTop(),
		firstLine: true,
		indent:    block.Style.TextIndent.Resolve(block.ContentWidth()),
		height:    fmtr.LineHeight,
		placed:    make(map[*frame.Frame]bool),
	}
	lb.result.FirstLineY = -1
	lb.result.LastLineY = -1
	block.Lines = block.Lines[:0]
	_ = eachItem(collectItems(block), func(item *itemLeaf) error {
		lb.add(item)
		return nil
	})
	lb.finishLine(false)
	lb.placePending()
	lb.result.Bottom = lb.y
	lb.result.Lines = block.Lines
	tracer().Debugf("%s has %d lines, bottom at %v", block, len(block.Lines), lb.y)
	return lb.result
}

// lineEdges returns the edges of the space available for the current line.
func (lb *lineBuilder) lineEdges() (left, right dimen.Dimen) {
	left, _ = lb.env.LeftOffset(lb.y)
	right, _ = lb.env.RightOffset(lb.y)
	if lb.firstLine {
		if lb.block.Style.Direction == css.RTL {
			right -= lb.indent
		} else {
			left += lb.indent
		}
	}
	return
}

func (lb *lineBuilder) available() dimen.Dimen {
	l, r := lb.lineEdges()
	return r - l
}

func (lb *lineBuilder) isEmpty() bool {
	return !lb.hasContent
}

// fits returns true if w fits on the current line. For an empty line which
// is narrowed by floats, the line is moved down below floats until w fits
// or no more floats are in the way.
func (lb *lineBuilder) fits(w dimen.Dimen) bool {
	if lb.used+w <= lb.available() {
		return true
	}
	if !lb.isEmpty() {
		return false
	}
	for lb.used+w > lb.available() {
		next := lb.env.NearestFloatBottom(lb.y)
		if next <= lb.y {
			break
		}
		tracer().Debugf("line moves down below float, %v -> %v", lb.y, next)
		lb.y = next
	}
	return true
}

func (lb *lineBuilder) add(item *itemLeaf) {
	switch item.kind {
	case textItem:
		lb.addText(item)
	case openItem, closeItem:
		lb.addDecoration(item)
	case atomicItem:
		lb.env.LayoutAtomic(item.frame)
		w := item.frame.TotalWidth()
		if !lb.fits(w) {
			lb.finishLine(false)
			lb.fits(w)
		}
		lb.items = append(lb.items, lineItem{frame: item.frame, atomic: true, x: lb.used, w: w})
		lb.used += w
		lb.trailing = 0
		lb.height = dimen.Max(lb.height, item.frame.TotalHeight())
		lb.hasContent = true
	case breakItem:
		lb.items = append(lb.items, lineItem{frame: item.frame, x: lb.used})
		lb.finishLine(true)
	case floatItem:
		lb.env.LayoutAtomic(item.frame)
		if len(lb.pending) == 0 && lb.used+item.frame.TotalWidth() <= lb.available() {
			lb.env.PlaceFloat(item.frame, lb.y)
		} else {
			lb.pending = append(lb.pending, item.frame)
		}
	case positionedItem:
		left, _ := lb.lineEdges()
		lb.env.PlacePositioned(item.frame, left+lb.used, lb.y)
	}
}

// addDecoration accounts for the left or right margin, border and padding
// of an inline flow.
func (lb *lineBuilder) addDecoration(item *itemLeaf) {
	f := item.frame
	cw := lb.block.ContentWidth()
	frame.ResolveDecorations(&f.Box, f.Style, cw)
	side := frame.Left
	if item.kind == closeItem {
		side = frame.Right
	}
	f.Margins[side] = frame.ResolveMargin(f.Style.Margins[side], cw)
	w := f.Margins[side] + f.BorderWidth[side] + f.Padding[side]
	lb.items = append(lb.items, lineItem{frame: f, x: lb.used, w: w})
	lb.used += w
	if w != 0 {
		lb.trailing = 0
		lb.hasContent = true
	}
}

func (lb *lineBuilder) addText(item *itemLeaf) {
	switch item.ws {
	case css.WhiteSpacePre:
		lines := strings.Split(item.content, "\n")
		for i, l := range lines {
			if i > 0 {
				lb.finishLine(true)
			}
			if l != "" || i < len(lines)-1 {
				lb.addFragment(item.frame, l, "", item.ws)
			}
		}
	case css.WhiteSpaceNowrap:
		word, space := splitTrailingSpace(item.content)
		lb.addFragment(item.frame, word, space, item.ws)
	default:
		for _, fragm := range lb.fmtr.breaker.fragments(item.content) {
			word, space := splitTrailingSpace(fragm)
			lb.addFragment(item.frame, word, space, item.ws)
		}
	}
}

// addFragment adds an unbreakable word followed by collapsible space to
// the current line. Only text with white-space: normal wraps.
func (lb *lineBuilder) addFragment(f *frame.Frame, word, space string, ws css.WhiteSpace) {
	pre := ws == css.WhiteSpacePre
	if !pre && lb.isEmpty() {
		word = strings.TrimLeft(word, " ")
		if word == "" {
			return // leading space of a line is dropped
		}
	}
	w := lb.fmtr.Measure.TextWidth(word)
	sw := lb.fmtr.Measure.TextWidth(space)
	if ws == css.WhiteSpaceNormal && !lb.fits(w) {
		lb.finishLine(false)
		lb.fits(w)
	} else if lb.isEmpty() {
		lb.fits(w)
	}
	lb.items = append(lb.items, lineItem{frame: f, x: lb.used, w: w + sw})
	lb.text.WriteString(word)
	lb.text.WriteString(space)
	lb.used += w + sw
	if word != "" || pre {
		lb.hasContent = true
		lb.trailing = 0
	}
	if !pre {
		lb.trailing += sw
	}
}

// finishLine closes the current line, aligns it and positions its atomic
// items. Empty lines are dropped unless forced.
func (lb *lineBuilder) finishLine(forced bool) {
	if lb.isEmpty() && !forced {
		lb.resetLine()
		return
	}
	used := lb.used - lb.trailing
	left, right := lb.lineEdges()
	avail := right - left
	shift := dimen.Zero
	switch lb.alignment() {
	case css.TextAlignRight:
		shift = avail - used
	case css.TextAlignCenter:
		shift = (avail - used) / 2
	}
	if shift < 0 && lb.block.Style.Direction != css.RTL {
		shift = 0
	}
	x0 := left + shift
	line := frame.LineBox{
		TopL: dimen.Point{X: x0, Y: lb.y},
		W:    used,
		H:    lb.height,
		Text: strings.TrimRight(lb.text.String(), " "),
	}
	for _, it := range lb.items {
		if it.atomic {
			it.frame.SetPos(x0+it.x+it.frame.Margins[frame.Left], lb.y+it.frame.Margins[frame.Top])
			line.Atoms = append(line.Atoms, it.frame)
			continue
		}
		if !lb.placed[it.frame] {
			lb.placed[it.frame] = true
			it.frame.SetPos(x0+it.x, lb.y)
			it.frame.W, it.frame.H = 0, lb.height
		}
		if ext := x0 + it.x + it.w - it.frame.X(); ext > it.frame.W {
			it.frame.W = ext
		}
		it.frame.SetLayouted()
	}
	lb.block.Lines = append(lb.block.Lines, line)
	if lb.result.FirstLineY < 0 {
		lb.result.FirstLineY = lb.y
	}
	lb.result.LastLineY = lb.y
	lb.result.Width = dimen.Max(lb.result.Width, x0+used)
	lb.y += lb.height
	lb.firstLine = false
	lb.resetLine()
	lb.placePending()
}

func (lb *lineBuilder) resetLine() {
	lb.used, lb.trailing = 0, 0
	lb.height = lb.fmtr.LineHeight
	lb.text.Reset()
	lb.items = lb.items[:0]
	lb.hasContent = false
}

// placePending places floats which did not fit on the previous line.
func (lb *lineBuilder) placePending() {
	for _, f := range lb.pending {
		lb.env.PlaceFloat(f, lb.y)
	}
	lb.pending = lb.pending[:0]
}

func (lb *lineBuilder) alignment() css.TextAlign {
	align := lb.block.Style.TextAlign
	switch align {
	case css.TextAlignStart, css.TextAlignJustify:
		if lb.block.Style.Direction == css.RTL {
			return css.TextAlignRight
		}
		return css.TextAlignLeft
	case css.TextAlignBlockCenter:
		return css.TextAlignCenter
	}
	return align
}
