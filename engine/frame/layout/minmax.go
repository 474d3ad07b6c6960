package layout

import (
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// Intrinsic widths are the minimum width a frame may be narrowed to without
// overflowing (MinW) and the width it occupies if no line breaks other than
// forced ones occur (MaxW). Both include padding and border. Percentages and
// auto values count as 0.

// maxBlockWidth is the max width of blocks holding a percentage-width table
// in quirks mode.
const maxBlockWidth = 15000 * dimen.PX

// insideTableCell is true if f is a table cell or inside of one.
func insideTableCell(f *frame.Frame) bool {
	for cb := f; ; cb = cb.ContainingBlock() {
		if cb.IsTableCell() {
			return true
		}
		if cb.ContainingBlock() == cb {
			return false
		}
	}
}

func fixed(d css.DimenT) dimen.Dimen {
	if d.IsAbsolute() {
		return d.Unwrap()
	}
	return 0
}

// fixedDecorationWidth returns the horizontal padding and border of a style,
// as far as it is independent of the containing block.
func fixedDecorationWidth(s *css.Style) dimen.Dimen {
	return dimen.NonNegative(fixed(s.Padding[css.Left])) + dimen.NonNegative(fixed(s.Padding[css.Right])) +
		dimen.NonNegative(fixed(s.BorderWidth[css.Left])) + dimen.NonNegative(fixed(s.BorderWidth[css.Right]))
}

func fixedMargins(s *css.Style) dimen.Dimen {
	return fixed(s.Margins[css.Left]) + fixed(s.Margins[css.Right])
}

// calcBlockFlowMinMax computes the intrinsic widths of a block container.
func (ctx *Context) calcBlockFlowMinMax(f *frame.Frame) {
	var min, max dimen.Dimen
	if f.ChildrenInline() {
		min, max = ctx.calcInlineMinMax(f)
	} else {
		min, max = ctx.calcBlockMinMax(f)
	}
	if max < min {
		max = min
	}
	if f.Style.WhiteSpace != css.WhiteSpaceNormal && f.ChildrenInline() {
		min = max
	}
	s := f.Style
	if s.Width.IsAbsolute() && s.Width.Unwrap() > 0 {
		if f.IsTableCell() {
			max = dimen.Max(min, s.Width.Unwrap())
		} else {
			min, max = s.Width.Unwrap(), s.Width.Unwrap()
		}
	}
	if s.MinWidth.IsAbsolute() && s.MinWidth.Unwrap() > 0 {
		min = dimen.Max(min, s.MinWidth.Unwrap())
		max = dimen.Max(max, s.MinWidth.Unwrap())
	}
	if s.MaxWidth.IsAbsolute() {
		min = dimen.Min(min, s.MaxWidth.Unwrap())
		max = dimen.Min(max, s.MaxWidth.Unwrap())
	}
	decor := fixedDecorationWidth(s)
	f.MinW, f.MaxW = min+decor, max+decor
	tracer().Debugf("%s: min/max width = %v/%v", f, f.MinW, f.MaxW)
}

// calcBlockMinMax computes the intrinsic content widths of a block with
// block-level children. Adjacent floats add up, as they may sit side by
// side.
func (ctx *Context) calcBlockMinMax(f *frame.Frame) (min, max dimen.Dimen) {
	nowrap := f.Style.WhiteSpace == css.WhiteSpaceNowrap
	var floatLeft, floatRight dimen.Dimen
	for child := f.FirstChild(); child != nil; child = child.NextSibling() {
		if child.IsPositioned() {
			continue
		}
		if child.IsFloating() || ctx.flowsAround(child) {
			floats := floatLeft + floatRight
			if child.Style.Clear&css.ClearLeft != 0 {
				max = dimen.Max(floats, max)
				floatLeft = 0
			}
			if child.Style.Clear&css.ClearRight != 0 {
				max = dimen.Max(floats, max)
				floatRight = 0
			}
		}
		ctx.ensureMinMax(child)
		ml, mr := fixed(child.Style.Margins[css.Left]), fixed(child.Style.Margins[css.Right])
		margin := ml + mr
		w := child.MinW + margin
		min = dimen.Max(w, min)
		if nowrap && !child.IsTable() {
			max = dimen.Max(w, max)
		}
		w = child.MaxW + margin
		if !child.IsFloating() {
			if ctx.flowsAround(child) {
				// floats may sit in the margins of the child
				maxLeft := floatLeft + ml
				if ml > 0 {
					maxLeft = dimen.Max(floatLeft, ml)
				}
				maxRight := floatRight + mr
				if mr > 0 {
					maxRight = dimen.Max(floatRight, mr)
				}
				w = dimen.Max(child.MaxW+maxLeft+maxRight, floatLeft+floatRight)
			} else {
				max = dimen.Max(floatLeft+floatRight, max)
			}
			floatLeft, floatRight = 0, 0
		}
		if child.IsFloating() {
			if child.Style.Float == css.FloatRight {
				floatRight += w
			} else {
				floatLeft += w
			}
		} else {
			max = dimen.Max(w, max)
		}
		if ctx.Quirks && child.IsTable() && child.Style.Width.IsPercent() && max < maxBlockWidth && !insideTableCell(f) {
			max = maxBlockWidth
		}
	}
	min = dimen.NonNegative(min)
	max = dimen.NonNegative(max)
	max = dimen.Max(floatLeft+floatRight, max)
	return
}

// inlineMinMax is the state of computing the intrinsic widths of an inline
// formatting context. inlineMin and inlineMax accumulate the current
// unbreakable chunk and the current line, respectively.
type inlineMinMax struct {
	ctx                  *Context
	block                *frame.Frame
	min, max             dimen.Dimen
	inlineMin, inlineMax dimen.Dimen
	stripFront           bool // strip leading white space of the next text
	trailingSpace        *frame.Frame
	oldAutoWrap          bool
	indentAdded          bool
}

// calcInlineMinMax computes the intrinsic content widths of a block with
// inline children.
func (ctx *Context) calcInlineMinMax(f *frame.Frame) (dimen.Dimen, dimen.Dimen) {
	mm := &inlineMinMax{
		ctx:         ctx,
		block:       f,
		stripFront:  true,
		oldAutoWrap: f.Style.WhiteSpace == css.WhiteSpaceNormal,
	}
	mm.walk(f)
	if mm.trailingSpace != nil && mm.trailingSpace.Style.WhiteSpace != css.WhiteSpacePre {
		sw := ctx.Inline.SpaceWidth()
		mm.inlineMin = dimen.NonNegative(mm.inlineMin - sw)
		mm.inlineMax = dimen.NonNegative(mm.inlineMax - sw)
	}
	mm.min = dimen.Max(mm.min, mm.inlineMin)
	mm.max = dimen.Max(mm.max, mm.inlineMax)
	return mm.min, mm.max
}

func (mm *inlineMinMax) walk(parent *frame.Frame) {
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.IsPositioned() {
			continue
		}
		if c.IsInlineFlow() && !c.IsFloating() {
			mm.decoration(c, css.Left)
			mm.walk(c)
			mm.decoration(c, css.Right)
			continue
		}
		mm.item(c, parent)
	}
}

// decoration accounts for the margin, border and padding at one side of an
// inline flow.
func (mm *inlineMinMax) decoration(f *frame.Frame, side int) {
	s := f.Style
	bpm := fixed(s.Margins[side]) + dimen.NonNegative(fixed(s.BorderWidth[side])) +
		dimen.NonNegative(fixed(s.Padding[side]))
	mm.inlineMin += bpm
	mm.inlineMax += bpm
}

func (mm *inlineMinMax) item(c, parent *frame.Frame) {
	if c.IsBreak() {
		mm.min = dimen.Max(mm.min, mm.inlineMin)
		mm.max = dimen.Max(mm.max, mm.inlineMax)
		mm.inlineMin, mm.inlineMax = 0, 0
		mm.stripFront = true
		mm.trailingSpace = nil
		return
	}
	autoWrap := c.Style.WhiteSpace == css.WhiteSpaceNormal
	if !c.IsText() {
		autoWrap = parent.Style.WhiteSpace == css.WhiteSpaceNormal
		mm.atomic(c, autoWrap)
	} else if !mm.text(c, autoWrap) {
		return
	}
	mm.oldAutoWrap = autoWrap
}

// atomic accounts for an atomic inline-level frame or a float. These may
// always sit on a line of their own.
func (mm *inlineMinMax) atomic(c *frame.Frame, autoWrap bool) {
	mm.ctx.ensureMinMax(c)
	margins := fixedMargins(c.Style)
	childMin, childMax := c.MinW+margins, c.MaxW+margins
	if autoWrap || mm.oldAutoWrap {
		mm.min = dimen.Max(mm.min, mm.inlineMin)
		mm.inlineMin = 0
	}
	mm.inlineMax += childMax
	if !autoWrap {
		mm.inlineMin += childMin
	} else {
		mm.min = dimen.Max(mm.min, childMin)
		mm.inlineMin = 0
	}
	if !c.IsFloating() {
		mm.stripFront = false
		mm.trailingSpace = nil
	}
}

// text accounts for a text frame. It returns false for text which will
// not be rendered.
func (mm *inlineMinMax) text(c *frame.Frame, autoWrap bool) bool {
	ws := c.Style.WhiteSpace
	tm := mm.ctx.Inline.TrimmedMinMax(c.Text, ws, mm.stripFront)
	if !tm.HasBreak && tm.Max == 0 {
		return false
	}
	childMin, childMax := tm.Min, tm.Max
	beginMin, beginMax := tm.BeginMin, tm.BeginMax
	var indent dimen.Dimen
	if !mm.indentAdded {
		mm.indentAdded = true
		indent = fixed(mm.block.Style.TextIndent)
		childMin += indent
		beginMin += indent
		childMax += indent
		beginMax += indent
	}
	if !tm.HasBreakable {
		mm.inlineMin += childMin
	} else {
		if tm.BeginWS {
			mm.min = dimen.Max(mm.min, mm.inlineMin)
		} else {
			mm.inlineMin += beginMin
			mm.min = dimen.Max(mm.min, mm.inlineMin)
			childMin -= indent
		}
		mm.inlineMin = childMin
		mm.min = dimen.Max(mm.min, mm.inlineMin)
		if tm.EndWS {
			mm.inlineMin = 0
		} else {
			mm.inlineMin = tm.EndMin
		}
	}
	if tm.HasBreak {
		mm.inlineMax += beginMax
		mm.max = dimen.Max(mm.max, mm.inlineMax)
		mm.max = dimen.Max(mm.max, childMax)
		mm.inlineMax = tm.EndMax
	} else {
		mm.inlineMax += childMax
	}
	mm.stripFront = ws != css.WhiteSpacePre && tm.EndWS
	if tm.EndWS {
		mm.trailingSpace = c
	} else {
		mm.trailingSpace = nil
	}
	return true
}

// calcReplacedMinMax computes the intrinsic widths of a replaced frame.
func (ctx *Context) calcReplacedMinMax(f *frame.Frame) {
	w := f.IntrinsicW
	if f.Style.Width.IsAbsolute() {
		w = f.Style.Width.Unwrap()
	}
	decor := fixedDecorationWidth(f.Style)
	f.MaxW = w + decor
	if f.Style.Width.IsPercent() || f.Style.Height.IsPercent() {
		f.MinW = decor
	} else {
		f.MinW = f.MaxW
	}
}
