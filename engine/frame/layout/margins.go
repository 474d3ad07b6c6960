package layout

import (
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
)

// A few terms used for margin collapsing:
//
// A block's margin maxima (frame.MarginValues) are the largest positive and
// negative margins collapsing at its top and bottom edge, including the
// margins of children collapsing through the block. A self-collapsing block
// has no content: its top and bottom margin collapse with each other, and
// its margins are folded into the top maxima.

// initMaxMarginValues starts the margin maxima of f from its own margins.
func initMaxMarginValues(f *frame.Frame) {
	f.Margin = frame.MarginValues{
		TopQuirk:    f.Style.TopMarginQuirk,
		BottomQuirk: f.Style.BottomMarginQuirk,
	}
	if m := f.Margins[frame.Top]; m >= 0 {
		f.Margin.TopPos = m
	} else {
		f.Margin.TopNeg = -m
	}
	if m := f.Margins[frame.Bottom]; m >= 0 {
		f.Margin.BottomPos = m
	} else {
		f.Margin.BottomNeg = -m
	}
}

// hasMarginMaxima is true for frames tracking margin maxima, i.e. frames
// laid out as a block flow.
func hasMarginMaxima(f *frame.Frame) bool {
	_, ok := VariantOf(f).(blockFlow)
	return ok
}

func maxTopMargin(f *frame.Frame, positive bool) dimen.Dimen {
	if hasMarginMaxima(f) {
		if positive {
			return f.Margin.TopPos
		}
		return f.Margin.TopNeg
	}
	if positive {
		return dimen.NonNegative(f.Margins[frame.Top])
	}
	return dimen.NonNegative(-f.Margins[frame.Top])
}

func maxBottomMargin(f *frame.Frame, positive bool) dimen.Dimen {
	if hasMarginMaxima(f) {
		if positive {
			return f.Margin.BottomPos
		}
		return f.Margin.BottomNeg
	}
	if positive {
		return dimen.NonNegative(f.Margins[frame.Bottom])
	}
	return dimen.NonNegative(-f.Margins[frame.Bottom])
}

// collapsedMarginBottom returns the effective bottom margin of f.
func collapsedMarginBottom(f *frame.Frame) dimen.Dimen {
	return maxBottomMargin(f, true) - maxBottomMargin(f, false)
}

func isTopMarginQuirk(f *frame.Frame) bool {
	if hasMarginMaxima(f) {
		return f.Margin.TopQuirk
	}
	return f.Style.TopMarginQuirk
}

func isBottomMarginQuirk(f *frame.Frame) bool {
	if hasMarginMaxima(f) {
		return f.Margin.BottomQuirk
	}
	return f.Style.BottomMarginQuirk
}

// isSelfCollapsing returns true for blocks without height, border, padding
// and content, such as empty paragraphs.
func isSelfCollapsing(f *frame.Frame) bool {
	if !hasMarginMaxima(f) {
		return false
	}
	if f.H > 0 || f.IsTable() || f.InnerDecorationHeight() != 0 || f.Style.MinHeight.IsPositive() {
		return false
	}
	h := f.Style.Height
	if !(h.IsVariable() || (h.IsAbsolute() && h.Unwrap() == 0)) {
		return false
	}
	if f.ChildrenInline() {
		return len(f.Lines) == 0
	}
	for c := f.FirstChild(); c != nil; c = c.NextSibling() {
		if c.IsFloatingOrPositioned() {
			continue
		}
		if !isSelfCollapsing(c) {
			return false
		}
	}
	return true
}

// marginInfo is the state of margin collapsing during one pass over the
// block children of a block.
type marginInfo struct {
	block                   *frame.Frame
	strict                  bool // not in quirks mode
	canCollapseWithChildren bool
	canCollapseTop          bool // top margin of block collapses with its first child
	quirkContainer          bool // collapses away quirky margins of children
	atTop                   bool // no non-collapsing content placed yet
	clearOccurred           bool
	posMargin, negMargin    dimen.Dimen // maxima of the margins pending
	oldPos, oldNeg          dimen.Dimen // top maxima of block before the current child
	topChildQuirk           bool
	bottomChildQuirk        bool
	determinedTopQuirk      bool
}

// newMarginInfo starts margin collapsing for the children of block.
// The height of block has to be at its top border and padding.
func newMarginInfo(ctx *Context, block *frame.Frame) *marginInfo {
	canCollapse := !block.IsCanvas() && !block.IsRoot() && !block.IsPositioned() &&
		!block.IsFloating() && !block.IsTableCell() && !block.HidesOverflow() && !block.IsInlineBlock()
	mi := &marginInfo{
		block:                   block,
		strict:                  !ctx.Quirks,
		canCollapseWithChildren: canCollapse,
		canCollapseTop:          canCollapse && block.H == 0,
		quirkContainer:          block.IsTableCell() || block.IsBody(),
		atTop:                   true,
	}
	if mi.canCollapseTop {
		mi.posMargin = maxTopMargin(block, true)
		mi.negMargin = maxTopMargin(block, false)
	}
	return mi
}

// marginOffset returns the margin pending above the current height, which
// has to be taken into account for placing a float.
func (mi *marginInfo) marginOffset() dimen.Dimen {
	if !mi.atTop || !mi.canCollapseTop {
		return mi.posMargin - mi.negMargin
	}
	return 0
}

// collapseMargins collapses the top margin of child with the pending margins
// and returns the vertical position of child. The height of the block is
// advanced by the collapsed margin, if it does not collapse through the
// block's top.
func (mi *marginInfo) collapseMargins(child *frame.Frame) dimen.Dimen {
	b := mi.block
	posTop := maxTopMargin(child, true)
	negTop := maxTopMargin(child, false)
	topQuirk := isTopMarginQuirk(child)
	mi.oldPos, mi.oldNeg = b.Margin.TopPos, b.Margin.TopNeg
	if mi.canCollapseTop && mi.atTop && !mi.clearOccurred {
		if mi.strict || !mi.quirkContainer || !topQuirk {
			b.Margin.TopPos = dimen.Max(b.Margin.TopPos, posTop)
			b.Margin.TopNeg = dimen.Max(b.Margin.TopNeg, negTop)
		}
		if !mi.determinedTopQuirk && !topQuirk && posTop-negTop != 0 {
			b.Margin.TopQuirk = false
			mi.determinedTopQuirk = true
		}
		if !mi.determinedTopQuirk && topQuirk && b.Margins[frame.Top] == 0 {
			b.Margin.TopQuirk = true
		}
	}
	if mi.quirkContainer && mi.atTop && posTop-negTop != 0 {
		mi.topChildQuirk = topQuirk
	}
	ypos := b.H
	if isSelfCollapsing(child) {
		mi.posMargin = dimen.Max(mi.posMargin, posTop)
		mi.negMargin = dimen.Max(mi.negMargin, negTop)
		if !mi.atTop {
			ypos = b.H + mi.posMargin - mi.negMargin
		}
		return ypos
	}
	if !mi.atTop || (!mi.canCollapseTop && (mi.strict || !mi.quirkContainer || !mi.topChildQuirk)) {
		b.H += dimen.Max(mi.posMargin, posTop) - dimen.Max(mi.negMargin, negTop)
		ypos = b.H
	}
	mi.posMargin = maxBottomMargin(child, true)
	mi.negMargin = maxBottomMargin(child, false)
	if mi.posMargin-mi.negMargin != 0 {
		mi.bottomChildQuirk = isBottomMarginQuirk(child)
	}
	tracer().Debugf("%s: collapsed margins above %s, y = %v", b, child, ypos)
	return ypos
}

// clearance moves child down by delta to clear floats. Margins above the
// clearance no longer collapse through the top of the block.
func (mi *marginInfo) clearance(child *frame.Frame, delta dimen.Dimen) {
	b := mi.block
	child.SetPos(child.X(), child.Y()+delta)
	if isSelfCollapsing(child) {
		mi.posMargin = dimen.NonNegative(child.Y() - b.H)
		mi.negMargin = 0
	} else {
		b.H += delta
	}
	mi.clearOccurred = true
	if mi.canCollapseTop && mi.atTop {
		b.Margin.TopPos, b.Margin.TopNeg = mi.oldPos, mi.oldNeg
		mi.atTop = false
	}
}

// handleBottomOfBlock finishes the height of the block after the last
// child. toAdd is the bottom border and padding, minHeight the height of
// top and bottom border and padding.
func (mi *marginInfo) handleBottomOfBlock(toAdd, minHeight dimen.Dimen) {
	b := mi.block
	canCollapseBottom := mi.canCollapseWithChildren && toAdd == 0 && b.Style.Height.IsVariable()
	collapsedWithTop := mi.atTop && mi.canCollapseTop
	if !canCollapseBottom && !collapsedWithTop && (mi.strict || !mi.quirkContainer || !mi.bottomChildQuirk) {
		b.H += mi.posMargin - mi.negMargin
	}
	b.H += toAdd
	if b.H < minHeight {
		b.H = minHeight
	}
	if b.OverflowH < b.H {
		b.OverflowH = b.H
	}
	if canCollapseBottom && !collapsedWithTop {
		mi.setCollapsedBottomMargin()
	}
}

// setCollapsedBottomMargin records the bottom margin of the last child as
// collapsing through the bottom of the block.
func (mi *marginInfo) setCollapsedBottomMargin() {
	b := mi.block
	b.Margin.BottomPos = dimen.Max(b.Margin.BottomPos, mi.posMargin)
	b.Margin.BottomNeg = dimen.Max(b.Margin.BottomNeg, mi.negMargin)
	if !mi.bottomChildQuirk {
		b.Margin.BottomQuirk = false
	}
	if mi.bottomChildQuirk && b.Margins[frame.Bottom] == 0 {
		b.Margin.BottomQuirk = true
	}
}
