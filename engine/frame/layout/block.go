package layout

import (
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// layoutBlock lays out a block container and its subtree.
func (ctx *Context) layoutBlock(f *frame.Frame, relayoutChildren bool) {
	if !relayoutChildren && f.PosChildNeedsLayout() && !f.SelfNeedsLayout() && !f.NormalChildNeedsLayout() {
		tracer().Debugf("%s: only positioned children need layout", f)
		ctx.layoutPositionedObjects(f, false)
		ctx.updateOverflow(f)
		f.SetLayouted()
		return
	}
	oldWidth := f.W
	ctx.calcWidth(f)
	f.OverflowW = f.W
	if oldWidth != f.W {
		relayoutChildren = true
	}
	fm := ctx.floats(f)
	fm.ClearFloats()
	f.H, f.OverflowH = 0, 0
	if f.IsTableCell() {
		f.Margin = frame.MarginValues{}
	} else {
		initMaxMarginValues(f)
	}
	if f.ChildrenInline() {
		ctx.layoutInlineChildren(f, relayoutChildren)
	} else {
		ctx.layoutBlockChildren(f, relayoutChildren)
	}
	if fm.FloatBottom() > f.H-f.BorderBottom() && expandsToEncloseFloats(f) {
		f.H = fm.FloatBottom() + f.BorderBottom()
	}
	contentHeight := f.H
	ctx.calcHeight(f)
	if f.H != contentHeight && !f.HidesOverflow() {
		f.OverflowH = dimen.Max(f.OverflowH, contentHeight)
	}
	ctx.layoutPositionedObjects(f, relayoutChildren)
	if isSelfCollapsing(f) {
		// top and bottom margins collapse with each other
		f.Margin.TopPos = dimen.Max(f.Margin.TopPos, f.Margin.BottomPos)
		f.Margin.TopNeg = dimen.Max(f.Margin.TopNeg, f.Margin.BottomNeg)
		f.Margin.BottomPos, f.Margin.BottomNeg = 0, 0
	}
	ctx.updateOverflow(f)
	f.SetLayouted()
	tracer().Debugf("%s: laid out to %v x %v", f, f.W, f.H)
}

// expandsToEncloseFloats is true for blocks establishing a new block
// formatting context, which grow to contain their floats.
func expandsToEncloseFloats(f *frame.Frame) bool {
	return f.IsCanvas() || f.IsInlineBlock() || f.IsFloatingOrPositioned() ||
		f.HidesOverflow() || f.IsTableCell() || f.IsFieldset()
}

// updateOverflow extends the overflow area of f to enclose its content.
func (ctx *Context) updateOverflow(f *frame.Frame) {
	fm := ctx.floats(f)
	f.OverflowH = dimen.Max(f.OverflowH, fm.LowestPosition())
	f.OverflowW = dimen.Max(f.OverflowW, fm.RightmostPosition())
	f.OverflowH = dimen.Max(f.OverflowH, f.H)
	f.OverflowW = dimen.Max(f.OverflowW, f.W)
}

// layoutBlockChildren lays out the block-level children of f one after the
// other, collapsing their vertical margins.
func (ctx *Context) layoutBlockChildren(f *frame.Frame, relayoutChildren bool) {
	fm := ctx.floats(f)
	rtl := ctx.rtl(f)
	top, bottom := f.BorderTop(), f.BorderBottom()
	f.H = top
	xPos := f.BorderLeft()
	if rtl {
		xPos = f.W - f.BorderRight()
	}
	ctx.pushCB(f.ContentWidth())
	defer ctx.popCB()
	var legend *frame.Frame
	if f.IsFieldset() {
		legend = ctx.layoutLegend(f, relayoutChildren)
	}
	mi := newMarginInfo(ctx, f)
	var compact, compactTarget *frame.Frame
	for child := f.FirstChild(); child != nil; child = child.NextSibling() {
		if child == legend {
			continue
		}
		if relayoutChildren || (child.Style.Height.IsPercent() && !f.Style.Height.IsVariable()) {
			child.SetNeedsLayout(true, false)
		}
		if child.IsPositioned() {
			ctx.registerPositioned(f, child, xPos, f.H+mi.marginOffset())
			continue
		}
		if child.IsFloating() {
			fm.InsertFloat(child)
			off := mi.marginOffset()
			f.H += off
			fm.PositionNewFloats()
			f.H -= off
			continue
		}
		if compact == nil && child.Style.Display == css.DisplayCompact {
			if target := ctx.tuckCompact(f, child, rtl); target != nil {
				compact, compactTarget = child, target
				continue
			}
		}
		yEst := f.H
		if !(mi.atTop && mi.canCollapseTop) {
			yEst += dimen.Max(mi.posMargin, maxTopMargin(child, true)) -
				dimen.Max(mi.negMargin, maxTopMargin(child, false))
		}
		if fm.ContainsFloats() && fm.FloatBottom() > yEst && child.IsBlockContainer() {
			child.SetNeedsLayout(true, false)
		}
		child.SetPos(xPos+child.Margins[frame.Left], yEst)
		ctx.layoutChild(fm, child)
		ypos := mi.collapseMargins(child)
		child.SetPos(child.X(), ypos)
		if delta := ctx.clearDelta(fm, child); delta > 0 {
			mi.clearance(child, delta)
			tracer().Debugf("%s: %s cleared by %v", f, child, delta)
		}
		if child.Y() != yEst && (child.HasFloats() || ctx.flowsAround(child) ||
			(fm.ContainsFloats() && fm.FloatBottom() > child.Y())) {
			ctx.floats(child).MarkAllDescendantsWithFloatsForLayout(nil)
			ctx.layoutChild(fm, child)
		}
		if mi.atTop && !isSelfCollapsing(child) {
			mi.atTop = false
		}
		child.SetPos(ctx.horizontalPosition(f, fm, child, xPos, rtl), child.Y())
		f.H += child.H
		if child == compactTarget {
			ctx.placeCompact(f, compact, child, xPos, rtl)
			compact, compactTarget = nil, nil
		}
		if cm := ctx.floatAware(child); cm != nil && child.IsBlockContainer() &&
			!ctx.flowsAround(child) && cm.HasOverhangingFloats() {
			fm.AddOverHangingFloats(child, -child.X(), -child.Y(), true)
		}
		dx, dy := relativeOffset(child, f)
		overflowDelta := child.EffectiveHeight() - child.H + dimen.NonNegative(dy)
		if f.H+overflowDelta > f.OverflowH {
			f.OverflowH = f.H + overflowDelta
		}
		if right := child.X() + child.EffectiveWidth() + dimen.NonNegative(dx); right > f.OverflowW {
			f.OverflowW = right
		}
	}
	mi.handleBottomOfBlock(bottom, top+bottom)
	for child := f.FirstChild(); child != nil; child = child.NextSibling() {
		if !child.IsPositioned() && child.IsRelPositioned() {
			dx, dy := relativeOffset(child, f)
			child.SetPos(child.X()+dx, child.Y()+dy)
		}
	}
}

// layoutChild lays out an in-flow child of a block, if necessary. Children
// flowing around floats are sized to the space left beside the floats.
func (ctx *Context) layoutChild(fm *FloatManager, child *frame.Frame) {
	if !child.NeedsLayout() {
		return
	}
	if ctx.flowsAround(child) && fm.ContainsFloats() {
		ctx.pushCB(fm.LineWidth(child.Y()))
		defer ctx.popCB()
	}
	ctx.layoutFrame(child)
}

// clearDelta returns the distance child has to move down to clear floats.
// Children flowing around floats with a fixed width are moved below floats
// until they fit.
func (ctx *Context) clearDelta(fm *FloatManager, child *frame.Frame) dimen.Dimen {
	if !fm.ContainsFloats() {
		return 0
	}
	var bottom dimen.Dimen
	switch child.Style.Clear & css.ClearBoth {
	case css.ClearLeft:
		bottom = fm.LeftBottom()
	case css.ClearRight:
		bottom = fm.RightBottom()
	case css.ClearBoth:
		bottom = fm.FloatBottom()
	}
	y := child.Y()
	delta := dimen.NonNegative(bottom - y)
	if delta == 0 && ctx.flowsAround(child) && !child.Style.Width.IsVariable() {
		ctx.ensureMinMax(child)
		yy := y
		for fm.LineWidth(yy) < child.MinW {
			next := fm.NearestFloatBottom(yy)
			if next <= yy {
				break
			}
			yy = next
		}
		delta = yy - y
	}
	return delta
}

// horizontalPosition returns the x coordinate of an in-flow child. Children
// flowing around floats are shifted to dodge floats at their side.
func (ctx *Context) horizontalPosition(f *frame.Frame, fm *FloatManager, child *frame.Frame, xPos dimen.Dimen, rtl bool) dimen.Dimen {
	avoid := ctx.flowsAround(child) && fm.ContainsFloats()
	centered := f.Style.TextAlign == css.TextAlignBlockCenter
	if !rtl {
		x := xPos + child.Margins[frame.Left]
		if avoid {
			leftOff, _ := fm.LeftOffset(child.Y())
			if !centered && !child.Style.Margins[frame.Left].IsAuto() {
				if child.Margins[frame.Left] < 0 {
					leftOff += child.Margins[frame.Left]
				}
				x = dimen.Max(x, leftOff)
			} else if leftOff != xPos {
				ctx.calcHorizontalMargins(child, fm.LineWidth(child.Y()))
				x = leftOff + child.Margins[frame.Left]
			}
		}
		return x
	}
	x := xPos - child.W - child.Margins[frame.Right]
	if avoid {
		rightOff, _ := fm.RightOffset(child.Y())
		if !centered && !child.Style.Margins[frame.Right].IsAuto() {
			if child.Margins[frame.Right] < 0 {
				rightOff -= child.Margins[frame.Right]
			}
			x = dimen.Min(x, rightOff-child.W)
		} else if rightOff != xPos {
			ctx.calcHorizontalMargins(child, fm.LineWidth(child.Y()))
			x = rightOff - child.W - child.Margins[frame.Right]
		}
	}
	return x
}

// registerPositioned registers a positioned child with its containing
// block and records its static position.
func (ctx *Context) registerPositioned(f, child *frame.Frame, x, y dimen.Dimen) {
	child.ContainingBlock().InsertPositionedObject(child)
	off := child.Style.Offsets
	sx, sy := child.StaticX, child.StaticY
	if off[frame.Left].IsAuto() && off[frame.Right].IsAuto() {
		child.StaticX = x
	}
	if off[frame.Top].IsAuto() && off[frame.Bottom].IsAuto() {
		child.StaticY = y
	}
	if sx != child.StaticX || sy != child.StaticY {
		child.SetNeedsLayout(true, false)
	}
}

// relativeOffset returns the offset of a relatively positioned frame from
// its position in normal flow. Left wins over right, top over bottom.
func relativeOffset(f, cb *frame.Frame) (dx, dy dimen.Dimen) {
	if !f.IsRelPositioned() {
		return 0, 0
	}
	cw := cb.ContentWidth()
	off := f.Style.Offsets
	if !off[frame.Left].IsVariable() {
		dx = off[frame.Left].Resolve(cw)
	} else if !off[frame.Right].IsVariable() {
		dx = -off[frame.Right].Resolve(cw)
	}
	var ch dimen.Dimen
	if cb.Style.Height.IsAbsolute() {
		ch = cb.ContentHeight()
	}
	if t := off[frame.Top]; !t.IsVariable() && !(t.IsPercent() && ch == 0) {
		dy = t.Resolve(ch)
	} else if b := off[frame.Bottom]; !b.IsVariable() && !(b.IsPercent() && ch == 0) {
		dy = -b.Resolve(ch)
	}
	return
}

// --- Fieldsets -------------------------------------------------------------

// layoutLegend lays out the legend of a fieldset, if any, and places it
// centered on the top border. The height of the fieldset is advanced below
// the legend or the border, whichever is larger.
func (ctx *Context) layoutLegend(f *frame.Frame, relayoutChildren bool) *frame.Frame {
	var legend *frame.Frame
	for c := f.FirstChild(); c != nil; c = c.NextSibling() {
		if c.IsLegend() && c.IsBlockContainer() {
			legend = c
			break
		}
	}
	if legend == nil {
		return nil
	}
	if relayoutChildren {
		legend.SetNeedsLayout(true, false)
	}
	if legend.NeedsLayout() {
		ctx.layoutFrame(legend)
	}
	x := f.BorderLeft() + legend.Margins[frame.Left]
	if ctx.rtl(f) {
		x = f.W - f.BorderRight() - legend.W - legend.Margins[frame.Right]
	}
	b, h := f.BorderWidth[frame.Top], legend.H
	legend.SetPos(x, dimen.NonNegative((b-h)/2))
	f.H = dimen.Max(b, h) + f.Padding[frame.Top]
	return legend
}

// --- Compact boxes ---------------------------------------------------------

// tuckCompact checks if a compact child fits into the start margin of the
// following block. If it does, the compact is laid out shrink-to-fit and
// the block is returned.
func (ctx *Context) tuckCompact(f, child *frame.Frame, rtl bool) *frame.Frame {
	target := child.NextSibling()
	for target != nil && target.IsFloatingOrPositioned() {
		target = target.NextSibling()
	}
	if target == nil || !target.IsBlockContainer() || target.IsAnonymous() ||
		target.Style.Display == css.DisplayCompact || target.Style.Display == css.DisplayRunIn {
		return nil
	}
	cw := f.ContentWidth()
	side := frame.Left
	if rtl {
		side = frame.Right
	}
	margin := target.Style.Margins[side].Resolve(cw)
	ctx.tucked = child
	child.SetNeedsLayout(true, false)
	ctx.layoutFrame(child)
	ctx.tucked = nil
	if child.TotalWidth() > margin {
		child.SetNeedsLayout(true, false) // lay out again as a regular block
		return nil
	}
	child.Margin = frame.MarginValues{}
	return target
}

// placeCompact puts a compact frame in the margin beside target, aligned to
// target's top. If the compact is taller than target, the block grows.
func (ctx *Context) placeCompact(f, compact, target *frame.Frame, xPos dimen.Dimen, rtl bool) {
	x := xPos + compact.Margins[frame.Left]
	if rtl {
		x = xPos - compact.W - compact.Margins[frame.Right]
	}
	compact.SetPos(x, target.Y())
	if compact.H > target.H {
		f.H += compact.H - target.H
	}
	tracer().Debugf("%s: compact %s placed beside %s", f, compact, target)
}
