package layout

import (
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// FloatManager tracks the floats intruding into the block formatting context
// of a block. Records are held by the block (see frame.FloatList); the
// manager is a view on them and may be created at will.
//
// Coordinates are relative to the border box of the block.
type FloatManager struct {
	ctx   *Context
	block *frame.Frame
}

func (ctx *Context) floats(block *frame.Frame) *FloatManager {
	return &FloatManager{ctx: ctx, block: block}
}

func (fm *FloatManager) records() []*frame.FloatRecord {
	if !fm.block.HasFloats() {
		return nil
	}
	return fm.block.Floats().Records()
}

// InsertFloat registers a floated child of the block. The float is laid out
// immediately, as its size has to be known for placing it, but it will not
// be positioned before the next call to PositionNewFloats.
func (fm *FloatManager) InsertFloat(f *frame.Frame) {
	if fm.ContainsFloat(f) {
		return
	}
	if f.NeedsLayout() {
		fm.ctx.pushCB(fm.block.ContentWidth())
		fm.ctx.layoutFrame(f)
		fm.ctx.popCB()
	}
	side := f.Style.Float
	if side != css.FloatRight {
		side = css.FloatLeft
	}
	fm.block.Floats().Append(&frame.FloatRecord{
		Frame:  f,
		Side:   side,
		StartY: frame.Unpositioned,
		EndY:   frame.Unpositioned,
		Width:  f.TotalWidth(),
	})
	tracer().Debugf("%s: inserted float %s, width %v", fm.block, f, f.TotalWidth())
}

// PositionNewFloats places all floats not yet positioned, in order of
// insertion. Floats are placed at the current height of the block or below,
// never above the start of a float placed earlier.
func (fm *FloatManager) PositionNewFloats() {
	recs := fm.records()
	i := len(recs)
	for i > 0 && !recs[i-1].IsPositioned() {
		i--
	}
	if i == len(recs) {
		return
	}
	b := fm.block
	y := b.H
	if i > 0 && recs[i-1].StartY > y {
		y = recs[i-1].StartY
	}
	lo := b.BorderLeft()
	ro := b.W - b.BorderRight()
	for _, r := range recs[i:] {
		f := r.Frame
		if f.ContainingBlock() != b {
			continue
		}
		fwidth := r.Width
		if ro-lo < fwidth {
			fwidth = dimen.NonNegative(ro - lo)
		}
		if f.Style.Clear&css.ClearLeft != 0 {
			y = dimen.Max(fm.LeftBottom(), y)
		}
		if f.Style.Clear&css.ClearRight != 0 {
			y = dimen.Max(fm.RightBottom(), y)
		}
		fxl, hl := fm.leftRelOffset(y, lo)
		fxr, hr := fm.rightRelOffset(y, ro)
		for fxr-fxl < fwidth {
			if hl == dimen.Infinity && hr == dimen.Infinity {
				break
			}
			y += dimen.Min(hl, hr)
			fxl, hl = fm.leftRelOffset(y, lo)
			fxr, hr = fm.rightRelOffset(y, ro)
		}
		if r.Side == css.FloatLeft {
			fx := dimen.NonNegative(fxl)
			r.Left = fx
			f.SetPos(fx+f.Margins[frame.Left], y+f.Margins[frame.Top])
		} else {
			fx := dimen.Max(fxr, r.Width)
			r.Left = fx - r.Width
			f.SetPos(fx-f.Margins[frame.Right]-f.W, y+f.Margins[frame.Top])
		}
		r.StartY = y
		r.EndY = y + f.TotalHeight()
		tracer().Debugf("%s: float %s placed at (%v,%v)-%v", b, f, r.Left, r.StartY, r.EndY)
	}
}

// leftRelOffset returns the right edge of left floats covering y, but at
// least fixed. The second return value is the vertical distance for which
// the offset is valid, or Infinity if no float is in the way.
func (fm *FloatManager) leftRelOffset(y, fixed dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	left, remaining := fixed, dimen.Dimen(dimen.Infinity)
	for _, r := range fm.records() {
		if r.Side == css.FloatLeft && r.StartY <= y && r.EndY > y && r.Left+r.Width > left {
			left = r.Left + r.Width
			remaining = r.EndY - y
		}
	}
	return left, remaining
}

// rightRelOffset returns the left edge of right floats covering y, but at
// most fixed.
func (fm *FloatManager) rightRelOffset(y, fixed dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	right, remaining := fixed, dimen.Dimen(dimen.Infinity)
	for _, r := range fm.records() {
		if r.Side == css.FloatRight && r.StartY <= y && r.EndY > y && r.Left < right {
			right = r.Left
			remaining = r.EndY - y
		}
	}
	return right, remaining
}

// LeftOffset returns the left edge of the space available at y, i.e. the
// left content edge of the block pushed to the right by left floats, and
// the vertical distance for which the value stays valid.
func (fm *FloatManager) LeftOffset(y dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	return fm.leftRelOffset(y, fm.block.BorderLeft())
}

// RightOffset returns the right edge of the space available at y.
func (fm *FloatManager) RightOffset(y dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	return fm.rightRelOffset(y, fm.block.W-fm.block.BorderRight())
}

// LineWidth returns the width available for content at y.
func (fm *FloatManager) LineWidth(y dimen.Dimen) dimen.Dimen {
	l, _ := fm.LeftOffset(y)
	r, _ := fm.RightOffset(y)
	return dimen.NonNegative(r - l)
}

func (fm *FloatManager) bottom(side css.Float) dimen.Dimen {
	var bottom dimen.Dimen
	for _, r := range fm.records() {
		if (side == css.FloatNone || r.Side == side) && r.EndY > bottom {
			bottom = r.EndY
		}
	}
	return bottom
}

// LeftBottom returns the bottom of the lowest left float.
func (fm *FloatManager) LeftBottom() dimen.Dimen {
	return fm.bottom(css.FloatLeft)
}

// RightBottom returns the bottom of the lowest right float.
func (fm *FloatManager) RightBottom() dimen.Dimen {
	return fm.bottom(css.FloatRight)
}

// FloatBottom returns the bottom of the lowest float.
func (fm *FloatManager) FloatBottom() dimen.Dimen {
	return fm.bottom(css.FloatNone)
}

// NearestFloatBottom returns the nearest bottom edge of a float below y, or
// y if there is none.
func (fm *FloatManager) NearestFloatBottom(y dimen.Dimen) dimen.Dimen {
	var bottom dimen.Dimen
	for _, r := range fm.records() {
		if r.EndY > y && (bottom == 0 || r.EndY < bottom) {
			bottom = r.EndY
		}
	}
	return dimen.Max(bottom, y)
}

// HasOverhangingFloats returns true if a float extends below the bottom of
// the block.
func (fm *FloatManager) HasOverhangingFloats() bool {
	return fm.FloatBottom() > fm.block.H
}

// ContainsFloat returns true if the block holds a record for float f.
func (fm *FloatManager) ContainsFloat(f *frame.Frame) bool {
	return fm.block.HasFloats() && fm.block.Floats().Contains(f)
}

// ContainsFloats returns true if the block holds any float records.
func (fm *FloatManager) ContainsFloats() bool {
	return fm.block.HasFloats()
}

// RemoveFloatingObject drops the record for float f.
func (fm *FloatManager) RemoveFloatingObject(f *frame.Frame) {
	if fm.block.HasFloats() {
		fm.block.Floats().Remove(f)
	}
}

// ClearFloats discards the float records of the block and imports the floats
// of preceding siblings (or of the parent) which intrude into it.
// Blocks establishing a new block formatting context do not import floats.
// The block has to be positioned (at its estimated position) in advance.
func (fm *FloatManager) ClearFloats() {
	b := fm.block
	if b.HasFloats() {
		b.Floats().Clear()
	}
	if b.IsFloating() || b.IsPositioned() || b.IsInlineBlock() {
		return
	}
	parent := b.Parent()
	if parent == nil || b.IsTableCell() {
		return
	}
	prev := b.PrevSibling()
	parentHasFloats := false
	for prev != nil {
		if prev.IsBlockContainer() && !prev.IsFloating() && !prev.IsPositioned() && !prev.HidesOverflow() &&
			!(prev.FlowAroundFloats() && fm.ctx.floats(prev).FloatBottom()+prev.Y() <= b.Y()) {
			break
		}
		if prev.IsFloating() && parent.IsBlockContainer() {
			parentHasFloats = true
		}
		prev = prev.PrevSibling()
	}
	offset := b.Y()
	if parentHasFloats {
		fm.AddOverHangingFloats(parent, parent.BorderLeft(), offset, false)
	}
	var xoffset dimen.Dimen
	if prev != nil {
		if prev.IsTableCell() {
			return
		}
		offset -= prev.Y()
	} else {
		prev = parent
		xoffset += prev.BorderLeft()
	}
	if !prev.IsBlockContainer() || !prev.HasFloats() || fm.ctx.flowsAround(b) {
		return
	}
	if fm.ctx.floats(prev).FloatBottom() > offset {
		fm.AddOverHangingFloats(prev, xoffset, offset, false)
	}
}

// AddOverHangingFloats copies the float records of flow which extend into
// the block. If child is set, flow is a child of the block which has just
// been laid out, and xoff and yoff translate from the child's coordinates.
// Otherwise flow is a preceding sibling or the parent of the block, and
// records reaching below offset are copied.
func (fm *FloatManager) AddOverHangingFloats(flow *frame.Frame, xoff, offset dimen.Dimen, child bool) {
	if !flow.HasFloats() || (child && flow.IsRoot()) {
		return
	}
	b := fm.block
	for _, r := range flow.Floats().Records() {
		if !r.IsPositioned() {
			continue
		}
		if !(!child && r.EndY > offset) && !(child && flow.Y()+r.EndY > b.H) {
			continue
		}
		if child {
			if flow.EnclosingLayer() == b.EnclosingLayer() {
				r.NoPaint = true
			} else {
				r.CrossedLayer = true
			}
		}
		if fm.ContainsFloat(r.Frame) {
			continue
		}
		c := r.Copy()
		c.StartY = r.StartY - offset
		c.EndY = r.EndY - offset
		c.Left = r.Left - xoff
		if !child && flow != b.Parent() {
			c.Left += flow.Margins[frame.Left]
		}
		if !child {
			c.Left -= b.Margins[frame.Left]
			c.NoPaint = true
		} else {
			c.NoPaint = !r.NoPaint
		}
		b.Floats().Append(c)
		tracer().Debugf("%s: overhanging float %s from %s at (%v,%v)-%v",
			b, c.Frame, flow, c.Left, c.StartY, c.EndY)
	}
}

// MarkAllDescendantsWithFloatsForLayout marks the block and every block
// descendant holding floats for layout. If floatToRemove is given, its
// record is dropped first and only descendants containing it are marked.
func (fm *FloatManager) MarkAllDescendantsWithFloatsForLayout(floatToRemove *frame.Frame) {
	b := fm.block
	b.SetNeedsLayout(true, false)
	if floatToRemove != nil {
		fm.RemoveFloatingObject(floatToRemove)
	}
	if b.ChildrenInline() {
		return
	}
	for c := b.FirstChild(); c != nil; c = c.NextSibling() {
		if !c.IsBlockContainer() || c.IsFloatingOrPositioned() {
			continue
		}
		cm := fm.ctx.floats(c)
		if (floatToRemove != nil && cm.ContainsFloat(floatToRemove)) || (floatToRemove == nil && c.HasFloats()) {
			cm.MarkAllDescendantsWithFloatsForLayout(nil)
		}
	}
}

// --- Extent of content -----------------------------------------------------

// LowestPosition returns the lowest extent of the block's content, including
// floats painted by the block and positioned descendants. Floats are
// measured from their records, as copied records refer to frames placed in
// other blocks.
func (fm *FloatManager) LowestPosition() dimen.Dimen {
	b := fm.block
	bottom := b.EffectiveHeight()
	for _, r := range fm.records() {
		if !r.NoPaint && r.IsPositioned() {
			bottom = dimen.Max(bottom, r.StartY+r.Frame.Margins[frame.Top]+r.Frame.EffectiveHeight())
		}
	}
	if !b.IsCanvas() {
		for _, p := range b.PositionedObjects() {
			bottom = dimen.Max(bottom, p.Y()+p.EffectiveHeight())
		}
	}
	for _, l := range b.Lines {
		bottom = dimen.Max(bottom, l.TopL.Y+l.H)
	}
	return bottom
}

// RightmostPosition returns the rightmost extent of the block's content.
func (fm *FloatManager) RightmostPosition() dimen.Dimen {
	b := fm.block
	right := b.EffectiveWidth()
	for _, r := range fm.records() {
		if !r.NoPaint && r.IsPositioned() {
			right = dimen.Max(right, r.Left+r.Frame.Margins[frame.Left]+r.Frame.EffectiveWidth())
		}
	}
	if !b.IsCanvas() {
		for _, p := range b.PositionedObjects() {
			right = dimen.Max(right, p.X()+p.EffectiveWidth())
		}
	}
	for _, l := range b.Lines {
		right = dimen.Max(right, l.TopL.X+l.W)
	}
	return right
}

// LeftmostPosition returns the leftmost extent of the block's content. It is
// never greater than 0.
func (fm *FloatManager) LeftmostPosition() dimen.Dimen {
	b := fm.block
	var left dimen.Dimen
	for _, r := range fm.records() {
		if !r.NoPaint && r.IsPositioned() {
			left = dimen.Min(left, r.Left)
		}
	}
	if !b.IsCanvas() {
		for _, p := range b.PositionedObjects() {
			left = dimen.Min(left, p.X())
		}
	}
	for _, l := range b.Lines {
		left = dimen.Min(left, l.TopL.X)
	}
	return left
}
