package layout

import (
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
)

// layoutPositionedObjects lays out the positioned descendants registered
// with f. Their containing block is the padding box of f.
func (ctx *Context) layoutPositionedObjects(f *frame.Frame, relayoutChildren bool) {
	objs := f.PositionedObjects()
	if len(objs) == 0 {
		return
	}
	ctx.pushCB(f.PaddingBoxWidth())
	defer ctx.popCB()
	for _, p := range objs {
		if !p.IsPositioned() || p.ContainingBlock() != f || !p.IsDescendantOf(f) {
			f.RemovePositionedObject(p)
			continue
		}
		if relayoutChildren || dependsOnContainer(p) {
			p.SetNeedsLayout(true, false)
		}
		if p.NeedsLayout() {
			ctx.layoutFrame(p)
		}
		tracer().Debugf("%s: positioned %s at (%v,%v)", f, p, p.X(), p.Y())
	}
}

// dependsOnContainer is true for positioned frames whose geometry changes
// with the size of their containing block.
func dependsOnContainer(p *frame.Frame) bool {
	s := p.Style
	return !s.Offsets[frame.Right].IsAuto() || !s.Offsets[frame.Bottom].IsAuto() ||
		s.Width.IsPercent() || s.Height.IsPercent() ||
		s.Offsets[frame.Left].IsPercent() || s.Offsets[frame.Top].IsPercent()
}

// staticPosition returns the static position of a positioned frame in the
// coordinates of its containing block cont. The static position is
// recorded relative to the nearest block container ancestor.
func staticPosition(p, cont *frame.Frame) (x, y dimen.Dimen) {
	x, y = p.StaticX, p.StaticY
	o := p.Parent()
	for o != nil && !o.IsBlockContainer() {
		o = o.Parent()
	}
	for o != nil && o != cont {
		x += o.X()
		y += o.Y()
		next := o.ContainingBlock()
		if next == o {
			break
		}
		o = next
	}
	return
}

// calcAbsoluteHorizontal solves the horizontal constraints of an absolutely
// positioned frame: left + margin-left + width + margin-right + right equals
// the width of the containing block. Decorations have to be resolved.
func (ctx *Context) calcAbsoluteHorizontal(f *frame.Frame) {
	cont := f.ContainingBlock()
	cw := ctx.cbWidth()
	bl := cont.BorderWidth[frame.Left]
	rtl := ctx.rtl(cont)
	decor := f.InnerDecorationWidth()
	s := f.Style
	lAuto, rAuto := s.Offsets[frame.Left].IsVariable(), s.Offsets[frame.Right].IsVariable()
	left, right := s.Offsets[frame.Left].Resolve(cw), s.Offsets[frame.Right].Resolve(cw)
	mlAuto, mrAuto := s.Margins[frame.Left].IsAuto(), s.Margins[frame.Right].IsAuto()
	ml, mr := frame.ResolveMargin(s.Margins[frame.Left], cw), frame.ResolveMargin(s.Margins[frame.Right], cw)
	if lAuto && rAuto {
		sx, _ := staticPosition(f, cont)
		if rtl {
			right, rAuto = bl+cw-sx, false
		} else {
			left, lAuto = sx-bl, false
		}
	}
	var w dimen.Dimen
	wAuto := s.Width.IsVariable()
	switch {
	case f.IsReplaced() && wAuto:
		w, wAuto = clampWidth(f, f.IntrinsicW, cw), false
	case !wAuto:
		w = clampWidth(f, s.Width.Resolve(cw), cw)
	case !lAuto && !rAuto:
		if mlAuto {
			ml, mlAuto = 0, false
		}
		if mrAuto {
			mr, mrAuto = 0, false
		}
		w = clampWidth(f, cw-left-right-ml-mr-decor, cw)
	default:
		ctx.ensureMinMax(f)
		avail := cw - ml - mr
		if !lAuto {
			avail -= left
		} else if !rAuto {
			avail -= right
		}
		w = clampWidth(f, dimen.Max(f.MinW, dimen.Min(f.MaxW, avail))-decor, cw)
	}
	f.W = w + decor
	if lAuto || rAuto {
		if mlAuto {
			ml = 0
		}
		if mrAuto {
			mr = 0
		}
	}
	switch {
	case lAuto:
		left = cw - right - ml - mr - f.W
	case rAuto:
		right = cw - left - ml - mr - f.W
	case mlAuto && mrAuto:
		free := cw - left - right - f.W
		if free < 0 {
			if rtl {
				ml, mr = free, 0
			} else {
				ml, mr = 0, free
			}
		} else {
			ml = free / 2
			mr = free - ml
		}
	case mlAuto:
		ml = cw - left - right - mr - f.W
	case mrAuto:
		mr = cw - left - right - ml - f.W
	case rtl:
		left = cw - right - ml - mr - f.W
	}
	f.Margins[frame.Left], f.Margins[frame.Right] = ml, mr
	f.SetPos(bl+left+ml, f.Y())
}

// calcAbsoluteVertical solves the vertical constraints of an absolutely
// positioned frame, after its content has been laid out.
func (ctx *Context) calcAbsoluteVertical(f *frame.Frame) {
	cont := f.ContainingBlock()
	cw := ctx.cbWidth()
	ch := cont.PaddingBoxHeight()
	bt := cont.BorderWidth[frame.Top]
	decor := f.InnerDecorationHeight()
	s := f.Style
	tAuto, bAuto := s.Offsets[frame.Top].IsVariable(), s.Offsets[frame.Bottom].IsVariable()
	top, bottom := s.Offsets[frame.Top].Resolve(ch), s.Offsets[frame.Bottom].Resolve(ch)
	mtAuto, mbAuto := s.Margins[frame.Top].IsAuto(), s.Margins[frame.Bottom].IsAuto()
	mt, mb := frame.ResolveMargin(s.Margins[frame.Top], cw), frame.ResolveMargin(s.Margins[frame.Bottom], cw)
	if tAuto && bAuto {
		_, sy := staticPosition(f, cont)
		top, tAuto = sy-bt, false
	}
	h := f.H - decor
	switch {
	case f.IsReplaced() && s.Height.IsVariable():
		h = f.IntrinsicH
	case s.Height.IsAbsolute():
		h = s.Height.Unwrap()
	case s.Height.IsPercent():
		h = ch.Scale(int64(s.Height.Unwrap()))
	case !tAuto && !bAuto:
		if mtAuto {
			mt, mtAuto = 0, false
		}
		if mbAuto {
			mb, mbAuto = 0, false
		}
		h = ch - top - bottom - mt - mb - decor
	}
	if max := s.MaxHeight; max.IsAbsolute() {
		h = dimen.Min(h, max.Unwrap())
	}
	if min := s.MinHeight; min.IsAbsolute() {
		h = dimen.Max(h, min.Unwrap())
	}
	f.H = dimen.NonNegative(h) + decor
	if tAuto || bAuto {
		if mtAuto {
			mt = 0
		}
		if mbAuto {
			mb = 0
		}
	}
	switch {
	case tAuto:
		top = ch - bottom - mt - mb - f.H
	case bAuto:
	case mtAuto && mbAuto:
		free := dimen.NonNegative(ch - top - bottom - f.H)
		mt = free / 2
		mb = free - mt
	case mtAuto:
		mt = ch - top - bottom - mb - f.H
	case mbAuto:
		mb = ch - top - bottom - mt - f.H
	}
	f.Margins[frame.Top], f.Margins[frame.Bottom] = mt, mb
	f.SetPos(f.X(), bt+top+mt)
}
