package layout

import (
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// calcWidth computes the border box width of f from its style and the width
// of the current containing block, together with its padding, border and
// margins.
func (ctx *Context) calcWidth(f *frame.Frame) {
	cw := ctx.cbWidth()
	frame.ResolveDecorations(&f.Box, f.Style, cw)
	decor := f.InnerDecorationWidth()
	switch {
	case f.IsCanvas():
		f.W = ctx.ViewportWidth
		f.Margins = [4]dimen.Dimen{}
		return
	case f.IsPositioned():
		ctx.calcAbsoluteHorizontal(f)
		ctx.calcVerticalMargins(f, cw)
		return
	case f.IsReplaced():
		w := f.Style.Width.ResolveOr(cw, f.IntrinsicW)
		f.W = clampWidth(f, w, cw) + decor
		ctx.calcHorizontalMargins(f, cw)
		ctx.calcVerticalMargins(f, cw)
		return
	}
	if f.Style.Width.IsVariable() {
		ml := frame.ResolveMargin(f.Style.Margins[frame.Left], cw)
		mr := frame.ResolveMargin(f.Style.Margins[frame.Right], cw)
		avail := cw - ml - mr
		switch {
		case ctx.shrinksToFit(f):
			ctx.ensureMinMax(f)
			f.W = dimen.Max(f.MinW, dimen.Min(f.MaxW, avail))
		case f.IsTableCell():
			f.W = cw
		default:
			f.W = avail
		}
		f.W = clampWidth(f, f.W-decor, cw) + decor
	} else {
		f.W = clampWidth(f, f.Style.Width.Resolve(cw), cw) + decor
	}
	ctx.calcHorizontalMargins(f, cw)
	ctx.calcVerticalMargins(f, cw)
	tracer().Debugf("%s: width = %v in containing block of width %v", f, f.W, cw)
}

// shrinksToFit is true for frames sized by their content if their width
// is auto.
func (ctx *Context) shrinksToFit(f *frame.Frame) bool {
	return f.IsFloating() || f.IsInlineBlock() || f.IsTable() || f == ctx.tucked
}

// clampWidth applies min-width and max-width to a content width w.
func clampWidth(f *frame.Frame, w, cw dimen.Dimen) dimen.Dimen {
	if max := f.Style.MaxWidth; !max.IsVariable() {
		w = dimen.Min(w, max.Resolve(cw))
	}
	if min := f.Style.MinWidth; !min.IsVariable() {
		w = dimen.Max(w, min.Resolve(cw))
	}
	return dimen.NonNegative(w)
}

// calcHorizontalMargins resolves left and right margins. For block-level
// frames in normal flow, auto margins take up the space left over in the
// containing block.
func (ctx *Context) calcHorizontalMargins(f *frame.Frame, cw dimen.Dimen) {
	ml, mr := f.Style.Margins[frame.Left], f.Style.Margins[frame.Right]
	if f.IsFloating() || f.IsInline() {
		f.Margins[frame.Left] = frame.ResolveMargin(ml, cw)
		f.Margins[frame.Right] = frame.ResolveMargin(mr, cw)
		return
	}
	center := ml.IsAuto() && mr.IsAuto()
	if !ml.IsAuto() && !mr.IsAuto() {
		if cb := f.ContainingBlock(); cb != f && cb.Style.TextAlign == css.TextAlignBlockCenter {
			center = true
		}
	}
	switch {
	case center:
		left := dimen.NonNegative((cw - f.W) / 2)
		f.Margins[frame.Left] = left
		f.Margins[frame.Right] = cw - f.W - left
	case mr.IsAuto():
		f.Margins[frame.Left] = frame.ResolveMargin(ml, cw)
		f.Margins[frame.Right] = cw - f.W - f.Margins[frame.Left]
	case ml.IsAuto():
		f.Margins[frame.Right] = frame.ResolveMargin(mr, cw)
		f.Margins[frame.Left] = cw - f.W - f.Margins[frame.Right]
	default:
		f.Margins[frame.Left] = frame.ResolveMargin(ml, cw)
		f.Margins[frame.Right] = frame.ResolveMargin(mr, cw)
	}
}

// calcVerticalMargins resolves top and bottom margins. Percentages refer to
// the width of the containing block. Table cells have no margins.
func (ctx *Context) calcVerticalMargins(f *frame.Frame, cw dimen.Dimen) {
	if f.IsTableCell() {
		f.Margins[frame.Top], f.Margins[frame.Bottom] = 0, 0
		return
	}
	f.Margins[frame.Top] = frame.ResolveMargin(f.Style.Margins[frame.Top], cw)
	f.Margins[frame.Bottom] = frame.ResolveMargin(f.Style.Margins[frame.Bottom], cw)
}

// calcHeight finishes the height of f, after content has been laid out and
// f.H holds the height of the content plus top and bottom decorations.
// A specified height overrides the content height.
func (ctx *Context) calcHeight(f *frame.Frame) {
	if f.IsPositioned() {
		ctx.calcAbsoluteVertical(f)
		return
	}
	if f.IsCanvas() {
		return
	}
	decor := f.InnerDecorationHeight()
	h := f.H - decor
	if f.IsReplaced() {
		h = f.IntrinsicH
	}
	if ch, ok := specifiedHeight(f, f.Style.Height); ok {
		h = ch
	}
	if max, ok := specifiedHeight(f, f.Style.MaxHeight); ok {
		h = dimen.Min(h, max)
	}
	if min, ok := specifiedHeight(f, f.Style.MinHeight); ok {
		h = dimen.Max(h, min)
	}
	f.H = dimen.NonNegative(h) + decor
}

// specifiedHeight resolves a height property. Percentages refer to the
// height of the containing block, which has to be specified absolutely.
func specifiedHeight(f *frame.Frame, h css.DimenT) (dimen.Dimen, bool) {
	switch {
	case h.IsAbsolute():
		return h.Unwrap(), true
	case h.IsPercent():
		cb := f.ContainingBlock()
		if cb == f {
			return 0, false
		}
		if cb.IsCanvas() {
			return 0, false
		}
		if cb.Style.Height.IsAbsolute() {
			return cb.Style.Height.Unwrap().Scale(int64(h.Unwrap())), true
		}
		if cb.IsPositioned() && cb.H > 0 {
			return cb.ContentHeight().Scale(int64(h.Unwrap())), true
		}
	}
	return 0, false
}

// flowsAround is true for block-level frames which are narrowed to fit
// beside floats instead of letting floats intrude into their content.
func (ctx *Context) flowsAround(f *frame.Frame) bool {
	return f.HidesOverflow() || ((ctx.Quirks || f.IsTable()) && f.FlowAroundFloats())
}
