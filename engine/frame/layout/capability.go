package layout

import (
	"github.com/npillmayer/blockflow/engine/frame"
)

// Layoutable is implemented by every frame variant. Layout computes the
// geometry of a frame and of its subtree, as far as parts of it need
// layout. If relayoutChildren is set, all children are laid out again.
type Layoutable interface {
	Layout(ctx *Context, relayoutChildren bool)
}

// MinMaxComputable is implemented by frame variants with intrinsic widths.
type MinMaxComputable interface {
	CalcMinMaxWidth(ctx *Context)
}

// FloatAware is implemented by frame variants which track floats, i.e.
// block containers.
type FloatAware interface {
	FloatManager(ctx *Context) *FloatManager
}

// Frame variants. The behaviour of a frame is selected by its kind.
type (
	blockFlow   struct{ *frame.Frame } // block containers
	replacedBox struct{ *frame.Frame } // frames with intrinsic dimensions
	inlineLevel struct{ *frame.Frame } // inline flows, text and breaks
)

// VariantOf returns the layout variant of a frame.
func VariantOf(f *frame.Frame) Layoutable {
	switch {
	case f.IsReplaced():
		return replacedBox{f}
	case f.IsBlockContainer():
		return blockFlow{f}
	case f.IsInlineFlow() && f.IsFloatingOrPositioned():
		return blockFlow{f} // not yet blockified
	}
	return inlineLevel{f}
}

func (b blockFlow) Layout(ctx *Context, relayoutChildren bool) {
	ctx.layoutBlock(b.Frame, relayoutChildren)
}

func (b blockFlow) CalcMinMaxWidth(ctx *Context) {
	ctx.calcBlockFlowMinMax(b.Frame)
}

func (b blockFlow) FloatManager(ctx *Context) *FloatManager {
	return ctx.floats(b.Frame)
}

func (r replacedBox) Layout(ctx *Context, relayoutChildren bool) {
	f := r.Frame
	ctx.calcWidth(f)
	f.H = f.IntrinsicH + f.InnerDecorationHeight()
	ctx.calcHeight(f)
	f.OverflowW, f.OverflowH = f.W, f.H
	f.SetLayouted()
}

func (r replacedBox) CalcMinMaxWidth(ctx *Context) {
	ctx.calcReplacedMinMax(r.Frame)
}

// Inline-level frames other than atomic inlines are laid out by the
// inline formatter of their block.
func (il inlineLevel) Layout(ctx *Context, relayoutChildren bool) {
	il.SetLayouted()
}

func (il inlineLevel) CalcMinMaxWidth(ctx *Context) {
	il.MinW, il.MaxW = 0, 0
}

// layoutFrame lays out a frame of any kind, honouring the recursion bound.
func (ctx *Context) layoutFrame(f *frame.Frame) {
	defer ctx.leave()
	if !ctx.enter(f) {
		return
	}
	VariantOf(f).Layout(ctx, false)
}

// ensureMinMax makes sure the intrinsic widths of f are known.
func (ctx *Context) ensureMinMax(f *frame.Frame) {
	if f.MinMaxKnown() {
		return
	}
	defer ctx.leave()
	if !ctx.enter(f) {
		return
	}
	if mm, ok := VariantOf(f).(MinMaxComputable); ok {
		mm.CalcMinMaxWidth(ctx)
	}
	if f.MaxW < f.MinW {
		f.MaxW = f.MinW
	}
	f.SetMinMaxKnown(true)
}

// floatAware returns the float manager of f, or nil if f is not able to
// hold floats.
func (ctx *Context) floatAware(f *frame.Frame) *FloatManager {
	if fa, ok := VariantOf(f).(FloatAware); ok {
		return fa.FloatManager(ctx)
	}
	return nil
}
