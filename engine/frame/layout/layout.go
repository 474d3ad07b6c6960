package layout

import (
	"github.com/npillmayer/blockflow/core/parameters"
	"github.com/npillmayer/blockflow/engine/frame"
)

// Layout lays out the parts of the frame tree below root which need
// layout. root is usually a canvas frame, sized to the viewport width.
//
// Layout returns an error if the tree is nested deeper than allowed.
// Frames beyond the limit are left with zero size, the rest of the tree
// is laid out nevertheless.
func (ctx *Context) Layout(root *frame.Frame) error {
	ctx.err = nil
	ctx.depth = 0
	ctx.tucked = nil
	ctx.cbWidths.Clear()
	ctx.pushCB(ctx.ViewportWidth)
	defer ctx.popCB()
	if !root.NeedsLayout() {
		tracer().Debugf("%s is clean, nothing to lay out", root)
		return nil
	}
	tracer().Infof("layout of %s, viewport width %v", root, ctx.ViewportWidth)
	ctx.layoutFrame(root)
	return ctx.err
}

// Layout lays out a frame tree with a context created from regs, which may
// be nil.
func Layout(root *frame.Frame, regs *parameters.LayoutRegisters) error {
	return NewContext(regs).Layout(root)
}

// CalcMinMaxWidth computes the intrinsic widths of f, if they are not known.
func (ctx *Context) CalcMinMaxWidth(f *frame.Frame) {
	ctx.ensureMinMax(f)
}
