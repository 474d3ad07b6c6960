package layout

import (
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/frame/inline"
)

// layoutInlineChildren hands the inline content of f to the inline
// collaborator and sets the height of f from the resulting lines.
func (ctx *Context) layoutInlineChildren(f *frame.Frame, relayoutChildren bool) {
	if relayoutChildren {
		walkInlineContent(f, func(c *frame.Frame) {
			if !c.IsText() && !c.IsBreak() && !c.IsInlineFlow() {
				c.SetNeedsLayout(true, false)
			}
		})
	}
	env := &blockEnv{ctx: ctx, block: f, fm: ctx.floatAware(f)}
	ctx.pushCB(f.ContentWidth())
	res := ctx.Inline.Layout(f, env)
	ctx.popCB()
	f.H = dimen.Max(res.Bottom, f.BorderTop()) + f.BorderBottom()
	f.OverflowH = dimen.Max(f.OverflowH, f.H)
	f.OverflowW = dimen.Max(f.OverflowW, res.Width+f.BorderRight())
	walkInlineContent(f, func(c *frame.Frame) {
		if c.IsText() || c.IsBreak() || c.IsInlineFlow() {
			c.SetLayouted()
		}
	})
}

// walkInlineContent calls fn for every frame of the inline formatting
// context of block, in document order. It does not descend into atomic
// inlines, floats or positioned frames.
func walkInlineContent(block *frame.Frame, fn func(*frame.Frame)) {
	for c := block.FirstChild(); c != nil; c = c.NextSibling() {
		fn(c)
		if c.IsInlineFlow() && !c.IsFloatingOrPositioned() {
			walkInlineContent(c, fn)
		}
	}
}

// blockEnv is the view of a block the inline collaborator works with.
// It implements inline.Env.
type blockEnv struct {
	ctx   *Context
	block *frame.Frame
	fm    *FloatManager
}

var _ inline.Env = (*blockEnv)(nil)

func (env *blockEnv) LeftOffset(y dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	return env.fm.LeftOffset(y)
}

func (env *blockEnv) RightOffset(y dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	return env.fm.RightOffset(y)
}

func (env *blockEnv) NearestFloatBottom(y dimen.Dimen) dimen.Dimen {
	return env.fm.NearestFloatBottom(y)
}

// LayoutAtomic lays out a float or an atomic inline-level frame.
// Floats are registered with the block.
func (env *blockEnv) LayoutAtomic(f *frame.Frame) {
	if f.IsFloating() {
		env.fm.InsertFloat(f)
		return
	}
	if f.NeedsLayout() {
		env.ctx.layoutFrame(f)
	}
}

// PlaceFloat positions a float registered by LayoutAtomic at height y
// or below.
func (env *blockEnv) PlaceFloat(f *frame.Frame, y dimen.Dimen) {
	b := env.block
	h := b.H
	b.H = y
	env.fm.PositionNewFloats()
	b.H = h
}

// PlacePositioned records the static position of a positioned frame within
// a line. For right-to-left blocks the static position is the right edge
// of the line.
func (env *blockEnv) PlacePositioned(f *frame.Frame, x, y dimen.Dimen) {
	if env.ctx.rtl(env.block) {
		x, _ = env.fm.RightOffset(y)
	}
	env.ctx.registerPositioned(env.block, f, x, y)
}
