package layout

import (
	"github.com/emirpasic/gods/stacks/arraystack"
	"github.com/npillmayer/blockflow/core"
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/core/parameters"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/frame/inline"
	"github.com/npillmayer/blockflow/engine/style/css"
	"golang.org/x/text/unicode/bidi"
)

// InlineLayouter is the collaborator responsible for inline formatting
// contexts. Package inline provides a default implementation.
type InlineLayouter interface {
	// Layout breaks the inline children of block into lines.
	Layout(block *frame.Frame, env inline.Env) inline.Result
	// TrimmedMinMax returns the intrinsic widths of a run of text.
	TrimmedMinMax(text string, ws css.WhiteSpace, stripFront bool) inline.TextMinMax
	// SpaceWidth returns the width of a collapsible space.
	SpaceWidth() dimen.Dimen
}

// Context is the environment of a layout pass.
type Context struct {
	Quirks        bool          // quirks mode
	Direction     css.Direction // base direction of the canvas
	MaxDepth      int           // maximum nesting depth of frames, 0 for unbounded
	ViewportWidth dimen.Dimen   // width of the initial containing block
	Inline        InlineLayouter
	cbWidths      *arraystack.Stack // widths of containing blocks
	depth         int
	tucked        *frame.Frame // compact frame laid out to fit into a margin
	err           error
}

// NewContext creates a layout context from a set of layout registers.
// If regs is nil, default registers are used.
func NewContext(regs *parameters.LayoutRegisters) *Context {
	if regs == nil {
		regs = parameters.NewLayoutRegisters()
	}
	dir := css.LTR
	if regs.Direction() == bidi.RightToLeft {
		dir = css.RTL
	}
	return &Context{
		Quirks:        regs.B(parameters.P_QUIRKS),
		Direction:     dir,
		MaxDepth:      regs.N(parameters.P_MAXDEPTH),
		ViewportWidth: regs.D(parameters.P_VIEWPORTWIDTH),
		Inline:        inline.NewFormatter(regs.D(parameters.P_EM), regs.D(parameters.P_LINEHEIGHT)),
		cbWidths:      arraystack.New(),
	}
}

// Err returns the first error of the most recent layout pass.
func (ctx *Context) Err() error {
	return ctx.err
}

// --- Containing block widths -----------------------------------------------

func (ctx *Context) pushCB(w dimen.Dimen) {
	ctx.cbWidths.Push(dimen.NonNegative(w))
}

func (ctx *Context) popCB() {
	ctx.cbWidths.Pop()
}

// cbWidth returns the width of the current containing block.
func (ctx *Context) cbWidth() dimen.Dimen {
	if w, ok := ctx.cbWidths.Peek(); ok {
		return w.(dimen.Dimen)
	}
	return ctx.ViewportWidth
}

// --- Recursion bound -------------------------------------------------------

// enter increments the nesting depth. If the depth exceeds the maximum,
// f and its subtree are left with zero size and enter returns false.
// Every call has to be matched by a call to leave.
func (ctx *Context) enter(f *frame.Frame) bool {
	ctx.depth++
	if ctx.MaxDepth <= 0 || ctx.depth <= ctx.MaxDepth {
		return true
	}
	if ctx.err == nil {
		ctx.err = core.Error(core.EDEPTH, "frame %s nested deeper than %d levels", f, ctx.MaxDepth)
		tracer().Errorf("layout: %v", ctx.err)
	}
	f.Walk(func(o *frame.Frame) bool {
		o.W, o.H = 0, 0
		o.OverflowW, o.OverflowH = 0, 0
		o.MinW, o.MaxW = 0, 0
		o.Lines = nil
		o.SetMinMaxKnown(true)
		o.SetLayouted()
		return true
	})
	return false
}

func (ctx *Context) leave() {
	ctx.depth--
}

// rtl is true if f lays out its children right to left.
func (ctx *Context) rtl(f *frame.Frame) bool {
	if f.IsCanvas() {
		return ctx.Direction == css.RTL
	}
	return f.Style.Direction == css.RTL
}
