package frame

import (
	"fmt"

	"github.com/emirpasic/gods/sets/linkedhashset"
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// Frame is a box within the render tree.
//
// A frame is created for every element which generates a box, for runs of
// text, and for anonymous blocks wrapping inline content. Kind selects the
// layout behaviour of a frame.
type Frame struct {
	Box
	Style      *css.Style   // computed style, read-only for layout
	Name       string       // element name, empty for anonymous frames
	ID         string       // element ID, may be empty
	Text       string       // text content for Text frames
	IntrinsicW dimen.Dimen  // intrinsic size of replaced frames
	IntrinsicH dimen.Dimen  //
	MinW, MaxW dimen.Dimen  // intrinsic widths, valid if MinMaxKnown()
	Margin     MarginValues // margin maxima for margin collapsing
	StaticX    dimen.Dimen  // static position of positioned frames
	StaticY    dimen.Dimen  //
	Lines      []LineBox    // line boxes of a frame with inline children
	kind       Kind
	flags      flags
	parent     *Frame
	firstChild *Frame
	lastChild  *Frame
	prev, next *Frame
	floats     *FloatList
	positioned *linkedhashset.Set
}

type flags uint16

const (
	needsLayout flags = 1 << iota
	normalChildNeedsLayout
	posChildNeedsLayout
	minMaxKnown
	childrenInline
	anonymous
)

// MarginValues holds the maximal positive and negative margins at the
// top and bottom of a frame. Margins of frames collapsing their margins
// with their children fold in the children's margins.
type MarginValues struct {
	TopPos, TopNeg       dimen.Dimen
	BottomPos, BottomNeg dimen.Dimen
	TopQuirk             bool
	BottomQuirk          bool
}

// LineBox is a line of inline content of a block.
type LineBox struct {
	TopL  dimen.Point // relative to the border box of the block
	W, H  dimen.Dimen
	Text  string   // text content of the line
	Atoms []*Frame // atomic inline-level frames placed on the line
}

// New creates a frame of kind k for an element. If style is nil, an initial
// style matching k is used.
func New(k Kind, style *css.Style, name string) *Frame {
	if style == nil {
		if k.IsBlockContainer() && k != InlineBlock {
			style = css.BlockStyle()
		} else {
			style = css.InitialStyle()
		}
	}
	f := &Frame{
		Style: style,
		Name:  name,
		kind:  k,
		flags: needsLayout | childrenInline,
	}
	return f
}

// NewAnonymous creates an anonymous block frame. Inherited properties are
// taken from parent, which may be nil.
func NewAnonymous(parent *Frame) *Frame {
	style := css.BlockStyle()
	if parent != nil {
		style.InheritFrom(parent.Style)
	}
	f := New(Block, style, "")
	f.flags |= anonymous
	return f
}

// NewText creates a text frame, inheriting style from parent (which may be nil).
func NewText(text string, parent *Frame) *Frame {
	style := css.InitialStyle()
	if parent != nil {
		style.InheritFrom(parent.Style)
	}
	f := New(Text, style, "#text")
	f.Text = text
	return f
}

// NewReplaced creates a replaced frame with an intrinsic size.
func NewReplaced(style *css.Style, name string, w, h dimen.Dimen) *Frame {
	f := New(Replaced, style, name)
	f.IntrinsicW, f.IntrinsicH = w, h
	return f
}

// Kind returns the kind of a frame.
func (f *Frame) Kind() Kind {
	return f.kind
}

func (f *Frame) String() string {
	if f == nil {
		return "<nil frame>"
	}
	name := f.Name
	if f.IsAnonymous() {
		name = "anonymous"
	}
	if f.ID != "" {
		name += "#" + f.ID
	}
	return fmt.Sprintf("%s%s[%s]", f.kind.Symbol(), f.kind, name)
}

// --- Predicates ------------------------------------------------------------

// IsFloating returns true for floated frames.
func (f *Frame) IsFloating() bool {
	return f.kind != Text && f.kind != Canvas && f.Style.IsFloating()
}

// IsPositioned returns true for absolutely or fixed positioned frames.
func (f *Frame) IsPositioned() bool {
	return f.kind != Text && f.kind != Canvas && f.Style.IsOutOfFlowPositioned()
}

// IsRelPositioned returns true for relatively positioned frames.
func (f *Frame) IsRelPositioned() bool {
	return f.kind != Text && f.Style.Position == css.PositionRelative
}

// IsFloatingOrPositioned returns true if f is out of normal flow.
func (f *Frame) IsFloatingOrPositioned() bool {
	return f.IsFloating() || f.IsPositioned()
}

// IsInline returns true for frames which take part in an inline formatting
// context. Floats and positioned frames are never inline.
func (f *Frame) IsInline() bool {
	return f.kind.IsInlineLevel() && !f.IsFloatingOrPositioned()
}

// IsInlineFlow returns true for non-atomic inline frames, i.e. frames which
// may be split across lines.
func (f *Frame) IsInlineFlow() bool {
	return f.kind == Inline
}

// IsText returns true for text frames.
func (f *Frame) IsText() bool {
	return f.kind == Text
}

// IsBreak returns true for forced line breaks.
func (f *Frame) IsBreak() bool {
	return f.kind == Break
}

// IsReplaced returns true for replaced frames.
func (f *Frame) IsReplaced() bool {
	return f.kind == Replaced
}

// IsTable returns true for table frames.
func (f *Frame) IsTable() bool {
	return f.kind == Table
}

// IsTableCell returns true for table cells.
func (f *Frame) IsTableCell() bool {
	return f.kind == TableCell
}

// IsCanvas returns true for the root frame of a frame tree.
func (f *Frame) IsCanvas() bool {
	return f.kind == Canvas
}

// IsRoot returns true for the root element's frame, i.e. the child of the canvas.
func (f *Frame) IsRoot() bool {
	return f.parent != nil && f.parent.IsCanvas() && !f.IsAnonymous()
}

// IsBody returns true for the frame of a body element.
func (f *Frame) IsBody() bool {
	return f.Name == "body"
}

// IsFieldset returns true for fieldset frames.
func (f *Frame) IsFieldset() bool {
	return f.kind == Fieldset
}

// IsLegend returns true for the frame of a legend element.
func (f *Frame) IsLegend() bool {
	return f.Name == "legend" && !f.IsFloatingOrPositioned()
}

// IsInlineBlock returns true for atomic inline-level block containers.
func (f *Frame) IsInlineBlock() bool {
	return f.kind == InlineBlock
}

// IsAnonymous returns true for anonymous blocks.
func (f *Frame) IsAnonymous() bool {
	return f.flags&anonymous != 0
}

// IsBlockContainer returns true if f lays out its children as a block flow.
func (f *Frame) IsBlockContainer() bool {
	return f.kind.IsBlockContainer()
}

// HidesOverflow returns true for frames with overflow other than visible.
func (f *Frame) HidesOverflow() bool {
	return f.kind != Text && f.Style.HidesOverflow()
}

// FlowAroundFloats returns true for frames which do not let floats intrude
// into their content, but are narrowed to fit next to the floats.
func (f *Frame) FlowAroundFloats() bool {
	return f.kind == Table || f.kind == Replaced
}

// ChildrenInline returns true if f's children are all inline-level (or
// floating or positioned).
func (f *Frame) ChildrenInline() bool {
	return f.flags&childrenInline != 0
}

// SetChildrenInline sets the children-inline flag of a frame.
// Clients will normally use the transformations of package boxtree instead.
func (f *Frame) SetChildrenInline(b bool) {
	f.setFlag(childrenInline, b)
}

// HasLayer returns true for frames which establish a painting layer.
func (f *Frame) HasLayer() bool {
	return f.IsCanvas() || f.IsPositioned() || f.IsRelPositioned() || f.HidesOverflow()
}

// EnclosingLayer returns the nearest ancestor-or-self establishing a
// painting layer.
func (f *Frame) EnclosingLayer() *Frame {
	for o := f; o != nil; o = o.parent {
		if o.HasLayer() {
			return o
		}
	}
	return nil
}

// HasFloats returns true if f holds any float records.
func (f *Frame) HasFloats() bool {
	return f.floats != nil && f.floats.Len() > 0
}

// Floats returns the list of float records of a frame, creating it if
// necessary.
func (f *Frame) Floats() *FloatList {
	if f.floats == nil {
		f.floats = &FloatList{}
	}
	return f.floats
}

// --- Containing blocks -----------------------------------------------------

// Container returns the frame a frame's position refers to. For absolutely
// positioned frames this is the nearest positioned ancestor, for fixed
// positioned frames it is the canvas. For all other frames it is the parent.
func (f *Frame) Container() *Frame {
	if f.kind == Text || f.parent == nil {
		return f.parent
	}
	switch f.Style.Position {
	case css.PositionFixed:
		return f.Root()
	case css.PositionAbsolute:
		o := f.parent
		for o.parent != nil && (o.Style.Position == css.PositionStatic || o.kind == Text) {
			o = o.parent
		}
		return o
	}
	return f.parent
}

// ContainingBlock returns the block container a frame's dimensions are
// computed against. For the canvas, the canvas itself is returned.
func (f *Frame) ContainingBlock() *Frame {
	if f.parent == nil {
		return f
	}
	o := f.parent
	if !f.IsText() && f.IsPositioned() {
		o = f.Container()
	}
	for o.parent != nil && !o.IsBlockContainer() {
		o = o.parent
	}
	return o
}

func (f *Frame) setFlag(fl flags, b bool) {
	if b {
		f.flags |= fl
	} else {
		f.flags &^= fl
	}
}

// Blockify turns an inline flow frame into a block frame, as required for
// floated and absolutely positioned elements. Atomic inline-level frames,
// text and block containers are not changed.
func (f *Frame) Blockify() {
	if f.kind == Inline {
		f.kind = Block
		f.SetNeedsLayoutAndMinMaxRecalc()
	}
}
