package frame

import (
	"testing"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestBoxGeometry(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	box := &Box{W: 100 * dimen.PX, H: 50 * dimen.PX}
	box.Padding[Left] = 5 * dimen.PX
	box.BorderWidth[Right] = 2 * dimen.PX
	box.Padding[Top] = 3 * dimen.PX
	box.Margins[Left] = 10 * dimen.PX
	assert.Equal(t, 93*dimen.PX, box.ContentWidth())
	assert.Equal(t, 47*dimen.PX, box.ContentHeight())
	assert.Equal(t, 110*dimen.PX, box.TotalWidth())
	assert.Equal(t, 5*dimen.PX, box.BorderLeft())
	box.W = 4 * dimen.PX
	assert.Equal(t, dimen.Zero, box.ContentWidth(), "content width must not be negative")
	t.Log(box.DebugString())
}

func TestResolveDecorations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	style := css.BlockStyle()
	style.Padding[Top] = css.PercentDimen(10)
	style.Padding[Left] = css.Px(-5)
	style.BorderWidth[Bottom] = css.Px(2)
	box := &Box{}
	ResolveDecorations(box, style, 200*dimen.PX)
	assert.Equal(t, 20*dimen.PX, box.Padding[Top], "percentages refer to containing block width")
	assert.Equal(t, dimen.Zero, box.Padding[Left], "negative padding is clamped")
	assert.Equal(t, 2*dimen.PX, box.BorderWidth[Bottom])
}

func TestCollapseMargins(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	assert.Equal(t, 20*dimen.PX, CollapseMargins(20*dimen.PX, 10*dimen.PX))
	assert.Equal(t, 10*dimen.PX, CollapseMargins(20*dimen.PX, -10*dimen.PX))
	assert.Equal(t, -15*dimen.PX, CollapseMargins(-5*dimen.PX, -15*dimen.PX))
}

func TestTreeOperations(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	root := New(Block, nil, "div")
	a := New(Block, nil, "p")
	b := New(Block, nil, "p")
	c := New(Block, nil, "p")
	root.AppendChildNode(a)
	root.AppendChildNode(c)
	root.InsertChildNodeBefore(b, c)
	assert.Equal(t, []*Frame{a, b, c}, root.Children())
	assert.Equal(t, a, b.PrevSibling())
	assert.Equal(t, c, b.NextSibling())
	assert.Equal(t, b, root.RemoveChildNode(b))
	assert.Equal(t, 2, root.ChildCount())
	assert.Nil(t, b.Parent())
	assert.Equal(t, c, a.NextSibling())
	assert.Nil(t, root.RemoveChildNode(b), "b is no longer a child")
	assert.True(t, c.IsDescendantOf(root))
}

func TestContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	canvas := New(Canvas, nil, "")
	rel := New(Block, nil, "div")
	rel.Style.Position = css.PositionRelative
	p := New(Block, nil, "p")
	span := New(Inline, nil, "span")
	abs := New(Block, nil, "div")
	abs.Style.Position = css.PositionAbsolute
	fixed := New(Block, nil, "div")
	fixed.Style.Position = css.PositionFixed
	canvas.AppendChildNode(rel)
	rel.AppendChildNode(p)
	p.AppendChildNode(span)
	span.AppendChildNode(abs)
	span.AppendChildNode(fixed)
	assert.Equal(t, rel, abs.Container())
	assert.Equal(t, rel, abs.ContainingBlock())
	assert.Equal(t, canvas, fixed.Container())
	assert.Equal(t, p, span.ContainingBlock())
	assert.True(t, rel.IsRoot())
	assert.Equal(t, rel, span.EnclosingLayer())
	assert.Equal(t, abs, abs.EnclosingLayer())
}

func TestDirtyPropagation(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	canvas := New(Canvas, nil, "")
	body := New(Block, nil, "body")
	div := New(Block, nil, "div")
	sibling := New(Block, nil, "div")
	abs := New(Block, nil, "div")
	abs.Style.Position = css.PositionAbsolute
	canvas.AppendChildNode(body)
	body.AppendChildNode(div)
	body.AppendChildNode(sibling)
	div.AppendChildNode(abs)
	canvas.Walk(func(f *Frame) bool {
		f.SetLayouted()
		f.SetMinMaxKnown(true)
		return true
	})
	assert.False(t, canvas.NeedsLayout())
	div.SetNeedsLayout(true, true)
	assert.True(t, body.NormalChildNeedsLayout())
	assert.True(t, canvas.NormalChildNeedsLayout())
	assert.False(t, sibling.NeedsLayout())
	assert.False(t, canvas.PosChildNeedsLayout())
	//
	abs.SetNeedsLayout(true, true)
	assert.True(t, canvas.PosChildNeedsLayout(), "abs is contained by the canvas")
	assert.False(t, div.PosChildNeedsLayout())
	//
	div.SetMinMaxKnown(false)
	assert.False(t, body.MinMaxKnown())
	assert.False(t, canvas.MinMaxKnown())
	assert.True(t, sibling.MinMaxKnown())
}

func TestFloatList(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	block := New(Block, nil, "div")
	f1 := New(Block, nil, "div")
	f1.Style.Float = css.FloatLeft
	assert.True(t, f1.IsFloating())
	assert.False(t, f1.IsInline())
	r := &FloatRecord{Frame: f1, Side: css.FloatLeft, StartY: Unpositioned, EndY: Unpositioned}
	assert.False(t, r.IsPositioned())
	assert.True(t, block.Floats().Append(r))
	assert.False(t, block.Floats().Append(r.Copy()), "a float is recorded only once")
	assert.True(t, block.HasFloats())
	assert.True(t, block.Floats().Contains(f1))
	assert.True(t, block.Floats().Remove(f1))
	assert.False(t, block.HasFloats())
}

func TestForgetFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	root := New(Canvas, nil, "")
	div := New(Block, nil, "div")
	float := New(Block, nil, "div")
	float.Style.Float = css.FloatRight
	abs := New(Block, nil, "div")
	abs.Style.Position = css.PositionAbsolute
	root.AppendChildNode(div)
	div.AppendChildNode(float)
	div.AppendChildNode(abs)
	div.Floats().Append(&FloatRecord{Frame: float, Side: css.FloatRight})
	root.Floats().Append(&FloatRecord{Frame: float, Side: css.FloatRight})
	root.InsertPositionedObject(abs)
	root.InsertPositionedObject(abs)
	assert.Equal(t, []*Frame{abs}, root.PositionedObjects())
	root.RemoveChildNode(div)
	assert.False(t, root.HasFloats())
	assert.False(t, root.HasPositionedObjects())
}

func TestKinds(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.frame")
	defer teardown()
	//
	assert.Equal(t, ListItem, KindForDisplay(css.DisplayListItem))
	assert.Equal(t, NoKind, KindForDisplay(css.DisplayNone))
	k, ok := KindFromName("tablecell")
	assert.True(t, ok)
	assert.Equal(t, TableCell, k)
	assert.True(t, InlineBlock.IsInlineLevel())
	assert.True(t, InlineBlock.IsBlockContainer())
	assert.Equal(t, "block", NewAnonymous(nil).Kind().String())
}
