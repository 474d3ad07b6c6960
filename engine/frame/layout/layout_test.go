package layout

import (
	"testing"

	"github.com/npillmayer/blockflow/core"
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/core/parameters"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
	"github.com/npillmayer/blockflow/input/html"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const px = dimen.PX

// standards builds a document in standards mode, with a body without margins.
func standards(t *testing.T, body string) *html.Document {
	doc, err := html.BuildString("<!DOCTYPE html><style>body { margin: 0 }</style>" + body)
	require.NoError(t, err)
	return doc
}

// layoutDoc lays out a document with default parameters.
func layoutDoc(t *testing.T, doc *html.Document) *Context {
	regs := parameters.NewLayoutRegisters()
	doc.ApplyTo(regs)
	ctx := NewContext(regs)
	require.NoError(t, ctx.Layout(doc.Canvas))
	return ctx
}

func byID(t *testing.T, doc *html.Document, id string) *frame.Frame {
	f := doc.FrameByID(id)
	require.NotNil(t, f, "no frame with ID %q", id)
	return f
}

// boxes collects the geometry of all frames of a tree.
func boxes(root *frame.Frame) []frame.Box {
	var bb []frame.Box
	root.Walk(func(f *frame.Frame) bool {
		bb = append(bb, f.Box)
		return true
	})
	return bb
}

func TestCanvasHasViewportWidth(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="d">Hello World</div>`)
	layoutDoc(t, doc)
	assert.Equal(t, 800*px, doc.Canvas.W)
	d := byID(t, doc, "d")
	assert.Equal(t, 800*px, d.W)
	assert.Equal(t, 16*px, d.H, "one line of text")
	require.Len(t, d.Lines, 1)
	assert.Equal(t, "Hello World", d.Lines[0].Text)
	assert.False(t, doc.Canvas.NeedsLayout())
	assert.GreaterOrEqual(t, doc.Canvas.H, d.H)
}

func TestLayoutIsIdempotent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div style="height: 10px; margin-bottom: 20px"></div>`+
		`<div style="float: left; width: 40px; height: 30px"></div>`+
		`<p style="margin: 12px 4px">aaa bbb ccc ddd eee fff ggg hhh</p>`+
		`<div style="clear: both"><span>x</span></div>`)
	ctx := layoutDoc(t, doc)
	first := boxes(doc.Canvas)
	doc.Canvas.Walk(func(f *frame.Frame) bool {
		f.SetNeedsLayout(true, false)
		return true
	})
	require.NoError(t, ctx.Layout(doc.Canvas))
	assert.Equal(t, first, boxes(doc.Canvas), "second layout pass must not move anything")
}

func TestCleanTreeIsNotLaidOut(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="a" style="height: 10px"></div><div id="b" style="height: 10px"></div>`)
	ctx := layoutDoc(t, doc)
	b := byID(t, doc, "b")
	b.H = 99 * px // a clean frame is not touched
	require.NoError(t, ctx.Layout(doc.Canvas))
	assert.Equal(t, 99*px, b.H)
}

func TestDirtyFrameIsLaidOutAgain(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="a" style="height: 10px"></div><div id="b" style="height: 10px"></div>`+
		`<div id="c" style="height: 10px"></div>`)
	ctx := layoutDoc(t, doc)
	a, b, c := byID(t, doc, "a"), byID(t, doc, "b"), byID(t, doc, "c")
	assert.Equal(t, 20*px, c.Y())
	b.Style.Height = css.Px(25)
	b.SetNeedsLayout(true, true)
	assert.True(t, doc.Canvas.NeedsLayout())
	assert.False(t, a.NeedsLayout())
	require.NoError(t, ctx.Layout(doc.Canvas))
	assert.Equal(t, 25*px, b.H)
	assert.Equal(t, 10*px, a.H)
	assert.Equal(t, 35*px, c.Y(), "following sibling moves down")
	assert.False(t, b.NeedsLayout())
}

func TestNestingDepthIsBounded(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div><div><div><div><div><div><div id="deep" style="height: 5px">`+
		`</div></div></div></div></div></div></div><div id="sibling" style="height: 7px"></div>`)
	regs := parameters.NewLayoutRegisters()
	regs.Push(parameters.P_MAXDEPTH, 5)
	err := Layout(doc.Canvas, regs)
	require.Error(t, err)
	assert.True(t, core.IsCode(err, core.EDEPTH))
	deep := byID(t, doc, "deep")
	assert.Equal(t, dimen.Dimen(0), deep.H)
	assert.False(t, deep.NeedsLayout())
	assert.Equal(t, 7*px, byID(t, doc, "sibling").H, "shallow frames are laid out")
}

func TestAbsolutePositioning(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="cb" style="position: relative; width: 200px; height: 100px">`+
		`<div id="p" style="position: absolute; right: 10px; top: 5px; width: 50px; height: 20px"></div>`+
		`</div>`)
	layoutDoc(t, doc)
	cb, p := byID(t, doc, "cb"), byID(t, doc, "p")
	assert.Equal(t, cb, p.ContainingBlock())
	assert.Contains(t, cb.PositionedObjects(), p)
	assert.Equal(t, 140*px, p.X())
	assert.Equal(t, 5*px, p.Y())
	assert.Equal(t, 50*px, p.W)
	assert.Equal(t, 20*px, p.H)
	assert.Equal(t, 100*px, cb.H, "positioned frames do not take space")
}

func TestStretchedAbsoluteFrame(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="cb" style="position: relative; width: 200px; height: 100px">`+
		`<div id="p" style="position: absolute; left: 10px; right: 30px; top: 10px; bottom: 20px"></div>`+
		`</div>`)
	layoutDoc(t, doc)
	p := byID(t, doc, "p")
	assert.Equal(t, 10*px, p.X())
	assert.Equal(t, 160*px, p.W)
	assert.Equal(t, 10*px, p.Y())
	assert.Equal(t, 70*px, p.H)
}

func TestRelativeOffset(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="r" style="position: relative; left: 10px; top: 4px; height: 10px"></div>`+
		`<div id="n" style="height: 10px"></div>`)
	layoutDoc(t, doc)
	r, n := byID(t, doc, "r"), byID(t, doc, "n")
	assert.Equal(t, 10*px, r.X())
	assert.Equal(t, 4*px, r.Y())
	assert.Equal(t, 10*px, n.Y(), "relative offsets do not influence siblings")
}

func TestCenteredBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="d" style="width: 200px; margin: 0 auto; height: 10px"></div>`)
	layoutDoc(t, doc)
	d := byID(t, doc, "d")
	assert.Equal(t, 300*px, d.X())
	assert.Equal(t, 300*px, d.Margins[frame.Left])
	assert.Equal(t, 300*px, d.Margins[frame.Right])
}

func TestOnlyPositionedChildNeedsLayout(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="cb" style="position: relative; width: 200px; height: 100px">`+
		`<div id="k">text</div>`+
		`<div id="p" style="position: absolute; left: 10px; top: 5px; width: 50px; height: 20px"></div>`+
		`</div><div id="s">x</div>`)
	ctx := layoutDoc(t, doc)
	cb, k, p, s := byID(t, doc, "cb"), byID(t, doc, "k"), byID(t, doc, "p"), byID(t, doc, "s")
	require.Equal(t, 10*px, p.X())
	// geometry which a full layout of cb would overwrite
	cb.W, k.H = 123*px, 99*px
	p.Style.Offsets[frame.Left] = css.Px(30)
	p.SetNeedsLayout(true, true)
	assert.True(t, cb.PosChildNeedsLayout())
	assert.False(t, cb.SelfNeedsLayout())
	assert.False(t, cb.NormalChildNeedsLayout())
	assert.False(t, s.NeedsLayout())
	require.NoError(t, ctx.Layout(doc.Canvas))
	assert.Equal(t, 30*px, p.X())
	assert.False(t, p.NeedsLayout())
	assert.False(t, cb.NeedsLayout())
	assert.Equal(t, 123*px, cb.W, "cb has not been laid out again")
	assert.Equal(t, 99*px, k.H, "in-flow children are untouched")
	assert.Equal(t, 100*px, s.Y())
}

func TestCompactIsTuckedIntoMargin(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="c" style="display: compact">ab</div>`+
		`<div id="t" style="margin-left: 40px">text</div>`)
	layoutDoc(t, doc)
	c, tg := byID(t, doc, "c"), byID(t, doc, "t")
	assert.Equal(t, 16*px, c.W, "compact is shrink-to-fit")
	assert.Equal(t, dimen.Dimen(0), c.X())
	assert.Equal(t, tg.Y(), c.Y())
	assert.Equal(t, dimen.Dimen(0), tg.Y(), "compact does not advance the flow")
	assert.Equal(t, 40*px, tg.X())
	//
	doc = standards(t, `<div id="c" style="display: compact">ab</div>`+
		`<div id="t" style="margin-left: 10px">text</div>`)
	layoutDoc(t, doc)
	c, tg = byID(t, doc, "c"), byID(t, doc, "t")
	assert.Equal(t, 800*px, c.W, "too wide for the margin, laid out as a block")
	assert.Equal(t, 16*px, tg.Y())
}

func TestFieldsetLegend(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<fieldset id="fs" style="margin: 0; padding: 0; border: 4px solid">`+
		`<legend id="l" style="padding: 0">ab</legend><div id="d">x</div></fieldset>`)
	layoutDoc(t, doc)
	fs, l, d := byID(t, doc, "fs"), byID(t, doc, "l"), byID(t, doc, "d")
	assert.True(t, fs.IsFieldset())
	assert.True(t, l.IsLegend())
	assert.Equal(t, 4*px, l.X())
	assert.Equal(t, dimen.Dimen(0), l.Y(), "legend sits on the top border")
	assert.Equal(t, 16*px, l.H)
	assert.Equal(t, 16*px, d.Y(), "legend is not part of the child flow")
	assert.Equal(t, 36*px, fs.H)
}

func TestHugeWidthSaturates(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="big" style="width:40000px;height:10px"></div>`)
	layoutDoc(t, doc)
	big := byID(t, doc, "big")
	assert.Equal(t, dimen.Dimen(dimen.Infinity), big.W)
	assert.Equal(t, 10*px, big.H)
}
