package layout

import (
	"testing"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatNarrowsLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="c" style="width: 100px">`+
		`<div id="f" style="float: left; width: 40px; height: 20px"></div>aaa bbb ccc</div>`)
	ctx := layoutDoc(t, doc)
	c, f := byID(t, doc, "c"), byID(t, doc, "f")
	assert.Equal(t, dimen.Dimen(0), f.X())
	assert.Equal(t, dimen.Dimen(0), f.Y())
	assert.Equal(t, 40*px, f.W)
	assert.Equal(t, 20*px, f.H)
	fm := ctx.floats(c)
	assert.True(t, fm.ContainsFloat(f))
	assert.Equal(t, 60*px, fm.LineWidth(0))
	assert.Equal(t, 100*px, fm.LineWidth(20*px))
	require.NotEmpty(t, c.Lines)
	assert.Equal(t, 40*px, c.Lines[0].TopL.X, "first line starts right of the float")
	assert.LessOrEqual(t, c.Lines[0].W, 60*px)
	assert.GreaterOrEqual(t, c.H, 32*px)
}

func TestClearance(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="box">`+
		`<div id="f" style="float: left; width: 30px; height: 50px"></div>`+
		`<div id="c" style="clear: left; height: 10px"></div></div>`)
	layoutDoc(t, doc)
	box, c := byID(t, doc, "box"), byID(t, doc, "c")
	assert.GreaterOrEqual(t, c.Y(), 50*px)
	assert.Equal(t, 60*px, box.H)
}

func TestClearRightIgnoresLeftFloats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="box">`+
		`<div style="float: left; width: 30px; height: 50px"></div>`+
		`<div id="r" style="float: right; width: 30px; height: 20px"></div>`+
		`<div id="c" style="clear: right; height: 10px"></div></div>`)
	layoutDoc(t, doc)
	r, c := byID(t, doc, "r"), byID(t, doc, "c")
	assert.Equal(t, 770*px, r.X())
	assert.Equal(t, 20*px, c.Y())
}

func TestSameSideFloatsStack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="f1" style="float: left; width: 300px; height: 20px"></div>`+
		`<div id="f2" style="float: left; width: 300px; height: 40px"></div>`+
		`<div id="f3" style="float: left; width: 300px; height: 10px"></div>`)
	layoutDoc(t, doc)
	f1, f2, f3 := byID(t, doc, "f1"), byID(t, doc, "f2"), byID(t, doc, "f3")
	assert.Equal(t, dimen.Dimen(0), f1.X())
	assert.Equal(t, 300*px, f2.X())
	assert.Equal(t, dimen.Dimen(0), f2.Y())
	assert.Equal(t, dimen.Dimen(0), f3.X(), "no room beside f2, f3 moves below it")
	assert.Equal(t, 40*px, f3.Y())
	assert.LessOrEqual(t, f1.Y(), f2.Y())
	assert.LessOrEqual(t, f2.Y(), f3.Y())
}

func TestFloatsInBlockFlow(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="a" style="height: 10px; margin-bottom: 10px"></div>`+
		`<div id="f" style="float: right; width: 50px; height: 50px"></div>`+
		`<div id="b" style="height: 10px; margin-top: 5px"></div>`)
	layoutDoc(t, doc)
	f, b := byID(t, doc, "f"), byID(t, doc, "b")
	assert.Equal(t, 750*px, f.X())
	assert.Equal(t, 20*px, f.Y(), "pending margin applies to the float")
	assert.Equal(t, 20*px, b.Y(), "floats do not take space in the block flow")
}

func TestOverflowHiddenEnclosesFloats(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="outer" style="overflow: hidden">`+
		`<div id="f" style="float: left; width: 20px; height: 30px"></div></div>`+
		`<div id="plain"><div style="float: left; width: 20px; height: 30px"></div></div>`)
	layoutDoc(t, doc)
	assert.Equal(t, 30*px, byID(t, doc, "outer").H)
	plain := byID(t, doc, "plain")
	assert.Equal(t, dimen.Dimen(0), plain.H)
	assert.Equal(t, 30*px, plain.EffectiveHeight(), "overhanging float counts as overflow")
}

func TestOverhangingFloatIsPropagated(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="box"><div id="inner">`+
		`<div id="f" style="float: left; width: 20px; height: 30px"></div></div>`+
		`<div id="c" style="clear: left">x</div></div>`)
	ctx := layoutDoc(t, doc)
	box, f, c := byID(t, doc, "box"), byID(t, doc, "f"), byID(t, doc, "c")
	assert.True(t, ctx.floats(box).ContainsFloat(f))
	assert.GreaterOrEqual(t, c.Y(), 30*px)
}

func TestFloatManagerOffsets(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	ctx := NewContext(nil)
	block := frame.New(frame.Block, nil, "div")
	block.W = 100 * px
	left := frame.New(frame.Block, nil, "div")
	left.Style.Float = css.FloatLeft
	left.Style.Width, left.Style.Height = css.Px(30), css.Px(10)
	right := frame.New(frame.Block, nil, "div")
	right.Style.Float = css.FloatRight
	right.Style.Width, right.Style.Height = css.Px(20), css.Px(40)
	block.AppendChildNode(left)
	block.AppendChildNode(right)
	ctx.pushCB(block.ContentWidth())
	fm := ctx.floats(block)
	fm.InsertFloat(left)
	fm.InsertFloat(right)
	fm.PositionNewFloats()
	x, remaining := fm.LeftOffset(0)
	assert.Equal(t, 30*px, x)
	assert.Equal(t, 10*px, remaining)
	x, _ = fm.RightOffset(0)
	assert.Equal(t, 80*px, x)
	assert.Equal(t, 50*px, fm.LineWidth(0))
	assert.Equal(t, 80*px, fm.LineWidth(10*px))
	assert.Equal(t, 10*px, fm.LeftBottom())
	assert.Equal(t, 40*px, fm.RightBottom())
	assert.Equal(t, 10*px, fm.NearestFloatBottom(0))
	assert.Equal(t, 40*px, fm.NearestFloatBottom(10*px))
	assert.True(t, fm.HasOverhangingFloats())
	fm.RemoveFloatingObject(right)
	assert.False(t, fm.ContainsFloat(right))
	assert.Equal(t, dimen.Dimen(0), fm.RightBottom())
	fm.ClearFloats()
	assert.False(t, fm.ContainsFloats())
}

func TestOverhangingFloatIsPaintedOnce(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="o"><div id="f" style="float: left; width: 20px; height: 30px"></div></div>`+
		`<div style="height: 50px"></div>`)
	layoutDoc(t, doc)
	o, f := byID(t, doc, "o"), byID(t, doc, "f")
	body := o.Parent()
	inner, outer := o.Floats().Find(f), body.Floats().Find(f)
	require.NotNil(t, inner)
	require.NotNil(t, outer, "float overhangs o and is copied into body")
	assert.True(t, inner.NoPaint, "painted by body")
	assert.False(t, outer.NoPaint)
	assert.False(t, inner.CrossedLayer)
	assert.False(t, outer.CrossedLayer)
}

func TestOverhangingFloatCrossesLayer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="o" style="position: relative">`+
		`<div id="f" style="float: left; width: 20px; height: 30px"></div></div>`+
		`<div style="height: 50px"></div>`)
	layoutDoc(t, doc)
	o, f := byID(t, doc, "o"), byID(t, doc, "f")
	inner, outer := o.Floats().Find(f), o.Parent().Floats().Find(f)
	require.NotNil(t, inner)
	require.NotNil(t, outer)
	assert.True(t, inner.CrossedLayer)
	assert.False(t, inner.NoPaint, "painted within the layer of o")
	assert.True(t, outer.NoPaint)
}

func TestPercentWidthBlockBesideFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="b" style="width: 100px">`+
		`<div id="f" style="float: left; width: 40px; height: 20px"></div>`+
		`<div id="w" style="width: 100%">aaaa bbbb cccc</div></div>`)
	ctx := layoutDoc(t, doc)
	f, w := byID(t, doc, "f"), byID(t, doc, "w")
	assert.Equal(t, dimen.Point{}, dimen.Point{X: f.X(), Y: f.Y()})
	assert.Equal(t, dimen.Dimen(0), w.X())
	assert.Equal(t, dimen.Dimen(0), w.Y())
	assert.Equal(t, 100*px, w.W, "the box keeps its declared width")
	assert.Equal(t, 60*px, ctx.floats(w).LineWidth(0))
	require.Len(t, w.Lines, 3)
	assert.Equal(t, 40*px, w.Lines[0].TopL.X)
	assert.LessOrEqual(t, w.Lines[0].W, 60*px)
	assert.Equal(t, 40*px, w.Lines[1].TopL.X, "second line is still beside the float")
	assert.Equal(t, dimen.Dimen(0), w.Lines[2].TopL.X)
}

func TestOnlyBlockContainersAreFloatAware(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	ctx := NewContext(nil)
	block := frame.New(frame.Block, nil, "div")
	assert.NotNil(t, ctx.floatAware(block))
	assert.Same(t, ctx.floats(block), ctx.floatAware(block))
	assert.Nil(t, ctx.floatAware(frame.NewText("x", nil)))
	assert.Nil(t, ctx.floatAware(frame.NewReplaced(nil, "img", 10*px, 10*px)))
}
