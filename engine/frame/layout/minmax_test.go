package layout

import (
	"testing"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/core/parameters"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
	"github.com/npillmayer/blockflow/input/html"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShrinkToFitFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="d" style="float: left">aaaa bb</div>`)
	layoutDoc(t, doc)
	d := byID(t, doc, "d")
	assert.True(t, d.MinMaxKnown())
	assert.Equal(t, 32*px, d.MinW, "longest word")
	assert.Equal(t, 56*px, d.MaxW, "whole text on one line")
	assert.Equal(t, 56*px, d.W)
}

func TestShrinkToFitInNarrowContainer(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div style="width: 40px"><div id="d" style="float: left">aaaa bb cc</div></div>`)
	layoutDoc(t, doc)
	d := byID(t, doc, "d")
	assert.Equal(t, 40*px, d.W, "available width wins over max width")
	doc = standards(t, `<div style="width: 10px"><div id="d" style="float: left">aaaa bb cc</div></div>`)
	layoutDoc(t, doc)
	d = byID(t, doc, "d")
	assert.Equal(t, 32*px, d.W, "never narrower than min width")
}

func TestFixedWidthMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="w" style="width: 120px; padding: 5px">some text which is long</div>`)
	ctx := NewContext(nil)
	w := byID(t, doc, "w")
	ctx.CalcMinMaxWidth(w)
	assert.Equal(t, 130*px, w.MinW)
	assert.Equal(t, 130*px, w.MaxW)
}

func TestMinMaxOfBlockChildren(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="d"><div>aaa bbbbbb</div><div style="margin-left: 10px">cc dd</div>`+
		`<div style="float: left; width: 30px"></div><div style="float: left; width: 20px"></div></div>`)
	ctx := NewContext(nil)
	d := byID(t, doc, "d")
	ctx.CalcMinMaxWidth(d)
	assert.Equal(t, 48*px, d.MinW)
	assert.Equal(t, 80*px, d.MaxW)
	assert.LessOrEqual(t, d.MinW, d.MaxW)
}

func TestNowrapMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="d" style="white-space: nowrap">aaa bbb</div>`)
	ctx := NewContext(nil)
	d := byID(t, doc, "d")
	ctx.CalcMinMaxWidth(d)
	assert.Equal(t, 56*px, d.MinW)
	assert.Equal(t, 56*px, d.MaxW)
}

func TestMinMaxOfReplaced(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	ctx := NewContext(nil)
	img := frame.NewReplaced(nil, "img", 50*px, 20*px)
	img.Style.Padding[css.Left] = css.Px(2)
	ctx.CalcMinMaxWidth(img)
	assert.Equal(t, 52*px, img.MinW)
	assert.Equal(t, 52*px, img.MaxW)
	pct := frame.NewReplaced(nil, "img", 50*px, 20*px)
	pct.Style.Width = css.PercentDimen(50)
	ctx.CalcMinMaxWidth(pct)
	assert.Equal(t, 0*px, pct.MinW)
	assert.Equal(t, 50*px, pct.MaxW)
}

func TestMinMaxWithAtomicInline(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="d">ab <img width="60" height="10"> cd</div>`)
	ctx := NewContext(nil)
	d := byID(t, doc, "d")
	ctx.CalcMinMaxWidth(d)
	assert.Equal(t, 60*px, d.MinW)
	assert.Equal(t, 108*px, d.MaxW)
}

func TestPercentTableQuirk(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	src := `<div id="d"><table style="width: 50%"></table></div>`
	quirks, err := html.BuildString(src)
	require.NoError(t, err)
	require.True(t, quirks.Quirks)
	regs := parameters.NewLayoutRegisters()
	quirks.ApplyTo(regs)
	d := byID(t, quirks, "d")
	NewContext(regs).CalcMinMaxWidth(d)
	assert.Equal(t, maxBlockWidth, d.MaxW)
	//
	doc := standards(t, src)
	d = byID(t, doc, "d")
	NewContext(nil).CalcMinMaxWidth(d)
	assert.Equal(t, dimen.Dimen(0), d.MaxW, "no quirk in standards mode")
	//
	cell, err := html.BuildString(`<table><tr><td id="c"><div id="d"><table style="width: 50%"></table></div></td></tr></table>`)
	require.NoError(t, err)
	regs = parameters.NewLayoutRegisters()
	cell.ApplyTo(regs)
	d = byID(t, cell, "d")
	NewContext(regs).CalcMinMaxWidth(d)
	assert.Less(t, d.MaxW, maxBlockWidth, "table cells constrain the quirk")
}
