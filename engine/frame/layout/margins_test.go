package layout

import (
	"testing"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/input/html"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiblingMarginsCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="a" style="height: 10px; margin-bottom: 20px"></div>`+
		`<div id="b" style="height: 10px; margin-top: 10px"></div>`)
	layoutDoc(t, doc)
	a, b := byID(t, doc, "a"), byID(t, doc, "b")
	assert.Equal(t, 20*px, b.Y()-(a.Y()+a.H), "gap is the larger margin")
}

func TestNegativeMarginsCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="a" style="height: 10px; margin-bottom: 20px"></div>`+
		`<div id="b" style="height: 10px; margin-top: -5px"></div>`+
		`<div id="c" style="height: 10px; margin-top: -8px"></div>`)
	layoutDoc(t, doc)
	a, b, c := byID(t, doc, "a"), byID(t, doc, "b"), byID(t, doc, "c")
	assert.Equal(t, 15*px, b.Y()-(a.Y()+a.H))
	assert.Equal(t, b.Y()+b.H-8*px, c.Y())
}

func TestParentChildMarginsCollapse(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="o" style="margin-top: 5px">`+
		`<div id="i" style="margin-top: 15px; height: 10px"></div></div>`)
	layoutDoc(t, doc)
	o, i := byID(t, doc, "o"), byID(t, doc, "i")
	body := o.Parent()
	assert.Equal(t, dimen.Dimen(0), i.Y())
	assert.Equal(t, dimen.Dimen(0), o.Y())
	assert.Equal(t, 15*px, body.Y(), "margins collapse through body up to the root")
	assert.Equal(t, 10*px, o.H)
}

func TestBorderPreventsCollapsing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="o" style="margin-top: 5px; border-top: 1px solid">`+
		`<div id="i" style="margin-top: 15px; height: 10px"></div></div>`)
	layoutDoc(t, doc)
	o, i := byID(t, doc, "o"), byID(t, doc, "i")
	assert.Equal(t, 16*px, i.Y())
	assert.Equal(t, 26*px, o.H)
	assert.Equal(t, 5*px, o.Parent().Y())
}

func TestSelfCollapsingBlock(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="a" style="height: 10px; margin-bottom: 10px"></div>`+
		`<div id="e" style="margin-top: 20px; margin-bottom: 5px"></div>`+
		`<div id="b" style="height: 10px; margin-top: 15px"></div>`)
	layoutDoc(t, doc)
	a, e, b := byID(t, doc, "a"), byID(t, doc, "e"), byID(t, doc, "b")
	assert.True(t, isSelfCollapsing(e))
	assert.Equal(t, dimen.Dimen(0), e.H)
	assert.Equal(t, 30*px, e.Y())
	assert.Equal(t, 20*px, b.Y()-(a.Y()+a.H), "all three margins collapse into one")
}

func TestBottomMarginCollapsesThroughParent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	doc := standards(t, `<div id="o"><div style="height: 10px; margin-bottom: 25px"></div></div>`+
		`<div id="n" style="height: 10px; margin-top: 5px"></div>`)
	layoutDoc(t, doc)
	o, n := byID(t, doc, "o"), byID(t, doc, "n")
	assert.Equal(t, 10*px, o.H, "child margin does not add to the height")
	assert.Equal(t, 25*px, o.Margin.BottomPos)
	assert.Equal(t, 35*px, n.Y())
}

func TestQuirkyMarginsInBody(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.layout")
	defer teardown()
	//
	const body = `<style>body { margin: 0 }</style><p id="p">x</p>`
	doc, err := html.BuildString(body) // no doctype
	require.NoError(t, err)
	require.True(t, doc.Quirks)
	layoutDoc(t, doc)
	p := byID(t, doc, "p")
	assert.Equal(t, dimen.Dimen(0), p.Parent().Y(), "quirky top margin is dropped in quirks mode")
	//
	doc, err = html.BuildString("<!DOCTYPE html>" + body)
	require.NoError(t, err)
	layoutDoc(t, doc)
	p = byID(t, doc, "p")
	assert.Equal(t, 16*px, p.Parent().Y())
}
