package inline

import (
	"testing"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

// testEnv is a block of fixed width with an optional left float at the top.
type testEnv struct {
	width          dimen.Dimen
	floatW, floatH dimen.Dimen
	placed         []*frame.Frame
}

func (env *testEnv) LeftOffset(y dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	if y < env.floatH {
		return env.floatW, env.floatH - y
	}
	return 0, 1
}

func (env *testEnv) RightOffset(y dimen.Dimen) (dimen.Dimen, dimen.Dimen) {
	return env.width, 1
}

func (env *testEnv) NearestFloatBottom(y dimen.Dimen) dimen.Dimen {
	if y < env.floatH {
		return env.floatH
	}
	return y
}

func (env *testEnv) LayoutAtomic(f *frame.Frame) {
	f.W, f.H = f.IntrinsicW, f.IntrinsicH
}

func (env *testEnv) PlaceFloat(f *frame.Frame, y dimen.Dimen) {
	f.SetPos(0, y)
	env.placed = append(env.placed, f)
}

func (env *testEnv) PlacePositioned(f *frame.Frame, x, y dimen.Dimen) {
	f.StaticX, f.StaticY = x, y
}

func para(w dimen.Dimen, texts ...string) *frame.Frame {
	p := frame.New(frame.Block, nil, "p")
	p.W = w
	for _, t := range texts {
		p.AppendChildNode(frame.NewText(t, p))
	}
	return p
}

func TestGreedyLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	p := para(80*dimen.PX, "hello world foo")
	r := fmtr.Layout(p, &testEnv{width: 80 * dimen.PX})
	if assert.Len(t, r.Lines, 2) {
		assert.Equal(t, "hello", r.Lines[0].Text)
		assert.Equal(t, "world foo", r.Lines[1].Text)
		assert.Equal(t, 40*dimen.PX, r.Lines[0].W, "trailing space is stripped")
		assert.Equal(t, 16*dimen.PX, r.Lines[1].TopL.Y)
	}
	assert.Equal(t, 32*dimen.PX, r.Bottom)
	assert.Equal(t, dimen.Zero, r.FirstLineY)
	assert.Equal(t, 16*dimen.PX, r.LastLineY)
}

func TestWhiteSpaceOnlyHasNoLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	p := para(80*dimen.PX, "  \n\t ")
	r := fmtr.Layout(p, &testEnv{width: 80 * dimen.PX})
	assert.Len(t, r.Lines, 0)
	assert.Equal(t, dimen.Zero, r.Bottom)
	assert.Equal(t, dimen.Dimen(-1), r.FirstLineY)
}

func TestTextAlignCenter(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	p := para(80*dimen.PX)
	p.Style.TextAlign = css.TextAlignCenter
	p.AppendChildNode(frame.NewText("abc", p))
	r := fmtr.Layout(p, &testEnv{width: 80 * dimen.PX})
	if assert.Len(t, r.Lines, 1) {
		assert.Equal(t, 28*dimen.PX, r.Lines[0].TopL.X)
	}
}

func TestRTLStartAlignsRight(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	p := para(80*dimen.PX)
	p.Style.Direction = css.RTL
	p.AppendChildNode(frame.NewText("abc", p))
	r := fmtr.Layout(p, &testEnv{width: 80 * dimen.PX})
	if assert.Len(t, r.Lines, 1) {
		assert.Equal(t, 56*dimen.PX, r.Lines[0].TopL.X)
	}
}

func TestLineMovesBelowFloat(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	p := para(80*dimen.PX, "abcdefgh")
	env := &testEnv{width: 80 * dimen.PX, floatW: 40 * dimen.PX, floatH: 32 * dimen.PX}
	r := fmtr.Layout(p, env)
	if assert.Len(t, r.Lines, 1) {
		assert.Equal(t, 32*dimen.PX, r.Lines[0].TopL.Y)
		assert.Equal(t, dimen.Zero, r.Lines[0].TopL.X)
	}
	//
	p = para(80*dimen.PX, "abc")
	r = fmtr.Layout(p, env)
	if assert.Len(t, r.Lines, 1) {
		assert.Equal(t, dimen.Zero, r.Lines[0].TopL.Y)
		assert.Equal(t, 40*dimen.PX, r.Lines[0].TopL.X, "line starts right of float")
	}
}

func TestForcedBreakAndAtoms(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	p := para(80*dimen.PX, "a")
	p.AppendChildNode(frame.New(frame.Break, nil, "br"))
	img := frame.NewReplaced(nil, "img", 16*dimen.PX, 24*dimen.PX)
	p.AppendChildNode(img)
	r := fmtr.Layout(p, &testEnv{width: 80 * dimen.PX})
	if assert.Len(t, r.Lines, 2) {
		assert.Equal(t, 24*dimen.PX, r.Lines[1].H, "atom raises line height")
		assert.Equal(t, []*frame.Frame{img}, r.Lines[1].Atoms)
	}
	assert.Equal(t, dimen.Point{X: 0, Y: 16 * dimen.PX}, img.TopL)
	assert.Equal(t, 40*dimen.PX, r.Bottom)
}

func TestFloatsAndPositionedInLines(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	p := para(80*dimen.PX, "abcdefgh ")
	fl := frame.NewReplaced(nil, "img", 40*dimen.PX, 10*dimen.PX)
	fl.Style.Float = css.FloatLeft
	p.AppendChildNode(fl)
	abs := frame.New(frame.Block, nil, "div")
	abs.Style.Position = css.PositionAbsolute
	p.AppendChildNode(abs)
	env := &testEnv{width: 80 * dimen.PX}
	fmtr.Layout(p, env)
	assert.Equal(t, []*frame.Frame{fl}, env.placed)
	assert.Equal(t, 16*dimen.PX, fl.Y(), "float does not fit on first line")
	assert.Equal(t, 72*dimen.PX, abs.StaticX)
	assert.Equal(t, dimen.Zero, abs.StaticY)
}

func TestTrimmedMinMax(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "blockflow.inline")
	defer teardown()
	//
	fmtr := NewFormatter(8*dimen.PX, 16*dimen.PX)
	mm := fmtr.TrimmedMinMax("hello wonderful world", css.WhiteSpaceNormal, false)
	assert.Equal(t, 72*dimen.PX, mm.Min)
	assert.Equal(t, 168*dimen.PX, mm.Max)
	assert.Equal(t, 40*dimen.PX, mm.BeginMin)
	assert.Equal(t, 40*dimen.PX, mm.EndMin)
	assert.True(t, mm.HasBreakable)
	assert.False(t, mm.HasBreak)
	//
	mm = fmtr.TrimmedMinMax(" ab ", css.WhiteSpaceNormal, true)
	assert.True(t, mm.BeginWS)
	assert.True(t, mm.EndWS)
	assert.Equal(t, 24*dimen.PX, mm.Max, "leading space stripped")
	//
	mm = fmtr.TrimmedMinMax("hello wonderful world", css.WhiteSpaceNowrap, false)
	assert.Equal(t, mm.Max, mm.Min)
	assert.False(t, mm.HasBreakable)
	//
	mm = fmtr.TrimmedMinMax("ab\nabcd", css.WhiteSpacePre, false)
	assert.True(t, mm.HasBreak)
	assert.Equal(t, 32*dimen.PX, mm.Max)
	assert.Equal(t, 16*dimen.PX, mm.BeginMax)
	assert.Equal(t, 32*dimen.PX, mm.EndMax)
	assert.Equal(t, 8*dimen.PX, fmtr.SpaceWidth())
}

func TestCollapseWhiteSpace(t *testing.T) {
	assert.Equal(t, " a b ", collapseWhiteSpace("\n a \t b  ", css.WhiteSpaceNormal))
	assert.Equal(t, " a\n", collapseWhiteSpace(" a\n", css.WhiteSpacePre))
	w, s := splitTrailingSpace("word  ")
	assert.Equal(t, "word", w)
	assert.Equal(t, "  ", s)
}
