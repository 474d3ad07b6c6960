package frame

/*
BSD License

Copyright (c) 2017–2021, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions
are met:

1. Redistributions of source code must retain the above copyright
notice, this list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright
notice, this list of conditions and the following disclaimer in the
documentation and/or other materials provided with the distribution.

3. Neither the name of this software nor the names of its contributors
may be used to endorse or promote products derived from this software
without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS
"AS IS" AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT
LIMITED TO, THE IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR
A PARTICULAR PURPOSE ARE DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT
HOLDER OR CONTRIBUTORS BE LIABLE FOR ANY DIRECT, INDIRECT, INCIDENTAL,
SPECIAL, EXEMPLARY, OR CONSEQUENTIAL DAMAGES (INCLUDING, BUT NOT
LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR SERVICES; LOSS OF USE,
DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER CAUSED AND ON ANY
THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY, OR TORT
(INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Box type, following the CSS box model. All values are resolved
// dimensions, computed by layout from a frame's style.
//
// W and H denote the border box, i.e. they include padding and border.
// TopL is the position of the border box relative to the border box of the
// frame's container.
type Box struct {
	TopL        dimen.Point
	W, H        dimen.Dimen
	Padding     [4]dimen.Dimen // inside of border
	BorderWidth [4]dimen.Dimen // thickness of border
	Margins     [4]dimen.Dimen // outside of border, may be negative
	OverflowW   dimen.Dimen    // extent including content spilling past the border box
	OverflowH   dimen.Dimen
}

// --- Handling of box dimensions --------------------------------------------

// DebugString returns a textual representation of a box's dimensions.
// Intended for debugging.
func (box *Box) DebugString() string {
	s := fmt.Sprintf("box{\n   x=%v, y=%v, w=%v, h=%v\n", box.TopL.X, box.TopL.Y, box.W, box.H)
	s += fmt.Sprintf("   p.top=%v, p.right=%v, p.bottom=%v, p.left=%v\n",
		box.Padding[Top], box.Padding[Right],
		box.Padding[Bottom], box.Padding[Left])
	s += fmt.Sprintf("   b.top=%v, b.right=%v, b.bottom=%v, b.left=%v\n",
		box.BorderWidth[Top], box.BorderWidth[Right],
		box.BorderWidth[Bottom], box.BorderWidth[Left])
	s += fmt.Sprintf("   m.top=%v, m.right=%v, m.bottom=%v, m.left=%v\n",
		box.Margins[Top], box.Margins[Right],
		box.Margins[Bottom], box.Margins[Left])
	s += "}"
	return s
}

// SetPos sets the position of a box relative to its container.
func (box *Box) SetPos(x, y dimen.Dimen) {
	box.TopL = dimen.Point{X: x, Y: y}
}

// X returns the horizontal position of a box.
func (box *Box) X() dimen.Dimen {
	return box.TopL.X
}

// Y returns the vertical position of a box.
func (box *Box) Y() dimen.Dimen {
	return box.TopL.Y
}

// ContentWidth returns the width of the content box.
// It is never negative.
func (box *Box) ContentWidth() dimen.Dimen {
	return dimen.NonNegative(box.W - box.InnerDecorationWidth())
}

// ContentHeight returns the height of the content box.
// It is never negative.
func (box *Box) ContentHeight() dimen.Dimen {
	return dimen.NonNegative(box.H - box.InnerDecorationHeight())
}

// InnerDecorationWidth returns the cumulated width of horizontal padding and borders.
func (box *Box) InnerDecorationWidth() dimen.Dimen {
	return box.Padding[Left] + box.Padding[Right] + box.BorderWidth[Left] + box.BorderWidth[Right]
}

// InnerDecorationHeight returns the cumulated height of vertical padding and borders.
func (box *Box) InnerDecorationHeight() dimen.Dimen {
	return box.Padding[Top] + box.Padding[Bottom] + box.BorderWidth[Top] + box.BorderWidth[Bottom]
}

// BorderTop returns border plus padding at the top of a box, i.e. the offset
// of the content box from the top border edge.
func (box *Box) BorderTop() dimen.Dimen {
	return box.BorderWidth[Top] + box.Padding[Top]
}

// BorderBottom returns border plus padding at the bottom of a box.
func (box *Box) BorderBottom() dimen.Dimen {
	return box.BorderWidth[Bottom] + box.Padding[Bottom]
}

// BorderLeft returns border plus padding at the left side of a box.
func (box *Box) BorderLeft() dimen.Dimen {
	return box.BorderWidth[Left] + box.Padding[Left]
}

// BorderRight returns border plus padding at the right side of a box.
func (box *Box) BorderRight() dimen.Dimen {
	return box.BorderWidth[Right] + box.Padding[Right]
}

// PaddingBoxWidth returns the width of a box without borders.
func (box *Box) PaddingBoxWidth() dimen.Dimen {
	return dimen.NonNegative(box.W - box.BorderWidth[Left] - box.BorderWidth[Right])
}

// PaddingBoxHeight returns the height of a box without borders.
func (box *Box) PaddingBoxHeight() dimen.Dimen {
	return dimen.NonNegative(box.H - box.BorderWidth[Top] - box.BorderWidth[Bottom])
}

// TotalWidth returns the overall width of a box, including margins.
func (box *Box) TotalWidth() dimen.Dimen {
	return box.W + box.Margins[Left] + box.Margins[Right]
}

// TotalHeight returns the overall height of a box, including margins.
func (box *Box) TotalHeight() dimen.Dimen {
	return box.H + box.Margins[Top] + box.Margins[Bottom]
}

// BorderBox returns the border box as a rectangle in the coordinate system
// of the box's container.
func (box *Box) BorderBox() dimen.Rect {
	return dimen.Rect{
		TopL: box.TopL,
		BotR: dimen.Point{X: box.TopL.X + box.W, Y: box.TopL.Y + box.H},
	}
}

// OuterBox returns the margin box as a rectangle in the coordinate system
// of the box's container.
func (box *Box) OuterBox() dimen.Rect {
	return dimen.Rect{
		TopL: dimen.Point{X: box.TopL.X - box.Margins[Left], Y: box.TopL.Y - box.Margins[Top]},
		BotR: dimen.Point{
			X: box.TopL.X + box.W + box.Margins[Right],
			Y: box.TopL.Y + box.H + box.Margins[Bottom],
		},
	}
}

// EffectiveWidth returns the width of a box including overflowing content.
func (box *Box) EffectiveWidth() dimen.Dimen {
	return dimen.Max(box.W, box.OverflowW)
}

// EffectiveHeight returns the height of a box including overflowing content.
func (box *Box) EffectiveHeight() dimen.Dimen {
	return dimen.Max(box.H, box.OverflowH)
}

// ----------------------------------------------------------------------------------

// ResolveDecorations sets padding and border widths of a box from a style.
// Percentages refer to the width of the containing block, even for top and
// bottom padding.
//
// Padding and border width may not be negative; illegal values are clamped
// to 0:
//
//     Property   Default    Valid values           Purpose
//     ---------+----------+----------------------+-----------------------------------
//     padding    Varies     length or percentage   Controls the size of the padding.
//                                                  Negative values are not allowed.
//                                                  Percentages refer to width of the
//                                                  containing block.
//
func ResolveDecorations(box *Box, style *css.Style, cbWidth dimen.Dimen) {
	for dir := Top; dir <= Left; dir++ {
		box.Padding[dir] = dimen.NonNegative(style.Padding[dir].Resolve(cbWidth))
		box.BorderWidth[dir] = dimen.NonNegative(style.BorderWidth[dir].Resolve(cbWidth))
	}
}

// ResolveMargin resolves a margin value in the context of a containing
// block. `auto` resolves to 0.
func ResolveMargin(m css.DimenT, cbWidth dimen.Dimen) dimen.Dimen {
	return m.Resolve(cbWidth)
}

// CollapseMargins returns the collapsed margin between two vertically
// adjoining margins m1 and m2: the greater of the positive margins minus
// the greater of the absolute values of the negative margins.
func CollapseMargins(m1, m2 dimen.Dimen) dimen.Dimen {
	pos := dimen.Max(dimen.NonNegative(m1), dimen.NonNegative(m2))
	neg := dimen.Max(dimen.NonNegative(-m1), dimen.NonNegative(-m2))
	return pos - neg
}
