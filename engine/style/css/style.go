package css

import (
	"fmt"
	"strings"
)

// For padding, margins, etc. 4-way values always start at the top and travel
// clockwise.
const (
	Top int = iota
	Right
	Bottom
	Left
)

// Style is a snapshot of the computed style values of a box, as far as they
// are relevant for layout.
//
// Layout treats a Style as read-only.
type Style struct {
	Display     Display
	Position    Position
	Float       Float
	Clear       Clear
	Overflow    Overflow
	WhiteSpace  WhiteSpace
	TextAlign   TextAlign
	Direction   Direction
	Width       DimenT
	Height      DimenT
	MinWidth    DimenT
	MaxWidth    DimenT // unset means `none`
	MinHeight   DimenT
	MaxHeight   DimenT // unset means `none`
	Margins     [4]DimenT
	Padding     [4]DimenT
	BorderWidth [4]DimenT
	Offsets     [4]DimenT // top, right, bottom, left for positioned boxes
	TextIndent  DimenT
	// Quirky margins are set by user agent defaults. In quirks mode they may
	// be collapsed away inside table cells and the body.
	TopMarginQuirk    bool
	BottomMarginQuirk bool
}

// InitialStyle returns a style with CSS initial values set.
func InitialStyle() *Style {
	s := &Style{
		Display:   DisplayInline,
		Width:     AutoDimen(),
		Height:    AutoDimen(),
		MinWidth:  SomeDimen(0),
		MaxWidth:  Dimen(),
		MinHeight: SomeDimen(0),
		MaxHeight: Dimen(),
	}
	for dir := Top; dir <= Left; dir++ {
		s.Margins[dir] = SomeDimen(0)
		s.Padding[dir] = SomeDimen(0)
		s.BorderWidth[dir] = SomeDimen(0)
		s.Offsets[dir] = AutoDimen()
	}
	s.TextIndent = SomeDimen(0)
	return s
}

// BlockStyle returns an initial style with `display: block`.
func BlockStyle() *Style {
	s := InitialStyle()
	s.Display = DisplayBlock
	return s
}

// Copy creates a copy of a style.
func (s *Style) Copy() *Style {
	if s == nil {
		return InitialStyle()
	}
	c := *s
	return &c
}

// InheritFrom copies the inherited properties relevant for layout from a
// parent style.
func (s *Style) InheritFrom(parent *Style) *Style {
	if parent != nil {
		s.WhiteSpace = parent.WhiteSpace
		s.TextAlign = parent.TextAlign
		s.Direction = parent.Direction
		s.TextIndent = parent.TextIndent
	}
	return s
}

// IsFloating returns true if this style floats a box.
// Absolutely positioned boxes never float.
func (s *Style) IsFloating() bool {
	return s.Float != FloatNone && !s.IsOutOfFlowPositioned()
}

// IsOutOfFlowPositioned returns true for `position: absolute` and `position: fixed`.
func (s *Style) IsOutOfFlowPositioned() bool {
	return s.Position == PositionAbsolute || s.Position == PositionFixed
}

// HidesOverflow returns true if overflow is clipped or scrolled.
func (s *Style) HidesOverflow() bool {
	return s.Overflow != OverflowVisible
}

// HasBorderOrPadding returns true if any vertical border or padding is set.
func (s *Style) HasBorderOrPadding() bool {
	return s.BorderWidth[Top].IsPositive() || s.BorderWidth[Bottom].IsPositive() ||
		s.Padding[Top].IsPositive() || s.Padding[Bottom].IsPositive()
}

// DebugString returns a textual representation of a style, listing only
// values which differ from initial values. Intended for debugging.
func (s *Style) DebugString() string {
	init := InitialStyle()
	var b strings.Builder
	b.WriteString("{")
	add := func(prop string, v interface{}) {
		if b.Len() > 1 {
			b.WriteString("; ")
		}
		fmt.Fprintf(&b, "%s: %v", prop, v)
	}
	if s.Display != init.Display {
		add("display", s.Display)
	}
	if s.Position != init.Position {
		add("position", s.Position)
	}
	if s.Float != init.Float {
		add("float", s.Float)
	}
	if s.Clear != init.Clear {
		add("clear", s.Clear)
	}
	if s.Overflow != init.Overflow {
		add("overflow", s.Overflow)
	}
	if s.Width != init.Width {
		add("width", s.Width)
	}
	if s.Height != init.Height {
		add("height", s.Height)
	}
	sides := [4]string{"top", "right", "bottom", "left"}
	for dir := Top; dir <= Left; dir++ {
		if s.Margins[dir] != init.Margins[dir] {
			add("margin-"+sides[dir], s.Margins[dir])
		}
		if s.Padding[dir] != init.Padding[dir] {
			add("padding-"+sides[dir], s.Padding[dir])
		}
		if s.BorderWidth[dir] != init.BorderWidth[dir] {
			add("border-"+sides[dir]+"-width", s.BorderWidth[dir])
		}
	}
	b.WriteString("}")
	return b.String()
}
