package css

import "strings"

// Display is an enum type for the CSS display property.
type Display uint8

// Enum values for type Display
const (
	DisplayInline Display = iota // CSS initial value
	DisplayBlock
	DisplayInlineBlock
	DisplayListItem
	DisplayRunIn
	DisplayCompact
	DisplayTable
	DisplayInlineTable
	DisplayTableCell
	DisplayNone
)

var displayNames = map[string]Display{
	"inline":       DisplayInline,
	"block":        DisplayBlock,
	"inline-block": DisplayInlineBlock,
	"list-item":    DisplayListItem,
	"run-in":       DisplayRunIn,
	"compact":      DisplayCompact,
	"table":        DisplayTable,
	"inline-table": DisplayInlineTable,
	"table-cell":   DisplayTableCell,
	"none":         DisplayNone,
}

func (d Display) String() string {
	return nameOf(displayNames, d, "display?")
}

// IsInlineLevel returns true for display types which take part in an
// inline formatting context.
func (d Display) IsInlineLevel() bool {
	return d == DisplayInline || d == DisplayInlineBlock || d == DisplayInlineTable
}

// Float is an enum type for the CSS float property.
type Float uint8

// Enum values for type Float
const (
	FloatNone Float = iota
	FloatLeft
	FloatRight
)

var floatNames = map[string]Float{
	"none":  FloatNone,
	"left":  FloatLeft,
	"right": FloatRight,
}

func (f Float) String() string {
	return nameOf(floatNames, f, "float?")
}

// Clear is an enum type for the CSS clear property.
// Values are flags, ClearBoth containing both ClearLeft and ClearRight.
type Clear uint8

// Enum values for type Clear
const (
	ClearNone  Clear = 0
	ClearLeft  Clear = 1
	ClearRight Clear = 2
	ClearBoth  Clear = 3
)

var clearNames = map[string]Clear{
	"none":  ClearNone,
	"left":  ClearLeft,
	"right": ClearRight,
	"both":  ClearBoth,
}

func (c Clear) String() string {
	return nameOf(clearNames, c, "clear?")
}

// Position is an enum type for the CSS position property.
type Position uint8

// Enum values for type Position
const (
	PositionStatic   Position = iota // CSS static (default)
	PositionRelative                 // CSS relative
	PositionAbsolute                 // CSS absolute
	PositionFixed                    // CSS fixed
)

var positionNames = map[string]Position{
	"static":   PositionStatic,
	"relative": PositionRelative,
	"absolute": PositionAbsolute,
	"fixed":    PositionFixed,
	"sticky":   PositionRelative, // currently mapped to relative
}

func (p Position) String() string {
	if p == PositionRelative {
		return "relative"
	}
	return nameOf(positionNames, p, "position?")
}

// Overflow is an enum type for the CSS overflow property.
type Overflow uint8

// Enum values for type Overflow
const (
	OverflowVisible Overflow = iota
	OverflowHidden
	OverflowScroll
	OverflowAuto
)

var overflowNames = map[string]Overflow{
	"visible": OverflowVisible,
	"hidden":  OverflowHidden,
	"scroll":  OverflowScroll,
	"auto":    OverflowAuto,
}

func (o Overflow) String() string {
	return nameOf(overflowNames, o, "overflow?")
}

// WhiteSpace is an enum type for the CSS white-space property.
type WhiteSpace uint8

// Enum values for type WhiteSpace
const (
	WhiteSpaceNormal WhiteSpace = iota
	WhiteSpaceNowrap
	WhiteSpacePre
)

var whiteSpaceNames = map[string]WhiteSpace{
	"normal": WhiteSpaceNormal,
	"nowrap": WhiteSpaceNowrap,
	"pre":    WhiteSpacePre,
}

func (ws WhiteSpace) String() string {
	return nameOf(whiteSpaceNames, ws, "white-space?")
}

// TextAlign is an enum type for the CSS text-align property.
type TextAlign uint8

// Enum values for type TextAlign
const (
	TextAlignStart TextAlign = iota // left for ltr, right for rtl
	TextAlignLeft
	TextAlignRight
	TextAlignCenter
	TextAlignJustify
	TextAlignBlockCenter // legacy centering of text and block-level children
)

var textAlignNames = map[string]TextAlign{
	"start":          TextAlignStart,
	"left":           TextAlignLeft,
	"right":          TextAlignRight,
	"center":         TextAlignCenter,
	"justify":        TextAlignJustify,
	"-khtml-center":  TextAlignBlockCenter,
	"-webkit-center": TextAlignBlockCenter,
}

func (ta TextAlign) String() string {
	return nameOf(textAlignNames, ta, "text-align?")
}

// Direction is an enum type for the CSS direction property.
type Direction uint8

// Enum values for type Direction
const (
	LTR Direction = iota
	RTL
)

var directionNames = map[string]Direction{
	"ltr": LTR,
	"rtl": RTL,
}

func (d Direction) String() string {
	return nameOf(directionNames, d, "direction?")
}

// --- Helpers ---------------------------------------------------------------

func nameOf[K comparable](names map[string]K, k K, unknown string) string {
	for name, v := range names {
		if v == k {
			return name
		}
	}
	return unknown
}

func lookup[K comparable](names map[string]K, s string) (K, bool) {
	k, ok := names[strings.ToLower(strings.TrimSpace(s))]
	return k, ok
}
