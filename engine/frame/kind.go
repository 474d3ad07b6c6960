package frame

import "github.com/npillmayer/blockflow/engine/style/css"

// Kind is the closed set of frame variants.
type Kind uint8

// Frame kinds. Layout behaviour is selected by kind, not by type hierarchy.
const (
	NoKind      Kind = iota // unset or error condition
	Canvas                  // root of a frame tree, the initial containing block
	Block                   // block container, e.g. div, p, anonymous block
	ListItem                // block container with a marker
	Fieldset                // block container which positions a legend in its top border
	Table                   // table wrapper; table layout internals are external
	TableCell               // block formatting context root inside a table
	InlineBlock             // atomic inline-level block container
	Inline                  // inline flow, e.g. span
	Text                    // run of text
	Replaced                // replaced element with intrinsic size, e.g. img
	Break                   // forced line break
)

var kindNames = map[Kind]string{
	NoKind:      "nokind",
	Canvas:      "canvas",
	Block:       "block",
	ListItem:    "listitem",
	Fieldset:    "fieldset",
	Table:       "table",
	TableCell:   "tablecell",
	InlineBlock: "inlineblock",
	Inline:      "inline",
	Text:        "text",
	Replaced:    "replaced",
	Break:       "br",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "kind?"
}

// KindFromName returns the kind for a kind name, as used e.g. in box queries.
func KindFromName(name string) (Kind, bool) {
	for k, n := range kindNames {
		if n == name {
			return k, true
		}
	}
	return NoKind, false
}

// KindForDisplay returns the frame kind for an element's display property.
// Replaced elements and text are not determined by display and have to be
// created explicitly. For `display: none` NoKind is returned.
func KindForDisplay(d css.Display) Kind {
	switch d {
	case css.DisplayBlock, css.DisplayRunIn, css.DisplayCompact:
		return Block
	case css.DisplayListItem:
		return ListItem
	case css.DisplayTable:
		return Table
	case css.DisplayTableCell:
		return TableCell
	case css.DisplayInlineBlock, css.DisplayInlineTable:
		return InlineBlock
	case css.DisplayInline:
		return Inline
	}
	return NoKind
}

// IsBlockContainer returns true for kinds which lay out children as a block flow.
func (k Kind) IsBlockContainer() bool {
	switch k {
	case Canvas, Block, ListItem, Fieldset, Table, TableCell, InlineBlock:
		return true
	}
	return false
}

// IsInlineLevel returns true for kinds which take part in an inline
// formatting context.
func (k Kind) IsInlineLevel() bool {
	switch k {
	case Inline, Text, Replaced, Break, InlineBlock:
		return true
	}
	return false
}

// Symbol returns a Unicode symbol for a kind.
func (k Kind) Symbol() string {
	switch k {
	case Canvas:
		return "▧"
	case Block, Fieldset:
		return "▩"
	case ListItem:
		return "▣"
	case Table, TableCell:
		return "▥"
	case InlineBlock:
		return "▤"
	case Inline:
		return "►"
	case Text:
		return "≡"
	case Replaced:
		return "■"
	case Break:
		return "↵"
	}
	return "?"
}
