package boxquery

import (
	"strconv"
	"strings"

	"github.com/antchfx/xpath"
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/frame"
)

// NodeNavigator is an xpath.NodeNavigator for a frame tree. The root frame
// is wrapped by a document node.
type NodeNavigator struct {
	root    *frame.Frame
	current *frame.Frame // nil for the document node
	attrs   []attribute  // attributes of current, if visited
	attr    int          // attributes index, -1 for the element itself
}

type attribute struct {
	key, value string
}

// NewNavigator creates a new xpath.NodeNavigator for the subtree at root.
func NewNavigator(root *frame.Frame) *NodeNavigator {
	return &NodeNavigator{
		root: root,
		attr: -1,
	}
}

var _ xpath.NodeNavigator = &NodeNavigator{}

// Current returns the frame the navigator is positioned at, or nil if the
// navigator is at the document node.
func (nav *NodeNavigator) Current() *frame.Frame {
	return nav.current
}

func (nav *NodeNavigator) NodeType() xpath.NodeType {
	switch {
	case nav.current == nil:
		return xpath.RootNode
	case nav.attr != -1:
		return xpath.AttributeNode
	case nav.current.IsText():
		return xpath.TextNode
	}
	return xpath.ElementNode
}

func (nav *NodeNavigator) LocalName() string {
	if nav.current == nil {
		return ""
	}
	if nav.attr != -1 {
		return nav.attrs[nav.attr].key
	}
	return nav.current.Kind().String()
}

func (*NodeNavigator) Prefix() string {
	return ""
}

func (nav *NodeNavigator) Value() string {
	switch {
	case nav.current == nil:
		return innerText(nav.root)
	case nav.attr != -1:
		return nav.attrs[nav.attr].value
	case nav.current.IsText():
		return nav.current.Text
	}
	return innerText(nav.current)
}

func (nav *NodeNavigator) String() string {
	return nav.Value()
}

func (nav *NodeNavigator) Copy() xpath.NodeNavigator {
	n := *nav
	return &n
}

func (nav *NodeNavigator) MoveToRoot() {
	nav.current = nil
	nav.attr = -1
}

func (nav *NodeNavigator) MoveToParent() bool {
	if nav.attr != -1 {
		nav.attr = -1 // move from attributes to element
		return true
	}
	switch nav.current {
	case nil:
		return false
	case nav.root:
		nav.current = nil
		return true
	}
	nav.current = nav.current.Parent()
	return nav.current != nil
}

func (nav *NodeNavigator) MoveToNextAttribute() bool {
	if nav.current == nil || nav.current.IsText() {
		return false
	}
	if nav.attr == -1 {
		nav.attrs = attributes(nav.current)
	}
	if nav.attr >= len(nav.attrs)-1 {
		return false
	}
	nav.attr++
	return true
}

func (nav *NodeNavigator) MoveToChild() bool {
	if nav.attr != -1 {
		return false
	}
	if nav.current == nil {
		nav.current = nav.root
		return true
	}
	if nav.current.FirstChild() == nil {
		return false
	}
	nav.current = nav.current.FirstChild()
	return true
}

func (nav *NodeNavigator) MoveToFirst() bool {
	if nav.attr != -1 || nav.current == nil || nav.current == nav.root {
		return false
	}
	if nav.current.PrevSibling() == nil {
		return false
	}
	nav.current = nav.current.Parent().FirstChild()
	return true
}

func (nav *NodeNavigator) MoveToNext() bool {
	if nav.attr != -1 || nav.current == nil || nav.current == nav.root {
		return false
	}
	if next := nav.current.NextSibling(); next != nil {
		nav.current = next
		return true
	}
	return false
}

func (nav *NodeNavigator) MoveToPrevious() bool {
	if nav.attr != -1 || nav.current == nil || nav.current == nav.root {
		return false
	}
	if prev := nav.current.PrevSibling(); prev != nil {
		nav.current = prev
		return true
	}
	return false
}

func (nav *NodeNavigator) MoveTo(other xpath.NodeNavigator) bool {
	n, ok := other.(*NodeNavigator)
	if !ok || n.root != nav.root {
		return false
	}
	nav.current = n.current
	nav.attrs = n.attrs
	nav.attr = n.attr
	return true
}

// --- Helpers ---------------------------------------------------------------

// attributes lists the attributes a frame exposes to queries.
func attributes(f *frame.Frame) []attribute {
	attrs := make([]attribute, 0, 8)
	if f.ID != "" {
		attrs = append(attrs, attribute{"id", f.ID})
	}
	if f.Name != "" {
		attrs = append(attrs, attribute{"name", f.Name})
	}
	if f.IsFloating() {
		attrs = append(attrs, attribute{"float", f.Style.Float.String()})
	}
	if f.IsAnonymous() {
		attrs = append(attrs, attribute{"anonymous", "true"})
	}
	attrs = append(attrs,
		attribute{"x", pixels(f.X())},
		attribute{"y", pixels(f.Y())},
		attribute{"w", pixels(f.W)},
		attribute{"h", pixels(f.H)},
	)
	return attrs
}

// pixels formats a dimension as a number of pixels.
func pixels(d dimen.Dimen) string {
	if d%dimen.PX == 0 {
		return strconv.Itoa(int(d / dimen.PX))
	}
	return strconv.FormatFloat(float64(d)/float64(dimen.PX), 'f', 2, 64)
}

// innerText returns the text of all the text frames below f.
func innerText(f *frame.Frame) string {
	var buf strings.Builder
	f.Walk(func(o *frame.Frame) bool {
		if o.IsText() {
			buf.WriteString(o.Text)
		}
		return true
	})
	return buf.String()
}
