package inline

import (
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/style/css"
	"github.com/npillmayer/cords"
)

// itemKind classifies the items of an inline formatting context.
type itemKind uint8

const (
	textItem       itemKind = iota // run of text
	openItem                       // start of an inline flow
	closeItem                      // end of an inline flow
	atomicItem                     // replaced element or inline-block
	breakItem                      // forced line break
	floatItem                      // floated frame
	positionedItem                 // absolutely positioned frame
)

// objectReplacement represents non-text items within the cord.
const objectReplacement = "\uFFFC"

// itemLeaf is the leaf type of cords of inline items.
// Text items carry their (white-space collapsed) text; all other items
// are represented by a single object replacement character.
type itemLeaf struct {
	kind    itemKind
	frame   *frame.Frame
	ws      css.WhiteSpace
	content string
}

// Weight is part of interface cords.Leaf.
func (l *itemLeaf) Weight() uint64 {
	return uint64(len(l.content))
}

// String is part of interface cords.Leaf.
func (l *itemLeaf) String() string {
	return l.content
}

// Split is part of interface cords.Leaf.
// Only text items are split; other items have weight 3 and splitting within
// an object replacement character yields invalid UTF-8, therefore they are
// not split at all.
func (l *itemLeaf) Split(i uint64) (cords.Leaf, cords.Leaf) {
	if l.kind != textItem {
		return l, &itemLeaf{kind: l.kind, frame: l.frame}
	}
	left := &itemLeaf{kind: textItem, frame: l.frame, ws: l.ws, content: l.content[:i]}
	right := &itemLeaf{kind: textItem, frame: l.frame, ws: l.ws, content: l.content[i:]}
	return left, right
}

// Substring is part of interface cords.Leaf.
func (l *itemLeaf) Substring(i, j uint64) []byte {
	return []byte(l.content)[i:j]
}

var _ cords.Leaf = &itemLeaf{}

// collectItems flattens the inline children of block into a cord of items,
// in document order. Floats, positioned frames and atomic inlines are not
// descended into.
func collectItems(block *frame.Frame) cords.Cord {
	b := cords.NewBuilder()
	for c := block.FirstChild(); c != nil; c = c.NextSibling() {
		appendItems(b, c)
	}
	return b.Cord()
}

func appendItems(b *cords.Builder, f *frame.Frame) {
	object := func(k itemKind) {
		b.Append(&itemLeaf{kind: k, frame: f, content: objectReplacement})
	}
	switch {
	case f.IsPositioned():
		object(positionedItem)
	case f.IsFloating():
		object(floatItem)
	case f.IsText():
		text := collapseWhiteSpace(f.Text, f.Style.WhiteSpace)
		if text != "" {
			b.Append(&itemLeaf{kind: textItem, frame: f, ws: f.Style.WhiteSpace, content: text})
		}
	case f.IsBreak():
		object(breakItem)
	case f.IsInlineFlow():
		object(openItem)
		for c := f.FirstChild(); c != nil; c = c.NextSibling() {
			appendItems(b, c)
		}
		object(closeItem)
	default:
		object(atomicItem)
	}
}

// eachItem calls fn for every item of the cord, in order, stopping at the
// first error.
func eachItem(items cords.Cord, fn func(*itemLeaf) error) error {
	if items.IsVoid() {
		return nil
	}
	return items.EachLeaf(func(l cords.Leaf, pos uint64) error {
		return fn(l.(*itemLeaf))
	})
}
