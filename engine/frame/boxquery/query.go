package boxquery

import (
	"github.com/antchfx/xpath"
	"github.com/npillmayer/blockflow/core"
	"github.com/npillmayer/blockflow/engine/frame"
)

// Query is a compiled XPath expression, to be applied to frame trees.
type Query struct {
	expr *xpath.Expr
}

// Compile compiles an XPath expression. Errors carry code core.EINVALID.
func Compile(expr string) (*Query, error) {
	e, err := xpath.Compile(expr)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot compile box query %q", expr)
	}
	return &Query{expr: e}, nil
}

// Select returns the frames of the tree at root matching q, in document
// order. Matches other than frames, e.g. attributes, are skipped.
func (q *Query) Select(root *frame.Frame) []*frame.Frame {
	var frames []*frame.Frame
	seen := make(map[*frame.Frame]bool)
	it := q.expr.Select(NewNavigator(root))
	for it.MoveNext() {
		nav, ok := it.Current().(*NodeNavigator)
		if !ok || nav.attr != -1 || nav.current == nil || seen[nav.current] {
			continue
		}
		seen[nav.current] = true
		frames = append(frames, nav.current)
	}
	tracer().Debugf("box query %s matched %d frames", q.expr, len(frames))
	return frames
}

// Evaluate evaluates q for the tree at root. The result is a float64,
// string or bool, or an iterator over nodes.
func (q *Query) Evaluate(root *frame.Frame) interface{} {
	return q.expr.Evaluate(NewNavigator(root))
}

// Find returns the frames of the tree at root matching an XPath expression.
func Find(root *frame.Frame, expr string) ([]*frame.Frame, error) {
	q, err := Compile(expr)
	if err != nil {
		return nil, err
	}
	return q.Select(root), nil
}

// FindOne returns the first frame matching an XPath expression, or nil.
func FindOne(root *frame.Frame, expr string) (*frame.Frame, error) {
	frames, err := Find(root, expr)
	if err != nil || len(frames) == 0 {
		return nil, err
	}
	return frames[0], nil
}
