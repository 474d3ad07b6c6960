package boxtree

import (
	"github.com/npillmayer/blockflow/engine/frame"
)

// isBlockLevel returns true for in-flow children which force a parent to
// have block children.
func isBlockLevel(f *frame.Frame) bool {
	return !f.IsInline() && !f.IsFloatingOrPositioned()
}

// neutral returns true for children which may belong to inline runs as
// well as to block children.
func neutral(f *frame.Frame) bool {
	return f.IsFloatingOrPositioned()
}

// inlineRun finds the next run of inline children starting at start. A run
// includes neutral children between inline children, but stops before stop.
// Runs consisting of neutral children only are skipped. If no more inline
// children exist, runStart is nil.
func inlineRun(start, stop *frame.Frame) (runStart, runEnd *frame.Frame) {
	curr := start
	for {
		for curr != nil && !(curr.IsInline() || neutral(curr)) {
			curr = curr.NextSibling()
		}
		if curr == nil {
			return nil, nil
		}
		runStart, runEnd = curr, curr
		sawInline := curr.IsInline()
		curr = curr.NextSibling()
		for curr != nil && curr != stop && (curr.IsInline() || neutral(curr)) {
			runEnd = curr
			sawInline = sawInline || curr.IsInline()
			curr = curr.NextSibling()
		}
		if sawInline {
			return runStart, runEnd
		}
	}
}

// WrapInlineRuns wraps every maximal run of inline children of parent into a
// new anonymous block, and clears the children-inline flag of parent.
// If insertionPoint is a child of parent, runs will not extend across it,
// as a block-level child will be inserted there.
//
// WrapInlineRuns returns the number of anonymous blocks created.
func WrapInlineRuns(parent *frame.Frame, insertionPoint *frame.Frame) int {
	if insertionPoint != nil && insertionPoint.Parent() != parent {
		insertionPoint = nil
	}
	parent.SetChildrenInline(false)
	count := 0
	child := parent.FirstChild()
	for child != nil {
		runStart, runEnd := inlineRun(child, insertionPoint)
		if runStart == nil {
			break
		}
		child = runEnd.NextSibling()
		anon := frame.NewAnonymous(parent)
		parent.InsertChildNodeBefore(anon, runStart)
		for o := runStart; ; {
			next := o.NextSibling()
			anon.AppendChildNode(parent.RemoveChildNode(o))
			if o == runEnd {
				break
			}
			o = next
		}
		count++
	}
	tracer().Debugf("wrapped %d inline runs of %s into anonymous blocks", count, parent)
	parent.SetNeedsLayoutAndMinMaxRecalc()
	return count
}

// AppendChild appends child to parent, maintaining the invariant that all
// children of a block are either inline-level or block-level.
func AppendChild(parent, child *frame.Frame) {
	InsertChildBefore(parent, child, nil)
}

// InsertChildBefore inserts child into parent before before (which may be
// nil, meaning: append). before may be a child of an anonymous block of
// parent. The invariant that all children of a block are either
// inline-level or block-level is maintained.
func InsertChildBefore(parent, child, before *frame.Frame) {
	if before != nil && before.Parent() != parent {
		anon := before.Parent()
		if anon == nil || !anon.IsAnonymous() || anon.Parent() != parent {
			tracer().Errorf("cannot insert %s before %s: not a child of %s", child, before, parent)
			return
		}
		if child.IsInline() || neutral(child) {
			anon.InsertChildNodeBefore(child, before)
			return
		}
		// a block-level child splits the anonymous block
		if anon.FirstChild() != before {
			splitAnonymous(anon, before)
		}
		before = before.Parent()
	}
	if parent.ChildrenInline() && isBlockLevel(child) {
		if parent.FirstChild() != nil {
			WrapInlineRuns(parent, before)
			if before != nil && before.Parent() != parent {
				before = before.Parent()
			}
		} else {
			parent.SetChildrenInline(false)
		}
	} else if !parent.ChildrenInline() && child.IsInline() {
		var anon *frame.Frame
		if before != nil {
			anon = before.PrevSibling()
		} else {
			anon = parent.LastChild()
		}
		if anon == nil || !anon.IsAnonymous() || !anon.ChildrenInline() {
			anon = frame.NewAnonymous(parent)
			parent.InsertChildNodeBefore(anon, before)
		}
		anon.AppendChildNode(child)
		return
	}
	parent.InsertChildNodeBefore(child, before)
}

// splitAnonymous moves at and all of its following siblings into a new
// anonymous block, inserted after anon.
func splitAnonymous(anon, at *frame.Frame) *frame.Frame {
	parent := anon.Parent()
	split := frame.NewAnonymous(parent)
	parent.InsertChildNodeBefore(split, anon.NextSibling())
	for o := at; o != nil; {
		next := o.NextSibling()
		split.AppendChildNode(anon.RemoveChildNode(o))
		o = next
	}
	return split
}

// RemoveChild detaches child from parent. child may be a child of an
// anonymous block of parent. Anonymous blocks left adjacent to each other are
// merged, and anonymous wrappers without block-level siblings are
// collapsed. References to the removed subtree are dropped from float
// lists and positioned-object lists (see frame.ForgetFrame).
//
// RemoveChild returns the removed child, or nil if child is not a child of
// parent.
func RemoveChild(parent, child *frame.Frame) *frame.Frame {
	if child == nil {
		return nil
	}
	if child.Parent() != parent {
		anon := child.Parent()
		if anon == nil || !anon.IsAnonymous() || anon.Parent() != parent {
			return nil
		}
		anon.RemoveChildNode(child)
		if anon.FirstChild() == nil {
			RemoveChild(parent, anon)
		}
		return child
	}
	prev, next := child.PrevSibling(), child.NextSibling()
	parent.RemoveChildNode(child)
	if isBlockLevel(child) && prev != nil && next != nil {
		MergeAnonymousSiblings(prev, next)
	}
	if parent.FirstChild() == nil {
		parent.SetChildrenInline(true)
		return child
	}
	CollapseAnonymousWrappers(parent)
	return child
}

// MergeAnonymousSiblings moves all children of anonymous block b into
// anonymous block a, and removes b. a and b must be adjacent siblings
// (neutral children in between are moved as well) with inline children.
// Returns true if the blocks have been merged.
func MergeAnonymousSiblings(a, b *frame.Frame) bool {
	if a == nil || b == nil || a.Parent() == nil || a.Parent() != b.Parent() {
		return false
	}
	if !a.IsAnonymous() || !b.IsAnonymous() || !a.ChildrenInline() || !b.ChildrenInline() {
		return false
	}
	var between []*frame.Frame
	for o := a.NextSibling(); o != b; o = o.NextSibling() {
		if o == nil || !neutral(o) {
			return false
		}
		between = append(between, o)
	}
	parent := a.Parent()
	for _, o := range between {
		a.AppendChildNode(parent.RemoveChildNode(o))
	}
	for o := b.FirstChild(); o != nil; {
		next := o.NextSibling()
		a.AppendChildNode(b.RemoveChildNode(o))
		o = next
	}
	parent.RemoveChildNode(b)
	tracer().Debugf("merged anonymous blocks of %s", parent)
	return true
}

// CollapseAnonymousWrappers pulls the children of anonymous blocks back up
// into parent, if parent has no block-level children other than anonymous
// blocks. Consecutive anonymous blocks are merged beforehand. Returns true
// if parent's children have been collapsed, i.e. parent has inline children
// afterwards.
func CollapseAnonymousWrappers(parent *frame.Frame) bool {
	if parent.ChildrenInline() {
		return false
	}
	var anons []*frame.Frame
	for c := parent.FirstChild(); c != nil; c = c.NextSibling() {
		if c.IsAnonymous() && c.ChildrenInline() {
			anons = append(anons, c)
		} else if isBlockLevel(c) {
			return false
		}
	}
	if len(anons) == 0 {
		return false
	}
	for _, anon := range anons {
		for o := anon.FirstChild(); o != nil; {
			next := o.NextSibling()
			parent.InsertChildNodeBefore(anon.RemoveChildNode(o), anon)
			o = next
		}
		parent.RemoveChildNode(anon)
	}
	parent.SetChildrenInline(true)
	tracer().Debugf("collapsed %d anonymous wrappers of %s", len(anons), parent)
	return true
}

// Normalize establishes the children invariant for every block container
// of the subtree at root. Inline flow frames with block-level children are
// turned into blocks, as splitting inlines around blocks is not supported.
func Normalize(root *frame.Frame) {
	root.Walk(func(f *frame.Frame) bool {
		if f.IsInlineFlow() {
			for c := f.FirstChild(); c != nil; c = c.NextSibling() {
				if isBlockLevel(c) {
					tracer().Infof("inline %s contains block-level %s, treated as block", f, c)
					f.Blockify()
					break
				}
			}
		}
		return true
	})
	root.Walk(func(f *frame.Frame) bool {
		if !f.IsBlockContainer() && !f.IsInlineFlow() {
			return true
		}
		hasInline, hasBlock := false, false
		for c := f.FirstChild(); c != nil; c = c.NextSibling() {
			hasInline = hasInline || c.IsInline()
			hasBlock = hasBlock || isBlockLevel(c)
		}
		switch {
		case hasInline && hasBlock:
			WrapInlineRuns(f, nil)
		case hasBlock:
			f.SetChildrenInline(false)
		default:
			f.SetChildrenInline(true)
		}
		return true
	})
}
