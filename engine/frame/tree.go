package frame

// Parent returns the parent frame, or nil for the root.
func (f *Frame) Parent() *Frame {
	return f.parent
}

// FirstChild returns the first child of f, if any.
func (f *Frame) FirstChild() *Frame {
	return f.firstChild
}

// LastChild returns the last child of f, if any.
func (f *Frame) LastChild() *Frame {
	return f.lastChild
}

// NextSibling returns the next sibling of f, if any.
func (f *Frame) NextSibling() *Frame {
	return f.next
}

// PrevSibling returns the previous sibling of f, if any.
func (f *Frame) PrevSibling() *Frame {
	return f.prev
}

// Children returns the children of f as a slice.
func (f *Frame) Children() []*Frame {
	var children []*Frame
	for c := f.firstChild; c != nil; c = c.next {
		children = append(children, c)
	}
	return children
}

// ChildCount returns the number of children of f.
func (f *Frame) ChildCount() int {
	n := 0
	for c := f.firstChild; c != nil; c = c.next {
		n++
	}
	return n
}

// Root returns the root of the tree f is a part of.
func (f *Frame) Root() *Frame {
	r := f
	for r.parent != nil {
		r = r.parent
	}
	return r
}

// IsDescendantOf returns true if f is a (direct or indirect) descendant of
// anc or anc itself.
func (f *Frame) IsDescendantOf(anc *Frame) bool {
	for o := f; o != nil; o = o.parent {
		if o == anc {
			return true
		}
	}
	return false
}

// Walk calls fn for every frame of the subtree rooted at f, in document order.
// If fn returns false, the children of a frame are skipped.
func (f *Frame) Walk(fn func(*Frame) bool) {
	if !fn(f) {
		return
	}
	for c := f.firstChild; c != nil; c = c.next {
		c.Walk(fn)
	}
}

// --- Raw tree manipulation -------------------------------------------------

// These operations do not care about anonymous blocks. Clients will normally
// call the transformations of package boxtree.

// AppendChildNode appends child as the last child of f.
// child must not have a parent.
func (f *Frame) AppendChildNode(child *Frame) {
	f.InsertChildNodeBefore(child, nil)
}

// InsertChildNodeBefore inserts child into f's list of children before
// sibling before. If before is nil or not a child of f, child will be
// appended. child must not have a parent.
func (f *Frame) InsertChildNodeBefore(child, before *Frame) {
	if child == nil {
		return
	}
	if child.parent != nil {
		tracer().Errorf("frame %s already has a parent, will not insert", child)
		return
	}
	if before != nil && before.parent != f {
		before = nil
	}
	child.parent = f
	if before == nil {
		child.prev = f.lastChild
		if f.lastChild != nil {
			f.lastChild.next = child
		} else {
			f.firstChild = child
		}
		f.lastChild = child
	} else {
		child.prev = before.prev
		child.next = before
		if before.prev != nil {
			before.prev.next = child
		} else {
			f.firstChild = child
		}
		before.prev = child
	}
	child.SetMinMaxKnown(false)
	child.SetNeedsLayout(true, false)
	child.MarkContainingBlocksForLayout()
}

// RemoveChildNode detaches child from f and returns it. References to
// child's subtree held in float lists and positioned-object lists of the
// tree are dropped.
func (f *Frame) RemoveChildNode(child *Frame) *Frame {
	if child == nil || child.parent != f {
		return nil
	}
	ForgetFrame(f.Root(), child)
	f.SetNeedsLayoutAndMinMaxRecalc()
	if child.prev != nil {
		child.prev.next = child.next
	} else {
		f.firstChild = child.next
	}
	if child.next != nil {
		child.next.prev = child.prev
	} else {
		f.lastChild = child.prev
	}
	child.parent, child.prev, child.next = nil, nil, nil
	return child
}

// ForgetFrame drops every reference to frames of the subtree rooted at
// removed from float lists and positioned-object lists of the tree at root.
func ForgetFrame(root, removed *Frame) {
	var sub []*Frame
	removed.Walk(func(o *Frame) bool {
		if o.IsFloating() || o.IsPositioned() {
			sub = append(sub, o)
		}
		return true
	})
	if len(sub) == 0 {
		return
	}
	root.Walk(func(o *Frame) bool {
		if o == removed {
			return false
		}
		for _, s := range sub {
			if o.floats != nil && o.floats.Remove(s) {
				tracer().Debugf("dropped float %s from %s", s, o)
				o.SetNeedsLayout(true, true)
			}
			if o.positioned != nil && o.positioned.Contains(s) {
				o.positioned.Remove(s)
				o.SetNeedsLayout(true, true)
			}
		}
		return true
	})
}
