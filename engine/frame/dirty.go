package frame

import "github.com/emirpasic/gods/sets/linkedhashset"

// NeedsLayout returns true if f or any of its descendants needs layout.
func (f *Frame) NeedsLayout() bool {
	return f.flags&(needsLayout|normalChildNeedsLayout|posChildNeedsLayout) != 0
}

// SelfNeedsLayout returns true if f itself has been marked for layout.
func (f *Frame) SelfNeedsLayout() bool {
	return f.flags&needsLayout != 0
}

// NormalChildNeedsLayout returns true if a descendant in normal flow needs layout.
func (f *Frame) NormalChildNeedsLayout() bool {
	return f.flags&normalChildNeedsLayout != 0
}

// PosChildNeedsLayout returns true if a positioned descendant needs layout.
func (f *Frame) PosChildNeedsLayout() bool {
	return f.flags&posChildNeedsLayout != 0
}

// MinMaxKnown returns true if f's intrinsic widths are valid.
func (f *Frame) MinMaxKnown() bool {
	return f.flags&minMaxKnown != 0
}

// SetNeedsLayout marks f for layout (or clears the mark). If markParents is
// true, containing blocks are marked as having a child needing layout.
func (f *Frame) SetNeedsLayout(b bool, markParents bool) {
	was := f.SelfNeedsLayout()
	f.setFlag(needsLayout, b)
	if b && !was && markParents {
		f.MarkContainingBlocksForLayout()
	}
}

// SetChildNeedsLayout marks f as having a normal-flow child needing layout.
func (f *Frame) SetChildNeedsLayout(b bool, markParents bool) {
	was := f.NormalChildNeedsLayout()
	f.setFlag(normalChildNeedsLayout, b)
	if b && !was && markParents {
		f.MarkContainingBlocksForLayout()
	}
}

// MarkContainingBlocksForLayout walks up the chain of containers, marking
// each as having a (positioned or normal) child needing layout. The walk
// stops at the first container already marked.
func (f *Frame) MarkContainingBlocksForLayout() {
	last := f
	for o := f.Container(); o != nil; o = o.Container() {
		if last.IsPositioned() {
			if o.PosChildNeedsLayout() {
				return
			}
			o.flags |= posChildNeedsLayout
		} else {
			if o.NormalChildNeedsLayout() {
				return
			}
			o.flags |= normalChildNeedsLayout
		}
		last = o
	}
}

// SetMinMaxKnown sets the validity of intrinsic widths of f. Invalidating
// them invalidates the intrinsic widths of all ancestors as well.
func (f *Frame) SetMinMaxKnown(b bool) {
	f.setFlag(minMaxKnown, b)
	if !b {
		for o := f.parent; o != nil && o.MinMaxKnown(); o = o.parent {
			o.flags &^= minMaxKnown
		}
	}
}

// SetNeedsLayoutAndMinMaxRecalc marks f for layout and invalidates its
// intrinsic widths.
func (f *Frame) SetNeedsLayoutAndMinMaxRecalc() {
	f.SetMinMaxKnown(false)
	f.SetNeedsLayout(true, true)
}

// SetLayouted clears all layout marks of f. Children's marks are
// independent and are left untouched.
func (f *Frame) SetLayouted() {
	f.flags &^= needsLayout | normalChildNeedsLayout | posChildNeedsLayout
}

// --- Positioned objects ----------------------------------------------------

// InsertPositionedObject registers a positioned descendant with f, its
// containing block. Registering twice has no effect.
func (f *Frame) InsertPositionedObject(p *Frame) {
	if f.positioned == nil {
		f.positioned = linkedhashset.New()
	}
	f.positioned.Add(p)
}

// RemovePositionedObject unregisters a positioned descendant.
func (f *Frame) RemovePositionedObject(p *Frame) {
	if f.positioned != nil {
		f.positioned.Remove(p)
	}
}

// PositionedObjects returns the positioned descendants registered with f,
// in order of registration.
func (f *Frame) PositionedObjects() []*Frame {
	if f.positioned == nil {
		return nil
	}
	values := f.positioned.Values()
	objs := make([]*Frame, len(values))
	for i, v := range values {
		objs[i] = v.(*Frame)
	}
	return objs
}

// HasPositionedObjects returns true if positioned descendants are registered with f.
func (f *Frame) HasPositionedObjects() bool {
	return f.positioned != nil && f.positioned.Size() > 0
}
