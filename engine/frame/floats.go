package frame

import (
	"math"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// Unpositioned is the vertical extent of a float record which has not yet
// been positioned.
const Unpositioned dimen.Dimen = math.MinInt32

// FloatRecord tracks a floated frame within the block formatting context
// of a block. Coordinates are relative to the border box of the block
// holding the record; Left and Width denote the float's margin box.
type FloatRecord struct {
	Frame        *Frame
	Side         css.Float // FloatLeft or FloatRight
	StartY, EndY dimen.Dimen
	Left, Width  dimen.Dimen
	NoPaint      bool // float is painted by another context
	CrossedLayer bool // float has been copied across a layer boundary
}

// IsPositioned returns false for records of floats not yet placed.
func (r *FloatRecord) IsPositioned() bool {
	return r.StartY != Unpositioned
}

// Copy returns a copy of a float record.
func (r *FloatRecord) Copy() *FloatRecord {
	c := *r
	return &c
}

// FloatList is a list of float records, in order of insertion.
// A frame occurs at most once within a list.
type FloatList struct {
	records []*FloatRecord
}

// Append appends a record, if no record for the same frame exists.
func (l *FloatList) Append(r *FloatRecord) bool {
	if l.Find(r.Frame) != nil {
		return false
	}
	l.records = append(l.records, r)
	return true
}

// Find returns the record for float frame f, or nil.
func (l *FloatList) Find(f *Frame) *FloatRecord {
	if l == nil {
		return nil
	}
	for _, r := range l.records {
		if r.Frame == f {
			return r
		}
	}
	return nil
}

// Contains returns true if l holds a record for f.
func (l *FloatList) Contains(f *Frame) bool {
	return l.Find(f) != nil
}

// Remove removes the record for f, returning true if there was one.
func (l *FloatList) Remove(f *Frame) bool {
	if l == nil {
		return false
	}
	for i, r := range l.records {
		if r.Frame == f {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return true
		}
	}
	return false
}

// Records returns the records of l. Clients must not modify the slice.
func (l *FloatList) Records() []*FloatRecord {
	if l == nil {
		return nil
	}
	return l.records
}

// Len returns the number of records of l.
func (l *FloatList) Len() int {
	if l == nil {
		return 0
	}
	return len(l.records)
}

// Clear removes all records.
func (l *FloatList) Clear() {
	if l != nil {
		l.records = l.records[:0]
	}
}
