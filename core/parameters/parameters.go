/*
Package parameters holds configuration registers for layout.

Registers have a base value and may be overridden within groups:

	regs := parameters.NewLayoutRegisters()
	regs.Begingroup()
	regs.Push(parameters.P_QUIRKS, true)
	…                 // quirks mode in effect
	regs.Endgroup()   // back to standard mode

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2021 Norbert Pillmayer <norbert@pillmayer.com>

*/
package parameters

import (
	"github.com/npillmayer/schuko/tracing"
	"golang.org/x/text/unicode/bidi"

	"github.com/npillmayer/blockflow/core/dimen"
)

// tracer traces with key 'blockflow.core'.
func tracer() tracing.Trace {
	return tracing.Select("blockflow.core")
}

// LayoutParameter is a key for a layout register.
type LayoutParameter int

//go:generate stringer -type=LayoutParameter
const (
	none LayoutParameter = iota
	P_QUIRKS
	P_DIRECTION
	P_MAXDEPTH
	P_EM
	P_LINEHEIGHT
	P_VIEWPORTWIDTH
	P_STOPPER
)

// ParameterGroup is a set of overrides for a grouping level.
type ParameterGroup struct {
	params map[LayoutParameter]interface{}
	level  int
	next   *ParameterGroup
}

// LayoutRegisters is a stack of layout parameter values.
type LayoutRegisters struct {
	base       [P_STOPPER]interface{}
	groups     *ParameterGroup
	grouplevel int
}

// ----------------------------------------------------------------------

// NewLayoutRegisters creates a set of registers initialized to defaults.
func NewLayoutRegisters() *LayoutRegisters {
	regs := &LayoutRegisters{}
	initParameters(&regs.base)
	return regs
}

func initParameters(p *[P_STOPPER]interface{}) {
	p[P_QUIRKS] = false                 // standards mode
	p[P_DIRECTION] = bidi.LeftToRight   // default inline direction
	p[P_MAXDEPTH] = 512                 // maximum nesting depth of layout recursion
	p[P_EM] = 8 * dimen.PX              // width of a monospace character cell
	p[P_LINEHEIGHT] = 16 * dimen.PX     // height of a line box
	p[P_VIEWPORTWIDTH] = 800 * dimen.PX // width of the initial containing block
}

// Begingroup opens a new grouping level.
func (regs *LayoutRegisters) Begingroup() {
	regs.grouplevel++
}

// Endgroup closes the current grouping level and drops its overrides.
func (regs *LayoutRegisters) Endgroup() {
	if regs.grouplevel == 0 {
		return
	}
	if regs.groups != nil && regs.groups.level == regs.grouplevel {
		regs.groups = regs.groups.next
	}
	regs.grouplevel--
}

// Push sets a parameter value for the current grouping level.
func (regs *LayoutRegisters) Push(key LayoutParameter, value interface{}) {
	if key <= none || key >= P_STOPPER {
		tracer().Errorf("ignoring parameter key %d outside range of layout parameters", key)
		return
	}
	if regs.grouplevel == 0 {
		regs.base[key] = value
		return
	}
	g := regs.groups
	if g == nil || g.level < regs.grouplevel {
		g = &ParameterGroup{
			params: make(map[LayoutParameter]interface{}),
			level:  regs.grouplevel,
			next:   regs.groups,
		}
		regs.groups = g
	}
	g.params[key] = value
}

// Get returns the value of a parameter, as visible at the current grouping level.
func (regs *LayoutRegisters) Get(key LayoutParameter) interface{} {
	if key <= none || key >= P_STOPPER {
		panic("parameter key outside range of layout parameters")
	}
	for g := regs.groups; g != nil; g = g.next {
		if value, ok := g.params[key]; ok {
			return value
		}
	}
	return regs.base[key]
}

// B returns a boolean parameter.
func (regs *LayoutRegisters) B(key LayoutParameter) bool {
	b, _ := regs.Get(key).(bool)
	return b
}

// N returns a numeric parameter.
func (regs *LayoutRegisters) N(key LayoutParameter) int {
	n, _ := regs.Get(key).(int)
	return n
}

// D returns a dimension parameter.
func (regs *LayoutRegisters) D(key LayoutParameter) dimen.Dimen {
	switch d := regs.Get(key).(type) {
	case dimen.Dimen:
		return d
	case int:
		return dimen.Dimen(d)
	}
	return 0
}

// Direction returns the inline base direction.
func (regs *LayoutRegisters) Direction() bidi.Direction {
	d, ok := regs.Get(P_DIRECTION).(bidi.Direction)
	if !ok {
		return bidi.LeftToRight
	}
	return d
}
