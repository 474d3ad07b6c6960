package css

import (
	"strconv"
	"strings"

	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/core/option"
)

// PropertyType is a helper type for special values of properties, e.g.:
//
//     auto
//     %
//
type PropertyType int

// Auto and Percent are constant values for options-matching.
// Use with
//     option.Of{
//          css.Auto: …   // will match a CSS property option-type with value "auto"
//     }
const (
	Auto    PropertyType = 1 // for option matching
	Percent PropertyType = 2 // for option matching: dimension relative to containing block
	Fixed   PropertyType = 3 // for option matching: absolute dimension
)

const (
	dimenNone     uint8 = 0
	dimenAbsolute uint8 = 1
	dimenAuto     uint8 = 2
	dimenPercent  uint8 = 3
)

// --- DimenT-----------------------------------------------------------------

// DimenT is an option type for CSS dimensions.
// For percentages, the value is the plain percentage number.
type DimenT struct {
	d     dimen.Dimen
	flags uint8
}

// SomeDimen creates an optional dimen with an initial value of x.
func SomeDimen(x dimen.Dimen) DimenT {
	return DimenT{d: x, flags: dimenAbsolute}
}

// Dimen creates an optional dimen without an initial value.
func Dimen() DimenT {
	return DimenT{d: 0, flags: dimenNone}
}

// AutoDimen creates a dimen with value `auto`.
func AutoDimen() DimenT {
	return DimenT{flags: dimenAuto}
}

// PercentDimen creates a percentage dimension, e.g. PercentDimen(50) for `50%`.
func PercentDimen(p int) DimenT {
	return DimenT{d: dimen.Dimen(p) * dimen.PercentUnit, flags: dimenPercent}
}

// Px is a shortcut for SomeDimen(n * dimen.PX).
func Px(n int) DimenT {
	return SomeDimen(dimen.Dimen(n) * dimen.PX)
}

// Match is part of interface option.Type.
func (o DimenT) Match(choices interface{}) (value interface{}, err error) {
	return option.Match(o, choices)
}

// Equals is part of interface option.Type.
func (o DimenT) Equals(other interface{}) bool {
	switch i := other.(type) {
	case DimenT:
		return o.d == i.d && o.flags == i.flags
	case dimen.Dimen:
		return o.IsAbsolute() && o.d == i
	case int:
		return o.IsAbsolute() && o.d == dimen.Dimen(i)
	case PropertyType:
		switch i {
		case Auto:
			return o.flags == dimenAuto
		case Percent:
			return o.flags == dimenPercent
		case Fixed:
			return o.flags == dimenAbsolute
		}
	case string:
		switch i {
		case "%":
			return o.IsPercent()
		case "auto":
			return o.IsAuto()
		}
	}
	return false
}

// Unwrap returns the underlying dimension of o.
func (o DimenT) Unwrap() dimen.Dimen {
	return o.d
}

// IsNone returns true if o is unset.
func (o DimenT) IsNone() bool {
	return o.flags == dimenNone
}

// IsAuto returns true if o is `auto`.
func (o DimenT) IsAuto() bool {
	return o.flags == dimenAuto
}

// IsVariable returns true if o is `auto` or unset, i.e. has to be
// determined by layout.
func (o DimenT) IsVariable() bool {
	return o.flags == dimenAuto || o.flags == dimenNone
}

// IsPercent returns true if o is a percentage dimension.
func (o DimenT) IsPercent() bool {
	return o.flags == dimenPercent
}

// IsAbsolute returns true if o represents a valid absolute dimension.
func (o DimenT) IsAbsolute() bool {
	return o.flags == dimenAbsolute
}

// Resolve returns the value of o in the context of a containing block of
// width cbWidth. Percentages are calculated from cbWidth, variable dimensions
// resolve to 0.
func (o DimenT) Resolve(cbWidth dimen.Dimen) dimen.Dimen {
	switch o.flags {
	case dimenAbsolute:
		return o.d
	case dimenPercent:
		return cbWidth.Scale(int64(o.d))
	}
	return 0
}

// ResolveOr is like Resolve, but returns fallback for variable dimensions.
func (o DimenT) ResolveOr(cbWidth, fallback dimen.Dimen) dimen.Dimen {
	if o.IsVariable() {
		return fallback
	}
	return o.Resolve(cbWidth)
}

// IsPositive returns true if o is a fixed or percentage dimension greater than 0.
func (o DimenT) IsPositive() bool {
	return (o.IsAbsolute() || o.IsPercent()) && o.d > 0
}

func (o DimenT) String() string {
	switch o.flags {
	case dimenNone:
		return "DimenT.None"
	case dimenAuto:
		return "auto"
	case dimenPercent:
		return strconv.FormatFloat(float64(o.d)/float64(dimen.PercentUnit), 'f', -1, 64) + "%"
	}
	return o.d.String()
}

// DimenOption returns an optional dimension type from a property string.
// It will never return an error, even with illegal input, but instead will then
// return an unset dimension.
func DimenOption(p string) DimenT {
	p = strings.TrimSpace(p)
	switch strings.ToLower(p) {
	case "", "none":
		return Dimen()
	case "auto":
		return AutoDimen()
	}
	d, err := ParseDimen(p)
	if err != nil {
		return Dimen()
	}
	return d
}

// ParseDimen parses a string to return an optional dimension. Syntax is CSS Unit.
// Valid dimensions are
//
//     15px
//     80%
//     -3pt
//
func ParseDimen(s string) (DimenT, error) {
	d, ispcnt, err := dimen.ParseDimen(s)
	if err != nil {
		return Dimen(), err
	}
	if ispcnt {
		return DimenT{d: d, flags: dimenPercent}, nil
	}
	return SomeDimen(d), nil
}

// MaxDimen returns the greater of two dimensions.
func MaxDimen(d1, d2 DimenT) DimenT {
	max, _ := d1.Match(option.Maybe{
		option.None: d2,
		option.Some: option.Safe(d2.Match(option.Maybe{
			option.None: d1,
			option.Some: SomeDimen(dimen.Max(d1.Unwrap(), d2.Unwrap())),
		})),
	})
	return max.(DimenT)
}

// MinDimen returns the lesser of two dimensions.
func MinDimen(d1, d2 DimenT) DimenT {
	min, _ := d1.Match(option.Maybe{
		option.None: d2,
		option.Some: option.Safe(d2.Match(option.Maybe{
			option.None: d1,
			option.Some: SomeDimen(dimen.Min(d1.Unwrap(), d2.Unwrap())),
		})),
	})
	return min.(DimenT)
}
