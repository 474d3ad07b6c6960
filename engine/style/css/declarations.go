package css

import (
	"fmt"
	"strings"

	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/derekparker/trie"

	"github.com/npillmayer/blockflow/core"
)

// setter sets a property from a raw CSS value.
type setter func(s *Style, value string) error

// properties maps property names to setters.
var properties *trie.Trie

func init() {
	properties = trie.New()
	keyword := func(name string, set func(*Style, string) bool) {
		properties.Add(name, setter(func(s *Style, v string) error {
			if !set(s, v) {
				return fmt.Errorf("illegal value %q for %s", v, name)
			}
			return nil
		}))
	}
	keyword("display", enum(displayNames, func(s *Style) *Display { return &s.Display }))
	keyword("float", enum(floatNames, func(s *Style) *Float { return &s.Float }))
	keyword("clear", enum(clearNames, func(s *Style) *Clear { return &s.Clear }))
	keyword("position", enum(positionNames, func(s *Style) *Position { return &s.Position }))
	keyword("overflow", enum(overflowNames, func(s *Style) *Overflow { return &s.Overflow }))
	keyword("text-align", enum(textAlignNames, func(s *Style) *TextAlign { return &s.TextAlign }))
	keyword("direction", enum(directionNames, func(s *Style) *Direction { return &s.Direction }))
	keyword("white-space", func(s *Style, v string) bool {
		switch strings.ToLower(v) {
		case "pre-wrap", "pre-line":
			s.WhiteSpace = WhiteSpaceNormal
			return true
		}
		return enum(whiteSpaceNames, func(s *Style) *WhiteSpace { return &s.WhiteSpace })(s, v)
	})
	length := func(name string, field func(*Style) *DimenT) {
		properties.Add(name, setter(func(s *Style, v string) error {
			d := DimenOption(v)
			if d.IsNone() && !strings.EqualFold(strings.TrimSpace(v), "none") {
				return fmt.Errorf("illegal length %q for %s", v, name)
			}
			*field(s) = d
			return nil
		}))
	}
	length("width", func(s *Style) *DimenT { return &s.Width })
	length("height", func(s *Style) *DimenT { return &s.Height })
	length("min-width", func(s *Style) *DimenT { return &s.MinWidth })
	length("max-width", func(s *Style) *DimenT { return &s.MaxWidth })
	length("min-height", func(s *Style) *DimenT { return &s.MinHeight })
	length("max-height", func(s *Style) *DimenT { return &s.MaxHeight })
	length("text-indent", func(s *Style) *DimenT { return &s.TextIndent })
	sides := [4]string{"top", "right", "bottom", "left"}
	for dir := Top; dir <= Left; dir++ {
		d := dir
		length("margin-"+sides[d], func(s *Style) *DimenT { return &s.Margins[d] })
		length("padding-"+sides[d], func(s *Style) *DimenT { return &s.Padding[d] })
		length(sides[d], func(s *Style) *DimenT { return &s.Offsets[d] })
		properties.Add("border-"+sides[d]+"-width", setter(func(s *Style, v string) error {
			return setBorderWidth(&s.BorderWidth[d], v)
		}))
		properties.Add("border-"+sides[d], setter(func(s *Style, v string) error {
			return setBorderShorthand(s, v, d)
		}))
	}
	fourSides := func(name string, field func(*Style) *[4]DimenT) {
		properties.Add(name, setter(func(s *Style, v string) error {
			return setFourSides(field(s), v, name)
		}))
	}
	fourSides("margin", func(s *Style) *[4]DimenT { return &s.Margins })
	fourSides("padding", func(s *Style) *[4]DimenT { return &s.Padding })
	fourSides("border-width", func(s *Style) *[4]DimenT { return &s.BorderWidth })
	properties.Add("border", setter(func(s *Style, v string) error {
		return setBorderShorthand(s, v, Top, Right, Bottom, Left)
	}))
}

// SetProperty sets a single property of a style from a raw CSS value.
// Unknown properties are ignored, as layout is interested in a small subset
// of CSS only.
func (s *Style) SetProperty(property, value string) error {
	property = strings.ToLower(strings.TrimSpace(property))
	node, ok := properties.Find(property)
	if !ok {
		tracer().Debugf("ignoring property %s", property)
		return nil
	}
	set := node.Meta().(setter)
	if err := set(s, strings.TrimSpace(value)); err != nil {
		return core.WrapError(err, core.EINVALID, "cannot set property %s", property)
	}
	switch property { // explicit margins are never quirky
	case "margin":
		s.TopMarginQuirk, s.BottomMarginQuirk = false, false
	case "margin-top":
		s.TopMarginQuirk = false
	case "margin-bottom":
		s.BottomMarginQuirk = false
	}
	return nil
}

// Apply sets all the properties of a list of declarations. Erroneous
// declarations are skipped; the first error is returned.
func (s *Style) Apply(decls []*dcss.Declaration) error {
	var first error
	for _, decl := range decls {
		if err := s.SetProperty(decl.Property, decl.Value); err != nil {
			tracer().Infof("skipping declaration %s: %v", decl.Property, err)
			if first == nil {
				first = err
			}
		}
	}
	return first
}

// ParseDeclarations parses a list of CSS declarations, as found in HTML
// `style` attributes, and applies them to a copy of base. If base is nil, it
// defaults to InitialStyle().
//
//     s, err := css.ParseDeclarations("float: left; width: 40px", nil)
//
func ParseDeclarations(text string, base *Style) (*Style, error) {
	s := base.Copy()
	// douceur yields an empty value for a last declaration without ';'
	if t := strings.TrimSpace(text); t != "" && !strings.HasSuffix(t, ";") {
		text = t + ";"
	}
	decls, err := parser.ParseDeclarations(text)
	if err != nil {
		return s, core.WrapError(err, core.EINVALID, "cannot parse declarations %q", text)
	}
	return s, s.Apply(decls)
}

// enum creates a keyword setter for an enum field.
func enum[K comparable](names map[string]K, field func(*Style) *K) func(*Style, string) bool {
	return func(s *Style, v string) bool {
		k, ok := lookup(names, v)
		if ok {
			*field(s) = k
		}
		return ok
	}
}

// --- Shorthands ------------------------------------------------------------

func setFourSides(v *[4]DimenT, value string, name string) error {
	parts := strings.Fields(value)
	ds := make([]DimenT, len(parts))
	for i, p := range parts {
		ds[i] = DimenOption(p)
		if ds[i].IsNone() {
			if d, ok := borderKeyword(p); ok && name == "border-width" {
				ds[i] = d
				continue
			}
			return fmt.Errorf("illegal length %q for %s", p, name)
		}
	}
	switch len(ds) {
	case 1:
		v[Top], v[Right], v[Bottom], v[Left] = ds[0], ds[0], ds[0], ds[0]
	case 2:
		v[Top], v[Right], v[Bottom], v[Left] = ds[0], ds[1], ds[0], ds[1]
	case 3:
		v[Top], v[Right], v[Bottom], v[Left] = ds[0], ds[1], ds[2], ds[1]
	case 4:
		v[Top], v[Right], v[Bottom], v[Left] = ds[0], ds[1], ds[2], ds[3]
	default:
		return fmt.Errorf("%s needs 1 to 4 values, has %d", name, len(ds))
	}
	return nil
}

func borderKeyword(v string) (DimenT, bool) {
	switch strings.ToLower(v) {
	case "thin":
		return Px(1), true
	case "medium":
		return Px(3), true
	case "thick":
		return Px(5), true
	}
	return Dimen(), false
}

func setBorderWidth(d *DimenT, v string) error {
	if w, ok := borderKeyword(v); ok {
		*d = w
		return nil
	}
	w := DimenOption(v)
	if !w.IsAbsolute() {
		return fmt.Errorf("illegal border width %q", v)
	}
	*d = w
	return nil
}

// setBorderShorthand extracts the width part of a `border` shorthand, e.g.
// `1px solid red`. Border style `none` sets the width to 0.
func setBorderShorthand(s *Style, v string, sides ...int) error {
	w := Dimen()
	for _, part := range strings.Fields(v) {
		if d, ok := borderKeyword(part); ok {
			w = d
		} else if d := DimenOption(part); d.IsAbsolute() {
			w = d
		} else if strings.EqualFold(part, "none") || strings.EqualFold(part, "hidden") {
			w = SomeDimen(0)
			break
		}
	}
	if w.IsNone() {
		w = Px(3) // medium
	}
	for _, dir := range sides {
		s.BorderWidth[dir] = w
	}
	return nil
}
