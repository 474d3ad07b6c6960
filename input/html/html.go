package html

import (
	"io"
	"strconv"
	"strings"

	"github.com/andybalholm/cascadia"
	dcss "github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"golang.org/x/net/html"

	"github.com/npillmayer/blockflow/core"
	"github.com/npillmayer/blockflow/core/dimen"
	"github.com/npillmayer/blockflow/core/parameters"
	"github.com/npillmayer/blockflow/engine/frame"
	"github.com/npillmayer/blockflow/engine/frame/boxtree"
	"github.com/npillmayer/blockflow/engine/style/css"
)

// Document is a frame tree built from an HTML document.
type Document struct {
	Canvas *frame.Frame // root of the frame tree
	Quirks bool         // document has to be laid out in quirks mode
}

// Build parses an HTML document and creates its frame tree.
//
// Errors in CSS declarations or selectors are traced and skipped. An error
// is returned only if the HTML input cannot be read.
func Build(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, core.WrapError(err, core.EINVALID, "cannot parse HTML input")
	}
	b := &builder{}
	b.rules = append(b.rules, parseStylesheet(uaStylesheet)...)
	b.uaRules = len(b.rules)
	collectStyleElements(root, b)
	doc := &Document{
		Canvas: frame.New(frame.Canvas, nil, "#canvas"),
		Quirks: isQuirks(root),
	}
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type == html.ElementNode {
			b.build(n, doc.Canvas)
		}
	}
	dropWhiteSpace(doc.Canvas)
	boxtree.Normalize(doc.Canvas)
	tracer().Debugf("built frame tree for document, quirks = %v", doc.Quirks)
	return doc, nil
}

// BuildString is a convenience wrapper for Build.
func BuildString(s string) (*Document, error) {
	return Build(strings.NewReader(s))
}

// ApplyTo sets the layout parameters implied by the document.
func (doc *Document) ApplyTo(regs *parameters.LayoutRegisters) {
	regs.Push(parameters.P_QUIRKS, doc.Quirks)
}

// FrameByID returns the frame of the element with the given ID, or nil.
func (doc *Document) FrameByID(id string) *frame.Frame {
	var found *frame.Frame
	doc.Canvas.Walk(func(f *frame.Frame) bool {
		if found == nil && f.ID == id {
			found = f
		}
		return found == nil
	})
	return found
}

// isQuirks checks the doctype of a document. Only the HTML5 doctype and
// strict doctypes select standards mode.
func isQuirks(root *html.Node) bool {
	for n := root.FirstChild; n != nil; n = n.NextSibling {
		if n.Type != html.DoctypeNode {
			continue
		}
		if !strings.EqualFold(n.Data, "html") {
			return true
		}
		for _, a := range n.Attr {
			if a.Key == "public" && strings.Contains(strings.ToLower(a.Val), "transitional") {
				return true
			}
		}
		return false
	}
	return true
}

// --- Style rules -----------------------------------------------------------

type rule struct {
	selector     cascadia.Selector
	declarations []*dcss.Declaration
}

type builder struct {
	rules   []rule
	uaRules int // number of rules from the user agent stylesheet
}

func parseStylesheet(text string) []rule {
	sheet, err := parser.Parse(text)
	if err != nil {
		tracer().Infof("skipping stylesheet: %v", err)
		return nil
	}
	var rules []rule
	for _, r := range sheet.Rules {
		if r.Kind != dcss.QualifiedRule {
			continue
		}
		for _, s := range r.Selectors {
			sel, err := cascadia.Compile(s)
			if err != nil {
				tracer().Infof("skipping selector %q: %v", s, err)
				continue
			}
			rules = append(rules, rule{selector: sel, declarations: r.Declarations})
		}
	}
	return rules
}

func collectStyleElements(n *html.Node, b *builder) {
	if n.Type == html.ElementNode && n.Data == "style" {
		var text strings.Builder
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if c.Type == html.TextNode {
				text.WriteString(c.Data)
			}
		}
		b.rules = append(b.rules, parseStylesheet(text.String())...)
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectStyleElements(c, b)
	}
}

// computeStyle computes the style of element n. User agent rules are
// applied first, followed by the author's rules and the style attribute.
// Important declarations of stylesheets win over the style attribute.
func (b *builder) computeStyle(n *html.Node, parent *css.Style) *css.Style {
	s := css.InitialStyle().InheritFrom(parent)
	var important []*dcss.Declaration
	for i, r := range b.rules {
		if i == b.uaRules && quirkyMargins[n.Data] {
			s.TopMarginQuirk, s.BottomMarginQuirk = true, true
		}
		if !r.selector.Match(n) {
			continue
		}
		for _, d := range r.declarations {
			if d.Important {
				important = append(important, d)
			}
		}
		_ = s.Apply(r.declarations)
	}
	if len(b.rules) == b.uaRules && quirkyMargins[n.Data] {
		s.TopMarginQuirk, s.BottomMarginQuirk = true, true
	}
	if attr, ok := attribute(n, "style"); ok {
		styled, err := css.ParseDeclarations(attr, s)
		if err != nil {
			tracer().Infof("element %s: %v", n.Data, err)
		}
		s = styled
	}
	_ = s.Apply(important)
	return s
}

func attribute(n *html.Node, key string) (string, bool) {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val, true
		}
	}
	return "", false
}

// pixels reads a dimension attribute like `width="40"`.
func pixels(n *html.Node, key string) dimen.Dimen {
	v, ok := attribute(n, key)
	if !ok {
		return 0
	}
	px, err := strconv.Atoi(strings.TrimSuffix(strings.TrimSpace(v), "px"))
	if err != nil || px < 0 {
		tracer().Infof("element %s: ignoring %s=%q", n.Data, key, v)
		return 0
	}
	return dimen.Dimen(px) * dimen.PX
}

// --- Frame construction ----------------------------------------------------

// build creates the frames for element n and its subtree, and appends them
// to parent.
func (b *builder) build(n *html.Node, parent *frame.Frame) {
	if skippedElements[n.Data] {
		return
	}
	style := b.computeStyle(n, parent.Style)
	if style.Display == css.DisplayNone {
		return
	}
	var f *frame.Frame
	switch n.Data {
	case "img":
		f = frame.NewReplaced(style, n.Data, pixels(n, "width"), pixels(n, "height"))
	case "br":
		f = frame.New(frame.Break, style, n.Data)
	case "fieldset":
		f = frame.New(frame.Fieldset, style, n.Data)
	default:
		kind := frame.KindForDisplay(style.Display)
		if kind == frame.NoKind {
			return
		}
		f = frame.New(kind, style, n.Data)
	}
	f.ID, _ = attribute(n, "id")
	parent.AppendChildNode(f)
	if !f.IsReplaced() && !f.IsBreak() {
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			switch c.Type {
			case html.ElementNode:
				b.build(c, f)
			case html.TextNode:
				f.AppendChildNode(frame.NewText(c.Data, f))
			}
		}
	}
	if f.IsFloatingOrPositioned() {
		f.Blockify()
	}
}

// dropWhiteSpace removes text frames consisting of white space only from
// block containers with block-level children. White space between blocks
// does not render, unless it is preformatted.
func dropWhiteSpace(root *frame.Frame) {
	root.Walk(func(f *frame.Frame) bool {
		if f.IsText() || f.IsReplaced() {
			return false
		}
		hasBlock := false
		for c := f.FirstChild(); c != nil; c = c.NextSibling() {
			if !c.IsInline() && !c.IsFloatingOrPositioned() {
				hasBlock = true
				break
			}
		}
		if !hasBlock {
			return true
		}
		var blanks []*frame.Frame
		for c := f.FirstChild(); c != nil; c = c.NextSibling() {
			if c.IsText() && c.Style.WhiteSpace != css.WhiteSpacePre && strings.TrimSpace(c.Text) == "" {
				blanks = append(blanks, c)
			}
		}
		for _, c := range blanks {
			f.RemoveChildNode(c)
		}
		return true
	})
}
