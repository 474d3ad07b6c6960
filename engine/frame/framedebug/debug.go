package framedebug

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/blockflow/core"
	"github.com/npillmayer/blockflow/engine/frame"
)

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	BoxTmpl  *template.Template
	EdgeTmpl *template.Template
	cnt      int
}

// maxFrames guards against erroneous cycles in a frame tree.
const maxFrames = 4096

// ToGraphViz creates a graphical representation of a frame tree, including
// the geometry of laid-out frames. It produces a DOT file format suitable
// as input for Graphviz, given a Writer.
func ToGraphViz(root *frame.Frame, w io.Writer) error {
	header, err := template.New("frameTree").Parse(graphHeadTmpl)
	if err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot parse GraphViz template")
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.BoxTmpl = template.Must(template.New("box").Funcs(
		template.FuncMap{
			"shortstring": shortText,
			"label":       label,
			"fill":        fillColor,
		}).Parse(boxTmpl))
	gparams.EdgeTmpl = template.Must(template.New("boxedge").Parse(edgeTmpl))
	if err = header.Execute(w, gparams); err != nil {
		return core.WrapError(err, core.EINTERNAL, "cannot write GraphViz header")
	}
	dict := make(map[*frame.Frame]string, 256)
	if err = frames(root, w, dict, &gparams); err != nil {
		return err
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func frames(f *frame.Frame, w io.Writer, dict map[*frame.Frame]string, gparams *graphParamsType) error {
	gparams.cnt++
	if gparams.cnt == maxFrames {
		tracer().Errorf("frame tree too large or cyclic, GraphViz output truncated")
		return nil
	}
	if err := box(f, w, dict, gparams); err != nil {
		return err
	}
	for child := f.FirstChild(); child != nil; child = child.NextSibling() {
		tracer().Debugf("  child of %v = %v", f, child)
		if err := frames(child, w, dict, gparams); err != nil {
			return err
		}
		if err := edge(f, child, w, dict, gparams); err != nil {
			return err
		}
	}
	return nil
}

// Helper structs
type fbox struct {
	F    *frame.Frame
	Name string
}

type fedge struct {
	N1, N2 fbox
}

func box(f *frame.Frame, w io.Writer, dict map[*frame.Frame]string, gparams *graphParamsType) error {
	name := dict[f]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[f] = name
	}
	return gparams.BoxTmpl.Execute(w, &fbox{f, name})
}

func edge(f1, f2 *frame.Frame, w io.Writer, dict map[*frame.Frame]string, gparams *graphParamsType) error {
	e := fedge{fbox{f1, dict[f1]}, fbox{f2, dict[f2]}}
	return gparams.EdgeTmpl.Execute(w, e)
}

// ---------------------------------------------------------------------------

func shortText(f *frame.Frame) string {
	txt := f.Text
	s := fmt.Sprintf("\"%s \\\"", "T")
	if r := []rune(txt); len(r) > 10 {
		s += string(r[:10]) + "…\\\"\""
	} else {
		s += txt + "\\\"\""
	}
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// Label returns a short description of a frame: kind symbol, element name
// and border box. A star marks frames needing layout.
func Label(f *frame.Frame) string {
	if f == nil {
		return "<empty frame>"
	}
	name := f.Name
	if f.IsAnonymous() {
		name = "anon"
	}
	dirty := ""
	if f.NeedsLayout() {
		dirty = "*"
	}
	return fmt.Sprintf("%s %s%s\n(%v,%v) %v×%v", f.Kind().Symbol(), name, dirty, f.X(), f.Y(), f.W, f.H)
}

func label(f *frame.Frame) string {
	return fmt.Sprintf("%q", Label(f))
}

func fillColor(f *frame.Frame) string {
	switch {
	case f.IsFloating():
		return "lightgoldenrod1"
	case f.IsPositioned():
		return "lightpink"
	case f.IsAnonymous():
		return "grey90"
	case f.IsInline():
		return "palegreen"
	}
	return "lightblue3"
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [{{ .Fontname }} = "helvetica" fontsize=12] ;
   node [fontname = "{{ .Fontname }}" fontsize=12] ;
   edge [fontname = "{{ .Fontname }}" fontsize=12] ;
`
const boxTmpl = `{{ if .F.IsText }}
{{ .Name }}	[ label={{ shortstring .F }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ label .F }} shape=box style=filled fillcolor={{ fill .F }} ] ;
{{ end }}
`

const edgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
