// Package svg holds a small tree of typed SVG primitives and the single
// function that serializes it. Every attribute value and text node is escaped
// on the way out, so callers never escape by hand.
package svg

import (
	"bytes"
	"strconv"
	"strings"
)

var escaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
	"'", "&apos;",
)

// Escape maps & < > " ' to their XML entities.
func Escape(s string) string {
	return escaper.Replace(s)
}

// Node is an element that can be written into a Document.
type Node interface {
	encode(e *encoder)
}

// Document is a complete, self-contained SVG image.
type Document struct {
	Width, Height int
	// Title is exposed to screen readers as the accessible name.
	Title    string
	Defs     []Node
	Children []Node
}

// Render serializes the document. Output is deterministic.
func (d Document) Render() []byte {
	var buf bytes.Buffer
	e := &encoder{buf: &buf}
	e.open("svg",
		attr{"xmlns", "http://www.w3.org/2000/svg"},
		attr{"width", itoa(d.Width)},
		attr{"height", itoa(d.Height)},
		attr{"viewBox", "0 0 " + itoa(d.Width) + " " + itoa(d.Height)},
		attr{"role", "img"},
	)
	e.newline()
	if d.Title != "" {
		e.element("title", d.Title)
	}
	if len(d.Defs) > 0 {
		e.open("defs")
		e.newline()
		for _, n := range d.Defs {
			n.encode(e)
		}
		e.close("defs")
	}
	for _, n := range d.Children {
		n.encode(e)
	}
	e.close("svg")
	return buf.Bytes()
}

// Rect is a (rounded) rectangle.
type Rect struct {
	X, Y, Width, Height int
	RX                  int
	Fill                string
	Opacity             string
}

func (r Rect) encode(e *encoder) {
	e.empty("rect",
		attr{"x", itoa(r.X)},
		attr{"y", itoa(r.Y)},
		attr{"width", itoa(r.Width)},
		attr{"height", itoa(r.Height)},
		optional("rx", r.RX),
		attr{"fill", r.Fill},
		attr{"opacity", r.Opacity},
	)
}

// Text is a single line of text anchored at X, Y.
type Text struct {
	X, Y       int
	Class      string
	Fill       string
	FontSize   int
	FontWeight string
	// Anchor is the text-anchor value; empty means start.
	Anchor  string
	Content string
}

func (t Text) encode(e *encoder) {
	attrs := []attr{
		{"x", itoa(t.X)},
		{"y", itoa(t.Y)},
		{"class", t.Class},
		{"text-anchor", t.Anchor},
		{"fill", t.Fill},
	}
	if t.FontSize > 0 {
		attrs = append(attrs,
			attr{"font-family", "ui-sans-serif,system-ui"},
			attr{"font-size", itoa(t.FontSize)},
		)
	}
	attrs = append(attrs, attr{"font-weight", t.FontWeight})
	e.open("text", attrs...)
	e.text(t.Content)
	e.close("text")
}

// Circle is a filled circle.
type Circle struct {
	CX, CY, R int
	Class     string
	Fill      string
	Opacity   string
}

func (c Circle) encode(e *encoder) {
	e.empty("circle",
		attr{"class", c.Class},
		attr{"cx", itoa(c.CX)},
		attr{"cy", itoa(c.CY)},
		attr{"r", itoa(c.R)},
		attr{"fill", c.Fill},
		attr{"opacity", c.Opacity},
	)
}

// Path draws SVG path data.
type Path struct {
	D       string
	Fill    string
	Opacity string
}

func (p Path) encode(e *encoder) {
	e.empty("path", attr{"d", p.D}, attr{"fill", p.Fill}, attr{"opacity", p.Opacity})
}

// Group wraps children, optionally translated.
type Group struct {
	Class     string
	Transform string
	Children  []Node
}

func (g Group) encode(e *encoder) {
	e.open("g", attr{"class", g.Class}, attr{"transform", g.Transform})
	e.newline()
	for _, n := range g.Children {
		n.encode(e)
	}
	e.close("g")
}

// Anchor makes its children a hyperlink.
type Anchor struct {
	Href     string
	Class    string
	Children []Node
}

func (a Anchor) encode(e *encoder) {
	e.open("a", attr{"href", a.Href}, attr{"target", "_blank"}, attr{"class", a.Class})
	e.newline()
	for _, n := range a.Children {
		n.encode(e)
	}
	e.close("a")
}

// Stop is one colour stop of a gradient.
type Stop struct {
	Offset  string
	Color   string
	Opacity string
}

// LinearGradient is a left-to-right (or diagonal) gradient usable as url(#ID).
type LinearGradient struct {
	ID             string
	X1, Y1, X2, Y2 string
	Stops          []Stop
}

func (g LinearGradient) encode(e *encoder) {
	e.open("linearGradient",
		attr{"id", g.ID},
		attr{"x1", g.X1},
		attr{"y1", g.Y1},
		attr{"x2", g.X2},
		attr{"y2", g.Y2},
	)
	e.newline()
	for _, s := range g.Stops {
		opacity := s.Opacity
		if opacity == "" {
			opacity = "1"
		}
		e.empty("stop", attr{"offset", s.Offset}, attr{"stop-color", s.Color}, attr{"stop-opacity", opacity})
	}
	e.close("linearGradient")
}

// Style is an embedded stylesheet.
type Style struct {
	CSS string
}

func (s Style) encode(e *encoder) {
	e.element("style", s.CSS)
}

// URL references a definition by id, as in fill="url(#id)".
func URL(id string) string {
	return "url(#" + id + ")"
}

type attr struct {
	name, value string
}

// optional drops zero-valued numeric attributes.
func optional(name string, v int) attr {
	if v == 0 {
		return attr{name: name}
	}
	return attr{name, itoa(v)}
}

type encoder struct {
	buf *bytes.Buffer
}

func (e *encoder) writeOpen(name string, attrs []attr) {
	e.buf.WriteByte('<')
	e.buf.WriteString(name)
	for _, a := range attrs {
		if a.value == "" {
			continue
		}
		e.buf.WriteByte(' ')
		e.buf.WriteString(a.name)
		e.buf.WriteString(`="`)
		e.buf.WriteString(Escape(a.value))
		e.buf.WriteByte('"')
	}
}

func (e *encoder) open(name string, attrs ...attr) {
	e.writeOpen(name, attrs)
	e.buf.WriteByte('>')
}

func (e *encoder) empty(name string, attrs ...attr) {
	e.writeOpen(name, attrs)
	e.buf.WriteString("/>\n")
}

func (e *encoder) close(name string) {
	e.buf.WriteString("</")
	e.buf.WriteString(name)
	e.buf.WriteString(">\n")
}

func (e *encoder) text(s string) {
	e.buf.WriteString(Escape(s))
}

func (e *encoder) element(name, content string) {
	e.open(name)
	e.text(content)
	e.close(name)
}

func (e *encoder) newline() {
	e.buf.WriteByte('\n')
}

func itoa(v int) string {
	return strconv.Itoa(v)
}
