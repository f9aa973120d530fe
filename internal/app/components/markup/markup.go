// Package markup is the small writer the components use to emit HTML. It
// keeps the first write error so component bodies can stay linear.
package markup

import (
	"context"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/a-h/templ"
)

type Writer struct {
	w   io.Writer
	err error
}

func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// Raw writes s unescaped.
func (m *Writer) Raw(s string) {
	if m.err != nil {
		return
	}
	_, m.err = io.WriteString(m.w, s)
}

// Rawf formats into the output without escaping; callers escape arguments.
func (m *Writer) Rawf(format string, args ...any) {
	if m.err != nil {
		return
	}
	_, m.err = fmt.Fprintf(m.w, format, args...)
}

// Text writes s HTML-escaped.
func (m *Writer) Text(s string) {
	m.Raw(templ.EscapeString(s))
}

// Open writes a start tag with the given attributes.
func (m *Writer) Open(tag string, attrs ...string) {
	m.Raw("<" + tag)
	for _, a := range attrs {
		m.Raw(a)
	}
	m.Raw(">")
}

func (m *Writer) Close(tag string) {
	m.Raw("</" + tag + ">")
}

// Element writes <tag attrs>text</tag> with text escaped.
func (m *Writer) Element(tag, text string, attrs ...string) {
	m.Open(tag, attrs...)
	m.Text(text)
	m.Close(tag)
}

func (m *Writer) Component(ctx context.Context, c templ.Component) {
	if m.err != nil || c == nil {
		return
	}
	m.err = c.Render(ctx, m.w)
}

func (m *Writer) Err() error {
	return m.err
}

// Component adapts a markup body into a templ.Component.
func Component(fn func(ctx context.Context, m *Writer)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		m := New(w)
		fn(ctx, m)
		return m.Err()
	})
}

// Attr renders ` name="value"` with value escaped.
func Attr(name, value string) string {
	return " " + name + `="` + templ.EscapeString(value) + `"`
}

// AttrIf renders the attribute only when value is not empty.
func AttrIf(name, value string) string {
	if value == "" {
		return ""
	}
	return Attr(name, value)
}

// Flag renders a boolean attribute when on is true.
func Flag(name string, on bool) string {
	if !on {
		return ""
	}
	return " " + name
}

// Attrs renders templ.Attributes in key order. Booleans become bare flags,
// everything else is formatted and escaped.
func Attrs(attrs templ.Attributes) string {
	if len(attrs) == 0 {
		return ""
	}
	keys := make([]string, 0, len(attrs))
	for k := range attrs {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var sb strings.Builder
	for _, k := range keys {
		switch v := attrs[k].(type) {
		case bool:
			sb.WriteString(Flag(k, v))
		case string:
			sb.WriteString(Attr(k, v))
		default:
			sb.WriteString(Attr(k, fmt.Sprint(v)))
		}
	}
	return sb.String()
}
