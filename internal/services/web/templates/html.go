package templates

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// htmlWriter streams markup and keeps the first write error so component
// bodies read top to bottom without per-line error checks.
type htmlWriter struct {
	ctx context.Context
	w   io.Writer
	err error
}

func newHTMLWriter(ctx context.Context, w io.Writer) *htmlWriter {
	return &htmlWriter{ctx: ctx, w: w}
}

// raw writes trusted markup.
func (h *htmlWriter) raw(markup string) {
	if h.err != nil {
		return
	}
	_, h.err = io.WriteString(h.w, markup)
}

// text writes escaped text content.
func (h *htmlWriter) text(value string) {
	h.raw(templ.EscapeString(value))
}

// open writes a start tag with escaped attributes given as name/value pairs.
func (h *htmlWriter) open(tag string, attrs ...string) {
	h.raw("<" + tag)
	for i := 0; i+1 < len(attrs); i += 2 {
		h.raw(" " + attrs[i] + "=\"" + templ.EscapeString(attrs[i+1]) + "\"")
	}
	h.raw(">")
}

func (h *htmlWriter) close(tag string) {
	h.raw("</" + tag + ">")
}

// element writes <tag attrs>text</tag>.
func (h *htmlWriter) element(tag string, text string, attrs ...string) {
	h.open(tag, attrs...)
	h.text(text)
	h.close(tag)
}

// link writes an anchor whose href passes templ URL sanitization.
func (h *htmlWriter) link(href string, text string, attrs ...string) {
	h.element("a", text, append([]string{"href", string(templ.URL(href))}, attrs...)...)
}

func (h *htmlWriter) render(c templ.Component) {
	if h.err != nil || c == nil {
		return
	}
	h.err = c.Render(h.ctx, h.w)
}

// children renders the component passed through templ.WithChildren.
func (h *htmlWriter) children() {
	children := templ.GetChildren(h.ctx)
	if children == nil {
		return
	}
	if h.err != nil {
		return
	}
	h.err = children.Render(templ.ClearChildren(h.ctx), h.w)
}

// component builds a templ.Component from a body writing through htmlWriter.
func component(body func(h *htmlWriter)) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		h := newHTMLWriter(ctx, w)
		body(h)
		return h.err
	})
}
