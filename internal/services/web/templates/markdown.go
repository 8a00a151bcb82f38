package templates

import (
	"bytes"
	"fmt"

	"github.com/a-h/templ"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// markdown renders post bodies. Raw HTML in the source is omitted because
// the unsafe renderer option is never enabled.
var markdown = goldmark.New(
	goldmark.WithExtensions(extension.GFM),
	goldmark.WithRendererOptions(html.WithHardWraps()),
)

// RenderMarkdown converts post content to HTML.
func RenderMarkdown(source string) (string, error) {
	var buf bytes.Buffer
	if err := markdown.Convert([]byte(source), &buf); err != nil {
		return "", fmt.Errorf("render markdown: %w", err)
	}
	return buf.String(), nil
}

// Markdown returns a component rendering source as HTML.
func Markdown(source string) templ.Component {
	rendered, err := RenderMarkdown(source)
	if err != nil {
		return templ.Raw("", err)
	}
	return templ.Raw(rendered)
}
