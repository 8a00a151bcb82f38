package templates

import (
	"testing"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/message/catalog"
)

func TestTWithoutLocalizerUsesKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, "some.key"); got != "some.key" {
		t.Fatalf("T(nil, ...) = %q, want %q", got, "some.key")
	}
	if got := T(nil, "Posted on %s", "May 1"); got != "Posted on May 1" {
		t.Fatalf("T(nil, format) = %q", got)
	}
}

func TestTWithoutLocalizerIgnoresNonStringKey(t *testing.T) {
	t.Parallel()

	if got := T(nil, 42); got != "" {
		t.Fatalf("T(nil, 42) = %q, want empty", got)
	}
}

func TestTUsesCatalog(t *testing.T) {
	t.Parallel()

	builder := catalog.NewBuilder()
	if err := builder.SetString(language.English, "web.blog.title", "Blog"); err != nil {
		t.Fatalf("set catalog string: %v", err)
	}
	printer := message.NewPrinter(language.English, message.Catalog(builder))
	if got := T(printer, "web.blog.title"); got != "Blog" {
		t.Fatalf("T(printer, key) = %q, want %q", got, "Blog")
	}
	if got := T(printer, "untranslated"); got != "untranslated" {
		t.Fatalf("T(printer, missing) = %q, want %q", got, "untranslated")
	}
}
