// Package i18n holds the site message catalog and its printer.
package i18n

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Default returns the catalog language. The site ships English only.
func Default() language.Tag {
	return language.English
}

// Printer returns a message printer for tag.
func Printer(tag language.Tag) *message.Printer {
	return message.NewPrinter(tag)
}

// Localizer returns the printer every page renders with.
func Localizer() *message.Printer {
	return Printer(Default())
}
