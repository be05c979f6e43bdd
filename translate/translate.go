// Package translate renders the ls8 error and diagnostic strings in the
// language of the host. Messages are keyed by their en-US Sprintf format,
// so a missing catalog entry falls back to the key itself.
package translate

import (
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/message"
)

// LOCALE_DEFAULT is used when the host reports no locale.
const LOCALE_DEFAULT = "en-US"

var printer = newPrinter(hostLocales())

// hostLocales returns the preferred locales of the host, best first.
func hostLocales() (locales []string) {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("ls8: no host locale, using %v: %v", LOCALE_DEFAULT, err)
	}

	return
}

// newPrinter builds the message printer for the first supported locale.
func newPrinter(locales []string) *message.Printer {
	if len(locales) == 0 {
		locales = []string{LOCALE_DEFAULT}
	}

	return message.NewPrinter(message.MatchLanguage(locales...))
}

// From formats an en-US Sprintf() style key for the host locale.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}
