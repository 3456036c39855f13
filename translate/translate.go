// Package translate formats user facing messages for the user's locale.
package translate

import (
	"io"
	"log"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer *message.Printer

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("hexasm: locale: %v", err)
	}

	if len(locales) == 0 {
		locales = []string{"en-US"}
	}

	printer = message.NewPrinter(message.MatchLanguage(locales...))
}

// SetLanguage forces message formatting to a specific language tag.
func SetLanguage(tag language.Tag) {
	printer = message.NewPrinter(tag)
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Sprintf(key, args...)
}

// Fprintf writes a translated en-US format to w.
func Fprintf(w io.Writer, key message.Reference, args ...any) (n int, err error) {
	return printer.Fprintf(w, key, args...)
}
