package i18n

import (
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DefaultLanguage is used when the requested language is unknown
const DefaultLanguage = "en"

var (
	supported = []language.Tag{
		language.English,
		language.BrazilianPortuguese,
	}

	matcher = language.NewMatcher(supported)
)

// Supported returns the languages the catalog has text for
func Supported() []language.Tag {
	return append([]language.Tag(nil), supported...)
}

// Match returns the supported language closest to lang. It accepts BCP 47
// tags, Accept-Language lists and POSIX locales like "pt_BR.UTF-8". A list
// is tried in weight order and the first choice the catalog covers wins.
func Match(lang string) language.Tag {
	lang = posixToBCP47(lang)
	if lang == "" {
		return language.English
	}

	desired, _, err := language.ParseAcceptLanguage(lang)
	if err != nil || len(desired) == 0 {
		return language.English
	}

	// ParseAcceptLanguage sorts by weight, best first
	for _, tag := range desired {
		if _, index, confidence := matcher.Match(tag); confidence >= language.High {
			return supported[index]
		}
	}

	return language.English
}

// NewPrinter returns a printer for the supported language closest to lang
func NewPrinter(lang string) *message.Printer {
	return message.NewPrinter(Match(lang))
}

func posixToBCP47(lang string) string {
	lang = strings.TrimSpace(lang)
	if i := strings.IndexAny(lang, ".@"); i >= 0 {
		lang = lang[:i]
	}
	if lang == "C" || lang == "POSIX" {
		return ""
	}
	return strings.ReplaceAll(lang, "_", "-")
}
