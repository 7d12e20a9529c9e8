package utils

import (
	"strings"

	"golang.org/x/text/language"
)

// numberConventions are the grouping and symbol placement rules of a language.
type numberConventions struct {
	thousand    string
	decimal     string
	symbolAfter bool
}

var englishConventions = numberConventions{thousand: ",", decimal: "."}

// conventionsByLanguage is keyed by ISO 639 base language.
var conventionsByLanguage = map[string]numberConventions{
	"en": englishConventions,
	"ja": englishConventions,
	"zh": englishConventions,
	"tr": {thousand: ".", decimal: ","},
	"de": {thousand: ".", decimal: ",", symbolAfter: true},
	"es": {thousand: ".", decimal: ",", symbolAfter: true},
	"it": {thousand: ".", decimal: ",", symbolAfter: true},
	"nl": {thousand: ".", decimal: ",", symbolAfter: true},
	"fr": {thousand: " ", decimal: ",", symbolAfter: true},
	"ru": {thousand: " ", decimal: ",", symbolAfter: true},
}

// conventionsFor resolves a BCP 47 locale ("de-DE", "de_CH", "tr") to its
// conventions. Unparseable or unknown locales fall back to English.
func conventionsFor(locale string) numberConventions {
	tag, err := language.Parse(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if err != nil {
		return englishConventions
	}
	base, _ := tag.Base()
	if conv, ok := conventionsByLanguage[base.String()]; ok {
		return conv
	}
	return englishConventions
}
