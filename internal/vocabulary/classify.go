package vocabulary

import (
	"regexp"
	"strings"
)

// elementRegex is greedy and never crosses a line break.
var elementRegex = regexp.MustCompile(`<.*>`)

// ExtractElementTokens returns every raw `<...>` span found in text.
func ExtractElementTokens(text string) []string {
	return elementRegex.FindAllString(text, -1)
}

// ElementName returns the name of a raw element token: everything after the
// opening `<` up to the first space or `>`.
//
//	<card class="x"> -> card
//	</card>          -> /card
func ElementName(token string) string {
	token = strings.TrimPrefix(token, "<")
	if end := strings.IndexAny(token, " >"); end >= 0 {
		return token[:end]
	}
	return token
}

// IsCustomElement reports whether the token's element name is absent from the
// standard vocabulary. The comparison is case-sensitive.
func IsCustomElement(token string) bool {
	return !IsStandard(ElementName(token))
}

// CustomElementNames returns the deduplicated names of all custom elements
// referenced anywhere in document.
func CustomElementNames(document string) map[string]struct{} {
	names := make(map[string]struct{})
	for _, token := range ExtractElementTokens(document) {
		if IsCustomElement(token) {
			names[ElementName(token)] = struct{}{}
		}
	}
	return names
}
