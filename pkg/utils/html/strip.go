// ABOUTME: HTML utilities for turning upstream markup into plain text
// ABOUTME: Uses a strict bluemonday policy so no tags or attributes survive

package html

import (
	stdhtml "html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// strictPolicy removes every element and attribute
var strictPolicy = bluemonday.StrictPolicy()

// StripHTML removes HTML tags, decodes entities and collapses whitespace
func StripHTML(input string) string {
	if input == "" {
		return ""
	}

	// Script and style bodies are dropped along with their tags
	text := strictPolicy.Sanitize(input)

	// bluemonday escapes the text it keeps
	text = stdhtml.UnescapeString(text)

	return strings.Join(strings.Fields(text), " ")
}
