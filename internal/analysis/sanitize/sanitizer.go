// Package sanitize strips markup from model output before it is laid out as plain text.
package sanitize

import (
	"regexp"
	"strings"
)

// Rule is a single find-and-replace step over the whole text.
// Replace may reference capture groups ($1).
type Rule struct {
	Name    string
	Pattern *regexp.Regexp
	Replace string
}

// Apply runs the rule against text.
func (r Rule) Apply(text string) string {
	return r.Pattern.ReplaceAllString(text, r.Replace)
}

// Markdown markers first, then LaTeX. Later rules see the output of earlier ones.
var defaultRules = []Rule{
	{Name: "bold", Pattern: regexp.MustCompile(`\*\*(.*?)\*\*`), Replace: "$1"},
	{Name: "italic", Pattern: regexp.MustCompile(`\*(.*?)\*`), Replace: "$1"},
	{Name: "heading", Pattern: regexp.MustCompile(`(?m)^#+\s*`), Replace: ""},
	{Name: "code", Pattern: regexp.MustCompile("`+"), Replace: ""},
	{Name: "latex-command-arg", Pattern: regexp.MustCompile(`\\[a-zA-Z]+\{([^}]*)\}`), Replace: "$1"},
	{Name: "latex-command", Pattern: regexp.MustCompile(`\\[a-zA-Z]+\*?`), Replace: ""},
}

// Rules returns a copy of the default rule chain in application order.
func Rules() []Rule {
	return append([]Rule(nil), defaultRules...)
}

// Text removes markdown emphasis, headings, backticks and simple LaTeX
// commands, then trims surrounding whitespace. Other markup is left alone.
func Text(text string) string {
	return Apply(text, defaultRules...)
}

// Apply runs rules in order and trims the result.
func Apply(text string, rules ...Rule) string {
	for _, rule := range rules {
		text = rule.Apply(text)
	}
	return strings.TrimSpace(text)
}
