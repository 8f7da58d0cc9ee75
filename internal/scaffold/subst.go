package scaffold

import "regexp"

var placeholderPattern = regexp.MustCompile(`\{\{([A-Za-z][A-Za-z0-9_]*)\}\}`)

// Substitute replaces every {{name}} occurrence with subs[name] when the
// key is present, leaving unmatched placeholders verbatim so template
// content that legitimately contains double braces survives copying.
func Substitute(content string, subs map[string]string) string {
	return placeholderPattern.ReplaceAllStringFunc(content, func(match string) string {
		key := match[2 : len(match)-2]
		if value, ok := subs[key]; ok {
			return value
		}
		return match
	})
}
