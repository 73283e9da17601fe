// Package slugify derives URL slugs from painting and category titles.
package slugify

import (
	"strconv"
	"strings"
	"unicode"
)

// asciiFold maps the accented characters that show up in French titles
// to their ASCII equivalents.
var asciiFold = map[rune]string{
	'à': "a", 'â': "a", 'ä': "a", 'á': "a", 'ã': "a", 'å': "a",
	'ç': "c",
	'è': "e", 'é': "e", 'ê': "e", 'ë': "e",
	'ì': "i", 'î': "i", 'ï': "i", 'í': "i",
	'ò': "o", 'ô': "o", 'ö': "o", 'ó': "o", 'õ': "o",
	'ù': "u", 'û': "u", 'ü': "u", 'ú': "u",
	'ÿ': "y", 'ý': "y",
	'ñ': "n",
	'æ': "ae", 'œ': "oe",
	'ß': "ss",
}

// Make converts a title into a URL slug: lowercase, ASCII-folded,
// non-alphanumeric runs collapsed into single hyphens.
func Make(title string) string {
	var b strings.Builder
	lastHyphen := true // suppress a leading hyphen

	for _, r := range strings.ToLower(title) {
		if folded, ok := asciiFold[r]; ok {
			b.WriteString(folded)
			lastHyphen = false
			continue
		}
		if (r >= 'a' && r <= 'z') || unicode.IsDigit(r) {
			b.WriteRune(r)
			lastHyphen = false
			continue
		}
		if !lastHyphen {
			b.WriteByte('-')
			lastHyphen = true
		}
	}

	return strings.TrimRight(b.String(), "-")
}

// WithSuffix appends a numeric suffix used for slug collision resolution.
func WithSuffix(slug string, n int) string {
	return slug + "-" + strconv.Itoa(n)
}
