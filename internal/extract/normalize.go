package extract

import "strings"

var framingReplacer = strings.NewReplacer(
	`"`, " ",
	`\`, " ",
	"\n", " ",
	"\r", " ",
	"\t", " ",
)

// Normalize strips characters that would break prompt or JSON framing from
// raw message text. Every double quote, backslash, newline, carriage return,
// and tab becomes a single space; the result is trimmed. Total over any
// input, including the empty string.
func Normalize(text string) string {
	return strings.TrimSpace(framingReplacer.Replace(text))
}
