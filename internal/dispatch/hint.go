package dispatch

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

type hint struct {
	prompt  string
	usage   string
	example string
}

func (h hint) render(reason string) string {
	var sb strings.Builder
	sb.WriteString(reason)
	sb.WriteString(".")
	if h.usage != "" {
		sb.WriteString("\n\tUsage: `" + h.usage + "`")
	}
	if h.example != "" {
		sb.WriteString("\n\tExample: `" + h.example + "`.")
	}
	return sb.String()
}

// sentence upper-cases the first letter of msg.
func sentence(msg string) string {
	r, size := utf8.DecodeRuneInString(msg)
	if r == utf8.RuneError {
		return msg
	}
	return string(unicode.ToUpper(r)) + msg[size:]
}
