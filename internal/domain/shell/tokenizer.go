package shell

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnclosedQuote is returned when input ends inside a quoted span.
//
//nolint:staticcheck // shown to users verbatim
var ErrUnclosedQuote = errors.New("Unclosed quote")

// Tokenize splits input on runs of unquoted whitespace. A ' or " opens a
// literal span closed by the same character; quotes are dropped and nothing
// is escaped.
func Tokenize(input string) ([]string, error) {
	tokens := []string{}
	var current strings.Builder
	var quote rune

	for _, ch := range input {
		if quote != 0 {
			if ch == quote {
				quote = 0
			} else {
				current.WriteRune(ch)
			}
			continue
		}

		switch {
		case ch == '\'' || ch == '"':
			quote = ch
		case unicode.IsSpace(ch):
			if current.Len() > 0 {
				tokens = append(tokens, current.String())
				current.Reset()
			}
		default:
			current.WriteRune(ch)
		}
	}

	if quote != 0 {
		return nil, ErrUnclosedQuote
	}
	if current.Len() > 0 {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
