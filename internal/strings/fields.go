package strings

import (
	"errors"
	"strings"
	"unicode"
)

// ErrUnterminatedQuote is returned when a command line ends inside quotes.
var ErrUnterminatedQuote = errors.New("unterminated quote")

// ErrTrailingEscape is returned when a command line ends with a backslash.
var ErrTrailingEscape = errors.New("trailing backslash")

// SplitCommandLine splits a line into arguments using shell-like quoting.
// Single quotes preserve their contents literally; double quotes allow
// backslash escapes of '"' and '\'; outside quotes a backslash escapes the
// next character. An empty quoted string yields an empty argument.
func SplitCommandLine(line string) ([]string, error) {
	var (
		args    []string
		current strings.Builder
		inArg   bool
		quote   rune
		escaped bool
	)

	for _, r := range line {
		switch {
		case escaped:
			if quote == '"' && r != '"' && r != '\\' {
				current.WriteRune('\\')
			}
			current.WriteRune(r)
			escaped = false
		case quote == '\'':
			if r == '\'' {
				quote = 0
				continue
			}
			current.WriteRune(r)
		case quote == '"':
			switch r {
			case '"':
				quote = 0
			case '\\':
				escaped = true
			default:
				current.WriteRune(r)
			}
		case r == '\\':
			escaped = true
			inArg = true
		case r == '\'' || r == '"':
			quote = r
			inArg = true
		case unicode.IsSpace(r):
			if inArg {
				args = append(args, current.String())
				current.Reset()
				inArg = false
			}
		default:
			current.WriteRune(r)
			inArg = true
		}
	}

	if escaped {
		return nil, ErrTrailingEscape
	}
	if quote != 0 {
		return nil, ErrUnterminatedQuote
	}
	if inArg {
		args = append(args, current.String())
	}
	return args, nil
}
