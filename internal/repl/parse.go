package repl

import (
	"strings"
	"unicode"

	"github.com/vvka-141/fman/pkg/fman"
)

// Command is one parsed input line.
type Command struct {
	Name string
	Args []string
}

// Parse splits line into a command name and its arguments. A blank line
// yields a Command with an empty Name.
func Parse(line string) (Command, error) {
	tokens, err := Tokenize(line)
	if err != nil {
		return Command{}, err
	}
	if len(tokens) == 0 {
		return Command{}, nil
	}
	return Command{Name: tokens[0], Args: tokens[1:]}, nil
}

// Tokenize splits line on runs of whitespace. Single or double quotes group
// characters, including spaces, into one token; the quotes themselves are
// dropped. An unterminated quote is invalid input.
func Tokenize(line string) ([]string, error) {
	var (
		tokens  []string
		current strings.Builder
		quote   rune
		inToken bool
	)

	for _, r := range line {
		switch {
		case quote != 0:
			if r == quote {
				quote = 0
			} else {
				current.WriteRune(r)
			}
		case r == '"' || r == '\'':
			quote = r
			inToken = true
		case unicode.IsSpace(r):
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}
		default:
			current.WriteRune(r)
			inToken = true
		}
	}

	if quote != 0 {
		return nil, fman.InvalidInput("parse", "unterminated quote")
	}
	if inToken {
		tokens = append(tokens, current.String())
	}
	return tokens, nil
}
