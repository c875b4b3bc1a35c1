package uploads

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNoMatch   = errors.New("no matching upload")
	ErrAmbiguous = errors.New("ambiguous upload name")
)

// Resolve picks the entry in names that input refers to.
//
// An exact name match wins. Otherwise input must equal the stem of exactly
// one entry, so "reactjs" resolves to "reactjs.png".
func Resolve(names []string, input string) (string, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return "", ErrNoMatch
	}

	var byStem []string
	for _, n := range names {
		if n == input {
			return n, nil
		}
		if stem(n) == input {
			byStem = append(byStem, n)
		}
	}

	switch len(byStem) {
	case 0:
		return "", fmt.Errorf("%w: %q", ErrNoMatch, input)
	case 1:
		return byStem[0], nil
	default:
		return "", fmt.Errorf("%w: %q matches %s", ErrAmbiguous, input, strings.Join(byStem, ", "))
	}
}
