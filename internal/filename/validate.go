package filename

import (
	"errors"
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Rule identifies a single validation rule.
type Rule int

const (
	RuleNone Rule = iota
	RuleStartsWithLetter
	RuleHasExtension
	RuleAllowedCharacters
)

func (r Rule) String() string {
	switch r {
	case RuleStartsWithLetter:
		return "starts_with_letter"
	case RuleHasExtension:
		return "has_extension"
	case RuleAllowedCharacters:
		return "allowed_characters"
	default:
		return "none"
	}
}

var (
	ErrMustStartWithLetter  = errors.New("file name must start with a letter")
	ErrMissingExtension     = errors.New("file name must have an extension")
	ErrDisallowedCharacters = errors.New("file name contains disallowed characters")
)

// StartsWithLetter reports whether name begins with a Unicode letter. Marks
// combined onto that letter do not change the result.
func StartsWithLetter(name string) bool {
	r, size := utf8.DecodeRuneInString(name)
	if size == 0 || r == utf8.RuneError {
		return false
	}
	return unicode.IsLetter(r)
}

// HasExtension reports whether name contains a dot followed by a non-empty
// remainder without spaces. Only the text after the first dot is considered,
// so "a.b c.txt" is rejected.
func HasExtension(name string) bool {
	_, ext, found := strings.Cut(name, ".")
	if !found || ext == "" {
		return false
	}
	return !strings.Contains(ext, " ")
}

// IsAllowedCharacterSet reports whether every character of name is an ASCII
// letter or digit, '.', '_', '-', '(', ')' or a space.
func IsAllowedCharacterSet(name string) bool {
	for _, r := range name {
		if !allowedRune(r) {
			return false
		}
	}
	return true
}

func allowedRune(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '.', '_', '-', '(', ')', ' ':
		return true
	}
	return false
}

// Validate applies the rules in order and returns an error wrapping the
// sentinel of the first failing rule, or nil when name is acceptable.
func Validate(name string) error {
	switch {
	case !StartsWithLetter(name):
		return fmt.Errorf("%w: %q", ErrMustStartWithLetter, name)
	case !HasExtension(name):
		return fmt.Errorf("%w: %q", ErrMissingExtension, name)
	case !IsAllowedCharacterSet(name):
		return fmt.Errorf("%w: %q", ErrDisallowedCharacters, name)
	}
	return nil
}

// RuleOf maps an error returned by Validate to the rule that produced it.
func RuleOf(err error) Rule {
	switch {
	case err == nil:
		return RuleNone
	case errors.Is(err, ErrMustStartWithLetter):
		return RuleStartsWithLetter
	case errors.Is(err, ErrMissingExtension):
		return RuleHasExtension
	case errors.Is(err, ErrDisallowedCharacters):
		return RuleAllowedCharacters
	default:
		return RuleNone
	}
}
