package sparkml

import (
	"errors"
	"regexp"
	"strings"
)

const (
	maxIdentifierLen = 255
	pattern          = "^[A-Za-z_$][A-Za-z0-9_$]*$"
)

var (
	errEmptyIdentifier = errors.New("empty identifier")
	errLongIdentifier  = errors.New("long identifier")
	errMismatchPattern = errors.New("mismatch the pattern:" + pattern)
	errReservedWord    = errors.New("reserved word")

	identifierPattern = regexp.MustCompile(pattern)

	reservedWords = map[string]struct{}{
		"break": {}, "case": {}, "catch": {}, "class": {}, "const": {}, "continue": {},
		"debugger": {}, "default": {}, "delete": {}, "do": {}, "else": {}, "export": {},
		"extends": {}, "false": {}, "finally": {}, "for": {}, "function": {}, "if": {},
		"import": {}, "in": {}, "instanceof": {}, "let": {}, "new": {}, "null": {},
		"return": {}, "super": {}, "switch": {}, "this": {}, "throw": {}, "true": {},
		"try": {}, "typeof": {}, "var": {}, "void": {}, "while": {}, "with": {},
		"yield": {},
	}
)

// CheckIdentifier returns the error if the name cannot be used as a variable,
// class or method name in a kernel statement
// the rule of the identifier is following:
// 1. not blank
// 2. not over the max length
// 3. matches the pattern
// 4. not a reserved word
func CheckIdentifier(name string) error {
	if strings.TrimSpace(name) == "" {
		return errEmptyIdentifier
	}

	if len(name) > maxIdentifierLen {
		return errLongIdentifier
	}

	if !identifierPattern.MatchString(name) {
		return errMismatchPattern
	}

	if _, ok := reservedWords[name]; ok {
		return errReservedWord
	}

	return nil
}
