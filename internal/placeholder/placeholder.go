// Package placeholder implements the text primitives export templates are built on:
// named tokens written as {{Name}} and conditional blocks delimited by a
// {{Name_Start}} / {{Name_End}} marker pair.
package placeholder

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"sync"
)

const (
	tokenOpen  = "{{"
	tokenClose = "}}"

	// StartSuffix and EndSuffix name the markers of a conditional block.
	StartSuffix = "_Start"
	EndSuffix   = "_End"
)

// ErrNestedBlock is returned when a block contains another start marker of the
// same name. Same-name nesting is not supported.
var ErrNestedBlock = errors.New("nested block of the same name")

var patternCache sync.Map

func compile(pattern string) *regexp.Regexp {
	if re, ok := patternCache.Load(pattern); ok {
		return re.(*regexp.Regexp)
	}
	re := regexp.MustCompile(pattern)
	patternCache.Store(pattern, re)
	return re
}

// Token returns the marker text for a placeholder name.
func Token(name string) string {
	return tokenOpen + name + tokenClose
}

// StartToken returns the start marker name of the named block.
func StartToken(name string) string {
	return name + StartSuffix
}

// EndToken returns the end marker name of the named block.
func EndToken(name string) string {
	return name + EndSuffix
}

// ReplaceToken replaces every occurrence of the named token with value.
func ReplaceToken(code string, name string, value string) string {
	return strings.ReplaceAll(code, Token(name), value)
}

// ReplaceTokenFunc replaces every occurrence of the named token with the result
// of fn. fn is invoked once per match and the first error stops the replacement.
func ReplaceTokenFunc(code string, name string, fn func() (string, error)) (string, error) {
	if !strings.Contains(code, Token(name)) {
		return code, nil
	}

	var firstErr error
	out := compile(regexp.QuoteMeta(Token(name))).ReplaceAllStringFunc(code, func(m string) string {
		if firstErr != nil {
			return m
		}
		v, err := fn()
		if err != nil {
			firstErr = fmt.Errorf("computing %s: %w", name, err)
			return m
		}
		return v
	})
	if firstErr != nil {
		return code, firstErr
	}
	return out, nil
}

// ReplacePattern replaces tokens whose name matches namePattern. namePattern is a
// regular expression for the name only; fn receives its submatches (index 0 is the
// full name) and is invoked once per match.
func ReplacePattern(code string, namePattern string, fn func(groups []string) (string, error)) (string, error) {
	re := compile(regexp.QuoteMeta(tokenOpen) + "(" + namePattern + ")" + regexp.QuoteMeta(tokenClose))

	var firstErr error
	out := re.ReplaceAllStringFunc(code, func(m string) string {
		if firstErr != nil {
			return m
		}
		sub := re.FindStringSubmatch(m)
		v, err := fn(sub[1:])
		if err != nil {
			firstErr = err
			return m
		}
		return v
	})
	if firstErr != nil {
		return code, firstErr
	}
	return out, nil
}

// RenderBlock keeps or strips the content between the start and end markers.
// With keep set only the two markers are removed, otherwise the markers and
// everything between them. Pairs are matched by name, first start to first end.
// Unpaired markers are left untouched.
func RenderBlock(code string, start string, end string, keep bool) (string, error) {
	startTok, endTok := Token(start), Token(end)
	if !strings.Contains(code, startTok) {
		return code, nil
	}

	re := compile("(?s)" + regexp.QuoteMeta(startTok) + "(.*?)" + regexp.QuoteMeta(endTok))

	var nested bool
	out := re.ReplaceAllStringFunc(code, func(m string) string {
		inner := m[len(startTok) : len(m)-len(endTok)]
		if strings.Contains(inner, startTok) {
			nested = true
			return m
		}
		if keep {
			return inner
		}
		return ""
	})
	if nested {
		return code, fmt.Errorf("block %s: %w", start, ErrNestedBlock)
	}
	return out, nil
}

// RenderNamedBlock is RenderBlock for the Name_Start / Name_End pair.
func RenderNamedBlock(code string, name string, keep bool) (string, error) {
	return RenderBlock(code, StartToken(name), EndToken(name), keep)
}
