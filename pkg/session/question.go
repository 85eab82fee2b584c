// Copyright (C) 2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.

package session

import (
	"slices"
	"strings"
	"unicode"

	"github.com/luxfi/interactive/pkg/options"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Question is what a Renderer receives for one option.
type Question struct {
	Name       string
	Type       options.Type
	Message    string
	Default    any
	HasDefault bool
	Choices    []string
}

// NewQuestion builds the question for e. Options without a description are
// labelled from their name, so "projectName" asks for "Project name".
func NewQuestion(e options.Entry) Question {
	msg := e.Describe
	if msg == "" {
		msg = Humanize(e.Name)
	}
	return Question{
		Name:       e.Name,
		Type:       e.Type,
		Message:    msg,
		Default:    e.Default,
		HasDefault: e.HasDefault,
		Choices:    slices.Clone(e.Choices),
	}
}

// Humanize splits camelCase, kebab-case and snake_case names into a
// sentence-cased label.
func Humanize(name string) string {
	words := splitWords(name)
	if len(words) == 0 {
		return name
	}
	for i := range words {
		words[i] = strings.ToLower(words[i])
	}
	// Casers carry state and must not be shared.
	words[0] = cases.Title(language.English).String(words[0])
	return strings.Join(words, " ")
}

func splitWords(s string) []string {
	var (
		words []string
		cur   []rune
	)
	flush := func() {
		if len(cur) > 0 {
			words = append(words, string(cur))
			cur = cur[:0]
		}
	}
	runes := []rune(s)
	for i, r := range runes {
		switch {
		case r == '-' || r == '_' || unicode.IsSpace(r):
			flush()
			continue
		case unicode.IsUpper(r) && len(cur) > 0:
			prev := runes[i-1]
			nextLower := i+1 < len(runes) && unicode.IsLower(runes[i+1])
			if unicode.IsLower(prev) || unicode.IsDigit(prev) || (unicode.IsUpper(prev) && nextLower) {
				flush()
			}
		}
		cur = append(cur, r)
	}
	flush()
	return words
}
