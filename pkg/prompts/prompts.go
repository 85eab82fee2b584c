// Copyright (C) 2022-2025, Lux Industries Inc. All rights reserved.
// See the file LICENSE for licensing terms.
package prompts

import (
	"context"
	"errors"
	"fmt"
	"slices"
	"strconv"

	"github.com/luxfi/interactive/pkg/options"
	"github.com/luxfi/interactive/pkg/session"
	luxlog "github.com/luxfi/log"
	"github.com/manifoldco/promptui"
	"github.com/spf13/cast"
)

const (
	Yes = "Yes"
	No  = "No"

	Done = "Done"

	checkedMark   = "[x] "
	uncheckedMark = "[ ] "
)

var errNoChoices = errors.New("no choices declared")

// promptUIRunner is a variable for testing purposes to allow mocking prompt.Run()
var promptUIRunner = func(prompt promptui.Prompt) (string, error) {
	return prompt.Run()
}

// promptUISelectRunner is a variable for testing purposes to allow mocking select.Run()
var promptUISelectRunner = func(sel promptui.Select) (int, string, error) {
	return sel.Run()
}

type realPrompter struct {
	log luxlog.Logger
}

// NewPrompter returns the terminal renderer backed by promptui.
func NewPrompter(log luxlog.Logger) session.Renderer {
	if log == nil {
		log = luxlog.NewNoOpLogger()
	}
	return &realPrompter{log: log}
}

// Ask renders q with the widget matching its type. Cancelling the widget
// (Ctrl-C, Ctrl-D) is reported as session.ErrAborted.
func (p *realPrompter) Ask(ctx context.Context, q session.Question) (any, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	var (
		v   any
		err error
	)
	switch q.Type {
	case options.TypeConfirm:
		v, err = captureConfirm(q)
	case options.TypeList:
		v, err = captureList(q)
	case options.TypeCheckbox:
		v, err = captureCheckbox(q)
	case options.TypeNumber:
		v, err = captureNumber(q)
	case options.TypePassword:
		v, err = captureString(q, '*')
	default:
		v, err = captureString(q, 0)
	}
	if err != nil {
		p.log.Debug("prompt failed", "option", q.Name, "error", err)
		return nil, translateErr(err)
	}
	return v, nil
}

func translateErr(err error) error {
	if errors.Is(err, promptui.ErrInterrupt) || errors.Is(err, promptui.ErrEOF) || errors.Is(err, promptui.ErrAbort) {
		return fmt.Errorf("%w: %v", session.ErrAborted, err)
	}
	return err
}

func defaultString(q session.Question) string {
	if !q.HasDefault || q.Default == nil {
		return ""
	}
	return cast.ToString(q.Default)
}

func captureString(q session.Question, mask rune) (string, error) {
	prompt := promptui.Prompt{
		Label: q.Message,
		Mask:  mask,
	}
	// a masked default would be echoed back in clear text
	if mask == 0 {
		prompt.Default = defaultString(q)
	}
	str, err := promptUIRunner(prompt)
	if err != nil {
		return "", err
	}
	if str == "" && mask != 0 {
		return defaultString(q), nil
	}
	return str, nil
}

func captureNumber(q session.Question) (float64, error) {
	prompt := promptui.Prompt{
		Label:    q.Message,
		Default:  defaultString(q),
		Validate: validateNumber,
	}
	result, err := promptUIRunner(prompt)
	if err != nil {
		return 0, err
	}
	return strconv.ParseFloat(result, 64)
}

func yesNoBase(promptStr string, orderedOptions []string) (bool, error) {
	prompt := promptui.Select{
		Label: promptStr,
		Items: orderedOptions,
	}

	_, decision, err := promptUISelectRunner(prompt)
	if err != nil {
		return false, err
	}
	return decision == Yes, nil
}

// captureConfirm puts the declared default first so that Enter accepts it.
func captureConfirm(q session.Question) (bool, error) {
	if q.HasDefault && !cast.ToBool(q.Default) {
		return yesNoBase(q.Message, []string{No, Yes})
	}
	return yesNoBase(q.Message, []string{Yes, No})
}

func captureList(q session.Question) (string, error) {
	if len(q.Choices) == 0 {
		return "", fmt.Errorf("option %q: %w", q.Name, errNoChoices)
	}
	prompt := promptui.Select{
		Label: q.Message,
		Items: q.Choices,
	}
	if i := slices.Index(q.Choices, defaultString(q)); i >= 0 {
		prompt.CursorPos = i
	}
	_, listDecision, err := promptUISelectRunner(prompt)
	if err != nil {
		return "", err
	}
	return listDecision, nil
}

// captureCheckbox toggles choices until the user picks Done. Declared
// defaults start out checked.
func captureCheckbox(q session.Question) ([]string, error) {
	if len(q.Choices) == 0 {
		return nil, fmt.Errorf("option %q: %w", q.Name, errNoChoices)
	}
	checked := map[string]bool{}
	if q.HasDefault {
		for _, d := range cast.ToStringSlice(q.Default) {
			checked[d] = true
		}
	}
	cursor := 0
	for {
		items := make([]string, 0, len(q.Choices)+1)
		for _, c := range q.Choices {
			mark := uncheckedMark
			if checked[c] {
				mark = checkedMark
			}
			items = append(items, mark+c)
		}
		items = append(items, Done)

		index, _, err := promptUISelectRunner(promptui.Select{
			Label:     q.Message,
			Items:     items,
			CursorPos: cursor,
			Size:      len(items),
		})
		if err != nil {
			return nil, err
		}
		if index == len(q.Choices) {
			break
		}
		choice := q.Choices[index]
		checked[choice] = !checked[choice]
		cursor = index
	}

	selected := []string{}
	for _, c := range q.Choices {
		if checked[c] {
			selected = append(selected, c)
		}
	}
	return selected, nil
}
