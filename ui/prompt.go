package ui

import (
	"errors"

	"github.com/manifoldco/promptui"
)

func PromptText(text string) (string, error) {
	prompt := promptui.Prompt{
		Label:    text,
		Validate: notEmpty,
	}
	return prompt.Run()
}

func PromptSecret(text string) (string, error) {
	prompt := promptui.Prompt{
		Label:    text,
		Mask:     '*',
		Validate: notEmpty,
	}
	return prompt.Run()
}

func notEmpty(input string) error {
	if input == "" {
		return errors.New("a value is required")
	}
	return nil
}
