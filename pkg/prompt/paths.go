package prompt

import (
	"context"
	"errors"
	"fmt"
	"strings"
)

const (
	InputMessage  = "Insert File Name:"
	OutputMessage = "Name The Folder You Want The File Saved In:"
)

// Paths asks for whichever of input and output is still empty and returns
// both values.
func Paths(ctx context.Context, driver Driver, input, output string) (string, string, error) {
	if driver == nil {
		return "", "", errors.New("prompt: driver is nil")
	}

	var err error
	if strings.TrimSpace(input) == "" {
		input, err = driver.Input(ctx, InputConfig{
			Message:   InputMessage,
			Help:      "Path to the glossary source file",
			Validator: required("input file"),
		})
		if err != nil {
			return "", "", fmt.Errorf("prompt: input file: %w", err)
		}
	}
	if strings.TrimSpace(output) == "" {
		output, err = driver.Input(ctx, InputConfig{
			Message:   OutputMessage,
			Help:      "Existing folder that receives index.html and one page per term",
			Validator: required("output folder"),
		})
		if err != nil {
			return "", "", fmt.Errorf("prompt: output folder: %w", err)
		}
	}
	return input, output, nil
}

func required(what string) func(string) error {
	return func(s string) error {
		if strings.TrimSpace(s) == "" {
			return fmt.Errorf("%s is required", what)
		}
		return nil
	}
}
