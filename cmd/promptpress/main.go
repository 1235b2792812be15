// Package main is the entry point for the promptpress CLI.
package main

import (
	"fmt"
	"os"

	"github.com/promptpress/promptpress/cmd/promptpress/commands"
	"github.com/promptpress/promptpress/internal/errors"
)

func main() {
	err := commands.Execute()
	if err == nil {
		os.Exit(errors.ExitSuccess)
	}

	fmt.Fprintf(os.Stderr, "Error: %s\n", err)

	code := errors.ExitUser
	var exitErr *errors.ExitError
	if errors.As(err, &exitErr) {
		code = exitErr.Code
		if exitErr.Suggestion != "" {
			fmt.Fprintf(os.Stderr, "  %s\n", exitErr.Suggestion)
		}
	} else if errors.Is(err, errors.ErrScoringUnavailable) {
		code = errors.ExitSystem
	}

	os.Exit(code)
}
