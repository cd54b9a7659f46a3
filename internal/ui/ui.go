// Package ui holds the terminal interaction helpers: colored status lines
// and the survey prompts that gate execution.
package ui

import (
	"fmt"
	"strings"

	"github.com/AlecAivazis/survey/v2"
	"github.com/fatih/color"

	"github.com/iishyfishyy/infragpt/internal/gcloud"
)

// Action represents the user's choice for a generated command.
type Action int

const (
	ActionCopy Action = iota
	ActionRun
	ActionSkip
)

// ConfirmCommand asks the user what to do with a generated command.
// Copy is the default; execution only ever happens through an explicit pick
// of "Run it".
func ConfirmCommand() (Action, error) {
	var choice string
	prompt := &survey.Select{
		Message: "What would you like to do with this command?",
		Options: []string{"Copy to clipboard", "Run it", "Skip"},
		Default: "Copy to clipboard",
	}

	if err := survey.AskOne(prompt, &choice); err != nil {
		return ActionSkip, err
	}

	switch choice {
	case "Copy to clipboard":
		return ActionCopy, nil
	case "Run it":
		return ActionRun, nil
	default:
		return ActionSkip, nil
	}
}

// PromptPlaceholder asks the user for a placeholder value, showing the
// model-supplied description and examples when available.
func PromptPlaceholder(name string, info gcloud.ParamInfo) (string, error) {
	message := name
	if info.Description != "" {
		message = fmt.Sprintf("%s (%s)", name, info.Description)
	}

	p := &survey.Input{Message: message, Default: info.Default}
	if len(info.Examples) > 0 {
		p.Help = "Examples: " + strings.Join(info.Examples, ", ")
	}

	var value string
	if err := survey.AskOne(p, &value); err != nil {
		return "", err
	}
	return value, nil
}

// PromptContinue asks whether to proceed to the next command after an
// execution.
func PromptContinue() (bool, error) {
	confirmed := true
	prompt := &survey.Confirm{
		Message: "Continue with the next command?",
		Default: true,
	}
	if err := survey.AskOne(prompt, &confirmed); err != nil {
		return false, err
	}
	return confirmed, nil
}

// ShowSuccess displays a success message.
func ShowSuccess(message string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Printf("✓ %s\n", message)
}

// ShowError displays an error message.
func ShowError(message string) {
	red := color.New(color.FgRed, color.Bold)
	red.Printf("✗ %s\n", message)
}

// ShowWarning displays a warning message.
func ShowWarning(message string) {
	yellow := color.New(color.FgYellow)
	yellow.Printf("! %s\n", message)
}

// ShowInfo displays an info message.
func ShowInfo(message string) {
	blue := color.New(color.FgBlue)
	blue.Println(message)
}

// ShowBanner displays the interactive-mode welcome banner.
func ShowBanner(model string) {
	green := color.New(color.FgGreen, color.Bold)
	green.Println("InfraGPT - Convert natural language to gcloud commands")
	yellow := color.New(color.FgYellow)
	yellow.Printf("Using model: %s\n", model)
	gray := color.New(color.FgHiBlack)
	gray.Println("Empty line or \"exit\" to quit")
	fmt.Println()
}
