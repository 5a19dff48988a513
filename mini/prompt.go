package mini

import (
	"github.com/AlecAivazis/survey/v2"
)

// prompter asks the user for input. surveyPrompter is the terminal implementation.
type prompter interface {
	Select(message string, options []string, current string) (string, error)
	Input(message, current string) (string, error)
}

type surveyPrompter struct{}

func (surveyPrompter) Select(message string, options []string, current string) (string, error) {
	prompt := &survey.Select{
		Message:  message,
		Options:  options,
		PageSize: len(options),
	}
	if current != "" {
		prompt.Default = current
	}

	var response string
	err := survey.AskOne(prompt, &response)
	return response, err
}

func (surveyPrompter) Input(message, current string) (string, error) {
	prompt := &survey.Input{
		Message: message,
		Default: current,
	}

	var response string
	err := survey.AskOne(prompt, &response, survey.WithValidator(survey.Required))
	return response, err
}
