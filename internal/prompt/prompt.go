// Package prompt collects the scaffold answers interactively. Commands
// depend on the Prompter interface so tests can script the answers.
package prompt

import (
	"github.com/AlecAivazis/survey/v2"
)

// Answers holds everything the new-project flow asks for. QtPath is only
// filled in when automatic discovery came up empty.
type Answers struct {
	Name      string
	Frontend  bool
	Framework string
	Language  string
	Backend   bool
	// Backend feature toggles; meaningful only when Backend is true.
	FeatureFilesystem bool
	FeatureDialogs    bool
}

// Prompter is the interactive collaborator used by the new command.
type Prompter interface {
	// Ask collects the project answers. defaults pre-fills the prompts,
	// typically from command-line flags.
	Ask(defaults Answers) (Answers, error)

	// AskQtPath asks for a manual Qt installation path after discovery
	// failed. An empty answer means the user declined.
	AskQtPath() (string, error)
}

// Survey asks through the terminal with survey/v2.
type Survey struct{}

// NewSurvey returns the terminal-backed prompter.
func NewSurvey() *Survey {
	return &Survey{}
}

// Ask runs the interactive question sequence. Question order matches the
// generated project's decision order: name, frontend, backend.
func (s *Survey) Ask(defaults Answers) (Answers, error) {
	answers := defaults

	if answers.Name == "" {
		prompt := &survey.Input{Message: "Project name:"}
		if err := survey.AskOne(prompt, &answers.Name, survey.WithValidator(survey.Required)); err != nil {
			return answers, err
		}
	}

	frontend := &survey.Confirm{Message: "Add a web frontend?", Default: true}
	if err := survey.AskOne(frontend, &answers.Frontend); err != nil {
		return answers, err
	}

	if answers.Frontend {
		if answers.Framework == "" {
			prompt := &survey.Select{
				Message: "Frontend framework:",
				Options: []string{"react", "vue", "svelte", "vanilla"},
			}
			if err := survey.AskOne(prompt, &answers.Framework); err != nil {
				return answers, err
			}
		}
		if answers.Language == "" {
			prompt := &survey.Select{
				Message: "Frontend language:",
				Options: []string{"typescript", "javascript"},
			}
			if err := survey.AskOne(prompt, &answers.Language); err != nil {
				return answers, err
			}
		}
	}

	backend := &survey.Confirm{Message: "Add a native backend bridge?", Default: true}
	if err := survey.AskOne(backend, &answers.Backend); err != nil {
		return answers, err
	}

	if answers.Backend {
		fs := &survey.Confirm{Message: "Expose filesystem helpers to the frontend?"}
		if err := survey.AskOne(fs, &answers.FeatureFilesystem); err != nil {
			return answers, err
		}
		dialogs := &survey.Confirm{Message: "Expose native dialogs to the frontend?"}
		if err := survey.AskOne(dialogs, &answers.FeatureDialogs); err != nil {
			return answers, err
		}
	}

	return answers, nil
}

// AskQtPath asks for a manual installation root. Blank is a valid answer.
func (s *Survey) AskQtPath() (string, error) {
	var path string
	prompt := &survey.Input{
		Message: "Path to your Qt 6 installation (leave empty to skip):",
		Help:    "For example ~/Qt/6.8.0/gcc_64 or C:\\Qt\\6.8.0\\msvc2022_64",
	}
	if err := survey.AskOne(prompt, &path); err != nil {
		return "", err
	}
	return path, nil
}
