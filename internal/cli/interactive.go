package cli

import (
	"github.com/AlecAivazis/survey/v2"

	"github.com/goliatone/go-recipedocs/pkg/config"
	"github.com/goliatone/go-recipedocs/pkg/docs"
)

const noEasyblock = "(none)"

// pickParamsInputs prompts for an easyblock and output format. Selecting
// "(none)" documents the framework defaults only.
func pickParamsInputs(meta *config.Metadata) (easyblock, format string, err error) {
	options := append([]string{noEasyblock}, meta.Blocks.Names()...)

	prompt := &survey.Select{
		Message: "Easyblock to include extra options for:",
		Options: options,
		Default: noEasyblock,
	}
	if err := survey.AskOne(prompt, &easyblock); err != nil {
		return "", "", err
	}
	if easyblock == noEasyblock {
		easyblock = ""
	}

	formatPrompt := &survey.Select{
		Message: "Output format:",
		Options: []string{docs.FormatTXT, docs.FormatRST},
		Default: docs.FormatTXT,
	}
	if err := survey.AskOne(formatPrompt, &format); err != nil {
		return "", "", err
	}

	return easyblock, format, nil
}
