// Package prompts renders the instructions sent to the model.
package prompts

import (
	"bytes"
	"strings"
	"text/template"
)

// generateFromTemplate is a generic function that generates a prompt from any template and data.
func generateFromTemplate[T any](templateString string, data T) (string, error) {
	funcMap := template.FuncMap{
		"formatToolNames": formatToolNames,
	}

	tmpl, err := template.New("prompt").Funcs(funcMap).Parse(templateString)
	if err != nil {
		return "", err
	}
	var prompt bytes.Buffer
	if err := tmpl.Execute(&prompt, data); err != nil {
		return "", err
	}
	return strings.TrimSpace(prompt.String()), nil
}

// formatToolNames formats the tool names as a comma-separated string.
func formatToolNames(toolNames []string) string {
	return strings.Join(toolNames, ", ")
}
