package cmd

import (
	"fmt"
	"io"

	"github.com/charmbracelet/lipgloss"
	"github.com/goccy/go-json"
)

// Colors
var (
	primaryColor = lipgloss.Color("#7C3AED")
	mutedColor   = lipgloss.Color("#6B7280")
	errorColor   = lipgloss.Color("#EF4444")
)

// Styles
var (
	labelStyle = lipgloss.NewStyle().
			Foreground(primaryColor).
			Bold(true).
			Width(12)

	valueStyle = lipgloss.NewStyle()

	mutedStyle = lipgloss.NewStyle().
			Foreground(mutedColor)

	errorStyle = lipgloss.NewStyle().
			Foreground(errorColor).
			Bold(true)
)

// field is one labelled line of text output
type field struct {
	label string
	value string
}

func printFields(w io.Writer, fields ...field) {
	for _, f := range fields {
		fmt.Fprintf(w, "%s%s\n", labelStyle.Render(f.label), valueStyle.Render(f.value))
	}
}

func printJSON(w io.Writer, v interface{}) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// emit writes v as JSON or calls text to render it for humans
func emit(w io.Writer, v interface{}, text func(io.Writer)) error {
	if current != nil && current.output == "json" {
		return printJSON(w, v)
	}
	text(w)
	return nil
}
