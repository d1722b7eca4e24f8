package errors

import (
	stderrors "errors"
	"fmt"
	"os"
	"strings"

	"github.com/fatih/color"
)

var (
	errorLabel = color.New(color.FgRed, color.Bold).SprintFunc()
	codeText   = color.New(color.FgWhite, color.Bold).SprintFunc()
	hintLabel  = color.New(color.FgCyan).SprintFunc()
	causeText  = color.New(color.FgHiBlack).SprintFunc()
)

// Format returns a formatted multi-line error message for terminal display.
func (e *GexError) Format() string {
	var b strings.Builder

	// Header line
	b.WriteString("\n")
	if e.Code != "" {
		b.WriteString(errorLabel("ERROR "))
		b.WriteString(codeText(e.Code + ": "))
		b.WriteString(e.Message)
	} else {
		b.WriteString(errorLabel("ERROR: "))
		b.WriteString(e.Message)
	}
	b.WriteString("\n\n")

	// Detail
	if e.Detail != "" {
		for _, line := range wrapText(e.Detail, 70) {
			b.WriteString("  ")
			b.WriteString(line)
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	// Suggestion
	if e.Suggestion != "" {
		b.WriteString("  ")
		b.WriteString(hintLabel("Hint: "))
		b.WriteString(e.Suggestion)
		b.WriteString("\n\n")
	}

	// Underlying cause
	if e.Wrapped != nil {
		b.WriteString("  ")
		b.WriteString(causeText("Caused by: " + e.Wrapped.Error()))
		b.WriteString("\n")
	}

	return b.String()
}

// wrapText wraps text to the specified width, keeping explicit line breaks.
func wrapText(text string, width int) []string {
	if text == "" {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(text, "\n") {
		if len(paragraph) <= width {
			lines = append(lines, paragraph)
			continue
		}

		words := strings.Fields(paragraph)
		var current strings.Builder
		for _, word := range words {
			if current.Len()+len(word)+1 > width {
				if current.Len() > 0 {
					lines = append(lines, current.String())
					current.Reset()
				}
			}
			if current.Len() > 0 {
				current.WriteString(" ")
			}
			current.WriteString(word)
		}
		if current.Len() > 0 {
			lines = append(lines, current.String())
		}
	}

	return lines
}

// PrintError prints a formatted error to stderr.
func PrintError(err error) {
	var ge *GexError
	if stderrors.As(err, &ge) {
		fmt.Fprint(os.Stderr, ge.Format())
		return
	}
	fmt.Fprintf(os.Stderr, "\n%s %s\n\n", errorLabel("ERROR:"), err.Error())
}
