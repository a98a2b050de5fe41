// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/pratama/kisi-kisi-generator/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintFormData outputs a human-readable summary of the input specification.
func (p *Printer) PrintFormData(form *types.FormData) {
	if form == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("School:   %s\n", form.SchoolName))
	sb.WriteString(fmt.Sprintf("Subject:  %s (Kelas %s)\n", form.Subject, form.Grade))
	sb.WriteString(fmt.Sprintf("Exam:     %s %s\n", form.ExamType, form.SchoolYear))
	sb.WriteString(fmt.Sprintf("Material: %s\n", form.Material))
	sb.WriteString("\n")
	sb.WriteString("Questions:\n")
	for _, qt := range form.QuestionTypes {
		sb.WriteString(fmt.Sprintf("  • %d soal %s\n", qt.Count, qt.Form))
	}

	p.printBox("INPUT SPECIFICATION", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintContentSummary outputs a human-readable summary of generated content.
func (p *Printer) PrintContentSummary(content *types.GeneratedContent) {
	if content == nil {
		return
	}

	var sb strings.Builder
	sb.WriteString(fmt.Sprintf("Blueprint rows:     %d\n", len(content.BlueprintRows)))
	sb.WriteString(fmt.Sprintf("Worksheet sections: %d\n", len(content.WorksheetSections)))
	sb.WriteString(fmt.Sprintf("Answer key entries: %d\n", len(content.AnswerKey)))

	if len(content.BlueprintRows) > 0 {
		sb.WriteString("\nFirst rows:\n")
		count := min(len(content.BlueprintRows), maxItemsToShow)
		for i := 0; i < count; i++ {
			row := content.BlueprintRows[i]
			sb.WriteString(fmt.Sprintf("  %s. [%s] %s\n", row.QuestionNumber, row.QuestionForm, row.SubCompetency))
		}
		if len(content.BlueprintRows) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(content.BlueprintRows)-maxItemsToShow))
		}
	}

	p.printBox("GENERATED CONTENT", strings.TrimSuffix(sb.String(), "\n"))
}
