// Package export serializes generated exam content into a three-sheet
// spreadsheet workbook. Sheet names, column order, and header text are a
// contract with downstream reviewers and must not change.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"github.com/xuri/excelize/v2"

	"github.com/pratama/kisi-kisi-generator/internal/types"
)

// Sheet names, in workbook order.
const (
	SheetBlueprint = "Kisi-Kisi Soal"
	SheetWorksheet = "Lembar Soal Siswa"
	SheetAnswerKey = "Kunci Jawaban"
)

// passageInstruction precedes every shared reading passage on the worksheet sheet.
const passageInstruction = "Bacalah teks berikut untuk menjawab soal-soal di bawahnya:"

// blueprintHeaders is the fixed 9-column header row of the blueprint sheet.
var blueprintHeaders = []string{
	"Tema/Subtema",
	"Konten",
	"Konteks",
	"Kompetensi",
	"Bentuk Soal",
	"No Soal",
	"Subkompetensi",
	"Rincian Kompetensi",
	"Uraian Soal",
}

// answerKeyHeaders is the fixed header row of the answer key sheet.
var answerKeyHeaders = []string{"Nomor Soal", "Kunci Jawaban"}

// FileName returns the deterministic workbook file name for a form:
// Kisi-Kisi_{subject}_{grade}.xlsx with spaces replaced by underscores.
func FileName(form types.FormData) string {
	subject := strings.ReplaceAll(form.Subject, " ", "_")
	grade := strings.ReplaceAll(form.Grade, " ", "_")
	return fmt.Sprintf("Kisi-Kisi_%s_%s.xlsx", subject, grade)
}

// BuildWorkbook builds the three-sheet workbook from generated content.
// The answer key sheet keeps the provider order; it is never sorted here.
func BuildWorkbook(content *types.GeneratedContent) (*excelize.File, error) {
	f := excelize.NewFile()

	if err := f.SetSheetName("Sheet1", SheetBlueprint); err != nil {
		return nil, fmt.Errorf("failed to create blueprint sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetWorksheet); err != nil {
		return nil, fmt.Errorf("failed to create worksheet sheet: %w", err)
	}
	if _, err := f.NewSheet(SheetAnswerKey); err != nil {
		return nil, fmt.Errorf("failed to create answer key sheet: %w", err)
	}

	if err := writeBlueprintSheet(f, content.BlueprintRows); err != nil {
		return nil, err
	}
	if err := writeWorksheetSheet(f, content.WorksheetSections); err != nil {
		return nil, err
	}
	if err := writeAnswerKeySheet(f, content.AnswerKey); err != nil {
		return nil, err
	}

	return f, nil
}

// WriteFile builds the workbook and saves it under dir using the
// deterministic file name. Returns the full path written.
func WriteFile(content *types.GeneratedContent, form types.FormData, dir string) (string, error) {
	f, err := BuildWorkbook(content)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return "", fmt.Errorf("failed to create output directory: %w", err)
		}
	}

	path := filepath.Join(dir, FileName(form))
	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save workbook: %w", err)
	}
	return path, nil
}

// writeBlueprintSheet writes the header plus one row per blueprint entry and
// auto-sizes every column to its longest cell (or header) plus two characters.
func writeBlueprintSheet(f *excelize.File, rows []types.BlueprintRow) error {
	header := make([]interface{}, len(blueprintHeaders))
	for i, h := range blueprintHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetBlueprint, "A1", &header); err != nil {
		return fmt.Errorf("failed to write blueprint header: %w", err)
	}

	cells := make([][]string, 0, len(rows))
	for i, row := range rows {
		values := []string{
			row.Theme,
			row.Content,
			row.Context,
			row.Competency,
			row.QuestionForm,
			row.QuestionNumber,
			row.SubCompetency,
			row.CompetencyDetail,
			row.QuestionText,
		}
		cells = append(cells, values)

		out := make([]interface{}, len(values))
		for j, v := range values {
			out[j] = v
		}
		if err := f.SetSheetRow(SheetBlueprint, fmt.Sprintf("A%d", i+2), &out); err != nil {
			return fmt.Errorf("failed to write blueprint row %d: %w", i+1, err)
		}
	}

	// Column widths: longest cell or header per column, plus 2 padding. With
	// no data rows only the headers size the columns.
	for col, h := range blueprintHeaders {
		width := utf8.RuneCountInString(h)
		for _, row := range cells {
			if n := utf8.RuneCountInString(row[col]); n > width {
				width = n
			}
		}
		name, err := excelize.ColumnNumberToName(col + 1)
		if err != nil {
			return fmt.Errorf("failed to resolve column name: %w", err)
		}
		if err := f.SetColWidth(SheetBlueprint, name, name, float64(width+2)); err != nil {
			return fmt.Errorf("failed to size blueprint column %s: %w", name, err)
		}
	}

	return nil
}

// writeWorksheetSheet writes the free-form worksheet rows: per section an
// instruction line, the passage, and a blank separator when a passage exists,
// then per question a numbered row, one row per choice with a blank first
// cell, and a blank separator.
func writeWorksheetSheet(f *excelize.File, sections []types.WorksheetSection) error {
	var rows [][]interface{}
	for _, section := range sections {
		if section.Passage != "" {
			rows = append(rows,
				[]interface{}{passageInstruction},
				[]interface{}{section.Passage},
				nil)
		}
		for _, q := range section.Questions {
			rows = append(rows, []interface{}{fmt.Sprintf("%d.", q.Number), q.Prompt})
			for _, choice := range q.Choices {
				rows = append(rows, []interface{}{"", choice})
			}
			rows = append(rows, nil)
		}
	}

	for i, row := range rows {
		if row == nil {
			continue
		}
		if err := f.SetSheetRow(SheetWorksheet, fmt.Sprintf("A%d", i+1), &row); err != nil {
			return fmt.Errorf("failed to write worksheet row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(SheetWorksheet, "A", "A", 5); err != nil {
		return fmt.Errorf("failed to size worksheet column A: %w", err)
	}
	if err := f.SetColWidth(SheetWorksheet, "B", "B", 100); err != nil {
		return fmt.Errorf("failed to size worksheet column B: %w", err)
	}

	return nil
}

// writeAnswerKeySheet writes the answer key header and rows in the order
// received. The on-screen panel sorts; this sheet deliberately does not.
func writeAnswerKeySheet(f *excelize.File, answers []types.Answer) error {
	header := make([]interface{}, len(answerKeyHeaders))
	for i, h := range answerKeyHeaders {
		header[i] = h
	}
	if err := f.SetSheetRow(SheetAnswerKey, "A1", &header); err != nil {
		return fmt.Errorf("failed to write answer key header: %w", err)
	}

	for i, ans := range answers {
		row := []interface{}{ans.Number, ans.Text}
		if err := f.SetSheetRow(SheetAnswerKey, fmt.Sprintf("A%d", i+2), &row); err != nil {
			return fmt.Errorf("failed to write answer key row %d: %w", i+1, err)
		}
	}

	if err := f.SetColWidth(SheetAnswerKey, "A", "A", 15); err != nil {
		return fmt.Errorf("failed to size answer key column A: %w", err)
	}
	if err := f.SetColWidth(SheetAnswerKey, "B", "B", 50); err != nil {
		return fmt.Errorf("failed to size answer key column B: %w", err)
	}

	return nil
}
