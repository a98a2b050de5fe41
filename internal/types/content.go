//nolint:revive // types is a standard Go package name pattern
package types

import "sort"

// BlueprintRow is one row of the kisi-kisi table, one per question number.
type BlueprintRow struct {
	Theme            string `json:"tema"`
	Content          string `json:"konten"`
	Context          string `json:"konteks"`
	Competency       string `json:"kompetensi"`
	QuestionForm     string `json:"bentukSoal"`
	QuestionNumber   string `json:"noSoal"`
	SubCompetency    string `json:"subKompetensi"`
	CompetencyDetail string `json:"rincianKompetensi"`
	QuestionText     string `json:"uraianSoal"`
}

// QuestionDetail is a single question on the student worksheet.
type QuestionDetail struct {
	Number  int      `json:"nomor"`
	Prompt  string   `json:"soal"`
	Choices []string `json:"pilihan,omitempty"`
	Form    string   `json:"tipe,omitempty"`
}

// WorksheetSection groups questions under an optional shared reading passage.
type WorksheetSection struct {
	Passage   string           `json:"teksBacaan,omitempty"`
	Questions []QuestionDetail `json:"pertanyaan"`
}

// Answer maps a question number to its answer text.
type Answer struct {
	Number int    `json:"nomor"`
	Text   string `json:"jawaban"`
}

// GeneratedContent is the full provider output for one generation call.
// It is replaced wholesale on each successful call and read-only afterward.
// Question numbers across the three sections are assumed consistent by
// provider compliance; nothing here cross-checks them.
type GeneratedContent struct {
	BlueprintRows     []BlueprintRow     `json:"kisiKisi"`
	WorksheetSections []WorksheetSection `json:"lembarSoal"`
	AnswerKey         []Answer           `json:"kunciJawaban"`
}

// SortedAnswers returns a copy of the answer key sorted ascending by question
// number. Only the on-screen answer key panel sorts; the spreadsheet export
// keeps the order the provider returned.
func (c *GeneratedContent) SortedAnswers() []Answer {
	sorted := make([]Answer, len(c.AnswerKey))
	copy(sorted, c.AnswerKey)
	sort.Slice(sorted, func(i, j int) bool { return sorted[i].Number < sorted[j].Number })
	return sorted
}
