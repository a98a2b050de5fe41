package prompts

import (
	"github.com/pratama/kisi-kisi-generator/internal/types"
)

// generationFile holds the blueprint generation template.
const generationFile = "generation.json"

// generationKey is the template key within generationFile.
const generationKey = "generate_exam"

// BuildPrompt renders the natural-language generation instruction for the
// given form. Pure and deterministic: identical forms yield identical strings.
// Field values are interpolated as plain text; the destination is a prompt,
// not a code or query context, so no escaping is applied.
func BuildPrompt(form types.FormData) string {
	template := MustGet(generationFile, generationKey)
	return Format(template, map[string]string{
		"MataPelajaran": form.Subject,
		"Kelas":         form.Grade,
		"TipeUjian":     string(form.ExamType),
		"Materi":        form.Material,
		"Tema":          form.Theme,
		"Konten":        form.Content,
		"Konteks":       string(form.Context),
		"Kompetensi":    string(form.Competency),
		"JumlahSoal":    form.QuestionSummary(),
	})
}
