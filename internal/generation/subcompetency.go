package generation

import "strings"

// Sub-competency labels derived from the question form.
const (
	SubCompetencyFindInfo    = "Menemukan informasi dalam teks"
	SubCompetencyLiteral     = "Memahami teks secara literal"
	SubCompetencyReflect     = "Merefleksikan isi teks untuk menentukan jawaban yang sesuai"
	SubCompetencyUnspecified = "Kompetensi tidak spesifik"
)

// SubCompetencyFor derives the sub-competency label from a question form tag.
// The match is case-insensitive and by substring, so "PILIHAN GANDA KOMPLEKS"
// and "pilihan ganda tunggal" both map to the find-information label. The
// result depends only on the form tag, never on what the model suggested.
func SubCompetencyFor(questionForm string) string {
	form := strings.ToLower(questionForm)
	switch {
	case strings.Contains(form, "pilihan ganda"):
		return SubCompetencyFindInfo
	case strings.Contains(form, "isian"), strings.Contains(form, "essay"):
		return SubCompetencyLiteral
	case strings.Contains(form, "menjodohkan"):
		return SubCompetencyReflect
	default:
		return SubCompetencyUnspecified
	}
}
