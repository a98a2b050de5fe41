package generation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSubCompetencyFor(t *testing.T) {
	tests := []struct {
		form     string
		expected string
	}{
		{"PILIHAN GANDA", SubCompetencyFindInfo},
		{"PILIHAN GANDA TUNGGAL", SubCompetencyFindInfo},
		{"PILIHAN GANDA KOMPLEKS", SubCompetencyFindInfo},
		{"pilihan ganda", SubCompetencyFindInfo},
		{"ISIAN", SubCompetencyLiteral},
		{"isian singkat", SubCompetencyLiteral},
		{"ESSAY", SubCompetencyLiteral},
		{"Essay", SubCompetencyLiteral},
		{"MENJODOHKAN", SubCompetencyReflect},
		{"menjodohkan", SubCompetencyReflect},
		{"BENAR SALAH", SubCompetencyUnspecified},
		{"", SubCompetencyUnspecified},
	}

	for _, tt := range tests {
		t.Run(tt.form, func(t *testing.T) {
			assert.Equal(t, tt.expected, SubCompetencyFor(tt.form))
		})
	}
}

func TestSubCompetencyFor_ComplexMultipleChoice(t *testing.T) {
	assert.Equal(t, "Menemukan informasi dalam teks", SubCompetencyFor("PILIHAN GANDA KOMPLEKS"))
}

func TestSubCompetencyFor_Matching(t *testing.T) {
	assert.Equal(t, "Merefleksikan isi teks untuk menentukan jawaban yang sesuai", SubCompetencyFor("MENJODOHKAN"))
}
