// Package types provides type definitions for structured data used throughout the kisi-kisi generator.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ExamType identifies the exam period a blueprint is prepared for
type ExamType string

// Exam period constants (semester and mid-semester, odd and even)
const (
	ExamMidOddSemester  ExamType = "TENGAH SEMESTER GANJIL"
	ExamOddSemester     ExamType = "SEMESTER GANJIL"
	ExamMidEvenSemester ExamType = "TENGAH SEMESTER GENAP"
	ExamEvenSemester    ExamType = "SEMESTER GENAP"
)

// QuestionForm is the pedagogical format of a question
type QuestionForm string

// Question form constants as they appear in blueprints and prompts
const (
	FormMultipleChoice        QuestionForm = "PILIHAN GANDA"
	FormMultipleChoiceSingle  QuestionForm = "PILIHAN GANDA TUNGGAL"
	FormMultipleChoiceComplex QuestionForm = "PILIHAN GANDA KOMPLEKS"
	FormFillIn                QuestionForm = "ISIAN"
	FormMatching              QuestionForm = "MENJODOHKAN"
	FormEssay                 QuestionForm = "ESSAY"
)

// ContextTag classifies the reading context of the exam content
type ContextTag string

// Context constants
const (
	ContextPersonal   ContextTag = "PERSONAL"
	ContextScientific ContextTag = "SAINTIFIK"
)

// CompetencyTag classifies the general competency targeted by the exam
type CompetencyTag string

// Competency constants
const (
	CompetencyUnderstand CompetencyTag = "MEMAHAMI"
	CompetencyEvaluate   CompetencyTag = "MENGEVALUASI"
)

// QuestionTypeRequest is one requested (form, count) pair. Order is
// significant: the prompt summary preserves the caller-supplied order.
type QuestionTypeRequest struct {
	Form  QuestionForm `json:"type" validate:"required"`
	Count int          `json:"count" validate:"gte=0"`
}

// FormData is the input specification for one generation request.
// JSON field names follow the provider contract.
type FormData struct {
	LeftLogo   string        `json:"logoKiri,omitempty"`
	RightLogo  string        `json:"logoKanan,omitempty"`
	SchoolName string        `json:"namaSekolah" validate:"required"`
	ExamType   ExamType      `json:"tipeUjian" validate:"required"`
	SchoolYear string        `json:"tahunPelajaran" validate:"required"`
	Subject    string        `json:"mataPelajaran" validate:"required"`
	Grade      string        `json:"kelas" validate:"required"`
	Material   string        `json:"materi"`
	Theme      string        `json:"tema"`
	Content    string        `json:"konten"`
	Context    ContextTag    `json:"konteks" validate:"oneof=PERSONAL SAINTIFIK"`
	Competency CompetencyTag `json:"kompetensi" validate:"oneof=MEMAHAMI MENGEVALUASI"`

	// QuestionTypes must never be empty; RemoveQuestionType retains the last entry.
	QuestionTypes []QuestionTypeRequest `json:"questionTypes" validate:"min=1,dive"`
}

var validate = validator.New()

// Validate checks the form against the field constraints above.
func (f *FormData) Validate() error {
	return validate.Struct(f)
}

// DefaultFormData returns the form pre-filled the way a new session starts.
func DefaultFormData() FormData {
	return FormData{
		SchoolName: "SEKOLAH HARAPAN BANGSA",
		ExamType:   ExamOddSemester,
		SchoolYear: "2024/2025",
		Subject:    "Bahasa Indonesia",
		Grade:      "X",
		Material:   "Teks anekdot, teks laporan hasil observasi",
		Theme:      "Menganalisis Teks",
		Content:    "Struktur, kebahasaan, dan makna tersirat",
		Context:    ContextScientific,
		Competency: CompetencyUnderstand,
		QuestionTypes: []QuestionTypeRequest{
			{Form: FormMultipleChoice, Count: 10},
			{Form: FormEssay, Count: 5},
		},
	}
}

// AddQuestionType appends a request to the ordered sequence.
func (f *FormData) AddQuestionType(form QuestionForm, count int) {
	f.QuestionTypes = append(f.QuestionTypes, QuestionTypeRequest{Form: form, Count: count})
}

// RemoveQuestionType removes the entry at index i. The last remaining entry
// cannot be removed; in that case (and for out-of-range indexes) it reports false.
func (f *FormData) RemoveQuestionType(i int) bool {
	if len(f.QuestionTypes) <= 1 || i < 0 || i >= len(f.QuestionTypes) {
		return false
	}
	f.QuestionTypes = append(f.QuestionTypes[:i], f.QuestionTypes[i+1:]...)
	return true
}

// QuestionSummary renders the requested counts as a human-readable clause,
// e.g. "10 soal PILIHAN GANDA, 5 soal ESSAY", preserving request order.
func (f *FormData) QuestionSummary() string {
	parts := make([]string, 0, len(f.QuestionTypes))
	for _, qt := range f.QuestionTypes {
		parts = append(parts, fmt.Sprintf("%d soal %s", qt.Count, qt.Form))
	}
	return strings.Join(parts, ", ")
}
