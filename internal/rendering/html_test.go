package rendering

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pratama/kisi-kisi-generator/internal/types"
)

func sampleContent() *types.GeneratedContent {
	return &types.GeneratedContent{
		BlueprintRows: []types.BlueprintRow{
			{
				Theme:            "Menganalisis Teks",
				Content:          "Struktur",
				Context:          "SAINTIFIK",
				Competency:       "MEMAHAMI",
				QuestionForm:     "PILIHAN GANDA",
				QuestionNumber:   "1",
				SubCompetency:    "Menemukan informasi dalam teks",
				CompetencyDetail: "Mengidentifikasi struktur",
				QuestionText:     "Disajikan teks, siswa menentukan struktur",
			},
			{
				Theme:            "Menganalisis Teks",
				Content:          "Makna",
				Context:          "SAINTIFIK",
				Competency:       "MEMAHAMI",
				QuestionForm:     "ESSAY",
				QuestionNumber:   "2",
				SubCompetency:    "Memahami teks secara literal",
				CompetencyDetail: "Menjelaskan makna tersirat",
				QuestionText:     "Siswa menjelaskan makna tersirat",
			},
		},
		WorksheetSections: []types.WorksheetSection{
			{
				Passage: "Pada suatu hari, seorang siswa...",
				Questions: []types.QuestionDetail{
					{Number: 1, Prompt: "Apa struktur teks di atas?", Choices: []string{"A. Orientasi", "B. Krisis", "C. Koda"}, Form: "tunggal"},
				},
			},
			{
				Questions: []types.QuestionDetail{
					{Number: 2, Prompt: "Jelaskan makna tersirat teks tersebut.", Form: "essay"},
				},
			},
		},
		AnswerKey: []types.Answer{
			{Number: 2, Text: "Makna tersiratnya adalah..."},
			{Number: 1, Text: "A"},
		},
	}
}

func parseDoc(t *testing.T, html string) *goquery.Document {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	require.NoError(t, err)
	return doc
}

func TestRenderHTML_ThreeSections(t *testing.T) {
	html, err := RenderHTML(sampleContent(), types.DefaultFormData())
	require.NoError(t, err)

	doc := parseDoc(t, html)
	assert.Equal(t, 1, doc.Find("section#kisi-kisi").Length())
	assert.Equal(t, 1, doc.Find("section#lembar-soal").Length())
	assert.Equal(t, 1, doc.Find("section#kunci-jawaban").Length())
	assert.Equal(t, 0, doc.Find(".empty-state").Length())
}

func TestRenderHTML_BlueprintColumns(t *testing.T) {
	html, err := RenderHTML(sampleContent(), types.DefaultFormData())
	require.NoError(t, err)

	doc := parseDoc(t, html)
	headers := doc.Find("section#kisi-kisi thead th").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{
		"Tema/Subtema", "Konten", "Konteks", "Kompetensi", "Bentuk Soal",
		"No Soal", "Subkompetensi", "Rincian Kompetensi", "Uraian Soal",
	}, headers)
	assert.Equal(t, 2, doc.Find("section#kisi-kisi tbody tr").Length())
}

func TestRenderHTML_Worksheet(t *testing.T) {
	html, err := RenderHTML(sampleContent(), types.DefaultFormData())
	require.NoError(t, err)

	doc := parseDoc(t, html)
	section := doc.Find("section#lembar-soal")
	assert.Equal(t, 1, section.Find(".passage").Length(), "only the first section has a passage")
	assert.Equal(t, 2, section.Find(".question").Length())
	assert.Equal(t, 3, section.Find(".choices li").Length())
	assert.Contains(t, section.Text(), "Bacalah teks berikut")
}

func TestRenderHTML_AnswerKeySorted(t *testing.T) {
	content := sampleContent()
	html, err := RenderHTML(content, types.DefaultFormData())
	require.NoError(t, err)

	doc := parseDoc(t, html)
	numbers := doc.Find("section#kunci-jawaban tbody tr td:first-child").Map(func(_ int, s *goquery.Selection) string {
		return s.Text()
	})
	assert.Equal(t, []string{"1", "2"}, numbers, "display sorts ascending by number")

	// The content itself keeps provider order.
	assert.Equal(t, 2, content.AnswerKey[0].Number)
}

func TestRenderHTML_EmptyState(t *testing.T) {
	html, err := RenderHTML(nil, types.DefaultFormData())
	require.NoError(t, err)

	doc := parseDoc(t, html)
	assert.Equal(t, 1, doc.Find(".empty-state").Length())
	assert.Equal(t, 0, doc.Find("section").Length())
	assert.Contains(t, doc.Find("h1").Text(), "SEKOLAH HARAPAN BANGSA")
}

func TestRenderHTML_Idempotent(t *testing.T) {
	content := sampleContent()
	form := types.DefaultFormData()

	first, err := RenderHTML(content, form)
	require.NoError(t, err)
	second, err := RenderHTML(content, form)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}

func TestRenderHTML_LogoPlaceholders(t *testing.T) {
	form := types.DefaultFormData()
	html, err := RenderHTML(nil, form)
	require.NoError(t, err)
	doc := parseDoc(t, html)
	assert.Equal(t, 2, doc.Find(".logo-placeholder").Length())

	form.LeftLogo = "data:image/png;base64,iVBORw0KGgo="
	html, err = RenderHTML(nil, form)
	require.NoError(t, err)
	doc = parseDoc(t, html)
	assert.Equal(t, 1, doc.Find("img.logo").Length())
	assert.Equal(t, 1, doc.Find(".logo-placeholder").Length())

	src, ok := doc.Find("img.logo").Attr("src")
	require.True(t, ok)
	assert.Equal(t, form.LeftLogo, src, "data URL must survive template sanitization")
}

func TestRenderHTML_EscapesFieldText(t *testing.T) {
	form := types.DefaultFormData()
	form.SchoolName = `SMA "1" <Jakarta>`
	html, err := RenderHTML(nil, form)
	require.NoError(t, err)
	assert.NotContains(t, html, "<Jakarta>")
	assert.Contains(t, parseDoc(t, html).Find("h1").Text(), `SMA "1" <Jakarta>`)
}
