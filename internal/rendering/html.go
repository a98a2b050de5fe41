package rendering

import (
	_ "embed"
	"html/template"
	"strings"

	"github.com/pratama/kisi-kisi-generator/internal/types"
)

//go:embed template.html
var pageTemplate string

// TemplateData represents the data structure passed to the page template
type TemplateData struct {
	Form       types.FormData
	LeftLogo   template.URL
	RightLogo  template.URL
	HasContent bool
	Blueprint  []types.BlueprintRow
	Sections   []types.WorksheetSection
	Answers    []types.Answer
}

// RenderHTML renders the printable exam document: blueprint table, student
// worksheet, and answer key, in that order. The answer key section is sorted
// ascending by question number; this sort applies to the rendered page only,
// not to the spreadsheet export. A nil content renders the empty-state
// placeholder instead of the three sections.
//
// Rendering is idempotent: the same inputs produce identical output.
func RenderHTML(content *types.GeneratedContent, form types.FormData) (string, error) {
	tmpl, err := template.New("page").Parse(pageTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse page template", Cause: err}
	}

	data := buildTemplateData(content, form)

	var result strings.Builder
	if err := tmpl.Execute(&result, data); err != nil {
		return "", &TemplateError{Message: "failed to execute page template", Cause: err}
	}

	return result.String(), nil
}

// buildTemplateData constructs the template data structure from inputs
func buildTemplateData(content *types.GeneratedContent, form types.FormData) *TemplateData {
	data := &TemplateData{
		Form: form,
		// Logo values are data URLs produced by the logo package; html/template
		// would reject data: sources in a URL context without the explicit type.
		LeftLogo:  template.URL(form.LeftLogo),  //nolint:gosec // embeddable inline image data, not user markup
		RightLogo: template.URL(form.RightLogo), //nolint:gosec // embeddable inline image data, not user markup
	}

	if content == nil {
		return data
	}

	data.HasContent = true
	data.Blueprint = content.BlueprintRows
	data.Sections = content.WorksheetSections
	data.Answers = content.SortedAnswers()
	return data
}
