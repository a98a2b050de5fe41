package generation

import "github.com/google/generative-ai-go/genai"

// ResponseSchema returns the fixed structured-output schema sent with every
// generation request. The provider is asked to return exactly this shape;
// anything else surfaces as a validation failure on our side as well.
func ResponseSchema() *genai.Schema {
	return &genai.Schema{
		Type: genai.TypeObject,
		Properties: map[string]*genai.Schema{
			"kisiKisi": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"tema":              {Type: genai.TypeString},
						"konten":            {Type: genai.TypeString},
						"konteks":           {Type: genai.TypeString},
						"kompetensi":        {Type: genai.TypeString},
						"bentukSoal":        {Type: genai.TypeString},
						"noSoal":            {Type: genai.TypeString},
						"subKompetensi":     {Type: genai.TypeString},
						"rincianKompetensi": {Type: genai.TypeString},
						"uraianSoal":        {Type: genai.TypeString},
					},
					Required: []string{
						"tema", "konten", "konteks", "kompetensi", "bentukSoal",
						"noSoal", "subKompetensi", "rincianKompetensi", "uraianSoal",
					},
				},
			},
			"lembarSoal": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"teksBacaan": {Type: genai.TypeString},
						"pertanyaan": {
							Type: genai.TypeArray,
							Items: &genai.Schema{
								Type: genai.TypeObject,
								Properties: map[string]*genai.Schema{
									"nomor":   {Type: genai.TypeInteger},
									"soal":    {Type: genai.TypeString},
									"pilihan": {Type: genai.TypeArray, Items: &genai.Schema{Type: genai.TypeString}},
									"tipe":    {Type: genai.TypeString},
								},
								Required: []string{"nomor", "soal", "tipe"},
							},
						},
					},
				},
			},
			"kunciJawaban": {
				Type: genai.TypeArray,
				Items: &genai.Schema{
					Type: genai.TypeObject,
					Properties: map[string]*genai.Schema{
						"nomor":   {Type: genai.TypeInteger},
						"jawaban": {Type: genai.TypeString},
					},
					Required: []string{"nomor", "jawaban"},
				},
			},
		},
		Required: []string{"kisiKisi", "lembarSoal", "kunciJawaban"},
	}
}

// contentSchemaJSON is the JSON Schema the returned payload is validated
// against before unmarshaling. It mirrors ResponseSchema; the double check
// means a non-conforming provider reply fails here instead of producing a
// half-filled GeneratedContent.
const contentSchemaJSON = `{
	"type": "object",
	"properties": {
		"kisiKisi": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"tema": {"type": "string"},
					"konten": {"type": "string"},
					"konteks": {"type": "string"},
					"kompetensi": {"type": "string"},
					"bentukSoal": {"type": "string"},
					"noSoal": {"type": "string"},
					"subKompetensi": {"type": "string"},
					"rincianKompetensi": {"type": "string"},
					"uraianSoal": {"type": "string"}
				},
				"required": ["tema", "konten", "konteks", "kompetensi", "bentukSoal", "noSoal", "subKompetensi", "rincianKompetensi", "uraianSoal"]
			}
		},
		"lembarSoal": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"teksBacaan": {"type": "string"},
					"pertanyaan": {
						"type": "array",
						"items": {
							"type": "object",
							"properties": {
								"nomor": {"type": "integer"},
								"soal": {"type": "string"},
								"pilihan": {"type": "array", "items": {"type": "string"}},
								"tipe": {"type": "string"}
							},
							"required": ["nomor", "soal", "tipe"]
						}
					}
				}
			}
		},
		"kunciJawaban": {
			"type": "array",
			"items": {
				"type": "object",
				"properties": {
					"nomor": {"type": "integer"},
					"jawaban": {"type": "string"}
				},
				"required": ["nomor", "jawaban"]
			}
		}
	},
	"required": ["kisiKisi", "lembarSoal", "kunciJawaban"]
}`
