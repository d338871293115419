package schemas

import (
	"os"
	"path/filepath"
	"testing"

	rootschemas "github.com/jonathan/slide-redesigner/schemas"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const pointSchema = `{
	"$schema": "http://json-schema.org/draft-07/schema#",
	"type": "object",
	"required": ["x", "y"],
	"properties": {
		"x": {"type": "number", "minimum": 0, "maximum": 1},
		"y": {"type": "number", "minimum": 0, "maximum": 1}
	}
}`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestValidateJSON(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "point.schema.json", pointSchema)

	tests := []struct {
		name    string
		doc     string
		wantErr bool
	}{
		{name: "valid", doc: `{"x": 0.5, "y": 0.25}`},
		{name: "missing field", doc: `{"x": 0.5}`, wantErr: true},
		{name: "wrong type", doc: `{"x": "left", "y": 0}`, wantErr: true},
		{name: "out of range", doc: `{"x": 1.5, "y": 0}`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			jsonPath := writeFile(t, dir, tt.name+".json", tt.doc)
			err := ValidateJSON(schemaPath, jsonPath)
			if !tt.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			validationErr, ok := err.(*ValidationError)
			require.True(t, ok, "error should be ValidationError type")
			assert.NotEmpty(t, validationErr.Errors)
		})
	}
}

func TestValidateJSON_NotFound(t *testing.T) {
	dir := t.TempDir()
	schemaPath := writeFile(t, dir, "point.schema.json", pointSchema)
	jsonPath := writeFile(t, dir, "doc.json", `{"x": 0, "y": 0}`)

	err := ValidateJSON(filepath.Join(dir, "missing.schema.json"), jsonPath)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = ValidateJSON(schemaPath, filepath.Join(dir, "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestValidateJSONString(t *testing.T) {
	assert.NoError(t, ValidateJSONString(pointSchema, `{"x": 0, "y": 1}`))

	err := ValidateJSONString(pointSchema, `{"y": 1}`)
	require.Error(t, err)
	assert.IsType(t, &ValidationError{}, err)
}

func TestValidationError_Error(t *testing.T) {
	err := &ValidationError{Errors: []FieldError{
		{Field: "elements.0.x", Message: "Must be less than or equal to 1"},
		{Field: "(root)", Message: "name is required"},
	}}

	msg := err.Error()
	assert.Contains(t, msg, "validation failed")
	assert.Contains(t, msg, "1. elements.0.x: Must be less than or equal to 1")
	assert.Contains(t, msg, "2. (root): name is required")
}

func TestEmbedded_AllSchemasCompile(t *testing.T) {
	for _, name := range rootschemas.Names {
		t.Run(name, func(t *testing.T) {
			s, err := Embedded(name)
			require.NoError(t, err)
			assert.NotNil(t, s)
		})
	}
}

func TestEmbedded_Unknown(t *testing.T) {
	_, err := Embedded("nope")
	require.Error(t, err)
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}

func TestValidateDocument_LayoutTemplate(t *testing.T) {
	valid := `{"name": "title_only", "elements": [{"type": "text", "x": 0.1, "y": 0.3, "width": 0.8, "height": 0.4, "z": 1}]}`
	assert.NoError(t, ValidateDocument(rootschemas.LayoutTemplate, []byte(valid)))

	badType := `{"name": "x", "elements": [{"type": "video", "x": 0, "y": 0, "width": 1, "height": 1}]}`
	assert.Error(t, ValidateDocument(rootschemas.LayoutTemplate, []byte(badType)))

	noElements := `{"name": "x", "elements": []}`
	assert.Error(t, ValidateDocument(rootschemas.LayoutTemplate, []byte(noElements)))
}

func TestValidateDocument_PredictionList(t *testing.T) {
	ok := `[{"layout": "title_only", "confidence": 0.9}, {"layout": "text_only", "confidence": 0.1}]`
	assert.NoError(t, ValidateDocument(rootschemas.PredictionList, []byte(ok)))

	single := `[{"layout": "title_only", "confidence": 0.9}]`
	assert.Error(t, ValidateDocument(rootschemas.PredictionList, []byte(single)))
}

func TestValidateDocument_SlideMetadataParagraphForms(t *testing.T) {
	doc := `{
		"slide_num": 1,
		"shapes": [{
			"has_text": true,
			"text": "Hello",
			"paragraphs": [
				"plain",
				[{"text": "run", "color_rgb": [255, 0, 0]}],
				{"level": 1, "is_bullet": true, "runs": [{"text": "b", "color_rgb": "#00FF00"}]}
			],
			"has_image": false,
			"has_table": false
		}]
	}`
	assert.NoError(t, ValidateDocument(rootschemas.SlideMetadata, []byte(doc)))
}

func TestValidateFile_EmbeddedName(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "preds.json", `[{"layout": "a", "confidence": 0.5}, {"layout": "b", "confidence": 0.4}]`)

	assert.NoError(t, ValidateFile("prediction_list", path))
	assert.NoError(t, ValidateFile("prediction_list.schema.json", path))
}

func TestSchemaSource(t *testing.T) {
	src, err := SchemaSource("prediction_list")
	require.NoError(t, err)
	assert.Contains(t, src, "PredictionList")

	same, err := SchemaSource("prediction_list.schema.json")
	require.NoError(t, err)
	assert.Equal(t, src, same)

	assert.NoError(t, ValidateJSONString(src, `[{"layout": "quote", "confidence": 0.6}, {"layout": "text_only", "confidence": 0.1}]`))
	var validationErr *ValidationError
	assert.ErrorAs(t, ValidateJSONString(src, `[{"layout": "quote", "confidence": 0.6}]`), &validationErr)

	schemaPath := filepath.Join(t.TempDir(), "point.schema.json")
	require.NoError(t, os.WriteFile(schemaPath, []byte(pointSchema), 0644))
	fromFile, err := SchemaSource(schemaPath)
	require.NoError(t, err)
	assert.Equal(t, pointSchema, fromFile)

	_, err = SchemaSource("no_such_schema")
	var loadErr *SchemaLoadError
	assert.ErrorAs(t, err, &loadErr)
}
