package llm

import (
	"encoding/json"
	"fmt"
	"sync"

	"github.com/santhosh-tekuri/jsonschema/v6"
)

// questionSchemaJSON is the strict contract a generated question must satisfy.
// Answer membership (correctAnswer ∈ options) cannot be expressed here and is
// checked by the caller.
const questionSchemaJSON = `{
	"type": "object",
	"required": ["question", "options", "correctAnswer", "explanation"],
	"properties": {
		"question": {"type": "string", "minLength": 1},
		"options": {
			"type": "array",
			"items": {"type": "string", "minLength": 1},
			"minItems": 4,
			"maxItems": 4
		},
		"correctAnswer": {"type": "string", "minLength": 1},
		"explanation": {"type": "string"}
	}
}`

var (
	questionSchemaOnce sync.Once
	questionSchema     *jsonschema.Schema
	questionSchemaErr  error
)

// ValidateQuestionResponse validates raw generator output against the question
// schema. The schema is compiled once and cached.
func ValidateQuestionResponse(raw []byte) error {
	var parsed any
	if err := json.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("invalid JSON: %w", err)
	}

	schema, err := compiledQuestionSchema()
	if err != nil {
		return fmt.Errorf("compile question schema: %w", err)
	}

	if err := schema.Validate(parsed); err != nil {
		return fmt.Errorf("schema validation failed: %w", err)
	}
	return nil
}

func compiledQuestionSchema() (*jsonschema.Schema, error) {
	questionSchemaOnce.Do(func() {
		var def any
		if err := json.Unmarshal([]byte(questionSchemaJSON), &def); err != nil {
			questionSchemaErr = fmt.Errorf("parse schema definition: %w", err)
			return
		}

		c := jsonschema.NewCompiler()
		const schemaURL = "schema://generated-question.json"
		if err := c.AddResource(schemaURL, def); err != nil {
			questionSchemaErr = fmt.Errorf("add resource: %w", err)
			return
		}
		questionSchema, questionSchemaErr = c.Compile(schemaURL)
	})
	return questionSchema, questionSchemaErr
}
