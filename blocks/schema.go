package blocks

import "github.com/almanaclabs/yoastseo/internal/blocks"

// ValidationIssue exports a single schema validation failure.
type ValidationIssue = blocks.ValidationIssue

// AttributeValidationError exports the schema issue collection error.
type AttributeValidationError = blocks.AttributeValidationError

var (
	ErrSchemaInvalid    = blocks.ErrSchemaInvalid
	ErrSchemaValidation = blocks.ErrSchemaValidation
)

// ValidateSchema ensures an attribute schema can be compiled.
func ValidateSchema(schema map[string]any) error {
	return blocks.ValidateSchema(schema)
}

// ValidateAttributes validates an attribute map against a schema.
func ValidateAttributes(schema map[string]any, attributes map[string]any) error {
	return blocks.ValidateAttributes(schema, attributes)
}

// Issues extracts validation issues from an error.
func Issues(err error) []ValidationIssue {
	return blocks.Issues(err)
}
