package profile

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

//go:embed profile.schema.json
var metaSchema []byte

// MetaSchema returns the JSON Schema the profile is validated against.
func MetaSchema() []byte {
	return metaSchema
}

// ValidationError lists the meta-schema violations of a profile.
type ValidationError struct {
	Errors []string
}

func (e *ValidationError) Error() string {
	return "profile validation failed:\n  - " + strings.Join(e.Errors, "\n  - ")
}

// Validate checks a profile against the embedded meta-schema.
func Validate(p *Profile) error {
	data, err := Marshal(p)
	if err != nil {
		return err
	}

	return ValidateJSON(data)
}

// ValidateJSON checks a serialized profile against the embedded meta-schema.
func ValidateJSON(data []byte) error {
	if !json.Valid(data) {
		return errors.New("profile is not valid JSON")
	}

	result, err := gojsonschema.Validate(
		gojsonschema.NewBytesLoader(metaSchema),
		gojsonschema.NewBytesLoader(data),
	)
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if result.Valid() {
		return nil
	}

	verr := &ValidationError{}
	for _, desc := range result.Errors() {
		verr.Errors = append(verr.Errors, fmt.Sprintf("%s: %s", desc.Field(), desc.Description()))
	}

	return verr
}
