// Package validation checks the inputs of the public upload operations.
//
// Checks are deliberately shallow: a value must be present and must survive
// JSON encoding. Naming rules belong to the object service.
package validation

import (
	"unicode/utf8"

	"github.com/input-output-hk/catalyst-forge-libs/object/errors"
)

// ValidateProjectID rejects an empty or non-UTF-8 project id.
func ValidateProjectID(projectID string) error {
	return validateString("validateProjectID", "project id", projectID)
}

// ValidateName rejects an empty or non-UTF-8 object name.
func ValidateName(name string) error {
	return validateString("validateName", "object name", name)
}

// ValidateContentType rejects an empty or non-UTF-8 content type.
func ValidateContentType(contentType string) error {
	return validateString("validateContentType", "content type", contentType)
}

func validateString(op, what, s string) error {
	if s == "" {
		return errors.NewError(op, errors.ErrInvalidInput).WithMessage(what + " cannot be empty")
	}
	if !utf8.ValidString(s) {
		return errors.NewError(op, errors.ErrInvalidInput).WithMessage(what + " must be valid UTF-8")
	}
	return nil
}
