package instructions

import (
	"errors"

	goerrors "github.com/goliatone/go-errors"
)

var (
	// ErrNilInstruction reports a nil instruction passed to Register.
	ErrNilInstruction = errors.New("instructions: instruction is required")
	// ErrEmptyKey reports an instruction whose key canonicalizes to nothing.
	ErrEmptyKey = errors.New("instructions: instruction key is required")
	// ErrOptionsInvalid wraps option validation failures.
	ErrOptionsInvalid = errors.New("instructions: options invalid")
)

const (
	instructionOptionsCode      = "INSTRUCTION_OPTIONS_INVALID"
	instructionRegistrationCode = "INSTRUCTION_REGISTRATION_FAILED"
	instructionSchemaCode       = "INSTRUCTION_SCHEMA_INVALID"
)

func wrapOptionsError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "instruction options invalid").
		WithTextCode(instructionOptionsCode)
}

func wrapRegistrationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "instruction registration failed").
		WithTextCode(instructionRegistrationCode)
}

func wrapSchemaError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "attribute schema invalid").
		WithTextCode(instructionSchemaCode)
}
